package handler

import (
	"context"
	"errors"
	"net/http"

	"meetup-web/internal/service"
	"meetup-web/internal/view"
	apperrors "meetup-web/pkg/app_errors"
	"meetup-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 用戶端已中斷連線（沿用 nginx 的 499）
const statusClientClosedRequest = 499

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.ListPage)
	r.GET("/events/:id", h.DetailPage)

	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.Detail)
	}
}

// ListPage 活動卡片列表；讀取失敗時仍回 200，由頁面顯示提示
func (h *EventHandler) ListPage(c *gin.Context) {
	var query service.ListQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	page, _ := h.service.List(c.Request.Context(), query)
	c.HTML(http.StatusOK, "list.tmpl", page)
}

func (h *EventHandler) DetailPage(c *gin.Context) {
	page := h.service.Detail(c.Request.Context(), c.Param("id"))
	if errors.Is(page.Err, context.Canceled) {
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}
	if page.State != view.DetailLoaded {
		status := http.StatusBadGateway
		if page.NotFound() {
			status = http.StatusNotFound
		}
		c.HTML(status, "error.tmpl", page)
		return
	}
	c.HTML(http.StatusOK, "detail.tmpl", page.Details)
}

func (h *EventHandler) List(c *gin.Context) {
	var query service.ListQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	page, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EventHandler) Detail(c *gin.Context) {
	page := h.service.Detail(c.Request.Context(), c.Param("id"))
	if page.State != view.DetailLoaded {
		h.handleError(c, page.Err, "Detail")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, context.Canceled):
		log.Debug("Request canceled by client")
		c.AbortWithStatus(statusClientClosedRequest)
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable),
		errors.Is(err, apperrors.ErrMalformedPayload),
		errors.Is(err, apperrors.ErrMalformedEvent):
		log.Warn("Event API failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Event API unavailable"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
