package service

import (
	"context"
	"errors"
	"time"

	"meetup-web/internal/repository"
	"meetup-web/internal/view"
	"meetup-web/pkg/logger"

	"go.uber.org/zap"
)

// ListQuery 列表頁的使用者輸入
type ListQuery struct {
	Search string `form:"q" json:"q"`
	Type   string `form:"type" json:"type"`
}

type EventService interface {
	// List 每次呼叫都向遠端讀取完整列表，再依查詢條件篩選
	List(ctx context.Context, query ListQuery) (*view.ListPage, error)
	// Detail 讀取單一活動並回傳最終狀態（Loaded 或 Error）
	Detail(ctx context.Context, id string) view.DetailPage
}

type EventServiceImpl struct {
	repo repository.EventRepository
	loc  *time.Location
}

func NewEventService(repo repository.EventRepository, loc *time.Location) EventService {
	return &EventServiceImpl{repo: repo, loc: loc}
}

func (s *EventServiceImpl) List(ctx context.Context, query ListQuery) (*view.ListPage, error) {
	v := view.NewListView(query.Search, view.ParseFilterType(query.Type), s.loc)
	if err := v.Load(ctx, s.repo.List); err != nil {
		log := logger.WithComponent("service")
		if errors.Is(err, context.Canceled) {
			log.Debug("Event list load canceled")
		} else {
			log.Error("Failed to load events", zap.Error(err))
		}
		return v.Page(), err
	}
	return v.Page(), nil
}

func (s *EventServiceImpl) Detail(ctx context.Context, id string) view.DetailPage {
	v := view.NewDetailView(s.loc)
	page := v.Load(ctx, id, s.repo.FindByID)
	if page.State == view.DetailError {
		logger.WithComponent("service").Warn("Failed to load event",
			zap.String("id", id), zap.Error(page.Err))
	}
	return page
}
