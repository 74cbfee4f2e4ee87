package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"meetup-web/config"
	"meetup-web/internal/handler"
	"meetup-web/internal/middleware"
	"meetup-web/internal/repository"
	"meetup-web/internal/service"
	"meetup-web/internal/web"
	"meetup-web/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	cfg        *config.Config
	log        *zap.Logger
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	logger.SetLevel(cfg.Log.Level)
	log := logger.WithComponent("app")

	loc, err := cfg.Display.Location()
	if err != nil {
		return nil, fmt.Errorf("load display timezone %q: %w", cfg.Display.Timezone, err)
	}

	repo := repository.NewEventRepository(&cfg.API, nil)
	eventService := service.NewEventService(repo, loc)
	eventHandler := handler.NewEventHandler(eventService)

	router, err := NewRouter(cfg.Gin.Mode, eventHandler)
	if err != nil {
		return nil, fmt.Errorf("init router: %w", err)
	}

	log.Info("Event API configured",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("events_path", cfg.API.EventsPath),
		zap.Duration("timeout", cfg.API.Timeout),
		zap.String("timezone", loc.String()),
	)

	return &App{
		cfg: cfg,
		log: log,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}, nil
}

// NewRouter 組裝 middleware、頁面、JSON API、健康檢查與指標路由
func NewRouter(mode string, eventHandler *handler.EventHandler) (*gin.Engine, error) {
	gin.SetMode(mode)
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
	)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())

	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	eventHandler.RegisterRoutes(router)

	return router, nil
}

func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("HTTP server starting", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("Shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.WriteTimeout+time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.Info("HTTP server stopped")
	_ = logger.L.Sync()
	return nil
}
