package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"meetup-web/config"
	"meetup-web/internal/model"
	"meetup-web/internal/monitoring"
	apperrors "meetup-web/pkg/app_errors"
	"meetup-web/pkg/logger"

	"go.uber.org/zap"
)

// 回應內容上限，避免異常大的 payload
const maxBodyBytes = 8 << 20

type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
}

type EventRepositoryImpl struct {
	client     *http.Client
	baseURL    string
	eventsPath string
}

func NewEventRepository(cfg *config.APIConfig, client *http.Client) EventRepository {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &EventRepositoryImpl{
		client:     client,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		eventsPath: "/" + strings.Trim(cfg.EventsPath, "/"),
	}
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]model.Event, error) {
	var body model.ListEventsResponse
	if err := r.get(ctx, "list", r.baseURL+r.eventsPath, &body, apperrors.ErrUpstreamUnavailable); err != nil {
		return nil, err
	}
	if body.Events == nil {
		return []model.Event{}, nil
	}
	return body.Events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.ErrInvalidInput
	}

	var body model.GetEventResponse
	endpoint := r.baseURL + r.eventsPath + "/" + url.PathEscape(id)
	if err := r.get(ctx, "find", endpoint, &body, apperrors.ErrEventNotFound); err != nil {
		return nil, err
	}
	if body.Event == nil {
		return nil, apperrors.ErrEventNotFound
	}
	return body.Event, nil
}

// get 執行 GET 並解碼 JSON；非 2xx 回應以 statusErr 包裝
func (r *EventRepositoryImpl) get(ctx context.Context, operation, endpoint string, out interface{}, statusErr error) error {
	log := logger.WithComponent("repository").With(zap.String("operation", operation), zap.String("url", endpoint))
	start := time.Now()
	outcome := "error"
	defer func() {
		monitoring.TrackUpstream(operation, outcome, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			outcome = "canceled"
			return err
		}
		log.Warn("Event API request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = "status_" + strconv.Itoa(resp.StatusCode)
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		log.Warn("Event API returned non-success status", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: status %d", statusErr, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		outcome = "malformed"
		log.Warn("Event API returned malformed payload", zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedPayload, err)
	}

	outcome = "ok"
	log.Debug("Event API request succeeded", zap.Duration("latency", time.Since(start)))
	return nil
}
