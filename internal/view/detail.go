package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"meetup-web/internal/model"
	"meetup-web/internal/monitoring"
	apperrors "meetup-web/pkg/app_errors"
	"meetup-web/pkg/logger"

	"go.uber.org/zap"
)

type DetailState int

const (
	DetailLoading DetailState = iota
	DetailLoaded
	DetailError
)

func (s DetailState) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailError:
		return "error"
	default:
		return fmt.Sprintf("DetailState(%d)", int(s))
	}
}

func (s DetailState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const detailFailedMessage = "Event details could not be found."

type SpeakerCard struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

type VenueInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// EventDetails 詳細頁所需的全部顯示值
type EventDetails struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Host           string        `json:"host"`
	ThumbnailURL   string        `json:"thumbnail_url"`
	DressCode      string        `json:"dress_code"`
	AgeRestriction string        `json:"age_restriction"`
	Tags           []string      `json:"tags"`
	StartDate      string        `json:"start_date"`
	StartTime      string        `json:"start_time"`
	EndDate        string        `json:"end_date"`
	EndTime        string        `json:"end_time"`
	When           string        `json:"when"`
	Venue          VenueInfo     `json:"venue"`
	Price          string        `json:"price"`
	Speakers       []SpeakerCard `json:"speakers"`
}

// Present 由已載入的活動推導顯示值；沒有場次時回傳 ErrMalformedEvent
func Present(e model.Event, loc *time.Location) (*EventDetails, error) {
	if len(e.Sessions) == 0 {
		return nil, apperrors.ErrMalformedEvent
	}
	start := e.Sessions[0].StartTime.Time
	end := e.Sessions[0].EndTime.Time

	speakers := make([]SpeakerCard, 0, len(e.Speakers))
	for _, s := range e.Speakers {
		speakers = append(speakers, SpeakerCard{
			Name:      s.Name,
			Role:      s.Role,
			AvatarURL: AvatarURL(s),
		})
	}

	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return &EventDetails{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Host:           ResolveHost(e.Speakers),
		ThumbnailURL:   e.ThumbnailURL,
		DressCode:      e.DressCode,
		AgeRestriction: e.AgeRestriction,
		Tags:           tags,
		StartDate:      FormatDate(start, loc),
		StartTime:      FormatTime(start, loc),
		EndDate:        FormatDate(end, loc),
		EndTime:        FormatTime(end, loc),
		When:           FormatRange(start, end, loc),
		Venue: VenueInfo{
			Name:    e.Venue.Name,
			Address: e.Venue.Address,
			City:    e.Venue.City,
		},
		Price:    FormatPrice(e.Price.Amount),
		Speakers: speakers,
	}, nil
}

// DetailPage is a point-in-time copy of a DetailView.
type DetailPage struct {
	State   DetailState   `json:"state"`
	ID      string        `json:"id"`
	Details *EventDetails `json:"event,omitempty"`
	Message string        `json:"message,omitempty"`
	Err     error         `json:"-"`
}

type DetailFetcher func(ctx context.Context, id string) (*model.Event, error)

// DetailView is the state container of the event detail page:
// Loading, then exactly one of Loaded or Error per load.
//
// Every Load takes a new generation and cancels the read of the load it
// supersedes. A read that finishes after being superseded is dropped, so
// the state always reflects the most recent identifier.
type DetailView struct {
	mu         sync.Mutex
	loc        *time.Location
	generation uint64
	cancel     context.CancelFunc

	state   DetailState
	id      string
	details *EventDetails
	err     error
}

func NewDetailView(loc *time.Location) *DetailView {
	return &DetailView{loc: loc, state: DetailLoading}
}

func (v *DetailView) Load(ctx context.Context, id string, fetch DetailFetcher) DetailPage {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	if v.cancel != nil {
		v.cancel()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = DetailLoading
	v.id = id
	v.details = nil
	v.err = nil
	v.mu.Unlock()
	defer cancel()

	var details *EventDetails
	event, err := fetch(loadCtx, id)
	if err == nil {
		details, err = v.present(event)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		monitoring.TrackStaleDetail()
		logger.WithComponent("view").Debug("Discarding superseded detail load",
			zap.String("id", id), zap.Uint64("generation", gen), zap.Uint64("current", v.generation))
		return v.snapshotLocked()
	}

	v.cancel = nil
	if err != nil {
		v.state = DetailError
		v.err = err
	} else {
		v.state = DetailLoaded
		v.details = details
	}
	return v.snapshotLocked()
}

func (v *DetailView) present(event *model.Event) (*EventDetails, error) {
	if event == nil {
		return nil, apperrors.ErrEventNotFound
	}
	return Present(*event, v.loc)
}

func (v *DetailView) Snapshot() DetailPage {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

func (v *DetailView) snapshotLocked() DetailPage {
	page := DetailPage{
		State:   v.state,
		ID:      v.id,
		Details: v.details,
		Err:     v.err,
	}
	if v.state == DetailError {
		page.Message = detailFailedMessage
	}
	return page
}

// NotFound 錯誤狀態是否來自遠端找不到該活動（相對於連線或資料格式問題）
func (p DetailPage) NotFound() bool {
	return errors.Is(p.Err, apperrors.ErrEventNotFound) || errors.Is(p.Err, apperrors.ErrInvalidInput)
}
