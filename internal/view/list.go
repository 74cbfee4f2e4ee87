package view

import (
	"context"
	"net/url"
	"strings"
	"time"

	"meetup-web/internal/model"
)

type FilterType string

const (
	FilterBoth    FilterType = "Both"
	FilterOnline  FilterType = model.EventTypeOnline
	FilterOffline FilterType = model.EventTypeOffline
)

// FilterOptions 下拉選單的選項順序
var FilterOptions = []FilterType{FilterBoth, FilterOnline, FilterOffline}

// ParseFilterType 未知或空白值一律視為 Both
func ParseFilterType(s string) FilterType {
	switch FilterType(strings.TrimSpace(s)) {
	case FilterOnline:
		return FilterOnline
	case FilterOffline:
		return FilterOffline
	default:
		return FilterBoth
	}
}

// Matches 類型篩選與關鍵字搜尋皆成立才保留
func Matches(e model.Event, filter FilterType, term string) bool {
	if filter != FilterBoth && e.Type != string(filter) {
		return false
	}

	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(e.Title), needle) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

type ListFetcher func(ctx context.Context) ([]model.Event, error)

// ListView holds the state of one event list page: the fetched events and
// the user's search term and type filter. Everything shown is derived from
// that state on demand. A ListView is not safe for concurrent use.
type ListView struct {
	events     []model.Event
	searchTerm string
	filterType FilterType
	err        error
	loc        *time.Location
}

func NewListView(searchTerm string, filterType FilterType, loc *time.Location) *ListView {
	if filterType == "" {
		filterType = FilterBoth
	}
	return &ListView{
		events:     []model.Event{},
		searchTerm: searchTerm,
		filterType: filterType,
		loc:        loc,
	}
}

// Load 讀取完整活動列表，成功時整批替換 events；失敗時 events 保持空白並記錄錯誤
func (v *ListView) Load(ctx context.Context, fetch ListFetcher) error {
	events, err := fetch(ctx)
	if err != nil {
		v.events = []model.Event{}
		v.err = err
		return err
	}
	if events == nil {
		events = []model.Event{}
	}
	v.events = events
	v.err = nil
	return nil
}

func (v *ListView) Events() []model.Event { return v.events }

func (v *ListView) Err() error { return v.err }

// Filtered 依收到的順序回傳符合條件的活動
func (v *ListView) Filtered() []model.Event {
	out := make([]model.Event, 0, len(v.events))
	for _, e := range v.events {
		if Matches(e, v.filterType, v.searchTerm) {
			out = append(out, e)
		}
	}
	return out
}

type EventCard struct {
	ID           string `json:"id"`
	Href         string `json:"href"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	ThumbnailURL string `json:"thumbnail_url"`
	When         string `json:"when"`
}

type ListPage struct {
	SearchTerm    string       `json:"search_term"`
	FilterType    FilterType   `json:"filter_type"`
	FilterOptions []FilterType `json:"-"`
	Cards         []EventCard  `json:"events"`
	Total         int          `json:"total"`
	Failed        bool         `json:"failed"`
	Message       string       `json:"message,omitempty"`
}

const listFailedMessage = "Events could not be loaded."

func (v *ListView) Page() *ListPage {
	filtered := v.Filtered()
	cards := make([]EventCard, 0, len(filtered))
	for _, e := range filtered {
		cards = append(cards, EventCard{
			ID:           e.ID,
			Href:         EventHref(e.ID),
			Title:        e.Title,
			Type:         e.Type,
			ThumbnailURL: e.ThumbnailURL,
			When:         FormatCardWhen(e.Date.Time, v.loc),
		})
	}

	page := &ListPage{
		SearchTerm:    v.searchTerm,
		FilterType:    v.filterType,
		FilterOptions: FilterOptions,
		Cards:         cards,
		Total:         len(v.events),
	}
	if v.err != nil {
		page.Failed = true
		page.Message = listFailedMessage
	}
	return page
}

func EventHref(id string) string {
	return "/events/" + url.PathEscape(id)
}
