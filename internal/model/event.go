package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	EventTypeOnline  = "Online Event"
	EventTypeOffline = "Offline Event"
)

// Event 為遠端 API 回傳的活動快照，本服務不做任何寫入
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Type           string    `json:"type"`
	Tags           []string  `json:"tags"`
	ThumbnailURL   string    `json:"thumbnailUrl"`
	Date           Timestamp `json:"date"`
	Sessions       []Session `json:"sessions,omitempty"`
	Venue          Venue     `json:"venue"`
	Price          Price     `json:"price"`
	Speakers       []Speaker `json:"speakers,omitempty"`
	DressCode      string    `json:"dressCode,omitempty"`
	AgeRestriction string    `json:"ageRestriction,omitempty"`
}

type Session struct {
	StartTime Timestamp `json:"startTime"`
	EndTime   Timestamp `json:"endTime"`
}

type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type Price struct {
	Amount decimal.Decimal `json:"amount"`
}

type Speaker struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl,omitempty"`
	IsHost   bool   `json:"isHost"`
}

// UnmarshalJSON 接受 API 實際送出的 `_id`，缺少時退回 `id`
func (e *Event) UnmarshalJSON(data []byte) error {
	type plain Event
	aux := struct {
		*plain
		MongoID string `json:"_id"`
	}{plain: (*plain)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.MongoID != "" {
		e.ID = aux.MongoID
	}
	return nil
}

// ListEventsResponse GET /events
type ListEventsResponse struct {
	Events []Event `json:"events"`
}

// GetEventResponse GET /events/:id
type GetEventResponse struct {
	Event *Event `json:"event"`
}
