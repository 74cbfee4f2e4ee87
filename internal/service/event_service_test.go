package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"meetup-web/internal/model"
	repoMocks "meetup-web/internal/repository/mocks"
	"meetup-web/internal/service"
	"meetup-web/internal/view"
	apperrors "meetup-web/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

func setupEventService(t *testing.T) (*repoMocks.MockEventRepository, service.EventService) {
	repo := repoMocks.NewMockEventRepository(t)
	return repo, service.NewEventService(repo, ist)
}

func listFixture() []model.Event {
	return []model.Event{
		{ID: "a", Title: "Art Walk", Type: model.EventTypeOffline, Tags: []string{"art"}},
		{ID: "c", Title: "Code Jam", Type: model.EventTypeOnline, Tags: []string{"tech"}},
	}
}

func TestEventService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - search and filter applied", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		repo.EXPECT().List(mock.Anything).Return(listFixture(), nil).Once()

		page, err := eventService.List(ctx, service.ListQuery{Search: "art", Type: "Both"})

		require.NoError(t, err)
		require.Len(t, page.Cards, 1)
		assert.Equal(t, "Art Walk", page.Cards[0].Title)
		assert.Equal(t, "/events/a", page.Cards[0].Href)
		assert.Equal(t, 2, page.Total)
		assert.Equal(t, view.FilterBoth, page.FilterType)
	})

	t.Run("Success - type filter excludes search hits", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		repo.EXPECT().List(mock.Anything).Return(listFixture(), nil).Once()

		page, err := eventService.List(ctx, service.ListQuery{Search: "tech", Type: "Offline Event"})

		require.NoError(t, err)
		assert.Empty(t, page.Cards)
		assert.Equal(t, view.FilterOffline, page.FilterType)
	})

	t.Run("Success - unknown type treated as Both", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		repo.EXPECT().List(mock.Anything).Return(listFixture(), nil).Once()

		page, err := eventService.List(ctx, service.ListQuery{Type: "Hybrid"})

		require.NoError(t, err)
		assert.Len(t, page.Cards, 2)
		assert.Equal(t, view.FilterBoth, page.FilterType)
	})

	t.Run("Failed - upstream error", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		repo.EXPECT().List(mock.Anything).Return(nil, apperrors.ErrUpstreamUnavailable).Once()

		page, err := eventService.List(ctx, service.ListQuery{Search: "art"})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
		require.NotNil(t, page)
		assert.True(t, page.Failed)
		assert.Empty(t, page.Cards)
		assert.Equal(t, "art", page.SearchTerm)
	})
}

func TestEventService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		event := &model.Event{
			ID:    "a",
			Title: "Art Walk",
			Sessions: []model.Session{{
				StartTime: model.NewTimestamp(time.Date(2025, 3, 15, 4, 30, 0, 0, time.UTC)),
				EndTime:   model.NewTimestamp(time.Date(2025, 3, 15, 7, 30, 0, 0, time.UTC)),
			}},
			Speakers: []model.Speaker{{Name: "Ada Lovelace", Role: "Curator", IsHost: true}},
		}
		repo.EXPECT().FindByID(mock.Anything, "a").Return(event, nil).Once()

		page := eventService.Detail(ctx, "a")

		assert.Equal(t, view.DetailLoaded, page.State)
		require.NotNil(t, page.Details)
		assert.Equal(t, "Curator", page.Details.Host)
		assert.Equal(t, "Sat, Mar 15, 2025 at 10:00:00 AM to Sat, Mar 15, 2025 01:00:00 PM", page.Details.When)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		repo.EXPECT().FindByID(mock.Anything, "missing").
			Return(nil, fmt.Errorf("%w: status 404", apperrors.ErrEventNotFound)).Once()

		page := eventService.Detail(ctx, "missing")

		assert.Equal(t, view.DetailError, page.State)
		assert.True(t, page.NotFound())
		assert.Equal(t, "Event details could not be found.", page.Message)
	})

	t.Run("Failed - upstream error", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		repo.EXPECT().FindByID(mock.Anything, "a").Return(nil, errors.New("dial tcp: refused")).Once()

		page := eventService.Detail(ctx, "a")

		assert.Equal(t, view.DetailError, page.State)
		assert.False(t, page.NotFound())
		assert.Contains(t, page.Err.Error(), "refused")
	})

	t.Run("Failed - malformed event", func(t *testing.T) {
		repo, eventService := setupEventService(t)
		repo.EXPECT().FindByID(mock.Anything, "a").Return(&model.Event{ID: "a"}, nil).Once()

		page := eventService.Detail(ctx, "a")

		assert.Equal(t, view.DetailError, page.State)
		assert.ErrorIs(t, page.Err, apperrors.ErrMalformedEvent)
	})
}
