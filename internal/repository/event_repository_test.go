package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetup-web/config"
	apperrors "meetup-web/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T, handler http.HandlerFunc) EventRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.LoadTestConfig().API
	cfg.BaseURL = srv.URL + "/"
	return NewEventRepository(&cfg, nil)
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/events", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"events":[{"_id":"1","title":"Art Walk","type":"Offline Event","tags":["art"]},{"_id":"2","title":"Code Jam","type":"Online Event","tags":["tech"]}]}`))
		})

		events, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "1", events[0].ID)
		assert.Equal(t, "Code Jam", events[1].Title)
	})

	t.Run("Success - odd date does not drop the list", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"events":[{"_id":"1","date":"2025-03-15T10:00:00Z"},{"_id":"2","date":"2025-03-15T10:00"},{"_id":"3","date":"soon"}]}`))
		})

		events, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.True(t, events[1].Date.Equal(time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)))
		assert.True(t, events[2].Date.IsZero())
	})

	t.Run("Success - missing events key", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		events, err := repo.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("Failed - server error", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		events, err := repo.List(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
		assert.Nil(t, events)
	})

	t.Run("Failed - malformed payload", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"events": [`))
		})

		_, err := repo.List(ctx)

		assert.ErrorIs(t, err, apperrors.ErrMalformedPayload)
	})

	t.Run("Failed - connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		cfg := config.LoadTestConfig().API
		cfg.BaseURL = srv.URL
		srv.Close()
		repo := NewEventRepository(&cfg, nil)

		_, err := repo.List(ctx)

		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})

	t.Run("Failed - timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		t.Cleanup(srv.Close)
		cfg := config.LoadTestConfig().API
		cfg.BaseURL = srv.URL
		cfg.Timeout = 50 * time.Millisecond
		repo := NewEventRepository(&cfg, nil)

		_, err := repo.List(ctx)

		assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	})
}

func TestEventRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/events/abc123", r.URL.Path)
			_, _ = w.Write([]byte(`{"event":{"_id":"abc123","title":"Art Walk","sessions":[{"startTime":"2025-03-15T04:30:00Z","endTime":"2025-03-15T07:30:00Z"}]}}`))
		})

		event, err := repo.FindByID(ctx, "abc123")

		require.NoError(t, err)
		assert.Equal(t, "abc123", event.ID)
		assert.Len(t, event.Sessions, 1)
	})

	t.Run("Escapes the id", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/events/a%2Fb", r.URL.EscapedPath())
			_, _ = w.Write([]byte(`{"event":{"_id":"a/b"}}`))
		})

		event, err := repo.FindByID(ctx, "a/b")

		require.NoError(t, err)
		assert.Equal(t, "a/b", event.ID)
	})

	t.Run("Failed - not found status", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"Event not found"}`, http.StatusNotFound)
		})

		event, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Nil(t, event)
	})

	t.Run("Failed - any non-success status is not found", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := repo.FindByID(ctx, "abc")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Failed - null event", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"event":null}`))
		})

		_, err := repo.FindByID(ctx, "abc")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Failed - blank id", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("upstream must not be called")
		})

		_, err := repo.FindByID(ctx, "  ")

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - canceled context", func(t *testing.T) {
		repo := setupTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"event":{"_id":"abc"}}`))
		})
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.FindByID(canceled, "abc")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
