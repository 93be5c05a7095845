package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrackHabit_EmptyBody verifies that POST /track with no body at all is
// accepted and forwarded as a zero-valued request: the service layer fills
// in today's date and the completed status.
func TestTrackHabit_EmptyBody(t *testing.T) {
	tracking := &mockTrackingService{
		trackFn: func(_ context.Context, userID string, habitID int64, req models.TrackRequest) (models.HabitTracking, error) {
			assert.Equal(t, testUser.UserID, userID)
			assert.Equal(t, int64(42), habitID)
			assert.Empty(t, req.Date)
			assert.Empty(t, req.Status)
			return models.HabitTracking{ID: 1, HabitID: habitID, Date: "2026-09-01", Status: models.StatusCompleted}, nil
		},
	}

	_, router := habitRouter(nil, tracking)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/habits/42/track", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.HabitTracking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, models.StatusCompleted, saved.Status)
	assert.Equal(t, "2026-09-01", saved.Date)
}

func TestTrackHabit_ExplicitDayAndStatus(t *testing.T) {
	notes := "slept through the alarm"
	tracking := &mockTrackingService{
		trackFn: func(_ context.Context, _ string, _ int64, req models.TrackRequest) (models.HabitTracking, error) {
			assert.Equal(t, "2026-08-30", req.Date)
			assert.Equal(t, models.StatusFailed, req.Status)
			require.NotNil(t, req.Notes)
			return models.HabitTracking{ID: 2, HabitID: 42, Date: req.Date, Status: req.Status, Notes: req.Notes}, nil
		},
	}

	_, router := habitRouter(nil, tracking)
	body := jsonBody(t, models.TrackRequest{Date: "2026-08-30", Status: models.StatusFailed, Notes: &notes})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/habits/42/track", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.HabitTracking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, models.StatusFailed, saved.Status)
}

func TestTrackHabit_InvalidJSON(t *testing.T) {
	_, router := habitRouter(nil, &mockTrackingService{})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/habits/42/track", "{broken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackHabit_ForeignHabit(t *testing.T) {
	tracking := &mockTrackingService{
		trackFn: func(_ context.Context, _ string, _ int64, _ models.TrackRequest) (models.HabitTracking, error) {
			return models.HabitTracking{}, service.ErrHabitNotFound
		},
	}

	_, router := habitRouter(nil, tracking)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/habits/999/track", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTrackingHistory_Success(t *testing.T) {
	tracking := &mockTrackingService{
		historyFn: func(_ context.Context, userID string, habitID int64) ([]models.HabitTracking, error) {
			assert.Equal(t, testUser.UserID, userID)
			assert.Equal(t, int64(42), habitID)
			return []models.HabitTracking{
				{ID: 1, HabitID: 42, Date: "2026-08-30", Status: models.StatusCompleted},
				{ID: 2, HabitID: 42, Date: "2026-08-31", Status: models.StatusSkipped},
			}, nil
		},
	}

	_, router := habitRouter(nil, tracking)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/habits/42/track", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var records []models.HabitTracking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, models.StatusSkipped, records[1].Status)
}
