package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// habitRouter wires the habit routes around the given mocks so path
// parameters resolve exactly as they do in production.
func habitRouter(habits service.HabitService, tracking service.TrackingService) (*Handler, *chi.Mux) {
	h := newTestHandler(nil, habits, tracking)

	router := chi.NewRouter()
	router.Route("/api/habits", func(r chi.Router) {
		r.Get("/", h.listHabits)
		r.Post("/", h.createHabit)

		r.Route("/{habitID}", func(r chi.Router) {
			r.Get("/", h.getHabit)
			r.Patch("/", h.updateHabit)
			r.Delete("/", h.deleteHabit)

			r.Post("/track", h.trackHabit)
			r.Get("/track", h.trackingHistory)
		})
	})

	return h, router
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return injectUser(injectNopLogger(req), testUser)
}

func TestCreateHabit_Success(t *testing.T) {
	habits := &mockHabitService{
		createFn: func(_ context.Context, userID string, req models.HabitCreate) (models.Habit, error) {
			assert.Equal(t, testUser.UserID, userID)
			assert.Equal(t, "Morning run", req.Title)
			return models.Habit{ID: 42, UserID: userID, Title: req.Title, Color: "#3B82F6", GoalStreak: 21, IsActive: true}, nil
		},
	}

	_, router := habitRouter(habits, nil)
	body := jsonBody(t, models.HabitCreate{Title: "Morning run"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/habits/", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Habit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "#3B82F6", created.Color)
	assert.Equal(t, 21, created.GoalStreak)
}

func TestCreateHabit_ValidationError(t *testing.T) {
	habits := &mockHabitService{
		createFn: func(_ context.Context, _ string, _ models.HabitCreate) (models.Habit, error) {
			return models.Habit{}, service.ErrInvalidDataProvided
		},
	}

	_, router := habitRouter(habits, nil)
	body := jsonBody(t, models.HabitCreate{Title: ""})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/habits/", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHabit_NoUserInContext(t *testing.T) {
	_, router := habitRouter(&mockHabitService{}, nil)
	body := jsonBody(t, models.HabitCreate{Title: "Morning run"})
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/habits/", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListHabits_PassesIncludeInactive(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{name: "default excludes inactive", target: "/api/habits/", want: false},
		{name: "query flag includes inactive", target: "/api/habits/?include_inactive=true", want: true},
		{name: "other values ignored", target: "/api/habits/?include_inactive=1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotInclude bool
			habits := &mockHabitService{
				listFn: func(_ context.Context, _ string, includeInactive bool) ([]models.Habit, error) {
					gotInclude = includeInactive
					return []models.Habit{}, nil
				},
			}

			_, router := habitRouter(habits, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, authedRequest(http.MethodGet, tt.target, ""))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, gotInclude)
		})
	}
}

func TestListHabits_EmptyListIsJSONArray(t *testing.T) {
	habits := &mockHabitService{
		listFn: func(_ context.Context, _ string, _ bool) ([]models.Habit, error) {
			return []models.Habit{}, nil
		},
	}

	_, router := habitRouter(habits, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/habits/", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetHabit_NotFound(t *testing.T) {
	habits := &mockHabitService{
		getFn: func(_ context.Context, _ string, _ int64) (models.Habit, error) {
			return models.Habit{}, service.ErrHabitNotFound
		},
	}

	_, router := habitRouter(habits, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/habits/42/", ""))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.ErrHabitNotFound.Error(), resp.Error)
}

func TestGetHabit_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-5"} {
		t.Run(id, func(t *testing.T) {
			_, router := habitRouter(&mockHabitService{}, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/habits/"+id+"/", ""))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateHabit_Success(t *testing.T) {
	newTitle := "Evening run"
	habits := &mockHabitService{
		updateFn: func(_ context.Context, userID string, habitID int64, update models.HabitUpdate) (models.Habit, error) {
			assert.Equal(t, testUser.UserID, userID)
			assert.Equal(t, int64(42), habitID)
			require.NotNil(t, update.Title)
			assert.Equal(t, newTitle, *update.Title)
			return models.Habit{ID: habitID, UserID: userID, Title: newTitle}, nil
		},
	}

	_, router := habitRouter(habits, nil)
	body := jsonBody(t, models.HabitUpdate{Title: &newTitle})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/habits/42/", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Habit
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, newTitle, updated.Title)
}

func TestDeleteHabit_Success(t *testing.T) {
	var deletedID int64
	habits := &mockHabitService{
		deleteFn: func(_ context.Context, _ string, habitID int64) error {
			deletedID = habitID
			return nil
		},
	}

	_, router := habitRouter(habits, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/habits/42/", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), deletedID)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "habit deleted", resp.Message)
}

func TestDeleteHabit_ForeignHabit(t *testing.T) {
	habits := &mockHabitService{
		deleteFn: func(_ context.Context, _ string, _ int64) error {
			return service.ErrHabitNotFound
		},
	}

	_, router := habitRouter(habits, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/habits/7/", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
