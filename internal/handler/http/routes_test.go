package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoutes_ProtectedEndpointsRequireToken runs requests through the full
// middleware chain built by Init and checks that the auth gate holds.
func TestRoutes_ProtectedEndpointsRequireToken(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrUnauthenticated
		},
	}
	h := newTestHandler(auth, &mockHabitService{}, &mockTrackingService{})
	router := h.Init()

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/auth/password"},
		{http.MethodGet, "/api/habits"},
		{http.MethodPost, "/api/habits"},
		{http.MethodGet, "/api/habits/1"},
		{http.MethodPost, "/api/habits/1/track"},
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRoutes_PublicEndpointsSkipAuth(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return testUser, nil
		},
		createTokenPairFn: func(_ context.Context, _ models.User) (models.TokenPair, error) {
			return stubPair(), nil
		},
	}
	h := newTestHandler(auth, nil, nil)
	router := h.Init()

	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "correct horse"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// TestRoutes_FullAuthedFlow drives a habit read end to end: bearer token in,
// resolved user, path parameter, JSON out.
func TestRoutes_FullAuthedFlow(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, accessToken string) (models.User, error) {
			require.Equal(t, "valid.jwt", accessToken)
			return testUser, nil
		},
	}
	habits := &mockHabitService{
		getFn: func(_ context.Context, userID string, habitID int64) (models.Habit, error) {
			assert.Equal(t, testUser.UserID, userID)
			assert.Equal(t, int64(7), habitID)
			return models.Habit{ID: 7, UserID: userID, Title: "Read", IsActive: true}, nil
		},
	}
	h := newTestHandler(auth, habits, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/habits/7", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Read"`)
}
