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

func TestMe_ReturnsContextUser(t *testing.T) {
	h := newTestHandler(nil, nil, nil)
	req := injectUser(injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)), testUser)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testUser.UserID, got.UserID)
	assert.Equal(t, testUser.Username, got.Username)
}

func TestMe_NoUserInContext(t *testing.T) {
	h := newTestHandler(nil, nil, nil)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	rec := httptest.NewRecorder()

	h.me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePassword_Success(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, userID string, req models.ChangePasswordRequest) error {
			assert.Equal(t, testUser.UserID, userID)
			assert.Equal(t, "old password", req.CurrentPassword)
			assert.Equal(t, "new password!", req.NewPassword)
			return nil
		},
	}

	h := newTestHandler(auth, nil, nil)
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "old password", NewPassword: "new password!"})
	req := injectUser(injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))), testUser)
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "password changed", resp.Message)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	auth := &mockAuthService{
		changePasswordFn: func(_ context.Context, _ string, _ models.ChangePasswordRequest) error {
			return service.ErrWrongCurrentPassword
		},
	}

	h := newTestHandler(auth, nil, nil)
	body := jsonBody(t, models.ChangePasswordRequest{CurrentPassword: "guess", NewPassword: "new password!"})
	req := injectUser(injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/password", strings.NewReader(body))), testUser)
	rec := httptest.NewRecorder()

	h.changePassword(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.ErrWrongCurrentPassword.Error(), resp.Error)
}

// adminRouter wires the admin routes so the {userID} path parameter resolves.
func adminRouter(auth service.AuthService) *chi.Mux {
	h := newTestHandler(auth, nil, nil)

	router := chi.NewRouter()
	router.Post("/api/admin/users/{userID}/activate", h.activateUser)
	router.Post("/api/admin/users/{userID}/deactivate", h.deactivateUser)
	return router
}

func TestSetUserActive_FlipsBothWays(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantActive  bool
		wantMessage string
	}{
		{name: "activate", target: "/api/admin/users/u-1/activate", wantActive: true, wantMessage: "user activated"},
		{name: "deactivate", target: "/api/admin/users/u-1/deactivate", wantActive: false, wantMessage: "user deactivated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			var gotActive bool
			auth := &mockAuthService{
				setActiveFn: func(_ context.Context, userID string, active bool) (models.User, error) {
					gotID = userID
					gotActive = active
					return models.User{UserID: userID, IsActive: active}, nil
				},
			}

			router := adminRouter(auth)
			req := injectUser(injectNopLogger(httptest.NewRequest(http.MethodPost, tt.target, nil)), testUser)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "u-1", gotID)
			assert.Equal(t, tt.wantActive, gotActive)

			var resp models.MessageResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestSetUserActive_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		setActiveFn: func(_ context.Context, _ string, _ bool) (models.User, error) {
			return models.User{}, service.ErrUserNotFound
		},
	}

	router := adminRouter(auth)
	req := injectUser(injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/admin/users/ghost/deactivate", nil)), testUser)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
