package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuthMiddleware_StoresResolvedUser(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, accessToken string) (models.User, error) {
			assert.Equal(t, "valid.jwt", accessToken)
			return testUser, nil
		},
	}
	h := newTestHandler(auth, nil, nil)

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		got, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, testUser.UserID, got.UserID)
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeAuth(h, "Bearer valid.jwt", next)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// TestAuthMiddleware_UniformRejection verifies that every failure mode maps
// to the same 401 body, so a caller cannot tell a missing header from a
// forged token or a deactivated account.
func TestAuthMiddleware_UniformRejection(t *testing.T) {
	auth := &mockAuthService{
		resolveFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrUnauthenticated
		},
	}
	h := newTestHandler(auth, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer"},
		{name: "rejected token", header: "Bearer forged.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeAuth(h, tt.header, next)

			require.Equal(t, http.StatusUnauthorized, rr.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, service.ErrUnauthenticated.Error(), resp.Error)
		})
	}
}
