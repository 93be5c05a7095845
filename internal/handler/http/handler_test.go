// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn        func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn           func(ctx context.Context, req models.LoginRequest) (models.User, error)
	refreshFn         func(ctx context.Context, refreshToken string) (models.User, error)
	resolveFn         func(ctx context.Context, accessToken string) (models.User, error)
	createTokenPairFn func(ctx context.Context, user models.User) (models.TokenPair, error)
	changePasswordFn  func(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	setActiveFn       func(ctx context.Context, userID string, active bool) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.User, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) Resolve(ctx context.Context, accessToken string) (models.User, error) {
	return m.resolveFn(ctx, accessToken)
}

func (m *mockAuthService) CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	return m.createTokenPairFn(ctx, user)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, userID, req)
}

func (m *mockAuthService) SetActive(ctx context.Context, userID string, active bool) (models.User, error) {
	return m.setActiveFn(ctx, userID, active)
}

// ─────────────────────────────────────────────
// Mock HabitService
// ─────────────────────────────────────────────

type mockHabitService struct {
	createFn func(ctx context.Context, userID string, req models.HabitCreate) (models.Habit, error)
	listFn   func(ctx context.Context, userID string, includeInactive bool) ([]models.Habit, error)
	getFn    func(ctx context.Context, userID string, habitID int64) (models.Habit, error)
	updateFn func(ctx context.Context, userID string, habitID int64, update models.HabitUpdate) (models.Habit, error)
	deleteFn func(ctx context.Context, userID string, habitID int64) error
}

func (m *mockHabitService) Create(ctx context.Context, userID string, req models.HabitCreate) (models.Habit, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockHabitService) List(ctx context.Context, userID string, includeInactive bool) ([]models.Habit, error) {
	return m.listFn(ctx, userID, includeInactive)
}

func (m *mockHabitService) Get(ctx context.Context, userID string, habitID int64) (models.Habit, error) {
	return m.getFn(ctx, userID, habitID)
}

func (m *mockHabitService) Update(ctx context.Context, userID string, habitID int64, update models.HabitUpdate) (models.Habit, error) {
	return m.updateFn(ctx, userID, habitID, update)
}

func (m *mockHabitService) Delete(ctx context.Context, userID string, habitID int64) error {
	return m.deleteFn(ctx, userID, habitID)
}

// ─────────────────────────────────────────────
// Mock TrackingService
// ─────────────────────────────────────────────

type mockTrackingService struct {
	trackFn   func(ctx context.Context, userID string, habitID int64, req models.TrackRequest) (models.HabitTracking, error)
	historyFn func(ctx context.Context, userID string, habitID int64) ([]models.HabitTracking, error)
}

func (m *mockTrackingService) Track(ctx context.Context, userID string, habitID int64, req models.TrackRequest) (models.HabitTracking, error) {
	return m.trackFn(ctx, userID, habitID, req)
}

func (m *mockTrackingService) History(ctx context.Context, userID string, habitID int64) ([]models.HabitTracking, error) {
	return m.historyFn(ctx, userID, habitID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testCfg = config.App{
	AccessTokenTTL:  15 * time.Minute,
	RefreshTokenTTL: 720 * time.Hour,
}

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are fine for handlers the test never reaches.
func newTestHandler(auth service.AuthService, habits service.HabitService, tracking service.TrackingService) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:     auth,
			HabitService:    habits,
			TrackingService: tracking,
		},
		cfg:    testCfg,
		logger: logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context so handlers
// called outside the middleware chain still find one.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

// injectUser stores u in the request context the way the auth middleware does.
func injectUser(r *http.Request, u models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserCtxKey, u)
	return r.WithContext(ctx)
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubPair returns a TokenPair with recognisable signed strings.
func stubPair() models.TokenPair {
	return models.TokenPair{
		AccessToken:  models.Token{SignedString: "signed.access.token"},
		RefreshToken: models.Token{SignedString: "signed.refresh.token"},
	}
}

// testUser is a convenience fixture used across multiple tests.
var testUser = models.User{
	UserID:   "11111111-2222-3333-4444-555555555555",
	Username: "alice",
	Email:    "alice@example.com",
	IsActive: true,
}
