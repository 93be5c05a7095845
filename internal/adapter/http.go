package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	accessToken  string
	refreshToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.BaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg *config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetTokens implements [ServerAdapter]. Both values are whitespace-trimmed.
func (h *httpServerAdapter) SetTokens(accessToken, refreshToken string) {
	h.accessToken = strings.TrimSpace(accessToken)
	h.refreshToken = strings.TrimSpace(refreshToken)
}

// AccessToken implements [ServerAdapter].
func (h *httpServerAdapter) AccessToken() string {
	return h.accessToken
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register and stores the issued token pair on success.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetTokens(auth.AccessToken, auth.RefreshToken)
	return auth, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the issued token pair on success.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetTokens(auth.AccessToken, auth.RefreshToken)
	return auth, nil
}

// Refresh implements [ServerAdapter]. It exchanges the stored refresh token
// for a new pair via POST /api/auth/refresh.
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.AuthResponse, error) {
	if h.refreshToken == "" {
		return models.AuthResponse{}, fmt.Errorf("refresh: %w", ErrUnauthorized)
	}

	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: h.refreshToken}).
		SetResult(&auth).
		Post("/api/auth/refresh")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetTokens(auth.AccessToken, auth.RefreshToken)
	return auth, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedJSON(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&user).Get("/api/auth/me")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Logout implements [ServerAdapter]. The stored pair is dropped regardless
// of the server's answer; tokens are stateless on the server side.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedJSON(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Post("/api/auth/logout")
	})

	h.SetTokens("", "")

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// ChangePassword implements [ServerAdapter].
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).Post("/api/auth/password")
	})
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	return mapHTTPError(resp)
}

// CreateHabit implements [ServerAdapter].
func (h *httpServerAdapter) CreateHabit(ctx context.Context, req models.HabitCreate) (models.Habit, error) {
	var created models.Habit

	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).SetResult(&created).Post("/api/habits")
	})
	if err != nil {
		return models.Habit{}, fmt.Errorf("create habit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	return created, nil
}

// ListHabits implements [ServerAdapter].
func (h *httpServerAdapter) ListHabits(ctx context.Context, includeInactive bool) ([]models.Habit, error) {
	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		if includeInactive {
			r.SetQueryParam("include_inactive", "true")
		}
		return r.Get("/api/habits")
	})
	if err != nil {
		return nil, fmt.Errorf("list habits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var habits []models.Habit
	if err = json.Unmarshal(resp.Body(), &habits); err != nil {
		return nil, fmt.Errorf("decode habit list: %w", err)
	}

	return habits, nil
}

// GetHabit implements [ServerAdapter].
func (h *httpServerAdapter) GetHabit(ctx context.Context, habitID int64) (models.Habit, error) {
	var habit models.Habit

	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&habit).Get(habitPath(habitID))
	})
	if err != nil {
		return models.Habit{}, fmt.Errorf("get habit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

// UpdateHabit implements [ServerAdapter].
func (h *httpServerAdapter) UpdateHabit(ctx context.Context, habitID int64, update models.HabitUpdate) (models.Habit, error) {
	var updated models.Habit

	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(update).SetResult(&updated).Patch(habitPath(habitID))
	})
	if err != nil {
		return models.Habit{}, fmt.Errorf("update habit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	return updated, nil
}

// DeleteHabit implements [ServerAdapter].
func (h *httpServerAdapter) DeleteHabit(ctx context.Context, habitID int64) error {
	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Delete(habitPath(habitID))
	})
	if err != nil {
		return fmt.Errorf("delete habit request: %w", err)
	}
	return mapHTTPError(resp)
}

// Track implements [ServerAdapter].
func (h *httpServerAdapter) Track(ctx context.Context, habitID int64, req models.TrackRequest) (models.HabitTracking, error) {
	var saved models.HabitTracking

	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).SetResult(&saved).Post(habitPath(habitID) + "/track")
	})
	if err != nil {
		return models.HabitTracking{}, fmt.Errorf("track request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HabitTracking{}, err
	}

	return saved, nil
}

// History implements [ServerAdapter].
func (h *httpServerAdapter) History(ctx context.Context, habitID int64) ([]models.HabitTracking, error) {
	resp, err := h.authedJSON(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get(habitPath(habitID) + "/track")
	})
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.HabitTracking
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode tracking history: %w", err)
	}

	return records, nil
}

// authedJSON sends an authenticated JSON request. When the server answers
// 401 and a refresh token is on hand, the pair is refreshed once and the
// request replayed with the new access token.
func (h *httpServerAdapter) authedJSON(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := send(h.newAuthedRequest(ctx))
	if err != nil {
		return resp, err
	}

	if resp.StatusCode() != http.StatusUnauthorized || h.refreshToken == "" {
		return resp, nil
	}

	if _, err := h.Refresh(ctx); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return resp, nil
		}
		return resp, err
	}

	h.logger.Debug().Msg("access token refreshed, replaying request")
	return send(h.newAuthedRequest(ctx))
}

func (h *httpServerAdapter) newAuthedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if h.accessToken != "" {
		req.SetHeader("Authorization", "Bearer "+h.accessToken)
	}
	return req
}

func habitPath(habitID int64) string {
	return "/api/habits/" + strconv.FormatInt(habitID, 10)
}
