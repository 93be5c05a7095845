// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/crypto"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/store"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/internal/validators"
	"github.com/ansorokin/habit-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies argon2id password hashes.
	hasher crypto.PasswordHasher

	// validator checks credential payloads before any storage access.
	validator validators.Validator

	// uuid issues identifiers for new accounts.
	uuid *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenTTL and refreshTokenTTL control how long issued tokens
	// remain valid.
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		hasher:          hasher,
		validator:       validator,
		uuid:            utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		logger:          logger,
	}
}

// Register creates a new user account.
//
// Both username and email must be free. The check runs twice: a lookup
// before the INSERT for a precise answer, and a translation of the unique
// constraint violation for the race where two registrations interleave.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided when the payload fails validation.
//   - ErrIdentifierTaken when the username or email is already registered.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, req.Email); err == nil {
		return models.User{}, ErrIdentifierTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, req.Username); err == nil {
		return models.User{}, ErrIdentifierTaken
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user lookup by username failed: %w", err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:         a.uuid.Generate(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrIdentifierTaken) {
			return models.User{}, ErrIdentifierTaken
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing user by email and password.
//
// Unknown email, wrong password, and a deactivated account all produce the
// same ErrInvalidCredentials so responses never reveal which accounts exist
// or which of them were deactivated.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid login data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	found, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, found.HashedPassword) {
		log.Warn().Str("user_id", found.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !found.IsActive {
		log.Warn().Str("user_id", found.UserID).Msg("login attempt on deactivated account")
		return models.User{}, ErrInvalidCredentials
	}

	return found, nil
}

// Refresh maps a refresh token to its live account. The caller is expected
// to issue a fresh token pair on success.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.User, error) {
	token, err := utils.ValidateAndParseToken(refreshToken, a.tokenSignKey, a.tokenIssuer, models.TokenKindRefresh)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	return a.resolveUser(ctx, token.UserID)
}

// Resolve maps an access token to its live account. Token validation
// failures, unknown subjects and deactivated accounts are all reported as
// ErrUnauthenticated.
func (a *authService) Resolve(ctx context.Context, accessToken string) (models.User, error) {
	token, err := utils.ValidateAndParseToken(accessToken, a.tokenSignKey, a.tokenIssuer, models.TokenKindAccess)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	return a.resolveUser(ctx, token.UserID)
}

func (a *authService) resolveUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthenticated
		}
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !found.IsActive {
		return models.User{}, ErrUnauthenticated
	}

	return found, nil
}

// CreateTokenPair issues a signed access and refresh token for the user.
func (a *authService) CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateToken(a.tokenIssuer, user.UserID, models.TokenKindAccess, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateToken(a.tokenIssuer, user.UserID, models.TokenKindRefresh, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// ChangePassword replaces the user's password after verifying the current one.
func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid password change data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	found, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if !a.hasher.Verify(req.CurrentPassword, found.HashedPassword) {
		return ErrWrongCurrentPassword
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if _, err := a.userRepository.UpdateUserFields(ctx, userID, map[string]any{"hashed_password": hash}); err != nil {
		log.Err(err).Str("user_id", userID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// SetActive flips the account's active flag. Deactivated accounts cannot log
// in and their tokens stop resolving; reactivating restores access without
// touching any data.
func (a *authService) SetActive(ctx context.Context, userID string, active bool) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := a.userRepository.UpdateUserFields(ctx, userID, map[string]any{"is_active": active})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("user_id", userID).Msg("account state update ended with error")
		return models.User{}, fmt.Errorf("account state update ended with error: %w", err)
	}

	return updated, nil
}
