package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/ansorokin/habit-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID (UUID string)
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//   - Kind      (tkn): "access" or "refresh"
//
// The kind claim is what stops a refresh token from being replayed where an
// access token is expected: parsing always names the expected kind.
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateToken(issuer, userID, kind string, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || kind == "" || ttl == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Kind: kind,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Kind (tkn) claim check against the expected kind
//   - Subject (sub) claim presence
//
// Every failure mode returns an error; callers are expected to collapse all
// of them into a single unauthenticated result, so the response never
// distinguishes an expired token from a forged one.
func ValidateAndParseToken(tokenString, signKey, issuer, kind string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Kind != kind {
		return models.Token{}, fmt.Errorf("unexpected token kind %q", claims.Kind)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Claims: *claims, SignedString: tokenString, UserID: claims.Subject}, nil
}
