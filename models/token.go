package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the custom "tkn" claim. The kind marker prevents a
// long-lived refresh token from being replayed where an access token is
// expected and vice versa.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// Claims is the JWT claim set issued by this service. It extends the
// registered claim set with the token kind marker.
type Claims struct {
	jwt.RegisteredClaims

	// Kind distinguishes access tokens from refresh tokens.
	Kind string `json:"tkn"`
}

// Token wraps a signed JWT with convenience accessors for authentication
// flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
//
// UserID is a cached copy of the "sub" (subject) claim, populated at issue
// and parse time so callers do not re-inspect claims.
type Token struct {
	// Claims is the decoded claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// Kind returns the token kind marker ("access" or "refresh").
func (t *Token) Kind() string {
	return t.Claims.Kind
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair bundles the access/refresh tokens returned by registration,
// login, and refresh operations.
type TokenPair struct {
	AccessToken  Token
	RefreshToken Token
}
