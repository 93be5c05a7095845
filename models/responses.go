package models

// AuthResponse is returned by registration, login, and refresh. Token
// lifetimes are reported in seconds so clients can schedule refreshes
// without decoding the JWT.
type AuthResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`

	// User is omitted in refresh responses.
	User *User `json:"user,omitempty"`
}

// MessageResponse is a generic single-message payload used by endpoints
// without a richer result (logout, password change, admin flips).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body produced by the HTTP layer.
// It carries the normalized outward message only; internal details never
// cross the boundary.
type ErrorResponse struct {
	Error string `json:"error"`
}
