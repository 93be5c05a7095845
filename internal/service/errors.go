package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrIdentifierTaken is returned by Register when the requested username
	// or email already belongs to an account.
	ErrIdentifierTaken = errors.New("username or email already registered")

	// ErrInvalidCredentials is returned by Login for every authentication
	// failure: unknown email, wrong password, and a deactivated account all
	// produce the same error so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated is returned whenever a token cannot be resolved to
	// a live, active user. Expired, forged and orphaned tokens are
	// indistinguishable to the caller.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrWrongCurrentPassword is returned by ChangePassword when the
	// supplied current password does not verify.
	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	ErrUserNotFound  = errors.New("user not found")
	ErrHabitNotFound = errors.New("habit not found")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
