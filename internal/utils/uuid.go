package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDs for new user records. v7 keeps
// index locality in the users table; it degrades to v4 only if the monotonic
// source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
