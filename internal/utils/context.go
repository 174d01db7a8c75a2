// Package utils holds small helpers shared by the server and client:
// typed context keys, JSON responses, the resty client wrapper, JWT handling
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values set here cannot
// collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")

	// EmailCtxKey stores the authenticated account e-mail (string).
	EmailCtxKey = contextKey("email")
)

// WithUser returns a copy of ctx carrying the authenticated user id and e-mail.
func WithUser(ctx context.Context, userID int64, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, EmailCtxKey, email)
}

// GetUserIDFromContext returns the user id stored under UserIDCtxKey.
// ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetEmailFromContext returns the account e-mail stored under EmailCtxKey.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}
