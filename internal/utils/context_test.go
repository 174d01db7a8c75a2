// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "email", EmailCtxKey.String())
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), 42, "alice@example.com")

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	email, ok := GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice@example.com", email)
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   int64
		wantOK bool
	}{
		{"missing", context.Background(), 0, false},
		{"wrong type", context.WithValue(context.Background(), UserIDCtxKey, "42"), 0, false},
		{"zero value", context.WithValue(context.Background(), UserIDCtxKey, int64(0)), 0, true},
		{"different key", context.WithValue(context.Background(), contextKey("other"), int64(9)), 0, false},
		{"present", context.WithValue(context.Background(), UserIDCtxKey, int64(5)), 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	email, ok := GetEmailFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, email)
}
