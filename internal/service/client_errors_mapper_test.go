package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/klaus-0-0/vault/internal/adapter"
	"github.com/klaus-0-0/vault/internal/app"
	"github.com/klaus-0-0/vault/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"bad request", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided), ErrInvalidDataProvided},
		{"invalid credentials", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials), ErrWrongPassword},
		{"expired token", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"missing token", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgAccessTokenRequired), ErrTokenIsExpiredOrInvalid},
		{"user not found", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgUserNotFound), store.ErrNoUserWasFound},
		{"item not found", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgItemNotFound), store.ErrItemNotFound},
		{"email taken", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgUserAlreadyExists), store.ErrEmailAlreadyExists},
		{"rate limited", fmt.Errorf("%w: %s", adapter.ErrTooManyRequests, app.MsgTooManyRequests), ErrTooManyAttempts},
		{"unknown unauthorized passes through", fmt.Errorf("%w: other", adapter.ErrUnauthorized), adapter.ErrUnauthorized},
		{"transport error passes through", plain, plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "User not found", extractBody(fmt.Errorf("%w: User not found", adapter.ErrNotFound)))
	assert.Equal(t, "no separator", extractBody(errors.New("no separator")))
}
