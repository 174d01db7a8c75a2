package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/klaus-0-0/vault/internal/app"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/internal/store"
	"github.com/klaus-0-0/vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignup_Success(t *testing.T) {
	h, m := newTestHandler(t)

	req := models.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}
	user := models.User{UserID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$hash"}

	m.auth.EXPECT().Signup(gomock.Any(), req).Return(user, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "jwt-token", UserID: 7}, nil)

	rec := serve(h, http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer jwt-token", rec.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgSignupSuccessful, resp.Message)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "secret1")
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid data",
			err:        fmt.Errorf("%w: bad email", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "email taken",
			err:        store.ErrEmailAlreadyExists,
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgUserAlreadyExists,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := serve(h, http.MethodPost, "/api/auth/signup", `{"email":"a@b.c"}`, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}

func TestSignup_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/auth/signup", `{not json`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeMessage(t, rec))
}

func TestSignup_TokenCreationFails(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rec := serve(h, http.MethodPost, "/api/auth/signup", `{}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)

	req := models.LoginRequest{Email: "bob@example.com", Password: "pw"}
	user := models.User{UserID: 3, Username: "bob", Email: "bob@example.com"}

	m.auth.EXPECT().Login(gomock.Any(), req).Return(user, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "tok"}, nil)

	rec := serve(h, http.MethodPost, "/api/auth/login", `{"email":"bob@example.com","password":"pw"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgLoginSuccessful, resp.Message)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "bob", resp.User.Username)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unknown email", store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			rec := serve(h, http.MethodPost, "/api/auth/login", `{"email":"x@y.z","password":"p"}`, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}
