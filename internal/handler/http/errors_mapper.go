package http

import (
	"errors"
	"net/http"

	"github.com/klaus-0-0/vault/internal/app"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrValidationNoUserID, errorResponse{http.StatusUnauthorized, app.MsgAccessTokenRequired}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, app.MsgInvalidCredentials}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{store.ErrEmailAlreadyExists, errorResponse{http.StatusConflict, app.MsgUserAlreadyExists}},
	{store.ErrNoUserWasFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrItemNotFound, errorResponse{http.StatusNotFound, app.MsgItemNotFound}},
}

// responseFromError maps a service or store error to a status code and the
// message written to the client. Anything unknown is a 500 whose details
// stay in the server log.
func responseFromError(err error) (int, string) {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.status, candidate.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
