package http

import (
	"net/http"
	"strings"

	"github.com/klaus-0-0/vault/internal/app"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/utils"
)

// auth enforces bearer-token authentication.
//
// A missing or malformed "Authorization" header is answered with 401 and
// [app.MsgAccessTokenRequired]; a token that fails
// [service.AuthService.ParseToken] with 401 and
// [app.MsgTokenIsExpiredOrInvalid]. On success the user id and e-mail are
// stored in the request context via [utils.WithUser].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, app.MsgAccessTokenRequired, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteMessage(w, app.MsgAccessTokenRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.Claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when the scheme is not Bearer or
// the token part is missing, and [ErrEmptyToken] when the token is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
