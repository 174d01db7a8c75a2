package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/klaus-0-0/vault/internal/app"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/utils"
	"github.com/klaus-0-0/vault/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(ErrInvalidJSON.Error())
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "signup failed")
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")
	h.writeAuthResponse(w, r, user, app.MsgSignupSuccessful)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(ErrInvalidJSON.Error())
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "login failed")
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	h.writeAuthResponse(w, r, user, app.MsgLoginSuccessful)
}

// writeAuthResponse issues a token for user and returns it both in the body
// and in the Authorization header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, message string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message: message,
		User: models.User{
			UserID:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: token.SignedString,
	}, http.StatusOK)
}

// writeError logs err with msg and writes the mapped status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteMessage(w, message, status)
}
