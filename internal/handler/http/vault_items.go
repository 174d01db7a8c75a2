package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klaus-0-0/vault/internal/app"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/internal/utils"
	"github.com/klaus-0-0/vault/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrValidationNoUserID, "no user in context")
		return
	}

	items, err := h.services.VaultItemService.List(ctx, userID)
	if err != nil {
		h.writeError(w, r, err, "listing vault items failed")
		return
	}

	_, _ = utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrValidationNoUserID, "no user in context")
		return
	}

	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(ErrInvalidJSON.Error())
		utils.WriteMessage(w, app.MsgEncryptedDataRequired, http.StatusBadRequest)
		return
	}

	item, err := h.services.VaultItemService.Create(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err, "creating vault item failed")
		return
	}

	log.Info().Int64("user_id", userID).Str("id", item.ID).Msg("vault item created")
	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrValidationNoUserID, "no user in context")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.services.VaultItemService.Delete(ctx, userID, id); err != nil {
		h.writeError(w, r, err, "deleting vault item failed")
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Str("id", id).Msg("vault item deleted")
	utils.WriteMessage(w, app.MsgItemDeleted, http.StatusOK)
}
