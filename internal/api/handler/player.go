package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DenysFlnk/playerroster/internal/api/apierr"
	"github.com/DenysFlnk/playerroster/internal/api/request"
	"github.com/DenysFlnk/playerroster/internal/api/response"
	"github.com/DenysFlnk/playerroster/internal/model"
	"github.com/DenysFlnk/playerroster/internal/services/player"
)

// PlayerHandler handles player CRUD endpoints
type PlayerHandler struct {
	playerService *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// List handles GET /players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := request.ParseFilter(q)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	page, err := request.ParsePage(q)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	order, err := request.ParseOrder(q)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	players, err := h.playerService.List(r.Context(), filter, page, order)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Count handles GET /players/count. Paging keys are ignored.
func (h *PlayerHandler) Count(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseFilter(r.URL.Query())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	count, err := h.playerService.Count(r.Context(), filter)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, count)
}

// Create handles POST /players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	patch, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	created, err := h.playerService.Create(r.Context(), patch)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(created))
}

// Get handles GET /players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.playerService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(found))
}

// Update handles POST /players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	patch, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	updated, err := h.playerService.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(updated))
}

// Delete handles DELETE /players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Empty(w)
}

func (h *PlayerHandler) decodePayload(w http.ResponseWriter, r *http.Request) (patch model.PlayerPatch, ok bool) {
	var payload request.PlayerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return patch, false
	}

	patch, err := payload.ToPatch()
	if err != nil {
		apierr.WriteError(w, err)
		return patch, false
	}
	return patch, true
}
