package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	playerservice "github.com/card-table-club/tally-bot/app/modules/player/application"
)

// PlayerHandler exposes the player registry over HTTP.
type PlayerHandler struct {
	service playerservice.Service
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service playerservice.Service) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// CreatePlayerDto represents the input data for registering a player.
type CreatePlayerDto struct {
	Name string `json:"name"`
}

func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input CreatePlayerDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	player, err := h.service.CreatePlayer(r.Context(), input.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.ListPlayers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// Routes sets up the routes for the player handler.
func (h *PlayerHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPlayers)
	r.Post("/", h.CreatePlayer)
	return r
}
