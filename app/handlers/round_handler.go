package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	roundservice "github.com/card-table-club/tally-bot/app/modules/round/application"
)

// RoundHandler exposes round and score operations over HTTP.
type RoundHandler struct {
	service roundservice.Service
}

// NewRoundHandler creates a new RoundHandler.
func NewRoundHandler(service roundservice.Service) *RoundHandler {
	return &RoundHandler{service: service}
}

func (h *RoundHandler) CreateRound(w http.ResponseWriter, r *http.Request) {
	tableID, err := idParam(r, "tableID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid table id"})
		return
	}

	round, err := h.service.CreateRound(r.Context(), tableID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, round)
}

func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	tableID, err := idParam(r, "tableID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid table id"})
		return
	}

	rounds, err := h.service.ListRounds(r.Context(), tableID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

// UpsertScoreDto represents the input data for recording a raw score.
type UpsertScoreDto struct {
	RawScore int `json:"raw_score"`
}

func (h *RoundHandler) UpsertScore(w http.ResponseWriter, r *http.Request) {
	roundID, err := idParam(r, "roundID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid round id"})
		return
	}
	playerID, err := idParam(r, "playerID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid player id"})
		return
	}

	var input UpsertScoreDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.UpsertScore(r.Context(), roundID, playerID, input.RawScore); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RoundHandler) ValidateRound(w http.ResponseWriter, r *http.Request) {
	roundID, err := idParam(r, "roundID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid round id"})
		return
	}

	check, err := h.service.ValidateRound(r.Context(), roundID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

// TableRoutes sets up the round routes nested under a table.
func (h *RoundHandler) TableRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListRounds)
	r.Post("/", h.CreateRound)
	return r
}

// Routes sets up the top-level round routes.
func (h *RoundHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Put("/{roundID}/scores/{playerID}", h.UpsertScore)
	r.Get("/{roundID}/validate", h.ValidateRound)
	return r
}
