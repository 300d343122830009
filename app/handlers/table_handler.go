package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	tableservice "github.com/card-table-club/tally-bot/app/modules/table/application"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

// TableHandler exposes table lifecycle and roster operations over HTTP.
type TableHandler struct {
	service tableservice.Service
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(service tableservice.Service) *TableHandler {
	return &TableHandler{service: service}
}

// CreateTableDto represents the input data for opening a table.
type CreateTableDto struct {
	Name string `json:"name"`
}

func (h *TableHandler) CreateTable(w http.ResponseWriter, r *http.Request) {
	var input CreateTableDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	table, err := h.service.CreateTable(r.Context(), input.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *TableHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	var filter tabledb.ListFilter

	if raw := r.URL.Query().Get("is_open"); raw != "" {
		isOpen, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "is_open must be a boolean"})
			return
		}
		filter.IsOpen = &isOpen
	}
	if raw := r.URL.Query().Get("created_after"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "created_after must be RFC3339"})
			return
		}
		filter.CreatedAfter = &t
	}

	tables, err := h.service.ListTables(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

// UpdateTableDto represents the input data for flipping a table's flags.
// Absent fields leave the current value untouched.
type UpdateTableDto struct {
	IsOpen             *bool `json:"is_open"`
	ExcludeFromOverall *bool `json:"exclude_from_overall"`
}

func (h *TableHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := idParam(r, "tableID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid table id"})
		return
	}

	var input UpdateTableDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	table, err := h.service.UpdateTable(r.Context(), tableID, tabledb.UpdatePatch{
		IsOpen:             input.IsOpen,
		ExcludeFromOverall: input.ExcludeFromOverall,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *TableHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	tableID, err := idParam(r, "tableID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid table id"})
		return
	}

	roster, err := h.service.GetRoster(r.Context(), tableID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// AddPlayerDto represents the input data for seating a player at a table.
type AddPlayerDto struct {
	PlayerID int64 `json:"player_id"`
}

func (h *TableHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	tableID, err := idParam(r, "tableID")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid table id"})
		return
	}

	var input AddPlayerDto
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.AddPlayerToTable(r.Context(), tableID, input.PlayerID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Routes sets up the routes for the table handler. roundRoutes carries the
// round handler's table-scoped routes so they nest under /{tableID}/rounds.
func (h *TableHandler) Routes(roundRoutes chi.Router) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTables)
	r.Post("/", h.CreateTable)
	r.Patch("/{tableID}", h.UpdateTable)
	r.Get("/{tableID}/roster", h.GetRoster)
	r.Post("/{tableID}/players", h.AddPlayer)
	r.Mount("/{tableID}/rounds", roundRoutes)
	return r
}
