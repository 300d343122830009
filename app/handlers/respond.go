package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	playerservice "github.com/card-table-club/tally-bot/app/modules/player/application"
	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
	tableservice "github.com/card-table-club/tally-bot/app/modules/table/application"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps service errors onto HTTP statuses. Validation failures are
// the caller's fault, missing rows are 404, everything else is opaque.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, playerservice.ErrValidation), errors.Is(err, tableservice.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, playerdb.ErrNotFound),
		errors.Is(err, tabledb.ErrNotFound),
		errors.Is(err, rounddb.ErrNotFound),
		errors.Is(err, standingsdb.ErrNoSnapshot):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
