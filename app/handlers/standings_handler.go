package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	standingsservice "github.com/card-table-club/tally-bot/app/modules/standings/application"
)

// StandingsHandler exposes the aggregation core over HTTP. Window boundaries
// accept RFC3339, plain dates, and natural language ("last month").
type StandingsHandler struct {
	service standingsservice.Service
}

// NewStandingsHandler creates a new StandingsHandler.
func NewStandingsHandler(service standingsservice.Service) *StandingsHandler {
	return &StandingsHandler{service: service}
}

// options merges query-string overrides into the configured defaults.
func (h *StandingsHandler) options(r *http.Request) (standingsservice.Options, error) {
	opts, err := h.service.DefaultOptions(r.Context())
	if err != nil {
		return standingsservice.Options{}, err
	}

	now := time.Now().UTC()
	query := r.URL.Query()
	windowChanged := false

	if raw := query.Get("from"); raw != "" {
		from, err := standingsservice.ParseWindowArg(raw, now, false)
		if err != nil {
			return standingsservice.Options{}, err
		}
		opts.From = from
		windowChanged = true
	}
	if raw := query.Get("to"); raw != "" {
		to, err := standingsservice.ParseWindowArg(raw, now, true)
		if err != nil {
			return standingsservice.Options{}, err
		}
		opts.To = to
		windowChanged = true
	}
	if raw := query.Get("include_open"); raw != "" {
		includeOpen, err := strconv.ParseBool(raw)
		if err != nil {
			return standingsservice.Options{}, err
		}
		opts.IncludeOpen = includeOpen
	}

	// The default options carry adjustments resolved against the default
	// window. A caller-supplied window needs its own resolution pass, or
	// window-scoped corrections land on the wrong requests.
	if windowChanged {
		return h.service.WindowOptions(r.Context(), opts.From, opts.To, opts.IncludeOpen)
	}
	return opts, nil
}

func (h *StandingsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entries, err := h.service.Leaderboard(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *StandingsHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	points, err := h.service.Timeline(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *StandingsHandler) GetTimelineChart(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	png, err := h.service.TimelineChartPNG(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *StandingsHandler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	opts, err := h.options(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	xlsx, err := h.service.ExportLeaderboardXLSX(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(xlsx)
}

func (h *StandingsHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.LatestSnapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Routes sets up the routes for the standings handler.
func (h *StandingsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/leaderboard", h.GetLeaderboard)
	r.Get("/leaderboard/export.xlsx", h.ExportLeaderboard)
	r.Get("/timeline", h.GetTimeline)
	r.Get("/timeline/chart.png", h.GetTimelineChart)
	r.Get("/snapshot", h.GetSnapshot)
	return r
}
