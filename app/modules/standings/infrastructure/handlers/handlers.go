package standingshandlers

import (
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/card-table-club/tally-bot/app/events"
	standingsservice "github.com/card-table-club/tally-bot/app/modules/standings/application"
)

// StandingsHandlers refreshes the snapshot whenever tables, scores, or
// players change. The refresh is a full recompute, so the handlers only need
// to know that something changed, not what.
type StandingsHandlers struct {
	service standingsservice.Service
	logger  *slog.Logger
}

// NewStandingsHandlers creates a new instance of StandingsHandlers.
func NewStandingsHandlers(service standingsservice.Service, logger *slog.Logger) Handlers {
	return &StandingsHandlers{
		service: service,
		logger:  logger,
	}
}

func (h *StandingsHandlers) HandleTableChanged(msg *message.Message) error {
	var payload events.TableChangedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// A malformed payload will never become parseable; drop it.
		h.logger.ErrorContext(msg.Context(), "Discarding malformed table.changed payload",
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
		return nil
	}

	h.logger.InfoContext(msg.Context(), "Table changed, refreshing standings",
		slog.Int64("table_id", payload.TableID),
		slog.String("reason", payload.Reason),
	)
	return h.refresh(msg)
}

func (h *StandingsHandlers) HandleScoreChanged(msg *message.Message) error {
	var payload events.ScoreChangedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.logger.ErrorContext(msg.Context(), "Discarding malformed score.changed payload",
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
		return nil
	}

	h.logger.InfoContext(msg.Context(), "Score changed, refreshing standings",
		slog.Int64("round_id", payload.RoundID),
		slog.Int64("player_id", payload.PlayerID),
	)
	return h.refresh(msg)
}

func (h *StandingsHandlers) HandlePlayerChanged(msg *message.Message) error {
	var payload events.PlayerChangedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.logger.ErrorContext(msg.Context(), "Discarding malformed player.changed payload",
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
		return nil
	}

	h.logger.InfoContext(msg.Context(), "Player changed, refreshing standings",
		slog.Int64("player_id", payload.PlayerID),
	)
	return h.refresh(msg)
}

// refresh recomputes the snapshot. Errors propagate so the router's retry
// middleware redelivers the message.
func (h *StandingsHandlers) refresh(msg *message.Message) error {
	if _, err := h.service.RefreshSnapshot(msg.Context()); err != nil {
		h.logger.ErrorContext(msg.Context(), "Failed to refresh standings snapshot",
			slog.String("message_id", msg.UUID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
