package standingshandlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/card-table-club/tally-bot/app/events"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
)

func eventMessage(t *testing.T, payload any) *message.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return message.NewMessage("test-id", raw)
}

func TestHandleTableChanged(t *testing.T) {
	t.Run("refreshes the snapshot", func(t *testing.T) {
		svc := &FakeStandingsService{}
		h := NewStandingsHandlers(svc, slog.Default())

		msg := eventMessage(t, events.TableChangedPayload{
			TableID:    7,
			Reason:     "round_created",
			OccurredAt: time.Now().UTC(),
		})
		require.NoError(t, h.HandleTableChanged(msg))
		assert.Equal(t, 1, svc.Refreshes)
	})

	t.Run("malformed payload is dropped without a refresh", func(t *testing.T) {
		svc := &FakeStandingsService{}
		h := NewStandingsHandlers(svc, slog.Default())

		msg := message.NewMessage("test-id", []byte("{not json"))
		require.NoError(t, h.HandleTableChanged(msg), "redelivery cannot fix a broken payload")
		assert.Zero(t, svc.Refreshes)
	})

	t.Run("refresh failure propagates for redelivery", func(t *testing.T) {
		boom := errors.New("db unavailable")
		svc := &FakeStandingsService{
			RefreshSnapshotFunc: func(ctx context.Context) (*standingsdb.Snapshot, error) {
				return nil, boom
			},
		}
		h := NewStandingsHandlers(svc, slog.Default())

		msg := eventMessage(t, events.TableChangedPayload{TableID: 7})
		assert.ErrorIs(t, h.HandleTableChanged(msg), boom)
	})
}

func TestHandleScoreChanged(t *testing.T) {
	svc := &FakeStandingsService{}
	h := NewStandingsHandlers(svc, slog.Default())

	msg := eventMessage(t, events.ScoreChangedPayload{
		RoundID:    42,
		PlayerID:   3,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, h.HandleScoreChanged(msg))
	assert.Equal(t, 1, svc.Refreshes)
}

func TestHandlePlayerChanged(t *testing.T) {
	svc := &FakeStandingsService{}
	h := NewStandingsHandlers(svc, slog.Default())

	msg := eventMessage(t, events.PlayerChangedPayload{
		PlayerID:   3,
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, h.HandlePlayerChanged(msg))
	assert.Equal(t, 1, svc.Refreshes)
}
