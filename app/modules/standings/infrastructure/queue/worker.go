package standingsqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	standingsservice "github.com/card-table-club/tally-bot/app/modules/standings/application"
)

// SnapshotArgs is the periodic snapshot-refresh job. It carries no payload;
// the refresh always recomputes the configured default window.
type SnapshotArgs struct{}

func (SnapshotArgs) Kind() string { return "standings_snapshot" }

// SnapshotWorker executes the periodic refresh. Event-driven refreshes cover
// most changes; this catches anything that slipped past the bus, adjustment
// windows aging in or out of the default window included.
type SnapshotWorker struct {
	river.WorkerDefaults[SnapshotArgs]

	service standingsservice.Service
	logger  *slog.Logger
}

// NewSnapshotWorker creates a new SnapshotWorker.
func NewSnapshotWorker(service standingsservice.Service, logger *slog.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		service: service,
		logger:  logger,
	}
}

func (w *SnapshotWorker) Work(ctx context.Context, job *river.Job[SnapshotArgs]) error {
	w.logger.InfoContext(ctx, "Periodic standings snapshot refresh",
		slog.Int64("job_id", job.ID),
		slog.Int("attempt", job.Attempt),
	)

	snapshot, err := w.service.RefreshSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("periodic snapshot refresh failed: %w", err)
	}

	w.logger.InfoContext(ctx, "Periodic snapshot stored",
		slog.String("snapshot_id", snapshot.ID.String()),
		slog.Int("entries", len(snapshot.Entries)),
	)
	return nil
}
