package standingsservice

import (
	"context"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

// ------------------------
// Fake Player Repo
// ------------------------

type FakePlayerRepo struct {
	ListFunc      func(ctx context.Context) ([]playerdb.Player, error)
	GetByIDFunc   func(ctx context.Context, id int64) (*playerdb.Player, error)
	GetByNameFunc func(ctx context.Context, name string) (*playerdb.Player, error)
	InsertFunc    func(ctx context.Context, name string) (*playerdb.Player, error)
}

func (f *FakePlayerRepo) List(ctx context.Context) ([]playerdb.Player, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakePlayerRepo) GetByID(ctx context.Context, id int64) (*playerdb.Player, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepo) GetByName(ctx context.Context, name string) (*playerdb.Player, error) {
	if f.GetByNameFunc != nil {
		return f.GetByNameFunc(ctx, name)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepo) Insert(ctx context.Context, name string) (*playerdb.Player, error) {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, name)
	}
	return &playerdb.Player{ID: 1, Name: name}, nil
}

// ------------------------
// Fake Table Repo
// ------------------------

type FakeTableRepo struct {
	ListFunc      func(ctx context.Context, filter tabledb.ListFilter) ([]tabledb.Table, error)
	GetByIDFunc   func(ctx context.Context, id int64) (*tabledb.Table, error)
	InsertFunc    func(ctx context.Context, name string) (*tabledb.Table, error)
	UpdateFunc    func(ctx context.Context, id int64, patch tabledb.UpdatePatch) (*tabledb.Table, error)
	RosterFunc    func(ctx context.Context, tableID int64) ([]tabledb.RosterEntry, error)
	AddPlayerFunc func(ctx context.Context, tableID, playerID int64) error
}

func (f *FakeTableRepo) List(ctx context.Context, filter tabledb.ListFilter) ([]tabledb.Table, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (f *FakeTableRepo) GetByID(ctx context.Context, id int64) (*tabledb.Table, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, tabledb.ErrNotFound
}

func (f *FakeTableRepo) Insert(ctx context.Context, name string) (*tabledb.Table, error) {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, name)
	}
	return &tabledb.Table{ID: 1, Name: name, IsOpen: true}, nil
}

func (f *FakeTableRepo) Update(ctx context.Context, id int64, patch tabledb.UpdatePatch) (*tabledb.Table, error) {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, patch)
	}
	return nil, tabledb.ErrNotFound
}

func (f *FakeTableRepo) Roster(ctx context.Context, tableID int64) ([]tabledb.RosterEntry, error) {
	if f.RosterFunc != nil {
		return f.RosterFunc(ctx, tableID)
	}
	return nil, nil
}

func (f *FakeTableRepo) AddPlayer(ctx context.Context, tableID, playerID int64) error {
	if f.AddPlayerFunc != nil {
		return f.AddPlayerFunc(ctx, tableID, playerID)
	}
	return nil
}

// ------------------------
// Fake Round Repo
// ------------------------

type FakeRoundRepo struct {
	ListByTableFunc        func(ctx context.Context, tableID int64) ([]rounddb.Round, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*rounddb.Round, error)
	InsertFunc             func(ctx context.Context, tableID int64) (*rounddb.Round, error)
	ListScoresFunc         func(ctx context.Context, roundIDs []int64) ([]rounddb.RoundScore, error)
	ScoresForRoundFunc     func(ctx context.Context, roundID int64) ([]rounddb.RoundScore, error)
	UpsertScoreFunc        func(ctx context.Context, roundID, playerID int64, rawScore int) error
	BackfillZeroScoresFunc func(ctx context.Context, tableID, playerID int64) (int, error)
}

func (f *FakeRoundRepo) ListByTable(ctx context.Context, tableID int64) ([]rounddb.Round, error) {
	if f.ListByTableFunc != nil {
		return f.ListByTableFunc(ctx, tableID)
	}
	return nil, nil
}

func (f *FakeRoundRepo) GetByID(ctx context.Context, id int64) (*rounddb.Round, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) Insert(ctx context.Context, tableID int64) (*rounddb.Round, error) {
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, tableID)
	}
	return &rounddb.Round{ID: 1, TableID: tableID, RoundNumber: 1}, nil
}

func (f *FakeRoundRepo) ListScores(ctx context.Context, roundIDs []int64) ([]rounddb.RoundScore, error) {
	if f.ListScoresFunc != nil {
		return f.ListScoresFunc(ctx, roundIDs)
	}
	return nil, nil
}

func (f *FakeRoundRepo) ScoresForRound(ctx context.Context, roundID int64) ([]rounddb.RoundScore, error) {
	if f.ScoresForRoundFunc != nil {
		return f.ScoresForRoundFunc(ctx, roundID)
	}
	return nil, nil
}

func (f *FakeRoundRepo) UpsertScore(ctx context.Context, roundID, playerID int64, rawScore int) error {
	if f.UpsertScoreFunc != nil {
		return f.UpsertScoreFunc(ctx, roundID, playerID, rawScore)
	}
	return nil
}

func (f *FakeRoundRepo) BackfillZeroScores(ctx context.Context, tableID, playerID int64) (int, error) {
	if f.BackfillZeroScoresFunc != nil {
		return f.BackfillZeroScoresFunc(ctx, tableID, playerID)
	}
	return 0, nil
}

// ------------------------
// Fake Snapshot Repo
// ------------------------

type FakeSnapshotRepo struct {
	InsertFunc func(ctx context.Context, snapshot *standingsdb.Snapshot) error
	LatestFunc func(ctx context.Context) (*standingsdb.Snapshot, error)

	Inserted []*standingsdb.Snapshot
}

func (f *FakeSnapshotRepo) Insert(ctx context.Context, snapshot *standingsdb.Snapshot) error {
	f.Inserted = append(f.Inserted, snapshot)
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, snapshot)
	}
	return nil
}

func (f *FakeSnapshotRepo) Latest(ctx context.Context) (*standingsdb.Snapshot, error) {
	if f.LatestFunc != nil {
		return f.LatestFunc(ctx)
	}
	return nil, standingsdb.ErrNoSnapshot
}
