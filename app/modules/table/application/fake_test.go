package tableservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

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

	AddedPlayers []addPlayerCall
}

type addPlayerCall struct {
	TableID  int64
	PlayerID int64
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
	f.AddedPlayers = append(f.AddedPlayers, addPlayerCall{TableID: tableID, PlayerID: playerID})
	if f.AddPlayerFunc != nil {
		return f.AddPlayerFunc(ctx, tableID, playerID)
	}
	return nil
}

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
// Fake Event Bus
// ------------------------

type publishedMessage struct {
	Topic   string
	Message *message.Message
}

type FakeEventBus struct {
	Published []publishedMessage
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	f.Published = append(f.Published, publishedMessage{Topic: topic, Message: msg})
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return nil, nil
}

func (f *FakeEventBus) Close() error { return nil }
