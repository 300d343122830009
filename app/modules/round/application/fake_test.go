package roundservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
)

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

	Upserts []upsertCall
}

type upsertCall struct {
	RoundID  int64
	PlayerID int64
	RawScore int
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
	f.Upserts = append(f.Upserts, upsertCall{RoundID: roundID, PlayerID: playerID, RawScore: rawScore})
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
