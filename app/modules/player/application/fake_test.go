package playerservice

import (
	"context"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
)

// ------------------------
// Fake Player Repo
// ------------------------

type FakePlayerRepo struct {
	trace []string

	ListFunc      func(ctx context.Context) ([]playerdb.Player, error)
	GetByIDFunc   func(ctx context.Context, id int64) (*playerdb.Player, error)
	GetByNameFunc func(ctx context.Context, name string) (*playerdb.Player, error)
	InsertFunc    func(ctx context.Context, name string) (*playerdb.Player, error)
}

func NewFakePlayerRepo() *FakePlayerRepo {
	return &FakePlayerRepo{trace: []string{}}
}

func (f *FakePlayerRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepo) List(ctx context.Context) ([]playerdb.Player, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakePlayerRepo) GetByID(ctx context.Context, id int64) (*playerdb.Player, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepo) GetByName(ctx context.Context, name string) (*playerdb.Player, error) {
	f.record("GetByName")
	if f.GetByNameFunc != nil {
		return f.GetByNameFunc(ctx, name)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepo) Insert(ctx context.Context, name string) (*playerdb.Player, error) {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, name)
	}
	return &playerdb.Player{ID: 1, Name: name}, nil
}
