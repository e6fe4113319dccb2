package memory

import (
	"context"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) GetActiveByUserID(ctx context.Context, userID int64) (life.Player, error) {
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	p, ok := r.store.players[userID]
	if !ok || !p.Alive {
		return life.Player{}, ports.ErrNotFound
	}
	return p.Clone(), nil
}

func (r PlayerRepo) Create(ctx context.Context, p life.Player) (life.Player, error) {
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	if existing, ok := r.store.players[p.UserID]; ok && existing.Alive {
		return life.Player{}, ports.ErrConflict
	}
	r.store.nextID++
	p.ID = r.store.nextID
	for id, bal := range p.Balances {
		bal.PlayerID = p.ID
		p.Balances[id] = bal
	}
	r.store.players[p.UserID] = p.Clone()
	return p, nil
}

func (r PlayerRepo) SaveWithVersion(ctx context.Context, p life.Player, expectedVersion int64) error {
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	current, ok := r.store.players[p.UserID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.players[p.UserID] = p.Clone()
	return nil
}
