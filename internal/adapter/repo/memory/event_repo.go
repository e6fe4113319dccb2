package memory

import (
	"context"

	"streetlife/internal/domain/life"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, playerID int64, events []life.Event) error {
	if len(events) == 0 {
		return nil
	}
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	r.store.events[playerID] = append(r.store.events[playerID], events...)
	return nil
}

// ListByPlayerID returns the newest events first.
func (r EventRepo) ListByPlayerID(ctx context.Context, playerID int64, limit int) ([]life.Event, error) {
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	all := r.store.events[playerID]
	out := make([]life.Event, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
