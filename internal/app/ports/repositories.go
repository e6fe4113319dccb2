package ports

import (
	"context"

	"streetlife/internal/domain/life"
)

// PlayerRepository loads and persists the player aggregate. GetActiveByUserID
// returns the balances and ownership sets eagerly; the engine never loads
// them lazily. Implementations resolve "active" as the one living player of
// the user, which is how death ends the game without the resolver enforcing
// it.
type PlayerRepository interface {
	GetActiveByUserID(ctx context.Context, userID int64) (life.Player, error)
	Create(ctx context.Context, player life.Player) (life.Player, error)
	// SaveWithVersion applies vitals, authority, day, ownership and balance
	// changes as a single durable unit, guarded by optimistic versioning.
	SaveWithVersion(ctx context.Context, player life.Player, expectedVersion int64) error
}

// CatalogRepository serves read-only catalog rows.
type CatalogRepository interface {
	GetByID(ctx context.Context, category life.Category, id int64) (life.CatalogItem, error)
	ListByCategory(ctx context.Context, category life.Category) ([]life.CatalogItem, error)
}

// CurrencyRepository lists the bootstrap currency set used at player
// creation.
type CurrencyRepository interface {
	List(ctx context.Context) ([]life.Currency, error)
}

// EventRepository keeps the append-only history of resolved actions.
type EventRepository interface {
	Append(ctx context.Context, playerID int64, events []life.Event) error
	ListByPlayerID(ctx context.Context, playerID int64, limit int) ([]life.Event, error)
}
