package memory

import (
	"context"
	"fmt"
	"sync"

	"streetlife/internal/domain/life"
)

// Store is the shared backing state for the in-memory repositories. The tx
// manager serializes whole invocations through mu; repo methods called
// outside a transaction take mu themselves, guided by the context marker.
type Store struct {
	mu         sync.Mutex
	players    map[int64]life.Player // keyed by user id
	nextID     int64
	catalog    map[string]life.CatalogItem
	currencies []life.Currency
	events     map[int64][]life.Event
}

type txKeyType struct{}

var txKey = txKeyType{}

func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey, true)
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey).(bool)
	return v
}

// lock takes mu unless the context is already inside the tx manager, which
// holds it for the whole transaction.
func (s *Store) lock(ctx context.Context) {
	if !inTx(ctx) {
		s.mu.Lock()
	}
}

func (s *Store) unlock(ctx context.Context) {
	if !inTx(ctx) {
		s.mu.Unlock()
	}
}

func NewStore() *Store {
	return &Store{
		players: make(map[int64]life.Player),
		catalog: make(map[string]life.CatalogItem),
		events:  make(map[int64][]life.Event),
	}
}

func catalogKey(cat life.Category, id int64) string {
	return fmt.Sprintf("%s/%d", cat, id)
}

func (s *Store) SeedPlayer(p life.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID > s.nextID {
		s.nextID = p.ID
	}
	s.players[p.UserID] = p
}

func (s *Store) SeedCatalog(items ...life.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.catalog[catalogKey(item.Category, item.ID)] = item
	}
}

func (s *Store) SeedCurrencies(currencies ...life.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currencies = append(s.currencies, currencies...)
}
