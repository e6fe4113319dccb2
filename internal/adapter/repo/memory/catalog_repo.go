package memory

import (
	"context"
	"sort"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"
)

type CatalogRepo struct {
	store *Store
}

func NewCatalogRepo(store *Store) CatalogRepo {
	return CatalogRepo{store: store}
}

func (r CatalogRepo) GetByID(ctx context.Context, cat life.Category, id int64) (life.CatalogItem, error) {
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	item, ok := r.store.catalog[catalogKey(cat, id)]
	if !ok {
		return life.CatalogItem{}, ports.ErrNotFound
	}
	return item, nil
}

func (r CatalogRepo) ListByCategory(ctx context.Context, cat life.Category) ([]life.CatalogItem, error) {
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	var out []life.CatalogItem
	for _, item := range r.store.catalog {
		if item.Category == cat {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type CurrencyRepo struct {
	store *Store
}

func NewCurrencyRepo(store *Store) CurrencyRepo {
	return CurrencyRepo{store: store}
}

func (r CurrencyRepo) List(ctx context.Context) ([]life.Currency, error) {
	r.store.lock(ctx)
	defer r.store.unlock(ctx)
	out := make([]life.Currency, len(r.store.currencies))
	copy(out, r.store.currencies)
	return out, nil
}
