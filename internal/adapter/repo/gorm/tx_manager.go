package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager wraps one resolution in a database transaction and plants the
// handle in the context so the repos join it. Optimistic versioning on the
// player row does the per-player serialization; the transaction only has to
// make the write set atomic.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
