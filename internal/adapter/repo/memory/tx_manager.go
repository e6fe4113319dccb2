package memory

import "context"

// TxManager serializes whole invocations on the store mutex. Coarse, but it
// delivers the per-player atomicity the engine asks for. The context marker
// tells the repos the lock is already held.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(withTx(ctx))
}
