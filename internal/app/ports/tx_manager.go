package ports

import "context"

// TxManager brackets one resolution. Implementations must give two
// concurrent invocations for the same player a serial view of the
// validate-mutate-persist sequence.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
