package ports

import "streetlife/internal/domain/life"

type ActionMetrics interface {
	RecordSuccess(resultCode life.ResultCode)
	// RecordRejected counts user-caused precondition failures (already
	// owned, funds, authority, possession).
	RecordRejected()
	RecordConflict()
	RecordFailure()
}
