package player

import (
	"context"
	"errors"
	"time"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"
)

var (
	ErrInvalidRequest = errors.New("invalid player request")
	ErrPlayerExists   = errors.New("player already exists for user")
)

// CreateUseCase makes the one active player of a user, with a zero balance
// for every currency known at creation time.
type CreateUseCase struct {
	TxManager  ports.TxManager
	Players    ports.PlayerRepository
	Currencies ports.CurrencyRepository
	Now        func() time.Time
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	if req.UserID <= 0 {
		return CreateResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out CreateResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := u.Players.GetActiveByUserID(txCtx, req.UserID)
		if err == nil {
			return ErrPlayerExists
		}
		if !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		currencies, err := u.Currencies.List(txCtx)
		if err != nil {
			return err
		}

		created, err := u.Players.Create(txCtx, life.NewPlayer(req.UserID, currencies, nowFn()))
		if err != nil {
			return err
		}
		out = CreateResponse{Player: created}
		return nil
	})
	if err != nil {
		return CreateResponse{}, err
	}
	return out, nil
}

// InfoUseCase returns the current snapshot of the active player, read-only.
type InfoUseCase struct {
	Players ports.PlayerRepository
}

func (u InfoUseCase) Execute(ctx context.Context, req InfoRequest) (InfoResponse, error) {
	if req.UserID <= 0 {
		return InfoResponse{}, ErrInvalidRequest
	}
	p, err := u.Players.GetActiveByUserID(ctx, req.UserID)
	if err != nil {
		return InfoResponse{}, err
	}
	return InfoResponse{Player: p}, nil
}
