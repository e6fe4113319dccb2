package action

import (
	"context"
	"errors"
	"time"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"
)

var (
	ErrInvalidRequest = errors.New("invalid action request")
	ErrPlayerNotFound = errors.New("player not found")
	ErrItemNotFound   = errors.New("catalog item not found")
)

// UseCase executes one action (acquire, consume or perform, selected by the
// catalog category) against the caller's active player. The whole
// load-resolve-persist sequence runs inside one transaction; a failed
// validation leaves nothing behind.
type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Catalog   ports.CatalogRepository
	Events    ports.EventRepository
	Metrics   ports.ActionMetrics
	Resolver  life.Resolver
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if _, ok := req.Category.Kind(); !ok || req.UserID <= 0 || req.ItemID <= 0 {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		player, err := u.Players.GetActiveByUserID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return ErrPlayerNotFound
			}
			return err
		}

		item, err := u.Catalog.GetByID(txCtx, req.Category, req.ItemID)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		businesses, err := u.ownedBusinesses(txCtx, player)
		if err != nil {
			return err
		}

		outcome, err := u.Resolver.Resolve(player, item, businesses, nowFn())
		if err != nil {
			return err
		}

		if err := u.Players.SaveWithVersion(txCtx, outcome.UpdatedPlayer, player.Version); err != nil {
			return err
		}
		if u.Events != nil {
			if err := u.Events.Append(txCtx, player.ID, outcome.Events); err != nil {
				return err
			}
		}

		out = Response{
			Player:     outcome.UpdatedPlayer,
			Events:     outcome.Events,
			ResultCode: outcome.ResultCode,
		}
		return nil
	})
	if err != nil {
		u.record(err)
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.ResultCode)
	}
	return out, nil
}

// ownedBusinesses loads the catalog rows backing the player's business set so
// the resolver can compute daily payouts without store access. A business id
// with no catalog row is skipped.
func (u UseCase) ownedBusinesses(ctx context.Context, player life.Player) ([]life.CatalogItem, error) {
	if len(player.OwnedBusiness) == 0 {
		return nil, nil
	}
	items := make([]life.CatalogItem, 0, len(player.OwnedBusiness))
	for id := range player.OwnedBusiness {
		item, err := u.Catalog.GetByID(ctx, life.CategoryBusiness, id)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (u UseCase) record(err error) {
	if u.Metrics == nil {
		return
	}
	switch {
	case errors.Is(err, life.ErrAlreadyOwned),
		errors.Is(err, life.ErrInsufficientFunds),
		errors.Is(err, life.ErrInsufficientAuthority),
		errors.Is(err, life.ErrInsufficientPossession):
		u.Metrics.RecordRejected()
	case errors.Is(err, ports.ErrConflict):
		u.Metrics.RecordConflict()
	default:
		u.Metrics.RecordFailure()
	}
}
