package history

import (
	"context"
	"errors"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"
)

var ErrInvalidRequest = errors.New("invalid history request")

const defaultLimit = 50

type Request struct {
	UserID int64
	Limit  int
}

type Response struct {
	Events []life.Event `json:"events"`
}

// UseCase lists the most recent resolved actions of the caller's player.
type UseCase struct {
	Players ports.PlayerRepository
	Events  ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.UserID <= 0 || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	p, err := u.Players.GetActiveByUserID(ctx, req.UserID)
	if err != nil {
		return Response{}, err
	}
	events, err := u.Events.ListByPlayerID(ctx, p.ID, limit)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return Response{Events: []life.Event{}}, nil
		}
		return Response{}, err
	}
	return Response{Events: events}, nil
}
