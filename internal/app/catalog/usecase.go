package catalog

import (
	"context"
	"errors"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"
)

var ErrInvalidRequest = errors.New("invalid catalog request")

type Request struct {
	Category life.Category
}

type Response struct {
	Items []life.CatalogItem `json:"items"`
}

// UseCase backs the listing endpoints.
type UseCase struct {
	Catalog ports.CatalogRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if _, ok := req.Category.Kind(); !ok {
		return Response{}, ErrInvalidRequest
	}
	items, err := u.Catalog.ListByCategory(ctx, req.Category)
	if err != nil {
		return Response{}, err
	}
	if items == nil {
		items = []life.CatalogItem{}
	}
	return Response{Items: items}, nil
}
