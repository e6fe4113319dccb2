package gormrepo

import (
	"context"

	"streetlife/internal/adapter/repo/gorm/model"
	"streetlife/internal/domain/life"

	"gorm.io/gorm"
)

type CurrencyRepo struct {
	db *gorm.DB
}

func NewCurrencyRepo(db *gorm.DB) CurrencyRepo {
	return CurrencyRepo{db: db}
}

func (r CurrencyRepo) List(ctx context.Context) ([]life.Currency, error) {
	var rows []model.Currency
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]life.Currency, 0, len(rows))
	for _, row := range rows {
		out = append(out, life.Currency{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
