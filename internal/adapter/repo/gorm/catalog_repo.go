package gormrepo

import (
	"context"
	"errors"

	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"

	"gorm.io/gorm"
)

// The catalog keeps one table per category, as the game's schema always has.
// All tables share a subset of the columns below, so a single row struct
// scans any of them; columns a table does not have simply stay nil.
type catalogRow struct {
	ID                  int64
	Name                string
	Price               *int64
	IncomeMin           *int64
	IncomeMax           *int64
	CurrencyID          *int64
	TransportID         *int64
	HomeID              *int64
	SkillID             *int64
	HungerHarmMin       *int64
	HungerHarmMax       *int64
	RestHarmMin         *int64
	RestHarmMax         *int64
	HealthHarmMin       *int64
	HealthHarmMax       *int64
	HungerBenefitMin    *int64
	HungerBenefitMax    *int64
	RestBenefitMin      *int64
	RestBenefitMax      *int64
	HealthBenefitMin    *int64
	HealthBenefitMax    *int64
	AuthorityBenefitMin *int64
	AuthorityBenefitMax *int64
	MinAuthority        *int64
	Income              *int64
	IncomePeriod        *int64
}

var tableByCategory = map[life.Category]string{
	life.CategoryHome:      "home",
	life.CategorySkill:     "skill",
	life.CategoryTransport: "transport",
	life.CategoryStreet:    "street_action",
	life.CategoryWork:      "work",
	life.CategoryFood:      "food",
	life.CategoryHealth:    "health",
	life.CategoryLeisure:   "leisure",
	life.CategoryBusiness:  "business",
}

type CatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return CatalogRepo{db: db}
}

func (r CatalogRepo) GetByID(ctx context.Context, cat life.Category, id int64) (life.CatalogItem, error) {
	table, ok := tableByCategory[cat]
	if !ok {
		return life.CatalogItem{}, ports.ErrNotFound
	}
	var row catalogRow
	err := getDBFromCtx(ctx, r.db).Table(table).Where("id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return life.CatalogItem{}, ports.ErrNotFound
		}
		return life.CatalogItem{}, err
	}
	return rowToItem(cat, row), nil
}

func (r CatalogRepo) ListByCategory(ctx context.Context, cat life.Category) ([]life.CatalogItem, error) {
	table, ok := tableByCategory[cat]
	if !ok {
		return nil, ports.ErrNotFound
	}
	var rows []catalogRow
	if err := getDBFromCtx(ctx, r.db).Table(table).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]life.CatalogItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToItem(cat, row))
	}
	return out, nil
}

func rowToItem(cat life.Category, row catalogRow) life.CatalogItem {
	return life.CatalogItem{
		ID:                  row.ID,
		Category:            cat,
		Name:                row.Name,
		Price:               intOf(row.Price),
		IncomeMin:           intOf(row.IncomeMin),
		IncomeMax:           intOf(row.IncomeMax),
		CurrencyID:          idOf(row.CurrencyID),
		HungerHarm:          rangeOf(row.HungerHarmMin, row.HungerHarmMax),
		RestHarm:            rangeOf(row.RestHarmMin, row.RestHarmMax),
		HealthHarm:          rangeOf(row.HealthHarmMin, row.HealthHarmMax),
		HungerBenefit:       rangeOf(row.HungerBenefitMin, row.HungerBenefitMax),
		RestBenefit:         rangeOf(row.RestBenefitMin, row.RestBenefitMax),
		HealthBenefit:       rangeOf(row.HealthBenefitMin, row.HealthBenefitMax),
		AuthorityBenefit:    rangeOf(row.AuthorityBenefitMin, row.AuthorityBenefitMax),
		RequiredTransportID: idOf(row.TransportID),
		RequiredHomeID:      idOf(row.HomeID),
		RequiredSkillID:     idOf(row.SkillID),
		MinAuthority:        intOf(row.MinAuthority),
		Income:              intOf(row.Income),
		IncomePeriod:        intOf(row.IncomePeriod),
	}
}

func intOf(v *int64) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

func idOf(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func rangeOf(min, max *int64) life.Range {
	return life.Range{Min: intOf(min), Max: intOf(max)}
}
