package gormrepo

import (
	"context"
	"errors"
	"time"

	"streetlife/internal/adapter/repo/gorm/model"
	"streetlife/internal/app/ports"
	"streetlife/internal/domain/life"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

// GetActiveByUserID loads the living player of the user with balances and
// ownership sets eagerly assembled. Dead players stop resolving here, which
// is what ends the game for the caller.
func (r PlayerRepo) GetActiveByUserID(ctx context.Context, userID int64) (life.Player, error) {
	db := getDBFromCtx(ctx, r.db)

	var m model.Player
	if err := db.Where("user_id = ? AND alive = ?", userID, true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return life.Player{}, ports.ErrNotFound
		}
		return life.Player{}, err
	}

	p := life.Player{
		ID:             m.ID,
		UserID:         m.UserID,
		Hunger:         int(m.Hunger),
		Rest:           int(m.Rest),
		Health:         int(m.Health),
		Level:          int(m.Level),
		Age:            int(m.Age),
		Authority:      int(m.Authority),
		Day:            int(m.Day),
		DeadlyDays:     int(m.DeadlyDays),
		Alive:          m.Alive,
		Balances:       map[int64]life.Balance{},
		OwnedHomes:     map[int64]struct{}{},
		OwnedSkills:    map[int64]struct{}{},
		OwnedTransport: map[int64]struct{}{},
		OwnedBusiness:  map[int64]struct{}{},
		Version:        m.Version,
		UpdatedAt:      m.UpdatedAt,
	}

	var balances []model.Balance
	if err := db.Where("player_id = ?", m.ID).Find(&balances).Error; err != nil {
		return life.Player{}, err
	}
	for _, b := range balances {
		p.Balances[b.CurrencyID] = life.Balance{
			CurrencyID: b.CurrencyID,
			PlayerID:   b.PlayerID,
			Amount:     int(b.Amount),
			UpdatedAt:  b.UpdatedAt,
		}
	}

	var homes []model.HomePlayer
	if err := db.Where("player_id = ?", m.ID).Find(&homes).Error; err != nil {
		return life.Player{}, err
	}
	for _, row := range homes {
		p.OwnedHomes[row.HomeID] = struct{}{}
	}

	var skills []model.SkillPlayer
	if err := db.Where("player_id = ?", m.ID).Find(&skills).Error; err != nil {
		return life.Player{}, err
	}
	for _, row := range skills {
		p.OwnedSkills[row.SkillID] = struct{}{}
	}

	var transport []model.TransportPlayer
	if err := db.Where("player_id = ?", m.ID).Find(&transport).Error; err != nil {
		return life.Player{}, err
	}
	for _, row := range transport {
		p.OwnedTransport[row.TransportID] = struct{}{}
	}

	var businesses []model.BusinessPlayer
	if err := db.Where("player_id = ?", m.ID).Find(&businesses).Error; err != nil {
		return life.Player{}, err
	}
	for _, row := range businesses {
		p.OwnedBusiness[row.BusinessID] = struct{}{}
	}

	return p, nil
}

func (r PlayerRepo) Create(ctx context.Context, p life.Player) (life.Player, error) {
	db := getDBFromCtx(ctx, r.db)

	m := toModel(p)
	if err := db.Create(&m).Error; err != nil {
		return life.Player{}, err
	}
	p.ID = m.ID

	for currencyID, bal := range p.Balances {
		row := model.Balance{
			CurrencyID: currencyID,
			PlayerID:   m.ID,
			Amount:     int64(bal.Amount),
			UpdatedAt:  bal.UpdatedAt,
		}
		if err := db.Create(&row).Error; err != nil {
			return life.Player{}, err
		}
		bal.PlayerID = m.ID
		p.Balances[currencyID] = bal
	}
	return p, nil
}

// SaveWithVersion persists the whole aggregate as one unit: the player row
// guarded by optimistic versioning, then balances and any newly granted
// ownership rows. Run it inside the tx manager so the unit is atomic.
func (r PlayerRepo) SaveWithVersion(ctx context.Context, p life.Player, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)

	updates := map[string]any{
		"hunger":      int32(p.Hunger),
		"rest":        int32(p.Rest),
		"health":      int32(p.Health),
		"level":       int32(p.Level),
		"age":         int32(p.Age),
		"authority":   int32(p.Authority),
		"day":         int32(p.Day),
		"deadly_days": int32(p.DeadlyDays),
		"alive":       p.Alive,
		"version":     p.Version,
		"updated_at":  p.UpdatedAt,
	}
	res := db.Model(&model.Player{}).
		Where("id = ? AND version = ?", p.ID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}

	for currencyID, bal := range p.Balances {
		err := db.Model(&model.Balance{}).
			Where("player_id = ? AND currency_id = ?", p.ID, currencyID).
			Updates(map[string]any{
				"amount":     int64(bal.Amount),
				"updated_at": bal.UpdatedAt,
			}).Error
		if err != nil {
			return err
		}
	}

	return r.saveOwnership(db, p)
}

// saveOwnership inserts granted ids; ownership only ever grows, so the
// conflict clause makes repeated saves idempotent.
func (r PlayerRepo) saveOwnership(db *gorm.DB, p life.Player) error {
	onConflict := clause.OnConflict{DoNothing: true}
	for id := range p.OwnedHomes {
		if err := db.Clauses(onConflict).Create(&model.HomePlayer{HomeID: id, PlayerID: p.ID}).Error; err != nil {
			return err
		}
	}
	for id := range p.OwnedSkills {
		if err := db.Clauses(onConflict).Create(&model.SkillPlayer{SkillID: id, PlayerID: p.ID}).Error; err != nil {
			return err
		}
	}
	for id := range p.OwnedTransport {
		if err := db.Clauses(onConflict).Create(&model.TransportPlayer{TransportID: id, PlayerID: p.ID}).Error; err != nil {
			return err
		}
	}
	for id := range p.OwnedBusiness {
		if err := db.Clauses(onConflict).Create(&model.BusinessPlayer{BusinessID: id, PlayerID: p.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}

func toModel(p life.Player) model.Player {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	return model.Player{
		ID:         p.ID,
		UserID:     p.UserID,
		Hunger:     int32(p.Hunger),
		Rest:       int32(p.Rest),
		Health:     int32(p.Health),
		Level:      int32(p.Level),
		Age:        int32(p.Age),
		Authority:  int32(p.Authority),
		Day:        int32(p.Day),
		DeadlyDays: int32(p.DeadlyDays),
		Alive:      p.Alive,
		Version:    p.Version,
		UpdatedAt:  updatedAt,
	}
}
