package life

import (
	"maps"
	"time"
)

const (
	vitalFloor = 0
	vitalCap   = 100

	// A player survives at most this many consecutive days with a vital
	// stuck at the floor. One more such day is fatal.
	deadlyDayLimit = 7

	initialLevel = 1
	initialAge   = 18
)

// Player is the mutable per-user aggregate the resolver operates on.
// Balances and ownership sets are loaded eagerly by the store; the resolver
// never does its own I/O.
type Player struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Hunger int `json:"hunger"`
	Rest   int `json:"rest"`
	Health int `json:"health"`

	Level     int `json:"level"`
	Age       int `json:"age"`
	Authority int `json:"authority"`

	Day        int  `json:"day"`
	DeadlyDays int  `json:"deadly_days"`
	Alive      bool `json:"alive"`

	Balances map[int64]Balance `json:"balances"`

	OwnedHomes     map[int64]struct{} `json:"owned_homes"`
	OwnedSkills    map[int64]struct{} `json:"owned_skills"`
	OwnedTransport map[int64]struct{} `json:"owned_transport"`
	OwnedBusiness  map[int64]struct{} `json:"owned_business"`

	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlayer builds the initial aggregate for a user, with one zero balance
// per known currency.
func NewPlayer(userID int64, currencies []Currency, now time.Time) Player {
	p := Player{
		UserID:         userID,
		Hunger:         vitalCap,
		Rest:           vitalCap,
		Health:         vitalCap,
		Level:          initialLevel,
		Age:            initialAge,
		Day:            1,
		Alive:          true,
		Balances:       make(map[int64]Balance, len(currencies)),
		OwnedHomes:     map[int64]struct{}{},
		OwnedSkills:    map[int64]struct{}{},
		OwnedTransport: map[int64]struct{}{},
		OwnedBusiness:  map[int64]struct{}{},
		Version:        1,
		UpdatedAt:      now,
	}
	for _, c := range currencies {
		p.Balances[c.ID] = Balance{CurrencyID: c.ID, UpdatedAt: now}
	}
	return p
}

// Clone deep-copies the aggregate so a failing resolution never leaves a
// partially mutated player behind.
func (p Player) Clone() Player {
	out := p
	out.Balances = maps.Clone(p.Balances)
	out.OwnedHomes = maps.Clone(p.OwnedHomes)
	out.OwnedSkills = maps.Clone(p.OwnedSkills)
	out.OwnedTransport = maps.Clone(p.OwnedTransport)
	out.OwnedBusiness = maps.Clone(p.OwnedBusiness)
	return out
}

// Owns reports set membership for an acquirable category.
func (p *Player) Owns(cat Category, id int64) bool {
	set := p.ownedSet(cat)
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}

// Grant adds an item to the ownership set of its category.
func (p *Player) Grant(cat Category, id int64) {
	set := p.ownedSet(cat)
	if set == nil {
		return
	}
	set[id] = struct{}{}
}

func (p *Player) ownedSet(cat Category) map[int64]struct{} {
	switch cat {
	case CategoryHome:
		if p.OwnedHomes == nil {
			p.OwnedHomes = map[int64]struct{}{}
		}
		return p.OwnedHomes
	case CategorySkill:
		if p.OwnedSkills == nil {
			p.OwnedSkills = map[int64]struct{}{}
		}
		return p.OwnedSkills
	case CategoryTransport:
		if p.OwnedTransport == nil {
			p.OwnedTransport = map[int64]struct{}{}
		}
		return p.OwnedTransport
	case CategoryBusiness:
		if p.OwnedBusiness == nil {
			p.OwnedBusiness = map[int64]struct{}{}
		}
		return p.OwnedBusiness
	default:
		return nil
	}
}

// credit moves money on the balance matching currencyID. A player without a
// balance for that currency is left untouched; the rest of the resolution
// still applies.
func (p *Player) credit(currencyID int64, amount int, now time.Time) {
	bal, ok := p.Balances[currencyID]
	if !ok {
		return
	}
	bal.Amount += amount
	bal.UpdatedAt = now
	p.Balances[currencyID] = bal
}

// clampVitals pins every vital back into [0,100] and reports whether any of
// them hit the floor this tick.
func (p *Player) clampVitals() bool {
	floored := false
	for _, v := range []*int{&p.Hunger, &p.Rest, &p.Health} {
		if *v <= vitalFloor {
			*v = vitalFloor
			floored = true
		} else if *v >= vitalCap {
			*v = vitalCap
		}
	}
	return floored
}
