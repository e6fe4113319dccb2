package life

import (
	"math/rand/v2"
	"time"
)

// Resolver executes one action against one player, all-or-nothing. It works
// on a copy of the aggregate and hands the updated copy back in the Outcome;
// callers persist it. Rand is injected so tests can seed it; a nil Rand
// falls back to the shared source.
type Resolver struct {
	Rand *rand.Rand
}

// Resolve runs the full pipeline for the action kind of item.Category:
// preconditions, randomized effects, balance update, day advance, mortality
// check. businesses carries the catalog rows for the player's owned
// businesses so daily payouts can be computed without store access.
func (r Resolver) Resolve(player Player, item CatalogItem, businesses []CatalogItem, now time.Time) (Outcome, error) {
	kind, ok := item.Category.Kind()
	if !ok {
		return Outcome{}, &DataError{Category: item.Category, ItemID: item.ID, Field: "category"}
	}
	if err := item.Validate(); err != nil {
		return Outcome{}, err
	}
	for _, biz := range businesses {
		if biz.IncomePeriod < 0 || biz.Income < 0 {
			return Outcome{}, &DataError{Category: biz.Category, ItemID: biz.ID, Field: "income_period"}
		}
	}

	next := player.Clone()
	before := snapshotVitals(next)

	var err error
	switch kind {
	case KindAcquire:
		err = r.acquire(&next, item, now)
	case KindConsume:
		r.consume(&next, item, now)
	case KindPerform:
		err = r.perform(&next, item, now)
	}
	if err != nil {
		return Outcome{}, err
	}

	events := make([]Event, 0, 2)
	events = append(events, r.advanceDay(&next, businesses, now)...)

	if floored := next.clampVitals(); floored {
		next.DeadlyDays++
	} else {
		next.DeadlyDays = 0
	}
	code := ResultOK
	if next.DeadlyDays > deadlyDayLimit {
		next.Alive = false
		code = ResultDead
		events = append(events, Event{Type: "player_died", OccurredAt: now})
	}

	next.Version++
	next.UpdatedAt = now

	events = append([]Event{{
		Type:       "action_resolved",
		OccurredAt: now,
		Payload: map[string]any{
			"kind":     string(kind),
			"category": string(item.Category),
			"item_id":  item.ID,
			"before":   before,
			"after":    snapshotVitals(next),
		},
	}}, events...)

	return Outcome{UpdatedPlayer: next, Events: events, ResultCode: code}, nil
}

func (r Resolver) acquire(p *Player, item CatalogItem, now time.Time) error {
	if p.Owns(item.Category, item.ID) {
		return ErrAlreadyOwned
	}
	if item.Category == CategoryBusiness && p.Authority < item.MinAuthority {
		return ErrInsufficientAuthority
	}
	if bal, ok := p.Balances[item.CurrencyID]; ok && bal.Amount < item.Price {
		return ErrInsufficientFunds
	}
	p.credit(item.CurrencyID, -item.Price, now)
	p.Grant(item.Category, item.ID)
	return nil
}

// consume debits the price without an affordability check; balances may go
// negative for services.
func (r Resolver) consume(p *Player, item CatalogItem, now time.Time) {
	p.Hunger += r.roll(item.HungerBenefit)
	p.Rest += r.roll(item.RestBenefit)
	p.Health += r.roll(item.HealthBenefit)
	r.applyAuthority(p, item)
	p.credit(item.CurrencyID, -item.Price, now)
}

func (r Resolver) perform(p *Player, item CatalogItem, now time.Time) error {
	for _, req := range item.requirements() {
		if req.ID != 0 && !p.Owns(req.Category, req.ID) {
			return &PossessionError{Category: req.Category}
		}
	}
	p.Hunger -= r.roll(item.HungerHarm)
	p.Rest -= r.roll(item.RestHarm)
	p.Health -= r.roll(item.HealthHarm)
	r.applyAuthority(p, item)
	p.credit(item.CurrencyID, r.roll(Range{Min: item.IncomeMin, Max: item.IncomeMax}), now)
	return nil
}

// applyAuthority skips the sample unless both bounds are set; an open bound
// means the row defines no authority effect.
func (r Resolver) applyAuthority(p *Player, item CatalogItem) {
	if item.AuthorityBenefit.Min == 0 || item.AuthorityBenefit.Max == 0 {
		return
	}
	p.Authority += r.roll(item.AuthorityBenefit)
}

// advanceDay moves the day counter, applies the aging rule and pays out
// owned businesses whose period divides the new day.
func (r Resolver) advanceDay(p *Player, businesses []CatalogItem, now time.Time) []Event {
	p.Day++
	if 365%p.Day == 0 {
		p.Age++
	}
	var events []Event
	for _, biz := range businesses {
		if biz.IncomePeriod <= 0 || p.Day%biz.IncomePeriod != 0 {
			continue
		}
		p.credit(biz.CurrencyID, biz.Income, now)
		events = append(events, Event{
			Type:       "business_income",
			OccurredAt: now,
			Payload: map[string]any{
				"business_id": biz.ID,
				"amount":      biz.Income,
				"currency_id": biz.CurrencyID,
			},
		})
	}
	return events
}

// roll draws a uniform integer from the inclusive range. The zero range is
// an absent effect and contributes nothing. Inverted ranges are rejected by
// CatalogItem.Validate before any roll happens.
func (r Resolver) roll(rg Range) int {
	if rg.IsZero() {
		return 0
	}
	if rg.Min == rg.Max {
		return rg.Min
	}
	span := rg.Max - rg.Min + 1
	if r.Rand != nil {
		return rg.Min + r.Rand.IntN(span)
	}
	return rg.Min + rand.IntN(span)
}

func snapshotVitals(p Player) map[string]int {
	return map[string]int{
		"hunger":    p.Hunger,
		"rest":      p.Rest,
		"health":    p.Health,
		"authority": p.Authority,
		"day":       p.Day,
	}
}
