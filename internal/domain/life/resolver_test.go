package life

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func testResolver() Resolver {
	return Resolver{Rand: rand.New(rand.NewPCG(1, 2))}
}

func testPlayer() Player {
	now := time.Unix(1700000000, 0)
	p := NewPlayer(7, []Currency{{ID: 1, Name: "dollar"}}, now)
	p.ID = 42
	return p
}

func TestResolve_StreetActionClampsAndCountsDeadlyDay(t *testing.T) {
	p := testPlayer()
	p.Hunger, p.Rest, p.Health = 5, 50, 50
	p.Day = 1
	item := CatalogItem{
		ID:         3,
		Category:   CategoryStreet,
		HungerHarm: Range{Min: 10, Max: 10},
		IncomeMin:  100,
		IncomeMax:  100,
		CurrencyID: 1,
	}

	out, err := testResolver().Resolve(p, item, nil, time.Unix(1700000100, 0))
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	got := out.UpdatedPlayer
	if got.Hunger != 0 {
		t.Fatalf("expected hunger clamped to 0, got %d", got.Hunger)
	}
	if got.DeadlyDays != 1 {
		t.Fatalf("expected deadlyDays=1, got %d", got.DeadlyDays)
	}
	if got.Balances[1].Amount != 100 {
		t.Fatalf("expected balance=100, got %d", got.Balances[1].Amount)
	}
	if got.Day != 2 {
		t.Fatalf("expected day=2, got %d", got.Day)
	}
	if out.ResultCode != ResultOK {
		t.Fatalf("expected OK, got %s", out.ResultCode)
	}
}

func TestResolve_AcquireInsufficientFundsLeavesPlayerUntouched(t *testing.T) {
	p := testPlayer()
	p.Balances[1] = Balance{CurrencyID: 1, Amount: 30}
	item := CatalogItem{ID: 9, Category: CategoryTransport, Price: 50, CurrencyID: 1}

	_, err := testResolver().Resolve(p, item, nil, time.Now())
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if p.Balances[1].Amount != 30 {
		t.Fatalf("balance mutated on failure: %d", p.Balances[1].Amount)
	}
	if len(p.OwnedTransport) != 0 {
		t.Fatalf("ownership mutated on failure")
	}
	if p.Day != 1 {
		t.Fatalf("day advanced on failure: %d", p.Day)
	}
}

func TestResolve_AcquireAlreadyOwned(t *testing.T) {
	p := testPlayer()
	p.Balances[1] = Balance{CurrencyID: 1, Amount: 1000}
	p.Grant(CategoryHome, 5)
	item := CatalogItem{ID: 5, Category: CategoryHome, Price: 100, CurrencyID: 1}

	_, err := testResolver().Resolve(p, item, nil, time.Now())
	if !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
	if p.Balances[1].Amount != 1000 {
		t.Fatalf("balance mutated on failure: %d", p.Balances[1].Amount)
	}
}

func TestResolve_AcquireDebitsAndGrantsOwnership(t *testing.T) {
	p := testPlayer()
	p.Balances[1] = Balance{CurrencyID: 1, Amount: 80}
	item := CatalogItem{ID: 5, Category: CategorySkill, Price: 50, CurrencyID: 1}

	out, err := testResolver().Resolve(p, item, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	got := out.UpdatedPlayer
	if got.Balances[1].Amount != 30 {
		t.Fatalf("expected balance=30, got %d", got.Balances[1].Amount)
	}
	if !got.Owns(CategorySkill, 5) {
		t.Fatalf("expected skill 5 owned")
	}
	if p.Owns(CategorySkill, 5) {
		t.Fatalf("input aggregate mutated")
	}
}

func TestResolve_BusinessRequiresAuthority(t *testing.T) {
	p := testPlayer()
	p.Balances[1] = Balance{CurrencyID: 1, Amount: 10000}
	p.Authority = 3
	item := CatalogItem{ID: 2, Category: CategoryBusiness, Price: 500, CurrencyID: 1, MinAuthority: 10}

	_, err := testResolver().Resolve(p, item, nil, time.Now())
	if !errors.Is(err, ErrInsufficientAuthority) {
		t.Fatalf("expected ErrInsufficientAuthority, got %v", err)
	}

	p.Authority = 10
	out, err := testResolver().Resolve(p, item, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if !out.UpdatedPlayer.Owns(CategoryBusiness, 2) {
		t.Fatalf("expected business owned")
	}
}

func TestResolve_PerformRequiresPossession(t *testing.T) {
	p := testPlayer()
	item := CatalogItem{
		ID:              4,
		Category:        CategoryWork,
		RequiredSkillID: 3,
		IncomeMin:       10,
		IncomeMax:       20,
		CurrencyID:      1,
	}

	_, err := testResolver().Resolve(p, item, nil, time.Now())
	if !errors.Is(err, ErrInsufficientPossession) {
		t.Fatalf("expected ErrInsufficientPossession, got %v", err)
	}
	var perr *PossessionError
	if !errors.As(err, &perr) || perr.Category != CategorySkill {
		t.Fatalf("expected possession error naming skill, got %v", err)
	}

	p.Grant(CategorySkill, 3)
	if _, err := testResolver().Resolve(p, item, nil, time.Now()); err != nil {
		t.Fatalf("resolve after granting skill: %v", err)
	}
}

func TestResolve_ConsumeDebitsWithoutAffordabilityCheck(t *testing.T) {
	p := testPlayer()
	p.Hunger = 40
	p.Balances[1] = Balance{CurrencyID: 1, Amount: 5}
	item := CatalogItem{
		ID:            1,
		Category:      CategoryFood,
		Price:         20,
		CurrencyID:    1,
		HungerBenefit: Range{Min: 10, Max: 10},
	}

	out, err := testResolver().Resolve(p, item, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	got := out.UpdatedPlayer
	if got.Balances[1].Amount != -15 {
		t.Fatalf("expected balance to go negative (-15), got %d", got.Balances[1].Amount)
	}
	if got.Hunger != 50 {
		t.Fatalf("expected hunger=50, got %d", got.Hunger)
	}
}

func TestResolve_UnknownCurrencySkipsMoneyStep(t *testing.T) {
	p := testPlayer()
	p.Hunger = 40
	item := CatalogItem{
		ID:            1,
		Category:      CategoryFood,
		Price:         20,
		CurrencyID:    99,
		HungerBenefit: Range{Min: 10, Max: 10},
	}

	out, err := testResolver().Resolve(p, item, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	got := out.UpdatedPlayer
	if got.Hunger != 50 {
		t.Fatalf("expected vitals applied, hunger=%d", got.Hunger)
	}
	if got.Balances[1].Amount != 0 {
		t.Fatalf("unrelated balance touched: %d", got.Balances[1].Amount)
	}
}

func TestResolve_VitalsStayInRange(t *testing.T) {
	r := testResolver()
	p := testPlayer()
	feast := CatalogItem{
		ID:            1,
		Category:      CategoryFood,
		CurrencyID:    1,
		HungerBenefit: Range{Min: 30, Max: 60},
		RestBenefit:   Range{Min: 30, Max: 60},
		HealthBenefit: Range{Min: 30, Max: 60},
	}
	grind := CatalogItem{
		ID:         2,
		Category:   CategoryStreet,
		CurrencyID: 1,
		HungerHarm: Range{Min: 30, Max: 60},
		RestHarm:   Range{Min: 30, Max: 60},
		HealthHarm: Range{Min: 30, Max: 60},
		IncomeMin:  1,
		IncomeMax:  5,
	}

	for i := 0; i < 50; i++ {
		item := feast
		if i%2 == 0 {
			item = grind
		}
		out, err := r.Resolve(p, item, nil, time.Now())
		if err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
		p = out.UpdatedPlayer
		for name, v := range map[string]int{"hunger": p.Hunger, "rest": p.Rest, "health": p.Health} {
			if v < 0 || v > 100 {
				t.Fatalf("iteration %d: %s out of range: %d", i, name, v)
			}
		}
	}
}

func TestResolve_EightDeadlyDaysKill(t *testing.T) {
	r := testResolver()
	p := testPlayer()
	p.Hunger = 0
	starve := CatalogItem{
		ID:         2,
		Category:   CategoryStreet,
		CurrencyID: 1,
		HungerHarm: Range{Min: 5, Max: 5},
		IncomeMin:  1,
		IncomeMax:  1,
	}

	for i := 1; i <= 8; i++ {
		out, err := r.Resolve(p, starve, nil, time.Now())
		if err != nil {
			t.Fatalf("resolve %d: %v", i, err)
		}
		p = out.UpdatedPlayer
		if p.DeadlyDays != i {
			t.Fatalf("day %d: expected deadlyDays=%d, got %d", i, i, p.DeadlyDays)
		}
		wantAlive := i < 8
		if p.Alive != wantAlive {
			t.Fatalf("day %d: expected alive=%v, got %v", i, wantAlive, p.Alive)
		}
		if i == 8 && out.ResultCode != ResultDead {
			t.Fatalf("expected DEAD result code on 8th deadly day, got %s", out.ResultCode)
		}
	}
}

func TestResolve_GoodDayResetsDeadlyStreak(t *testing.T) {
	r := testResolver()
	p := testPlayer()
	p.Hunger, p.Rest, p.Health = 0, 50, 50
	p.DeadlyDays = 5
	meal := CatalogItem{
		ID:            1,
		Category:      CategoryFood,
		CurrencyID:    1,
		HungerBenefit: Range{Min: 40, Max: 40},
	}

	out, err := r.Resolve(p, meal, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out.UpdatedPlayer.DeadlyDays != 0 {
		t.Fatalf("expected deadlyDays reset, got %d", out.UpdatedPlayer.DeadlyDays)
	}
}

func TestResolve_AgingOnDivisorDays(t *testing.T) {
	r := testResolver()
	meal := CatalogItem{ID: 1, Category: CategoryFood, CurrencyID: 1, HungerBenefit: Range{Min: 1, Max: 1}}

	p := testPlayer()
	p.Day = 4 // advances to 5, and 365%5 == 0
	out, err := r.Resolve(p, meal, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out.UpdatedPlayer.Age != p.Age+1 {
		t.Fatalf("expected age+1 on day 5, got %d", out.UpdatedPlayer.Age)
	}

	p = testPlayer()
	p.Day = 5 // advances to 6, 365%6 != 0
	out, err = r.Resolve(p, meal, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out.UpdatedPlayer.Age != p.Age {
		t.Fatalf("expected age unchanged on day 6, got %d", out.UpdatedPlayer.Age)
	}
}

func TestResolve_AuthorityBenefitSkippedWhenBoundOpen(t *testing.T) {
	r := testResolver()
	p := testPlayer()

	openBound := CatalogItem{
		ID:               1,
		Category:         CategoryLeisure,
		CurrencyID:       1,
		AuthorityBenefit: Range{Min: 0, Max: 5},
	}
	out, err := r.Resolve(p, openBound, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out.UpdatedPlayer.Authority != 0 {
		t.Fatalf("expected authority untouched for open bound, got %d", out.UpdatedPlayer.Authority)
	}

	closed := openBound
	closed.AuthorityBenefit = Range{Min: 2, Max: 4}
	out, err = r.Resolve(p, closed, nil, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if got := out.UpdatedPlayer.Authority; got < 2 || got > 4 {
		t.Fatalf("expected authority in [2,4], got %d", got)
	}
}

func TestResolve_InvertedRangeIsDataError(t *testing.T) {
	p := testPlayer()
	item := CatalogItem{
		ID:         1,
		Category:   CategoryFood,
		CurrencyID: 1,
		HungerBenefit: Range{
			Min: 10,
			Max: 2,
		},
	}

	_, err := testResolver().Resolve(p, item, nil, time.Now())
	if !errors.Is(err, ErrBadCatalogData) {
		t.Fatalf("expected ErrBadCatalogData, got %v", err)
	}
	var derr *DataError
	if !errors.As(err, &derr) || derr.Field != "hunger_benefit" {
		t.Fatalf("expected data error naming hunger_benefit, got %v", err)
	}
	if p.Day != 1 {
		t.Fatalf("day advanced despite data error")
	}
}

func TestResolve_BusinessPayoutOnPeriodDay(t *testing.T) {
	r := testResolver()
	p := testPlayer()
	p.Day = 3 // advances to 4
	p.Grant(CategoryBusiness, 11)
	biz := CatalogItem{
		ID:           11,
		Category:     CategoryBusiness,
		CurrencyID:   1,
		Income:       250,
		IncomePeriod: 2,
	}
	meal := CatalogItem{ID: 1, Category: CategoryFood, CurrencyID: 1, HungerBenefit: Range{Min: 1, Max: 1}}

	out, err := r.Resolve(p, meal, []CatalogItem{biz}, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out.UpdatedPlayer.Balances[1].Amount != 250 {
		t.Fatalf("expected payout of 250, got %d", out.UpdatedPlayer.Balances[1].Amount)
	}

	// Day 4 -> 5 is off-period, no payout.
	out, err = r.Resolve(out.UpdatedPlayer, meal, []CatalogItem{biz}, time.Now())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if out.UpdatedPlayer.Balances[1].Amount != 250 {
		t.Fatalf("expected no payout on off-period day, got %d", out.UpdatedPlayer.Balances[1].Amount)
	}
}

func TestResolve_UnknownCategoryIsDataError(t *testing.T) {
	p := testPlayer()
	item := CatalogItem{ID: 1, Category: Category("pets")}

	_, err := testResolver().Resolve(p, item, nil, time.Now())
	if !errors.Is(err, ErrBadCatalogData) {
		t.Fatalf("expected ErrBadCatalogData, got %v", err)
	}
}

func TestRoll_SamplesInclusiveRange(t *testing.T) {
	r := testResolver()
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := r.roll(Range{Min: 1, Max: 3})
		if v < 1 || v > 3 {
			t.Fatalf("sample out of range: %d", v)
		}
		seen[v] = true
	}
	for want := 1; want <= 3; want++ {
		if !seen[want] {
			t.Fatalf("value %d never sampled", want)
		}
	}
	if got := r.roll(Range{}); got != 0 {
		t.Fatalf("zero range should contribute 0, got %d", got)
	}
}
