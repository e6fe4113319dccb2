package life

import "time"

// Category names one of the purchasable or performable catalog tables.
type Category string

const (
	CategoryHome      Category = "home"
	CategorySkill     Category = "skill"
	CategoryTransport Category = "transport"
	CategoryStreet    Category = "street"
	CategoryWork      Category = "work"
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryLeisure   Category = "leisure"
	CategoryBusiness  Category = "business"
)

// ActionKind selects the resolution strategy for a category.
type ActionKind string

const (
	// KindAcquire is a one-time purchase granting permanent ownership.
	KindAcquire ActionKind = "acquire"
	// KindConsume is a repeatable purchase with an immediate vital effect.
	KindConsume ActionKind = "consume"
	// KindPerform is a repeatable income-generating activity with a vital cost.
	KindPerform ActionKind = "perform"
)

// Kind reports the action kind dispatched for the category.
func (c Category) Kind() (ActionKind, bool) {
	switch c {
	case CategoryHome, CategorySkill, CategoryTransport, CategoryBusiness:
		return KindAcquire, true
	case CategoryFood, CategoryHealth, CategoryLeisure:
		return KindConsume, true
	case CategoryStreet, CategoryWork:
		return KindPerform, true
	default:
		return "", false
	}
}

// Acquirable reports whether ownership of items in the category is tracked
// on the player aggregate.
func (c Category) Acquirable() bool {
	kind, ok := c.Kind()
	return ok && kind == KindAcquire
}

// Range is an inclusive uniform sampling range. The zero value means the
// catalog row does not define the effect and the sample is skipped.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// CatalogItem is the tagged union over the nine catalog tables. Only the
// fields relevant to Category are populated; the rest stay at their zero
// value. Catalog rows are reference data and are never mutated.
type CatalogItem struct {
	ID       int64    `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`

	// Money. Price applies to acquire/consume categories, Income ranges to
	// perform categories. CurrencyID selects the balance the money moves on.
	Price      int   `json:"price,omitempty"`
	IncomeMin  int   `json:"income_min,omitempty"`
	IncomeMax  int   `json:"income_max,omitempty"`
	CurrencyID int64 `json:"currency_id,omitempty"`

	// Vital effects. Harm ranges drain vitals (street, work), benefit ranges
	// restore them (food, health, leisure).
	HungerHarm    Range `json:"hunger_harm"`
	RestHarm      Range `json:"rest_harm"`
	HealthHarm    Range `json:"health_harm"`
	HungerBenefit Range `json:"hunger_benefit"`
	RestBenefit   Range `json:"rest_benefit"`
	HealthBenefit Range `json:"health_benefit"`

	// AuthorityBenefit only takes effect when both bounds are set.
	AuthorityBenefit Range `json:"authority_benefit"`

	// Possession requirements checked before a perform action. Zero means
	// the requirement is not set.
	RequiredTransportID int64 `json:"required_transport_id,omitempty"`
	RequiredHomeID      int64 `json:"required_home_id,omitempty"`
	RequiredSkillID     int64 `json:"required_skill_id,omitempty"`

	// Business-only fields. MinAuthority gates the purchase; Income is paid
	// out every IncomePeriod days once owned.
	MinAuthority int `json:"min_authority,omitempty"`
	Income       int `json:"income,omitempty"`
	IncomePeriod int `json:"income_period,omitempty"`
}

// Balance is one currency account of a player.
type Balance struct {
	CurrencyID int64     `json:"currency_id"`
	PlayerID   int64     `json:"player_id"`
	Amount     int       `json:"amount"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Currency is bootstrap reference data; every balance references one.
type Currency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ResultCode classifies a successful resolution.
type ResultCode string

const (
	ResultOK   ResultCode = "OK"
	ResultDead ResultCode = "DEAD"
)

// Event is an append-only record of something the resolver did.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// Outcome carries the fully resolved next state of the player. Nothing in it
// is persisted yet; the caller hands UpdatedPlayer back to the store.
type Outcome struct {
	UpdatedPlayer Player     `json:"updated_player"`
	Events        []Event    `json:"events"`
	ResultCode    ResultCode `json:"result_code"`
}
