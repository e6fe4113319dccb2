package life

// Validate rejects rows whose sampling ranges are inverted. The resolver runs
// it before touching the player so a bad row can never cause a partial
// mutation.
func (it CatalogItem) Validate() error {
	ranges := []struct {
		name string
		r    Range
	}{
		{"income", Range{Min: it.IncomeMin, Max: it.IncomeMax}},
		{"hunger_harm", it.HungerHarm},
		{"rest_harm", it.RestHarm},
		{"health_harm", it.HealthHarm},
		{"hunger_benefit", it.HungerBenefit},
		{"rest_benefit", it.RestBenefit},
		{"health_benefit", it.HealthBenefit},
		{"authority_benefit", it.AuthorityBenefit},
	}
	for _, entry := range ranges {
		if entry.r.Min > entry.r.Max {
			return &DataError{Category: it.Category, ItemID: it.ID, Field: entry.name}
		}
	}
	if it.Price < 0 {
		return &DataError{Category: it.Category, ItemID: it.ID, Field: "price"}
	}
	return nil
}

// requirements lists the possession requirements a perform action checks, in
// a fixed order so error reporting is deterministic.
func (it CatalogItem) requirements() []struct {
	Category Category
	ID       int64
} {
	return []struct {
		Category Category
		ID       int64
	}{
		{CategoryTransport, it.RequiredTransportID},
		{CategoryHome, it.RequiredHomeID},
		{CategorySkill, it.RequiredSkillID},
	}
}
