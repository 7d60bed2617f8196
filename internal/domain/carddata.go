package domain

// ============================================================
// Card Database (display universe)
// ============================================================
//
// The card database is a second, display-oriented card universe used by the
// card-detail screens. It is maintained independently of the engine catalog
// and the two may disagree on the same card's numbers; they are deliberately
// kept as separate bounded contexts.

// BonusCategory is a descriptive bonus entry: a category label, a cashback
// rate in percent, and marketing copy.
type BonusCategory struct {
	Category    string  `json:"category"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description,omitempty"`
}

// CardData is the display-oriented record shape: a flat base rate plus a
// list of descriptive bonus categories.
type CardData struct {
	Name            string          `json:"name"`
	Issuer          string          `json:"issuer"`
	BaseRate        float64         `json:"base_rate"`
	BonusCategories []BonusCategory `json:"bonus_categories"`
	AnnualFee       float64         `json:"annual_fee"`
	SignUpBonus     string          `json:"sign_up_bonus,omitempty"`
	URL             string          `json:"url,omitempty"`
}

// CategoryMatch is the best card among a user's candidates for one category.
type CategoryMatch struct {
	Card string  `json:"card"`
	Rate float64 `json:"rate"`
}

// SpendingCategory is annual spend in one category, used for card valuation.
type SpendingCategory struct {
	Category    string  `json:"category"`
	AnnualSpend float64 `json:"annual_spend"`
}

// CardValue is the projected annual worth of a card for a spend profile.
type CardValue struct {
	Cashback float64 `json:"cashback"`
	NetValue float64 `json:"net_value"`
}
