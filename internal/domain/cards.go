// Package domain defines the core business entities for the rewards engine.
// These models are independent of the HTTP layer and represent the canonical
// data structures used throughout the BFA.
package domain

// CentsPerPoint is the fixed conversion from reward points to dollars.
// Chase values a point at 1 cent; issuers vary, but the engine uses a
// single constant everywhere points become money.
const CentsPerPoint = 0.01

// DefaultCategory is the reserved category key every card must define.
// Rate resolution falls back to it when no more specific key matches.
const DefaultCategory = "default"

// ============================================================
// Credit Cards (engine catalog)
// ============================================================

// CategoryRate describes how a card earns in one category. Exactly one of
// PointsPerDollar or CashbackPercent is meaningfully nonzero.
type CategoryRate struct {
	PointsPerDollar float64 `json:"points_per_dollar"`
	CashbackPercent float64 `json:"cashback_percent,omitempty"`
}

// EffectiveRate folds both reward schemes into points-equivalent units per
// dollar: PointsPerDollar when nonzero, else CashbackPercent * 100, else 0.
func (r CategoryRate) EffectiveRate() float64 {
	if r.PointsPerDollar != 0 {
		return r.PointsPerDollar
	}
	return r.CashbackPercent * 100
}

// SignupBonus is a one-time bonus for meeting a spend requirement.
type SignupBonus struct {
	Points           float64 `json:"points"`
	SpendRequirement float64 `json:"spend_requirement"`
	Months           int     `json:"months"`
}

// CreditCard is a catalog entry in the optimization engine's card universe.
// Every card must carry a "default" entry in Categories; category keys also
// include store slugs (e.g. "whole-foods") for store-specific bonuses.
type CreditCard struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Issuer      string                  `json:"issuer"`
	Categories  map[string]CategoryRate `json:"categories"`
	AnnualFee   float64                 `json:"annual_fee"`
	SignupBonus *SignupBonus            `json:"signup_bonus,omitempty"`
	Perks       []string                `json:"perks,omitempty"`
}

// ============================================================
// Purchases
// ============================================================

// CartItem is one line of a shopping cart to optimize.
type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Store    string  `json:"store,omitempty"`
}

// Purchase is a historical purchase tagged with the card actually used.
type Purchase struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	CardUsed string  `json:"card_used"`
	Store    string  `json:"store,omitempty"`
	Date     string  `json:"date,omitempty"` // YYYY-MM-DD
}
