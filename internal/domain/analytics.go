package domain

// ============================================================
// Monthly Analytics
// ============================================================

// CardBreakdown is spend and points realized on one card over a period.
type CardBreakdown struct {
	CardID       string  `json:"card_id"`
	Spent        float64 `json:"spent"`
	PointsEarned float64 `json:"points_earned"`
}

// MonthlyAnalytics replays a period's purchases against the catalog.
// PointsLeftOnTable = PotentialPoints - TotalPoints and is deliberately not
// clamped at zero: the actual and potential figures use different rate
// chains, so a negative gap is a representable outcome.
type MonthlyAnalytics struct {
	TotalSpent        float64         `json:"total_spent"`
	TotalPoints       float64         `json:"total_points"`
	TotalCashback     float64         `json:"total_cashback"`
	PotentialPoints   float64         `json:"potential_points"`
	PointsLeftOnTable float64         `json:"points_left_on_table"`
	CardBreakdown     []CardBreakdown `json:"card_breakdown"`
}

// ============================================================
// Card Suggestions
// ============================================================

// CardSuggestion scores a catalog card against a user's spend profile.
type CardSuggestion struct {
	Card        *CreditCard `json:"card"`
	AnnualValue float64     `json:"annual_value"`
	Reasoning   string      `json:"reasoning"`
}

// Insights bundles the period analytics with acquisition suggestions for the
// mobile insights screen.
type Insights struct {
	Analytics   *MonthlyAnalytics `json:"analytics"`
	Suggestions []CardSuggestion  `json:"suggestions"`
}
