package domain

// ============================================================
// Recommendations
// ============================================================

// AlternativeCard is a competitive runner-up for a purchase. PointsDifference
// is signed: negative means the alternative would out-earn the winner on its
// category rate alone (the winner's edge came from a store bonus).
type AlternativeCard struct {
	Card             *CreditCard `json:"card"`
	PointsDifference float64     `json:"points_difference"`
}

// Recommendation is the engine's answer for a single purchase.
type Recommendation struct {
	Card             *CreditCard       `json:"card"`
	Category         string            `json:"category"`
	PointsEarned     float64           `json:"points_earned"`
	CashValue        float64           `json:"cash_value"`
	Reason           string            `json:"reason"`
	AlternativeCards []AlternativeCard `json:"alternative_cards,omitempty"`
}

// ItemRecommendation pairs a cart item name with its recommendation.
type ItemRecommendation struct {
	Recommendation
	Item string `json:"item"`
}

// CardGroup aggregates the cart items assigned to one card.
type CardGroup struct {
	Card        *CreditCard `json:"card"`
	Items       []string    `json:"items"`
	TotalPoints float64     `json:"total_points"`
	TotalValue  float64     `json:"total_value"`
}

// CartOptimizationResult is the full answer for a multi-item cart.
type CartOptimizationResult struct {
	Recommendations []ItemRecommendation `json:"recommendations"`
	TotalPoints     float64              `json:"total_points"`
	TotalCash       float64              `json:"total_cash"`
	CardGroups      []CardGroup          `json:"card_groups"`
	Summary         string               `json:"summary"`
}
