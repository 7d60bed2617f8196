package domain

// ============================================================
// API request payloads
// ============================================================

// BestCardRequest is the payload for POST /v1/recommendations/best-card.
type BestCardRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Store    string  `json:"store,omitempty"`
}

// OptimizeCartRequest is the payload for POST /v1/cart/optimize.
type OptimizeCartRequest struct {
	Items []CartItem `json:"items"`
}

// MonthlyAnalyticsRequest is the payload for POST /v1/analytics/monthly.
type MonthlyAnalyticsRequest struct {
	Purchases []Purchase `json:"purchases"`
}

// SuggestCardsRequest is the payload for POST /v1/suggestions/cards.
type SuggestCardsRequest struct {
	MonthlySpending map[string]float64 `json:"monthly_spending"`
}

// InsightsRequest is the payload for POST /v1/insights.
type InsightsRequest struct {
	Purchases       []Purchase         `json:"purchases"`
	MonthlySpending map[string]float64 `json:"monthly_spending"`
}

// BestForCategoryRequest is the payload for
// POST /v1/card-database/best-for-category.
type BestForCategoryRequest struct {
	Category string   `json:"category"`
	Cards    []string `json:"cards"`
}

// CardValueRequest is the payload for POST /v1/card-database/value.
type CardValueRequest struct {
	Card     string             `json:"card"`
	Spending []SpendingCategory `json:"spending"`
}
