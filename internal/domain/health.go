package domain

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status      string `json:"status"`
	CardsLoaded int    `json:"cards_loaded"`
	Timestamp   string `json:"timestamp"`
}
