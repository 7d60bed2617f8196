package domain

// EngineMetrics is the snapshot served by GET /v1/metrics/engine.
type EngineMetrics struct {
	TotalRecommendations int64   `json:"total_recommendations"`
	CartItemsOptimized   int64   `json:"cart_items_optimized"`
	ErrorCount           int64   `json:"error_count"`
	ErrorRate            float64 `json:"error_rate"`
	CacheHitRate         float64 `json:"cache_hit_rate"`
	Period               string  `json:"period"`
}
