package handler

import (
	"net/http"
	"time"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/observability"
	"github.com/ellio-app/rewards-bfa-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware.
// Routes follow the API contract defined for the Ellio mobile app.
func NewRouter(rewardsSvc *service.RewardsService, cardDataSvc *service.CardDataService, metrics *observability.Metrics, logger *zap.Logger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(rewardsSvc))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// =============================================
		// 1. Recommendations
		// =============================================
		r.Post("/recommendations/best-card", bestCardHandler(rewardsSvc, logger))
		r.Post("/cart/optimize", optimizeCartHandler(rewardsSvc, logger))

		// =============================================
		// 2. Analytics & Insights
		// =============================================
		r.Post("/analytics/monthly", monthlyAnalyticsHandler(rewardsSvc, logger))
		r.Post("/suggestions/cards", suggestCardsHandler(rewardsSvc, logger))
		r.Post("/insights", insightsHandler(rewardsSvc, logger))

		// =============================================
		// 3. Engine Catalog
		// =============================================
		r.Get("/cards", listCardsHandler(rewardsSvc, logger))
		r.Get("/cards/{cardId}", getCardHandler(rewardsSvc, logger))
		r.Post("/cards", addCustomCardHandler(rewardsSvc, logger))

		// =============================================
		// 4. Card Database (display universe)
		// =============================================
		r.Get("/card-database", listCardDatabaseHandler(cardDataSvc, logger))
		r.Get("/card-database/lookup", cardDatabaseLookupHandler(cardDataSvc, logger))
		r.Post("/card-database/best-for-category", bestForCategoryHandler(cardDataSvc, logger))
		r.Post("/card-database/value", cardValueHandler(cardDataSvc, logger))

		// =============================================
		// 5. Metrics snapshot
		// =============================================
		r.Get("/metrics/engine", engineMetricsHandler(metrics, logger))
	})

	return r
}

func healthzHandler(rewardsSvc *service.RewardsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		loaded := 0
		if rewardsSvc != nil {
			loaded = rewardsSvc.Catalog().Len()
		}
		// An empty catalog means every selection will fail; surface it.
		if loaded == 0 {
			status = "degraded"
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:      status,
			CardsLoaded: loaded,
			Timestamp:   time.Now().Format(time.RFC3339),
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func engineMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /v1/metrics/engine")
		defer span.End()

		writeJSON(w, http.StatusOK, metrics.GetEngineSnapshot())
	}
}
