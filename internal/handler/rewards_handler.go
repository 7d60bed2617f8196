package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Rewards Engine
// ============================================================

func bestCardHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/recommendations/best-card")
		defer span.End()

		var req domain.BestCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Category == "" {
			handleServiceError(w, &domain.ErrValidation{Field: "category", Message: "required"}, logger)
			return
		}

		rec, err := svc.SelectBestCard(ctx, req.Amount, req.Category, req.Store)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

func optimizeCartHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/cart/optimize")
		defer span.End()

		var req domain.OptimizeCartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := svc.OptimizeCart(ctx, req.Items)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func monthlyAnalyticsHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/analytics/monthly")
		defer span.End()

		var req domain.MonthlyAnalyticsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		analytics, err := svc.CalculateMonthlyAnalytics(ctx, req.Purchases)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, analytics)
	}
}

func suggestCardsHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/suggestions/cards")
		defer span.End()

		var req domain.SuggestCardsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		suggestions, err := svc.SuggestNewCards(ctx, req.MonthlySpending)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
	}
}

func insightsHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/insights")
		defer span.End()

		var req domain.InsightsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		insights, err := svc.GetInsights(ctx, req.Purchases, req.MonthlySpending)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, insights)
	}
}
