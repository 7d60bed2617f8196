package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Card Database (display universe)
// ============================================================

func listCardDatabaseHandler(svc *service.CardDataService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/card-database")
		defer span.End()

		cards := svc.GetAllCreditCards(ctx)
		writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
	}
}

func cardDatabaseLookupHandler(svc *service.CardDataService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/card-database/lookup")
		defer span.End()

		name := r.URL.Query().Get("name")
		if name == "" {
			handleServiceError(w, &domain.ErrValidation{Field: "name", Message: "required"}, logger)
			return
		}

		card := svc.GetCreditCardData(ctx, name)
		if card == nil {
			handleServiceError(w, &domain.ErrNotFound{Resource: "card data", ID: name}, logger)
			return
		}

		writeJSON(w, http.StatusOK, card)
	}
}

func bestForCategoryHandler(svc *service.CardDataService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/card-database/best-for-category")
		defer span.End()

		var req domain.BestForCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Category == "" {
			handleServiceError(w, &domain.ErrValidation{Field: "category", Message: "required"}, logger)
			return
		}

		match := svc.GetBestCardForCategory(ctx, req.Category, req.Cards)
		if match == nil {
			handleServiceError(w, &domain.ErrNotFound{Resource: "category match", ID: req.Category}, logger)
			return
		}

		writeJSON(w, http.StatusOK, match)
	}
}

func cardValueHandler(svc *service.CardDataService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/card-database/value")
		defer span.End()

		var req domain.CardValueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Card == "" {
			handleServiceError(w, &domain.ErrValidation{Field: "card", Message: "required"}, logger)
			return
		}

		// An unknown card values to zero rather than 404ing; the screens
		// render it as "no value data".
		value := svc.CalculateCardValue(ctx, req.Card, req.Spending)
		writeJSON(w, http.StatusOK, value)
	}
}
