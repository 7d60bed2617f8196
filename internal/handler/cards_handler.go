package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ============================================================
// Engine Catalog
// ============================================================

func listCardsHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /v1/cards")
		defer span.End()

		cards := svc.Catalog().GetAllCards()
		writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
	}
}

func getCardHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /v1/cards/{cardId}")
		defer span.End()

		cardID := chi.URLParam(r, "cardId")

		card := svc.Catalog().GetCardByID(cardID)
		if card == nil {
			handleServiceError(w, &domain.ErrNotFound{Resource: "card", ID: cardID}, logger)
			return
		}

		writeJSON(w, http.StatusOK, card)
	}
}

func addCustomCardHandler(svc *service.RewardsService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "POST /v1/cards")
		defer span.End()

		var card domain.CreditCard
		if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if card.ID == "" {
			card.ID = uuid.New().String()
		}

		// The engine appends whatever it is given; a missing default entry
		// is a catalog data bug, so flag it here where someone will see it.
		if _, ok := card.Categories[domain.DefaultCategory]; !ok {
			logger.Warn("custom card has no default category entry",
				zap.String("card_id", card.ID),
				zap.String("name", card.Name),
			)
		}

		svc.Catalog().AddCustomCard(&card)

		logger.Info("custom card added",
			zap.String("card_id", card.ID),
			zap.String("issuer", card.Issuer),
		)

		writeJSON(w, http.StatusCreated, &card)
	}
}
