package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var rewardsTracer = otel.Tracer("service/rewards")

// RewardsService orchestrates the card optimization engine over the catalog.
type RewardsService struct {
	catalog *Catalog
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewRewardsService creates a new rewards service.
func NewRewardsService(catalog *Catalog, metrics *observability.Metrics, logger *zap.Logger) *RewardsService {
	return &RewardsService{catalog: catalog, metrics: metrics, logger: logger}
}

// Catalog exposes the underlying card catalog.
func (s *RewardsService) Catalog() *Catalog {
	return s.catalog
}

// SelectBestCard picks the single best catalog card for one purchase.
// The running maximum uses strict > on cash value, so on an exact tie the
// earlier card in catalog order keeps the win. That determinism is part of
// the contract.
func (s *RewardsService) SelectBestCard(ctx context.Context, amount float64, category, store string) (*domain.Recommendation, error) {
	_, span := rewardsTracer.Start(ctx, "RewardsService.SelectBestCard")
	defer span.End()
	span.SetAttributes(
		attribute.Float64("purchase.amount", amount),
		attribute.String("purchase.category", category),
	)

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("select_best_card", time.Since(start))
	}()

	cards := s.catalog.snapshot()

	var bestCard *domain.CreditCard
	bestValue := 0.0
	bestPoints := 0.0

	for _, card := range cards {
		rate, _ := resolveRate(card, category, store, withStoreBonus)
		points := amount * rate
		value := points * domain.CentsPerPoint

		if value > bestValue {
			bestValue = value
			bestPoints = points
			bestCard = card
		}
	}

	if bestCard == nil {
		s.metrics.IncrEngineError("no_cards")
		s.logger.Warn("best-card selection against empty catalog",
			zap.String("category", category),
		)
		return nil, &domain.ErrNoCardsAvailable{}
	}

	s.metrics.IncrRecommendation(category)

	return &domain.Recommendation{
		Card:             bestCard,
		Category:         category,
		PointsEarned:     bestPoints,
		CashValue:        bestValue,
		Reason:           selectionReason(category, bestPoints, amount),
		AlternativeCards: s.rankAlternatives(cards, bestCard, amount, category, bestPoints),
	}, nil
}

// rankAlternatives computes the competitive runners-up for a purchase.
// Alternatives are rated on category-or-default only, never the store tier,
// so a card that wins via a store bonus can be out-earned here. That
// surfaces as a negative points difference.
func (s *RewardsService) rankAlternatives(cards []*domain.CreditCard, winner *domain.CreditCard, amount float64, category string, bestPoints float64) []domain.AlternativeCard {
	alternatives := make([]domain.AlternativeCard, 0, len(cards))

	for _, card := range cards {
		if card.ID == winner.ID {
			continue
		}

		rate, _ := resolveRate(card, category, "", categoryOrDefault)
		points := amount * rate
		if points <= 0 {
			continue
		}

		alternatives = append(alternatives, domain.AlternativeCard{
			Card:             card,
			PointsDifference: bestPoints - points,
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].PointsDifference < alternatives[j].PointsDifference
	})

	if len(alternatives) > 2 {
		alternatives = alternatives[:2]
	}
	return alternatives
}

// selectionReason turns the winning earn rate into a one-line explanation.
func selectionReason(category string, points, amount float64) string {
	rate := points / amount
	rateStr := strconv.FormatFloat(rate, 'f', -1, 64)

	switch {
	case rate >= 5:
		return fmt.Sprintf("Excellent! %sx points on %s", rateStr, category)
	case rate >= 3:
		return fmt.Sprintf("Great choice! %sx points on %s", rateStr, category)
	case rate >= 2:
		return fmt.Sprintf("Good value! %sx points on %s", rateStr, category)
	default:
		return fmt.Sprintf("Earning %sx points", rateStr)
	}
}
