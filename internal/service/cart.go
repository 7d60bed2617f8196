package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// OptimizeCart runs best-card selection for every cart item and aggregates
// the result per winning card. Group order follows first appearance in the
// cart.
func (s *RewardsService) OptimizeCart(ctx context.Context, items []domain.CartItem) (*domain.CartOptimizationResult, error) {
	ctx, span := rewardsTracer.Start(ctx, "RewardsService.OptimizeCart")
	defer span.End()
	span.SetAttributes(attribute.Int("cart.items", len(items)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("optimize_cart", time.Since(start))
	}()

	result := &domain.CartOptimizationResult{
		Recommendations: make([]domain.ItemRecommendation, 0, len(items)),
	}
	groupIdx := make(map[string]int)

	for _, item := range items {
		rec, err := s.SelectBestCard(ctx, item.Price, item.Category, item.Store)
		if err != nil {
			return nil, err
		}

		result.Recommendations = append(result.Recommendations, domain.ItemRecommendation{
			Recommendation: *rec,
			Item:           item.Name,
		})
		result.TotalPoints += rec.PointsEarned
		result.TotalCash += rec.CashValue

		idx, ok := groupIdx[rec.Card.ID]
		if !ok {
			idx = len(result.CardGroups)
			groupIdx[rec.Card.ID] = idx
			result.CardGroups = append(result.CardGroups, domain.CardGroup{Card: rec.Card})
		}
		group := &result.CardGroups[idx]
		group.Items = append(group.Items, item.Name)
		group.TotalPoints += rec.PointsEarned
		group.TotalValue += rec.CashValue
	}

	result.Summary = cartSummary(result.CardGroups)

	s.metrics.AddCartItems(len(items))
	s.logger.Debug("cart optimized",
		zap.Int("items", len(items)),
		zap.Int("cards", len(result.CardGroups)),
		zap.Float64("total_points", result.TotalPoints),
	)

	return result, nil
}

// cartSummary renders the split advice: a single sentence when one card
// covers the whole cart, otherwise one line per card.
func cartSummary(groups []domain.CardGroup) string {
	if len(groups) == 1 {
		g := groups[0]
		return fmt.Sprintf("Use %s for everything and earn %d points (worth $%.2f)",
			g.Card.Name, int64(math.Round(g.TotalPoints)), g.TotalValue)
	}

	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%s: %d items, %d points",
			g.Card.Name, len(g.Items), int64(math.Round(g.TotalPoints))))
	}

	return fmt.Sprintf("Split across %d cards:\n", len(groups)) + strings.Join(lines, "\n")
}
