package service

import (
	"context"
	"time"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ============================================================
// Monthly Analytics
// ============================================================

// CalculateMonthlyAnalytics replays a period's purchases to compare the
// points actually earned against what optimal card selection would have
// earned. The "actual" side rates the used card on category-or-default only,
// while the "potential" side runs the full store-aware selection; the gap is
// therefore allowed to go negative and is reported as-is.
func (s *RewardsService) CalculateMonthlyAnalytics(ctx context.Context, purchases []domain.Purchase) (*domain.MonthlyAnalytics, error) {
	ctx, span := rewardsTracer.Start(ctx, "RewardsService.CalculateMonthlyAnalytics")
	defer span.End()
	span.SetAttributes(attribute.Int("purchases.count", len(purchases)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("monthly_analytics", time.Since(start))
	}()

	analytics := &domain.MonthlyAnalytics{}
	breakdownIdx := make(map[string]int)

	for _, purchase := range purchases {
		analytics.TotalSpent += purchase.Amount

		if usedCard := s.catalog.GetCardByID(purchase.CardUsed); usedCard != nil {
			rate, _ := resolveRate(usedCard, purchase.Category, "", categoryOrDefault)
			points := purchase.Amount * rate
			analytics.TotalPoints += points

			idx, ok := breakdownIdx[usedCard.ID]
			if !ok {
				idx = len(analytics.CardBreakdown)
				breakdownIdx[usedCard.ID] = idx
				analytics.CardBreakdown = append(analytics.CardBreakdown, domain.CardBreakdown{CardID: usedCard.ID})
			}
			analytics.CardBreakdown[idx].Spent += purchase.Amount
			analytics.CardBreakdown[idx].PointsEarned += points
		}

		optimal, err := s.SelectBestCard(ctx, purchase.Amount, purchase.Category, purchase.Store)
		if err != nil {
			return nil, err
		}
		analytics.PotentialPoints += optimal.PointsEarned
	}

	analytics.TotalCashback = analytics.TotalPoints * domain.CentsPerPoint
	analytics.PointsLeftOnTable = analytics.PotentialPoints - analytics.TotalPoints

	s.logger.Debug("monthly analytics calculated",
		zap.Int("purchases", len(purchases)),
		zap.Float64("points_left_on_table", analytics.PointsLeftOnTable),
	)

	return analytics, nil
}

// ============================================================
// Insights
// ============================================================

// GetInsights bundles the period analytics with card suggestions for the
// mobile insights screen. The two computations are independent and run
// concurrently.
func (s *RewardsService) GetInsights(ctx context.Context, purchases []domain.Purchase, monthlySpending map[string]float64) (*domain.Insights, error) {
	ctx, span := rewardsTracer.Start(ctx, "RewardsService.GetInsights")
	defer span.End()

	var (
		analytics   *domain.MonthlyAnalytics
		suggestions []domain.CardSuggestion
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a, err := s.CalculateMonthlyAnalytics(gCtx, purchases)
		if err != nil {
			return err
		}
		analytics = a
		return nil
	})

	g.Go(func() error {
		sg, err := s.SuggestNewCards(gCtx, monthlySpending)
		if err != nil {
			return err
		}
		suggestions = sg
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.Insights{
		Analytics:   analytics,
		Suggestions: suggestions,
	}, nil
}
