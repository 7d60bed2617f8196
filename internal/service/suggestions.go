package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// minSuggestionValue is the strict cutoff for recommending a card: projected
// annual value must exceed $100 after the annual fee.
const minSuggestionValue = 100

// maxSuggestions caps how many acquisition candidates are returned.
const maxSuggestions = 3

// SuggestNewCards scores every catalog card against the user's monthly
// spend-by-category profile and returns the top candidates by projected
// annual net value. The signup bonus, when present, is amortized over two
// years.
func (s *RewardsService) SuggestNewCards(ctx context.Context, monthlySpending map[string]float64) ([]domain.CardSuggestion, error) {
	_, span := rewardsTracer.Start(ctx, "RewardsService.SuggestNewCards")
	defer span.End()
	span.SetAttributes(attribute.Int("spending.categories", len(monthlySpending)))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("suggest_cards", time.Since(start))
	}()

	// Map iteration is randomized; fix the category order so reasoning
	// strings come out the same on every call.
	categories := make([]string, 0, len(monthlySpending))
	for category := range monthlySpending {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	suggestions := []domain.CardSuggestion{}

	for _, card := range s.catalog.snapshot() {
		annualValue := 0.0
		fragments := []string{}

		for _, category := range categories {
			rate, _ := resolveRate(card, category, "", categoryOrDefault)
			annualPoints := monthlySpending[category] * 12 * rate
			annualValue += annualPoints * domain.CentsPerPoint

			if rate >= 3 {
				fragments = append(fragments, fmt.Sprintf("%sx on %s",
					strconv.FormatFloat(rate, 'f', -1, 64), category))
			}
		}

		annualValue -= card.AnnualFee

		// One-time bonus spread over two years.
		if card.SignupBonus != nil {
			annualValue += (card.SignupBonus.Points * domain.CentsPerPoint) / 2
		}

		if annualValue > minSuggestionValue {
			reasoning := "Good general-purpose card"
			if len(fragments) > 0 {
				reasoning = "Earn extra on: " + strings.Join(fragments, ", ")
			}
			suggestions = append(suggestions, domain.CardSuggestion{
				Card:        card,
				AnnualValue: annualValue,
				Reasoning:   reasoning,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].AnnualValue > suggestions[j].AnnualValue
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}
