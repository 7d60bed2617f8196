package service

import (
	"regexp"
	"strings"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
)

// rateMode selects which resolution chain applies. Best-card selection
// honors store-specific bonuses; alternatives, the "actual" side of monthly
// analytics and card suggestions do not. The asymmetry is user-visible in
// the numbers and must not be unified.
type rateMode int

const (
	// withStoreBonus resolves store slug → category → default.
	withStoreBonus rateMode = iota
	// categoryOrDefault resolves category → default.
	categoryOrDefault
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// StoreKey slugifies a store name into a category key:
// "Whole Foods" → "whole-foods".
func StoreKey(store string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(store), "-")
}

// resolveRate walks the card's category entries by the mode's priority chain
// and returns the effective rate plus the key that matched. An entry whose
// effective rate is zero falls through to the next tier, same as an absent
// entry.
func resolveRate(card *domain.CreditCard, category, store string, mode rateMode) (rate float64, matched string) {
	matched = domain.DefaultCategory

	if mode == withStoreBonus && store != "" {
		key := StoreKey(store)
		if cr, ok := card.Categories[key]; ok {
			rate = cr.EffectiveRate()
			matched = key
		}
	}

	if rate == 0 {
		if cr, ok := card.Categories[category]; ok {
			rate = cr.EffectiveRate()
			matched = category
		}
	}

	if rate == 0 {
		if cr, ok := card.Categories[domain.DefaultCategory]; ok {
			rate = cr.EffectiveRate()
			matched = domain.DefaultCategory
		}
	}

	return rate, matched
}
