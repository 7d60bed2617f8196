// Package carddata holds the display-oriented card database used by the
// card-detail screens. It is a separate universe from the engine catalog in
// internal/service: the two are maintained independently and may disagree on
// the same card's numbers.
package carddata

import (
	"strings"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
)

// DB is an in-memory, read-only card database keyed by display name.
// Lookup order for fuzzy matches follows insertion order, so results are
// deterministic.
type DB struct {
	names  []string
	byName map[string]*domain.CardData
}

// New builds a DB from records, preserving their order.
func New(records []domain.CardData) *DB {
	db := &DB{byName: make(map[string]*domain.CardData, len(records))}
	for i := range records {
		rec := &records[i]
		db.names = append(db.names, rec.Name)
		db.byName[rec.Name] = rec
	}
	return db
}

// Default returns the built-in issuer dataset.
func Default() *DB {
	return New(defaultRecords())
}

// Get resolves a card by name: exact key match first, then a
// case-insensitive substring match in either direction. Returns nil when
// nothing matches.
func (db *DB) Get(name string) *domain.CardData {
	if card, ok := db.byName[name]; ok {
		return card
	}

	search := strings.ToLower(name)
	for _, key := range db.names {
		lowerKey := strings.ToLower(key)
		if strings.Contains(lowerKey, search) || strings.Contains(search, lowerKey) {
			return db.byName[key]
		}
	}

	return nil
}

// All returns every record in database order.
func (db *DB) All() []domain.CardData {
	cards := make([]domain.CardData, 0, len(db.names))
	for _, name := range db.names {
		cards = append(cards, *db.byName[name])
	}
	return cards
}

// BestForCategory scans the candidate card names in the order given and
// returns the one with the highest matched-bonus-or-base rate. Strict >
// keeps the earlier candidate on ties. Unknown names are skipped; nil means
// no candidate resolved.
func (db *DB) BestForCategory(category string, candidates []string) *domain.CategoryMatch {
	bestRate := 0.0
	bestName := ""

	for _, name := range candidates {
		card := db.Get(name)
		if card == nil {
			continue
		}

		if rate := db.rateFor(card, category); rate > bestRate {
			bestRate = rate
			bestName = name
		}
	}

	if bestName == "" {
		return nil
	}
	return &domain.CategoryMatch{Card: bestName, Rate: bestRate}
}

// Value projects a card's annual worth for a spend profile:
// sum(spend * rate / 100) minus the annual fee. An unknown card values to
// zero rather than erroring.
func (db *DB) Value(name string, spending []domain.SpendingCategory) domain.CardValue {
	card := db.Get(name)
	if card == nil {
		return domain.CardValue{}
	}

	var cashback float64
	for _, spend := range spending {
		cashback += spend.AnnualSpend * db.rateFor(card, spend.Category) / 100
	}

	return domain.CardValue{
		Cashback: cashback,
		NetValue: cashback - card.AnnualFee,
	}
}

// rateFor returns the first bonus-category rate whose label contains the
// requested category (case-insensitive), falling back to the base rate.
func (db *DB) rateFor(card *domain.CardData, category string) float64 {
	search := strings.ToLower(category)
	for _, bc := range card.BonusCategories {
		if strings.Contains(strings.ToLower(bc.Category), search) {
			return bc.Rate
		}
	}
	return card.BaseRate
}
