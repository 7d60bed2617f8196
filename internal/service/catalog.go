// Package service provides the business logic layer (use cases).
// RewardsService implements the card optimization engine: best-card
// selection, cart optimization, monthly analytics and card suggestions.
package service

import (
	"sync"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
)

// Catalog owns the engine's mutable card list. All mutation goes through it,
// guarded by a RWMutex; read paths operate on a stable snapshot so the
// engine functions stay pure given catalog state.
type Catalog struct {
	mu    sync.RWMutex
	cards []*domain.CreditCard
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Initialize populates the catalog from the preset card list, replacing
// whatever was loaded before.
func (c *Catalog) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cards = presetCards()
}

// AddCustomCard appends an externally supplied card as-is. No validation and
// no dedup by id: duplicate ids are representable user input.
func (c *Catalog) AddCustomCard(card *domain.CreditCard) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cards = append(c.cards, card)
}

// GetAllCards returns the catalog in order. Cards are shared by reference;
// callers must not assume immutability.
func (c *Catalog) GetAllCards() []*domain.CreditCard {
	return c.snapshot()
}

// GetCardByID returns the first card with the given id, or nil. Absence is a
// valid state, not an error.
func (c *Catalog) GetCardByID(id string) *domain.CreditCard {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, card := range c.cards {
		if card.ID == id {
			return card
		}
	}
	return nil
}

// Len reports the number of cards loaded.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cards)
}

// snapshot copies the card slice under the read lock. The cards themselves
// are shared, the ordering is frozen.
func (c *Catalog) snapshot() []*domain.CreditCard {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cards := make([]*domain.CreditCard, len(c.cards))
	copy(cards, c.cards)
	return cards
}
