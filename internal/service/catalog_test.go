package service_test

import (
	"testing"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/service"
)

func TestCatalog_InitializeLoadsPresets(t *testing.T) {
	catalog := service.NewCatalog()
	catalog.Initialize()

	if catalog.Len() != 9 {
		t.Fatalf("expected 9 preset cards, got %d", catalog.Len())
	}

	// Every preset must carry a usable default rate.
	for _, card := range catalog.GetAllCards() {
		cr, ok := card.Categories[domain.DefaultCategory]
		if !ok {
			t.Errorf("card '%s' has no default category", card.ID)
			continue
		}
		if cr.EffectiveRate() == 0 {
			t.Errorf("card '%s' has a zero default rate", card.ID)
		}
	}

	if card := catalog.GetCardByID("chase-sapphire-preferred"); card == nil {
		t.Error("expected preset 'chase-sapphire-preferred'")
	} else if card.AnnualFee != 95 {
		t.Errorf("expected $95 annual fee, got %f", card.AnnualFee)
	}
}

func TestCatalog_InitializeReplaces(t *testing.T) {
	catalog := service.NewCatalog()
	catalog.Initialize()
	catalog.AddCustomCard(&domain.CreditCard{ID: "extra", Name: "Extra"})

	catalog.Initialize()
	if catalog.Len() != 9 {
		t.Errorf("re-initialize must reset to presets, got %d cards", catalog.Len())
	}
	if catalog.GetCardByID("extra") != nil {
		t.Error("custom card must not survive re-initialize")
	}
}

func TestCatalog_AddCustomCardAppends(t *testing.T) {
	catalog := service.NewCatalog()

	first := &domain.CreditCard{ID: "dup", Name: "First"}
	second := &domain.CreditCard{ID: "dup", Name: "Second"}
	catalog.AddCustomCard(first)
	catalog.AddCustomCard(second)

	if catalog.Len() != 2 {
		t.Fatalf("expected 2 cards, duplicates included, got %d", catalog.Len())
	}
	// Lookup by id returns the earlier entry.
	if got := catalog.GetCardByID("dup"); got != first {
		t.Errorf("expected first card for duplicate id, got %+v", got)
	}
}

func TestCatalog_GetCardByIDAbsent(t *testing.T) {
	catalog := service.NewCatalog()
	catalog.Initialize()

	if card := catalog.GetCardByID("no-such-card"); card != nil {
		t.Errorf("expected nil for unknown id, got %+v", card)
	}
}
