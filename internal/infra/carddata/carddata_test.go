package carddata_test

import (
	"testing"

	"github.com/ellio-app/rewards-bfa-go/internal/domain"
	"github.com/ellio-app/rewards-bfa-go/internal/infra/carddata"
)

func TestGet_ExactMatch(t *testing.T) {
	db := carddata.Default()

	card := db.Get("Citi Double Cash")
	if card == nil {
		t.Fatal("expected exact match for 'Citi Double Cash'")
	}
	if card.Issuer != "Citi" || card.BaseRate != 2 {
		t.Errorf("unexpected record: %+v", card)
	}
}

func TestGet_FuzzyMatch(t *testing.T) {
	db := carddata.Default()

	// "chase sapphire" is a substring of both Sapphire cards; database order
	// makes Preferred the winner.
	card := db.Get("chase sapphire")
	if card == nil {
		t.Fatal("expected fuzzy match for 'chase sapphire'")
	}
	if card.Name != "Chase Sapphire Preferred" {
		t.Errorf("expected 'Chase Sapphire Preferred', got '%s'", card.Name)
	}

	// Substring matching works in the other direction too: the search term
	// may contain the database key.
	card = db.Get("Discover it Cash Back card from Discover")
	if card == nil || card.Name != "Discover it Cash Back" {
		t.Errorf("expected reverse substring match for Discover, got %+v", card)
	}

	if card := db.Get("no such card"); card != nil {
		t.Errorf("expected nil for unmatched name, got %+v", card)
	}
}

func TestAll_PreservesOrder(t *testing.T) {
	db := carddata.Default()

	cards := db.All()
	if len(cards) != 12 {
		t.Fatalf("expected 12 records, got %d", len(cards))
	}
	if cards[0].Name != "Chase Sapphire Preferred" {
		t.Errorf("expected 'Chase Sapphire Preferred' first, got '%s'", cards[0].Name)
	}
	if cards[len(cards)-1].Name != "Bank of America Premium Rewards" {
		t.Errorf("expected 'Bank of America Premium Rewards' last, got '%s'", cards[len(cards)-1].Name)
	}
}

func TestBestForCategory(t *testing.T) {
	db := carddata.Default()

	match := db.BestForCategory("dining", []string{
		"Wells Fargo Active Cash", "Chase Sapphire Reserve", "Amex Gold",
	})
	if match == nil {
		t.Fatal("expected a match for dining")
	}
	if match.Card != "Chase Sapphire Reserve" || match.Rate != 10 {
		t.Errorf("expected Chase Sapphire Reserve at 10x, got %+v", match)
	}
}

func TestBestForCategory_TieKeepsCandidateOrder(t *testing.T) {
	db := carddata.Default()

	// Both cards fall back to their 2% base rate on gas.
	match := db.BestForCategory("gas", []string{
		"Citi Double Cash", "Wells Fargo Active Cash",
	})
	if match == nil {
		t.Fatal("expected a match for gas")
	}
	if match.Card != "Citi Double Cash" || match.Rate != 2 {
		t.Errorf("expected 'Citi Double Cash' at 2%%, got %+v", match)
	}
}

func TestBestForCategory_SkipsUnknown(t *testing.T) {
	db := carddata.Default()

	match := db.BestForCategory("travel", []string{"No Such Card", "Capital One Venture"})
	if match == nil || match.Card != "Capital One Venture" {
		t.Errorf("expected unknown candidates skipped, got %+v", match)
	}

	if match := db.BestForCategory("travel", []string{"No Such Card"}); match != nil {
		t.Errorf("expected nil when nothing resolves, got %+v", match)
	}
}

func TestValue(t *testing.T) {
	db := carddata.Default()

	value := db.Value("Chase Sapphire Preferred", []domain.SpendingCategory{
		{Category: "Dining", AnnualSpend: 1000},
		{Category: "Gas", AnnualSpend: 500},
	})

	// 1000 * 3% on dining plus 500 * 1% base, minus the $95 fee.
	if value.Cashback != 35 {
		t.Errorf("expected $35 cashback, got %f", value.Cashback)
	}
	if value.NetValue != -60 {
		t.Errorf("expected -$60 net value, got %f", value.NetValue)
	}
}

func TestValue_UnknownCard(t *testing.T) {
	db := carddata.Default()

	value := db.Value("no such card", []domain.SpendingCategory{
		{Category: "Dining", AnnualSpend: 1000},
	})
	if value.Cashback != 0 || value.NetValue != 0 {
		t.Errorf("expected zero value for unknown card, got %+v", value)
	}
}
