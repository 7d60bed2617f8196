package carddata

import "github.com/ellio-app/rewards-bfa-go/internal/domain"

// defaultRecords returns cashback data collected from card issuer websites.
// Rates accurate as of December 2025.
func defaultRecords() []domain.CardData {
	return []domain.CardData{
		{
			Name:     "Chase Sapphire Preferred",
			Issuer:   "Chase",
			BaseRate: 1,
			BonusCategories: []domain.BonusCategory{
				{Category: "Dining", Rate: 3, Description: "Restaurants & Food Delivery"},
				{Category: "Travel", Rate: 3, Description: "Hotels, Flights & Rental Cars"},
				{Category: "Streaming", Rate: 3, Description: "Select Streaming Services"},
				{Category: "Online Groceries", Rate: 3, Description: "Online Grocery Purchases"},
			},
			AnnualFee:   95,
			SignUpBonus: "60,000 points after $4,000 spend in 3 months",
			URL:         "https://www.chase.com/personal/credit-cards/sapphire/preferred",
		},
		{
			Name:     "Chase Sapphire Reserve",
			Issuer:   "Chase",
			BaseRate: 1,
			BonusCategories: []domain.BonusCategory{
				{Category: "Dining", Rate: 10, Description: "Restaurants & Food Delivery (through Chase)"},
				{Category: "Travel", Rate: 10, Description: "Hotels & Car Rentals (through Chase)"},
				{Category: "Dining (Other)", Rate: 3, Description: "All Other Dining"},
				{Category: "Travel (Other)", Rate: 3, Description: "All Other Travel"},
			},
			AnnualFee:   550,
			SignUpBonus: "75,000 points after $4,000 spend in 3 months",
			URL:         "https://www.chase.com/personal/credit-cards/sapphire/reserve",
		},
		{
			Name:     "Chase Freedom Unlimited",
			Issuer:   "Chase",
			BaseRate: 1.5,
			BonusCategories: []domain.BonusCategory{
				{Category: "Dining", Rate: 3, Description: "Restaurants"},
				{Category: "Drugstores", Rate: 3, Description: "Drugstore Purchases"},
				{Category: "Travel", Rate: 5, Description: "Travel through Chase"},
			},
			AnnualFee:   0,
			SignUpBonus: "$200 after $500 spend in 3 months",
			URL:         "https://www.chase.com/personal/credit-cards/freedom/unlimited",
		},
		{
			Name:     "Amex Gold",
			Issuer:   "American Express",
			BaseRate: 1,
			BonusCategories: []domain.BonusCategory{
				{Category: "Groceries", Rate: 4, Description: "U.S. Supermarkets (up to $25k/year)"},
				{Category: "Dining", Rate: 4, Description: "Restaurants Worldwide"},
				{Category: "Flights", Rate: 3, Description: "Flights Booked Directly"},
			},
			AnnualFee:   250,
			SignUpBonus: "60,000 points after $6,000 spend in 6 months",
			URL:         "https://www.americanexpress.com/us/credit-cards/card/gold-card/",
		},
		{
			Name:     "Amex Platinum",
			Issuer:   "American Express",
			BaseRate: 1,
			BonusCategories: []domain.BonusCategory{
				{Category: "Flights", Rate: 5, Description: "Flights Booked Directly or through Amex"},
				{Category: "Hotels", Rate: 5, Description: "Hotels through Amex Travel"},
			},
			AnnualFee:   695,
			SignUpBonus: "80,000 points after $8,000 spend in 6 months",
			URL:         "https://www.americanexpress.com/us/credit-cards/card/platinum/",
		},
		{
			Name:            "Citi Double Cash",
			Issuer:          "Citi",
			BaseRate:        2,
			BonusCategories: []domain.BonusCategory{},
			AnnualFee:       0,
			SignUpBonus:     "$200 after $1,500 spend in 6 months",
			URL:             "https://www.citi.com/credit-cards/citi-double-cash-credit-card",
		},
		{
			Name:     "Citi Custom Cash",
			Issuer:   "Citi",
			BaseRate: 1,
			BonusCategories: []domain.BonusCategory{
				{Category: "Top Category", Rate: 5, Description: "Top eligible category each month (up to $500)"},
			},
			AnnualFee:   0,
			SignUpBonus: "$200 after $1,500 spend in 6 months",
			URL:         "https://www.citi.com/credit-cards/citi-custom-cash-credit-card",
		},
		{
			Name:     "Capital One Venture",
			Issuer:   "Capital One",
			BaseRate: 2,
			BonusCategories: []domain.BonusCategory{
				{Category: "Hotels & Rentals", Rate: 10, Description: "Hotels & Car Rentals through Capital One"},
			},
			AnnualFee:   95,
			SignUpBonus: "75,000 miles after $4,000 spend in 3 months",
			URL:         "https://www.capitalone.com/credit-cards/venture/",
		},
		{
			Name:     "Capital One Savor",
			Issuer:   "Capital One",
			BaseRate: 1,
			BonusCategories: []domain.BonusCategory{
				{Category: "Dining", Rate: 3, Description: "Dining & Entertainment"},
				{Category: "Entertainment", Rate: 3, Description: "Entertainment"},
				{Category: "Streaming", Rate: 3, Description: "Popular Streaming Services"},
				{Category: "Groceries", Rate: 3, Description: "Grocery Stores (excl. superstores)"},
			},
			AnnualFee:   0,
			SignUpBonus: "$200 after $500 spend in 3 months",
			URL:         "https://www.capitalone.com/credit-cards/savorone-dining-rewards/",
		},
		{
			Name:     "Discover it Cash Back",
			Issuer:   "Discover",
			BaseRate: 1,
			BonusCategories: []domain.BonusCategory{
				{Category: "Rotating Categories", Rate: 5, Description: "Rotating categories each quarter (up to $1,500)"},
			},
			AnnualFee:   0,
			SignUpBonus: "Cashback Match: All cashback earned in first year matched",
			URL:         "https://www.discover.com/credit-cards/cash-back/it-card.html",
		},
		{
			Name:            "Wells Fargo Active Cash",
			Issuer:          "Wells Fargo",
			BaseRate:        2,
			BonusCategories: []domain.BonusCategory{},
			AnnualFee:       0,
			SignUpBonus:     "$200 after $500 spend in 3 months",
			URL:             "https://www.wellsfargo.com/credit-cards/active-cash/",
		},
		{
			Name:     "Bank of America Premium Rewards",
			Issuer:   "Bank of America",
			BaseRate: 1.5,
			BonusCategories: []domain.BonusCategory{
				{Category: "Travel", Rate: 2, Description: "Travel & Dining"},
				{Category: "Dining", Rate: 2, Description: "Travel & Dining"},
			},
			AnnualFee:   95,
			SignUpBonus: "60,000 points after $4,000 spend in 90 days",
			URL:         "https://www.bankofamerica.com/credit-cards/products/premium-rewards-credit-card/",
		},
	}
}
