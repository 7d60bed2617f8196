package service

import "github.com/ellio-app/rewards-bfa-go/internal/domain"

// presetCards returns the popular cards the catalog starts with, spanning
// flat-cashback, category-bonus and rotating-category reward schemes.
func presetCards() []*domain.CreditCard {
	return []*domain.CreditCard{
		{
			ID:     "chase-sapphire-preferred",
			Name:   "Chase Sapphire Preferred",
			Issuer: "Chase",
			Categories: map[string]domain.CategoryRate{
				"dining":    {PointsPerDollar: 3},
				"groceries": {PointsPerDollar: 3},
				"travel":    {PointsPerDollar: 5},
				"streaming": {PointsPerDollar: 3},
				"default":   {PointsPerDollar: 1},
			},
			AnnualFee: 95,
			SignupBonus: &domain.SignupBonus{
				Points:           60000,
				SpendRequirement: 4000,
				Months:           3,
			},
			Perks: []string{"Primary rental car insurance", "2x points on travel", "No foreign transaction fees"},
		},
		{
			ID:     "chase-freedom-unlimited",
			Name:   "Chase Freedom Unlimited",
			Issuer: "Chase",
			Categories: map[string]domain.CategoryRate{
				"dining":    {PointsPerDollar: 3},
				"drugstore": {PointsPerDollar: 3},
				"travel":    {PointsPerDollar: 5},
				"default":   {PointsPerDollar: 1.5},
			},
			AnnualFee: 0,
			SignupBonus: &domain.SignupBonus{
				Points:           20000,
				SpendRequirement: 500,
				Months:           3,
			},
			Perks: []string{"0% intro APR for 15 months"},
		},
		{
			ID:     "amex-gold",
			Name:   "American Express Gold",
			Issuer: "Amex",
			Categories: map[string]domain.CategoryRate{
				"groceries": {PointsPerDollar: 4}, // up to $25k/year
				"dining":    {PointsPerDollar: 4},
				"default":   {PointsPerDollar: 1},
			},
			AnnualFee: 250,
			SignupBonus: &domain.SignupBonus{
				Points:           60000,
				SpendRequirement: 4000,
				Months:           6,
			},
			Perks: []string{"$120 Uber credit", "$120 dining credit", "No foreign fees"},
		},
		{
			ID:     "citi-double-cash",
			Name:   "Citi Double Cash",
			Issuer: "Citi",
			Categories: map[string]domain.CategoryRate{
				"default": {CashbackPercent: 2},
			},
			AnnualFee: 0,
			Perks:     []string{"2% on everything (1% purchase + 1% payment)"},
		},
		{
			ID:     "capital-one-savor",
			Name:   "Capital One Savor",
			Issuer: "Capital One",
			Categories: map[string]domain.CategoryRate{
				"dining":        {PointsPerDollar: 4},
				"entertainment": {PointsPerDollar: 4},
				"groceries":     {PointsPerDollar: 3},
				"streaming":     {PointsPerDollar: 4},
				"default":       {PointsPerDollar: 1},
			},
			AnnualFee: 95,
			SignupBonus: &domain.SignupBonus{
				Points:           50000,
				SpendRequirement: 3000,
				Months:           3,
			},
			Perks: []string{"No foreign fees"},
		},
		{
			ID:     "discover-it",
			Name:   "Discover it Cash Back",
			Issuer: "Discover",
			Categories: map[string]domain.CategoryRate{
				"rotating": {CashbackPercent: 5}, // changes quarterly
				"default":  {CashbackPercent: 1},
			},
			AnnualFee: 0,
			Perks:     []string{"First year cashback match", "Rotating 5% categories"},
		},
		{
			ID:     "amex-bcp",
			Name:   "Blue Cash Preferred",
			Issuer: "Amex",
			Categories: map[string]domain.CategoryRate{
				"groceries": {CashbackPercent: 6}, // up to $6k/year
				"streaming": {CashbackPercent: 6},
				"transit":   {CashbackPercent: 3},
				"gas":       {CashbackPercent: 3},
				"default":   {CashbackPercent: 1},
			},
			AnnualFee: 95,
			SignupBonus: &domain.SignupBonus{
				Points:           0, // cashback card
				SpendRequirement: 3000,
				Months:           6,
			},
			Perks: []string{"6% at US supermarkets"},
		},
		{
			ID:     "amazon-prime",
			Name:   "Amazon Prime Visa",
			Issuer: "Chase",
			Categories: map[string]domain.CategoryRate{
				"amazon":      {CashbackPercent: 5},
				"whole-foods": {CashbackPercent: 5},
				"dining":      {CashbackPercent: 2},
				"gas":         {CashbackPercent: 2},
				"drugstore":   {CashbackPercent: 2},
				"default":     {CashbackPercent: 1},
			},
			AnnualFee: 0, // requires Prime membership
			Perks:     []string{"5% on Amazon/Whole Foods"},
		},
		{
			ID:     "costco-visa",
			Name:   "Costco Anywhere Visa",
			Issuer: "Citi",
			Categories: map[string]domain.CategoryRate{
				"gas":              {CashbackPercent: 4},
				"costco-warehouse": {CashbackPercent: 2},
				"dining":           {CashbackPercent: 3},
				"travel":           {CashbackPercent: 3},
				"default":          {CashbackPercent: 1},
			},
			AnnualFee: 0, // requires Costco membership
			Perks:     []string{"4% on gas", "3% dining & travel"},
		},
	}
}
