// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/sem-planner/internal/bidding"
	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/internal/plan"
)

// SampleInput returns the cubehq.ai versus notion.so input used across tests.
func SampleInput() plan.Input {
	return plan.Input{
		BrandWebsite:      "https://cubehq.ai",
		CompetitorWebsite: "https://notion.so",
		Locations:         []string{"New York", "San Francisco"},
		TotalBudget:       15000,
		TargetCPA:         50,
		ConversionRate:    0.02,
	}
}

// FindRecommendation finds a keyword recommendation by keyword text.
// Returns a pointer to the recommendation if found, nil otherwise.
func FindRecommendation(recs []bidding.Recommendation, text string) *bidding.Recommendation {
	for i := range recs {
		if recs[i].Text == text {
			return &recs[i]
		}
	}
	return nil
}

// FindShoppingBid finds a shopping bid by product name.
func FindShoppingBid(bids []bidding.ShoppingBid, product string) *bidding.ShoppingBid {
	for i := range bids {
		if bids[i].Product == product {
			return &bids[i]
		}
	}
	return nil
}

// GroupOf returns the name of the ad group holding the keyword text, or ""
// when no group holds it.
func GroupOf(groups keywords.AdGroups, text string) string {
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if kw.Text == text {
				return g.Name
			}
		}
	}
	return ""
}
