package bidding

import (
	"fmt"

	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/mathutil"
)

// Priority is a shopping product's bidding priority.
type Priority string

// Priorities.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// PriorityMultipliers scales a product's CPC by priority.
var PriorityMultipliers = map[Priority]float64{
	PriorityHigh:   1.2,
	PriorityMedium: 1.0,
	PriorityLow:    0.8,
}

// Product is a catalog entry with a price range.
type Product struct {
	Name     string
	PriceMin float64
	PriceMax float64
	Priority Priority
}

// AveragePrice is the midpoint of the price range.
func (p Product) AveragePrice() float64 {
	return mathutil.Mean(p.PriceMin, p.PriceMax)
}

// DefaultCatalog returns the four subscription products.
func DefaultCatalog() []Product {
	return []Product{
		{Name: "Basic Plan", PriceMin: 29, PriceMax: 49, Priority: PriorityHigh},
		{Name: "Pro Plan", PriceMin: 79, PriceMax: 129, Priority: PriorityHigh},
		{Name: "Enterprise Plan", PriceMin: 199, PriceMax: 299, Priority: PriorityMedium},
		{Name: "Add-on Features", PriceMin: 19, PriceMax: 39, Priority: PriorityMedium},
	}
}

// ValidateCatalog checks product price ranges and priorities.
func ValidateCatalog(products []Product) error {
	for i, p := range products {
		if p.Name == "" {
			return fmt.Errorf("product %d: name is required", i)
		}
		if p.PriceMin < 0 || p.PriceMin > p.PriceMax {
			return fmt.Errorf("product %q: price range %.2f-%.2f is invalid", p.Name, p.PriceMin, p.PriceMax)
		}
		if _, ok := PriorityMultipliers[p.Priority]; !ok {
			return fmt.Errorf("product %q: unknown priority %q", p.Name, p.Priority)
		}
	}
	return nil
}

// ShoppingBid is the bid and budget recommendation for one product.
type ShoppingBid struct {
	Product             string   `json:"product"`
	SuggestedCPC        float64  `json:"suggested_cpc"`
	DailyBudget         float64  `json:"daily_budget"`
	ExpectedConversions float64  `json:"expected_conversions"`
	Priority            Priority `json:"priority"`
}

// ShoppingBidGenerator spreads the shopping budget evenly over a catalog.
type ShoppingBidGenerator struct {
	catalog        []Product
	conversionRate float64
	daysPerMonth   float64
}

// NewShoppingBidGenerator returns a generator over a copy of catalog. A nil
// catalog uses DefaultCatalog.
func NewShoppingBidGenerator(catalog []Product, conversionRate, daysPerMonth float64) *ShoppingBidGenerator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if daysPerMonth <= 0 {
		daysPerMonth = constants.DaysPerMonth
	}
	return &ShoppingBidGenerator{
		catalog:        append([]Product(nil), catalog...),
		conversionRate: conversionRate,
		daysPerMonth:   daysPerMonth,
	}
}

// Generate computes bids for each product from the monthly shopping budget.
func (g *ShoppingBidGenerator) Generate(monthlyShoppingBudget float64) ([]ShoppingBid, error) {
	bids := make([]ShoppingBid, 0, len(g.catalog))
	if len(g.catalog) == 0 {
		return bids, nil
	}

	dailyPerProduct := monthlyShoppingBudget / g.daysPerMonth / float64(len(g.catalog))
	for _, p := range g.catalog {
		multiplier, ok := PriorityMultipliers[p.Priority]
		if !ok {
			return nil, fmt.Errorf("product %q: unknown priority %q", p.Name, p.Priority)
		}
		targetCPC := p.AveragePrice() * constants.ShoppingCPCPriceShare * g.conversionRate
		adjusted := targetCPC * multiplier

		bids = append(bids, ShoppingBid{
			Product:             p.Name,
			SuggestedCPC:        mathutil.Round(adjusted),
			DailyBudget:         mathutil.Round(dailyPerProduct),
			ExpectedConversions: mathutil.Round(mathutil.SafeDivide(dailyPerProduct*g.conversionRate, adjusted)),
			Priority:            p.Priority,
		})
	}
	return bids, nil
}
