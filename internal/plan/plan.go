// Package plan assembles budget, keyword, bid and theme outputs into a
// single SEM plan document.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iwvelando/sem-planner/internal/bidding"
	"github.com/iwvelando/sem-planner/internal/budget"
	"github.com/iwvelando/sem-planner/internal/discovery"
	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/internal/themes"
	"github.com/iwvelando/sem-planner/pkg/constants"
)

// Metadata identifies a generated plan and records its inputs.
type Metadata struct {
	PlanID            string    `json:"plan_id"`
	GeneratedAt       time.Time `json:"generated_at"`
	BrandWebsite      string    `json:"brand_website"`
	CompetitorWebsite string    `json:"competitor_website"`
	BrandDomain       string    `json:"brand_domain"`
	CompetitorDomain  string    `json:"competitor_domain"`
	Locations         []string  `json:"locations"`
	TargetCPA         float64   `json:"target_cpa"`
	ConversionRate    float64   `json:"conversion_rate"`
}

// Plan is the complete output of one generation run.
type Plan struct {
	Metadata           Metadata                 `json:"metadata"`
	AdBudgets          budget.Allocation        `json:"ad_budgets"`
	Keywords           []bidding.Recommendation `json:"keywords"`
	AdGroups           keywords.AdGroups        `json:"ad_groups"`
	SearchThemes       themes.Themes            `json:"search_themes"`
	ShoppingBids       []bidding.ShoppingBid    `json:"shopping_bids"`
	DiscoveredKeywords []keywords.Keyword       `json:"discovered_keywords,omitempty"`
}

// Tables holds the constant data the generator computes from. Zero values
// fall back to the built-in defaults.
type Tables struct {
	Ratios          budget.Ratios
	Templates       []keywords.Template
	Rules           []keywords.Rule
	Catalog         []bidding.Product
	MinSearchVolume int
}

// DefaultTables returns the built-in ratio, template, rule and catalog tables.
func DefaultTables() Tables {
	return Tables{
		Ratios:          budget.DefaultRatios(),
		Templates:       keywords.DefaultTemplates(),
		Rules:           keywords.DefaultRules(),
		Catalog:         bidding.DefaultCatalog(),
		MinSearchVolume: constants.DefaultMinSearchVolume,
	}
}

// Generator runs the plan pipeline.
type Generator struct {
	logger *zap.Logger
	tables Tables
	newID  func() string
	now    func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithIDFunc overrides plan ID generation.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		g.newID = fn
	}
}

// WithClock overrides the generation timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(g *Generator) {
		g.now = fn
	}
}

// NewGenerator returns a Generator over the given tables.
func NewGenerator(logger *zap.Logger, tables Tables, opts ...Option) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tables.Ratios == (budget.Ratios{}) {
		tables.Ratios = budget.DefaultRatios()
	}
	g := &Generator{
		logger: logger,
		tables: tables,
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates the input and produces a plan.
func (g *Generator) Generate(in Input) (*Plan, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := g.tables.Ratios.Validate(); err != nil {
		return nil, fmt.Errorf("budget ratios: %w", err)
	}

	brandDomain := g.domain(in.BrandWebsite, "brand")
	competitorDomain := g.domain(in.CompetitorWebsite, "competitor")

	allocation := budget.NewAllocator(g.tables.Ratios).Allocate(in.TotalBudget)

	synth := keywords.NewSynthesizer(g.tables.Templates)
	seeds := append(synth.ForDomain(brandDomain), synth.ForDomain(competitorDomain)...)

	groups := keywords.NewClassifier(g.tables.Rules).Classify(seeds, in.Locations)

	recommendations, err := bidding.NewEstimator(in.TargetCPA, in.ConversionRate).RecommendAll(seeds)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate bids: %w", err)
	}

	shopping, _ := allocation.Channel(constants.ChannelShopping)
	shoppingBids, err := bidding.NewShoppingBidGenerator(g.tables.Catalog, in.ConversionRate, g.tables.Ratios.DaysPerMonth).
		Generate(shopping.Monthly)
	if err != nil {
		return nil, fmt.Errorf("failed to generate shopping bids: %w", err)
	}

	var discovered []keywords.Keyword
	if len(in.Pages) > 0 {
		discovered, err = discovery.NewDiscoverer(g.logger, g.tables.MinSearchVolume).Discover(in.Pages)
		if err != nil {
			return nil, fmt.Errorf("failed to discover keywords: %w", err)
		}
	}

	locations := append([]string{}, in.Locations...)
	result := &Plan{
		Metadata: Metadata{
			PlanID:            g.newID(),
			GeneratedAt:       g.now().UTC(),
			BrandWebsite:      in.BrandWebsite,
			CompetitorWebsite: in.CompetitorWebsite,
			BrandDomain:       brandDomain,
			CompetitorDomain:  competitorDomain,
			Locations:         locations,
			TargetCPA:         in.TargetCPA,
			ConversionRate:    in.ConversionRate,
		},
		AdBudgets:          allocation,
		Keywords:           recommendations,
		AdGroups:           groups,
		SearchThemes:       themes.Generate(brandDomain, in.Locations),
		ShoppingBids:       shoppingBids,
		DiscoveredKeywords: discovered,
	}

	g.logger.Info("plan generated",
		zap.String("op", "plan.Generate"),
		zap.String("planID", result.Metadata.PlanID),
		zap.Int("keywords", len(result.Keywords)),
		zap.Int("adGroups", len(result.AdGroups.NonEmpty())),
		zap.Int("shoppingBids", len(result.ShoppingBids)),
		zap.Int("discoveredKeywords", len(result.DiscoveredKeywords)),
	)
	return result, nil
}

func (g *Generator) domain(rawURL, role string) string {
	domain := keywords.ExtractDomain(rawURL)
	if domain == keywords.PlaceholderDomain {
		g.logger.Debug(fmt.Sprintf("no domain token in %s website, using placeholder", role),
			zap.String("op", "plan.Generate"),
			zap.String("url", rawURL),
		)
	}
	return domain
}
