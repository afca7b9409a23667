package config

import (
	"fmt"

	"github.com/iwvelando/sem-planner/internal/bidding"
	"github.com/iwvelando/sem-planner/internal/budget"
	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/internal/plan"
)

// ToInput converts the campaign block and discovery pages to a plan input.
func (c *Configuration) ToInput() plan.Input {
	return plan.Input{
		BrandWebsite:      c.Campaign.BrandWebsite,
		CompetitorWebsite: c.Campaign.CompetitorWebsite,
		Locations:         append([]string{}, c.Campaign.Locations...),
		TotalBudget:       c.Campaign.TotalBudget,
		TargetCPA:         c.Campaign.TargetCPA,
		ConversionRate:    c.Campaign.ConversionRate,
		Pages:             append([]string(nil), c.Discovery.Pages...),
	}
}

// ToRatios converts the allocation block.
func (c *Configuration) ToRatios() budget.Ratios {
	return budget.Ratios{
		Shopping:     c.Allocation.Shopping,
		Search:       c.Allocation.Search,
		PMax:         c.Allocation.PMax,
		DaysPerMonth: c.Allocation.DaysPerMonth,
	}
}

// ToTemplates converts the keyword template table. An empty table returns
// nil so the synthesizer uses its defaults.
func (c *Configuration) ToTemplates() ([]keywords.Template, error) {
	if len(c.KeywordTemplates) == 0 {
		return nil, nil
	}
	templates := make([]keywords.Template, 0, len(c.KeywordTemplates))
	for i, t := range c.KeywordTemplates {
		competition, err := keywords.ParseCompetition(t.Competition)
		if err != nil {
			return nil, fmt.Errorf("keyword template %d (%q): %w", i, t.Pattern, err)
		}
		templates = append(templates, keywords.Template{
			Pattern:      t.Pattern,
			SearchVolume: t.SearchVolume,
			Competition:  competition,
			CPCLow:       t.CPCLow,
			CPCHigh:      t.CPCHigh,
		})
	}
	return templates, nil
}

// ToRules builds the classification rules from the classification block.
func (c *Configuration) ToRules() []keywords.Rule {
	return keywords.BuildRules(keywords.RuleOptions{
		BrandTerms:       c.Classification.BrandTerms,
		CompetitorTerms:  c.Classification.CompetitorTerms,
		LongTailMinWords: c.Classification.LongTailMinWords,
	})
}

// ToCatalog converts the product table. An empty table returns nil so the
// shopping generator uses the default catalog.
func (c *Configuration) ToCatalog() ([]bidding.Product, error) {
	if len(c.Products) == 0 {
		return nil, nil
	}
	catalog := make([]bidding.Product, 0, len(c.Products))
	for _, p := range c.Products {
		catalog = append(catalog, bidding.Product{
			Name:     p.Name,
			PriceMin: p.PriceMin,
			PriceMax: p.PriceMax,
			Priority: bidding.Priority(p.Priority),
		})
	}
	if err := bidding.ValidateCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ToTables gathers every constant table the plan generator needs.
func (c *Configuration) ToTables() (plan.Tables, error) {
	templates, err := c.ToTemplates()
	if err != nil {
		return plan.Tables{}, err
	}
	catalog, err := c.ToCatalog()
	if err != nil {
		return plan.Tables{}, err
	}
	return plan.Tables{
		Ratios:          c.ToRatios(),
		Templates:       templates,
		Rules:           c.ToRules(),
		Catalog:         catalog,
		MinSearchVolume: c.Discovery.MinSearchVolume,
	}, nil
}
