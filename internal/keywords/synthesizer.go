package keywords

import (
	"fmt"
	"strings"
)

// DomainPlaceholder is replaced by the domain token in template patterns.
const DomainPlaceholder = "{domain}"

// Template describes one synthesized keyword. The metrics are illustrative
// constants, not measured data.
type Template struct {
	Pattern      string
	SearchVolume int
	Competition  Competition
	CPCLow       float64
	CPCHigh      float64
}

// Render builds the keyword for a domain token.
func (t Template) Render(domain string) Keyword {
	return Keyword{
		Text:         strings.ReplaceAll(t.Pattern, DomainPlaceholder, domain),
		SearchVolume: t.SearchVolume,
		Competition:  t.Competition,
		CPCLow:       t.CPCLow,
		CPCHigh:      t.CPCHigh,
	}
}

// DefaultTemplates returns the ten seed keyword templates.
func DefaultTemplates() []Template {
	return []Template{
		{Pattern: "{domain} software", SearchVolume: 8500, Competition: High, CPCLow: 0.50, CPCHigh: 2.50},
		{Pattern: "{domain} platform", SearchVolume: 6200, Competition: Medium, CPCLow: 0.75, CPCHigh: 3.00},
		{Pattern: "{domain} solution", SearchVolume: 4800, Competition: Medium, CPCLow: 0.60, CPCHigh: 2.80},
		{Pattern: "best {domain}", SearchVolume: 7200, Competition: High, CPCLow: 1.20, CPCHigh: 4.50},
		{Pattern: "{domain} alternatives", SearchVolume: 3900, Competition: Medium, CPCLow: 0.90, CPCHigh: 3.20},
		{Pattern: "{domain} pricing", SearchVolume: 5600, Competition: High, CPCLow: 1.10, CPCHigh: 3.80},
		{Pattern: "{domain} reviews", SearchVolume: 4200, Competition: Medium, CPCLow: 0.80, CPCHigh: 2.90},
		{Pattern: "{domain} demo", SearchVolume: 2800, Competition: Low, CPCLow: 0.70, CPCHigh: 2.60},
		{Pattern: "{domain} free trial", SearchVolume: 5100, Competition: High, CPCLow: 1.30, CPCHigh: 4.20},
		{Pattern: "{domain} features", SearchVolume: 3400, Competition: Medium, CPCLow: 0.85, CPCHigh: 3.10},
	}
}

// ValidateTemplates checks a template table for unusable entries.
func ValidateTemplates(templates []Template) error {
	if len(templates) == 0 {
		return fmt.Errorf("at least one keyword template is required")
	}
	for i, t := range templates {
		if !strings.Contains(t.Pattern, DomainPlaceholder) {
			return fmt.Errorf("keyword template %d (%q) must contain %s", i, t.Pattern, DomainPlaceholder)
		}
		if t.SearchVolume < 0 {
			return fmt.Errorf("keyword template %d (%q): search volume must be non-negative", i, t.Pattern)
		}
		if !t.Competition.Valid() {
			return fmt.Errorf("keyword template %d (%q): %w: %q", i, t.Pattern, ErrUnknownCompetition, t.Competition)
		}
		if t.CPCLow < 0 || t.CPCLow > t.CPCHigh {
			return fmt.Errorf("keyword template %d (%q): cpc range %.2f-%.2f is invalid", i, t.Pattern, t.CPCLow, t.CPCHigh)
		}
	}
	return nil
}

// Synthesizer derives seed keywords from a URL using a template table.
type Synthesizer struct {
	templates []Template
}

// NewSynthesizer returns a synthesizer over a copy of templates. A nil or
// empty table falls back to DefaultTemplates.
func NewSynthesizer(templates []Template) *Synthesizer {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	return &Synthesizer{templates: append([]Template(nil), templates...)}
}

// Synthesize returns one keyword per template for the URL's domain token.
func (s *Synthesizer) Synthesize(rawURL string) []Keyword {
	return s.ForDomain(ExtractDomain(rawURL))
}

// ForDomain returns one keyword per template for an already extracted domain.
func (s *Synthesizer) ForDomain(domain string) []Keyword {
	result := make([]Keyword, 0, len(s.templates))
	for _, t := range s.templates {
		result = append(result, t.Render(domain))
	}
	return result
}
