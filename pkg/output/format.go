// Package output renders generated plans as reports and export files.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/sem-planner/internal/plan"
	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/format"
)

// ErrUnsupportedFormat is returned for an output format with no writer.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Write renders the plan to w in the named format.
func Write(w io.Writer, outputFormat string, p *plan.Plan) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, p)
	case constants.OutputFormatJSON:
		return WriteJSON(w, p)
	case constants.OutputFormatCSV:
		return WriteCSV(w, p.Keywords)
	case constants.OutputFormatXLSX:
		return WriteXLSX(w, p)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, outputFormat)
	}
}

// PrettyFormat writes a human-readable report rather than a machine-readable file.
func PrettyFormat(w io.Writer, p *plan.Plan) error {
	pw := &prettyWriter{w: w}
	m := p.Metadata

	pw.printf("=== SEM plan %s ===\n", m.PlanID)
	pw.printf("Brand:      %s (%s)\n", m.BrandWebsite, m.BrandDomain)
	pw.printf("Competitor: %s (%s)\n", m.CompetitorWebsite, m.CompetitorDomain)
	pw.printf("Locations:  %s\n", strings.Join(m.Locations, ", "))
	pw.printf("Target CPA: %s | Conversion rate: %s\n\n", format.Currency(m.TargetCPA), format.Percent(m.ConversionRate))

	pw.printf("--- Budget allocation ---\n")
	pw.printf("Channel  | Share  | Monthly       | Daily\n")
	pw.printf("_______  | _____  | _____________ | _____\n")
	for _, ch := range p.AdBudgets.Channels {
		pw.printf("%-8s | %-6s | %-13s | %s\n", ch.Channel, format.Percent(ch.Ratio), format.Currency(ch.Monthly), format.Currency(ch.Daily))
	}
	pw.printf("%-8s | %-6s | %-13s | %s\n\n", "total", "", format.Currency(p.AdBudgets.TotalMonthly), format.Currency(p.AdBudgets.TotalDaily))

	pw.printf("--- Keywords ---\n")
	for _, rec := range p.Keywords {
		pw.printf("%s | %s searches | %s | CPC %s | %s | %d conv | %s\n",
			rec.Text, format.Number(rec.SearchVolume), rec.Competition, format.Currency(rec.TargetCPC),
			strings.Join(rec.SuggestedMatchTypes, ", "), rec.ExpectedConversions, format.Currency(float64(rec.ExpectedCost)))
	}

	pw.printf("\n--- Ad groups ---\n")
	for _, g := range p.AdGroups.NonEmpty() {
		texts := make([]string, 0, len(g.Keywords))
		for _, kw := range g.Keywords {
			texts = append(texts, kw.Text)
		}
		pw.printf("%s (%d): %s\n", g.Name, len(g.Keywords), strings.Join(texts, ", "))
	}

	pw.printf("\n--- Search themes ---\n")
	for _, c := range p.SearchThemes {
		pw.printf("%s: %s\n", c.Name, strings.Join(c.Themes, ", "))
	}

	pw.printf("\n--- Shopping bids ---\n")
	for _, bid := range p.ShoppingBids {
		pw.printf("%s | %s | CPC %s | daily %s | %s conv/day\n",
			bid.Product, bid.Priority, format.Currency(bid.SuggestedCPC), format.Currency(bid.DailyBudget), format.Decimal(bid.ExpectedConversions))
	}

	if len(p.DiscoveredKeywords) > 0 {
		pw.printf("\n--- Discovered keywords ---\n")
		for _, kw := range p.DiscoveredKeywords {
			pw.printf("%s | %s searches | %s | %s-%s\n",
				kw.Text, format.Number(kw.SearchVolume), kw.Competition, format.Currency(kw.CPCLow), format.Currency(kw.CPCHigh))
		}
	}
	return pw.err
}

// prettyWriter keeps the first write error so the report can be written
// without checking every line.
type prettyWriter struct {
	w   io.Writer
	err error
}

func (pw *prettyWriter) printf(f string, args ...any) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, f, args...)
}
