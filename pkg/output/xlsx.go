package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/iwvelando/sem-planner/internal/plan"
)

// Workbook sheet names.
const (
	SheetAdBudgets          = "Ad Budgets"
	SheetKeywords           = "Keywords"
	SheetAdGroups           = "Ad Groups"
	SheetSearchThemes       = "Search Themes"
	SheetShoppingBids       = "Shopping Bids"
	SheetDiscoveredKeywords = "Discovered Keywords"
)

type sheet struct {
	name string
	rows [][]any
}

// WriteXLSX writes the plan as a workbook with one sheet per plan section.
func WriteXLSX(w io.Writer, p *plan.Plan) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, s := range workbookSheets(p) {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", s.name, err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", s.name, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			values := row
			if err := f.SetSheetRow(s.name, cell, &values); err != nil {
				return fmt.Errorf("failed to write sheet %s row %d: %w", s.name, r+1, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func workbookSheets(p *plan.Plan) []sheet {
	budgets := sheet{name: SheetAdBudgets, rows: [][]any{{"channel", "ratio", "monthly_budget", "daily_budget"}}}
	for _, ch := range p.AdBudgets.Channels {
		budgets.rows = append(budgets.rows, []any{ch.Channel, ch.Ratio, ch.Monthly, ch.Daily})
	}
	budgets.rows = append(budgets.rows, []any{"total", 1.0, p.AdBudgets.TotalMonthly, p.AdBudgets.TotalDaily})

	kws := sheet{name: SheetKeywords, rows: [][]any{toAny(CSVHeader)}}
	for _, rec := range p.Keywords {
		kws.rows = append(kws.rows, []any{
			rec.Text, rec.SearchVolume, string(rec.Competition), rec.CPCLow, rec.CPCHigh,
			rec.TargetCPC, strings.Join(rec.SuggestedMatchTypes, MatchTypeSeparator),
			rec.ExpectedConversions, rec.ExpectedCost,
		})
	}

	groups := sheet{name: SheetAdGroups, rows: [][]any{{"ad_group", "keyword", "search_volume", "competition", "cpc_low", "cpc_high"}}}
	for _, g := range p.AdGroups.NonEmpty() {
		for _, kw := range g.Keywords {
			groups.rows = append(groups.rows, []any{g.Name, kw.Text, kw.SearchVolume, string(kw.Competition), kw.CPCLow, kw.CPCHigh})
		}
	}

	themeSheet := sheet{name: SheetSearchThemes, rows: [][]any{{"category", "theme"}}}
	for _, c := range p.SearchThemes {
		for _, theme := range c.Themes {
			themeSheet.rows = append(themeSheet.rows, []any{c.Name, theme})
		}
	}

	shopping := sheet{name: SheetShoppingBids, rows: [][]any{{"product", "suggested_cpc", "daily_budget", "expected_conversions", "priority"}}}
	for _, bid := range p.ShoppingBids {
		shopping.rows = append(shopping.rows, []any{bid.Product, bid.SuggestedCPC, bid.DailyBudget, bid.ExpectedConversions, string(bid.Priority)})
	}

	sheets := []sheet{budgets, kws, groups, themeSheet, shopping}
	if len(p.DiscoveredKeywords) > 0 {
		discovered := sheet{name: SheetDiscoveredKeywords, rows: [][]any{{"keyword", "search_volume", "competition", "cpc_low", "cpc_high"}}}
		for _, kw := range p.DiscoveredKeywords {
			discovered.rows = append(discovered.rows, []any{kw.Text, kw.SearchVolume, string(kw.Competition), kw.CPCLow, kw.CPCHigh})
		}
		sheets = append(sheets, discovered)
	}
	return sheets
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
