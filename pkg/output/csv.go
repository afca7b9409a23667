package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/sem-planner/internal/bidding"
)

// CSVHeader is the column order of WriteCSV.
var CSVHeader = []string{
	"keyword", "search_volume", "competition", "cpc_low", "cpc_high",
	"target_cpc", "suggested_match_types", "expected_conversions", "expected_cost",
}

// MatchTypeSeparator joins suggested match types within one CSV cell.
const MatchTypeSeparator = "|"

// WriteCSV writes one row per keyword recommendation.
func WriteCSV(w io.Writer, recs []bidding.Recommendation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range recs {
		row := []string{
			rec.Text,
			strconv.Itoa(rec.SearchVolume),
			string(rec.Competition),
			formatFloat(rec.CPCLow),
			formatFloat(rec.CPCHigh),
			formatFloat(rec.TargetCPC),
			strings.Join(rec.SuggestedMatchTypes, MatchTypeSeparator),
			strconv.Itoa(rec.ExpectedConversions),
			strconv.Itoa(rec.ExpectedCost),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %q: %w", rec.Text, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
