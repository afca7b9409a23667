package integration

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/iwvelando/sem-planner/internal/config"
	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/internal/plan"
	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/mathutil"
	"github.com/iwvelando/sem-planner/pkg/output"
	"github.com/iwvelando/sem-planner/pkg/testutil"
)

// loadTestPlan loads the shared test config exactly as the generate command
// does and produces a plan from it.
func loadTestPlan(t *testing.T) *plan.Plan {
	t.Helper()
	chdirForTest(t, "..")

	conf, err := config.LoadConfiguration("test_config.yaml")
	require.NoError(t, err)
	require.NoError(t, conf.Validate())
	assert.Empty(t, conf.ValidateConfiguration())

	tables, err := conf.ToTables()
	require.NoError(t, err)

	p, err := plan.NewGenerator(zap.NewNop(), tables).Generate(conf.ToInput())
	require.NoError(t, err)
	return p
}

func TestPlanBaseline(t *testing.T) {
	p := loadTestPlan(t)

	assert.Equal(t, "cubehq", p.Metadata.BrandDomain)
	assert.Equal(t, "notion", p.Metadata.CompetitorDomain)

	budgets := map[string]float64{"shopping": 4995, "search": 7005, "pmax": 3000}
	for channel, monthly := range budgets {
		ch, ok := p.AdBudgets.Channel(channel)
		require.True(t, ok, channel)
		assert.InDelta(t, monthly, ch.Monthly, 1e-6, channel)
		assert.InDelta(t, monthly/constants.DaysPerMonth, ch.Daily, 1e-6, channel)
	}

	bestCubehq := testutil.FindRecommendation(p.Keywords, "best cubehq")
	require.NotNil(t, bestCubehq)
	assert.Equal(t, 1.2, bestCubehq.TargetCPC)
	assert.Equal(t, 144, bestCubehq.ExpectedConversions)
	assert.Equal(t, 8640, bestCubehq.ExpectedCost)
	assert.Equal(t, []string{"Exact", "Phrase"}, bestCubehq.SuggestedMatchTypes)

	demo := testutil.FindRecommendation(p.Keywords, "notion demo")
	require.NotNil(t, demo)
	assert.Equal(t, 0.8, demo.TargetCPC)

	assert.Equal(t, keywords.GroupCompetitor, testutil.GroupOf(p.AdGroups, "notion alternatives"))
	assert.Equal(t, keywords.GroupCategory, testutil.GroupOf(p.AdGroups, "cubehq free trial"))

	enterprise := testutil.FindShoppingBid(p.ShoppingBids, "Enterprise Plan")
	require.NotNil(t, enterprise)
	assert.Equal(t, 0.5, enterprise.SuggestedCPC)
	assert.Equal(t, 41.62, enterprise.DailyBudget)
	assert.Equal(t, 1.67, enterprise.ExpectedConversions)

	require.NotEmpty(t, p.DiscoveredKeywords)
	for i, kw := range p.DiscoveredKeywords {
		assert.GreaterOrEqual(t, kw.SearchVolume, constants.DefaultMinSearchVolume)
		if i > 0 {
			assert.GreaterOrEqual(t, p.DiscoveredKeywords[i-1].SearchVolume, kw.SearchVolume)
		}
	}
}

func TestPlanInvariants(t *testing.T) {
	p := loadTestPlan(t)

	var monthly, daily, ratios float64
	for _, ch := range p.AdBudgets.Channels {
		monthly += ch.Monthly
		daily += ch.Daily
		ratios += ch.Ratio
	}
	assert.True(t, mathutil.WithinTolerance(monthly, p.AdBudgets.TotalMonthly, constants.CurrencyTolerance))
	assert.True(t, mathutil.WithinTolerance(daily, p.AdBudgets.TotalDaily, constants.CurrencyTolerance))
	assert.InDelta(t, 1.0, ratios, constants.RatioTolerance)

	assert.Equal(t, len(p.Keywords), p.AdGroups.Count())
	for _, rec := range p.Keywords {
		assert.NotEmpty(t, testutil.GroupOf(p.AdGroups, rec.Text), rec.Text)
		assert.Len(t, rec.SuggestedMatchTypes, 2)
	}
}

func TestAllExports(t *testing.T) {
	p := loadTestPlan(t)
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "plan.json")
	require.NoError(t, output.ExportFile(jsonPath, constants.OutputFormatJSON, p))
	f, err := os.Open(jsonPath)
	require.NoError(t, err)
	decoded, err := output.ReadJSON(f)
	require.NoError(t, f.Close())
	require.NoError(t, err)
	assert.Equal(t, p.Metadata.PlanID, decoded.Metadata.PlanID)
	assert.Len(t, decoded.DiscoveredKeywords, len(p.DiscoveredKeywords))

	csvPath := filepath.Join(dir, "plan.csv")
	require.NoError(t, output.ExportFile(csvPath, constants.OutputFormatCSV, p))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, len(p.Keywords)+1)

	xlsxPath := filepath.Join(dir, "plan.xlsx")
	require.NoError(t, output.ExportFile(xlsxPath, constants.OutputFormatXLSX, p))
	wb, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()
	assert.Equal(t, []string{
		output.SheetAdBudgets, output.SheetKeywords, output.SheetAdGroups,
		output.SheetSearchThemes, output.SheetShoppingBids, output.SheetDiscoveredKeywords,
	}, wb.GetSheetList())

	prettyPath := filepath.Join(dir, "plan.txt")
	require.NoError(t, output.ExportFile(prettyPath, constants.OutputFormatPretty, p))
	text, err := os.ReadFile(prettyPath)
	require.NoError(t, err)
	assert.Contains(t, string(text), "--- Discovered keywords ---")
}
