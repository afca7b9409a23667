package discovery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iwvelando/sem-planner/internal/keywords"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>CubeHQ | AI Workspace</title>
  <meta name="Keywords" content="ai workspace, Team Productivity,collaborative ai, ai">
  <meta name="description" content="ignored description text here">
</head>
<body>
  <h1>Collaborative   AI for <em>modern</em> teams</h1>
  <h2>Workflow automation</h2>
  <h3>team productivity</h3>
  <h4>not a heading we read</h4>
  <p>Body copy is ignored.</p>
  <h2>One</h2>
  <h2>this heading has far too many words to be a keyword</h2>
</body>
</html>`

func TestExtractPhrases(t *testing.T) {
	phrases, err := ExtractPhrases(strings.NewReader(samplePage))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"cubehq ai workspace",
		"ai workspace",
		"team productivity",
		"collaborative ai",
		"collaborative ai for modern teams",
		"workflow automation",
	}, phrases)
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(samplePage), 0600))

	phrases, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Len(t, phrases, 6)

	_, err = ExtractFile(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func TestSimulatorDeterministic(t *testing.T) {
	s := NewSimulator()
	for _, phrase := range []string{"ai workspace", "team productivity", "x", ""} {
		first := s.Estimate(phrase)
		assert.Equal(t, first, s.Estimate(phrase))
		assert.Equal(t, phrase, first.Text)
		assert.GreaterOrEqual(t, first.SearchVolume, 100)
		assert.Less(t, first.SearchVolume, 10000)
		assert.True(t, first.Competition.Valid())
		assert.LessOrEqual(t, first.CPCLow, first.CPCHigh)
	}
}

func TestSimulatorBidBands(t *testing.T) {
	s := NewSimulator()
	for _, idea := range s.EstimateAll([]string{"a b", "c d", "e f", "g h", "i j", "k l", "m n", "o p"}) {
		switch idea.Competition {
		case keywords.High:
			assert.GreaterOrEqual(t, idea.CPCLow, 2.50)
			assert.LessOrEqual(t, idea.CPCHigh, 6.99)
		case keywords.Medium:
			assert.GreaterOrEqual(t, idea.CPCLow, 1.50)
			assert.LessOrEqual(t, idea.CPCHigh, 3.99)
		case keywords.Low:
			assert.GreaterOrEqual(t, idea.CPCLow, 0.50)
			assert.LessOrEqual(t, idea.CPCHigh, 1.99)
		}
	}
}

func TestConsolidate(t *testing.T) {
	ideas := []keywords.Keyword{
		{Text: "a", SearchVolume: 900},
		{Text: "b", SearchVolume: 499},
		{Text: "a", SearchVolume: 5000},
		{Text: "c", SearchVolume: 500},
	}
	got := Consolidate(ideas, 500)
	assert.Equal(t, []keywords.Keyword{
		{Text: "a", SearchVolume: 900},
		{Text: "c", SearchVolume: 500},
	}, got)
}

func TestPrioritize(t *testing.T) {
	ideas := []keywords.Keyword{
		{Text: "mid-high", SearchVolume: 1000, Competition: keywords.High},
		{Text: "top", SearchVolume: 9000, Competition: keywords.High},
		{Text: "mid-low", SearchVolume: 1000, Competition: keywords.Low},
		{Text: "mid-medium", SearchVolume: 1000, Competition: keywords.Medium},
		{Text: "bottom", SearchVolume: 600, Competition: keywords.Low},
	}
	got := Prioritize(ideas)

	var order []string
	for _, idea := range got {
		order = append(order, idea.Text)
	}
	assert.Equal(t, []string{"top", "mid-low", "mid-medium", "mid-high", "bottom"}, order)
	assert.Equal(t, "mid-high", ideas[0].Text, "input left untouched")
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "brand.html")
	second := filepath.Join(dir, "competitor.html")
	require.NoError(t, os.WriteFile(first, []byte(samplePage), 0600))
	require.NoError(t, os.WriteFile(second, []byte(`<html><head><title>AI Workspace</title></head><body><h1>Notion AI</h1></body></html>`), 0600))

	d := NewDiscoverer(zap.NewNop(), 1)
	ideas, err := d.Discover([]string{first, second})
	require.NoError(t, err)

	texts := make(map[string]int)
	for i, idea := range ideas {
		texts[idea.Text]++
		if i > 0 {
			assert.GreaterOrEqual(t, ideas[i-1].SearchVolume, idea.SearchVolume)
		}
	}
	assert.Equal(t, 1, texts["ai workspace"], "duplicates across pages removed")
	assert.Equal(t, 1, texts["notion ai"])
	assert.Len(t, ideas, 7)

	_, err = NewDiscoverer(nil, 0).Discover([]string{filepath.Join(dir, "missing.html")})
	assert.Error(t, err)
}
