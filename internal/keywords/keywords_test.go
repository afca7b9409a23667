package keywords

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"HTTPS URL", "https://cubehq.com", "cubehq"},
		{"HTTP URL", "http://notion.so", "notion"},
		{"No scheme", "cubehq.ai", "cubehq"},
		{"Uppercase scheme", "HTTPS://Example.org", "Example"},
		{"Other scheme", "ftp://files.example.com", "files"},
		{"Leading www kept", "https://www.cubehq.ai", "www"},
		{"No dot", "https://cubehq", "cubehq"},
		{"Hyphenated", "https://my-brand.io", "my-brand"},
		{"Surrounding whitespace", "  https://cubehq.com  ", "cubehq"},
		{"Empty", "", PlaceholderDomain},
		{"Scheme only", "https://", PlaceholderDomain},
		{"Leading dot", "https://.com", PlaceholderDomain},
		{"Path without dot kept", "https://cubehq/pricing", "cubehq/pricing"},
		{"Spaces inside kept", "https://my brand.com", "my brand"},
		{"Plain text kept", "not a url", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDomain(tt.url))
		})
	}
}

func TestSynthesizeScenario(t *testing.T) {
	kws := NewSynthesizer(nil).Synthesize("https://cubehq.com")
	require.Len(t, kws, 10)

	assert.Equal(t, Keyword{
		Text:         "cubehq software",
		SearchVolume: 8500,
		Competition:  High,
		CPCLow:       0.50,
		CPCHigh:      2.50,
	}, kws[0])
	assert.Equal(t, "best cubehq", kws[3].Text)
	assert.Equal(t, "cubehq free trial", kws[8].Text)
}

func TestSynthesizeProperties(t *testing.T) {
	s := NewSynthesizer(DefaultTemplates())
	for _, url := range []string{"https://cubehq.com", "", "garbage", "http://a.b.c", "https://notion.so/product"} {
		kws := s.Synthesize(url)
		require.Len(t, kws, 10, url)
		for _, kw := range kws {
			assert.NotEmpty(t, kw.Text)
			assert.True(t, kw.Competition.Valid(), "competition %q", kw.Competition)
			assert.LessOrEqual(t, kw.CPCLow, kw.CPCHigh)
		}
		if diff := cmp.Diff(kws, s.Synthesize(url)); diff != "" {
			t.Errorf("Synthesize(%q) not reproducible (-first +second):\n%s", url, diff)
		}
	}
}

func TestSynthesizeCustomTemplates(t *testing.T) {
	s := NewSynthesizer([]Template{{Pattern: "{domain} crm", SearchVolume: 10, Competition: Low, CPCLow: 1, CPCHigh: 2}})
	kws := s.ForDomain("acme")
	require.Len(t, kws, 1)
	assert.Equal(t, "acme crm", kws[0].Text)
}

func TestValidateTemplates(t *testing.T) {
	assert.NoError(t, ValidateTemplates(DefaultTemplates()))
	assert.Error(t, ValidateTemplates(nil))
	assert.Error(t, ValidateTemplates([]Template{{Pattern: "static", Competition: Low}}))
	assert.Error(t, ValidateTemplates([]Template{{Pattern: "{domain} x", Competition: Low, CPCLow: 3, CPCHigh: 1}}))
	assert.Error(t, ValidateTemplates([]Template{{Pattern: "{domain} x", Competition: Low, SearchVolume: -1}}))

	err := ValidateTemplates([]Template{{Pattern: "{domain} x", Competition: "Extreme"}})
	assert.True(t, errors.Is(err, ErrUnknownCompetition))
}

func TestParseCompetition(t *testing.T) {
	for input, want := range map[string]Competition{"low": Low, "Medium": Medium, " HIGH ": High} {
		got, err := ParseCompetition(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseCompetition("extreme")
	assert.ErrorIs(t, err, ErrUnknownCompetition)

	assert.Less(t, Low.Rank(), Medium.Rank())
	assert.Less(t, Medium.Rank(), High.Rank())
	assert.Equal(t, -1, Competition("x").Rank())
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 3, Keyword{Text: "cubehq  free trial"}.WordCount())
	assert.Equal(t, 0, Keyword{Text: "  "}.WordCount())
}

func kw(text string) Keyword {
	return Keyword{Text: text, SearchVolume: 100, Competition: Medium, CPCLow: 1, CPCHigh: 2}
}

func TestGroupForRuleOrder(t *testing.T) {
	c := NewClassifier(nil)
	locations := []string{"New York", "San Francisco", " "}

	tests := []struct {
		text     string
		expected string
	}{
		{"cubehq official site", GroupBrand},
		{"official cubehq alternative", GroupBrand},
		{"cubehq alternatives", GroupCompetitor},
		{"notion vs cubehq", GroupCompetitor},
		{"devsite tools", GroupCompetitor},
		{"crm new york", GroupLocation},
		{"best crm software in san francisco bay", GroupLocation},
		{"CRM NEW YORK", GroupLocation},
		{"how to choose crm", GroupLongTail},
		{"cubehq free trial", GroupCategory},
		{"cubehq", GroupCategory},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.GroupFor(tt.text, locations))
		})
	}
}

func TestClassifyExactlyOnce(t *testing.T) {
	s := NewSynthesizer(nil)
	input := append(s.Synthesize("https://cubehq.com"), s.Synthesize("https://notion.so")...)
	input = append(input, kw("notion for new york teams"), kw("company handbook"), kw("what is a team wiki"))

	c := NewClassifier(nil)
	groups := c.Classify(input, []string{"New York"})

	require.Len(t, groups, len(DefaultGroupOrder))
	for i, name := range DefaultGroupOrder {
		assert.Equal(t, name, groups[i].Name)
	}
	assert.Equal(t, len(input), groups.Count())

	seen := make(map[string]string)
	for _, group := range groups {
		for _, k := range group.Keywords {
			prev, dup := seen[k.Text]
			assert.False(t, dup, "%q in both %q and %q", k.Text, prev, group.Name)
			seen[k.Text] = group.Name
		}
	}

	competitor, _ := groups.Get(GroupCompetitor)
	assert.Equal(t, []string{"cubehq alternatives", "notion alternatives"}, texts(competitor.Keywords))
	location, _ := groups.Get(GroupLocation)
	assert.Equal(t, []string{"notion for new york teams"}, texts(location.Keywords))
	brand, _ := groups.Get(GroupBrand)
	assert.Equal(t, []string{"company handbook"}, texts(brand.Keywords))
	longTail, _ := groups.Get(GroupLongTail)
	assert.Equal(t, []string{"what is a team wiki"}, texts(longTail.Keywords))
	category, _ := groups.Get(GroupCategory)
	assert.Len(t, category.Keywords, 18)

	if diff := cmp.Diff(groups, c.Classify(input, []string{"New York"})); diff != "" {
		t.Errorf("Classify not deterministic (-first +second):\n%s", diff)
	}
}

func TestClassifyCustomRules(t *testing.T) {
	c := NewClassifier([]Rule{
		{Group: "Pricing", Match: ContainsAny("pricing", "cost")},
		{Group: GroupBrand, Match: ContainsAny("acme")},
	})
	groups := c.Classify([]Keyword{kw("acme pricing"), kw("acme demo"), kw("generic widget")}, nil)

	pricing, ok := groups.Get("Pricing")
	require.True(t, ok)
	assert.Equal(t, []string{"acme pricing"}, texts(pricing.Keywords))

	brand, _ := groups.Get(GroupBrand)
	assert.Equal(t, []string{"acme demo"}, texts(brand.Keywords))

	// no catch-all rule: unmatched keywords fall back to Category Terms
	category, _ := groups.Get(GroupCategory)
	assert.Equal(t, []string{"generic widget"}, texts(category.Keywords))
	assert.Equal(t, "Pricing", groups[len(groups)-1].Name)
}

func TestBuildRulesOptions(t *testing.T) {
	c := NewClassifier(BuildRules(RuleOptions{
		BrandTerms:       []string{"Acme"},
		CompetitorTerms:  []string{"globex"},
		LongTailMinWords: 3,
	}))
	assert.Equal(t, GroupBrand, c.GroupFor("acme widgets", nil))
	assert.Equal(t, GroupCompetitor, c.GroupFor("globex widgets", nil))
	assert.Equal(t, GroupLongTail, c.GroupFor("cheap blue widgets", nil))
	assert.Equal(t, GroupCategory, c.GroupFor("official widgets", nil))
}

func TestAdGroupsJSON(t *testing.T) {
	groups := AdGroups{
		{Name: GroupBrand, Keywords: []Keyword{}},
		{Name: GroupCompetitor, Keywords: []Keyword{kw("x alternatives")}},
		{Name: GroupCategory, Keywords: []Keyword{kw("x software"), kw("x demo")}},
	}

	data, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Competitor Terms": [{"keyword": "x alternatives", "search_volume": 100, "competition": "Medium", "cpc_low": 1, "cpc_high": 2}],
		"Category Terms": [
			{"keyword": "x software", "search_volume": 100, "competition": "Medium", "cpc_low": 1, "cpc_high": 2},
			{"keyword": "x demo", "search_volume": 100, "competition": "Medium", "cpc_low": 1, "cpc_high": 2}
		]
	}`, string(data))
	assert.Less(t, strings.Index(string(data), "Competitor Terms"), strings.Index(string(data), "Category Terms"))

	var decoded AdGroups
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(groups.NonEmpty(), decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	assert.Error(t, json.Unmarshal([]byte(`[]`), &decoded))
}

func texts(kws []Keyword) []string {
	out := make([]string, 0, len(kws))
	for _, k := range kws {
		out = append(out, k.Text)
	}
	return out
}
