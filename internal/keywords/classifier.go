package keywords

import (
	"strings"

	"github.com/iwvelando/sem-planner/pkg/constants"
)

// Ad group names.
const (
	GroupBrand      = "Brand Terms"
	GroupCategory   = "Category Terms"
	GroupCompetitor = "Competitor Terms"
	GroupLocation   = "Location-based Queries"
	GroupLongTail   = "Long-Tail Informational"
)

// DefaultGroupOrder is the order ad groups are reported in.
var DefaultGroupOrder = []string{GroupBrand, GroupCategory, GroupCompetitor, GroupLocation, GroupLongTail}

// Default term lists for the brand and competitor rules.
var (
	DefaultBrandTerms      = []string{"brand", "company", "official"}
	DefaultCompetitorTerms = []string{"alternative", "vs", "competitor"}
)

// Predicate reports whether a lower-cased keyword text matches a rule.
type Predicate func(text string, locations []string) bool

// Rule assigns keywords matching Match to Group.
type Rule struct {
	Group string
	Match Predicate
}

// ContainsAny matches text containing any of the terms as a substring.
func ContainsAny(terms ...string) Predicate {
	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		if t := strings.ToLower(strings.TrimSpace(term)); t != "" {
			lowered = append(lowered, t)
		}
	}
	return func(text string, _ []string) bool {
		for _, term := range lowered {
			if strings.Contains(text, term) {
				return true
			}
		}
		return false
	}
}

// ContainsLocation matches text containing any non-blank location name,
// ignoring case.
func ContainsLocation() Predicate {
	return func(text string, locations []string) bool {
		for _, loc := range locations {
			l := strings.ToLower(strings.TrimSpace(loc))
			if l != "" && strings.Contains(text, l) {
				return true
			}
		}
		return false
	}
}

// MinWords matches text with at least n words.
func MinWords(n int) Predicate {
	return func(text string, _ []string) bool {
		return len(strings.Fields(text)) >= n
	}
}

// Always matches everything.
func Always() Predicate {
	return func(string, []string) bool { return true }
}

// RuleOptions tunes the default rule set.
type RuleOptions struct {
	BrandTerms       []string
	CompetitorTerms  []string
	LongTailMinWords int
}

// DefaultRules returns the standard first-match-wins rule list.
func DefaultRules() []Rule {
	return BuildRules(RuleOptions{})
}

// BuildRules returns the standard rule list with the given term lists;
// empty fields use the defaults.
func BuildRules(opts RuleOptions) []Rule {
	brand := opts.BrandTerms
	if len(brand) == 0 {
		brand = DefaultBrandTerms
	}
	competitor := opts.CompetitorTerms
	if len(competitor) == 0 {
		competitor = DefaultCompetitorTerms
	}
	minWords := opts.LongTailMinWords
	if minWords <= 0 {
		minWords = constants.DefaultLongTailMinWords
	}
	return []Rule{
		{Group: GroupBrand, Match: ContainsAny(brand...)},
		{Group: GroupCompetitor, Match: ContainsAny(competitor...)},
		{Group: GroupLocation, Match: ContainsLocation()},
		{Group: GroupLongTail, Match: MinWords(minWords)},
		{Group: GroupCategory, Match: Always()},
	}
}

// Classifier buckets keywords into ad groups.
type Classifier struct {
	rules    []Rule
	order    []string
	fallback string
}

// NewClassifier returns a classifier evaluating rules in order. Nil rules use
// DefaultRules. Keywords matching no rule go to Category Terms.
func NewClassifier(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}

	order := append([]string(nil), DefaultGroupOrder...)
	seen := make(map[string]struct{}, len(order))
	for _, name := range order {
		seen[name] = struct{}{}
	}
	for _, rule := range rules {
		if _, ok := seen[rule.Group]; !ok {
			order = append(order, rule.Group)
			seen[rule.Group] = struct{}{}
		}
	}

	return &Classifier{
		rules:    append([]Rule(nil), rules...),
		order:    order,
		fallback: GroupCategory,
	}
}

// GroupFor returns the ad group a single keyword text belongs to.
func (c *Classifier) GroupFor(text string, locations []string) string {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		if rule.Match != nil && rule.Match(lowered, locations) {
			return rule.Group
		}
	}
	return c.fallback
}

// Classify groups keywords, preserving input order within each group. Every
// known group is present in the result, possibly empty.
func (c *Classifier) Classify(keywords []Keyword, locations []string) AdGroups {
	index := make(map[string]int, len(c.order))
	groups := make(AdGroups, len(c.order))
	for i, name := range c.order {
		groups[i] = AdGroup{Name: name, Keywords: []Keyword{}}
		index[name] = i
	}

	for _, kw := range keywords {
		i := index[c.GroupFor(kw.Text, locations)]
		groups[i].Keywords = append(groups[i].Keywords, kw)
	}
	return groups
}
