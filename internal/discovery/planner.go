package discovery

import (
	"hash/fnv"
	"sort"

	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/pkg/mathutil"
)

// Simulator assigns deterministic stand-in planner metrics to phrases. The
// numbers are derived from a hash of the text, not from any search data.
type Simulator struct{}

// NewSimulator returns a metrics simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Estimate returns simulated metrics for one phrase.
func (s *Simulator) Estimate(phrase string) keywords.Keyword {
	h := hash(phrase)

	volume := int(h % 10000)
	if volume < 100 {
		volume = 100
	}
	competition := keywords.Competitions[h%3]

	var low, high float64
	switch competition {
	case keywords.High:
		low = 2.50 + float64(h%100)/100
		high = 5.00 + float64(h%200)/100
	case keywords.Medium:
		low = 1.50 + float64(h%50)/100
		high = 3.00 + float64(h%100)/100
	default:
		low = 0.50 + float64(h%25)/100
		high = 1.50 + float64(h%50)/100
	}

	return keywords.Keyword{
		Text:         phrase,
		SearchVolume: volume,
		Competition:  competition,
		CPCLow:       mathutil.Round(low),
		CPCHigh:      mathutil.Round(high),
	}
}

// EstimateAll returns simulated metrics for each phrase in order.
func (s *Simulator) EstimateAll(phrases []string) []keywords.Keyword {
	result := make([]keywords.Keyword, 0, len(phrases))
	for _, p := range phrases {
		result = append(result, s.Estimate(p))
	}
	return result
}

func hash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

// Consolidate removes repeated keyword texts, keeping the first, and drops
// ideas below minVolume monthly searches.
func Consolidate(ideas []keywords.Keyword, minVolume int) []keywords.Keyword {
	seen := make(map[string]struct{}, len(ideas))
	result := make([]keywords.Keyword, 0, len(ideas))
	for _, idea := range ideas {
		if _, dup := seen[idea.Text]; dup {
			continue
		}
		seen[idea.Text] = struct{}{}
		if idea.SearchVolume < minVolume {
			continue
		}
		result = append(result, idea)
	}
	return result
}

// Prioritize returns a copy of ideas sorted by search volume, highest first,
// with less competitive keywords first among equal volumes.
func Prioritize(ideas []keywords.Keyword) []keywords.Keyword {
	result := append([]keywords.Keyword(nil), ideas...)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].SearchVolume != result[j].SearchVolume {
			return result[i].SearchVolume > result[j].SearchVolume
		}
		return result[i].Competition.Rank() < result[j].Competition.Rank()
	})
	return result
}
