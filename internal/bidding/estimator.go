// Package bidding computes CPC bid recommendations for search keywords and
// shopping products.
package bidding

import (
	"fmt"

	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/mathutil"
)

// Match types.
const (
	MatchExact              = "Exact"
	MatchPhrase             = "Phrase"
	MatchBroadMatchModifier = "Broad Match Modifier"
)

// CompetitionMultipliers scales the base CPC by competition level.
var CompetitionMultipliers = map[keywords.Competition]float64{
	keywords.Low:    0.8,
	keywords.Medium: 1.0,
	keywords.High:   1.2,
}

// Recommendation is a keyword with its bid and outcome estimates.
type Recommendation struct {
	keywords.Keyword
	TargetCPC           float64  `json:"target_cpc"`
	SuggestedMatchTypes []string `json:"suggested_match_types"`
	ExpectedConversions int      `json:"expected_conversions"`
	ExpectedCost        int      `json:"expected_cost"`
}

// Estimator derives target CPCs from a target CPA and conversion rate.
type Estimator struct {
	TargetCPA      float64
	ConversionRate float64
}

// NewEstimator returns an estimator for the given target CPA and conversion
// rate.
func NewEstimator(targetCPA, conversionRate float64) *Estimator {
	return &Estimator{TargetCPA: targetCPA, ConversionRate: conversionRate}
}

// BaseCPC is target CPA times conversion rate.
func (e *Estimator) BaseCPC() float64 {
	return e.TargetCPA * e.ConversionRate
}

// AdjustedCPC is the unrounded base CPC scaled for a competition level.
func (e *Estimator) AdjustedCPC(c keywords.Competition) (float64, error) {
	multiplier, ok := CompetitionMultipliers[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", keywords.ErrUnknownCompetition, c)
	}
	return e.BaseCPC() * multiplier, nil
}

// Recommend builds a recommendation for one keyword.
func (e *Estimator) Recommend(kw keywords.Keyword) (Recommendation, error) {
	adjusted, err := e.AdjustedCPC(kw.Competition)
	if err != nil {
		return Recommendation{}, fmt.Errorf("keyword %q: %w", kw.Text, err)
	}
	volume := float64(kw.SearchVolume)
	return Recommendation{
		Keyword:             kw,
		TargetCPC:           mathutil.Round(adjusted),
		SuggestedMatchTypes: MatchTypes(kw),
		ExpectedConversions: mathutil.RoundInt(volume * e.ConversionRate),
		ExpectedCost:        mathutil.RoundInt(volume * adjusted),
	}, nil
}

// RecommendAll builds recommendations in input order.
func (e *Estimator) RecommendAll(kws []keywords.Keyword) ([]Recommendation, error) {
	result := make([]Recommendation, 0, len(kws))
	for _, kw := range kws {
		rec, err := e.Recommend(kw)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, nil
}

// MatchTypes suggests Exact and Phrase for short keywords and Phrase and
// Broad Match Modifier for longer ones.
func MatchTypes(kw keywords.Keyword) []string {
	if kw.WordCount() <= constants.ExactMatchMaxWords {
		return []string{MatchExact, MatchPhrase}
	}
	return []string{MatchPhrase, MatchBroadMatchModifier}
}
