// Package keywords synthesizes seed keywords from a website and groups them
// into ad groups.
package keywords

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCompetition is returned when a competition level is not Low,
// Medium or High.
var ErrUnknownCompetition = errors.New("unknown competition level")

// Competition is the advertiser competition level reported for a keyword.
type Competition string

// Competition levels.
const (
	Low    Competition = "Low"
	Medium Competition = "Medium"
	High   Competition = "High"
)

// Competitions lists every level from least to most competitive.
var Competitions = []Competition{Low, Medium, High}

// ParseCompetition parses a case-insensitive competition level.
func ParseCompetition(s string) (Competition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCompetition, s)
}

// Valid reports whether c is one of the known levels.
func (c Competition) Valid() bool {
	return c == Low || c == Medium || c == High
}

// Rank orders competition levels, Low being 0.
func (c Competition) Rank() int {
	switch c {
	case Low:
		return 0
	case Medium:
		return 1
	case High:
		return 2
	}
	return -1
}

// Keyword is a seed keyword with its (simulated) planner metrics.
type Keyword struct {
	Text         string      `json:"keyword"`
	SearchVolume int         `json:"search_volume"`
	Competition  Competition `json:"competition"`
	CPCLow       float64     `json:"cpc_low"`
	CPCHigh      float64     `json:"cpc_high"`
}

// WordCount returns the number of whitespace separated words in the keyword.
func (k Keyword) WordCount() int {
	return len(strings.Fields(k.Text))
}
