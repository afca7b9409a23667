package discovery

import (
	"go.uber.org/zap"

	"github.com/iwvelando/sem-planner/internal/keywords"
	"github.com/iwvelando/sem-planner/pkg/constants"
)

// Discoverer runs extraction, simulation, consolidation and prioritization
// over a set of pages.
type Discoverer struct {
	logger    *zap.Logger
	simulator *Simulator
	minVolume int
}

// NewDiscoverer returns a Discoverer dropping ideas below minVolume. A
// non-positive minVolume uses the default of 500.
func NewDiscoverer(logger *zap.Logger, minVolume int) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if minVolume <= 0 {
		minVolume = constants.DefaultMinSearchVolume
	}
	return &Discoverer{logger: logger, simulator: NewSimulator(), minVolume: minVolume}
}

// Discover returns prioritized keyword ideas found in the given HTML files.
func (d *Discoverer) Discover(paths []string) ([]keywords.Keyword, error) {
	var phrases []string
	for _, path := range paths {
		found, err := ExtractFile(path)
		if err != nil {
			return nil, err
		}
		d.logger.Debug("extracted keyword phrases",
			zap.String("op", "discovery.Discover"),
			zap.String("page", path),
			zap.Int("phrases", len(found)),
		)
		phrases = append(phrases, found...)
	}

	ideas := d.simulator.EstimateAll(phrases)
	filtered := Consolidate(ideas, d.minVolume)
	d.logger.Debug("consolidated keyword ideas",
		zap.String("op", "discovery.Discover"),
		zap.Int("discovered", len(ideas)),
		zap.Int("kept", len(filtered)),
		zap.Int("minVolume", d.minVolume),
	)
	return Prioritize(filtered), nil
}
