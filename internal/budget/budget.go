// Package budget splits a monthly advertising budget across campaign channels.
package budget

import (
	"fmt"
	"math"

	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/mathutil"
)

// Ratios holds the per-channel share of the monthly budget and the divisor
// used to derive daily figures.
type Ratios struct {
	Shopping     float64
	Search       float64
	PMax         float64
	DaysPerMonth float64
}

// DefaultRatios returns the standard 33.3/46.7/20.0 split over a 30 day month.
func DefaultRatios() Ratios {
	return Ratios{
		Shopping:     constants.ShoppingRatio,
		Search:       constants.SearchRatio,
		PMax:         constants.PMaxRatio,
		DaysPerMonth: constants.DaysPerMonth,
	}
}

// Validate checks that the ratios are non-negative and sum to 1.
func (r Ratios) Validate() error {
	for _, share := range r.shares() {
		if share.ratio < 0 || math.IsNaN(share.ratio) {
			return fmt.Errorf("%s ratio must be non-negative, got %v", share.name, share.ratio)
		}
	}
	sum := mathutil.Sum(r.Shopping, r.Search, r.PMax)
	if !mathutil.WithinTolerance(sum, 1.0, constants.RatioTolerance) {
		return fmt.Errorf("channel ratios must sum to 1.0, got %v", sum)
	}
	if r.DaysPerMonth <= 0 {
		return fmt.Errorf("days per month must be positive, got %v", r.DaysPerMonth)
	}
	return nil
}

type channelShare struct {
	name  string
	ratio float64
}

func (r Ratios) shares() []channelShare {
	return []channelShare{
		{constants.ChannelShopping, r.Shopping},
		{constants.ChannelSearch, r.Search},
		{constants.ChannelPMax, r.PMax},
	}
}

// ChannelBudget is the monthly and daily spend for one channel.
type ChannelBudget struct {
	Channel string  `json:"channel"`
	Ratio   float64 `json:"ratio"`
	Monthly float64 `json:"monthly_budget"`
	Daily   float64 `json:"daily_budget"`
}

// Allocation is the full channel split for a monthly budget.
type Allocation struct {
	TotalMonthly float64         `json:"total_monthly_budget"`
	TotalDaily   float64         `json:"total_daily_budget"`
	Channels     []ChannelBudget `json:"channels"`
}

// Channel returns the budget for the named channel.
func (a Allocation) Channel(name string) (ChannelBudget, bool) {
	for _, c := range a.Channels {
		if c.Channel == name {
			return c, true
		}
	}
	return ChannelBudget{}, false
}

// Allocator computes channel allocations from a fixed ratio table.
type Allocator struct {
	ratios Ratios
}

// NewAllocator returns an allocator using the given ratios. Callers are
// expected to have validated them.
func NewAllocator(ratios Ratios) *Allocator {
	return &Allocator{ratios: ratios}
}

// Allocate splits total across shopping, search and pmax. Values are not
// rounded.
func (a *Allocator) Allocate(total float64) Allocation {
	days := a.ratios.DaysPerMonth
	if days <= 0 {
		days = constants.DaysPerMonth
	}

	shares := a.ratios.shares()
	allocation := Allocation{
		TotalMonthly: total,
		Channels:     make([]ChannelBudget, 0, len(shares)),
	}
	for _, share := range shares {
		monthly := total * share.ratio
		daily := monthly / days
		allocation.Channels = append(allocation.Channels, ChannelBudget{
			Channel: share.name,
			Ratio:   share.ratio,
			Monthly: monthly,
			Daily:   daily,
		})
		allocation.TotalDaily += daily
	}
	return allocation
}
