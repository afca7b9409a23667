package plan

import (
	"errors"
	"fmt"

	"github.com/iwvelando/sem-planner/pkg/validation"
)

// ErrInvalidInput is wrapped by every input validation failure.
var ErrInvalidInput = errors.New("invalid plan input")

// Input is what a marketer supplies to generate a plan.
type Input struct {
	BrandWebsite      string   `json:"brand_website"`
	CompetitorWebsite string   `json:"competitor_website"`
	Locations         []string `json:"locations"`
	TotalBudget       float64  `json:"total_budget"`
	TargetCPA         float64  `json:"target_cpa"`
	ConversionRate    float64  `json:"conversion_rate"`
	Pages             []string `json:"pages,omitempty"`
}

// Validate checks the numeric inputs against their allowed ranges.
func (in Input) Validate() error {
	if err := validation.ValidateTotalBudget(in.TotalBudget); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidateTargetCPA(in.TargetCPA); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validation.ValidateConversionRate(in.ConversionRate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
