// Package validation provides input range validation utilities.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/sem-planner/pkg/constants"
)

// ValidateTotalBudget checks the monthly budget is within the supported range.
func ValidateTotalBudget(budget float64) error {
	if math.IsNaN(budget) || budget < constants.MinTotalBudget || budget > constants.MaxTotalBudget {
		return fmt.Errorf("total budget must be between %.0f and %.0f, got %v",
			constants.MinTotalBudget, constants.MaxTotalBudget, budget)
	}
	return nil
}

// ValidateTargetCPA checks the target cost per acquisition is within the supported range.
func ValidateTargetCPA(cpa float64) error {
	if math.IsNaN(cpa) || cpa < constants.MinTargetCPA || cpa > constants.MaxTargetCPA {
		return fmt.Errorf("target CPA must be between %.0f and %.0f, got %v",
			constants.MinTargetCPA, constants.MaxTargetCPA, cpa)
	}
	return nil
}

// ValidateConversionRate checks the conversion rate is in (0, 1].
func ValidateConversionRate(rate float64) error {
	if math.IsNaN(rate) || rate <= 0 || rate > 1 {
		return fmt.Errorf("conversion rate must be greater than 0 and at most 1, got %v", rate)
	}
	return nil
}

// LocationWarnings reports blank and repeated location names.
func LocationWarnings(locations []string) []string {
	var warnings []string
	if len(locations) == 0 {
		warnings = append(warnings, "No service locations configured - location-based ad groups and themes will be empty")
	}
	seen := make(map[string]struct{}, len(locations))
	for i, loc := range locations {
		key := strings.ToLower(strings.TrimSpace(loc))
		if key == "" {
			warnings = append(warnings, fmt.Sprintf("Location %d is blank and will be ignored", i))
			continue
		}
		if _, dup := seen[key]; dup {
			warnings = append(warnings, fmt.Sprintf("Location '%s' is listed more than once", strings.TrimSpace(loc)))
		}
		seen[key] = struct{}{}
	}
	return warnings
}
