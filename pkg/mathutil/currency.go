// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"
	"strconv"

	"github.com/iwvelando/sem-planner/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// The exact binary value is rounded, so 2.775 (stored as 2.77499...) gives
// 2.77, and exact ties such as 41.625 go to the even digit.
func Round(val float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(val, 'f', constants.DecimalPlaces, 64), 64)
	if err != nil {
		return val
	}
	return rounded
}

// RoundInt rounds a value to the nearest integer, ties to even.
func RoundInt(val float64) int {
	return int(math.RoundToEven(val))
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Mean returns the arithmetic mean of the values, or 0 for no values.
func Mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Sum adds the values.
func Sum(values ...float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// SafeDivide divides a by b, returning 0 when b is zero.
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
