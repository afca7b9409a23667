// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/sem-planner/pkg/constants"
)

// SupportedOutputFormats lists every format the exporters can produce.
var SupportedOutputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatJSON,
	constants.OutputFormatCSV,
	constants.OutputFormatXLSX,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range SupportedOutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s",
		strings.Join(SupportedOutputFormats, ", "), format)
}
