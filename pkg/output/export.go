package output

import (
	"fmt"
	"os"

	"github.com/iwvelando/sem-planner/internal/plan"
	"github.com/iwvelando/sem-planner/pkg/validation"
)

// ExportFile writes the plan to path in the named format. The file is
// created, written and closed here; a failed write or close is returned.
func ExportFile(path, outputFormat string, p *plan.Plan) (err error) {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := Write(f, outputFormat, p); err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	return nil
}
