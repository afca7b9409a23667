package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/sem-planner/internal/plan"
)

// WriteJSON writes the plan as 2-space indented JSON.
func WriteJSON(w io.Writer, p *plan.Plan) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

// ReadJSON decodes a plan previously written by WriteJSON.
func ReadJSON(r io.Reader) (*plan.Plan, error) {
	var p plan.Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	return &p, nil
}
