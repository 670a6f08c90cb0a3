package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/capturequest/warpclass/pkg/warp"
)

// Output is the machine-readable result document.
type Output struct {
	Summary warp.Summary     `json:"summary"`
	Warps   []Classification `json:"warps"`
}

// WriteResults writes the classifications as indented JSON.
func WriteResults(path string, results []Classification, sum warp.Summary) error {
	data, err := json.MarshalIndent(Output{Summary: sum, Warps: results}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
