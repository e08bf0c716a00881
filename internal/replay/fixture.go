// Package replay re-runs scripted submissions through the pipeline and
// checks the outcomes against expectations, with the random context
// fallback pinned by seed.
package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description  string        `json:"description"`
	Seed         int64         `json:"seed"`
	Interactions []Interaction `json:"interactions"`
}

// Interaction is one scripted submission with its expected outcome.
type Interaction struct {
	TurnID string   `json:"turn_id"`
	Input  string   `json:"input"`
	Expect Expected `json:"expect"`
}

// Expected pins the checked fields of a turn's result. Empty string / nil
// fields are not checked.
type Expected struct {
	Error            bool     `json:"error"`
	Complexity       string   `json:"complexity,omitempty"`
	Category         string   `json:"category,omitempty"`
	Context          string   `json:"context,omitempty"`
	ReasoningType    string   `json:"reasoning_type,omitempty"`
	BiasScore        *int     `json:"bias_score,omitempty"`
	Suggestions      *int     `json:"suggestions,omitempty"`
	ResponseContains []string `json:"response_contains,omitempty"`
	ResponseOmits    []string `json:"response_omits,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Interactions) == 0 {
		return nil, fmt.Errorf("fixture %s has no interactions", path)
	}
	return &f, nil
}

// #endregion fixture-loader
