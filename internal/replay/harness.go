package replay

// #region imports
import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/formsight/go-analysis/internal/analysis"
	"github.com/formsight/go-analysis/internal/history"
	"github.com/formsight/go-analysis/internal/orchestrator"
)

// #endregion

// #region turn-result

// TurnResult reports one interaction's comparison outcome.
type TurnResult struct {
	TurnID     string
	Pass       bool
	Mismatches []string
}

// #endregion

// #region run

// Run replays every interaction in order against a fresh pipeline seeded
// from the fixture, comparing each turn's result to its expectations.
func Run(f *Fixture) []TurnResult {
	classifier := analysis.NewClassifier(rand.New(rand.NewSource(f.Seed)))
	orch := orchestrator.New(classifier, history.NewMemoryStore())

	results := make([]TurnResult, 0, len(f.Interactions))
	for _, in := range f.Interactions {
		res, err := orch.Process(in.Input)
		mismatches := compare(in.Expect, res, err)
		results = append(results, TurnResult{
			TurnID:     in.TurnID,
			Pass:       len(mismatches) == 0,
			Mismatches: mismatches,
		})
	}
	return results
}

// #endregion run

// #region compare

func compare(want Expected, got orchestrator.Result, err error) []string {
	var m []string

	if want.Error {
		if err == nil {
			m = append(m, "expected an error, got none")
		}
		return m
	}
	if err != nil {
		m = append(m, fmt.Sprintf("unexpected error: %v", err))
		return m
	}

	if want.Complexity != "" && string(got.Analysis.Complexity) != want.Complexity {
		m = append(m, fmt.Sprintf("complexity: got %q, want %q", got.Analysis.Complexity, want.Complexity))
	}
	if want.Category != "" && string(got.Analysis.Category) != want.Category {
		m = append(m, fmt.Sprintf("category: got %q, want %q", got.Analysis.Category, want.Category))
	}
	if want.Context != "" && got.Analysis.Context != want.Context {
		m = append(m, fmt.Sprintf("context: got %q, want %q", got.Analysis.Context, want.Context))
	}
	if want.ReasoningType != "" && string(got.Analysis.ReasoningType) != want.ReasoningType {
		m = append(m, fmt.Sprintf("reasoning: got %q, want %q", got.Analysis.ReasoningType, want.ReasoningType))
	}
	if want.BiasScore != nil && got.Bias.BiasScore != *want.BiasScore {
		m = append(m, fmt.Sprintf("bias_score: got %d, want %d", got.Bias.BiasScore, *want.BiasScore))
	}
	if want.Suggestions != nil && len(got.Suggestions) != *want.Suggestions {
		m = append(m, fmt.Sprintf("suggestions: got %d, want %d", len(got.Suggestions), *want.Suggestions))
	}
	for _, s := range want.ResponseContains {
		if !strings.Contains(got.Response, s) {
			m = append(m, fmt.Sprintf("response missing %q", s))
		}
	}
	for _, s := range want.ResponseOmits {
		if strings.Contains(strings.ToLower(got.Response), strings.ToLower(s)) {
			m = append(m, fmt.Sprintf("response still contains %q", s))
		}
	}
	return m
}

// #endregion compare
