package orchestrator

// #region imports
import (
	"github.com/formsight/go-analysis/internal/analysis"
	"github.com/formsight/go-analysis/internal/bias"
)

// #endregion

// #region result

// Result is the outcome of one processed input. Never mutated after
// creation; it is owned by the caller that produced it.
type Result struct {
	Response    string                 `json:"response"`
	Analysis    analysis.InputAnalysis `json:"analysis"`
	Bias        bias.Analysis          `json:"bias_analysis"`
	Suggestions []string               `json:"suggestions"`
}

// #endregion
