// Package synth renders the fixed explanatory template for a classified input.
package synth

// #region imports
import (
	"fmt"

	"github.com/formsight/go-analysis/internal/analysis"
)

// #endregion

// #region template

// The fixed prose must stay free of every bias indicator and gendered pattern
// scanned downstream, so only the quoted input can trip the filter.
const responseTemplate = `Thank you for your input: "%s"

Based on my analysis, this appears to be a %s request in the %s category, with %s complexity. Framed within the %s, here is a structured perspective on your topic.

When reflecting on this, it helps to:

1. Consider multiple viewpoints before settling on a position.
2. Connect abstract points to real-world application.
3. Acknowledge the limitations of any single framing.
4. Favor a balanced approach over a one-sided argument.
5. Apply critical thinking to every source, including this response.

This response is generated from surface features of your input and is not a substitute for your own judgment.`

// #endregion

// #region synthesize

// Synthesize fills the response template from the input and its
// classification. Deterministic given its arguments; never fails.
func Synthesize(text string, a analysis.InputAnalysis) string {
	return fmt.Sprintf(responseTemplate,
		text, a.ReasoningType, a.Category, a.Complexity, a.Context)
}

// #endregion
