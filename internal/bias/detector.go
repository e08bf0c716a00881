// Package bias scans text for markers of absolute or gendered framing and
// rewrites flagged phrases with softer alternatives. Pure string heuristics,
// no model call.
package bias

// #region imports
import (
	"fmt"
	"strings"
)

// #endregion

// #region indicators

// biasIndicators is the fixed scan list. Order matters: issues are reported
// in list order, not order of occurrence in the text. "obvious" is the stem
// on purpose so that both "obvious" and "obviously" count as one match.
var biasIndicators = []string{
	"always", "never", "all people", "everyone knows",
	"obvious", "clearly", "of course", "definitely",
	"men are", "women are", "people from", "typical",
}

// genderedPatterns flag binary phrasing. They add issues but never score.
var genderedPatterns = []string{"he/she", "his/her", "man/woman"}

// #endregion

// #region analysis

// Analysis is the outcome of one bias scan.
type Analysis struct {
	BiasScore  int      `json:"bias_score"`
	Issues     []string `json:"issues"`
	Confidence float64  `json:"confidence"`
}

// #endregion

// #region detect

// Detect scans text against the indicator and gendered-pattern lists.
// Each indicator match adds 1 to the score; confidence is min(score*0.2, 1).
// Deterministic and total.
func Detect(text string) Analysis {
	lower := strings.ToLower(text)

	var a Analysis
	for _, kw := range biasIndicators {
		if strings.Contains(lower, kw) {
			a.BiasScore++
			a.Issues = append(a.Issues,
				fmt.Sprintf("Potential absolute statement: '%s'", kw))
		}
	}
	for _, p := range genderedPatterns {
		if strings.Contains(lower, p) {
			a.Issues = append(a.Issues,
				fmt.Sprintf("Consider inclusive language instead of '%s'", p))
		}
	}

	a.Confidence = float64(a.BiasScore) * 0.2
	if a.Confidence > 1.0 {
		a.Confidence = 1.0
	}
	return a
}

// #endregion
