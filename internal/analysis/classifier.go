package analysis

// #region imports
import (
	"math/rand"
	"strings"
	"time"
)

// #endregion

// #region keywords

// Category keyword sets, checked in this order. First set with a match wins.
var creativeKeywords = []string{
	"creative", "innovative", "brainstorm", "idea", "design",
}

var analyticalKeywords = []string{
	"analyze", "compare", "evaluate", "assess", "data",
}

var practicalKeywords = []string{
	"solve", "implement", "plan", "strategy", "action",
}

// #endregion

// #region context-labels

// contextLabels is the fixed ordered set of domain framings. A label matches
// when any of its words appears in the input; no match falls back to a
// uniform random pick from the same list.
var contextLabels = []string{
	"business environment",
	"educational setting",
	"social context",
	"technological landscape",
	"environmental considerations",
}

// #endregion

// #region complexity-bands

const (
	mediumComplexityMin = 10 // inclusive
	highComplexityMin   = 30 // inclusive
)

// #endregion

// #region classifier

// Classifier produces an InputAnalysis from raw text via keyword heuristics.
// No model call. The rng feeds only the context fallback.
type Classifier struct {
	rng IntSource
}

// NewClassifier creates a classifier. rng may be nil; a time-seeded source is
// used so the context fallback stays uniform.
func NewClassifier(rng IntSource) *Classifier {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Classifier{rng: rng}
}

// #endregion

// #region classify

// Classify classifies arbitrary text, including the empty string. It never
// fails; every field comes back with exactly one enumerated value.
func (c *Classifier) Classify(text string) InputAnalysis {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	return InputAnalysis{
		Complexity:    classifyComplexity(wordCount),
		Category:      classifyCategory(lower),
		Context:       c.classifyContext(lower),
		ReasoningType: classifyReasoning(lower),
	}
}

// #endregion

// #region classify-complexity

func classifyComplexity(wordCount int) Complexity {
	switch {
	case wordCount < mediumComplexityMin:
		return ComplexityLow
	case wordCount < highComplexityMin:
		return ComplexityMedium
	default:
		return ComplexityHigh
	}
}

// #endregion

// #region classify-category

func classifyCategory(lower string) Category {
	for _, kw := range creativeKeywords {
		if strings.Contains(lower, kw) {
			return CategoryCreative
		}
	}
	for _, kw := range analyticalKeywords {
		if strings.Contains(lower, kw) {
			return CategoryAnalytical
		}
	}
	for _, kw := range practicalKeywords {
		if strings.Contains(lower, kw) {
			return CategoryPractical
		}
	}
	return CategoryGeneral
}

// #endregion

// #region classify-context

func (c *Classifier) classifyContext(lower string) string {
	for _, label := range contextLabels {
		for _, word := range strings.Fields(label) {
			if strings.Contains(lower, word) {
				return label
			}
		}
	}
	// Intentional nondeterminism inherited from the original behavior:
	// with no match the context is a uniform random label, not a fixed default.
	return contextLabels[c.rng.Intn(len(contextLabels))]
}

// #endregion

// #region classify-reasoning

func classifyReasoning(lower string) ReasoningType {
	if strings.Contains(lower, "?") {
		return ReasoningProblemSolving
	}
	if strings.Contains(lower, "why") || strings.Contains(lower, "how") {
		return ReasoningExplanatory
	}
	if strings.Contains(lower, "compare") || strings.Contains(lower, "vs") {
		return ReasoningComparative
	}
	return ReasoningExploratory
}

// #endregion
