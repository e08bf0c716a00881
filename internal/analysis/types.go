package analysis

// #region complexity

// Complexity buckets input length; it describes text size, not difficulty.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// #endregion

// #region category

// Category classifies the broad intent of the input.
type Category string

const (
	CategoryCreative   Category = "creative"
	CategoryAnalytical Category = "analytical"
	CategoryPractical  Category = "practical"
	CategoryGeneral    Category = "general"
)

// #endregion

// #region reasoning-type

// ReasoningType estimates what kind of answer the input is asking for.
type ReasoningType string

const (
	ReasoningProblemSolving ReasoningType = "problem-solving"
	ReasoningExplanatory    ReasoningType = "explanatory"
	ReasoningComparative    ReasoningType = "comparative"
	ReasoningExploratory    ReasoningType = "exploratory"
)

// #endregion

// #region input-analysis

// InputAnalysis is the full classification output for one input.
// Immutable once produced.
type InputAnalysis struct {
	Complexity    Complexity    `json:"complexity"`
	Category      Category      `json:"category"`
	Context       string        `json:"context"`
	ReasoningType ReasoningType `json:"reasoning_type"`
}

// #endregion

// #region int-source

// IntSource supplies the random pick for the no-match context fallback.
// *rand.Rand satisfies it; tests pin a seeded source.
type IntSource interface {
	Intn(n int) int
}

// #endregion
