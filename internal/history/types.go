package history

// #region imports
import (
	"time"

	"github.com/formsight/go-analysis/internal/analysis"
	"github.com/formsight/go-analysis/internal/bias"
)

// #endregion

// #region item

// Item is one past interaction. Items are copies, independent of any live
// result; the stored list is newest-first and capped by the orchestrator.
type Item struct {
	ID        string                 `json:"id"`
	Input     string                 `json:"input"`
	Response  string                 `json:"response"`
	Analysis  analysis.InputAnalysis `json:"analysis"`
	Bias      bias.Analysis          `json:"bias_analysis"`
	CreatedAt time.Time              `json:"timestamp"`
}

// Clone returns a copy sharing no mutable state with the receiver.
func (it Item) Clone() Item {
	out := it
	out.Bias.Issues = append([]string(nil), it.Bias.Issues...)
	return out
}

// #endregion

// #region store-interface

// Store persists the history snapshot. Save always writes the full list;
// Load returns it newest-first. Implementations must treat an unreadable
// snapshot as empty rather than failing the pipeline.
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
	Clear() error
}

// #endregion
