// Package orchestrator chains classification, synthesis, and bias filtering
// into one request/response cycle and keeps the bounded interaction history.
package orchestrator

// #region imports
import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/formsight/go-analysis/internal/analysis"
	"github.com/formsight/go-analysis/internal/bias"
	"github.com/formsight/go-analysis/internal/history"
	"github.com/formsight/go-analysis/internal/synth"
)

// #endregion

// #region constants

// maxHistory caps the retained interaction log; oldest entries are evicted.
const maxHistory = 10

// ErrEmptyInput is the single recognized failure: a trimmed-empty submission.
var ErrEmptyInput = errors.New("input is empty")

// #endregion

// #region orchestrator-struct

// Orchestrator sequences classify → synthesize → detect → soften and records
// each successful run in the history log. Single-writer; one request runs to
// completion before the next may start.
type Orchestrator struct {
	classifier *analysis.Classifier
	store      history.Store // nil = no persistence
	items      []history.Item
	thinkDelay time.Duration
	now        func() time.Time
}

// #endregion

// #region options

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithThinkDelay adds an artificial pause before classification. The delay
// only simulates latency; it has no semantic effect.
func WithThinkDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.thinkDelay = d }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// #endregion

// #region constructor

// New creates an orchestrator and loads the persisted history snapshot.
// store may be nil; history then lives only in memory. A failed load is
// logged and treated as no history available.
func New(classifier *analysis.Classifier, store history.Store, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		classifier: classifier,
		store:      store,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	if store != nil {
		items, err := store.Load()
		if err != nil {
			log.Printf("[ORCH] history unavailable, starting empty: %v", err)
		} else {
			o.items = items
		}
	}
	return o
}

// #endregion

// #region process

// Process runs the full pipeline for one submission. Bias is measured on the
// synthesized response, not the raw input; the rewrite runs only when the
// scan scores above zero.
func (o *Orchestrator) Process(rawInput string) (Result, error) {
	if strings.TrimSpace(rawInput) == "" {
		return Result{}, ErrEmptyInput
	}

	if o.thinkDelay > 0 {
		time.Sleep(o.thinkDelay)
	}

	a := o.classifier.Classify(rawInput)
	draft := synth.Synthesize(rawInput, a)
	ba := bias.Detect(draft)

	response := draft
	suggestions := []string{}
	if ba.BiasScore > 0 {
		rw := bias.Soften(draft)
		response = rw.ImprovedText
		if rw.Suggestions != nil {
			suggestions = rw.Suggestions
		}
	}

	log.Printf("[ORCH] processed: complexity=%s category=%s reasoning=%s bias_score=%d rewrites=%d",
		a.Complexity, a.Category, a.ReasoningType, ba.BiasScore, len(suggestions))

	result := Result{
		Response:    response,
		Analysis:    a,
		Bias:        ba,
		Suggestions: suggestions,
	}
	o.record(rawInput, result)

	return result, nil
}

// #endregion

// #region record

func (o *Orchestrator) record(input string, r Result) {
	item := history.Item{
		ID:        uuid.New().String(),
		Input:     input,
		Response:  r.Response,
		Analysis:  r.Analysis,
		Bias:      r.Bias,
		CreatedAt: o.now(),
	}

	// Detach from the returned result before retaining.
	o.items = append([]history.Item{item.Clone()}, o.items...)
	if len(o.items) > maxHistory {
		o.items = o.items[:maxHistory]
	}

	if o.store != nil {
		if err := o.store.Save(o.items); err != nil {
			log.Printf("[ORCH] failed to save history snapshot: %v", err)
		}
	}
}

// #endregion

// #region history-access

// History returns a copy of the retained log, most recent first. Items share
// no mutable state with the log or with any returned result.
func (o *Orchestrator) History() []history.Item {
	out := make([]history.Item, len(o.items))
	for i, it := range o.items {
		out[i] = it.Clone()
	}
	return out
}

// ClearHistory empties the log and removes the stored snapshot.
func (o *Orchestrator) ClearHistory() error {
	o.items = nil
	if o.store == nil {
		return nil
	}
	return o.store.Clear()
}

// #endregion
