package main

// #region imports
import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/formsight/go-analysis/internal/analysis"
	"github.com/formsight/go-analysis/internal/config"
	"github.com/formsight/go-analysis/internal/history"
	"github.com/formsight/go-analysis/internal/orchestrator"
)

// #endregion

// #region flags

var (
	configPath   string
	outputFormat string
)

// #endregion

// #region main

func main() {
	root := &cobra.Command{
		Use:   "formsight",
		Short: "Heuristic text analysis with bias-aware responses",
		Long: `Classify free-text input, synthesize an explanatory response,
and soften absolute or biased phrasing before it reaches the reader.

Examples:
  # Analyze an input
  formsight ask "What is the best way to plan a launch?"

  # Show the recent interaction history
  formsight history

  # Forget everything
  formsight clear`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to yaml config file")
	root.PersistentFlags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	root.AddCommand(newAskCmd(), newHistoryCmd(), newClearCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// #endregion

// #region wiring

func buildOrchestrator(cfg config.Config) (*orchestrator.Orchestrator, func(), error) {
	store, err := history.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open history store: %w", err)
	}

	var src analysis.IntSource
	if cfg.Seed != nil {
		src = rand.New(rand.NewSource(*cfg.Seed))
	}

	orch := orchestrator.New(
		analysis.NewClassifier(src),
		store,
		orchestrator.WithThinkDelay(cfg.ThinkDelay()),
	)
	return orch, func() { store.Close() }, nil
}

// #endregion

// #region ask

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask TEXT",
		Short: "Analyze a text input and synthesize a response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			orch, closeStore, err := buildOrchestrator(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = " analyzing..."
			s.Start()
			res, err := orch.Process(args[0])
			s.Stop()
			if err != nil {
				return fmt.Errorf("please enter some text: %w", err)
			}

			return renderResult(res, outputFormat)
		},
	}
}

// #endregion

// #region history

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the recent interaction history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			orch, closeStore, err := buildOrchestrator(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			return renderHistory(orch.History(), outputFormat)
		},
	}
}

// #endregion

// #region clear

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the interaction history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			orch, closeStore, err := buildOrchestrator(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := orch.ClearHistory(); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Println("History cleared.")
			return nil
		},
	}
}

// #endregion
