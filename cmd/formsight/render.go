package main

// #region imports
import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/formsight/go-analysis/internal/history"
	"github.com/formsight/go-analysis/internal/orchestrator"
)

// #endregion

// #region render-result

func renderResult(res orchestrator.Result, format string) error {
	switch format {
	case "json":
		return printJSON(res)
	case "yaml":
		return printYAML(res)
	default:
		renderResultHuman(res)
		return nil
	}
}

func renderResultHuman(res orchestrator.Result) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	bold.Println("Response")
	fmt.Println(res.Response)
	fmt.Println()

	bold.Println("Classification")
	cyan.Printf("  complexity: %s\n", res.Analysis.Complexity)
	cyan.Printf("  category:   %s\n", res.Analysis.Category)
	cyan.Printf("  context:    %s\n", res.Analysis.Context)
	cyan.Printf("  reasoning:  %s\n", res.Analysis.ReasoningType)
	fmt.Println()

	bold.Printf("Bias scan (score %d, confidence %.1f)\n", res.Bias.BiasScore, res.Bias.Confidence)
	if len(res.Bias.Issues) == 0 {
		green.Println("  no issues found")
	}
	for _, issue := range res.Bias.Issues {
		yellow.Printf("  - %s\n", issue)
	}

	if len(res.Suggestions) > 0 {
		fmt.Println()
		bold.Println("Applied substitutions")
		for _, s := range res.Suggestions {
			green.Printf("  - %s\n", s)
		}
	}
}

// #endregion

// #region render-history

func renderHistory(items []history.Item, format string) error {
	switch format {
	case "json":
		return printJSON(items)
	case "yaml":
		return printYAML(items)
	}

	if len(items) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	for i, it := range items {
		bold.Printf("%d. %s\n", i+1, it.Input)
		dim.Printf("   %s | %s/%s/%s | bias score %d\n",
			it.CreatedAt.Format("2006-01-02 15:04:05"),
			it.Analysis.Complexity, it.Analysis.Category, it.Analysis.ReasoningType,
			it.Bias.BiasScore)
	}
	return nil
}

// #endregion

// #region encoders

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// #endregion
