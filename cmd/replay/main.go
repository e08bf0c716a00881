package main

// #region imports
import (
	"fmt"
	"os"

	"github.com/formsight/go-analysis/internal/replay"
)

// #endregion

// #region main

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <fixture.json>\n", os.Args[0])
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if fixture.Description != "" {
		fmt.Printf("Replaying: %s\n", fixture.Description)
	}

	failed := 0
	for _, r := range replay.Run(fixture) {
		if r.Pass {
			fmt.Printf("  PASS %s\n", r.TurnID)
			continue
		}
		failed++
		fmt.Printf("  FAIL %s\n", r.TurnID)
		for _, m := range r.Mismatches {
			fmt.Printf("       %s\n", m)
		}
	}

	fmt.Printf("%d interactions, %d failed\n", len(fixture.Interactions), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// #endregion
