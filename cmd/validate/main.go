package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mythosquest/scenario-engine/pkg/scenario"
	"github.com/mythosquest/scenario-engine/pkg/validate"
)

// validate lints scenario JSON files: strict decode, then the structural
// winnability checks. Exit 1 on decode errors or blocking issues.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <scenario.json> [more.json ...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		if err := validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var s scenario.Scenario
	if err := decoder.Decode(&s); err != nil {
		return fmt.Errorf("failed strict JSON unmarshaling: %w", err)
	}

	rep := validate.Scenario(&s)
	for _, is := range rep.Issues {
		fmt.Printf("  %s %s: %s\n", is.Severity, is.Code, is.Message)
	}

	if !rep.IsWinnable {
		return fmt.Errorf("scenario is not winnable")
	}

	fmt.Printf("  winnable, confidence %d\n", rep.Confidence)
	return nil
}
