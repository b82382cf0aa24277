package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/internal/generate"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

// generate produces validated scenarios on the command line, for authoring
// mission types and for seeding test fixtures.
func main() {
	difficulty := flag.String("difficulty", "normal", "difficulty: normal, hard or nightmare")
	seed := flag.Int64("seed", 0, "RNG seed; 0 draws a fresh seed")
	mission := flag.String("mission", "", "mission type ID; random when empty")
	count := flag.Int("count", 1, "number of scenarios to generate")
	pretty := flag.Bool("pretty", false, "indent JSON output")
	verbose := flag.Bool("v", false, "log generation attempts to stderr")
	flag.Parse()

	logHandler := slog.NewTextHandler(io.Discard, nil)
	if *verbose {
		logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	log := slog.New(logHandler)

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
		fmt.Fprintf(os.Stderr, "seed: %d\n", s)
	}

	d := scenario.ParseDifficulty(*difficulty)

	var mt scenario.MissionType
	haveMission := false
	if *mission != "" {
		var ok bool
		mt, ok = content.MissionTypeByID(*mission)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown mission type: %s\n", *mission)
			os.Exit(1)
		}
		haveMission = true
	}

	gen := generate.New(rand.New(rand.NewSource(s)), log)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	for i := 0; i < *count; i++ {
		var result *generate.Result
		var err error
		if haveMission {
			result, err = gen.GenerateValidatedMission(mt, d)
		} else {
			result, err = gen.GenerateValidated(d)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
			os.Exit(1)
		}
		if result.BestEffort {
			fmt.Fprintf(os.Stderr, "warning: %s is best-effort after %d attempts\n",
				result.Scenario.ID, result.Attempts)
		}
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "encoding failed: %v\n", err)
			os.Exit(1)
		}
	}
}
