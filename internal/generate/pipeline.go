package generate

import (
	"github.com/mythosquest/scenario-engine/internal/repair"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
	"github.com/mythosquest/scenario-engine/pkg/validate"
)

// DefaultMaxAttempts bounds the regenerate-validate-fix loop.
const DefaultMaxAttempts = 5

// Result is the outcome of validated generation. BestEffort marks a scenario
// that still carries validator issues after every attempt; callers should
// warn players rather than refuse to play.
type Result struct {
	Scenario   *scenario.Scenario `json:"scenario"`
	Report     validate.Report    `json:"report"`
	Fixes      []repair.Fix       `json:"fixes,omitempty"`
	Attempts   int                `json:"attempts"`
	BestEffort bool               `json:"best_effort"`
}

// GenerateValidated runs the full pipeline: generate, validate, auto-fix,
// re-validate, retrying from scratch up to the attempt bound. It always
// returns a scenario unless generation itself hits a template authoring
// error; on exhausted retries the best-effort candidate comes back with its
// remaining issues.
func (g *Generator) GenerateValidated(difficulty scenario.Difficulty) (*Result, error) {
	return g.generateValidated(difficulty, nil)
}

// GenerateValidatedMission is GenerateValidated pinned to one mission type.
func (g *Generator) GenerateValidatedMission(mt scenario.MissionType, difficulty scenario.Difficulty) (*Result, error) {
	return g.generateValidated(difficulty, &mt)
}

func (g *Generator) generateValidated(difficulty scenario.Difficulty, mt *scenario.MissionType) (*Result, error) {
	var best *Result

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		var s *scenario.Scenario
		var err error
		if mt != nil {
			s, err = g.GenerateMission(*mt, difficulty)
		} else {
			s, err = g.Generate(difficulty)
		}
		if err != nil {
			return nil, err
		}

		rep := validate.Scenario(s)
		candidate := &Result{Scenario: s, Report: rep, Attempts: attempt}

		if !rep.IsWinnable {
			fixed, fixes := repair.Apply(s, rep)
			candidate = &Result{
				Scenario: fixed,
				Report:   validate.Scenario(fixed),
				Fixes:    fixes,
				Attempts: attempt,
			}
		}

		if candidate.Report.IsWinnable {
			g.log.Debug("scenario generated",
				"scenario_id", candidate.Scenario.ID,
				"difficulty", difficulty,
				"attempts", attempt,
				"fixes", len(candidate.Fixes),
				"confidence", candidate.Report.Confidence)
			return candidate, nil
		}

		if betterThan(candidate, best) {
			best = candidate
		}
		g.log.Debug("scenario attempt not winnable",
			"attempt", attempt,
			"issues", len(candidate.Report.Issues))
	}

	// Exhausted retries: game setup still needs a scenario, so hand back the
	// best candidate and let the caller surface the remaining issues.
	best.BestEffort = true
	best.Attempts = g.maxAttempts
	g.log.Warn("returning best-effort scenario after exhausted attempts",
		"scenario_id", best.Scenario.ID,
		"difficulty", difficulty,
		"issues", len(best.Report.Issues),
		"confidence", best.Report.Confidence)
	return best, nil
}

// betterThan prefers fewer blocking issues, then higher confidence.
func betterThan(a, b *Result) bool {
	if b == nil {
		return true
	}
	ae, be := errorCount(a.Report), errorCount(b.Report)
	if ae != be {
		return ae < be
	}
	return a.Report.Confidence > b.Report.Confidence
}

func errorCount(rep validate.Report) int {
	n := 0
	for _, is := range rep.Issues {
		if is.Severity == validate.SeverityError {
			n++
		}
	}
	return n
}
