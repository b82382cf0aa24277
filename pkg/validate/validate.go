// Package validate statically analyzes a generated scenario for structural
// solvability. Validation is pure: it never mutates the scenario and never
// fails — problems come back as issues on the report.
package validate

import (
	"fmt"

	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

// Severity splits issues into blockers and confidence reducers.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies which check produced an issue.
type Code string

const (
	CodeDoomBudget      Code = "doom_budget"
	CodeSurvival        Code = "survival_feasibility"
	CodeKillQuota       Code = "kill_quota"
	CodeMissingBoss     Code = "missing_boss"
	CodeRevealChain     Code = "reveal_chain"
	CodeHiddenOpener    Code = "hidden_opener"
	CodeDuplicateTarget Code = "duplicate_target"
)

// Issue is one finding from a validation check.
type Issue struct {
	Severity    Severity `json:"severity"`
	Code        Code     `json:"code"`
	ObjectiveID string   `json:"objective_id,omitempty"`
	Message     string   `json:"message"`
}

// Report is the outcome of validating one scenario.
type Report struct {
	IsWinnable bool    `json:"is_winnable"`
	Confidence int     `json:"confidence"` // 0-100
	Issues     []Issue `json:"issues,omitempty"`
}

// HasErrors reports whether any issue is a blocker.
func (r Report) HasErrors() bool {
	for _, is := range r.Issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Each warning shaves this much off the confidence score.
const warningPenalty = 15

// Slack required per non-optional objective, in doom. A coarse heuristic:
// roughly two rounds of doom per required objective.
const doomPerObjective = 2

// Scenario runs every winnability check against s and returns the combined
// report. Any error-severity issue forces IsWinnable=false.
func Scenario(s *scenario.Scenario) Report {
	var issues []Issue
	issues = append(issues, checkDoomBudget(s)...)
	issues = append(issues, checkObjectives(s)...)
	issues = append(issues, checkRevealChain(s)...)
	issues = append(issues, checkHiddenOpener(s)...)
	issues = append(issues, checkDuplicateTargets(s)...)

	rep := Report{Confidence: 100, Issues: issues}
	for _, is := range issues {
		if is.Severity == SeverityWarning {
			rep.Confidence -= warningPenalty
		}
	}
	if rep.Confidence < 0 {
		rep.Confidence = 0
	}
	rep.IsWinnable = !rep.HasErrors()
	return rep
}

// MinimumStartDoom returns the smallest doom budget the coarse per-objective
// heuristic accepts for s. Shared with the fixer so both agree on the bound.
func MinimumStartDoom(s *scenario.Scenario) int {
	return doomPerObjective * len(s.RequiredObjectiveIDs())
}

func checkDoomBudget(s *scenario.Scenario) []Issue {
	min := MinimumStartDoom(s)
	if s.StartDoom < min {
		return []Issue{{
			Severity: SeverityError,
			Code:     CodeDoomBudget,
			Message: fmt.Sprintf("start doom %d is below the %d needed for %d required objectives",
				s.StartDoom, min, len(s.RequiredObjectiveIDs())),
		}}
	}
	if s.StartDoom < min+doomPerObjective {
		return []Issue{{
			Severity: SeverityWarning,
			Code:     CodeDoomBudget,
			Message: fmt.Sprintf("start doom %d barely covers %d required objectives",
				s.StartDoom, len(s.RequiredObjectiveIDs())),
		}}
	}
	return nil
}

// checkObjectives runs the per-kind feasibility checks. The switch is
// exhaustive over ObjectiveKind so a new kind cannot ship without a decision
// here.
func checkObjectives(s *scenario.Scenario) []Issue {
	var issues []Issue
	for _, obj := range s.Objectives {
		switch obj.Kind {
		case scenario.ObjectiveSurvive:
			if !obj.IsOptional && obj.TargetAmount > s.StartDoom {
				issues = append(issues, Issue{
					Severity:    SeverityError,
					Code:        CodeSurvival,
					ObjectiveID: obj.ID,
					Message: fmt.Sprintf("surviving %d rounds is impossible with start doom %d",
						obj.TargetAmount, s.StartDoom),
				})
			}
		case scenario.ObjectiveKillEnemy:
			if !obj.IsOptional && obj.TargetAmount > 0 {
				if supply := SpawnSupply(s, scenario.DoomSpawnEnemy, obj.TargetID); supply < obj.TargetAmount {
					issues = append(issues, Issue{
						Severity:    SeverityError,
						Code:        CodeKillQuota,
						ObjectiveID: obj.ID,
						Message: fmt.Sprintf("kill quota %d of %q exceeds the %d spawned by doom events",
							obj.TargetAmount, obj.TargetID, supply),
					})
				}
			}
		case scenario.ObjectiveKillBoss:
			if !hasBossSpawn(s) {
				issues = append(issues, Issue{
					Severity:    SeverityError,
					Code:        CodeMissingBoss,
					ObjectiveID: obj.ID,
					Message:     fmt.Sprintf("objective %s requires a boss but no spawn_boss event exists", obj.ID),
				})
			} else if !obj.IsOptional && obj.TargetAmount > 0 {
				if supply := SpawnSupply(s, scenario.DoomSpawnBoss, obj.TargetID); supply < obj.TargetAmount {
					issues = append(issues, Issue{
						Severity:    SeverityError,
						Code:        CodeKillQuota,
						ObjectiveID: obj.ID,
						Message: fmt.Sprintf("boss quota %d of %q exceeds the %d spawned by doom events",
							obj.TargetAmount, obj.TargetID, supply),
					})
				}
			}
		case scenario.ObjectiveFindItem, scenario.ObjectiveFindTile,
			scenario.ObjectiveCollect, scenario.ObjectiveEscape,
			scenario.ObjectiveInteract, scenario.ObjectiveProtect,
			scenario.ObjectiveExplore, scenario.ObjectiveRitual:
			// Always structurally reachable; budget is covered by the doom check.
		}
	}
	return issues
}

// SpawnSupply sums the amounts of spawn events of the given kind whose target
// matches targetID or the wildcard. Shared with the fixer.
func SpawnSupply(s *scenario.Scenario, kind scenario.DoomEventKind, targetID string) int {
	total := 0
	for _, ev := range s.DoomEvents {
		if ev.Kind != kind {
			continue
		}
		if ev.TargetID == targetID || ev.TargetID == scenario.TargetAny {
			total += ev.Amount
		}
	}
	return total
}

func hasBossSpawn(s *scenario.Scenario) bool {
	for _, ev := range s.DoomEvents {
		if ev.Kind == scenario.DoomSpawnBoss {
			return true
		}
	}
	return false
}

// checkRevealChain verifies every reveal edge points strictly backward by
// list position, which also rules out cycles and self references.
func checkRevealChain(s *scenario.Scenario) []Issue {
	var issues []Issue
	pos := make(map[string]int, len(s.Objectives))
	for i, obj := range s.Objectives {
		pos[obj.ID] = i
	}
	for i, obj := range s.Objectives {
		if obj.RevealedBy == "" {
			continue
		}
		j, ok := pos[obj.RevealedBy]
		if !ok {
			issues = append(issues, Issue{
				Severity:    SeverityError,
				Code:        CodeRevealChain,
				ObjectiveID: obj.ID,
				Message:     fmt.Sprintf("objective %s is revealed by unknown objective %s", obj.ID, obj.RevealedBy),
			})
			continue
		}
		if j >= i {
			issues = append(issues, Issue{
				Severity:    SeverityError,
				Code:        CodeRevealChain,
				ObjectiveID: obj.ID,
				Message:     fmt.Sprintf("objective %s is revealed by %s, which does not precede it", obj.ID, obj.RevealedBy),
			})
		}
	}
	return issues
}

// checkHiddenOpener rejects scenarios whose first objective starts hidden:
// nothing could ever reveal it, so the mission would be unplayable.
func checkHiddenOpener(s *scenario.Scenario) []Issue {
	if len(s.Objectives) == 0 {
		return []Issue{{
			Severity: SeverityError,
			Code:     CodeHiddenOpener,
			Message:  "scenario has no objectives",
		}}
	}
	if first := s.Objectives[0]; first.IsHidden {
		return []Issue{{
			Severity:    SeverityError,
			Code:        CodeHiddenOpener,
			ObjectiveID: first.ID,
			Message:     fmt.Sprintf("first objective %s starts hidden and can never be revealed", first.ID),
		}}
	}
	return nil
}

// checkDuplicateTargets flags bonus objectives that reuse a required
// objective's target id. Possibly intended flavor reuse, so only a warning.
func checkDuplicateTargets(s *scenario.Scenario) []Issue {
	var issues []Issue
	required := make(map[string]string)
	for _, obj := range s.Objectives {
		if !obj.IsOptional && obj.TargetID != "" && obj.TargetID != scenario.TargetAny {
			required[obj.TargetID] = obj.ID
		}
	}
	for _, obj := range s.Objectives {
		if !obj.IsOptional || obj.TargetID == "" {
			continue
		}
		if reqID, ok := required[obj.TargetID]; ok {
			issues = append(issues, Issue{
				Severity:    SeverityWarning,
				Code:        CodeDuplicateTarget,
				ObjectiveID: obj.ID,
				Message: fmt.Sprintf("bonus objective %s reuses target %q already required by %s",
					obj.ID, obj.TargetID, reqID),
			})
		}
	}
	return issues
}
