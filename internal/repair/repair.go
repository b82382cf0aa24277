// Package repair mutates a scenario to satisfy the winnability validator.
// Every fix is additive: budgets and spawn amounts only ever go up, and
// nothing is removed. The input scenario is never touched; fixes apply to a
// fresh copy.
package repair

import (
	"fmt"
	"sort"

	"github.com/mythosquest/scenario-engine/pkg/scenario"
	"github.com/mythosquest/scenario-engine/pkg/validate"
)

// Fix describes one applied repair in human-readable form.
type Fix struct {
	Code        validate.Code `json:"code"`
	Description string        `json:"description"`
}

// Extra doom added on top of the minimum a check demands.
const safetyMargin = 2

// Apply returns a corrected copy of s addressing the error-severity issues in
// rep, plus the list of changes made. Structural authoring issues (broken
// reveal chains, hidden openers) are not additively fixable and are left for
// the retry loop to regenerate away. Warnings are left alone.
func Apply(s *scenario.Scenario, rep validate.Report) (*scenario.Scenario, []Fix) {
	out := clone(s)
	var fixes []Fix

	for _, issue := range rep.Issues {
		if issue.Severity != validate.SeverityError {
			continue
		}
		switch issue.Code {
		case validate.CodeDoomBudget:
			fixes = append(fixes, fixDoomBudget(out)...)
		case validate.CodeSurvival:
			fixes = append(fixes, fixSurvival(out, issue.ObjectiveID)...)
		case validate.CodeKillQuota:
			fixes = append(fixes, fixKillQuota(out, issue.ObjectiveID)...)
		case validate.CodeMissingBoss:
			fixes = append(fixes, fixMissingBoss(out, issue.ObjectiveID)...)
		case validate.CodeRevealChain, validate.CodeHiddenOpener, validate.CodeDuplicateTarget:
			// Not repairable by adding content.
		}
	}

	sort.SliceStable(out.DoomEvents, func(i, j int) bool {
		return out.DoomEvents[i].Threshold > out.DoomEvents[j].Threshold
	})
	return out, fixes
}

func fixDoomBudget(s *scenario.Scenario) []Fix {
	need := validate.MinimumStartDoom(s) + safetyMargin
	if s.StartDoom >= need {
		return nil
	}
	old := s.StartDoom
	s.StartDoom = need
	return []Fix{{
		Code:        validate.CodeDoomBudget,
		Description: fmt.Sprintf("raised start doom from %d to %d to cover the required objectives", old, need),
	}}
}

func fixSurvival(s *scenario.Scenario, objectiveID string) []Fix {
	obj, ok := s.Objective(objectiveID)
	if !ok {
		return nil
	}
	need := obj.TargetAmount + safetyMargin
	if s.StartDoom >= need {
		return nil
	}
	old := s.StartDoom
	s.StartDoom = need
	return []Fix{{
		Code:        validate.CodeSurvival,
		Description: fmt.Sprintf("raised start doom from %d to %d so surviving %d rounds is possible", old, need, obj.TargetAmount),
	}}
}

// fixKillQuota tops up the spawn supply for a kill objective, preferring to
// grow an existing matching event over synthesizing a new one.
func fixKillQuota(s *scenario.Scenario, objectiveID string) []Fix {
	obj, ok := s.Objective(objectiveID)
	if !ok {
		return nil
	}

	var evKind scenario.DoomEventKind
	switch obj.Kind {
	case scenario.ObjectiveKillEnemy:
		evKind = scenario.DoomSpawnEnemy
	case scenario.ObjectiveKillBoss:
		evKind = scenario.DoomSpawnBoss
	default:
		return nil
	}

	deficit := obj.TargetAmount - validate.SpawnSupply(s, evKind, obj.TargetID)
	if deficit <= 0 {
		return nil
	}

	for i := range s.DoomEvents {
		ev := &s.DoomEvents[i]
		if ev.Kind == evKind && (ev.TargetID == obj.TargetID || ev.TargetID == scenario.TargetAny) {
			ev.Amount += deficit
			return []Fix{{
				Code: validate.CodeKillQuota,
				Description: fmt.Sprintf("increased the %q spawn at doom %d by %d to cover the kill quota of %d",
					ev.TargetID, ev.Threshold, deficit, obj.TargetAmount),
			}}
		}
	}

	threshold := insertEvent(s, scenario.DoomEvent{
		Threshold: s.StartDoom / 2,
		Kind:      evKind,
		TargetID:  obj.TargetID,
		Amount:    deficit,
		Message:   "The darkness disgorges more of its servants.",
	})
	return []Fix{{
		Code: validate.CodeKillQuota,
		Description: fmt.Sprintf("added a spawn of %d %q at doom %d to cover the kill quota of %d",
			deficit, obj.TargetID, threshold, obj.TargetAmount),
	}}
}

func fixMissingBoss(s *scenario.Scenario, objectiveID string) []Fix {
	// The validator may report one missing-boss issue per kill_boss
	// objective; a single injected event satisfies all of them.
	for _, ev := range s.DoomEvents {
		if ev.Kind == scenario.DoomSpawnBoss {
			return nil
		}
	}

	target := scenario.TargetAny
	amount := 1
	if obj, ok := s.Objective(objectiveID); ok {
		if obj.TargetID != "" {
			target = obj.TargetID
		}
		if obj.TargetAmount > amount {
			amount = obj.TargetAmount
		}
	}

	threshold := insertEvent(s, scenario.DoomEvent{
		Threshold: 2,
		Kind:      scenario.DoomSpawnBoss,
		TargetID:  target,
		Amount:    amount,
		Message:   "A terrible presence answers the tolling of the doom clock.",
	})
	return []Fix{{
		Code:        validate.CodeMissingBoss,
		Description: fmt.Sprintf("added a %q boss spawn at doom %d", target, threshold),
	}}
}

// insertEvent appends ev with a threshold no other event uses and returns the
// threshold actually chosen.
func insertEvent(s *scenario.Scenario, ev scenario.DoomEvent) int {
	used := make(map[int]bool, len(s.DoomEvents))
	for _, e := range s.DoomEvents {
		used[e.Threshold] = true
	}
	ev.Threshold = scenario.NextFreeThreshold(used, ev.Threshold)
	s.DoomEvents = append(s.DoomEvents, ev)
	return ev.Threshold
}

// clone deep-copies a scenario so fixes never leak into the validated input.
func clone(s *scenario.Scenario) *scenario.Scenario {
	out := *s
	out.Objectives = append([]scenario.ScenarioObjective(nil), s.Objectives...)
	out.DoomEvents = append([]scenario.DoomEvent(nil), s.DoomEvents...)
	out.Defeats = append([]scenario.DefeatCondition(nil), s.Defeats...)
	out.Victories = make([]scenario.VictoryCondition, len(s.Victories))
	for i, vc := range s.Victories {
		out.Victories[i] = vc
		out.Victories[i].RequiredObjectives = append([]string(nil), vc.RequiredObjectives...)
	}
	return &out
}
