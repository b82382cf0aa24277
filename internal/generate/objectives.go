package generate

import (
	"fmt"
	"math/rand"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

// targetPrefs pins target draws to nouns already chosen for the scenario, so
// mission text, objectives and doom events agree on who the enemy is and
// which relic matters.
type targetPrefs struct {
	bossID  string
	enemyID string
	itemID  string
}

// expandObjectives turns a mission type's ordered template list into concrete
// objectives, resolving index-based reveal references into id-based ones.
// A reveal index that points forward or out of range is a template authoring
// error and fails generation outright.
func expandObjectives(mt scenario.MissionType, ctx Context, rng *rand.Rand, prefs targetPrefs) ([]scenario.ScenarioObjective, error) {
	objs := make([]scenario.ScenarioObjective, 0, len(mt.Objectives)+2)

	for i, ot := range mt.Objectives {
		obj := scenario.ScenarioObjective{
			ID:            fmt.Sprintf("obj-%d", i+1),
			Kind:          ot.Kind,
			IsOptional:    ot.Optional,
			RewardInsight: ot.RewardInsight,
			RewardItem:    ot.RewardItem,
		}

		if ot.RevealedByIndex != nil {
			ix := *ot.RevealedByIndex
			if ix < 0 || ix >= i {
				return nil, fmt.Errorf("mission %s: template %s reveals from index %d, which is not an earlier template",
					mt.ID, ot.ID, ix)
			}
			obj.RevealedBy = objs[ix].ID
			obj.IsHidden = ot.Hidden
		}

		obj.TargetID = drawTarget(ot, rng, prefs)
		if ot.MaxAmount > 0 {
			obj.TargetAmount = rollRange(rng, ot.MinAmount, ot.MaxAmount)
		}

		octx := objectiveContext(ctx, obj)
		obj.Description = Interpolate(ot.Description, octx)
		obj.ShortDescription = Interpolate(ot.ShortDescription, octx)

		objs = append(objs, obj)
	}

	return objs, nil
}

// appendBonusObjectives draws 1-2 distinct bonus objectives from the shared
// pool. Bonus objectives are always optional, visible, and never referenced
// by victory conditions or reveal chains.
func appendBonusObjectives(objs []scenario.ScenarioObjective, ctx Context, rng *rand.Rand, prefs targetPrefs) []scenario.ScenarioObjective {
	pool := content.BonusObjectives
	n := 1 + rng.Intn(2)
	if n > len(pool) {
		n = len(pool)
	}

	order := rng.Perm(len(pool))
	for i := 0; i < n; i++ {
		ot := pool[order[i]]
		obj := scenario.ScenarioObjective{
			ID:            fmt.Sprintf("bonus-%d", i+1),
			Kind:          ot.Kind,
			IsOptional:    true,
			RewardInsight: ot.RewardInsight,
			RewardItem:    ot.RewardItem,
		}
		obj.TargetID = drawTarget(ot, rng, prefs)
		if ot.MaxAmount > 0 {
			obj.TargetAmount = rollRange(rng, ot.MinAmount, ot.MaxAmount)
		}
		octx := objectiveContext(ctx, obj)
		obj.Description = Interpolate(ot.Description, octx)
		obj.ShortDescription = Interpolate(ot.ShortDescription, octx)
		objs = append(objs, obj)
	}
	return objs
}

// drawTarget picks the objective's target id, preferring the scenario's
// pinned nouns when the template offers them.
func drawTarget(ot scenario.ObjectiveTemplate, rng *rand.Rand, prefs targetPrefs) string {
	if len(ot.TargetChoices) == 0 {
		return ""
	}
	preferred := ""
	switch ot.Kind {
	case scenario.ObjectiveKillBoss:
		preferred = prefs.bossID
	case scenario.ObjectiveKillEnemy:
		preferred = prefs.enemyID
	case scenario.ObjectiveFindItem, scenario.ObjectiveCollect:
		preferred = prefs.itemID
	}
	if preferred != "" {
		for _, c := range ot.TargetChoices {
			if c == preferred {
				return preferred
			}
		}
	}
	return ot.TargetChoices[rng.Intn(len(ot.TargetChoices))]
}

// objectiveContext layers the objective's drawn amount and item names over
// the scenario context.
func objectiveContext(ctx Context, obj scenario.ScenarioObjective) Context {
	octx := ctx
	if obj.TargetAmount > 0 {
		octx = octx.WithAmount(obj.TargetAmount)
	}
	switch obj.Kind {
	case scenario.ObjectiveFindItem, scenario.ObjectiveCollect:
		if obj.TargetID != "" {
			octx = octx.WithItem(content.ItemName(obj.TargetID), content.ItemPlural(obj.TargetID))
		}
	}
	return octx
}

// rollRange draws uniformly from [min, max].
func rollRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
