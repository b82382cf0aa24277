package generate

import (
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

// buildConditions derives the victory condition's required-objective set from
// the generated objective list and assembles the standard defeats. Optional
// objectives never gate victory.
func buildConditions(mt scenario.MissionType, ctx Context, objs []scenario.ScenarioObjective) ([]scenario.VictoryCondition, []scenario.DefeatCondition) {
	var required []string
	for _, o := range objs {
		if !o.IsOptional {
			required = append(required, o.ID)
		}
	}

	victories := []scenario.VictoryCondition{{
		Category:           mt.Category,
		Description:        Interpolate(mt.VictoryTemplate, ctx),
		RequiredObjectives: required,
	}}

	defeats := []scenario.DefeatCondition{
		{Kind: scenario.DefeatInvestigatorsDown, Description: "All investigators are incapacitated."},
		{Kind: scenario.DefeatDoomExhausted, Description: "The doom clock reaches zero."},
	}

	// Rescue-style missions lose outright if the escort dies.
	for _, o := range objs {
		if o.Kind == scenario.ObjectiveProtect && !o.IsOptional {
			defeats = append(defeats, scenario.DefeatCondition{
				Kind:        scenario.DefeatEscortLost,
				Description: Interpolate("{victim} has died.", ctx),
				ObjectiveID: o.ID,
			})
			break
		}
	}

	return victories, defeats
}
