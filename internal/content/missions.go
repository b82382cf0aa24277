package content

import "github.com/mythosquest/scenario-engine/pkg/scenario"

func idx(i int) *int { return &i }

// MissionTypes is the full mission pool. Templates are interpolated against
// the scenario context at generation time; revealed_by_index always points at
// an earlier template in the same mission.
var MissionTypes = []scenario.MissionType{
	{
		ID:           "purge",
		Name:         "Purge",
		Category:     scenario.VictoryAssassination,
		GoalTemplate: "Cleanse {location} of the {enemies} and slay {target}.",
		RuleTemplate: "Slain enemies count toward the purge even after their nest is found.",
		MapCategory:  scenario.MapMixed,
		StartDoom: map[scenario.Difficulty]int{
			scenario.DifficultyNormal:    16,
			scenario.DifficultyHard:      14,
			scenario.DifficultyNightmare: 12,
		},
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "sweep", Kind: scenario.ObjectiveExplore,
				Description:      "Sweep {location} for nests of the {enemies}",
				ShortDescription: "Sweep {location}"},
			{ID: "cull", Kind: scenario.ObjectiveKillEnemy,
				Description:      "Destroy {count} of the {enemies} infesting {location}",
				ShortDescription: "Kill {count} {enemies}",
				TargetChoices:    []string{"ghoul", "cultist"},
				MinAmount:        6, MaxAmount: 8},
			{ID: "lair", Kind: scenario.ObjectiveFindTile,
				Description:      "Locate the brood lair beneath {location}",
				ShortDescription: "Find the lair",
				Hidden:           true, RevealedByIndex: idx(1),
				RewardInsight: 1},
			{ID: "slay", Kind: scenario.ObjectiveKillBoss,
				Description:      "Slay {target} in its lair",
				ShortDescription: "Slay {target}",
				TargetChoices:    []string{"broodmother", "high_priest"},
				MinAmount:        1, MaxAmount: 1,
				Hidden: true, RevealedByIndex: idx(2)},
		},
		VictoryTemplate: "Every nest is burned out and {target} lies dead.",
	},
	{
		ID:           "siege",
		Name:         "Siege",
		Category:     scenario.VictorySurvival,
		GoalTemplate: "Barricade {location} and hold out for {rounds} rounds.",
		RuleTemplate: "Breached barricades can be rebuilt, but each rebuild costs one doom.",
		MapCategory:  scenario.MapIndoor,
		StartDoom: map[scenario.Difficulty]int{
			scenario.DifficultyNormal:    14,
			scenario.DifficultyHard:      12,
			scenario.DifficultyNightmare: 10,
		},
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "barricade", Kind: scenario.ObjectiveInteract,
				Description:      "Barricade the entrances of {location}",
				ShortDescription: "Barricade {count} entrances",
				TargetChoices:    []string{"barricade"},
				MinAmount:        3, MaxAmount: 4},
			{ID: "holdout", Kind: scenario.ObjectiveSurvive,
				Description:      "Hold out against the {enemies} for {rounds} rounds",
				ShortDescription: "Survive {rounds} rounds",
				MinAmount:        8, MaxAmount: 12},
			{ID: "shelter", Kind: scenario.ObjectiveProtect,
				Description:      "Keep {victim} alive until dawn",
				ShortDescription: "Protect {victim}",
				TargetChoices:    []string{"survivor"},
				Optional:         true},
		},
		VictoryTemplate: "Dawn breaks over {location} and the {enemies} retreat.",
	},
	{
		ID:           "vanishing",
		Name:         "The Vanishing",
		Category:     scenario.VictoryInvestigation,
		GoalTemplate: "Uncover the {mystery} and bring {victim} home alive.",
		MapCategory:  scenario.MapMixed,
		StartDoom: map[scenario.Difficulty]int{
			scenario.DifficultyNormal:    15,
			scenario.DifficultyHard:      13,
			scenario.DifficultyNightmare: 11,
		},
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "witnesses", Kind: scenario.ObjectiveInteract,
				Description:      "Question the witnesses in {location}",
				ShortDescription: "Question {count} witnesses",
				TargetChoices:    []string{"witness"},
				MinAmount:        2, MaxAmount: 3},
			{ID: "trail", Kind: scenario.ObjectiveFindTile,
				Description:      "Find where {victim} was taken",
				ShortDescription: "Find {victim}",
				Hidden:           true, RevealedByIndex: idx(0),
				RewardInsight: 1},
			{ID: "evidence", Kind: scenario.ObjectiveFindItem,
				Description:      "Recover proof of the {mystery}",
				ShortDescription: "Recover {item}",
				TargetChoices:    []string{"ritual_dagger", "bloodstained_letter", "cipher_page"},
				MinAmount:        1, MaxAmount: 1,
				Hidden: true, RevealedByIndex: idx(1)},
			{ID: "escort", Kind: scenario.ObjectiveProtect,
				Description:      "Escort {victim} out of {location}",
				ShortDescription: "Escort {victim} to safety",
				TargetChoices:    []string{"escort"},
				Hidden:           true, RevealedByIndex: idx(1)},
		},
		VictoryTemplate: "{victim} is safe and the {mystery} is dragged into the light.",
	},
	{
		ID:           "reliquary",
		Name:         "Reliquary",
		Category:     scenario.VictoryCollection,
		GoalTemplate: "Gather the {items} scattered through {location} and get out.",
		RuleTemplate: "Carried relics are dropped when an investigator is incapacitated.",
		MapCategory:  scenario.MapIndoor,
		StartDoom: map[scenario.Difficulty]int{
			scenario.DifficultyNormal:    14,
			scenario.DifficultyHard:      12,
			scenario.DifficultyNightmare: 10,
		},
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "search", Kind: scenario.ObjectiveExplore,
				Description:      "Search the halls of {location}",
				ShortDescription: "Search {location}"},
			{ID: "gather", Kind: scenario.ObjectiveCollect,
				Description:      "Gather {count} of the {items}",
				ShortDescription: "Collect {count} {items}",
				TargetChoices:    []string{"obsidian_idol", "sealed_urn", "graven_tablet"},
				MinAmount:        3, MaxAmount: 5},
			{ID: "flee", Kind: scenario.ObjectiveEscape,
				Description:      "Escape {location} with the {items}",
				ShortDescription: "Escape {location}",
				Hidden:           true, RevealedByIndex: idx(1)},
		},
		VictoryTemplate: "The {items} are secured and every investigator is clear of {location}.",
	},
	{
		ID:           "banishment",
		Name:         "Banishment",
		Category:     scenario.VictoryRitual,
		GoalTemplate: "Gather the components and banish the {mystery} before doom falls.",
		RuleTemplate: "The rite cannot begin while any enemy stands on the ritual circle.",
		MapCategory:  scenario.MapOutdoor,
		StartDoom: map[scenario.Difficulty]int{
			scenario.DifficultyNormal:    16,
			scenario.DifficultyHard:      14,
			scenario.DifficultyNightmare: 12,
		},
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "grounds", Kind: scenario.ObjectiveExplore,
				Description:      "Scout the grounds of {location}",
				ShortDescription: "Scout {location}"},
			{ID: "components", Kind: scenario.ObjectiveCollect,
				Description:      "Gather {count} components of the rite",
				ShortDescription: "Gather {count} components",
				TargetChoices:    []string{"rite_component"},
				MinAmount:        2, MaxAmount: 3},
			{ID: "circle", Kind: scenario.ObjectiveFindTile,
				Description:      "Find the ritual circle",
				ShortDescription: "Find the circle",
				Hidden:           true, RevealedByIndex: idx(1),
				RewardInsight: 1},
			{ID: "rite", Kind: scenario.ObjectiveRitual,
				Description:      "Perform the rite of banishment against the {mystery}",
				ShortDescription: "Perform the rite",
				Hidden:           true, RevealedByIndex: idx(2)},
		},
		VictoryTemplate: "The rite is complete and the {mystery} is cast back into the dark.",
	},
	{
		ID:           "lasttrain",
		Name:         "The Last Train",
		Category:     scenario.VictoryEscape,
		GoalTemplate: "Find a way out of {location} before the doom clock runs down.",
		MapCategory:  scenario.MapMixed,
		StartDoom: map[scenario.Difficulty]int{
			scenario.DifficultyNormal:    12,
			scenario.DifficultyHard:      10,
			scenario.DifficultyNightmare: 9,
		},
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "route", Kind: scenario.ObjectiveExplore,
				Description:      "Find a route through {location}",
				ShortDescription: "Find a route"},
			{ID: "key", Kind: scenario.ObjectiveFindItem,
				Description:      "Find {item} to open the way",
				ShortDescription: "Find {item}",
				TargetChoices:    []string{"brass_key", "iron_crowbar", "signal_lantern"},
				MinAmount:        1, MaxAmount: 1,
				Hidden: true, RevealedByIndex: idx(0)},
			{ID: "out", Kind: scenario.ObjectiveEscape,
				Description:      "Escape {location} before the {enemies} close in",
				ShortDescription: "Escape {location}",
				Hidden:           true, RevealedByIndex: idx(1)},
		},
		VictoryTemplate: "Every investigator is out of {location} before doom falls.",
	},
}

// MissionTypeByID looks a mission type up by id.
func MissionTypeByID(id string) (scenario.MissionType, bool) {
	for _, mt := range MissionTypes {
		if mt.ID == id {
			return mt, true
		}
	}
	return scenario.MissionType{}, false
}

// BonusObjectives is the shared pool of optional extras. Bonus objectives
// never gate victory and never hide behind a reveal chain.
var BonusObjectives = []scenario.ObjectiveTemplate{
	{ID: "journal", Kind: scenario.ObjectiveCollect,
		Description:      "Recover pages of {victim}'s journal",
		ShortDescription: "Recover {count} journal pages",
		TargetChoices:    []string{"old_journal"},
		MinAmount:        2, MaxAmount: 3,
		Optional:      true,
		RewardInsight: 1},
	{ID: "thin_the_dark", Kind: scenario.ObjectiveKillEnemy,
		Description:      "Thin the ranks of the {enemies}",
		ShortDescription: "Kill {count} extra {enemies}",
		TargetChoices:    []string{scenario.TargetAny},
		MinAmount:        2, MaxAmount: 3,
		Optional: true},
	{ID: "charm", Kind: scenario.ObjectiveFindItem,
		Description:      "Find {item} before the {mystery} finds you",
		ShortDescription: "Find {item}",
		TargetChoices:    []string{"warding_charm"},
		MinAmount:        1, MaxAmount: 1,
		Optional:   true,
		RewardItem: "warding_charm"},
	{ID: "calm", Kind: scenario.ObjectiveInteract,
		Description:      "Calm the survivors hiding in {location}",
		ShortDescription: "Calm {count} survivors",
		TargetChoices:    []string{"survivor"},
		MinAmount:        1, MaxAmount: 2,
		Optional:      true,
		RewardInsight: 1},
}
