package content

import "github.com/mythosquest/scenario-engine/pkg/scenario"

// EnemyEntry describes one spawnable enemy type and the doom thresholds at
// which its early/mid/late wave fires. Counts are an inclusive range drawn
// per event.
type EnemyEntry struct {
	ID       string
	Name     string
	Plural   string
	Early    int // doom threshold for the early band
	Mid      int
	Late     int
	MinCount int
	MaxCount int
	Message  string
}

// EnemyPools holds the per-difficulty spawn tables. Higher difficulties carry
// more enemy types and bigger waves.
var EnemyPools = map[scenario.Difficulty][]EnemyEntry{
	scenario.DifficultyNormal: {
		{ID: "ghoul", Name: "Ghoul", Plural: "ghouls", Early: 10, Mid: 7, Late: 3, MinCount: 2, MaxCount: 3,
			Message: "Ghouls claw their way up from beneath {location}."},
		{ID: "cultist", Name: "Cultist", Plural: "cultists", Early: 11, Mid: 7, Late: 4, MinCount: 2, MaxCount: 4,
			Message: "Robed cultists slip out of the shadows, chanting."},
		{ID: "rat_swarm", Name: "Rat Swarm", Plural: "rats", Early: 12, Mid: 8, Late: 4, MinCount: 1, MaxCount: 2,
			Message: "The walls of {location} seethe with rats."},
	},
	scenario.DifficultyHard: {
		{ID: "ghoul", Name: "Ghoul", Plural: "ghouls", Early: 10, Mid: 6, Late: 3, MinCount: 3, MaxCount: 4,
			Message: "A pack of ghouls pours out of the dark."},
		{ID: "cultist", Name: "Cultist", Plural: "cultists", Early: 10, Mid: 7, Late: 3, MinCount: 3, MaxCount: 5,
			Message: "Cultists surround {location}, knives glinting."},
		{ID: "deep_one", Name: "Deep One", Plural: "deep ones", Early: 9, Mid: 6, Late: 2, MinCount: 2, MaxCount: 3,
			Message: "Something wet drags itself toward the lanterns."},
		{ID: "hound", Name: "Hound of Tindalos", Plural: "hounds", Early: 11, Mid: 5, Late: 2, MinCount: 1, MaxCount: 2,
			Message: "A hound folds itself out of the corner of the room."},
	},
	scenario.DifficultyNightmare: {
		{ID: "ghoul", Name: "Ghoul", Plural: "ghouls", Early: 9, Mid: 6, Late: 2, MinCount: 4, MaxCount: 6,
			Message: "The ground erupts with grave-fed ghouls."},
		{ID: "deep_one", Name: "Deep One", Plural: "deep ones", Early: 9, Mid: 5, Late: 2, MinCount: 3, MaxCount: 4,
			Message: "The tide brings more of them than you can count."},
		{ID: "hound", Name: "Hound of Tindalos", Plural: "hounds", Early: 10, Mid: 5, Late: 2, MinCount: 2, MaxCount: 3,
			Message: "Hounds howl from angles that should not exist."},
		{ID: "byakhee", Name: "Byakhee", Plural: "byakhee", Early: 11, Mid: 6, Late: 3, MinCount: 2, MaxCount: 3,
			Message: "Leathery wings blot out the moon above {location}."},
		{ID: "nightgaunt", Name: "Nightgaunt", Plural: "nightgaunts", Early: 8, Mid: 4, Late: 1, MinCount: 2, MaxCount: 4,
			Message: "Faceless shapes descend without a sound."},
	},
}

// BossEntry describes a boss spawn candidate. A boss appears only at the
// listed difficulties.
type BossEntry struct {
	ID           string
	Name         string
	Difficulties []scenario.Difficulty
	Message      string
}

var Bosses = []BossEntry{
	{ID: "broodmother", Name: "the Broodmother",
		Difficulties: []scenario.Difficulty{scenario.DifficultyNormal, scenario.DifficultyHard},
		Message:      "The Broodmother heaves itself out of the nest, shrieking."},
	{ID: "high_priest", Name: "the High Priest of the Red Sign",
		Difficulties: scenario.AllDifficulties,
		Message:      "The High Priest steps through a door that was not there before."},
	{ID: "avatar_of_the_deep", Name: "the Avatar of the Deep",
		Difficulties: []scenario.Difficulty{scenario.DifficultyHard, scenario.DifficultyNightmare},
		Message:      "The water rises, and something rises with it."},
	{ID: "the_sleeper", Name: "the Sleeper Beneath",
		Difficulties: []scenario.Difficulty{scenario.DifficultyNightmare},
		Message:      "The Sleeper opens one eye, and the world tilts."},
}

// BossesFor returns the boss candidates available at the given difficulty.
func BossesFor(d scenario.Difficulty) []BossEntry {
	var out []BossEntry
	for _, b := range Bosses {
		for _, bd := range b.Difficulties {
			if bd == d {
				out = append(out, b)
				break
			}
		}
	}
	return out
}
