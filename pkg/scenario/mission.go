package scenario

// Difficulty selects the enemy pools and starting doom budget for generation.
type Difficulty string

const (
	DifficultyNormal    Difficulty = "normal"
	DifficultyHard      Difficulty = "hard"
	DifficultyNightmare Difficulty = "nightmare"
)

var AllDifficulties = []Difficulty{DifficultyNormal, DifficultyHard, DifficultyNightmare}

// ParseDifficulty maps a user-supplied string to a Difficulty.
// Unknown values fall back to normal.
func ParseDifficulty(s string) Difficulty {
	for _, d := range AllDifficulties {
		if string(d) == s {
			return d
		}
	}
	return DifficultyNormal
}

// VictoryCategory tags how a mission is ultimately won.
type VictoryCategory string

const (
	VictoryEscape        VictoryCategory = "escape"
	VictoryAssassination VictoryCategory = "assassination"
	VictorySurvival      VictoryCategory = "survival"
	VictoryCollection    VictoryCategory = "collection"
	VictoryRitual        VictoryCategory = "ritual"
	VictoryInvestigation VictoryCategory = "investigation"
)

var AllVictoryCategories = []VictoryCategory{
	VictoryEscape, VictoryAssassination, VictorySurvival,
	VictoryCollection, VictoryRitual, VictoryInvestigation,
}

// MapCategory steers which location list and tile set a mission prefers.
type MapCategory string

const (
	MapIndoor  MapCategory = "indoor"
	MapOutdoor MapCategory = "outdoor"
	MapMixed   MapCategory = "mixed"
)

var AllMapCategories = []MapCategory{MapIndoor, MapOutdoor, MapMixed}

// ObjectiveTemplate is the authoring-time shape of one objective within a
// mission type. Templates are addressed by position; RevealedByIndex points
// at an earlier template in the same mission, never forward.
type ObjectiveTemplate struct {
	ID               string        `json:"id"`
	Description      string        `json:"description"`                  // template string, may contain {key} placeholders
	ShortDescription string        `json:"short_description,omitempty"`  // compact form for trackers
	Kind             ObjectiveKind `json:"kind"`
	TargetChoices    []string      `json:"target_choices,omitempty"`     // one is drawn at generation time
	MinAmount        int           `json:"min_amount,omitempty"`         // inclusive range for the target amount
	MaxAmount        int           `json:"max_amount,omitempty"`
	Optional         bool          `json:"optional,omitempty"`
	Hidden           bool          `json:"hidden,omitempty"`
	RevealedByIndex  *int          `json:"revealed_by_index,omitempty"`  // index of the prerequisite template
	RewardInsight    int           `json:"reward_insight,omitempty"`
	RewardItem       string        `json:"reward_item,omitempty"`
}

// MissionType is a reusable mission definition. Loaded once from the content
// tables and never mutated.
type MissionType struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Category        VictoryCategory     `json:"category"`
	GoalTemplate    string              `json:"goal_template"`
	RuleTemplate    string              `json:"rule_template,omitempty"` // special rule text shown during setup
	MapCategory     MapCategory         `json:"map_category"`
	StartDoom       map[Difficulty]int  `json:"start_doom"` // per-difficulty doom budget
	Objectives      []ObjectiveTemplate `json:"objectives"`
	VictoryTemplate string              `json:"victory_template"`
}
