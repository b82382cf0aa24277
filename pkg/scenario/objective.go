package scenario

import "fmt"

// ObjectiveKind is the closed set of objective behaviors. The validator and
// fixer switch over this set exhaustively; adding a kind means reviewing both.
type ObjectiveKind string

const (
	ObjectiveFindItem  ObjectiveKind = "find_item"
	ObjectiveFindTile  ObjectiveKind = "find_tile"
	ObjectiveCollect   ObjectiveKind = "collect"
	ObjectiveKillEnemy ObjectiveKind = "kill_enemy"
	ObjectiveKillBoss  ObjectiveKind = "kill_boss"
	ObjectiveSurvive   ObjectiveKind = "survive"
	ObjectiveEscape    ObjectiveKind = "escape"
	ObjectiveInteract  ObjectiveKind = "interact"
	ObjectiveProtect   ObjectiveKind = "protect"
	ObjectiveExplore   ObjectiveKind = "explore"
	ObjectiveRitual    ObjectiveKind = "ritual"
)

var AllObjectiveKinds = []ObjectiveKind{
	ObjectiveFindItem, ObjectiveFindTile, ObjectiveCollect,
	ObjectiveKillEnemy, ObjectiveKillBoss, ObjectiveSurvive,
	ObjectiveEscape, ObjectiveInteract, ObjectiveProtect,
	ObjectiveExplore, ObjectiveRitual,
}

// ScenarioObjective is a concrete objective instance inside one generated
// scenario. Description and target are fully resolved; only CurrentAmount,
// Completed and IsHidden mutate at play time.
type ScenarioObjective struct {
	ID               string        `json:"id"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"short_description,omitempty"`
	Kind             ObjectiveKind `json:"kind"`
	TargetID         string        `json:"target_id,omitempty"`
	TargetAmount     int           `json:"target_amount,omitempty"`
	CurrentAmount    int           `json:"current_amount"`
	IsOptional       bool          `json:"optional"`
	IsHidden         bool          `json:"hidden"`
	RevealedBy       string        `json:"revealed_by,omitempty"` // id of the prerequisite objective
	Completed        bool          `json:"completed"`
	RewardInsight    int           `json:"reward_insight,omitempty"`
	RewardItem       string        `json:"reward_item,omitempty"`
}

// Progress advances the objective's counter by n, completing it when the
// target amount is reached. A hidden objective cannot make progress.
func (o *ScenarioObjective) Progress(n int) error {
	if o.IsHidden {
		return fmt.Errorf("objective %s is still hidden", o.ID)
	}
	if o.Completed {
		return nil
	}
	o.CurrentAmount += n
	if o.TargetAmount > 0 && o.CurrentAmount >= o.TargetAmount {
		o.CurrentAmount = o.TargetAmount
		o.Completed = true
	}
	return nil
}
