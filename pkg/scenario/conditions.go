package scenario

// DefeatKind names the resolution predicate the round driver invokes for a
// defeat condition.
type DefeatKind string

const (
	DefeatInvestigatorsDown DefeatKind = "investigators_down"
	DefeatDoomExhausted     DefeatKind = "doom_exhausted"
	DefeatEscortLost        DefeatKind = "escort_lost"
)

var AllDefeatKinds = []DefeatKind{DefeatInvestigatorsDown, DefeatDoomExhausted, DefeatEscortLost}

// VictoryCondition is satisfied when every required objective is completed.
type VictoryCondition struct {
	Category           VictoryCategory `json:"category"`
	Description        string          `json:"description"`
	RequiredObjectives []string        `json:"required_objectives"`
}

// DefeatCondition ends the scenario in failure. ObjectiveID is set only for
// escort_lost, keying the condition to the protect objective it guards.
type DefeatCondition struct {
	Kind        DefeatKind `json:"kind"`
	Description string     `json:"description"`
	ObjectiveID string     `json:"objective_id,omitempty"`
}
