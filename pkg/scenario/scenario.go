package scenario

import "fmt"

// Scenario is one complete generated mission: goal, objectives, doom events
// and win/lose conditions. The generator produces it fully formed; at play
// time only objective progress and doom event trigger flags mutate.
type Scenario struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Briefing      string              `json:"briefing"`
	Goal          string              `json:"goal"`
	SpecialRule   string              `json:"special_rule,omitempty"`
	Category      VictoryCategory     `json:"category"`
	Difficulty    Difficulty          `json:"difficulty"`
	StartDoom     int                 `json:"start_doom"`
	StartLocation string              `json:"start_location"`
	TileSet       MapCategory         `json:"tile_set"`
	Objectives    []ScenarioObjective `json:"objectives"`
	DoomEvents    []DoomEvent         `json:"doom_events"` // sorted by descending threshold
	Victories     []VictoryCondition  `json:"victory_conditions"`
	Defeats       []DefeatCondition   `json:"defeat_conditions"`
	EstimatedTime int                 `json:"estimated_minutes"`
	PartySizeMin  int                 `json:"party_size_min"`
	PartySizeMax  int                 `json:"party_size_max"`
}

// Objective returns the objective with the given id.
func (s *Scenario) Objective(id string) (*ScenarioObjective, bool) {
	for i := range s.Objectives {
		if s.Objectives[i].ID == id {
			return &s.Objectives[i], true
		}
	}
	return nil, false
}

// RequiredObjectiveIDs returns the ids of all non-optional objectives, in
// list order.
func (s *Scenario) RequiredObjectiveIDs() []string {
	var ids []string
	for _, o := range s.Objectives {
		if !o.IsOptional {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// CompleteObjective marks an objective completed and reveals any objective
// waiting on it. Completing a hidden objective is an error: a hidden
// objective is by definition not yet in play.
func (s *Scenario) CompleteObjective(id string) error {
	obj, ok := s.Objective(id)
	if !ok {
		return fmt.Errorf("no objective %s in scenario %s", id, s.ID)
	}
	if obj.IsHidden {
		return fmt.Errorf("objective %s is still hidden", id)
	}
	obj.Completed = true
	if obj.TargetAmount > 0 {
		obj.CurrentAmount = obj.TargetAmount
	}
	for i := range s.Objectives {
		if s.Objectives[i].RevealedBy == id {
			s.Objectives[i].IsHidden = false
		}
	}
	return nil
}

// VictoryAchieved reports whether every required objective of every victory
// condition is completed.
func (s *Scenario) VictoryAchieved() bool {
	if len(s.Victories) == 0 {
		return false
	}
	for _, vc := range s.Victories {
		for _, id := range vc.RequiredObjectives {
			obj, ok := s.Objective(id)
			if !ok || !obj.Completed {
				return false
			}
		}
	}
	return true
}

// FireDoomEvents triggers every untriggered event whose threshold has been
// reached at the given doom value and returns them in firing order. Each
// event fires at most once.
func (s *Scenario) FireDoomEvents(currentDoom int) []*DoomEvent {
	var fired []*DoomEvent
	for i := range s.DoomEvents {
		ev := &s.DoomEvents[i]
		if !ev.Triggered && currentDoom <= ev.Threshold {
			ev.Triggered = true
			fired = append(fired, ev)
		}
	}
	return fired
}
