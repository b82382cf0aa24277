package scenario

// DoomEventKind is the closed set of doom event behaviors.
type DoomEventKind string

const (
	DoomSpawnEnemy  DoomEventKind = "spawn_enemy"
	DoomSpawnBoss   DoomEventKind = "spawn_boss"
	DoomBuffEnemies DoomEventKind = "buff_enemies"
	DoomSanityHit   DoomEventKind = "sanity_hit"
	DoomNarrative   DoomEventKind = "narrative"
)

var AllDoomEventKinds = []DoomEventKind{
	DoomSpawnEnemy, DoomSpawnBoss, DoomBuffEnemies, DoomSanityHit, DoomNarrative,
}

// TargetAny is the wildcard target id: a spawn event with this target counts
// toward any kill quota of the matching kind.
const TargetAny = "any"

// NextFreeThreshold resolves a doom threshold collision by nudging downward,
// stopping above the doom floor; if the downward walk is exhausted it climbs
// upward from the original value instead. Used wherever events are inserted
// so thresholds stay distinct within a scenario.
func NextFreeThreshold(used map[int]bool, want int) int {
	t := want
	for t > 1 && used[t] {
		t--
	}
	if !used[t] {
		return t
	}
	t = want + 1
	for used[t] {
		t++
	}
	return t
}

// DoomEvent fires once when the doom counter drops to or below its threshold.
// Doom never increases mid-scenario, so Triggered transitions false to true
// at most once.
type DoomEvent struct {
	Threshold int           `json:"threshold"`
	Triggered bool          `json:"triggered"`
	Kind      DoomEventKind `json:"kind"`
	TargetID  string        `json:"target_id,omitempty"` // enemy or boss id for spawn events
	Amount    int           `json:"amount,omitempty"`
	Message   string        `json:"message"`
}
