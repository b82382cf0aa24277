package generate

import (
	"math/rand"
	"sort"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

// scheduleDoomEvents builds the descending-threshold event list for one
// scenario: a spawn wave per narrative band, a boss spawn for boss-centric
// missions, and flavor events at higher difficulties. Thresholds are kept
// distinct; a collision nudges the later-generated threshold down by one.
func scheduleDoomEvents(difficulty scenario.Difficulty, ctx Context, rng *rand.Rand, boss *content.BossEntry) []scenario.DoomEvent {
	pool := content.EnemyPools[difficulty]
	sched := newSchedule()

	type band func(content.EnemyEntry) int
	bands := []band{
		func(e content.EnemyEntry) int { return e.Early },
		func(e content.EnemyEntry) int { return e.Mid },
		func(e content.EnemyEntry) int { return e.Late },
	}

	for _, threshold := range bands {
		entry := pool[rng.Intn(len(pool))]
		sched.add(scenario.DoomEvent{
			Threshold: threshold(entry),
			Kind:      scenario.DoomSpawnEnemy,
			TargetID:  entry.ID,
			Amount:    rollRange(rng, entry.MinCount, entry.MaxCount),
			Message:   Interpolate(entry.Message, ctx),
		})
	}

	if boss != nil {
		// Near the low end of the doom range, but never at or below the floor.
		sched.add(scenario.DoomEvent{
			Threshold: 2 + rng.Intn(2),
			Kind:      scenario.DoomSpawnBoss,
			TargetID:  boss.ID,
			Amount:    1,
			Message:   Interpolate(boss.Message, ctx),
		})
	}

	if difficulty != scenario.DifficultyNormal {
		sched.add(scenario.DoomEvent{
			Threshold: 6,
			Kind:      scenario.DoomSanityHit,
			Amount:    1,
			Message:   Interpolate("The {mystery} gnaws at the edges of your minds.", ctx),
		})
	}
	if difficulty == scenario.DifficultyNightmare {
		sched.add(scenario.DoomEvent{
			Threshold: 5,
			Kind:      scenario.DoomBuffEnemies,
			Message:   Interpolate("The {enemies} grow bolder as the dark thickens.", ctx),
		})
	}

	events := sched.events
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Threshold > events[j].Threshold
	})
	return events
}

// schedule keeps doom event thresholds distinct as events are inserted.
type schedule struct {
	events []scenario.DoomEvent
	used   map[int]bool
}

func newSchedule() *schedule {
	return &schedule{used: make(map[int]bool)}
}

func (s *schedule) add(ev scenario.DoomEvent) {
	ev.Threshold = scenario.NextFreeThreshold(s.used, ev.Threshold)
	s.used[ev.Threshold] = true
	s.events = append(s.events, ev)
}
