package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

func TestScheduleDoomEvents_DistinctThresholds(t *testing.T) {
	for _, d := range scenario.AllDifficulties {
		for seed := int64(0); seed < 50; seed++ {
			rng := rand.New(rand.NewSource(seed))
			events := scheduleDoomEvents(d, testCtx(), rng, &content.Bosses[1])

			seen := map[int]bool{}
			for _, ev := range events {
				assert.False(t, seen[ev.Threshold],
					"%s seed %d: duplicate threshold %d", d, seed, ev.Threshold)
				seen[ev.Threshold] = true
				assert.Greater(t, ev.Threshold, 0, "thresholds stay above the doom floor")
				assert.False(t, ev.Triggered)
			}
		}
	}
}

func TestScheduleDoomEvents_DescendingOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	events := scheduleDoomEvents(scenario.DifficultyHard, testCtx(), rng, nil)

	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i-1].Threshold, events[i].Threshold,
			"events must be sorted by strictly descending threshold")
	}
}

func TestScheduleDoomEvents_ThreeSpawnBands(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	events := scheduleDoomEvents(scenario.DifficultyNormal, testCtx(), rng, nil)

	spawns := 0
	for _, ev := range events {
		if ev.Kind == scenario.DoomSpawnEnemy {
			spawns++
			assert.NotEmpty(t, ev.TargetID)
			assert.Greater(t, ev.Amount, 0)
			assert.NotContains(t, ev.Message, "{", "messages are fully interpolated")
		}
	}
	assert.Equal(t, 3, spawns, "one spawn wave per band")
}

func TestScheduleDoomEvents_BossSpawn(t *testing.T) {
	boss := content.Bosses[0]
	for seed := int64(0); seed < 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		events := scheduleDoomEvents(scenario.DifficultyNormal, testCtx(), rng, &boss)

		var bossEvents []scenario.DoomEvent
		for _, ev := range events {
			if ev.Kind == scenario.DoomSpawnBoss {
				bossEvents = append(bossEvents, ev)
			}
		}
		require.Len(t, bossEvents, 1, "seed %d", seed)
		assert.Equal(t, boss.ID, bossEvents[0].TargetID)
		assert.Greater(t, bossEvents[0].Threshold, 0, "boss never spawns at or below the floor")
		assert.LessOrEqual(t, bossEvents[0].Threshold, 4, "boss spawns near the low end")
	}
}

func TestScheduleDoomEvents_DifficultyFlavor(t *testing.T) {
	kinds := func(events []scenario.DoomEvent) map[scenario.DoomEventKind]int {
		out := map[scenario.DoomEventKind]int{}
		for _, ev := range events {
			out[ev.Kind]++
		}
		return out
	}

	normal := kinds(scheduleDoomEvents(scenario.DifficultyNormal, testCtx(), rand.New(rand.NewSource(1)), nil))
	assert.Zero(t, normal[scenario.DoomSanityHit])
	assert.Zero(t, normal[scenario.DoomBuffEnemies])

	hard := kinds(scheduleDoomEvents(scenario.DifficultyHard, testCtx(), rand.New(rand.NewSource(1)), nil))
	assert.Equal(t, 1, hard[scenario.DoomSanityHit])

	nightmare := kinds(scheduleDoomEvents(scenario.DifficultyNightmare, testCtx(), rand.New(rand.NewSource(1)), nil))
	assert.Equal(t, 1, nightmare[scenario.DoomSanityHit])
	assert.Equal(t, 1, nightmare[scenario.DoomBuffEnemies])
}

func TestNextFreeThreshold(t *testing.T) {
	used := map[int]bool{7: true, 6: true}

	assert.Equal(t, 5, scenario.NextFreeThreshold(used, 7), "collisions nudge down")
	assert.Equal(t, 8, scenario.NextFreeThreshold(used, 8))

	// Downward walk exhausted at the floor: climb upward instead.
	low := map[int]bool{1: true, 2: true}
	assert.Equal(t, 3, scenario.NextFreeThreshold(low, 2))
}
