package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

func testCtx() Context {
	return NewContext(Nouns{
		Location: "the Marsh Refinery",
		Item:     "the cipher page",
		Items:    "cipher pages",
		Target:   "the Broodmother",
		Victim:   "Sister Agnes",
		Mystery:  "Drowned Choir",
		Enemies:  "ghouls",
	})
}

func TestExpandObjectives_Purge(t *testing.T) {
	mt, ok := content.MissionTypeByID("purge")
	require.True(t, ok)

	rng := rand.New(rand.NewSource(1))
	objs, err := expandObjectives(mt, testCtx(), rng, targetPrefs{bossID: "broodmother", enemyID: "ghoul"})
	require.NoError(t, err)
	require.Len(t, objs, len(mt.Objectives))

	// Declared order, fresh ids.
	assert.Equal(t, "obj-1", objs[0].ID)
	assert.False(t, objs[0].IsHidden, "opening objective is visible")

	// Index references became id references pointing strictly backward.
	pos := map[string]int{}
	for i, o := range objs {
		pos[o.ID] = i
	}
	for i, o := range objs {
		if o.RevealedBy != "" {
			assert.Less(t, pos[o.RevealedBy], i, "%s reveal edge must point backward", o.ID)
		}
	}

	// Pinned targets win over random draws.
	kill := objs[1]
	assert.Equal(t, scenario.ObjectiveKillEnemy, kill.Kind)
	assert.Equal(t, "ghoul", kill.TargetID)
	assert.GreaterOrEqual(t, kill.TargetAmount, 6)
	assert.LessOrEqual(t, kill.TargetAmount, 8)
	assert.Contains(t, kill.Description, "ghouls")
	assert.NotContains(t, kill.Description, "{")

	boss := objs[3]
	assert.Equal(t, scenario.ObjectiveKillBoss, boss.Kind)
	assert.Equal(t, "broodmother", boss.TargetID)
	assert.True(t, boss.IsHidden)
	assert.Equal(t, objs[2].ID, boss.RevealedBy)
}

func TestExpandObjectives_ForwardIndexFails(t *testing.T) {
	forward := 1
	mt := scenario.MissionType{
		ID: "broken",
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "first", Kind: scenario.ObjectiveExplore, Description: "x",
				Hidden: true, RevealedByIndex: &forward},
			{ID: "second", Kind: scenario.ObjectiveEscape, Description: "y"},
		},
	}

	_, err := expandObjectives(mt, testCtx(), rand.New(rand.NewSource(1)), targetPrefs{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestExpandObjectives_OutOfRangeIndexFails(t *testing.T) {
	oob := 5
	mt := scenario.MissionType{
		ID: "broken",
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "first", Kind: scenario.ObjectiveExplore, Description: "x"},
			{ID: "second", Kind: scenario.ObjectiveEscape, Description: "y",
				Hidden: true, RevealedByIndex: &oob},
		},
	}

	_, err := expandObjectives(mt, testCtx(), rand.New(rand.NewSource(1)), targetPrefs{})
	assert.Error(t, err)
}

func TestExpandObjectives_NoRevealIndexMeansVisible(t *testing.T) {
	// The hidden flag alone does not hide a template; without a reveal edge
	// nothing could ever show it.
	mt := scenario.MissionType{
		ID: "m",
		Objectives: []scenario.ObjectiveTemplate{
			{ID: "a", Kind: scenario.ObjectiveExplore, Description: "x", Hidden: true},
		},
	}

	objs, err := expandObjectives(mt, testCtx(), rand.New(rand.NewSource(1)), targetPrefs{})
	require.NoError(t, err)
	assert.False(t, objs[0].IsHidden)
}

func TestAppendBonusObjectives(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		objs := appendBonusObjectives(nil, testCtx(), rng, targetPrefs{})

		require.NotEmpty(t, objs)
		assert.LessOrEqual(t, len(objs), 2)

		seen := map[string]bool{}
		for _, o := range objs {
			assert.True(t, o.IsOptional, "bonus objectives are always optional")
			assert.False(t, o.IsHidden)
			assert.Empty(t, o.RevealedBy, "bonus objectives never gate")
			assert.NotContains(t, o.Description, "{")
			assert.False(t, seen[o.Description], "bonus draw repeated: %s", o.Description)
			seen[o.Description] = true
		}
	}
}

func TestRollRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		got := rollRange(rng, 6, 8)
		assert.GreaterOrEqual(t, got, 6)
		assert.LessOrEqual(t, got, 8)
	}
	assert.Equal(t, 4, rollRange(rng, 4, 4))
	assert.Equal(t, 4, rollRange(rng, 4, 2), "degenerate range collapses to min")
}
