package generate

import (
	"io"
	"log/slog"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
	"github.com/mythosquest/scenario-engine/pkg/validate"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), testLogger())
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, d := range scenario.AllDifficulties {
		a, err := newTestGenerator(42).Generate(d)
		require.NoError(t, err)
		b, err := newTestGenerator(42).Generate(d)
		require.NoError(t, err)

		if !reflect.DeepEqual(a, b) {
			t.Errorf("same seed produced different scenarios at %s:\n%+v\n%+v", d, a, b)
		}

		c, err := newTestGenerator(43).Generate(d)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, c.ID, "different seeds should diverge")
	}
}

func TestGenerate_TextFullyInterpolated(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		s, err := newTestGenerator(seed).Generate(scenario.DifficultyHard)
		require.NoError(t, err)

		assert.NotContains(t, s.Title, "{", "seed %d title", seed)
		assert.NotContains(t, s.Briefing, "{", "seed %d briefing", seed)
		assert.NotContains(t, s.Goal, "{", "seed %d goal", seed)
		for _, o := range s.Objectives {
			assert.NotContains(t, o.Description, "{", "seed %d objective %s", seed, o.ID)
		}
	}
}

func TestGenerateMission_Shape(t *testing.T) {
	mt, ok := content.MissionTypeByID("vanishing")
	require.True(t, ok)

	s, err := newTestGenerator(5).GenerateMission(mt, scenario.DifficultyNormal)
	require.NoError(t, err)

	assert.Equal(t, scenario.VictoryInvestigation, s.Category)
	assert.Equal(t, mt.StartDoom[scenario.DifficultyNormal], s.StartDoom)
	assert.Equal(t, mt.MapCategory, s.TileSet)
	assert.NotEmpty(t, s.StartLocation)
	assert.Greater(t, s.EstimatedTime, 0)
	assert.GreaterOrEqual(t, s.PartySizeMax, s.PartySizeMin)

	// The escort objective produces an escort_lost defeat keyed to its id.
	var escortID string
	for _, o := range s.Objectives {
		if o.Kind == scenario.ObjectiveProtect && !o.IsOptional {
			escortID = o.ID
		}
	}
	require.NotEmpty(t, escortID)
	found := false
	for _, dc := range s.Defeats {
		if dc.Kind == scenario.DefeatEscortLost {
			found = true
			assert.Equal(t, escortID, dc.ObjectiveID)
		}
	}
	assert.True(t, found, "rescue-style mission needs an escort_lost defeat")

	// Standard defeats are always present.
	kinds := map[scenario.DefeatKind]bool{}
	for _, dc := range s.Defeats {
		kinds[dc.Kind] = true
	}
	assert.True(t, kinds[scenario.DefeatInvestigatorsDown])
	assert.True(t, kinds[scenario.DefeatDoomExhausted])
}

func TestGenerateMission_VictoryRequiresAllNonOptional(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		s, err := newTestGenerator(seed).Generate(scenario.DifficultyNormal)
		require.NoError(t, err)
		require.Len(t, s.Victories, 1)

		assert.Equal(t, s.RequiredObjectiveIDs(), s.Victories[0].RequiredObjectives)
		for _, id := range s.Victories[0].RequiredObjectives {
			obj, ok := s.Objective(id)
			require.True(t, ok)
			assert.False(t, obj.IsOptional, "optional objective %s must not gate victory", id)
		}
	}
}

func TestGenerateValidated_AlwaysReturnsScenario(t *testing.T) {
	for _, d := range scenario.AllDifficulties {
		for seed := int64(0); seed < 30; seed++ {
			res, err := newTestGenerator(seed).GenerateValidated(d)
			require.NoError(t, err, "%s seed %d", d, seed)
			require.NotNil(t, res.Scenario)

			if !res.BestEffort {
				assert.True(t, res.Report.IsWinnable, "%s seed %d", d, seed)
			} else {
				assert.NotEmpty(t, res.Report.Issues, "best-effort must carry its issues")
			}
		}
	}
}

// Reveal-chain soundness: every reveal edge points strictly earlier.
func TestProperty_RevealChainSoundness(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		res, err := newTestGenerator(seed).GenerateValidated(scenario.DifficultyHard)
		require.NoError(t, err)

		pos := map[string]int{}
		for i, o := range res.Scenario.Objectives {
			pos[o.ID] = i
		}
		for i, o := range res.Scenario.Objectives {
			if o.RevealedBy == "" {
				continue
			}
			j, ok := pos[o.RevealedBy]
			require.True(t, ok, "seed %d: %s reveals from unknown %s", seed, o.ID, o.RevealedBy)
			assert.Less(t, j, i, "seed %d: %s reveal edge points forward", seed, o.ID)
		}
	}
}

// Threshold uniqueness survives the full pipeline, fixes included.
func TestProperty_ThresholdUniqueness(t *testing.T) {
	for _, d := range scenario.AllDifficulties {
		for seed := int64(0); seed < 50; seed++ {
			res, err := newTestGenerator(seed).GenerateValidated(d)
			require.NoError(t, err)

			seen := map[int]bool{}
			for _, ev := range res.Scenario.DoomEvents {
				assert.False(t, seen[ev.Threshold],
					"%s seed %d: duplicate threshold %d", d, seed, ev.Threshold)
				seen[ev.Threshold] = true
			}
		}
	}
}

// Boss-quota property: assassination scenarios with a kill_boss objective end
// up with a spawn_boss event.
func TestProperty_BossQuota(t *testing.T) {
	mt, ok := content.MissionTypeByID("purge")
	require.True(t, ok)

	for seed := int64(0); seed < 50; seed++ {
		g := newTestGenerator(seed)
		s, err := g.GenerateMission(mt, scenario.DifficultyHard)
		require.NoError(t, err)

		hasBoss := false
		for _, ev := range s.DoomEvents {
			if ev.Kind == scenario.DoomSpawnBoss {
				hasBoss = true
			}
		}
		assert.True(t, hasBoss, "seed %d: assassination mission without boss spawn", seed)
	}
}

// Survival bound property: after the full pipeline either the survive target
// fits the doom budget or the issue list says why not.
func TestProperty_SurvivalBound(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		res, err := newTestGenerator(seed).GenerateValidated(scenario.DifficultyNightmare)
		require.NoError(t, err)

		for _, o := range res.Scenario.Objectives {
			if o.Kind != scenario.ObjectiveSurvive || o.IsOptional {
				continue
			}
			if o.TargetAmount > res.Scenario.StartDoom {
				assert.NotEmpty(t, res.Report.Issues,
					"seed %d: infeasible survive objective with empty issue list", seed)
			}
		}
	}
}

// Validation is pure: re-running it on a winnable scenario changes nothing.
func TestProperty_IdempotentValidation(t *testing.T) {
	res, err := newTestGenerator(9).GenerateValidated(scenario.DifficultyNormal)
	require.NoError(t, err)
	require.True(t, res.Report.IsWinnable)

	again := validate.Scenario(res.Scenario)
	assert.Equal(t, res.Report, again)
	assert.Empty(t, again.Issues)
}

// A Purge mission at Hard with a short ghoul supply gets fixed up to a
// passing scenario.
func TestExample_PurgeKillQuotaRepair(t *testing.T) {
	mt, ok := content.MissionTypeByID("purge")
	require.True(t, ok)

	foundShortfall := false
	for seed := int64(0); seed < 200 && !foundShortfall; seed++ {
		g := newTestGenerator(seed)
		s, err := g.GenerateMission(mt, scenario.DifficultyHard)
		require.NoError(t, err)

		rep := validate.Scenario(s)
		for _, is := range rep.Issues {
			if is.Code == validate.CodeKillQuota {
				foundShortfall = true

				res, err := newTestGenerator(seed).GenerateValidated(scenario.DifficultyHard)
				require.NoError(t, err)
				require.NotNil(t, res.Scenario)
				break
			}
		}
	}
	assert.True(t, foundShortfall, "expected at least one seed with a kill-quota shortfall")
}
