package generate

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mythosquest/scenario-engine/internal/content"
	"github.com/mythosquest/scenario-engine/pkg/scenario"
)

// Generator assembles scenarios from the content pools. All randomness flows
// through the injected rng, so a fixed seed reproduces the same scenario.
// A Generator is not safe for concurrent use; each caller gets its own.
type Generator struct {
	rng         *rand.Rand
	log         *slog.Logger
	maxAttempts int
}

// New creates a Generator around the given random source.
func New(rng *rand.Rand, log *slog.Logger) *Generator {
	return &Generator{
		rng:         rng,
		log:         log,
		maxAttempts: DefaultMaxAttempts,
	}
}

// SetMaxAttempts bounds the regenerate-validate-fix loop. Values below 1 are
// ignored.
func (g *Generator) SetMaxAttempts(n int) {
	if n >= 1 {
		g.maxAttempts = n
	}
}

// Generate assembles one scenario from a randomly drawn mission type.
// Errors are template authoring bugs only; winnability is not checked here.
func (g *Generator) Generate(difficulty scenario.Difficulty) (*scenario.Scenario, error) {
	mt := content.MissionTypes[g.rng.Intn(len(content.MissionTypes))]
	return g.GenerateMission(mt, difficulty)
}

// GenerateMission assembles one scenario from a specific mission type.
func (g *Generator) GenerateMission(mt scenario.MissionType, difficulty scenario.Difficulty) (*scenario.Scenario, error) {
	startDoom, ok := mt.StartDoom[difficulty]
	if !ok {
		return nil, fmt.Errorf("mission %s has no start doom for difficulty %s", mt.ID, difficulty)
	}

	// Draw the concrete nouns first so objectives, doom events and mission
	// text all name the same things.
	locations := content.Locations[mt.MapCategory]
	location := locations[g.rng.Intn(len(locations))]

	pool := content.EnemyPools[difficulty]
	primaryEnemy := pool[g.rng.Intn(len(pool))]

	var boss *content.BossEntry
	target := ""
	if missionWantsBoss(mt) {
		candidates := content.BossesFor(difficulty)
		b := candidates[g.rng.Intn(len(candidates))]
		boss = &b
		target = b.Name
	} else {
		// Flavor only; templates for this mission may still name a {target}.
		target = content.Bosses[g.rng.Intn(len(content.Bosses))].Name
	}

	itemID := drawMissionItem(mt, g.rng)
	prefs := targetPrefs{enemyID: primaryEnemy.ID, itemID: itemID}
	if boss != nil {
		prefs.bossID = boss.ID
	}

	ctx := NewContext(Nouns{
		Location: location,
		Item:     content.ItemName(itemID),
		Items:    content.ItemPlural(itemID),
		Target:   target,
		Victim:   content.Victims[g.rng.Intn(len(content.Victims))],
		Mystery:  content.Mysteries[g.rng.Intn(len(content.Mysteries))],
		Enemies:  primaryEnemy.Plural,
	})

	objs, err := expandObjectives(mt, ctx, g.rng, prefs)
	if err != nil {
		return nil, err
	}
	objs = appendBonusObjectives(objs, ctx, g.rng, prefs)

	// Mission-level text gets the primary objective's drawn amount.
	mctx := ctx
	if amt := primaryAmount(objs); amt > 0 {
		mctx = ctx.WithAmount(amt)
	}

	events := scheduleDoomEvents(difficulty, ctx, g.rng, boss)
	victories, defeats := buildConditions(mt, mctx, objs)

	requiredCount := 0
	for _, o := range objs {
		if !o.IsOptional {
			requiredCount++
		}
	}

	s := &scenario.Scenario{
		ID:            fmt.Sprintf("scn-%08x", g.rng.Uint32()),
		Title:         RenderTitle(content.TitleTemplates[g.rng.Intn(len(content.TitleTemplates))], mctx),
		Briefing:      Interpolate(content.BriefingTemplates[g.rng.Intn(len(content.BriefingTemplates))], mctx),
		Goal:          Interpolate(mt.GoalTemplate, mctx),
		SpecialRule:   Interpolate(mt.RuleTemplate, mctx),
		Category:      mt.Category,
		Difficulty:    difficulty,
		StartDoom:     startDoom,
		StartLocation: location,
		TileSet:       mt.MapCategory,
		Objectives:    objs,
		DoomEvents:    events,
		Victories:     victories,
		Defeats:       defeats,
		EstimatedTime: estimateMinutes(requiredCount, difficulty),
		PartySizeMin:  partySizeMin(difficulty),
		PartySizeMax:  5,
	}
	return s, nil
}

func missionWantsBoss(mt scenario.MissionType) bool {
	if mt.Category == scenario.VictoryAssassination {
		return true
	}
	for _, ot := range mt.Objectives {
		if ot.Kind == scenario.ObjectiveKillBoss {
			return true
		}
	}
	return false
}

// drawMissionItem pre-draws the item id for the mission's first item-bearing
// template so the {item} placeholders match what the objective asks for.
func drawMissionItem(mt scenario.MissionType, rng *rand.Rand) string {
	for _, ot := range mt.Objectives {
		switch ot.Kind {
		case scenario.ObjectiveFindItem, scenario.ObjectiveCollect:
			if len(ot.TargetChoices) > 0 {
				return ot.TargetChoices[rng.Intn(len(ot.TargetChoices))]
			}
		}
	}
	return "warding_charm"
}

// primaryAmount returns the drawn amount of the first required objective that
// has one, for use in mission-level text.
func primaryAmount(objs []scenario.ScenarioObjective) int {
	for _, o := range objs {
		if !o.IsOptional && o.TargetAmount > 0 {
			return o.TargetAmount
		}
	}
	return 0
}

func estimateMinutes(requiredObjectives int, d scenario.Difficulty) int {
	base := 20 + 15*requiredObjectives
	switch d {
	case scenario.DifficultyHard:
		base += 10
	case scenario.DifficultyNightmare:
		base += 20
	}
	return base
}

func partySizeMin(d scenario.Difficulty) int {
	if d == scenario.DifficultyNightmare {
		return 3
	}
	return 2
}
