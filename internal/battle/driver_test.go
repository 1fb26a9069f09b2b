package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/catalog"
	"github.com/sapbattle/core/internal/stats"
)

func buildCatalogTeam(t *testing.T, cat *catalog.Memory, name string, n int, seed int64) *battle.Team {
	t.Helper()
	pets := make([]*battle.Pet, n)
	for i := range pets {
		p, err := cat.SummonPet("Ant", 1)
		require.NoError(t, err)
		pets[i] = p
	}
	team, err := battle.NewTeam(name, pets, 5)
	require.NoError(t, err)
	team.SetSeed(seed)
	return team
}

// TestAllAntsFirstPhaseConservesTotals exercises the Ant-faint-buff
// scenario: two five-Ant teams trade a lethal first hit, each losing
// their front Ant and buffing a random survivor by +2/+1 (spec.md §8's
// first concrete scenario). The buff exactly replaces what the faint
// removed, so total attack/health across a team is conserved even
// though the roster shrinks by one pet.
func TestAllAntsFirstPhaseConservesTotals(t *testing.T) {
	cat := catalog.NewMemory()
	teamA := buildCatalogTeam(t, cat, "A", 5, 25)
	teamB := buildCatalogTeam(t, cat, "B", 5, 25)

	driver := battle.NewDriver(battle.NewEngine(battle.NewApplier(cat, nil)))
	result := driver.Fight(teamA, teamB)

	assert.Equal(t, battle.ResultNone, result, "both sides still have living ants after the first exchange")
	require.Len(t, teamA.Fainted, 1)
	require.Len(t, teamB.Fainted, 1)
	assert.Equal(t, "Ant", teamA.Fainted[0].Name)

	survivorsA := teamA.All()
	require.Len(t, survivorsA, 4)
	totalAttack, totalHealth := 0, 0
	for _, p := range survivorsA {
		totalAttack += p.Stats.Attack
		totalHealth += p.Stats.Health
		assert.GreaterOrEqual(t, p.Stats.Health, 0)
	}
	assert.Equal(t, 10, totalAttack, "faint removes one 2-attack ant but the buff replaces exactly 2 attack")
	assert.Equal(t, 5, totalHealth, "faint removes one 1-health ant but the buff replaces exactly 1 health")
}

// TestMosquitoSnipesBeforeFirstClash exercises the start-of-battle
// scenario: a Mosquito removes 1 health from a single enemy before any
// attack happens (spec.md §8's second concrete scenario).
func TestMosquitoSnipesBeforeFirstClash(t *testing.T) {
	cat := catalog.NewMemory()
	mosquito, err := cat.SummonPet("Mosquito", 1)
	require.NoError(t, err)
	filler, err := cat.SummonPet("Ant", 1)
	require.NoError(t, err)
	teamA, err := battle.NewTeam("A", []*battle.Pet{mosquito, filler}, 5)
	require.NoError(t, err)
	teamA.SetSeed(1)

	target, err := cat.SummonPet("Ant", 1)
	require.NoError(t, err)
	target.Stats = stats.New(2, 3)
	teamB, err := battle.NewTeam("B", []*battle.Pet{target}, 5)
	require.NoError(t, err)
	teamB.SetSeed(1)

	engine := battle.NewEngine(battle.NewApplier(cat, nil))
	teamA.PushTrigger(battle.TriggerStartOfBattle)
	teamB.PushTrigger(battle.TriggerStartOfBattle)
	engine.Drain(teamA, teamB)

	assert.Equal(t, 2, target.Stats.Health, "mosquito's start-of-battle snipe removes exactly 1 health before the clash resolves")
}

// TestFightToCompletionTerminatesWithinBound runs a larger, more chaotic
// roster to completion and checks the driver always reaches a terminal
// result within its phase bound rather than looping forever, and that
// every surviving pet's stats stay within the global bounds.
func TestFightToCompletionTerminatesWithinBound(t *testing.T) {
	cat := catalog.NewMemory()
	teamA := buildCatalogTeam(t, cat, "A", 5, 7)
	teamB := buildCatalogTeam(t, cat, "B", 5, 9)

	driver := battle.NewDriver(battle.NewEngine(battle.NewApplier(cat, nil)))
	result := driver.FightToCompletion(teamA, teamB, 50)

	assert.NotEqual(t, battle.ResultNone, result)
	for _, p := range append(teamA.All(), teamB.All()...) {
		assert.GreaterOrEqual(t, p.Stats.Attack, stats.Min)
		assert.LessOrEqual(t, p.Stats.Attack, stats.Max)
		assert.Greater(t, p.Stats.Health, 0, "a living pet's health must be positive")
	}
}

// TestFightIsReproducibleUnderIdenticalSeeds reruns the identical
// matchup from a fresh pair of teams built with the same seed and
// expects the same terminal result and survivor count, per spec.md §8's
// reproducibility invariant.
func TestFightIsReproducibleUnderIdenticalSeeds(t *testing.T) {
	cat := catalog.NewMemory()

	run := func() (battle.FightResult, int, int) {
		teamA := buildCatalogTeam(t, cat, "A", 5, 42)
		teamB := buildCatalogTeam(t, cat, "B", 5, 42)
		driver := battle.NewDriver(battle.NewEngine(battle.NewApplier(cat, nil)))
		result := driver.FightToCompletion(teamA, teamB, 50)
		return result, len(teamA.All()), len(teamB.All())
	}

	r1, a1, b1 := run()
	r2, a2, b2 := run()
	assert.Equal(t, r1, r2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}
