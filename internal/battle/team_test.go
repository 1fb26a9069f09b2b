package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/stats"
)

func newTeamOfAnts(t *testing.T, n int) *battle.Team {
	t.Helper()
	pets := make([]*battle.Pet, n)
	for i := range pets {
		pets[i] = battle.NewPet("Ant", stats.New(2, 1), 1, 1)
	}
	team, err := battle.NewTeam("team", pets, 5)
	require.NoError(t, err)
	return team
}

func TestNewTeamRejectsOversizedRoster(t *testing.T) {
	pets := make([]*battle.Pet, 6)
	for i := range pets {
		pets[i] = battle.NewPet("Ant", stats.New(2, 1), 1, 1)
	}
	_, err := battle.NewTeam("team", pets, 5)
	assert.Error(t, err)
}

func TestClearCompactsFaintedSlotsToFront(t *testing.T) {
	team := newTeamOfAnts(t, 3)
	team.Nth(0).Stats.Health = 0

	team.Clear()

	require.Len(t, team.Fainted, 1)
	assert.Equal(t, 2, len(team.All()))
	assert.Equal(t, 0, team.Nth(0).Pos)
	assert.Equal(t, 1, team.Nth(1).Pos)
	assert.Nil(t, team.Nth(2))
}

func TestPushPetShiftsIntermediateSlots(t *testing.T) {
	team := newTeamOfAnts(t, 3)
	front := team.Nth(0)

	team.PushPet(0, 2)

	assert.Equal(t, 2, front.Pos)
	assert.Equal(t, front, team.Nth(2))
	require.NotEmpty(t, team.Triggers)
	assert.Equal(t, battle.StatusPushed, team.Triggers[len(team.Triggers)-1].Status)
}

func TestPushPetClampsToRosterBounds(t *testing.T) {
	team := newTeamOfAnts(t, 2)
	back := team.Nth(1)

	team.PushPet(1, 10)

	assert.Equal(t, back, team.Nth(1), "pushing past the last slot must clamp, not drop the pet")
}

func TestRestoreResetsToConstructionSnapshot(t *testing.T) {
	team := newTeamOfAnts(t, 2)
	team.Nth(0).Stats.Health = 0
	team.Clear()
	team.CurrPhase = 3
	team.Faints = 1

	team.Restore()

	assert.Equal(t, 0, team.CurrPhase)
	assert.Equal(t, 0, team.Faints)
	assert.Empty(t, team.Fainted)
	assert.Equal(t, 2, len(team.All()))
	assert.Equal(t, 1, team.Nth(0).Stats.Health)
}

func TestSetSeedDerivesDistinctPerPetSeeds(t *testing.T) {
	team := newTeamOfAnts(t, 3)
	team.SetSeed(10)

	seen := map[int64]bool{}
	for _, p := range team.All() {
		assert.False(t, seen[p.Seed], "per-pet seeds must be distinct")
		seen[p.Seed] = true
	}
}

func TestPopTriggerDrainsInFIFOOrder(t *testing.T) {
	team := newTeamOfAnts(t, 1)
	first := battle.Outcome{Status: battle.StatusHurt}
	second := battle.Outcome{Status: battle.StatusFaint}
	team.PushTrigger(first)
	team.PushTrigger(second)

	o, ok := team.PopTrigger()
	require.True(t, ok)
	assert.Equal(t, battle.StatusHurt, o.Status)

	o, ok = team.PopTrigger()
	require.True(t, ok)
	assert.Equal(t, battle.StatusFaint, o.Status)

	_, ok = team.PopTrigger()
	assert.False(t, ok)
}

func TestEndOfBattleCleanupStripsEndOfBattleFoodsAndTempEffects(t *testing.T) {
	team := newTeamOfAnts(t, 1)
	p := team.Nth(0)
	p.Item = &battle.Food{Name: "Honey", EndOfBattle: true}
	p.Effects = append(p.Effects, battle.Effect{Temp: true})

	team.EndOfBattleCleanup()

	assert.Nil(t, p.Item)
	assert.Empty(t, p.Effects)
	assert.Equal(t, 1, team.CurrTurn)
}
