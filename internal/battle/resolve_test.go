package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/stats"
)

func pairedTeams(t *testing.T, friendStats, enemyStats []stats.Statistics) (*battle.Team, *battle.Team) {
	t.Helper()
	friends := make([]*battle.Pet, len(friendStats))
	for i, s := range friendStats {
		friends[i] = battle.NewPet("Friend", s, 1, 1)
	}
	enemies := make([]*battle.Pet, len(enemyStats))
	for i, s := range enemyStats {
		enemies[i] = battle.NewPet("Enemy", s, 1, 1)
	}
	friendTeam, err := battle.NewTeam("friends", friends, 5)
	require.NoError(t, err)
	enemyTeam, err := battle.NewTeam("enemies", enemies, 5)
	require.NoError(t, err)
	// Drain with empty queues is a no-op beyond wiring each team's
	// transient opponent pointer, which ResolvePosition relies on for
	// Target::Enemy/Either.
	battle.NewEngine(battle.NewApplier(nil, nil)).Drain(friendTeam, enemyTeam)
	return friendTeam, enemyTeam
}

func TestResolveOnSelf(t *testing.T) {
	team, _ := pairedTeams(t, []stats.Statistics{stats.New(2, 1)}, []stats.Statistics{stats.New(2, 1)})
	owner := team.Nth(0)
	got := battle.ResolvePosition(owner, team, battle.TargetFriend, battle.PosOnSelf(), battle.Outcome{})
	require.Len(t, got, 1)
	assert.Same(t, owner, got[0])
}

func TestResolveOppositeMirrorsSlot(t *testing.T) {
	team, opp := pairedTeams(t,
		[]stats.Statistics{stats.New(2, 1), stats.New(3, 3)},
		[]stats.Statistics{stats.New(4, 4), stats.New(5, 5)})
	owner := team.Nth(1)
	got := battle.ResolvePosition(owner, team, battle.TargetEnemy, battle.PosOpposite(), battle.Outcome{})
	require.Len(t, got, 1)
	assert.Same(t, opp.Nth(1), got[0])
}

func TestResolveAdjacentSkipsFainted(t *testing.T) {
	team, _ := pairedTeams(t,
		[]stats.Statistics{stats.New(2, 1), stats.New(3, 3), stats.New(4, 4)},
		nil)
	team.Nth(0).Stats.Health = 0
	owner := team.Nth(1)
	got := battle.ResolvePosition(owner, team, battle.TargetFriend, battle.PosAdjacent(), battle.Outcome{})
	require.Len(t, got, 1)
	assert.Same(t, team.Nth(2), got[0])
}

func TestResolveAllWithHealthiestCondition(t *testing.T) {
	team, _ := pairedTeams(t,
		[]stats.Statistics{stats.New(2, 1), stats.New(2, 9), stats.New(2, 5)},
		nil)
	got := battle.ResolvePosition(team.Nth(0), team, battle.TargetFriend,
		battle.PosAll(battle.ItemCondition{Kind: battle.ItemConditionHealthiest}), battle.Outcome{})
	require.Len(t, got, 1)
	assert.Same(t, team.Nth(1), got[0])
}

func TestResolveNWithoutReplacementTakesPrefix(t *testing.T) {
	team, _ := pairedTeams(t,
		[]stats.Statistics{stats.New(2, 1), stats.New(2, 1), stats.New(2, 1)},
		nil)
	got := battle.ResolvePosition(team.Nth(0), team, battle.TargetFriend,
		battle.PosN(battle.ItemCondition{}, 2, false), battle.Outcome{})
	assert.Len(t, got, 2)
}

func TestResolveMultipleUnionsSubPositions(t *testing.T) {
	team, _ := pairedTeams(t,
		[]stats.Statistics{stats.New(2, 1), stats.New(2, 1), stats.New(2, 1)},
		nil)
	owner := team.Nth(0)
	got := battle.ResolvePosition(owner, team, battle.TargetFriend,
		battle.PosMultiple(battle.PosOnSelf(), battle.PosNearest(1)), battle.Outcome{})
	assert.Len(t, got, 2)
}
