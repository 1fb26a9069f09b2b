package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/stats"
)

func peanut() *battle.Food {
	return &battle.Food{
		Name: "Peanut",
		Ability: battle.Effect{
			Trigger: battle.TriggerAttackDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionKill},
			Uses:   oneUse(),
		},
	}
}

func TestAttackAppliesSymmetricDamage(t *testing.T) {
	a := battle.NewPet("Ant", stats.New(2, 1), 1, 1)
	b := battle.NewPet("Ant", stats.New(2, 1), 1, 1)

	outcome := battle.Attack(a, b)

	assert.Equal(t, 0, a.Stats.Health)
	assert.Equal(t, 0, b.Stats.Health)
	assert.True(t, a.Fainted())
	assert.True(t, b.Fainted())
	assert.NotEmpty(t, outcome.Friends)
	assert.NotEmpty(t, outcome.Opponents)
}

func TestPeanutInstaKillsNonLethalDefender(t *testing.T) {
	attacker := battle.NewPet("Mouse", stats.New(50, 50), 6, 1)
	attacker.Item = peanut()
	defender := battle.NewPet("Turtle", stats.New(10, 50), 4, 1)

	battle.Attack(attacker, defender)

	assert.Equal(t, 0, defender.Stats.Health, "peanut's one-damage death's touch must fully kill regardless of health")
	assert.False(t, attacker.Item.Active(), "peanut's single use is consumed once it triggers")
}

func TestPeanutDoesNotFireOnZeroDamage(t *testing.T) {
	attacker := battle.NewPet("Mouse", stats.New(0, 50), 6, 1)
	attacker.Item = peanut()
	defender := battle.NewPet("Turtle", stats.New(10, 50), 4, 1)
	defender.Item = &battle.Food{
		Name: "Coconut",
		Ability: battle.Effect{
			Trigger: battle.TriggerAnyDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionInvincible},
		},
	}

	_, newDefHealth := battle.CalculateNewHealth(attacker, defender)
	assert.Equal(t, 50, newDefHealth, "the defender's Coconut lowers the hit to 0 damage, and death's touch only fires when dmg != 0")
}

func TestCoconutNegatesAllIncomingDamage(t *testing.T) {
	attacker := battle.NewPet("Lion", stats.New(40, 40), 6, 1)
	defender := battle.NewPet("Turtle", stats.New(5, 10), 4, 1)
	defender.Item = &battle.Food{
		Name: "Coconut",
		Ability: battle.Effect{
			Trigger: battle.TriggerAnyDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionInvincible},
		},
	}

	_, newDefHealth := battle.CalculateNewHealth(attacker, defender)
	assert.Equal(t, 10, newDefHealth, "coconut must fully negate incoming damage")
}

func TestDamageClampsToGlobalCeiling(t *testing.T) {
	attacker := battle.NewPet("Whale", stats.New(stats.Max, stats.Max), 6, 3)
	attacker.Stats.Attack = 500
	defender := battle.NewPet("Ant", stats.New(2, 1), 1, 1)

	_, newDefHealth := battle.CalculateNewHealth(attacker, defender)
	assert.Equal(t, 0, newDefHealth)
}

func TestIndirectAttackIgnoresFaintedPet(t *testing.T) {
	p := battle.NewPet("Ant", stats.New(2, 0), 1, 1)
	outcome := battle.IndirectAttack(p, stats.New(5, 0))
	assert.Empty(t, outcome.Friends)
	assert.Empty(t, outcome.Opponents)
}
