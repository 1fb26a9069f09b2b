package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/stats"
)

func oneUse() *int { n := 1; return &n }

func TestEffectActivatableRespectsUses(t *testing.T) {
	zero := 0
	eff := battle.Effect{Uses: &zero}
	assert.False(t, eff.Activatable())

	eff.Uses = oneUse()
	assert.True(t, eff.Activatable())
	eff.DecrementUses()
	assert.False(t, eff.Activatable())
}

func TestEffectCloneIndependentUses(t *testing.T) {
	orig := battle.Effect{Uses: oneUse()}
	clone := orig.Clone()
	clone.DecrementUses()
	assert.True(t, orig.Activatable(), "decrementing the clone must not affect the original")
	assert.False(t, clone.Activatable())
}

func TestFoodRemoveUsesIsNoOpWhenUnlimited(t *testing.T) {
	f := &battle.Food{Name: "Garlic", Ability: battle.Effect{}}
	f.RemoveUses(5)
	assert.True(t, f.Active())
}

func TestFoodRemoveUsesExhausts(t *testing.T) {
	f := &battle.Food{Name: "Coconut", Ability: battle.Effect{Uses: oneUse()}}
	assert.True(t, f.Active())
	f.RemoveUses(1)
	assert.False(t, f.Active())
}

func TestPetLevelIsFunctionOfExp(t *testing.T) {
	assert.Equal(t, 1, battle.LevelForExp(0))
	assert.Equal(t, 2, battle.LevelForExp(2))
	assert.Equal(t, 3, battle.LevelForExp(5))
}

func TestGainExperienceCapsAndReportsLevelUp(t *testing.T) {
	p := battle.NewPet("Ant", stats.New(2, 1), 1, 1)
	leveled := p.GainExperience(2)
	assert.True(t, leveled)
	assert.Equal(t, 2, p.Level)

	leveled = p.GainExperience(100)
	assert.True(t, leveled)
	assert.Equal(t, 3, p.Level)
}
