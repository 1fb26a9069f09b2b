package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapbattle/core/internal/catalog"
)

func TestSummonPetBuildsBaseStatsAndEffects(t *testing.T) {
	cat := catalog.NewMemory()
	p, err := cat.SummonPet("Ant", 1)
	require.NoError(t, err)
	assert.Equal(t, "Ant", p.Name)
	assert.Equal(t, 2, p.Stats.Attack)
	assert.Equal(t, 1, p.Stats.Health)
	require.Len(t, p.Effects, 1)
}

func TestSummonPetUnknownNameErrors(t *testing.T) {
	cat := catalog.NewMemory()
	_, err := cat.SummonPet("Nonexistent", 1)
	assert.Error(t, err)
}

func TestSummonPetClonesEffectsPerPet(t *testing.T) {
	cat := catalog.NewMemory()
	a, err := cat.SummonPet("Ant", 1)
	require.NoError(t, err)
	b, err := cat.SummonPet("Ant", 1)
	require.NoError(t, err)

	a.Effects[0].DecrementUses()
	assert.True(t, b.Effects[0].Activatable(), "decrementing one pet's effect uses must not affect another pet built from the same template")
}

func TestRandomPetAtTierOnlyReturnsMatchingTier(t *testing.T) {
	cat := catalog.NewMemory()
	for i := 0; i < 20; i++ {
		p, err := cat.RandomPetAtTier(1)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Tier)
	}
}

func TestRandomPetAtTierUnknownTierErrors(t *testing.T) {
	cat := catalog.NewMemory()
	_, err := cat.RandomPetAtTier(99)
	assert.Error(t, err)
}

func TestFoodBuildsKnownAbility(t *testing.T) {
	cat := catalog.NewMemory()
	f, err := cat.Food("Coconut")
	require.NoError(t, err)
	assert.Equal(t, "Coconut", f.Name)
	assert.True(t, f.Active())
}

func TestFoodUnknownNameErrors(t *testing.T) {
	cat := catalog.NewMemory()
	_, err := cat.Food("Nonexistent")
	assert.Error(t, err)
}

func TestFoodHonorsEndOfBattleFlag(t *testing.T) {
	cat := catalog.NewMemory()
	honey, err := cat.Food("Honey")
	require.NoError(t, err)
	assert.True(t, honey.EndOfBattle)

	bone, err := cat.Food("Meat Bone")
	require.NoError(t, err)
	assert.False(t, bone.EndOfBattle)
}
