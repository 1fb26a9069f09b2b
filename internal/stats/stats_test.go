package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddClamps(t *testing.T) {
	s := New(48, 2).Add(New(10, 10))
	assert.Equal(t, Max, s.Attack)
	assert.Equal(t, 12, s.Health)
}

func TestSubClampsToZero(t *testing.T) {
	s := New(2, 1).Sub(New(5, 5))
	assert.Equal(t, 0, s.Attack)
	assert.Equal(t, 0, s.Health)
}

func TestMulPercentHalves(t *testing.T) {
	s := New(10, 10).MulPercent(New(50, 50))
	assert.Equal(t, 5, s.Attack)
	assert.Equal(t, 5, s.Health)
}

func TestMulPercentRoundsHalfToEven(t *testing.T) {
	s := New(1, 3).MulPercent(New(50, 50))
	assert.Equal(t, 0, s.Attack, "1 * 50%% = 0.5 rounds to even (0)")
	assert.Equal(t, 2, s.Health, "3 * 50%% = 1.5 rounds to even (2)")
}

func TestInverted(t *testing.T) {
	s := New(3, 7).Inverted()
	assert.Equal(t, 7, s.Attack)
	assert.Equal(t, 3, s.Health)
}

func TestCompSetValue(t *testing.T) {
	s := New(0, 5)
	s.CompSetValue(New(9, 9), 0)
	assert.Equal(t, 9, s.Attack)
	assert.Equal(t, 5, s.Health)
}

func TestComparisons(t *testing.T) {
	a, b := New(5, 10), New(3, 2)
	assert.True(t, a.Stronger(b))
	assert.True(t, b.Weaker(a))
	assert.True(t, a.Healthier(b))
	assert.True(t, b.Iller(a))
}
