// Package stats implements the two-field (attack, health) statistics
// algebra shared by every pet, food ability, and effect action. Grounded
// on original_source/src/lib/battle/stats.rs (Statistics add/sub/mul/
// invert/comp_set_value/clamp), translated from Rust operator overloads
// into named Go methods.
package stats

import "math"

// Min and Max bound a pet's resting attack/health.
const (
	Min = 0
	Max = 50
)

// Statistics is an attack/health pair.
type Statistics struct {
	Attack int
	Health int
}

// New builds a Statistics pair.
func New(attack, health int) Statistics {
	return Statistics{Attack: attack, Health: health}
}

// Clamp restricts both fields to [min, max] in place and returns the
// receiver for chaining.
func (s *Statistics) Clamp(min, max int) *Statistics {
	s.Attack = clampInt(s.Attack, min, max)
	s.Health = clampInt(s.Health, min, max)
	return s
}

// Clamped returns a copy of s clamped to [min, max].
func (s Statistics) Clamped(min, max int) Statistics {
	s.Clamp(min, max)
	return s
}

// Add returns the component-wise sum clamped to [Min, Max].
func (s Statistics) Add(rhs Statistics) Statistics {
	return Statistics{
		Attack: clampInt(s.Attack+rhs.Attack, Min, Max),
		Health: clampInt(s.Health+rhs.Health, Min, Max),
	}
}

// Sub returns the component-wise difference clamped to [Min, Max].
func (s Statistics) Sub(rhs Statistics) Statistics {
	return Statistics{
		Attack: clampInt(s.Attack-rhs.Attack, Min, Max),
		Health: clampInt(s.Health-rhs.Health, Min, Max),
	}
}

// MulPercent treats rhs as a percentage of s, rounding half to even, and
// clamps the result to [Min, Max]. rhs=New(0,50) halves health only.
func (s Statistics) MulPercent(rhs Statistics) Statistics {
	return Statistics{
		Attack: clampInt(roundHalfEven(float64(s.Attack)*float64(rhs.Attack)/100.0), Min, Max),
		Health: clampInt(roundHalfEven(float64(s.Health)*float64(rhs.Health)/100.0), Min, Max),
	}
}

// Invert swaps attack and health in place and returns the receiver.
func (s *Statistics) Invert() *Statistics {
	s.Attack, s.Health = s.Health, s.Attack
	return s
}

// Inverted returns a copy of s with attack and health swapped.
func (s Statistics) Inverted() Statistics {
	s.Invert()
	return s
}

// CompSetValue replaces each field of s with the matching field of other
// wherever s's current value is <= min.
func (s *Statistics) CompSetValue(other Statistics, min int) *Statistics {
	if s.Attack <= min {
		s.Attack = other.Attack
	}
	if s.Health <= min {
		s.Health = other.Health
	}
	return s
}

// Healthier reports whether s has strictly more health than other.
func (s Statistics) Healthier(other Statistics) bool { return s.Health > other.Health }

// Iller reports whether s has strictly less health than other.
func (s Statistics) Iller(other Statistics) bool { return s.Health < other.Health }

// Stronger reports whether s has strictly more attack than other.
func (s Statistics) Stronger(other Statistics) bool { return s.Attack > other.Attack }

// Weaker reports whether s has strictly less attack than other.
func (s Statistics) Weaker(other Statistics) bool { return s.Attack < other.Attack }

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
