package battle

import "github.com/sapbattle/core/internal/stats"

// Outcome is a trigger: an event produced by an attack or an effect
// action. Equality for trigger-matching purposes ignores the pet/food
// references and StatDiff — only Status, Position, and team membership
// matter (spec.md §3).
type Outcome struct {
	Status Status

	AffectedTeam   Target
	AfflictingTeam Target
	Position       Position

	// AffectedPet/AfflictingPet carry the identity of the event's
	// participants so effects whose target is "the triggering pet"
	// (Position::TriggerAffected/TriggerAfflicting) can resolve. These
	// play the role of the original implementation's weak references:
	// a *Pet that has left the battle (see Pet.left) is treated as if
	// the reference had failed to upgrade.
	AffectedPet   *Pet
	AfflictingPet *Pet

	StatDiff       *stats.Statistics
	AfflictingFood *Food
}

// Matches reports whether two Outcomes are equal for trigger-matching
// purposes: only Status, Position, and team fields are compared.
func (o Outcome) Matches(other Outcome) bool {
	return o.Status == other.Status &&
		o.Position.Equal(other.Position) &&
		o.AffectedTeam == other.AffectedTeam &&
		o.AfflictingTeam == other.AfflictingTeam
}

// WithAffected returns a copy of o with AffectedPet set to pet.
func (o Outcome) WithAffected(pet *Pet) Outcome {
	o.AffectedPet = pet
	return o
}

// WithAfflicting returns a copy of o with AfflictingPet set to pet.
func (o Outcome) WithAfflicting(pet *Pet) Outcome {
	o.AfflictingPet = pet
	return o
}

// WithStatDiff returns a copy of o with StatDiff set.
func (o Outcome) WithStatDiff(d stats.Statistics) Outcome {
	o.StatDiff = &d
	return o
}

// resolveAffected returns the live pet an Outcome's AffectedPet reference
// points to, or nil if the pet has since left play (fainted, summoned-
// over, or otherwise removed) — the Go analogue of a failed weak-ref
// upgrade (spec.md §9 "Back-references and cycles").
func (o Outcome) resolveAffected() *Pet {
	if o.AffectedPet == nil || o.AffectedPet.left {
		return nil
	}
	return o.AffectedPet
}

func (o Outcome) resolveAfflicting() *Pet {
	if o.AfflictingPet == nil || o.AfflictingPet.left {
		return nil
	}
	return o.AfflictingPet
}
