package battle

// Effect is a single declarative ability: "when Trigger fires, resolve
// Target/Position and apply Action to them." Grounded on
// original_source/src/lib/effects/effect.rs.
type Effect struct {
	// Owner is set when the effect is attached to a pet (team.AddPet) and
	// realizes Position::OnSelf. A nil Owner means the effect hasn't been
	// bound yet (e.g. still sitting on a catalog-derived token template).
	Owner *Pet

	Trigger  Outcome
	Target   Target
	Position Position
	Action   Action

	// Uses is the remaining activation count; nil means unlimited.
	// uses == Some(0) (a non-nil *int pointing at 0) must never activate.
	Uses *int
	// Temp effects are stripped when the owning pet is cleared from the
	// team after fainting, and at end-of-battle cleanup.
	Temp bool
}

// Clone returns a deep-enough copy of e suitable for attaching to a new
// pet (e.g. Action::Copy(CopyType::Effect) or constructing a pet from a
// catalog template): Uses is copied by value into a fresh pointer so the
// two effects' use counters don't alias.
func (e Effect) Clone() Effect {
	clone := e
	clone.Owner = nil
	if e.Uses != nil {
		u := *e.Uses
		clone.Uses = &u
	}
	return clone
}

// Activatable reports whether e has activation uses remaining.
func (e Effect) Activatable() bool {
	return e.Uses == nil || *e.Uses > 0
}

// DecrementUses consumes one use, if finite. No-op once uses == 0 or for
// unlimited effects.
func (e *Effect) DecrementUses() {
	if e.Uses != nil && *e.Uses > 0 {
		*e.Uses--
	}
}

// activatesFor implements spec.md §4.2's activation rule: an effect
// activates for trigger t iff either its own trigger structurally matches
// t (Outcome.Matches), or its trigger position is non-specific and the
// position/team/status fields line up. A structural match on an OnSelf
// trigger additionally requires both sides to name the same pet, so a
// pet's self-trigger only fires for events that happen to that pet.
func (e Effect) activatesFor(t Outcome) bool {
	if !e.Activatable() {
		return false
	}
	if e.Trigger.Matches(t) {
		if e.Trigger.Position.Kind == PositionOnSelf && e.Trigger.AffectedPet != nil && t.AffectedPet != nil {
			return e.Trigger.AffectedPet == t.AffectedPet
		}
		return true
	}
	if !e.Trigger.Position.IsNonSpecific() {
		return false
	}
	return e.Trigger.Position.Equal(t.Position) &&
		e.Trigger.AffectedTeam == t.AffectedTeam &&
		e.Trigger.Status == t.Status
}
