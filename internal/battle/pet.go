package battle

import (
	"github.com/google/uuid"
	"github.com/sapbattle/core/internal/stats"
)

// Experience thresholds a pet's level is a pure function of (spec.md §3:
// "level is a pure function of exp"; levels at 2 and 5 experience points).
const (
	expForLevel2 = 2
	expForLevel3 = 5
)

// Pet is a single battle participant: identity, current stats, level/
// experience, held food, its effect list, and a back-reference to the
// team it belongs to (used to realize Position::OnSelf and friends).
type Pet struct {
	ID   string
	Name string
	// Tier is the catalog shop tier, 1..6; tokens use 0.
	Tier int

	Stats stats.Statistics

	Exp   int
	Level int

	Effects []Effect
	Item    *Food

	// Pos is the pet's current slot index, kept in sync with its
	// position in the owning team's slot vector by Team.Clear.
	Pos int

	// Seed drives any pet-scoped RNG (Fortune Cookie crit, etc). Derived
	// from the team's seed at admission time so reproducing a fight with
	// the same team seed reproduces every roll.
	Seed int64

	team *Team

	// left marks that this pet is no longer part of active battle state
	// (fainted and cleared, transformed away, swallowed by Whale). Once
	// true, any Outcome reference to this Pet must be treated as a
	// failed weak-ref upgrade: the effect referencing it is skipped.
	left bool

	// onFaintSummon, if set, is summoned in this pet's slot the moment it
	// faints (Action::Whale's "summon the swallowed pet on faint").
	onFaintSummon *Pet
}

// NewPet constructs a pet with a fresh identity. level must be 1..3.
func NewPet(name string, st stats.Statistics, tier, level int) *Pet {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	p := &Pet{
		ID:    uuid.NewString(),
		Name:  name,
		Tier:  tier,
		Stats: st,
		Level: level,
	}
	p.Stats.Clamp(stats.Min, stats.Max)
	switch level {
	case 2:
		p.Exp = expForLevel2
	case 3:
		p.Exp = expForLevel3
	}
	return p
}

// LevelForExp derives the combat level from an experience total, per
// spec.md §3 ("level is a pure function of exp"; thresholds 2 and 5).
func LevelForExp(exp int) int {
	switch {
	case exp >= expForLevel3:
		return 3
	case exp >= expForLevel2:
		return 2
	default:
		return 1
	}
}

// GainExperience adds exp points (clamped so it never exceeds the
// level-3 threshold) and recomputes Level, returning true if the pet
// leveled up.
func (p *Pet) GainExperience(n int) bool {
	before := p.Level
	p.Exp += n
	if p.Exp > expForLevel3 {
		p.Exp = expForLevel3
	}
	p.Level = LevelForExp(p.Exp)
	return p.Level > before
}

// Fainted reports whether the pet's health has reached zero. Per spec.md
// §3, this is the fainted predicate; removal into the fainted list
// happens on the next Team.Clear.
func (p *Pet) Fainted() bool {
	return p.Stats.Health <= 0
}

// Team returns the team this pet currently belongs to, or nil.
func (p *Pet) Team() *Team { return p.team }

// HasActiveAbility reports whether the pet's held food has the given
// action kind and still has uses remaining (spec.md §4.4 step 1/3/5/6).
func (p *Pet) HasActiveAbility(kind ActionKind) bool {
	return p.Item != nil && p.Item.Ability.Action.Kind == kind && p.Item.Ability.Activatable()
}

// bindEffects sets Owner on every effect the pet carries (and its food's
// ability), and sets AffectedPet on each effect's own Trigger template to
// the pet itself, so Position::OnSelf resolves against the owner
// (spec.md §4.3).
func (p *Pet) bindEffects() {
	for i := range p.Effects {
		p.Effects[i].Owner = p
		p.Effects[i].Trigger.AffectedPet = p
	}
	if p.Item != nil {
		p.Item.Ability.Owner = p
		p.Item.Ability.Trigger.AffectedPet = p
	}
}

// stripTemp removes temp effects. Team.Clear calls it when a fainted pet
// is moved to Fainted, and EndOfBattleCleanup calls it on every
// surviving pet.
func (p *Pet) stripTemp() {
	kept := p.Effects[:0]
	for _, e := range p.Effects {
		if !e.Temp {
			kept = append(kept, e)
		}
	}
	p.Effects = kept
}
