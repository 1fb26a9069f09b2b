package battle

import (
	"math/rand"

	"github.com/sapbattle/core/internal/errs"
)

// LogEntry is a flattened battle-history record. The driver appends one
// entry per team when a battle ends; individual drained triggers are not
// recorded. It replaces the original implementation's petgraph history
// export (spec.md §3's history.graph) with a plain queryable slice. The
// PrevFaintsMultiple/TurnGreaterEqual team predicates read Team.Faints
// and Team.CurrTurn rather than this slice.
type LogEntry struct {
	Turn   int
	Phase  int
	Status Status
	Pet    string
}

// Team is the fixed-capacity container of pet slots a battle plays out
// over. Grounded on original_source/src/common/team.rs.
type Team struct {
	Name string
	Seed int64

	// Friends holds up to MaxSize slots; a nil entry is an empty slot.
	// Non-nil entries always have Pos equal to their index immediately
	// after Clear runs (spec.md §3 Team invariant).
	Friends []*Pet
	MaxSize int

	Fainted []*Pet

	Triggers []Outcome

	CurrTurn  int
	CurrPhase int
	// Faints counts pets that have fainted on this team so far this
	// battle, used by TeamConditionPrevFaintsMultiple.
	Faints int

	History []LogEntry

	// storedFriends snapshots Friends at construction time so Restore can
	// reset a team to its pre-battle state (spec.md §9 end-of-battle
	// cleanup / §8 round-trip property).
	storedFriends []*Pet

	rng *rand.Rand

	// opponent is set transiently for the duration of Fight so applier
	// code resolving Target::Enemy positions can reach the other side
	// without threading it through every call.
	opponent *Team
}

// NewTeam constructs a team from up to maxSize pets, binding each pet's
// effect owner back-references and assigning seeded per-pet RNG streams
// derived from the team seed.
func NewTeam(name string, pets []*Pet, maxSize int) (*Team, error) {
	if maxSize <= 0 {
		maxSize = 5
	}
	if len(pets) > maxSize {
		return nil, errs.New(errs.InvalidTeamAction, name, "team construction exceeds max_size")
	}
	t := &Team{
		Name:    name,
		MaxSize: maxSize,
		Friends: make([]*Pet, maxSize),
		rng:     rand.New(rand.NewSource(0)),
	}
	for i, p := range pets {
		if p == nil {
			continue
		}
		t.admit(p, i)
	}
	t.snapshotStored()
	return t, nil
}

// SetSeed assigns the team's RNG stream and propagates a derived seed to
// every held pet (Fortune Cookie crit rolls, etc).
func (t *Team) SetSeed(seed int64) {
	t.Seed = seed
	t.rng = rand.New(rand.NewSource(seed))
	for i, p := range t.Friends {
		if p != nil {
			p.Seed = seed + int64(i) + 1
		}
	}
}

func (t *Team) admit(p *Pet, pos int) {
	p.Pos = pos
	p.team = t
	p.left = false
	p.bindEffects()
	t.Friends[pos] = p
}

func (t *Team) snapshotStored() {
	t.storedFriends = make([]*Pet, len(t.Friends))
	for i, p := range t.Friends {
		if p == nil {
			continue
		}
		clone := *p
		clone.Stats = p.Stats
		t.storedFriends[i] = &clone
	}
}

// Restore resets Friends to the construction-time snapshot, clears
// Fainted, and resets the turn/phase counters (spec.md §8 round-trip
// property: stats and effect uses must match the stored snapshot).
func (t *Team) Restore() {
	t.Friends = make([]*Pet, t.MaxSize)
	for i, p := range t.storedFriends {
		if p == nil {
			continue
		}
		clone := *p
		t.admit(&clone, i)
	}
	t.Fainted = nil
	t.Triggers = nil
	t.CurrTurn = 0
	t.CurrPhase = 0
	t.Faints = 0
	t.History = nil
}

// AddPet inserts p at pos, which must currently be empty and within
// range. Returns InvalidTeamAction on overflow or an occupied/ out-of-
// range slot.
func (t *Team) AddPet(p *Pet, pos int) error {
	if pos < 0 || pos >= t.MaxSize {
		return errs.New(errs.InvalidTeamAction, t.Name, "position out of range")
	}
	if t.Friends[pos] != nil {
		return errs.New(errs.InvalidTeamAction, t.Name, "slot occupied")
	}
	t.admit(p, pos)
	return nil
}

// PushPet moves the pet at pos by delta slots (positive moves toward the
// back), shifting intervening pets, and emits a Pushed trigger tagging
// the moved pet. The destination is clamped to the occupied roster (slot
// 0 through the last occupied slot). Out-of-range source positions are a
// no-op.
func (t *Team) PushPet(pos, delta int) {
	if pos < 0 || pos >= t.MaxSize || t.Friends[pos] == nil || delta == 0 {
		return
	}
	p := t.Friends[pos]
	last := pos
	for i := pos + 1; i < len(t.Friends); i++ {
		if t.Friends[i] != nil {
			last = i
		}
	}
	newPos := pos + delta
	if newPos < 0 {
		newPos = 0
	}
	if newPos > last {
		newPos = last
	}
	if newPos == pos {
		return
	}
	// Shift intervening slots toward the vacated position.
	if newPos > pos {
		for i := pos; i < newPos; i++ {
			t.Friends[i] = t.Friends[i+1]
			if t.Friends[i] != nil {
				t.Friends[i].Pos = i
			}
		}
	} else {
		for i := pos; i > newPos; i-- {
			t.Friends[i] = t.Friends[i-1]
			if t.Friends[i] != nil {
				t.Friends[i].Pos = i
			}
		}
	}
	t.Friends[newPos] = p
	p.Pos = newPos

	pushed := Outcome{Status: StatusPushed, Position: PosAny(ItemCondition{}), AffectedTeam: TargetFriend}
	pushed.AffectedPet = p
	t.Triggers = append(t.Triggers, pushed)
}

// SetItem replaces the held food of the pet at pos, if any.
func (t *Team) SetItem(pos int, f *Food) {
	if pos < 0 || pos >= t.MaxSize || t.Friends[pos] == nil {
		return
	}
	t.Friends[pos].Item = f
}

// First returns the front-most living pet, or nil.
func (t *Team) First() *Pet {
	for _, p := range t.Friends {
		if p != nil && !p.Fainted() {
			return p
		}
	}
	return nil
}

// Last returns the back-most living pet, or nil.
func (t *Team) Last() *Pet {
	for i := len(t.Friends) - 1; i >= 0; i-- {
		if t.Friends[i] != nil && !t.Friends[i].Fainted() {
			return t.Friends[i]
		}
	}
	return nil
}

// Nth returns the pet currently occupying slot i, or nil if empty/out of
// range. Unlike First/Last this does not filter on life status.
func (t *Team) Nth(i int) *Pet {
	if i < 0 || i >= len(t.Friends) {
		return nil
	}
	return t.Friends[i]
}

// All returns every living pet, front to back.
func (t *Team) All() []*Pet {
	var out []*Pet
	for _, p := range t.Friends {
		if p != nil && !p.Fainted() {
			out = append(out, p)
		}
	}
	return out
}

// AllSlots returns every occupied slot regardless of life status, front
// to back — used by Clear to decide what moves to Fainted.
func (t *Team) AllSlots() []*Pet {
	var out []*Pet
	for _, p := range t.Friends {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// Clear compacts non-fainted pets to a dense front-filled prefix,
// reassigning Pos to match the new index, and moves fainted pets into
// Fainted in the order they are encountered (spec.md §4.5 clear_team).
func (t *Team) Clear() {
	compacted := make([]*Pet, 0, t.MaxSize)
	for i, p := range t.Friends {
		if p == nil {
			continue
		}
		if p.Fainted() {
			// Action::Whale defers a resurrection into the swallower's own
			// slot the moment it faints (spec.md §4.7); realize it here,
			// before the slot is compacted away.
			if p.onFaintSummon != nil {
				summon := p.onFaintSummon
				p.onFaintSummon = nil
				p.left = true
				p.team = nil
				p.stripTemp()
				t.Fainted = append(t.Fainted, p)
				t.Faints++
				t.admit(summon, i)
				self, anyFriend, anyEnemy := summonTriggers(summon)
				t.PushTrigger(self)
				t.PushTrigger(anyFriend)
				if t.opponent != nil {
					t.opponent.PushTrigger(anyEnemy)
				}
				compacted = append(compacted, summon)
				continue
			}
			p.left = true
			p.team = nil
			p.stripTemp()
			t.Fainted = append(t.Fainted, p)
			t.Faints++
			continue
		}
		compacted = append(compacted, p)
	}
	newFriends := make([]*Pet, t.MaxSize)
	for i, p := range compacted {
		p.Pos = i
		newFriends[i] = p
	}
	t.Friends = newFriends
}

// PopTrigger removes and returns the front of the trigger queue, and
// whether one was present.
func (t *Team) PopTrigger() (Outcome, bool) {
	if len(t.Triggers) == 0 {
		return Outcome{}, false
	}
	o := t.Triggers[0]
	t.Triggers = t.Triggers[1:]
	return o, true
}

// PushTrigger enqueues a trigger for this team.
func (t *Team) PushTrigger(o Outcome) {
	t.Triggers = append(t.Triggers, o)
}

// Enqueue routes an emitted trigger to this team's or the opponent's
// queue based on its AffectedTeam field, relative to perspective (the
// team the trigger was produced on behalf of).
func (t *Team) Enqueue(perspective *Team, o Outcome) {
	switch o.AffectedTeam {
	case TargetEnemy:
		if perspective.opponent != nil {
			perspective.opponent.PushTrigger(o)
		}
	default:
		perspective.PushTrigger(o)
	}
}

// Opponent returns the team set as the transient opponent for Fight, or
// nil outside of a fight.
func (t *Team) Opponent() *Team { return t.opponent }

// RNG returns the team's seeded random source.
func (t *Team) RNG() *rand.Rand { return t.rng }

// Record appends a history entry (spec.md §3 Team.history). The driver
// calls it once per team when a battle finishes.
func (t *Team) Record(status Status, pet string) {
	t.History = append(t.History, LogEntry{Turn: t.CurrTurn, Phase: t.CurrPhase, Status: status, Pet: pet})
}

// EndOfBattleCleanup strips end_of_battle foods from every surviving pet
// and discards temp effects, per spec.md §9.
func (t *Team) EndOfBattleCleanup() {
	for _, p := range t.Friends {
		if p == nil {
			continue
		}
		if p.Item != nil && p.Item.EndOfBattle {
			p.Item = nil
		}
		p.stripTemp()
	}
	t.CurrTurn++
}
