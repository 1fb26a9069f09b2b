package battle

import "github.com/sapbattle/core/internal/stats"

// The eight animal specials named in spec.md §3/§9 as "rare exceptions
// modeled as named Action variants carrying their parameters," rather
// than as a general ConditionType/LogicType composition. Those that take
// a parameter read it from a payload field on Action (RhinoStats,
// VultureStats, StegoStats, MooseStats, FoxMult); Lynx, Tapir and
// Cockroach derive theirs from team or pet state. None grows the vocabulary
// further, per spec.md §9's "prefer tagged sum types... over an open-
// ended class hierarchy."

// applyRhino resolves Rhino's knockout-chain ability (scenario 5): deal
// RhinoStats-valued damage to the targets already resolved by position
// (the new front enemy after a knockout).
func (a *Applier) applyRhino(act Action, owner *Pet, ownerTeam *Team, targets []*Pet) {
	for _, p := range targets {
		IndirectAttack(p, act.RhinoStats)
	}
}

// applyLynx deals damage to its targets scaled by the sum of the owner's
// team's living pet levels.
func (a *Applier) applyLynx(act Action, owner *Pet, targets []*Pet) {
	if owner == nil || owner.team == nil {
		return
	}
	total := 0
	for _, p := range owner.team.All() {
		total += p.Level
	}
	dmg := stats.Statistics{Attack: total}
	for _, p := range targets {
		IndirectAttack(p, dmg)
	}
}

// applyVulture deals VultureStats-valued damage to its targets (typically
// the lowest-health living enemy), triggered on a friend fainting.
func (a *Applier) applyVulture(act Action, owner *Pet, targets []*Pet) {
	for _, p := range targets {
		IndirectAttack(p, act.VultureStats)
	}
}

// applyStegosaurus adds StegoStats (pre-scaled by the caller, e.g. by
// turn number) directly to its targets' stats.
func (a *Applier) applyStegosaurus(act Action, targets []*Pet) {
	for _, p := range targets {
		p.Stats = p.Stats.Add(act.StegoStats)
	}
}

// applyTapir summons a copy of the most recently fainted friendly pet
// into the owner's slot, consuming it from the team's fainted stack.
func (a *Applier) applyTapir(owner *Pet, ownerTeam *Team, trig Outcome) {
	if owner == nil || len(ownerTeam.Fainted) == 0 {
		return
	}
	last := ownerTeam.Fainted[len(ownerTeam.Fainted)-1]
	ownerTeam.Fainted = ownerTeam.Fainted[:len(ownerTeam.Fainted)-1]
	clone := NewPet(last.Name, last.Stats, last.Tier, last.Level)
	pos := owner.Pos
	if affected := trig.resolveAffected(); affected != nil {
		pos = affected.Pos
	}
	if pos < 0 || pos >= ownerTeam.MaxSize || ownerTeam.Friends[pos] != nil {
		pos = firstEmptySlot(ownerTeam)
	}
	if pos < 0 {
		return
	}
	_ = ownerTeam.AddPet(clone, pos)
	self, anyFriend, anyEnemy := summonTriggers(clone)
	ownerTeam.PushTrigger(self)
	ownerTeam.PushTrigger(anyFriend)
	if ownerTeam.opponent != nil {
		ownerTeam.opponent.PushTrigger(anyEnemy)
	}
}

// applyCockroach grants each target a flat attack buff scaled by its own
// catalog tier, for the classic "before attack, gain attack" pattern.
func (a *Applier) applyCockroach(act Action, targets []*Pet) {
	for _, p := range targets {
		p.Stats = p.Stats.Add(stats.Statistics{Attack: p.Tier})
	}
}

// applyMoose adds MooseStats to its targets, typically triggered on a
// friend fainting to rally the team.
func (a *Applier) applyMoose(act Action, targets []*Pet) {
	for _, p := range targets {
		p.Stats = p.Stats.Add(act.MooseStats)
	}
}

// applyFox multiplies each target's current stats by FoxMult percent and
// adds the result, modeling the steal-and-double pattern.
func (a *Applier) applyFox(act Action, owner *Pet, targets []*Pet) {
	mult := stats.Statistics{Attack: act.FoxMult, Health: act.FoxMult}
	for _, p := range targets {
		p.Stats = p.Stats.Add(p.Stats.MulPercent(mult))
	}
}
