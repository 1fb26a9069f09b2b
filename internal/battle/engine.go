package battle

import "sort"

// Engine drains both teams' trigger queues to quiescence, selecting and
// applying activatable effects in the deterministic order spec.md §4.8
// mandates. Grounded on original_source/src/lib/battle/state.rs's
// trigger-effects loop.
type Engine struct {
	Applier *Applier
}

// NewEngine constructs an Engine around the given Applier.
func NewEngine(applier *Applier) *Engine {
	return &Engine{Applier: applier}
}

// candidate pairs an activatable effect with the team and pet it belongs
// to, for sorting.
type candidate struct {
	eff    *Effect
	pet    *Pet
	team   *Team
	isFood bool
}

// Drain repeatedly pops the front trigger of whichever team has work,
// alternating team-then-opponent when both have queued triggers, until
// both queues are empty.
func (e *Engine) Drain(team, opponent *Team) {
	team.opponent = opponent
	opponent.opponent = team

	for len(team.Triggers) > 0 || len(opponent.Triggers) > 0 {
		if len(team.Triggers) > 0 {
			trig, _ := team.PopTrigger()
			e.resolveOne(team, trig)
		}
		if len(opponent.Triggers) > 0 {
			trig, _ := opponent.PopTrigger()
			e.resolveOne(opponent, trig)
		}
	}
}

// resolveOne enumerates candidates on draining, filters to those
// activatable for trig, sorts by (attack desc, pos asc), and applies each
// in turn.
func (e *Engine) resolveOne(draining *Team, trig Outcome) {
	cands := e.candidates(draining, trig)
	if len(cands) == 0 {
		return
	}
	sort.SliceStable(cands, func(i, j int) bool {
		ai, aj := cands[i].pet, cands[j].pet
		if ai.Stats.Attack != aj.Stats.Attack {
			return ai.Stats.Attack > aj.Stats.Attack
		}
		return ai.Pos < aj.Pos
	})
	for _, c := range cands {
		if !c.eff.Activatable() {
			continue
		}
		e.Applier.Apply(c.eff, draining, trig)
	}
}

// candidates enumerates, in pet-position order, each pet's own effects in
// declaration order followed by its food's ability, filtered to those
// activatable for trig.
func (e *Engine) candidates(team *Team, trig Outcome) []candidate {
	var out []candidate
	for _, p := range team.Friends {
		if p == nil {
			continue
		}
		for i := range p.Effects {
			eff := &p.Effects[i]
			if eff.activatesFor(trig) {
				out = append(out, candidate{eff: eff, pet: p, team: team})
			}
		}
		if p.Item != nil && p.Item.Ability.activatesFor(trig) {
			out = append(out, candidate{eff: &p.Item.Ability, pet: p, team: team, isFood: true})
		}
	}
	return out
}
