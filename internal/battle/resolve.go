package battle

// teamsFor picks the friend or enemy team relative to owner's own team,
// per a Target value. Target::Either concatenates both (friend first).
func teamsFor(ownerTeam *Team, target Target) []*Team {
	opp := ownerTeam.opponent
	switch target {
	case TargetFriend:
		return []*Team{ownerTeam}
	case TargetEnemy:
		if opp == nil {
			return nil
		}
		return []*Team{opp}
	case TargetEither:
		if opp == nil {
			return []*Team{ownerTeam}
		}
		return []*Team{ownerTeam, opp}
	default:
		return nil
	}
}

// ResolvePosition implements spec.md §4.6: given an effect owner, its own
// team, the target side, a Position, and the trigger being resolved,
// produce the ordered list of affected pets.
func ResolvePosition(owner *Pet, ownerTeam *Team, target Target, pos Position, trig Outcome) []*Pet {
	switch pos.Kind {
	case PositionOnSelf:
		if owner == nil || owner.left {
			return nil
		}
		return []*Pet{owner}

	case PositionTriggerAffected:
		if p := trig.resolveAffected(); p != nil {
			return []*Pet{p}
		}
		return nil

	case PositionTriggerAfflicting:
		if p := trig.resolveAfflicting(); p != nil {
			return []*Pet{p}
		}
		return nil

	case PositionFirst:
		var out []*Pet
		for _, team := range teamsFor(ownerTeam, target) {
			if p := team.First(); p != nil {
				out = append(out, p)
			}
		}
		return out

	case PositionLast:
		var out []*Pet
		for _, team := range teamsFor(ownerTeam, target) {
			if p := team.Last(); p != nil {
				out = append(out, p)
			}
		}
		return out

	case PositionOpposite:
		if ownerTeam.opponent == nil || owner == nil {
			return nil
		}
		p := ownerTeam.opponent.Nth(owner.Pos)
		if p == nil || p.Fainted() {
			return nil
		}
		return []*Pet{p}

	case PositionAdjacent:
		if owner == nil {
			return nil
		}
		var out []*Pet
		if p := livingAt(ownerTeam, owner.Pos-1); p != nil {
			out = append(out, p)
		}
		if p := livingAt(ownerTeam, owner.Pos+1); p != nil {
			out = append(out, p)
		}
		return out

	case PositionAhead:
		if owner == nil {
			return nil
		}
		var out []*Pet
		for i := 0; i < owner.Pos; i++ {
			if p := livingAt(ownerTeam, i); p != nil {
				out = append(out, p)
			}
		}
		return out

	case PositionRelative:
		if owner == nil {
			return nil
		}
		var out []*Pet
		for _, team := range teamsFor(ownerTeam, target) {
			if p := livingAt(team, owner.Pos+pos.N); p != nil {
				out = append(out, p)
			}
		}
		return out

	case PositionNearest:
		if owner == nil {
			return nil
		}
		return nearest(ownerTeam, owner.Pos, pos.N)

	case PositionRange:
		if owner == nil {
			return nil
		}
		var out []*Pet
		lo, hi := owner.Pos+pos.A, owner.Pos+pos.B
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := lo; i <= hi; i++ {
			if p := livingAt(ownerTeam, i); p != nil {
				out = append(out, p)
			}
		}
		return out

	case PositionAny:
		cands := filterCondition(candidatePets(ownerTeam, target), owner, trig, pos.Condition)
		if len(cands) == 0 {
			return nil
		}
		idx := ownerTeam.rng.Intn(len(cands))
		return []*Pet{cands[idx]}

	case PositionAll:
		return filterCondition(candidatePets(ownerTeam, target), owner, trig, pos.Condition)

	case PositionN:
		cands := filterCondition(candidatePets(ownerTeam, target), owner, trig, pos.Condition)
		if pos.Random {
			shuffled := make([]*Pet, len(cands))
			copy(shuffled, cands)
			ownerTeam.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			cands = shuffled
		}
		if pos.Targets < len(cands) {
			cands = cands[:pos.Targets]
		}
		return cands

	case PositionMultiple:
		var out []*Pet
		for _, sub := range pos.Multiple {
			out = append(out, ResolvePosition(owner, ownerTeam, target, sub, trig)...)
		}
		return out

	case PositionFrontToBack:
		var out []*Pet
		count := 0
		for _, team := range teamsFor(ownerTeam, target) {
			for _, p := range team.All() {
				out = append(out, p)
				if matchesCondition(p, owner, trig, pos.FrontToBack.Condition) {
					count++
				}
				if pos.FrontToBack.Count > 0 && count >= pos.FrontToBack.Count {
					return out
				}
			}
		}
		return out

	default: // PositionNone and anything unrecognized.
		return nil
	}
}

func livingAt(team *Team, idx int) *Pet {
	p := team.Nth(idx)
	if p == nil || p.Fainted() {
		return nil
	}
	return p
}

// nearest walks forward (n>0) or backward (n<0) from pos, collecting up
// to |n| living pets on the owner's own team, never including pos itself.
func nearest(team *Team, pos, n int) []*Pet {
	var out []*Pet
	if n == 0 {
		return out
	}
	step := 1
	if n < 0 {
		step = -1
	}
	want := n
	if want < 0 {
		want = -want
	}
	for i := pos + step; i >= 0 && i < len(team.Friends) && len(out) < want; i += step {
		if p := livingAt(team, i); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// candidatePets enumerates living pets on the resolved team(s), front to
// back, preserving lower-index-first ordering for tie-breaking.
func candidatePets(ownerTeam *Team, target Target) []*Pet {
	var out []*Pet
	for _, team := range teamsFor(ownerTeam, target) {
		out = append(out, team.All()...)
	}
	return out
}

// filterCondition applies an ItemCondition to a candidate slice,
// returning the matches in original order for Multiple/MultipleAll/
// Equal/NotEqual, or the single lower-index extremum for
// Healthiest/Illest/Strongest/Weakest/HighestTier/LowestTier.
func filterCondition(cands []*Pet, owner *Pet, trig Outcome, c ItemCondition) []*Pet {
	switch c.Kind {
	case ItemConditionNone:
		return cands

	case ItemConditionHealthiest:
		return extremum(cands, func(a, b *Pet) bool { return a.Stats.Healthier(b.Stats) })
	case ItemConditionIllest:
		return extremum(cands, func(a, b *Pet) bool { return a.Stats.Iller(b.Stats) })
	case ItemConditionStrongest:
		return extremum(cands, func(a, b *Pet) bool { return a.Stats.Stronger(b.Stats) })
	case ItemConditionWeakest:
		return extremum(cands, func(a, b *Pet) bool { return a.Stats.Weaker(b.Stats) })
	case ItemConditionHighestTier:
		return extremum(cands, func(a, b *Pet) bool { return a.Tier > b.Tier })
	case ItemConditionLowestTier:
		return extremum(cands, func(a, b *Pet) bool { return a.Tier < b.Tier })

	case ItemConditionEqual:
		var out []*Pet
		for _, p := range cands {
			if matchesEquality(p, owner, trig, c.Eq) {
				out = append(out, p)
			}
		}
		return out
	case ItemConditionNotEqual:
		var out []*Pet
		for _, p := range cands {
			if !matchesEquality(p, owner, trig, c.Eq) {
				out = append(out, p)
			}
		}
		return out

	case ItemConditionMultiple:
		seen := make(map[*Pet]bool)
		var out []*Pet
		for _, sub := range c.Multiple {
			for _, p := range filterCondition(cands, owner, trig, sub) {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
		return out
	case ItemConditionMultipleAll:
		out := cands
		for _, sub := range c.Multiple {
			out = filterCondition(out, owner, trig, sub)
		}
		return out

	default:
		return cands
	}
}

// extremum returns a single-element slice holding the first candidate
// (lower index wins ties) for which better(candidate, every other) holds.
func extremum(cands []*Pet, better func(a, b *Pet) bool) []*Pet {
	if len(cands) == 0 {
		return nil
	}
	best := cands[0]
	for _, p := range cands[1:] {
		if better(p, best) {
			best = p
		}
	}
	return []*Pet{best}
}

// matchesCondition reports whether a single pet satisfies c, reusing
// filterCondition's semantics.
func matchesCondition(p *Pet, owner *Pet, trig Outcome, c ItemCondition) bool {
	for _, m := range filterCondition([]*Pet{p}, owner, trig, c) {
		if m == p {
			return true
		}
	}
	return false
}

func matchesEquality(p *Pet, owner *Pet, trig Outcome, eq EqualityCondition) bool {
	switch eq.Kind {
	case EqualityTier:
		return p.Tier == eq.Tier
	case EqualityName:
		return p.Name == eq.Name
	case EqualityTriggerStatus:
		return trig.Status == eq.Status
	case EqualityAction:
		return hasActiveActionKind(p, eq.Action)
	case EqualityIsSelf:
		return p == owner
	default:
		return false
	}
}

// hasActiveActionKind reports whether p currently carries an activatable
// ability of the given kind, either as an owned Effect or as its held
// food's ability — matching original_source's
// EqualityCondition::Action => pet.has_effect_ability(action, false).
func hasActiveActionKind(p *Pet, kind ActionKind) bool {
	if p.HasActiveAbility(kind) {
		return true
	}
	for _, e := range p.Effects {
		if e.Activatable() && e.Action.Kind == kind {
			return true
		}
	}
	return false
}
