package battle

import (
	"github.com/sirupsen/logrus"

	"github.com/sapbattle/core/internal/stats"
)

// Catalog is the read-only external data surface the applier consults for
// Action::Summon/Gain lookups. The battle core never inspects catalog
// records directly; it only asks for assembled pets/foods. Grounded on
// spec.md §6's catalog contract; concrete implementations live in
// internal/catalog.
type Catalog interface {
	SummonPet(name string, level int) (*Pet, error)
	RandomPetAtTier(tier int) (*Pet, error)
	Food(name string) (*Food, error)
}

// Applier executes single Actions against resolved targets. It holds the
// catalog dependency and logger so the battle package's pure combat
// functions stay free of I/O concerns.
type Applier struct {
	Catalog Catalog
	Log     logrus.FieldLogger
}

// NewApplier constructs an Applier, defaulting to the standard logger
// when log is nil.
func NewApplier(catalog Catalog, log logrus.FieldLogger) *Applier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Applier{Catalog: catalog, Log: log}
}

// Apply executes one activatable effect: it resolves targets per §4.6,
// dispatches the action per §4.7, decrements uses, and clears fainted
// pets on both teams. Newly produced triggers are pushed directly onto
// the queue of the team they concern via Team.PushTrigger.
func (a *Applier) Apply(eff *Effect, ownerTeam *Team, trig Outcome) {
	owner := eff.Owner
	targets := ResolvePosition(owner, ownerTeam, eff.Target, eff.Position, trig)

	a.dispatch(eff, owner, ownerTeam, targets, trig)

	eff.DecrementUses()
	ownerTeam.Clear()
	if ownerTeam.opponent != nil {
		ownerTeam.opponent.Clear()
	}
}

func (a *Applier) dispatch(eff *Effect, owner *Pet, ownerTeam *Team, targets []*Pet, trig Outcome) {
	act := eff.Action
	switch act.Kind {
	case ActionAdd:
		a.applyStatChange(act.StatChange, owner, targets, false)
	case ActionRemove:
		a.applyStatChange(act.StatChange, owner, targets, true)
	case ActionDebuff:
		for _, p := range targets {
			p.Stats = p.Stats.Sub(p.Stats.MulPercent(act.DebuffStats))
		}
	case ActionShuffle:
		a.shuffle(ownerTeam, act.Randomize)
	case ActionSwap:
		a.shuffle(ownerTeam, act.Randomize)
	case ActionPush:
		for _, p := range targets {
			a.teamOf(ownerTeam, p).PushPet(p.Pos, resolveDelta(act.PushPosition))
		}
	case ActionCopy:
		a.applyCopy(act, owner, targets)
	case ActionNegate:
		for _, p := range targets {
			p.Stats = p.Stats.Sub(act.NegateStats)
		}
	case ActionCritical, ActionInvincible, ActionEndure:
		// Read directly by the damage resolver; no-op in the applier.
	case ActionWhale:
		a.applyWhale(act, owner, ownerTeam, targets)
	case ActionTransform:
		a.applyTransform(act, targets)
	case ActionKill:
		for _, p := range targets {
			p.Stats.Health = 0
		}
	case ActionGain:
		a.applyGain(act, ownerTeam, targets)
	case ActionSummon:
		a.applySummon(act, owner, ownerTeam, targets, trig)
	case ActionMultiple:
		for _, sub := range act.Multi {
			sub := sub
			child := *eff
			child.Action = sub
			a.dispatch(&child, owner, ownerTeam, targets, trig)
		}
	case ActionConditional:
		a.applyConditional(act, eff, owner, ownerTeam, targets, trig)
	case ActionExperience:
		for _, p := range targets {
			p.GainExperience(1)
		}
	case ActionRhino:
		a.applyRhino(act, owner, ownerTeam, targets)
	case ActionLynx:
		a.applyLynx(act, owner, targets)
	case ActionVulture:
		a.applyVulture(act, owner, targets)
	case ActionStegosaurus:
		a.applyStegosaurus(act, targets)
	case ActionTapir:
		a.applyTapir(owner, ownerTeam, trig)
	case ActionCockroach:
		a.applyCockroach(act, targets)
	case ActionMoose:
		a.applyMoose(act, targets)
	case ActionFox:
		a.applyFox(act, owner, targets)
	case ActionAddShopStats, ActionProfit, ActionAlterGold, ActionAddShopFood, ActionAddShopPet, ActionFreeRoll:
		// Shop-only; inert during battle (spec.md §4.7).
	default:
		a.Log.WithField("action", act.Kind).Warn("unhandled action kind")
	}
}

func (a *Applier) teamOf(ownerTeam *Team, p *Pet) *Team {
	if p.team != nil {
		return p.team
	}
	return ownerTeam
}

func (a *Applier) applyStatChange(sc StatChangeType, owner *Pet, targets []*Pet, subtract bool) {
	for _, p := range targets {
		var delta stats.Statistics
		switch sc.Kind {
		case StatChangeStatic:
			delta = sc.Static
		case StatChangeSelfMultValue:
			if owner != nil {
				delta = owner.Stats.MulPercent(sc.Percent)
			}
		}
		if subtract {
			p.Stats = p.Stats.Sub(delta)
		} else {
			p.Stats = p.Stats.Add(delta)
		}
	}
}

func resolveDelta(pos Position) int {
	switch pos.Kind {
	case PositionRelative:
		return pos.N
	case PositionNearest:
		return pos.N
	default:
		return 1
	}
}

func (a *Applier) shuffle(team *Team, kind RandomizeType) {
	living := team.All()
	switch kind {
	case RandomizeStats:
		st := make([]stats.Statistics, len(living))
		for i, p := range living {
			st[i] = p.Stats
		}
		team.rng.Shuffle(len(st), func(i, j int) { st[i], st[j] = st[j], st[i] })
		for i, p := range living {
			p.Stats = st[i]
		}
	default: // RandomizePositions
		idx := make([]int, len(living))
		for i := range idx {
			idx[i] = i
		}
		team.rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		reordered := make([]*Pet, len(living))
		for i, j := range idx {
			reordered[i] = living[j]
		}
		for i, p := range reordered {
			p.Pos = i
			team.Friends[i] = p
		}
	}
}

func (a *Applier) applyCopy(act Action, owner *Pet, targets []*Pet) {
	sources := ResolvePosition(owner, owner.team, act.CopyTarget, act.CopyPosition, Outcome{})
	if len(sources) == 0 {
		return
	}
	src := sources[0]
	for _, p := range targets {
		switch act.CopyKind.Kind {
		case CopyPercentStats:
			p.Stats = p.Stats.Add(src.Stats.MulPercent(act.CopyKind.Percent))
		case CopyStats:
			if act.CopyKind.Stats != nil {
				p.Stats = *act.CopyKind.Stats
			} else {
				p.Stats = src.Stats
			}
		case CopyEffect:
			cloned := make([]Effect, len(src.Effects))
			for i, e := range src.Effects {
				cloned[i] = e.Clone()
			}
			p.Effects = cloned
			p.bindEffects()
		case CopyItem:
			p.Item = src.Item.Clone()
		}
	}
}

func (a *Applier) applyWhale(act Action, owner *Pet, ownerTeam *Team, targets []*Pet) {
	if owner == nil || len(targets) == 0 {
		return
	}
	swallowed := targets[0]
	if t := swallowed.team; t != nil && t.Nth(swallowed.Pos) == swallowed {
		t.Friends[swallowed.Pos] = nil
	}
	swallowed.left = true
	swallowed.team = nil
	ownerTeam.Fainted = append(ownerTeam.Fainted, swallowed)
	level := act.WhaleLevel
	if level == 0 {
		level = swallowed.Level
	}
	owner.onFaintSummon = NewPet(swallowed.Name, swallowed.Stats, swallowed.Tier, level)
	owner.onFaintSummon.Effects = swallowed.Effects
}

func (a *Applier) applyTransform(act Action, targets []*Pet) {
	for _, p := range targets {
		st := p.Stats
		if act.TransformSt != nil {
			st = *act.TransformSt
		}
		level := act.TransformLvl
		if level == 0 {
			level = p.Level
		}
		replacement := NewPet(act.TransformTo, st, p.Tier, level)
		replacement.Pos = p.Pos
		replacement.team = p.team
		replacement.Item = p.Item
		if p.team != nil {
			p.team.Friends[p.Pos] = replacement
		}
		p.left = true
	}
}

func (a *Applier) applyGain(act Action, ownerTeam *Team, targets []*Pet) {
	if a.Catalog == nil {
		return
	}
	var name string
	switch act.GainKind.Kind {
	case GainNoItem:
		for _, p := range targets {
			p.Item = nil
		}
		return
	case GainSelfItem, GainStoredItem:
		name = act.GainKind.Name
	default:
		name = act.GainKind.Name
	}
	food, err := a.Catalog.Food(name)
	if err != nil {
		a.Log.WithError(err).WithField("food", name).Warn("gain: catalog lookup failed")
		return
	}
	for _, p := range targets {
		clone := food.Clone()
		p.Item = clone
		if clone != nil {
			clone.Ability.Owner = p
		}
		gainPerk := Outcome{Status: StatusGainPerk, Position: PosOnSelf(), AffectedTeam: TargetFriend}
		gainPerk.AffectedPet = p
		if p.team != nil {
			p.team.PushTrigger(gainPerk)
		}
	}
}

func (a *Applier) applySummon(act Action, owner *Pet, ownerTeam *Team, targets []*Pet, trig Outcome) {
	pos := owner.Pos
	if affected := trig.resolveAffected(); affected != nil {
		pos = affected.Pos
	}
	if pos < 0 || pos >= ownerTeam.MaxSize || ownerTeam.Friends[pos] != nil {
		pos = firstEmptySlot(ownerTeam)
		if pos < 0 {
			return
		}
	}
	summon, err := a.buildSummon(act.SummonKind, owner)
	if err != nil || summon == nil {
		if err != nil {
			a.Log.WithError(err).Warn("summon: build failed")
		}
		return
	}
	if err := ownerTeam.AddPet(summon, pos); err != nil {
		a.Log.WithError(err).Warn("summon: insertion failed")
		return
	}
	self, anyFriend, anyEnemy := summonTriggers(summon)
	ownerTeam.PushTrigger(self)
	ownerTeam.PushTrigger(anyFriend)
	if ownerTeam.opponent != nil {
		ownerTeam.opponent.PushTrigger(anyEnemy)
	}
}

func firstEmptySlot(team *Team) int {
	for i, p := range team.Friends {
		if p == nil {
			return i
		}
	}
	return -1
}

func (a *Applier) buildSummon(st SummonType, owner *Pet) (*Pet, error) {
	switch st.Kind {
	case SummonQueryPet:
		if a.Catalog == nil {
			return nil, nil
		}
		return a.Catalog.SummonPet(st.Name, 1)
	case SummonDefaultPet:
		if a.Catalog == nil {
			return nil, nil
		}
		return a.Catalog.SummonPet(st.Name, 1)
	case SummonCustomPet:
		return NewPet(st.Name, st.Stats, 0, st.Level), nil
	case SummonSelfPet:
		if owner == nil {
			return nil, nil
		}
		return NewPet(owner.Name, st.Stats, owner.Tier, owner.Level), nil
	case SummonSelfTierPet:
		if a.Catalog == nil || owner == nil {
			return nil, nil
		}
		return a.Catalog.RandomPetAtTier(owner.Tier)
	default:
		return nil, nil
	}
}

func (a *Applier) applyConditional(act Action, eff *Effect, owner *Pet, ownerTeam *Team, targets []*Pet, trig Outcome) {
	c := act.Conditional
	if c == nil {
		return
	}
	switch c.Logic.Kind {
	case LogicForEach:
		n := a.conditionCount(c.Logic.Condition, owner, ownerTeam)
		for i := 0; i < n; i++ {
			child := *eff
			child.Action = c.IfTrue
			a.dispatch(&child, owner, ownerTeam, targets, trig)
		}
	case LogicIf:
		if a.evalCondition(c.Logic.Condition, owner, ownerTeam, trig) {
			child := *eff
			child.Action = c.IfTrue
			a.dispatch(&child, owner, ownerTeam, targets, trig)
		} else if c.IfFalse.Kind != ActionNone {
			child := *eff
			child.Action = c.IfFalse
			a.dispatch(&child, owner, ownerTeam, targets, trig)
		}
	case LogicIfNot:
		if !a.evalCondition(c.Logic.Condition, owner, ownerTeam, trig) {
			child := *eff
			child.Action = c.IfTrue
			a.dispatch(&child, owner, ownerTeam, targets, trig)
		} else if c.IfFalse.Kind != ActionNone {
			child := *eff
			child.Action = c.IfFalse
			a.dispatch(&child, owner, ownerTeam, targets, trig)
		}
	case LogicIfAny:
		if len(targets) > 0 {
			child := *eff
			child.Action = c.IfTrue
			a.dispatch(&child, owner, ownerTeam, targets, trig)
		}
	}
}

// evalCondition evaluates ConditionType::Pet/Team (Shop is always false,
// per spec.md §4.7).
func (a *Applier) evalCondition(c ConditionType, owner *Pet, ownerTeam *Team, trig Outcome) bool {
	switch c.Kind {
	case ConditionPet:
		matches := filterCondition(candidatePets(ownerTeam, c.PetTarget), owner, trig, c.PetCond)
		return len(matches) > 0
	case ConditionTeam:
		return evalTeamCondition(c.Team, ownerTeam)
	default: // ConditionShop
		return false
	}
}

func (a *Applier) conditionCount(c ConditionType, owner *Pet, ownerTeam *Team) int {
	switch c.Kind {
	case ConditionPet:
		return len(filterCondition(candidatePets(ownerTeam, c.PetTarget), owner, Outcome{}, c.PetCond))
	case ConditionTeam:
		if evalTeamCondition(c.Team, ownerTeam) {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func evalTeamCondition(tc TeamCondition, team *Team) bool {
	switch tc.Kind {
	case TeamConditionNumberPets:
		return len(team.All()) == tc.N
	case TeamConditionNumberPetsLessEqual:
		return len(team.All()) <= tc.N
	case TeamConditionPrevFaintsMultiple:
		return tc.N > 0 && team.Faints > 0 && team.Faints%tc.N == 0
	case TeamConditionTurnGreaterEqual:
		return team.CurrTurn >= tc.N
	default:
		return false
	}
}
