package battle

// FightResult is the terminal (or non-terminal) outcome of one fight
// phase, per spec.md §4.9.
type FightResult int

const (
	// ResultNone means the phase produced no terminal state; the caller
	// must call Fight again.
	ResultNone FightResult = iota
	ResultWin
	ResultLoss
	ResultDraw
)

func (r FightResult) String() string {
	switch r {
	case ResultWin:
		return "Win"
	case ResultLoss:
		return "Loss"
	case ResultDraw:
		return "Draw"
	default:
		return "None"
	}
}

// Driver orchestrates phase-by-phase battles between two teams via an
// Engine, per spec.md §4.9. Grounded on
// original_source/src/lib/teams/combat.rs's fight().
type Driver struct {
	Engine *Engine
}

// NewDriver constructs a Driver around the given Engine.
func NewDriver(engine *Engine) *Driver {
	return &Driver{Engine: engine}
}

// Fight runs one attack round between team and opponent and reports the
// resulting FightResult. Callers loop calling Fight until it returns
// something other than ResultNone.
func (d *Driver) Fight(team, opponent *Team) FightResult {
	team.opponent = opponent
	opponent.opponent = team

	if team.CurrPhase == 0 {
		team.PushTrigger(TriggerStartOfBattle)
		opponent.PushTrigger(TriggerStartOfBattle)
		d.Engine.Drain(team, opponent)

		team.PushTrigger(TriggerBeforeFirstBattle)
		opponent.PushTrigger(TriggerBeforeFirstBattle)
		d.Engine.Drain(team, opponent)
	}

	first, oppFirst := team.First(), opponent.First()
	if first != nil {
		beforeAttack := TriggerSelfBeforeAttack
		beforeAttack.AffectedPet = first
		team.PushTrigger(beforeAttack)
	}
	if oppFirst != nil {
		beforeAttack := TriggerSelfBeforeAttack
		beforeAttack.AffectedPet = oppFirst
		opponent.PushTrigger(beforeAttack)
	}
	d.Engine.Drain(team, opponent)

	first, oppFirst = team.First(), opponent.First()
	if first != nil && oppFirst != nil {
		dmgCalc := TriggerAttackDmgCalc
		dmgCalc.AffectedPet, dmgCalc.AfflictingPet = first, oppFirst
		team.PushTrigger(dmgCalc)
		oppDmgCalc := TriggerAttackDmgCalc
		oppDmgCalc.AffectedPet, oppDmgCalc.AfflictingPet = oppFirst, first
		opponent.PushTrigger(oppDmgCalc)

		outcome := Attack(first, oppFirst)
		team.Triggers = append(team.Triggers, outcome.Friends...)
		opponent.Triggers = append(opponent.Triggers, outcome.Opponents...)

		d.Engine.Drain(team, opponent)

		if ahead := team.Nth(1); ahead != nil && !ahead.Fainted() {
			aheadAttack := TriggerAheadAttack
			aheadAttack.AffectedPet = ahead
			team.PushTrigger(aheadAttack)
		}
		if oppAhead := opponent.Nth(1); oppAhead != nil && !oppAhead.Fainted() {
			aheadAttack := TriggerAheadAttack
			aheadAttack.AffectedPet = oppAhead
			opponent.PushTrigger(aheadAttack)
		}
		d.Engine.Drain(team, opponent)
	}

	team.CurrPhase++
	opponent.CurrPhase++

	teamAlive, oppAlive := len(team.All()) > 0, len(opponent.All()) > 0
	switch {
	case !teamAlive && !oppAlive:
		d.finish(team, opponent)
		return ResultDraw
	case !teamAlive:
		d.finish(team, opponent)
		return ResultLoss
	case !oppAlive:
		d.finish(team, opponent)
		return ResultWin
	default:
		return ResultNone
	}
}

// FightToCompletion calls Fight repeatedly (bounded by maxPhases) and
// returns the terminal result; overflow is reported as a Draw (spec.md
// §5 "a caller wrapping the driver may impose a max-phase limit").
func (d *Driver) FightToCompletion(team, opponent *Team, maxPhases int) FightResult {
	for i := 0; i < maxPhases; i++ {
		if r := d.Fight(team, opponent); r != ResultNone {
			return r
		}
	}
	d.finish(team, opponent)
	return ResultDraw
}

func (d *Driver) finish(team, opponent *Team) {
	team.PushTrigger(TriggerEndBattle)
	opponent.PushTrigger(TriggerEndBattle)
	d.Engine.Drain(team, opponent)
	team.EndOfBattleCleanup()
	opponent.EndOfBattleCleanup()
	team.Record(StatusEndOfBattle, "")
	opponent.Record(StatusEndOfBattle, "")
}
