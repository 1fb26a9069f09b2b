package battle

import "github.com/sapbattle/core/internal/stats"

// Named trigger values, grounded on original_source/src/lib/effects/
// trigger.rs's pre-built Outcome constants. Rust const structs become Go
// vars (Go has no const struct literals); callers that need a fresh,
// independently-mutable copy should take these by value, which every
// call site here does since Outcome is a plain value type.

var (
	// TriggerStartOfBattle fires once per team at the start of phase 1.
	TriggerStartOfBattle = Outcome{
		Status: StatusStartOfBattle, Position: PosNone(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}
	// TriggerBeforeFirstBattle fires once per team, after the start-of-
	// battle drain but before the first attack (Butterfly).
	TriggerBeforeFirstBattle = Outcome{
		Status: StatusBeforeFirstBattle, Position: PosNone(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}
	TriggerStartTurn = Outcome{
		Status: StatusStartTurn, Position: PosNone(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}
	TriggerEndTurn = Outcome{
		Status: StatusEndTurn, Position: PosNone(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}
	TriggerEndBattle = Outcome{
		Status: StatusEndOfBattle, Position: PosNone(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}

	TriggerAnyDmgCalc = Outcome{
		Status: StatusAnyDmgCalc, Position: PosOnSelf(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}
	TriggerAttackDmgCalc = Outcome{
		Status: StatusAttackDmgCalc, Position: PosOnSelf(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}
	TriggerIndirectDmgCalc = Outcome{
		Status: StatusIndirectAttackDmgCalc, Position: PosOnSelf(),
		AffectedTeam: TargetNone, AfflictingTeam: TargetNone,
	}

	// TriggerSelfUnhurt fires on the attacker/defender that took no net
	// damage this exchange.
	TriggerSelfUnhurt = Outcome{
		Status: StatusNone, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerSelfFaint = Outcome{
		Status: StatusFaint, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyFaint = Outcome{
		Status: StatusFaint, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyEnemyFaint = Outcome{
		Status: StatusFaint, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetEnemy, AfflictingTeam: TargetNone,
	}
	// TriggerSpecEnemyFaint matches a faint at the owner's own mirrored
	// index on the enemy team (Mosquito's snipe target dying, etc.).
	TriggerSpecEnemyFaint = Outcome{
		Status: StatusFaint, Position: PosRelative(0),
		AffectedTeam: TargetEnemy, AfflictingTeam: TargetNone,
	}
	TriggerAheadFaint = Outcome{
		Status: StatusFaint, Position: PosNearest(1),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerKnockOut = Outcome{
		Status: StatusKnockOut, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerSelfHurt = Outcome{
		Status: StatusHurt, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyHurt = Outcome{
		Status: StatusHurt, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyEnemyHurt = Outcome{
		Status: StatusHurt, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetEnemy, AfflictingTeam: TargetNone,
	}
	TriggerAheadHurt = Outcome{
		Status: StatusHurt, Position: PosNearest(1),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}

	TriggerBattleFood = Outcome{
		Status: StatusBattleFoodEffect, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerSelfAttack = Outcome{
		Status: StatusAttack, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerSelfBeforeAttack = Outcome{
		Status: StatusBeforeAttack, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyBeforeAttack = Outcome{
		Status: StatusBeforeAttack,
		Position: PosAny(ItemCondition{
			Kind: ItemConditionNotEqual,
			Eq:   EqualityCondition{Kind: EqualityIsSelf},
		}),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerSelfAfterAttack = Outcome{
		Status: StatusAfterAttack, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAheadAttack = Outcome{
		Status: StatusAttack, Position: PosNearest(1),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}

	TriggerSelfSummon = Outcome{
		Status: StatusSummoned, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnySummon = Outcome{
		Status: StatusSummoned, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyEnemySummon = Outcome{
		Status: StatusSummoned, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetEnemy, AfflictingTeam: TargetNone,
	}
	TriggerAnyPushed = Outcome{
		Status: StatusPushed, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyEnemyPushed = Outcome{
		Status: StatusPushed, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetEnemy, AfflictingTeam: TargetNone,
	}
	TriggerSelfLevelup = Outcome{
		Status: StatusLevelup, Position: PosOnSelf(),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyLevelup = Outcome{
		Status: StatusLevelup, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
	TriggerAnyGainPerk = Outcome{
		Status: StatusGainPerk, Position: PosAny(ItemCondition{}),
		AffectedTeam: TargetFriend, AfflictingTeam: TargetNone,
	}
)

// selfFaintTriggers builds the three friend-side faint triggers (self,
// any-friend, ahead) tagged with the fainter's health-diff stats.
func selfFaintTriggers(pet *Pet, diff *stats.Statistics) [3]Outcome {
	self, any, ahead := TriggerSelfFaint, TriggerAnyFaint, TriggerAheadFaint
	self.StatDiff, any.StatDiff, ahead.StatDiff = diff, diff, diff
	self.AffectedPet, any.AffectedPet, ahead.AffectedPet = pet, pet, pet
	return [3]Outcome{self, any, ahead}
}

// enemyFaintTriggers builds the two enemy-side faint triggers fired when
// a pet on the opposing team faints.
func enemyFaintTriggers(pet *Pet, diff *stats.Statistics) [2]Outcome {
	spec, any := TriggerSpecEnemyFaint, TriggerAnyEnemyFaint
	spec.StatDiff, any.StatDiff = diff, diff
	spec.AffectedPet, any.AffectedPet = pet, pet
	return [2]Outcome{spec, any}
}

// summonTriggers builds the self/any-friend/any-enemy triggers fired when
// pet is summoned onto the battlefield, all tagging pet as AffectedPet.
func summonTriggers(pet *Pet) [3]Outcome {
	self, any, anyEnemy := TriggerSelfSummon, TriggerAnySummon, TriggerAnyEnemySummon
	self.AffectedPet, any.AffectedPet, anyEnemy.AffectedPet = pet, pet, pet
	return [3]Outcome{self, any, anyEnemy}
}
