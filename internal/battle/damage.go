package battle

import (
	"math/rand"

	"github.com/sapbattle/core/internal/stats"
)

// MinDamage and MaxDamage bound any single attack (spec.md §4: "global
// 1..=150 damage clamp"). MinDamage is overridden to 0 when the receiving
// pet holds Coconut or Melon; MaxDamage is overridden to 0 when the
// receiving pet holds an active Action::Invincible (Coconut).
const (
	MinDamage = 1
	MaxDamage = 150
)

var fullDmgNegationFoods = map[string]bool{"Coconut": true, "Melon": true}

func maxDmgReceived(p *Pet) int {
	if p.HasActiveAbility(ActionInvincible) {
		return 0
	}
	return MaxDamage
}

func minDmgReceived(p *Pet) int {
	if p.Item != nil && fullDmgNegationFoods[p.Item.Name] {
		return 0
	}
	return MinDamage
}

// foodStatModifier computes the Statistics contribution of a pet's held
// food to a damage calculation, per spec.md §4.4 step 1. Only foods whose
// ability trigger is AnyDmgCalc/AttackDmgCalc with Position::OnSelf and
// remaining uses apply.
func foodStatModifier(p *Pet) stats.Statistics {
	if p.Item == nil {
		return stats.Statistics{}
	}
	ab := p.Item.Ability
	if ab.Trigger.Position.Kind != PositionOnSelf {
		return stats.Statistics{}
	}
	if ab.Trigger.Status != StatusAnyDmgCalc && ab.Trigger.Status != StatusAttackDmgCalc {
		return stats.Statistics{}
	}
	if !ab.Activatable() {
		return stats.Statistics{}
	}
	switch ab.Action.Kind {
	case ActionAdd, ActionRemove:
		switch ab.Action.StatChange.Kind {
		case StatChangeStatic:
			return ab.Action.StatChange.Static
		case StatChangeSelfMultValue:
			return p.Stats.MulPercent(ab.Action.StatChange.Percent)
		}
	case ActionNegate:
		return ab.Action.NegateStats.Inverted()
	case ActionCritical:
		// Fortune Cookie: double the pet's current attack with
		// probability pct/100 (SPEC_FULL.md Open Question: doubles the
		// base attack value read directly off the pet, not a chained
		// modifier — matches original_source's get_food_stat_modifier).
		pct := ab.Action.CritPercent
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		rng := rand.New(rand.NewSource(p.Seed))
		if rng.Intn(100) < pct {
			return stats.Statistics{Attack: p.Stats.Attack}
		}
		return stats.Statistics{}
	}
	return stats.Statistics{}
}

// finalDamage applies death's touch (Peanut) and endure (Pepper) to a raw
// damage amount, per spec.md §4.4 steps 5-6.
func finalDamage(pet *Pet, dmg int, enemy *Pet) int {
	if dmg != 0 && enemy.HasActiveAbility(ActionKill) && pet.Stats.Health > 1 {
		return 0
	}
	health := pet.Stats.Health - dmg
	if pet.HasActiveAbility(ActionEndure) {
		return clampInt(health, 1, stats.Max)
	}
	return clampInt(health, stats.Min, stats.Max)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// CalculateNewHealth computes (attacker's new health, defender's new
// health) for a direct attack, per spec.md §4.4 steps 1-6, without
// mutating either pet or decrementing food uses.
func CalculateNewHealth(attacker, defender *Pet) (int, int) {
	attMod := foodStatModifier(attacker)
	defMod := foodStatModifier(defender)

	minDmgToDefender := minDmgReceived(defender)
	maxDmgToDefender := maxDmgReceived(defender)
	minDmgToAttacker := minDmgReceived(attacker)
	maxDmgToAttacker := maxDmgReceived(attacker)

	dmgToDefender := clampInt(attacker.Stats.Attack+attMod.Attack-defMod.Health, minDmgToDefender, maxDmgToDefender)
	dmgToAttacker := clampInt(defender.Stats.Attack+defMod.Attack-attMod.Health, minDmgToAttacker, maxDmgToAttacker)

	newDefenderHealth := finalDamage(defender, dmgToDefender, attacker)
	newAttackerHealth := finalDamage(attacker, dmgToAttacker, defender)
	return newAttackerHealth, newDefenderHealth
}

// AttackOutcome bundles the triggers produced for both sides of a single
// attack or indirect attack.
type AttackOutcome struct {
	Friends   []Outcome
	Opponents []Outcome
}

// getAttackOutcomes classifies the health transition of pet (from its
// current health to newHealth) into faint/hurt/unhurt triggers, per
// spec.md §4.8's hurt/faint/knockout vocabulary.
func getAttackOutcomes(pet *Pet, newHealth int) AttackOutcome {
	healthDiff := clampInt(pet.Stats.Health-newHealth, stats.Min, stats.Max)
	diff := &stats.Statistics{Health: healthDiff}

	var friends, enemies []Outcome
	switch {
	case healthDiff == pet.Stats.Health && healthDiff > 0:
		self, any, ahead := selfFaintTriggers(pet, diff)
		friends = append(friends, self, any, ahead)
		spec, anyEnemy := enemyFaintTriggers(pet, diff)
		enemies = append(enemies, spec, anyEnemy)
	case healthDiff == 0:
		unhurt := TriggerSelfUnhurt
		unhurt.StatDiff = diff
		unhurt.AffectedPet = pet
		friends = append(friends, unhurt)
	default:
		hurt, any := TriggerSelfHurt, TriggerAnyHurt
		hurt.StatDiff, any.StatDiff = diff, diff
		hurt.AffectedPet, any.AffectedPet = pet, pet
		friends = append(friends, hurt, any)
		enemyHurt := TriggerAnyEnemyHurt
		enemyHurt.AffectedPet = pet
		enemies = append(enemies, enemyHurt)
	}
	return AttackOutcome{Friends: friends, Opponents: enemies}
}

// Attack resolves a direct attack between two pets, mutating both pets'
// health and food uses, and returns the triggers produced for each side
// (spec.md §4.4, §4.9 step 4).
func Attack(attacker, defender *Pet) AttackOutcome {
	newAttHealth, newDefHealth := CalculateNewHealth(attacker, defender)

	attacker.Item.RemoveUses(1)
	defender.Item.RemoveUses(1)

	attOutcome := getAttackOutcomes(attacker, newAttHealth)
	defOutcome := getAttackOutcomes(defender, newDefHealth)

	if newAttHealth == 0 {
		ko := TriggerKnockOut
		ko.AffectedPet = defender
		defOutcome.Friends = append(defOutcome.Friends, ko)
	}
	if newDefHealth == 0 {
		ko := TriggerKnockOut
		ko.AffectedPet = attacker
		attOutcome.Friends = append(attOutcome.Friends, ko)
	}

	selfAtk := TriggerSelfAttack
	selfAtk.AffectedPet = attacker
	attOutcome.Friends = append([]Outcome{selfAtk}, attOutcome.Friends...)

	defSelfAtk := TriggerSelfAttack
	defSelfAtk.AffectedPet = defender
	defOutcome.Friends = append([]Outcome{defSelfAtk}, defOutcome.Friends...)

	attacker.Stats.Health = newAttHealth
	defender.Stats.Health = newDefHealth

	friends := append(attOutcome.Friends, defOutcome.Opponents...)
	opponents := append(defOutcome.Friends, attOutcome.Opponents...)

	return AttackOutcome{Friends: friends, Opponents: opponents}
}

// IndirectAttack applies dmg.Attack to pet without an attacking pet
// (projectile damage: Mosquito, Hedgehog's faint snipe), per spec.md
// §4.4's indirect_attack. Only pet's health change produces triggers:
// Friends holds pet's own side's hurt/faint/unhurt triggers and
// Opponents the opposing side's enemy-hurt/enemy-faint triggers.
func IndirectAttack(pet *Pet, dmg stats.Statistics) AttackOutcome {
	if pet.Fainted() {
		return AttackOutcome{}
	}
	mod := foodStatModifier(pet)
	min, max := minDmgReceived(pet), maxDmgReceived(pet)
	incoming := clampInt(dmg.Attack-mod.Health, min, max)

	newHealth := pet.Stats.Health - incoming
	if pet.HasActiveAbility(ActionEndure) {
		newHealth = clampInt(newHealth, 1, stats.Max)
	} else {
		newHealth = clampInt(newHealth, stats.Min, stats.Max)
	}
	pet.Item.RemoveUses(1)

	outcome := getAttackOutcomes(pet, newHealth)
	pet.Stats.Health = clampInt(newHealth, stats.Min, stats.Max)
	return outcome
}
