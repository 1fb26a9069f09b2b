package catalog

import (
	"fmt"
	"math/rand"

	"github.com/sapbattle/core/internal/battle"
	"github.com/sapbattle/core/internal/errs"
	"github.com/sapbattle/core/internal/stats"
)

// uses returns a *int pointer for Effect.Uses, for the common case of a
// small fixed activation budget.
func uses(n int) *int { return &n }

// template bundles a PetRecord with the effect-builder that lowers its
// (trigger, description) into the closed battle vocabulary — in a real
// deployment this lowering is done once offline by the text-to-effect
// parser spec.md §6 keeps external; here it is inlined for the handful
// of pets the seed catalog carries.
type template struct {
	record  PetRecord
	effects func(base stats.Statistics) []battle.Effect
}

// Memory is an in-memory, process-wide seed catalog: a handful of named
// pets and foods sufficient to reproduce spec.md §8's concrete scenarios,
// loaded once at construction and safe to share across battles (spec.md
// §5 "Catalog").
type Memory struct {
	pets  map[string]template
	foods map[string]FoodRecord
	rng   *rand.Rand
}

// NewMemory builds the seed catalog.
func NewMemory() *Memory {
	m := &Memory{
		pets:  make(map[string]template),
		foods: make(map[string]FoodRecord),
		rng:   rand.New(rand.NewSource(1)),
	}
	m.seedPets()
	m.seedFoods()
	return m
}

func (m *Memory) seedPets() {
	m.pets["Ant"] = template{
		record: PetRecord{Name: "Ant", Tier: 1, Attack: 2, Health: 1, Lvl: 1, Cost: 3},
		effects: func(base stats.Statistics) []battle.Effect {
			return []battle.Effect{{
				Trigger:  battle.TriggerSelfFaint,
				Target:   battle.TargetFriend,
				Position: battle.PosAny(battle.ItemCondition{}),
				Action: battle.Action{
					Kind:       battle.ActionAdd,
					StatChange: battle.StatChangeType{Kind: battle.StatChangeStatic, Static: stats.New(2, 1)},
				},
				Uses: uses(1),
			}}
		},
	}
	m.pets["Mosquito"] = template{
		record: PetRecord{Name: "Mosquito", Tier: 1, Attack: 2, Health: 2, Lvl: 1, Cost: 3, NTriggers: 1},
		effects: func(base stats.Statistics) []battle.Effect {
			return []battle.Effect{{
				Trigger:  battle.TriggerStartOfBattle,
				Target:   battle.TargetEnemy,
				Position: battle.PosN(battle.ItemCondition{}, 1, true),
				Action: battle.Action{
					Kind:       battle.ActionRemove,
					StatChange: battle.StatChangeType{Kind: battle.StatChangeStatic, Static: stats.New(0, 1)},
				},
				Uses: uses(1),
			}}
		},
	}
	m.pets["Horse"] = template{
		record: PetRecord{Name: "Horse", Tier: 1, Attack: 2, Health: 1, Lvl: 1, Cost: 3},
		effects: func(base stats.Statistics) []battle.Effect {
			return []battle.Effect{{
				Trigger:  battle.TriggerAnySummon,
				Target:   battle.TargetFriend,
				Position: battle.PosTriggerAffected(),
				Action: battle.Action{
					Kind:       battle.ActionAdd,
					StatChange: battle.StatChangeType{Kind: battle.StatChangeStatic, Static: stats.New(1, 0)},
				},
				Temp: true,
			}}
		},
	}
	m.pets["Cricket"] = template{
		record: PetRecord{Name: "Cricket", Tier: 1, Attack: 1, Health: 2, Lvl: 1, Cost: 3},
		effects: func(base stats.Statistics) []battle.Effect {
			return []battle.Effect{{
				Trigger:  battle.TriggerSelfFaint,
				Target:   battle.TargetFriend,
				Position: battle.PosTriggerAffected(),
				Action: battle.Action{
					Kind: battle.ActionSummon,
					SummonKind: battle.SummonType{
						Kind:  battle.SummonCustomPet,
						Name:  "Zombie Cricket",
						Stats: stats.New(1, 1),
						Level: 1,
					},
				},
				Uses: uses(1),
			}}
		},
	}
	m.pets["Zombie Cricket"] = template{
		record:  PetRecord{Name: "Zombie Cricket", Tier: 0, Attack: 1, Health: 1, Lvl: 1},
		effects: func(base stats.Statistics) []battle.Effect { return nil },
	}
	m.pets["Hedgehog"] = template{
		record: PetRecord{Name: "Hedgehog", Tier: 1, Attack: 3, Health: 2, Lvl: 1, Cost: 3},
		effects: func(base stats.Statistics) []battle.Effect {
			return []battle.Effect{{
				Trigger:  battle.TriggerSelfFaint,
				Target:   battle.TargetEither,
				Position: battle.PosAll(battle.ItemCondition{}),
				Action: battle.Action{
					Kind: battle.ActionRemove,
					StatChange: battle.StatChangeType{
						Kind:   battle.StatChangeStatic,
						Static: stats.New(0, base.Attack),
					},
				},
				Uses: uses(1),
			}}
		},
	}
	m.pets["Blowfish"] = template{
		record: PetRecord{Name: "Blowfish", Tier: 1, Attack: 3, Health: 5, Lvl: 1, Cost: 3},
		effects: func(base stats.Statistics) []battle.Effect {
			return []battle.Effect{{
				Trigger:  battle.TriggerSelfHurt,
				Target:   battle.TargetEnemy,
				Position: battle.PosN(battle.ItemCondition{}, 1, true),
				Action: battle.Action{
					Kind: battle.ActionRemove,
					StatChange: battle.StatChangeType{
						Kind:   battle.StatChangeStatic,
						Static: stats.New(0, base.Attack),
					},
				},
			}}
		},
	}
	m.pets["Rhino"] = template{
		record: PetRecord{Name: "Rhino", Tier: 3, Attack: 4, Health: 8, Lvl: 1, Cost: 3},
		effects: func(base stats.Statistics) []battle.Effect {
			return []battle.Effect{{
				Trigger:  battle.TriggerKnockOut,
				Target:   battle.TargetEnemy,
				Position: battle.PosFirst(),
				Action: battle.Action{
					Kind:       battle.ActionRhino,
					RhinoStats: stats.New(int(float64(base.Attack)*1.5), 0),
				},
			}}
		},
	}
}

func (m *Memory) seedFoods() {
	m.foods["Meat Bone"] = FoodRecord{Name: "Meat Bone", Tier: 1, Holdable: true, EffectAtk: 3, Cost: 3}
	m.foods["Garlic"] = FoodRecord{Name: "Garlic", Tier: 1, Holdable: true, EffectHealth: 2, Cost: 3}
	m.foods["Coconut"] = FoodRecord{Name: "Coconut", Tier: 3, Holdable: true, SingleUse: true, Cost: 3}
	m.foods["Melon"] = FoodRecord{Name: "Melon", Tier: 2, Holdable: true, EffectHealth: 20, Cost: 3}
	m.foods["Peanut"] = FoodRecord{Name: "Peanut", Tier: 3, Holdable: true, Cost: 3}
	m.foods["Fortune Cookie"] = FoodRecord{Name: "Fortune Cookie", Tier: 4, Holdable: true, Cost: 3}
	m.foods["Pepper"] = FoodRecord{Name: "Pepper", Tier: 2, Holdable: true, Cost: 3}
	m.foods["Honey"] = FoodRecord{Name: "Honey", Tier: 1, Holdable: true, EndOfBattle: true, Cost: 3}
}

// SummonPet builds a pet by catalog name at the given combat level.
func (m *Memory) SummonPet(name string, level int) (*battle.Pet, error) {
	tmpl, ok := m.pets[name]
	if !ok {
		return nil, errs.New(errs.CatalogFailure, name, "unknown pet name")
	}
	base := stats.New(tmpl.record.Attack, tmpl.record.Health)
	p := battle.NewPet(name, base, tmpl.record.Tier, level)
	p.Effects = tmpl.effects(base)
	return p, nil
}

// RandomPetAtTier returns a uniformly random seed-catalog pet at the
// given tier, or an error if none exist at that tier.
func (m *Memory) RandomPetAtTier(tier int) (*battle.Pet, error) {
	var names []string
	for name, tmpl := range m.pets {
		if tmpl.record.Tier == tier {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, errs.New(errs.CatalogFailure, fmt.Sprintf("tier %d", tier), "no pets at tier")
	}
	return m.SummonPet(names[m.rng.Intn(len(names))], 1)
}

// Food builds a held-food value by catalog name.
func (m *Memory) Food(name string) (*battle.Food, error) {
	rec, ok := m.foods[name]
	if !ok {
		return nil, errs.New(errs.CatalogFailure, name, "unknown food name")
	}
	return buildFood(rec), nil
}

func buildFood(rec FoodRecord) *battle.Food {
	f := &battle.Food{Name: rec.Name, Tier: rec.Tier, EndOfBattle: rec.EndOfBattle}
	switch rec.Name {
	case "Meat Bone":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerAttackDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionAdd, StatChange: battle.StatChangeType{Kind: battle.StatChangeStatic, Static: stats.New(rec.EffectAtk, 0)}},
		}
	case "Garlic":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerAnyDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionNegate, NegateStats: stats.New(rec.EffectHealth, 0)},
		}
	case "Coconut":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerAnyDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionInvincible}, Uses: uses(1),
		}
	case "Melon":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerAnyDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionInvincible}, Uses: uses(1),
		}
	case "Peanut":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerAttackDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionKill}, Uses: uses(1),
		}
	case "Fortune Cookie":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerAttackDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionCritical, CritPercent: 25},
		}
	case "Pepper":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerAnyDmgCalc, Target: battle.TargetFriend, Position: battle.PosOnSelf(),
			Action: battle.Action{Kind: battle.ActionEndure}, Uses: uses(1),
		}
	case "Honey":
		f.Ability = battle.Effect{
			Trigger: battle.TriggerSelfFaint, Target: battle.TargetFriend, Position: battle.PosTriggerAffected(),
			Action: battle.Action{Kind: battle.ActionSummon, SummonKind: battle.SummonType{
				Kind: battle.SummonCustomPet, Name: "Bee", Stats: stats.New(1, 1), Level: 1,
			}},
			Uses: uses(1),
		}
	}
	return f
}
