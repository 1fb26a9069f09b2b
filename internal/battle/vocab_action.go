package battle

import "github.com/sapbattle/core/internal/stats"

// ActionKind tags the Action variant. Payload fields below are only
// meaningful for the kinds that use them, mirroring a Rust enum lowered
// into a Go tagged struct.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAdd
	ActionRemove
	ActionDebuff
	ActionShuffle
	ActionSwap
	ActionPush
	ActionCopy
	ActionNegate
	ActionCritical
	ActionWhale
	ActionTransform
	ActionKill
	ActionInvincible
	ActionGain
	ActionSummon
	ActionMultiple
	ActionConditional
	ActionExperience
	ActionEndure

	// Hardcoded animal specials.
	ActionRhino
	ActionLynx
	ActionVulture
	ActionStegosaurus
	ActionTapir
	ActionCockroach
	ActionMoose
	ActionFox

	// Shop-only actions, inert in the battle core but kept so the
	// vocabulary is round-trippable (spec.md §4.7).
	ActionAddShopStats
	ActionProfit
	ActionAlterGold
	ActionAddShopFood
	ActionAddShopPet
	ActionFreeRoll
)

// Action is a single effect action. ItemCondition::Equal against an
// action compares Kind only (EqualityCondition.Action is an ActionKind).
type Action struct {
	Kind ActionKind

	StatChange   StatChangeType
	DebuffStats  stats.Statistics
	PushPosition Position
	CopyKind     CopyType
	CopyTarget   Target
	CopyPosition Position
	NegateStats  stats.Statistics
	CritPercent  int
	WhalePos     Position
	WhaleLevel   int
	TransformTo  string
	TransformLvl int
	TransformSt  *stats.Statistics
	GainKind     GainType
	SummonKind   SummonType
	Randomize    RandomizeType
	Multi        []Action
	Conditional  *ConditionalAction
	RhinoStats   stats.Statistics
	VultureStats stats.Statistics
	StegoStats   stats.Statistics
	MooseStats   stats.Statistics
	FoxMult      int
}

// ConditionalAction bundles the LogicType evaluated against battle state
// with the branch(es) it guards, for Action::Conditional.
type ConditionalAction struct {
	Logic  LogicType
	IfTrue Action
	// IfFalse is only used by LogicType::If/IfNot when the opposite
	// branch also needs to run something (most effects leave it as
	// ActionNone).
	IfFalse Action
}

// StatChangeType parametrizes Action::Add/Action::Remove.
type StatChangeType struct {
	Kind StatChangeKind
	// Static carries the literal stats for StatChangeStatic.
	Static stats.Statistics
	// Percent carries the self-multiplier percentage for
	// StatChangeSelfMultValue (e.g. Lion, Leopard).
	Percent stats.Statistics
}

// StatChangeKind tags the StatChangeType variant.
type StatChangeKind int

const (
	StatChangeStatic StatChangeKind = iota
	StatChangeSelfMultValue
)

// CopyType parametrizes Action::Copy — what attribute to read from the
// source position and write onto the target.
type CopyType struct {
	Kind CopyKind
	// Percent carries the percentage for CopyPercentStats.
	Percent stats.Statistics
	// Stats carries the literal stats for CopyStats.
	Stats *stats.Statistics
	// EffectLevel is carried for CopyEffect but not read: applyCopy
	// always copies the source pet's current effect list, whatever
	// level is set here.
	EffectLevel *int
}

// CopyKind tags the CopyType variant.
type CopyKind int

const (
	CopyNone CopyKind = iota
	CopyPercentStats
	CopyStats
	CopyEffect
	CopyItem
)

// SummonType parametrizes Action::Summon / Action::AddShopPet.
type SummonType struct {
	Kind SummonKind
	// Name carries the pet name for SummonDefaultPet/CustomPet/QueryPet.
	Name string
	// Stats carries the override stats for SummonCustomPet/SelfPet.
	Stats stats.Statistics
	// Level carries the combat level for SummonCustomPet.
	Level int
}

// SummonKind tags the SummonType variant.
type SummonKind int

const (
	SummonNone SummonKind = iota
	// SummonQueryPet summons a pet looked up from the catalog by name.
	SummonQueryPet
	// SummonDefaultPet summons a pet at its catalog base stats.
	SummonDefaultPet
	// SummonCustomPet summons a named pet with overridden stats/level.
	SummonCustomPet
	// SummonSelfPet summons a copy of the owner with new stats (Cockroach,
	// Rat-king token etc).
	SummonSelfPet
	// SummonSelfTierPet summons a random pet at the owner's catalog tier.
	SummonSelfTierPet
)

// GainType parametrizes Action::Gain — what item the target receives.
type GainType struct {
	Kind GainKind
	Name string
}

// GainKind tags the GainType variant.
type GainKind int

const (
	GainNone GainKind = iota
	GainSelfItem
	GainDefaultItem
	GainQueryItem
	GainStoredItem
	GainNoItem
)

// RandomizeType parametrizes Action::Shuffle/Action::Swap.
type RandomizeType int

const (
	RandomizePositions RandomizeType = iota
	RandomizeStats
)

// LogicType is the conditional-evaluation mode for Action::Conditional.
type LogicType struct {
	Kind      LogicKind
	Condition ConditionType
}

// LogicKind tags the LogicType variant.
type LogicKind int

const (
	LogicForEach LogicKind = iota
	LogicIf
	LogicIfNot
	LogicIfAny
)

// ConditionType is the predicate LogicType evaluates. The battle core only
// evaluates Pet and Team conditions; Shop conditions are always false.
type ConditionType struct {
	Kind ConditionKind
	// PetTarget/PetCond carry the target/predicate for ConditionPet.
	PetTarget Target
	PetCond   ItemCondition
	// Team carries the predicate for ConditionTeam.
	Team TeamCondition
}

// ConditionKind tags the ConditionType variant.
type ConditionKind int

const (
	ConditionPet ConditionKind = iota
	ConditionTeam
	ConditionShop
)
