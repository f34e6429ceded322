// This file contains OpaqueContext, a catch-all for the several dozen
// version-gated fields a player block carries purely for round-trip
// parity: the codec reads and retains them, per spec.md §9's "Unknown
// fields... represent as an opaque OpaqueContext blob" guidance, without
// assigning them decode-time semantics beyond the grouping below.
//
// Field layouts are grounded on
// original_source/crates/genie-rec/src/player.rs's inline reads for each
// group; version gates follow spec.md §4.7's dispatch table.
package genie

// UnitCounts is the always-present, version-width-gated per-unit-type
// live/built count table.
type UnitCounts struct {
	ObjectCategories      []uint16
	ObjectGroups          []uint16
	BuiltObjectCategories []uint16
	BuiltObjectGroups     []uint16

	TotalUnits         uint16
	TotalBuildings     uint16
	BuiltUnits         uint16
	BuiltBuildings     uint16
}

// FormationState is the always-present auto-formation bookkeeping; the
// trailing BreakAutoFormationsBySpeed field is only read at
// >= geniecore.VerFormationsBreakAuto (zero otherwise).
type FormationState struct {
	LineRatio               uint32
	ColumnRatio             uint32
	MinColumnDistance       uint32
	ColumnToLineDistance    uint32
	AutoFormations          uint32
	InfluenceDistance       float32
	BreakAutoFormationsBySpeed float32
}

// EscrowState is the always-present per-resource escrow bookkeeping:
// pending debits, current escrow amounts, and configured escrow
// percentages, each a (food, wood, stone, gold) quadruple.
type EscrowState struct {
	PendingDebits  [4]float32
	Amounts        [4]float32
	Percentages    [4]float32
}

// ViewScrollState is the version-gated (>= geniecore.VerViewScroll)
// last-known camera scroll bookkeeping.
type ViewScrollState struct {
	Vector         [2]float32
	End            [2]float32
	Start          [2]float32
	TotalDistance  float32
	Distance       float32
}

// AIReactionState is the version-gated (>= geniecore.VerAIReactions)
// AI difficulty-reaction tuning.
type AIReactionState struct {
	EasiestReactionPercent float32
	EasierReactionPercent  float32
	TaskUngroupedSoldiers  bool
}

// SelectionState is the version-gated (>= geniecore.VerSelection)
// last unit-selection snapshot. Absent (nil IDs) when the on-disk count
// was zero.
type SelectionState struct {
	ObjectID   ObjectID
	Properties uint32
	IDs        []ObjectID
}

// AIAttackState is the version-gated (>= geniecore.VerAIAttack)
// AI-controlled-player attack-timing bookkeeping.
type AIAttackState struct {
	AlertedEnemyCount   uint32
	RegularAttackCount  uint32
	RegularAttackMode   uint8
	RegularAttackLoc    [2]float32
	TownAttackCount     uint32
	TownAttackMode      uint8
	TownAttackLoc       [2]float32
}

// MarketState is the version-gated (>= geniecore.VerMarketTrading)
// market-trading bookkeeping.
type MarketState struct {
	MaxTradeAmount     uint32
	OldMaxTradeAmount  uint32
	MaxTradeLimit      uint32
	CurrentWoodLimit   uint32
	CurrentFoodLimit   uint32
	CurrentStoneLimit  uint32
	CurrentOreLimit    uint32
	CommodityVolumeDelta int32
	TradeVigRate       float32
	TradeRefreshTimer  uint32
	TradeRefreshRate   uint32
}

// Statistics is the version-gated (>= geniecore.VerStatsBasic and
// successive thresholds) combat-statistics bank.
type Statistics struct {
	OldKills     uint32
	OldRazings   uint32
	BattleMode   uint32
	RazingsMode  uint32
	TotalKills   uint32
	TotalRazings uint32

	OldHitPoints   uint32
	TotalHitPoints uint32

	OldPlayerKills [9]uint32
}

// AICounters holds the always-present AI bookkeeping scalars that carry no
// decode-time semantics of their own, preserved verbatim so the encoder can
// reproduce the source bytes exactly: the AI-update record type, its two
// pending-update counts, the fog-of-war/view update timer, and (gated at
// >= geniecore.VerHistoryObjectives) the ruin/artifact capture timers.
type AICounters struct {
	UpdateType         uint8
	UpdateCount         uint32
	UpdateCountNeedHelp uint32
	FogUpdate           uint32
	UpdateTime          uint32
	RuinHeldTime        uint32
	ArtifactHeldTime    uint32
}

// OpaqueContext bundles every version-gated, round-trip-only state group
// a player block carries. Fields simply hold their spec-mandated default
// (zero, false, or empty) when the recording's format version predates
// the group.
type OpaqueContext struct {
	UnitCounts UnitCounts
	Formation  FormationState
	Escrow     EscrowState
	ViewScroll ViewScrollState
	AIReaction AIReactionState
	Selection  SelectionState
	AICounters AICounters
	AIAttack   AIAttackState
	Market     MarketState

	// ProdQueueEnabled defaults to true for recordings predating
	// geniecore.VerProductionQueue, matching the original engine's
	// implicit default.
	ProdQueueEnabled bool

	// Dodging is the version-gated (>= geniecore.VerDodging) projectile/
	// archer dodge-chance pair.
	ChanceToDodgeMissiles               uint8
	ChanceForArchersToMaintainDistance uint8

	// Late counters, each defaulting to its stated value before its gate.
	OpenGatesForPathingCount uint32
	FarmQueueCount           uint32
	NomadBuildLock           bool

	Stats Statistics

	// OffMapTradeExplored/BeingExplored are the two 20-byte flag arrays
	// gated at >= geniecore.VerOffMapTradeExplored and
	// >= geniecore.VerOffMapTradeExplore2 respectively.
	OffMapTradeExplored      [20]uint8
	OffMapTradeBeingExplored [20]uint8
}
