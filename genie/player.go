// This file contains Player, the decoded representation of one player
// block, tying together the sub-records in the rest of this package plus
// the opaque results of the peer codecs in geniepeer.
package genie

import "github.com/genieio/geniecodec/genie/geniepeer"

// SavedView is one named camera position in a player's saved-view bank,
// available starting at geniecore.VerSavedViews.
type SavedView struct {
	X, Y float32
}

// Player is one player's full decoded state from a recorded-game header.
type Player struct {
	// Type is the raw on-disk player type (2 == Gaia, 3 == AI-controlled,
	// others are human/unused slots).
	Type uint8

	Name string

	AlliedLOS     bool
	AlliedVictory bool

	// Relations holds one byte per player slot in the match
	// (length == player_count, per spec.md §3's invariant).
	Relations []uint8

	// Diplomacy always has exactly 9 entries regardless of player count.
	Diplomacy [9]int32

	// Attributes is the player's civilization bonus/attribute vector, one
	// float per attribute the recording's version defines.
	Attributes []float32

	InitialViewX, InitialViewY float32

	// SavedViews is empty whenever the on-disk count was negative or the
	// format version predates geniecore.VerSavedViews.
	SavedViews []SavedView

	SpawnX, SpawnY   uint16
	CultureID        uint8
	CivilizationID   uint8
	GameStatus       uint8
	Resigned         bool

	Color              uint8
	PathingAttemptCap  uint32
	PathingDelayCap    uint32

	Tech    PlayerTech
	History HistoryInfo

	// TechTree is present whenever the format version is
	// >= geniecore.VerTechTree.
	TechTree *geniepeer.TechTree

	// Gaia is present iff Type == 2, per spec.md §3's invariant.
	Gaia *GaiaData

	// AvailableUnitTypes has one entry per position in the on-disk
	// availability mask; AvailableUnitTypes[i].Present is false where the mask bit
	// was false, matching the mask's length exactly.
	AvailableUnitTypes []AvailableUnitType

	VisibleMap       VisibleMap
	VisibleResources VisibleResources

	LiveUnits         []geniepeer.Unit
	SleepingUnits     []geniepeer.Unit
	DoppelgangerUnits []geniepeer.Unit

	// AI is present iff Type == 3 and the trailing u32 probe read 1, per
	// spec.md §8 scenario 4.
	AI *geniepeer.PlayerAI

	// VictoryConditions is populated by the outer recording loader, not
	// by the player-block codec itself (spec.md §6). It is nil until a
	// caller sets it.
	VictoryConditions *geniepeer.VictoryConditions

	// DiplomacyDetail holds the extended per-player diplomacy detail
	// present at >= geniecore.VerDiplomacyDetail: diplomacy, intelligence,
	// trade, and offers, each 9 entries, plus a fealty value.
	DiplomacyDetail *DiplomacyDetail

	UserPatch *UserPatchData

	Opaque OpaqueContext
}

// AvailableUnitType pairs a CompactUnitType with whether the availability
// mask marked it present.
type AvailableUnitType struct {
	Present bool
	Type    geniepeer.UnitType
}

// DiplomacyDetail is the extended diplomacy bank gated at
// geniecore.VerDiplomacyDetail, distinct from Player.Diplomacy. Each of
// the 9 slots also carries a full DiplomacyOffer negotiation record. On
// disk the 9 stances, 9 intelligence bytes, 9 trade bytes and 9 offers
// follow one another as whole arrays, then the fealty value.
type DiplomacyDetail struct {
	Stances      [9]uint8
	Intelligence [9]uint8
	Trade        [9]uint8
	Offers       [9]DiplomacyOffer
	Fealty       uint16
}
