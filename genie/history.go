// This file contains the types describing a player's population/combat
// history: per-tick population snapshots, discrete events, and a bank of
// running statistics kept only for round-trip parity.
package genie

// HistoryEntry is a single population snapshot.
type HistoryEntry struct {
	CivilianPopulation uint16
	MilitaryPopulation uint16
}

// HistoryEvent is a single discrete history event (e.g. a tech completed,
// a building lost).
type HistoryEvent struct {
	EventType int8
	TimeSlice uint32
	WorldTime uint32
	Params    [3]float32
}

// HistoryStats bundles the numeric statistics bank that follows the
// entries/events in a HistoryInfo. These are read and retained only so the
// encoder can reproduce the file exactly; spec.md does not assign them
// decode-time semantics beyond round-trip parity.
type HistoryStats struct {
	Razings                    int32
	HitPointsRazed             int32
	RazedByOthers              int32
	HitPointsRazedByOthers     int32
	Kills                      int32
	HitPointsKilled            int32
	KilledByOthers             int32
	HitPointsKilledByOthers    int32
	RazingsWeight              int32
	KillsWeight                int32
	RazingsPercent             int32
	KillsPercent               int32
	RazingMode                 int32
	BattleMode                 int32
	UpdateCount                int32
	OldCurrentUnitsCreated     int32
	OldCurrentBuildingsBuilt   int32
	OldKills                  [8]uint16
	OldKillBVs                [8]uint32
	OldRazings                [8]uint16
	OldRazingBVs               [8]uint32
	RunningAverageBVPercent    int32
	RunningTotalBVKills        int32
	RunningTotalBVRazings      int32
	RunningTotalKills          int16
	RunningTotalRazings        int16
}

// HistoryInfo is a player's full history record: the gaia/player
// discriminator, the population entries, the discrete events, and the
// trailing statistics bank.
type HistoryInfo struct {
	// IsGaia is the stored discriminator byte (22 for gaia histories, 0 for
	// player histories). It is stored, never asserted, per spec.md §4.6.
	IsGaia bool

	// EventsPlaceholder is the ignored event-count field that appears in
	// the header, ahead of the entries; the real event count is read again
	// after the discriminator byte. Retained verbatim for write-back.
	EventsPlaceholder uint32

	// EntriesCapacity is the on-disk preallocation hint for Entries,
	// retained verbatim for write-back per spec.md §3.
	EntriesCapacity uint32

	Entries []HistoryEntry
	Events  []HistoryEvent

	Stats HistoryStats
}
