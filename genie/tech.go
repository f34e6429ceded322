// This file contains the types describing a player's researched-technology
// table.
package genie

// TechState describes one technology slot's research progress.
type TechState struct {
	// Progress is the fraction of research completed, in [0, 1]; 1 means
	// the technology is fully researched.
	Progress float32

	State int16

	// Modifiers holds three engine-internal modifier slots whose exact
	// semantics are opaque to this codec; retained for round-trip parity.
	Modifiers [3]int16

	TimeModifier int16
}

// PlayerTech is a player's full technology table, one TechState per
// technology id known to the recording's tech tree.
type PlayerTech struct {
	Techs []TechState
}
