// This file contains the type describing a player colour table entry.
package genie

// ColorTable describes a single player colour's palette indices.
type ColorTable struct {
	// ID of this colour entry.
	ID int32

	// Base palette index for this player colour.
	Base int32

	// UnitOutline is the palette index used for unit outlines when a unit
	// is obscured by buildings or trees.
	UnitOutline int32

	// UnitSelection are the two palette indices used for unit selection
	// highlighting.
	UnitSelection [2]int32

	// Minimap are the three palette indices used for this colour on the
	// minimap.
	Minimap [3]int32

	// StatisticsText is the palette index used for this player colour in
	// the in-game statistics panel.
	StatisticsText int32
}
