// This file contains the types describing gaia (the neutral "nature"
// player) state, present iff a Player's type is Gaia.
package genie

// GaiaData describes the neutral player's nature-simulation state:
// creature growth, wolf-attack scheduling, and town-center positions used
// by the wolf AI.
type GaiaData struct {
	UpdateTime   uint32
	UpdateNature uint32

	// Creatures holds the five growable creature categories (e.g. sheep,
	// deer, boar, ...), indexed by the engine's fixed category order.
	Creatures [5]GaiaCreature

	NextWolfAttackUpdateTime uint32
	WolfAttackUpdateInterval uint32
	WolfAttackStopTime       uint32
	MinVillagerDistance      float32

	// TCPositions holds one (x, y) pair per possible player slot (9).
	TCPositions [9][2]float32

	WolfCurrentPlayer     uint32
	WolfCurrentVillagers  [10]uint32
	WolfCurrentVillager   OptionalObjectID
	WolfVillagerCount     uint32
	Wolves                [25]GaiaWolfInfo
	CurrentWolf           OptionalObjectID
	WolfCounts            [10]uint32
}

// GaiaCreature describes one growable creature category's reproduction
// parameters.
type GaiaCreature struct {
	GrowthRate float32
	Remainder  float32
	Max        uint32
}

// GaiaWolfInfo describes one simulated wolf's tracking state.
type GaiaWolfInfo struct {
	ID       uint32
	Distance float32
}
