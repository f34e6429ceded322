// This file contains the types describing the embedded random-map-info
// structure: the header plus its four variable-length child record kinds.
package genie

// RandomMapInfo describes the random-map generation parameters embedded in
// a recording, plus the child records produced from them.
type RandomMapInfo struct {
	// ID of this random map info block (on-disk value; not otherwise used).
	ID int32

	// Borders are the four border values.
	Borders [4]int32

	BorderFade   int32
	WaterBorder  int32
	BaseTerrain  int32
	LandPercent  int32

	Lands      []RandomMapLand
	Terrains   []RandomMapTerrain
	Objects    []RandomMapObject
	Elevations []RandomMapElevation
}

// RandomMapLand describes one contiguous land mass placement rule.
type RandomMapLand struct {
	ID                      int32
	TerrainType             uint8
	LandAvoidanceTiles      int32
	BaseSquareRadius        int32
	Zone                    int8
	PlacementType           int8
	X, Y                    int32
	AmountOfLandUsedPercent int8
	ByPlayerFlag            int8
	Radius                  int32
	Fade                    int32
	ClumpinessFactor        int32
}

// RandomMapTerrain describes one terrain-patch generation rule.
type RandomMapTerrain struct {
	Percent          int32
	TerrainType      int32
	Clumps           int32
	Spacing          int32
	BaseTerrainType  int32
	ClumpinessFactor int32
}

// RandomMapObject describes one object (unit/resource) scatter rule.
type RandomMapObject struct {
	UnitType             int32
	TerrainType          int32
	GroupFlag            int8
	ScaleFlag            int8
	GroupSize            int32
	GroupSizeVariance    int32
	GroupCount           int32
	GroupArea            int32
	PlayerID             int32
	LandID               int32
	MinDistanceToPlayers int32
	MaxDistanceToPlayers int32
}

// RandomMapElevation describes one elevation-patch generation rule.
type RandomMapElevation struct {
	Percent         int32
	Height          int32
	Clumps          int32
	Spacing         int32
	BaseTerrainType int32
	BaseElevation   int32
}
