package codec

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/genieio/geniecodec/genie"
)

func TestRandomMapTerrainObjectElevationRoundTrip(t *testing.T) {
	terr := genie.RandomMapTerrain{Percent: 40, TerrainType: 2, Clumps: 3, Spacing: 4, BaseTerrainType: 1, ClumpinessFactor: 5}
	var tb bytes.Buffer
	if err := encodeRandomMapTerrain(NewWriter(&tb), terr); err != nil {
		t.Fatalf("encode terrain: %v", err)
	}
	gotTerr, err := decodeRandomMapTerrain(NewReader(bytes.NewReader(tb.Bytes())))
	if err != nil {
		t.Fatalf("decode terrain: %v", err)
	}
	if gotTerr != terr {
		t.Errorf("terrain round-trip mismatch: got %+v, want %+v", gotTerr, terr)
	}

	obj := genie.RandomMapObject{
		UnitType: 83, TerrainType: 2, GroupFlag: 1, ScaleFlag: 0,
		GroupSize: 3, GroupSizeVariance: 1, GroupCount: 6, GroupArea: 9,
		PlayerID: 1, LandID: 2, MinDistanceToPlayers: 5, MaxDistanceToPlayers: 20,
	}
	var ob bytes.Buffer
	if err := encodeRandomMapObject(NewWriter(&ob), obj); err != nil {
		t.Fatalf("encode object: %v", err)
	}
	gotObj, err := decodeRandomMapObject(NewReader(bytes.NewReader(ob.Bytes())))
	if err != nil {
		t.Fatalf("decode object: %v", err)
	}
	if gotObj != obj {
		t.Errorf("object round-trip mismatch: got %+v, want %+v", gotObj, obj)
	}

	elev := genie.RandomMapElevation{Percent: 10, Height: 2, Clumps: 3, Spacing: 4, BaseTerrainType: 1, BaseElevation: 0}
	var eb bytes.Buffer
	if err := encodeRandomMapElevation(NewWriter(&eb), elev); err != nil {
		t.Fatalf("encode elevation: %v", err)
	}
	gotElev, err := decodeRandomMapElevation(NewReader(bytes.NewReader(eb.Bytes())))
	if err != nil {
		t.Fatalf("decode elevation: %v", err)
	}
	if gotElev != elev {
		t.Errorf("elevation round-trip mismatch: got %+v, want %+v", gotElev, elev)
	}
}

func TestRandomMapInfoHeaderOnlyRoundTrip(t *testing.T) {
	info := genie.RandomMapInfo{
		ID:          7,
		Borders:     [4]int32{1, 2, 3, 4},
		BorderFade:  5,
		WaterBorder: 6,
		BaseTerrain: 8,
		LandPercent: 9,
	}

	var buf bytes.Buffer
	if err := EncodeRandomMapInfoHeader(NewWriter(&buf), info); err != nil {
		t.Fatalf("encode header: %v", err)
	}

	got, err := DecodeRandomMapInfoHeader(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}

	// EncodeRandomMapInfoHeader writes info.ID as the leading field (and a
	// separate zero discarded id after the scalars), so ID reads back as 7.
	if got.ID != info.ID || got.BorderFade != info.BorderFade || got.Borders != info.Borders ||
		got.WaterBorder != info.WaterBorder || got.BaseTerrain != info.BaseTerrain ||
		got.LandPercent != info.LandPercent {
		t.Errorf("header round-trip mismatch: got %+v, want %+v", got, info)
	}
	if len(got.Lands) != 0 || len(got.Terrains) != 0 || len(got.Objects) != 0 || len(got.Elevations) != 0 {
		t.Errorf("expected empty child slices for a header-only encode, got %+v", got)
	}
}

func TestRandomMapInfoCommandsRoundTrip(t *testing.T) {
	info := genie.RandomMapInfo{
		Borders:     [4]int32{1, 2, 3, 4},
		BorderFade:  5,
		WaterBorder: 6,
		BaseTerrain: 8,
		LandPercent: 9,
		Lands: []genie.RandomMapLand{{
			ID: 1, TerrainType: 2, LandAvoidanceTiles: 3, BaseSquareRadius: 4,
			Zone: 1, PlacementType: 2, X: 5, Y: 6,
			AmountOfLandUsedPercent: 50, ByPlayerFlag: 1,
			Radius: 7, Fade: 8, ClumpinessFactor: 9,
		}},
		Terrains:   []genie.RandomMapTerrain{{Percent: 1, TerrainType: 2, Clumps: 3, Spacing: 4, BaseTerrainType: 5, ClumpinessFactor: 6}},
		Objects:    []genie.RandomMapObject{{UnitType: 1, TerrainType: 2, GroupSize: 1, GroupSizeVariance: 1, GroupCount: 1, GroupArea: 1, PlayerID: 1, LandID: 1, MinDistanceToPlayers: 1, MaxDistanceToPlayers: 1}},
		Elevations: []genie.RandomMapElevation{{Percent: 1, Height: 2, Clumps: 3, Spacing: 4, BaseTerrainType: 5, BaseElevation: 6}},
	}

	var buf bytes.Buffer
	if err := EncodeRandomMapInfoCommands(NewWriter(&buf), info); err != nil {
		t.Fatalf("encode commands: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	got, err := DecodeRandomMapInfoHeader(r)
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	if err := FinishRandomMapInfo(r, &got); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got.ID = info.ID
	if !reflect.DeepEqual(got, info) {
		t.Errorf("commands round-trip mismatch:\ngot  %+v\nwant %+v", got, info)
	}
}
