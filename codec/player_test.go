package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genieio/geniecodec/genie"
	"github.com/genieio/geniecodec/genie/geniecore"
	"github.com/genieio/geniecodec/genie/geniepeer"
)

// buildMinimalPlayer returns a Player populated for a format version at or
// above VerExploredTiles (6.70) and below VerDiplomacyDetail (9.13), such
// as the 9.0 most tests here use, so EncodePlayer/DecodePlayer exercise
// the baseline linear path without sentinel bytes or definitive-edition
// branching.
func buildMinimalPlayer() genie.Player {
	return genie.Player{
		Type:          1,
		Relations:     []uint8{0, 1},
		Diplomacy:     [9]int32{1, 1, 1, 1, 1, 1, 1, 1, 1},
		AlliedLOS:     true,
		AlliedVictory: false,
		Name:          "Conqueror",
		Attributes:    []float32{1, 2, 3},
		InitialViewX:  10,
		InitialViewY:  20,
		SpawnX:        100,
		SpawnY:        200,
		CultureID:     1,
		CivilizationID: 2,
		GameStatus:    0,
		Resigned:      false,
		Color:         3,
		PathingAttemptCap: 5,
		PathingDelayCap:   6,
		Tech: genie.PlayerTech{Techs: []genie.TechState{
			{Progress: 1, State: 2, Modifiers: [3]int16{1, 2, 3}, TimeModifier: 4},
		}},
		History: genie.HistoryInfo{
			Entries: []genie.HistoryEntry{{CivilianPopulation: 5, MilitaryPopulation: 1}},
			Events:  []genie.HistoryEvent{{EventType: 1, TimeSlice: 1, WorldTime: 2, Params: [3]float32{1, 2, 3}}},
		},
		AvailableUnitTypes: []genie.AvailableUnitType{
			{Present: true, Type: geniepeer.UnitType{Raw: []byte{1, 2, 3}}},
			{Present: false},
		},
		VisibleMap: genie.VisibleMap{
			Width: 2, Height: 1, ExploredTiles: 1, PlayerID: 1, Tiles: []int16{10, -5},
		},
		VisibleResources: genie.VisibleResources{Lists: []genie.VisibleResourceList{
			{Capacity: 1, Resources: []genie.VisibleResource{
				{ObjectID: genie.DecodeOptionalObjectID(9), Distance: 1, Zone: 0, X: 1, Y: 2},
			}},
		}},
		LiveUnits:     []geniepeer.Unit{{Raw: []byte{1}}},
		SleepingUnits: nil,
		DoppelgangerUnits: nil,
		Opaque: genie.OpaqueContext{
			UnitCounts: genie.UnitCounts{
				ObjectCategories:      make([]uint16, 750),
				ObjectGroups:          make([]uint16, 100),
				BuiltObjectCategories: make([]uint16, 750),
				BuiltObjectGroups:     make([]uint16, 100),
				TotalUnits:            1, TotalBuildings: 2, BuiltUnits: 3, BuiltBuildings: 4,
			},
			Formation: genie.FormationState{LineRatio: 1, ColumnRatio: 2, MinColumnDistance: 3, ColumnToLineDistance: 4, AutoFormations: 5, InfluenceDistance: 6},
			Escrow:    genie.EscrowState{PendingDebits: [4]float32{1, 2, 3, 4}, Amounts: [4]float32{5, 6, 7, 8}, Percentages: [4]float32{9, 10, 11, 12}},
			ProdQueueEnabled: true,
		},
	}
}

func TestPlayerRoundTripBaseline(t *testing.T) {
	ctx := NewContext(9.0, geniecore.VariantConquerors, 2)

	p := buildMinimalPlayer()

	var buf bytes.Buffer
	if err := EncodePlayer(ctx, NewWriter(&buf), p); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodePlayer(ctx, NewReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestPlayerGaiaDiscriminator(t *testing.T) {
	ctx := NewContext(9.0, geniecore.VariantConquerors, 2)

	for _, tc := range []struct {
		name     string
		playerTy uint8
		wantGaia bool
	}{
		{"gaia", 2, true},
		{"ai-controlled", 3, false},
		{"human", 1, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := buildMinimalPlayer()
			p.Type = tc.playerTy
			if tc.playerTy == 2 {
				p.Gaia = &genie.GaiaData{UpdateTime: 1, UpdateNature: 2, MinVillagerDistance: 3}
			}

			var buf bytes.Buffer
			if err := EncodePlayer(ctx, NewWriter(&buf), p); err != nil {
				t.Fatalf("encode: %v", err)
			}
			got, err := DecodePlayer(ctx, NewReader(bytes.NewReader(buf.Bytes())))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if (got.Gaia != nil) != tc.wantGaia {
				t.Errorf("player_type=%d: expected Gaia present=%v, got %v", tc.playerTy, tc.wantGaia, got.Gaia != nil)
			}
		})
	}
}

func TestPlayerAIProbe(t *testing.T) {
	ctx := NewContext(9.0, geniecore.VariantConquerors, 2)

	p := buildMinimalPlayer()
	p.Type = 3
	p.AI = &geniepeer.PlayerAI{Raw: []byte{9, 9}}

	var buf bytes.Buffer
	if err := EncodePlayer(ctx, NewWriter(&buf), p); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodePlayer(ctx, NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.AI == nil || !bytes.Equal(got.AI.Raw, p.AI.Raw) {
		t.Errorf("expected AI to round-trip, got %+v", got.AI)
	}
}

func TestPlayerNegativeSavedViewsCountClamped(t *testing.T) {
	// Build the stream up through the saved-views field by hand, version
	// 11.62 (== VerSavedViews). That is above VerSentinelBytes, so the
	// marker bytes before the view fields are written too.
	ctx := NewContext(geniecore.VerSavedViews, geniecore.VariantConquerors, 1)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	_ = w.Uint8(1)            // player type
	_ = w.Uint8(11)           // marker
	_ = w.Bytes([]byte{0})    // relations (1 player)
	for i := 0; i < 9; i++ {
		_ = w.Int32(0) // diplomacy
	}
	_ = w.Uint32(0)        // allied los
	_ = w.Uint8(0)         // allied victory
	_ = w.U16String(nil)   // name
	_ = w.Uint8(22)        // marker
	_ = w.Uint32(0)        // attribute count
	_ = w.Uint8(33)        // marker
	_ = w.Uint8(11)        // marker
	_ = w.Float32(0)       // initial view x
	_ = w.Float32(0)       // initial view y
	_ = w.Int32(-1)        // saved views count: negative, must clamp to none

	got, err := DecodePlayer(ctx, NewReader(bytes.NewReader(buf.Bytes())))
	if err == nil {
		t.Fatal("expected an error once the hand-built stream runs out past the saved-views field")
	}
	if len(got.SavedViews) != 0 {
		t.Errorf("expected a negative saved-views count to be treated as zero, got %d entries", len(got.SavedViews))
	}
}

func TestDecodePlayerBlockForwardsOrdinaryErrors(t *testing.T) {
	ctx := NewContext(9.0, geniecore.VariantConquerors, 2)

	// An empty stream fails in the very first field read; DecodePlayerBlock
	// must still surface that as a normal error rather than swallowing it
	// behind its recover().
	_, err := DecodePlayerBlock(ctx, NewReader(bytes.NewReader(nil)))
	if err == nil {
		t.Fatal("expected an error decoding an empty stream")
	}
	if err == ErrCorruptInput {
		t.Fatal("an ordinary truncation error should not be reported as ErrCorruptInput")
	}
}

// TestPlayerAttributesOnDiskLayout independently verifies the Attributes
// group's on-disk byte layout against original_source/crates/genie-rec/src/
// player.rs:51-59 (marker 22, u32 count, marker 33, f32 values, marker 11)
// rather than only round-tripping through the student's own encode/decode
// pair, which would stay self-consistent even if both sides shared the same
// width or marker-value bug.
func TestPlayerAttributesOnDiskLayout(t *testing.T) {
	ctx := NewContext(geniecore.VerSentinelBytes, geniecore.VariantConquerors, 1)

	p := genie.Player{
		Type:       1,
		Relations:  []uint8{0},
		Attributes: []float32{1.5, 2.5},
	}

	var buf bytes.Buffer
	if err := EncodePlayer(ctx, NewWriter(&buf), p); err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw := buf.Bytes()

	r := NewReader(bytes.NewReader(raw))
	skipField := func(n int) {
		t.Helper()
		if _, err := r.Bytes(n); err != nil {
			t.Fatalf("skip %d bytes: %v", n, err)
		}
	}
	readByte := func() byte {
		t.Helper()
		b, err := r.Uint8()
		if err != nil {
			t.Fatalf("read byte: %v", err)
		}
		return b
	}

	skipField(1) // player_type
	if got := readByte(); got != 11 {
		t.Fatalf("expected leading sentinel 11 after player_type, got %d", got)
	}
	skipField(1)  // relations (1 player)
	skipField(36) // diplomacy (9 x int32)
	skipField(4)  // allied_los
	skipField(1)  // allied_victory
	skipField(2)  // name length prefix (0, empty name)

	if got := readByte(); got != 22 {
		t.Fatalf("expected marker 22 after player name, got %d", got)
	}
	count, err := r.Uint32()
	if err != nil {
		t.Fatalf("read attribute count: %v", err)
	}
	if count != uint32(len(p.Attributes)) {
		t.Fatalf("expected a 32-bit attribute count of %d, got %d (reading it as 16 bits would desync every field after it)", len(p.Attributes), count)
	}
	if got := readByte(); got != 33 {
		t.Fatalf("expected marker 33 after attribute count, got %d", got)
	}
	values, err := r.Float32Slice(int(count))
	if err != nil {
		t.Fatalf("read attribute values: %v", err)
	}
	for i, v := range values {
		if v != p.Attributes[i] {
			t.Errorf("attribute %d: got %v, want %v", i, v, p.Attributes[i])
		}
	}
	if got := readByte(); got != 11 {
		t.Fatalf("expected trailing sentinel 11 after attribute values, got %d", got)
	}
}

func TestPlayerDefinitiveEditionResync(t *testing.T) {
	ctx := NewContext(geniecore.VerDEResyncBase, geniecore.VariantDefinitiveEdition, 2)

	p := buildMinimalPlayer()
	// At 13.00 the block also carries the 900-wide unit counts, the
	// diplomacy detail and the tech tree.
	p.Opaque.UnitCounts.ObjectCategories = make([]uint16, 900)
	p.Opaque.UnitCounts.BuiltObjectCategories = make([]uint16, 900)
	p.DiplomacyDetail = &genie.DiplomacyDetail{}
	p.TechTree = &geniepeer.TechTree{Raw: []byte{7}}
	// VisibleMap tiles are 16-bit at the Definitive Edition variant.
	p.VisibleMap.Width, p.VisibleMap.Height = 1, 1
	p.VisibleMap.Tiles = []int16{500}

	var buf bytes.Buffer
	if err := EncodePlayer(ctx, NewWriter(&buf), p); err != nil {
		t.Fatalf("encode: %v", err)
	}

	// A clean, self-produced Definitive Edition stream must still decode
	// through the resync path (Context.resyncToDoubleMarker), not just the
	// strict double-marker assertion other variants use; the skip-past-
	// injected-nonsense behavior itself is covered at the unit level by
	// TestResyncToDoubleMarkerSkipsNonsense in markers_test.go.
	got, err := DecodePlayer(ctx, NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode of an unperturbed stream should still succeed via the resync path: %v", err)
	}
	if got.VisibleMap.Tiles[0] != 500 {
		t.Errorf("expected VisibleMap tile to round-trip, got %v", got.VisibleMap.Tiles)
	}
}
