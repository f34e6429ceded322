package codec

import (
	"bytes"
	"testing"

	"github.com/genieio/geniecodec/genie"
	"github.com/genieio/geniecodec/genie/geniecore"
)

func TestDiplomacyOfferRoundTrip(t *testing.T) {
	o := genie.DiplomacyOffer{
		Sequence: 1, StartedBy: 2, GameTime: 1000,
		Declare: 1, OldDiplomacy: 0, NewDiplomacy: 1,
		OldIntelligence: 0, NewIntelligence: 1, OldTrade: 0, NewTrade: 1,
		Demand: 0, Gold: 200, Message: "let's ally", Status: 3,
	}
	var buf bytes.Buffer
	if err := EncodeDiplomacyOffer(NewWriter(&buf), o); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDiplomacyOffer(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != o {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, o)
	}
}

func TestDiplomacyOfferEmptyMessage(t *testing.T) {
	o := genie.DiplomacyOffer{Sequence: 1}
	var buf bytes.Buffer
	if err := EncodeDiplomacyOffer(NewWriter(&buf), o); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDiplomacyOffer(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Message != "" {
		t.Errorf("expected empty message, got %q", got.Message)
	}
}

func TestHistoryEntryEventRoundTrip(t *testing.T) {
	e := genie.HistoryEntry{CivilianPopulation: 10, MilitaryPopulation: 5}
	var eb bytes.Buffer
	if err := EncodeHistoryEntry(NewWriter(&eb), e); err != nil {
		t.Fatalf("encode entry: %v", err)
	}
	gotE, err := DecodeHistoryEntry(NewReader(bytes.NewReader(eb.Bytes())))
	if err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if gotE != e {
		t.Errorf("entry round-trip mismatch: got %+v, want %+v", gotE, e)
	}

	ev := genie.HistoryEvent{EventType: 2, TimeSlice: 100, WorldTime: 200, Params: [3]float32{1, 2, 3}}
	var vb bytes.Buffer
	if err := EncodeHistoryEvent(NewWriter(&vb), ev); err != nil {
		t.Fatalf("encode event: %v", err)
	}
	gotV, err := DecodeHistoryEvent(NewReader(bytes.NewReader(vb.Bytes())))
	if err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if gotV != ev {
		t.Errorf("event round-trip mismatch: got %+v, want %+v", gotV, ev)
	}
}

func TestTechStateRoundTrip(t *testing.T) {
	ts := genie.TechState{Progress: 0.5, State: 2, Modifiers: [3]int16{1, 2, 3}, TimeModifier: 4}

	for _, variant := range []geniecore.Variant{geniecore.VariantConquerors, geniecore.VariantDefinitiveEdition} {
		ctx := newTestContext(10.0, variant)
		var buf bytes.Buffer
		if err := EncodeTechState(ctx, NewWriter(&buf), ts); err != nil {
			t.Fatalf("encode (%v): %v", variant, err)
		}
		got, err := DecodeTechState(ctx, NewReader(bytes.NewReader(buf.Bytes())))
		if err != nil {
			t.Fatalf("decode (%v): %v", variant, err)
		}
		if got != ts {
			t.Errorf("round-trip mismatch (%v): got %+v, want %+v", variant, got, ts)
		}
	}
}

func TestGaiaCreatureAndWolfInfoRoundTrip(t *testing.T) {
	c := genie.GaiaCreature{GrowthRate: 0.1, Remainder: 0.05, Max: 20}
	var cb bytes.Buffer
	if err := EncodeGaiaCreature(NewWriter(&cb), c); err != nil {
		t.Fatalf("encode creature: %v", err)
	}
	gotC, err := DecodeGaiaCreature(NewReader(bytes.NewReader(cb.Bytes())))
	if err != nil {
		t.Fatalf("decode creature: %v", err)
	}
	if gotC != c {
		t.Errorf("creature round-trip mismatch: got %+v, want %+v", gotC, c)
	}

	w := genie.GaiaWolfInfo{ID: 7, Distance: 12.5}
	var wb bytes.Buffer
	if err := EncodeGaiaWolfInfo(NewWriter(&wb), w); err != nil {
		t.Fatalf("encode wolf: %v", err)
	}
	gotW, err := DecodeGaiaWolfInfo(NewReader(bytes.NewReader(wb.Bytes())))
	if err != nil {
		t.Fatalf("decode wolf: %v", err)
	}
	if gotW != w {
		t.Errorf("wolf round-trip mismatch: got %+v, want %+v", gotW, w)
	}
}

func TestOptionalObjectIDEncoding(t *testing.T) {
	if got := genie.DecodeOptionalObjectID(-1); got.Present {
		t.Errorf("expected absent for -1, got %+v", got)
	}
	present := genie.DecodeOptionalObjectID(42)
	if !present.Present || present.ID != 42 {
		t.Errorf("expected present id 42, got %+v", present)
	}
	if genie.AbsentObjectID.Encode() != -1 {
		t.Errorf("expected absent to encode as -1, got %d", genie.AbsentObjectID.Encode())
	}
	if present.Encode() != 42 {
		t.Errorf("expected present id to encode as 42, got %d", present.Encode())
	}
}

func TestUserPatchVersionGateBoundary(t *testing.T) {
	cases := []struct {
		version float32
		want    bool
	}{
		{11.96, false},
		{11.97, true},
		{11.98, false},
	}
	for _, c := range cases {
		if got := geniecore.IsUserPatchVersion(c.version); got != c.want {
			t.Errorf("IsUserPatchVersion(%v) = %v, want %v", c.version, got, c.want)
		}
	}
}

func TestVisibleMapWidensTileWidth(t *testing.T) {
	ctx := newTestContext(6.0, geniecore.VariantConquerors)
	m := genie.VisibleMap{Width: 2, Height: 1, PlayerID: 1, Tiles: []int16{-6, 10}}

	var buf bytes.Buffer
	if err := EncodeVisibleMap(ctx, NewWriter(&buf), m); err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Pre-6.70, no explored-tiles field, and tiles are 8-bit on disk.
	// width(4) + height(4) + player id(2) + 2 tile bytes = 12.
	if buf.Len() != 12 {
		t.Fatalf("expected 12-byte encoding, got %d", buf.Len())
	}

	got, err := DecodeVisibleMap(ctx, NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Tiles[0] != -6 || got.Tiles[1] != 10 {
		t.Errorf("expected widened tile values [-6 10], got %v", got.Tiles)
	}
}

func TestVisibleResourceRoundTrip(t *testing.T) {
	vr := genie.VisibleResources{Lists: []genie.VisibleResourceList{
		{Capacity: 2, Resources: []genie.VisibleResource{
			{ObjectID: genie.DecodeOptionalObjectID(5), Distance: 1.5, Zone: 1, X: 10, Y: 20},
			{ObjectID: genie.AbsentObjectID, Distance: 0, Zone: 0, X: 0, Y: 0},
		}},
	}}

	var buf bytes.Buffer
	if err := EncodeVisibleResources(NewWriter(&buf), vr); err != nil {
		t.Fatalf("encode: %v", err)
	}
	ctx := newTestContext(10.0, geniecore.VariantConquerors)
	got, err := DecodeVisibleResources(ctx, NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Lists) != 1 || len(got.Lists[0].Resources) != 2 {
		t.Fatalf("unexpected shape: %+v", got)
	}
	if got.Lists[0].Resources[1].ObjectID.Present {
		t.Errorf("expected second resource's object id to be absent")
	}
}
