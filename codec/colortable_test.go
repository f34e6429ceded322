package codec

import (
	"bytes"
	"testing"

	"github.com/genieio/geniecodec/genie"
)

func TestColorTableRoundTrip(t *testing.T) {
	ct := genie.ColorTable{
		ID:             3,
		Base:           16,
		UnitOutline:    17,
		UnitSelection:  [2]int32{18, 19},
		Minimap:        [3]int32{20, 21, 22},
		StatisticsText: 23,
	}

	var buf bytes.Buffer
	if err := EncodeColorTable(NewWriter(&buf), ct); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodeColorTable(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != ct {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, ct)
	}
}

func TestColorTableMinimal(t *testing.T) {
	// All-zero colour table: the minimal valid 36-byte encoding.
	var ct genie.ColorTable
	var buf bytes.Buffer
	if err := EncodeColorTable(NewWriter(&buf), ct); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.Len() != 36 {
		t.Fatalf("expected 36 bytes (9 x int32), got %d", buf.Len())
	}

	got, err := DecodeColorTable(NewReader(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != ct {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, ct)
	}
}
