package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/genieio/geniecodec/genie/geniecore"
)

func newTestContext(version float32, variant geniecore.Variant) *Context {
	return NewContext(version, variant, 8)
}

func TestAssertMarkerNoOpBeforeSentinelVersion(t *testing.T) {
	ctx := newTestContext(geniecore.VerSentinelBytes-1, geniecore.VariantConquerors)
	r := NewReader(bytes.NewReader(nil))
	if err := ctx.assertMarker(r, sentinelA); err != nil {
		t.Fatalf("expected no-op before sentinel version, got %v", err)
	}
}

func TestAssertMarkerStrictMismatch(t *testing.T) {
	ctx := newTestContext(geniecore.VerSentinelBytes, geniecore.VariantUserPatch)
	r := NewReader(bytes.NewReader([]byte{99}))
	err := ctx.assertMarker(r, sentinelA)
	if err == nil {
		t.Fatal("expected a MissingMarker error")
	}
	var mm *MissingMarker
	if !errors.As(err, &mm) {
		t.Fatalf("expected *MissingMarker, got %T: %v", err, err)
	}
	if mm.Expected != sentinelA || mm.Found != 99 {
		t.Errorf("unexpected MissingMarker fields: %+v", mm)
	}
}

func TestAssertMarkerStrictMatch(t *testing.T) {
	ctx := newTestContext(geniecore.VerSentinelBytes, geniecore.VariantUserPatch)
	r := NewReader(bytes.NewReader([]byte{sentinelA}))
	if err := ctx.assertMarker(r, sentinelA); err != nil {
		t.Fatalf("expected marker to match, got %v", err)
	}
}

func TestResyncToDoubleMarkerSkipsNonsense(t *testing.T) {
	ctx := newTestContext(geniecore.VerDEResyncBase, geniecore.VariantDefinitiveEdition)
	ctx.Config.MaxResyncSkip = 1 << 16

	preSkip := int(deResyncPreSkip(ctx.Version))
	const junk = 17

	buf := make([]byte, preSkip+junk+2)
	for i := preSkip; i < preSkip+junk; i++ {
		buf[i] = 200 // anything that isn't two sentinelA in a row
	}
	buf[preSkip+junk] = sentinelA
	buf[preSkip+junk+1] = sentinelA

	r := NewReader(bytes.NewReader(buf))
	diag, err := ctx.resyncToDoubleMarker(r)
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if diag.Skipped != junk {
		t.Errorf("expected Skipped=%d, got %d", junk, diag.Skipped)
	}
}

func TestResyncToDoubleMarkerCapExceeded(t *testing.T) {
	ctx := newTestContext(geniecore.VerDEResyncBase, geniecore.VariantDefinitiveEdition)
	ctx.Config.MaxResyncSkip = 4

	preSkip := int(deResyncPreSkip(ctx.Version))
	buf := make([]byte, preSkip+100)
	for i := preSkip; i < len(buf); i++ {
		buf[i] = 200
	}

	r := NewReader(bytes.NewReader(buf))
	_, err := ctx.resyncToDoubleMarker(r)
	if err == nil {
		t.Fatal("expected an error once the resync-skip cap is exceeded")
	}
	var il *InvalidLength
	if !errors.As(err, &il) {
		t.Fatalf("expected *InvalidLength, got %T: %v", err, err)
	}
}
