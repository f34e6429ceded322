// This file implements the sentinel/marker discipline of spec.md §4.3:
// strict single-byte assertions, and the definitive-edition
// resynchronising scan for the double-11 marker.
package codec

import "github.com/genieio/geniecodec/genie/geniecore"

// Sentinel byte values used between player-block sub-structures from
// format version geniecore.VerSentinelBytes onward.
const (
	sentinelA byte = 11
	sentinelB byte = 22
	sentinelC byte = 33
)

// active reports whether sentinel bytes are present at all at this
// context's version.
func (ctx *Context) active() bool {
	return ctx.at(geniecore.VerSentinelBytes)
}

// assertMarker performs a strict sentinel check: it is a no-op before
// geniecore.VerSentinelBytes, and otherwise reads one byte and fails with
// *MissingMarker on mismatch.
func (ctx *Context) assertMarker(r *Reader, expected byte) error {
	if !ctx.active() {
		return nil
	}
	pos := r.Pos()
	found, err := r.Uint8()
	if err != nil {
		return err
	}
	if found != expected {
		return &MissingMarker{Version: ctx.Version, Expected: expected, Found: found, Position: pos}
	}
	return nil
}

// writeMarker writes the sentinel byte, a no-op before
// geniecore.VerSentinelBytes.
func (ctx *Context) writeMarker(w *Writer, b byte) error {
	if !ctx.active() {
		return nil
	}
	return w.Uint8(b)
}

// Empirical definitive-edition resync pre-skip distances: a base distance
// plus one increment per format version that grew the undocumented span.
const (
	deResyncSkipBase = 32435 // before 13.00
	deResyncSkip1300 = 8     // from 13.00 (geniecore.VerDEResyncBase)
	deResyncSkip1307 = 1     // from 13.07 (geniecore.VerDEResync107)
	deResyncSkip1313 = 5     // from 13.13 (geniecore.VerDEResync113)
	deResyncSkip1334 = 4     // from 13.34 (geniecore.VerDEResync134)
)

// deResyncPreSkip returns the version-dependent pre-skip distance for the
// definitive-edition resync protocol (spec.md §4.3).
func deResyncPreSkip(version float32) int64 {
	n := int64(deResyncSkipBase)
	if version >= geniecore.VerDEResyncBase {
		n += deResyncSkip1300
	}
	if version >= geniecore.VerDEResync107 {
		n += deResyncSkip1307
	}
	if version >= geniecore.VerDEResync113 {
		n += deResyncSkip1313
	}
	if version >= geniecore.VerDEResync134 {
		n += deResyncSkip1334
	}
	return n
}

// resyncToDoubleMarker implements the definitive-edition resync branch:
// skip the version-dependent pre-skip distance, then scan forward until
// two consecutive sentinelA bytes are read. The magic pre-skip numbers
// are empirical (spec.md §9); this is the single place they are used.
//
// Returns a *DesyncRecovered diagnostic (never a fatal error) describing
// how many bytes beyond the pre-skip were consumed before the marker was
// found, unless the scan exceeds the configured resync-skip cap, which is
// fatal.
func (ctx *Context) resyncToDoubleMarker(r *Reader) (*DesyncRecovered, error) {
	if err := r.Skip(int(deResyncPreSkip(ctx.Version))); err != nil {
		return nil, err
	}

	start := r.Pos()
	var prev byte
	havePrev := false
	var skipped int64
	for {
		if skipped > ctx.Config.maxResyncSkip() {
			return nil, &InvalidLength{Field: "de-resync-skip", Value: skipped, Cap: ctx.Config.maxResyncSkip()}
		}
		b, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		if havePrev && prev == sentinelA && b == sentinelA {
			return &DesyncRecovered{Skipped: skipped - 1, Position: r.Pos()}, nil
		}
		prev, havePrev = b, true
		skipped++
		_ = start
	}
}
