// This file contains Context, the versioned state threaded through every
// player-block and sub-record decode/encode call.
package codec

import (
	"github.com/rs/zerolog"

	"github.com/genieio/geniecodec/genie/geniecore"
	"github.com/genieio/geniecodec/genie/geniepeer"
)

// Config holds decode-time limits and behaviour toggles, mirroring the
// teacher's repparser.Config shape (a small struct of knobs threaded
// through every parse call).
type Config struct {
	// MaxFieldLen caps the decoded element counts of the player block's
	// variable-length arrays (attributes, saved views, selection, history
	// entries/events, visible-map tiles, visible resources, the unit-type
	// mask) per spec.md §9's "buffer pre-sizing" guidance; string lengths
	// are not checked against it. Zero means DefaultMaxFieldLen.
	MaxFieldLen int64

	// MaxResyncSkip caps how many bytes the definitive-edition resync
	// scan (§4.3) may consume before giving up. Zero means
	// DefaultMaxResyncSkip.
	MaxResyncSkip int64

	_ struct{} // prevent unkeyed literals
}

// DefaultMaxFieldLen is the field-length cap applied when Config.MaxFieldLen
// is zero (16 MiB, per spec.md §9).
const DefaultMaxFieldLen = 16 << 20

// DefaultMaxResyncSkip is the resync-skip cap applied when
// Config.MaxResyncSkip is zero (1 MiB, per spec.md §7).
const DefaultMaxResyncSkip = 1 << 20

func (c Config) maxFieldLen() int64 {
	if c.MaxFieldLen <= 0 {
		return DefaultMaxFieldLen
	}
	return c.MaxFieldLen
}

func (c Config) maxResyncSkip() int64 {
	if c.MaxResyncSkip <= 0 {
		return DefaultMaxResyncSkip
	}
	return c.MaxResyncSkip
}

// Context carries the format version, edition variant, and player count
// that gate every version-dependent field in the player block, plus the
// peer codecs to dispatch into and a logger for non-fatal diagnostics.
type Context struct {
	Version     float32
	Variant     geniecore.Variant
	PlayerCount uint8

	Peers geniepeer.Set

	Config Config
	Log    zerolog.Logger
}

// NewContext builds a Context with the given version/variant/player count
// and the default (discard) logger. Callers that want resync diagnostics
// surfaced should set ctx.Log afterward.
func NewContext(version float32, variant geniecore.Variant, playerCount uint8) *Context {
	return &Context{
		Version:     version,
		Variant:     variant,
		PlayerCount: playerCount,
		Peers:       geniepeer.DefaultSet(),
		Log:         zerolog.Nop(),
	}
}

// at reports whether the context's format version is at or beyond a
// threshold, per spec.md §4.2's ">= literal threshold" comparison rule.
func (c *Context) at(threshold float32) bool {
	return c.Version >= threshold
}

// checkLen validates a decoded length against the configured field cap,
// returning *InvalidLength when it is exceeded.
func (c *Context) checkLen(field string, n int64) error {
	if n < 0 || n > c.Config.maxFieldLen() {
		return &InvalidLength{Field: field, Value: n, Cap: c.Config.maxFieldLen()}
	}
	return nil
}
