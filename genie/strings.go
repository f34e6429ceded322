// This file contains the fallback string decoding used for player names and
// diplomacy messages that predate UTF-8 adoption in the engine.
package genie

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeGameString decodes a raw, NUL-padded on-disk byte run into a Go
// string. Per spec.md §6, strings are UTF-8 bytes; in practice many real
// recordings predate UTF-8 and carry Windows-1252 bytes instead. Mirrors
// the teacher's repparser.koreanString: try UTF-8 first, and only fall back
// to a fixed legacy code page when the bytes aren't valid UTF-8.
func DecodeGameString(b []byte) string {
	b = trimTrailingNUL(b)
	if utf8.Valid(b) {
		return string(b)
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), b)
	if err != nil {
		// Best effort: return the raw bytes rather than fail a field that
		// is cosmetic (a name), never semantically load-bearing.
		return string(b)
	}
	return string(trimTrailingNUL(decoded))
}

func trimTrailingNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}
