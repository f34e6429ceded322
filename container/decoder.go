// Package container decodes the outer recording-file framing a Genie
// engine recorded game wraps around its Header and Commands streams:
// chunked, zlib-compressed sections. This sits outside the player-block
// CORE codec entirely (spec.md §1 scopes it out explicitly) — it exists
// only so cmd/geniedump has a realistic way to point at a whole recorded
// game file instead of a bare player-block byte stream.
//
// Grounded on repparser/repdecoder/repdecoder.go + modern.go's
// modernDecoder.Section: the same chunked-zlib-section mechanism, renamed
// to Genie's section vocabulary (Header, Commands) and stripped of the
// SC:BW legacy/modern format-detection split, since Genie recorded games
// carry a single, uniform section framing.
package container

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrNoMoreSections is returned by NewSection once every section of a
// recording has been consumed.
var ErrNoMoreSections = errors.New("container: no more sections")

// Section identifies one of the two top-level streams a recorded game
// file carries, in on-disk order.
type Section int

const (
	// SectionHeader is the game settings / scenario / player-block
	// stream.
	SectionHeader Section = iota
	// SectionCommands is the recorded input-command stream.
	SectionCommands
)

// Decoder reads and decompresses the chunked sections of a recorded game
// file.
type Decoder struct {
	r   io.Reader
	buf []byte

	sectionsRead int
}

// New wraps r for section-by-section decoding.
func New(r io.Reader) *Decoder {
	return &Decoder{r: r, buf: make([]byte, 0x2000)}
}

// NewFromBytes wraps an in-memory recording for section-by-section
// decoding.
func NewFromBytes(b []byte) *Decoder {
	return New(bytes.NewReader(b))
}

func (d *Decoder) readInt32() (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

// NewSection must be called once before decoding each section, including
// the first. It returns ErrNoMoreSections once both sections have been
// consumed.
func (d *Decoder) NewSection() error {
	if d.sectionsRead >= 2 {
		return ErrNoMoreSections
	}
	d.sectionsRead++
	return nil
}

// Section reads and decompresses one section: a checksum (ignored), a
// chunk count, then that many (length-prefixed, individually
// zlib-compressed) chunks concatenated together.
func (d *Decoder) Section() ([]byte, error) {
	if _, err := d.readInt32(); err != nil { // checksum, not verified
		return nil, fmt.Errorf("container: reading section checksum: %w", err)
	}
	count, err := d.readInt32()
	if err != nil {
		return nil, fmt.Errorf("container: reading chunk count: %w", err)
	}

	out := new(bytes.Buffer)
	var zr io.ReadCloser
	for ; count > 0; count-- {
		length, err := d.readInt32()
		if err != nil {
			return nil, fmt.Errorf("container: reading chunk length: %w", err)
		}
		if int32(len(d.buf)) < length {
			d.buf = make([]byte, length)
		}
		chunk := d.buf[:length]
		if _, err := io.ReadFull(d.r, chunk); err != nil {
			return nil, fmt.Errorf("container: reading chunk body: %w", err)
		}

		if resetter, ok := zr.(zlib.Resetter); ok {
			err = resetter.Reset(bytes.NewReader(chunk), nil)
		} else {
			zr, err = zlib.NewReader(bytes.NewReader(chunk))
		}
		if err != nil {
			return nil, fmt.Errorf("container: opening chunk zlib stream: %w", err)
		}
		if _, err := io.Copy(out, zr); err != nil {
			return nil, fmt.Errorf("container: inflating chunk: %w", err)
		}
	}
	if zr != nil {
		zr.Close()
	}

	return out.Bytes(), nil
}

// Close releases the underlying reader if it supports closing.
func (d *Decoder) Close() error {
	if c, ok := d.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
