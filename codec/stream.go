// This file contains the primitive byte-level reader and writer every
// other codec in this package is built on: little-endian fixed-width
// integers and floats, length-prefixed strings, and a forward skip.
//
// Grounded on repparser/slicereader.go's sliceReader, generalized from a
// slice-only reader to one backed by io.Reader/io.Writer so it satisfies
// spec.md §6's byte source/sink contract.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader reads little-endian primitives from an underlying io.Reader,
// tracking how many bytes have been consumed so callers can report
// positions in errors.
type Reader struct {
	r   io.Reader
	pos int64
}

// NewReader wraps r for primitive little-endian reads.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Pos returns the number of bytes consumed so far through r's own methods.
// Bytes a peer codec reads through Raw are not counted.
func (r *Reader) Pos() int64 { return r.pos }

// Raw exposes the underlying io.Reader, for handing off to a peer codec
// per spec.md §6. Reads made through it do not advance Pos.
func (r *Reader) Raw() io.Reader { return r.r }

func (r *Reader) fill(buf []byte) error {
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedEnd, err)
	}
	r.pos += int64(len(buf))
	return nil
}

// Uint8 reads one unsigned byte.
func (r *Reader) Uint8() (uint8, error) {
	var buf [1]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Int8 reads one signed byte.
func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

// Uint16 reads a little-endian unsigned 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	var buf [2]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// Int16 reads a little-endian signed 16-bit integer.
func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

// Uint32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) Uint32() (uint32, error) {
	var buf [4]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Int32 reads a little-endian signed 32-bit integer.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Float32 reads a little-endian IEEE-754 binary32 float.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Skip discards n bytes.
func (r *Reader) Skip(n int) error {
	if n == 0 {
		return nil
	}
	_, err := r.Bytes(n)
	return err
}

// String reads a byte string of known length as raw bytes (UTF-8 or
// legacy-encoded, per spec.md §6); callers decode with genie.DecodeGameString.
func (r *Reader) String(n int) ([]byte, error) {
	return r.Bytes(n)
}

// U16String reads a 16-bit-length-prefixed optional string's raw bytes.
// A zero length yields an empty (nil) slice.
func (r *Reader) U16String() ([]byte, error) {
	n, err := r.Uint16()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return r.Bytes(int(n))
}

// U8String reads an 8-bit-length-prefixed optional string's raw bytes.
func (r *Reader) U8String() ([]byte, error) {
	n, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return r.Bytes(int(n))
}

// Float32Slice reads n consecutive little-endian floats into a freshly
// allocated slice.
func (r *Reader) Float32Slice(n int) ([]float32, error) {
	out := make([]float32, n)
	for i := range out {
		v, err := r.Float32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Uint16Slice reads n consecutive little-endian uint16 values.
func (r *Reader) Uint16Slice(n int) ([]uint16, error) {
	out := make([]uint16, n)
	for i := range out {
		v, err := r.Uint16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Writer writes little-endian primitives to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	pos int64
}

// NewWriter wraps w for primitive little-endian writes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Pos returns the number of bytes written so far through w's own methods.
// Bytes a peer codec writes through Raw are not counted.
func (w *Writer) Pos() int64 { return w.pos }

// Raw exposes the underlying io.Writer, for handing off to a peer codec.
// Writes made through it do not advance Pos.
func (w *Writer) Raw() io.Writer { return w.w }

func (w *Writer) put(buf []byte) error {
	n, err := w.w.Write(buf)
	w.pos += int64(n)
	if err != nil {
		return fmt.Errorf("codec: short write: %w", err)
	}
	return nil
}

func (w *Writer) Uint8(v uint8) error   { return w.put([]byte{v}) }
func (w *Writer) Int8(v int8) error     { return w.Uint8(uint8(v)) }

func (w *Writer) Uint16(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return w.put(buf[:])
}
func (w *Writer) Int16(v int16) error { return w.Uint16(uint16(v)) }

func (w *Writer) Uint32(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return w.put(buf[:])
}
func (w *Writer) Int32(v int32) error { return w.Uint32(uint32(v)) }

func (w *Writer) Float32(v float32) error {
	return w.Uint32(math.Float32bits(v))
}

func (w *Writer) Bytes(b []byte) error { return w.put(b) }

// Skip writes n zero bytes, mirroring spec.md §6's "on-disk pointer
// fields... are ignored on read and written as 0".
func (w *Writer) Skip(n int) error {
	if n == 0 {
		return nil
	}
	return w.put(make([]byte, n))
}

// U16String writes b prefixed with its length as a uint16.
func (w *Writer) U16String(b []byte) error {
	if err := w.Uint16(uint16(len(b))); err != nil {
		return err
	}
	return w.Bytes(b)
}

// U8String writes b prefixed with its length as a uint8.
func (w *Writer) U8String(b []byte) error {
	if err := w.Uint8(uint8(len(b))); err != nil {
		return err
	}
	return w.Bytes(b)
}

func (w *Writer) Float32Slice(vs []float32) error {
	for _, v := range vs {
		if err := w.Float32(v); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Uint16Slice(vs []uint16) error {
	for _, v := range vs {
		if err := w.Uint16(v); err != nil {
			return err
		}
	}
	return nil
}
