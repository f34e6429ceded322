package geniepeer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// rawLenPrefixed reads a u32-length-prefixed byte blob. It is the shared
// shape behind every default codec in this file: each treats its payload
// as an opaque, length-prefixed run of bytes.
func rawLenPrefixed(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("geniepeer: reading length prefix: %w", err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("geniepeer: reading %d byte payload: %w", n, err)
	}
	return buf, nil
}

func writeLenPrefixed(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(b))); err != nil {
		return fmt.Errorf("geniepeer: writing length prefix: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("geniepeer: writing payload: %w", err)
	}
	return nil
}

// DefaultUnitTypeCodec round-trips unit-type prototypes as opaque,
// length-prefixed blobs.
type DefaultUnitTypeCodec struct{}

func (DefaultUnitTypeCodec) Decode(r io.Reader) (UnitType, error) {
	b, err := rawLenPrefixed(r)
	return UnitType{Raw: b}, err
}

func (DefaultUnitTypeCodec) Encode(w io.Writer, ut UnitType) error {
	return writeLenPrefixed(w, ut.Raw)
}

// DefaultTechTreeCodec round-trips a tech tree as an opaque, length-
// prefixed blob.
type DefaultTechTreeCodec struct{}

func (DefaultTechTreeCodec) Decode(r io.Reader) (TechTree, error) {
	b, err := rawLenPrefixed(r)
	return TechTree{Raw: b}, err
}

func (DefaultTechTreeCodec) Encode(w io.Writer, t TechTree) error {
	return writeLenPrefixed(w, t.Raw)
}

// DefaultPlayerAICodec round-trips an AI script bundle as an opaque,
// length-prefixed blob.
type DefaultPlayerAICodec struct{}

func (DefaultPlayerAICodec) Decode(r io.Reader) (PlayerAI, error) {
	b, err := rawLenPrefixed(r)
	return PlayerAI{Raw: b}, err
}

func (DefaultPlayerAICodec) Encode(w io.Writer, ai PlayerAI) error {
	return writeLenPrefixed(w, ai.Raw)
}

// DefaultVictoryConditionsCodec round-trips victory conditions as an
// opaque, length-prefixed blob. The expanded flag is accepted for
// interface compatibility but does not change the default layout.
type DefaultVictoryConditionsCodec struct{}

func (DefaultVictoryConditionsCodec) Decode(r io.Reader, expanded bool) (VictoryConditions, error) {
	b, err := rawLenPrefixed(r)
	return VictoryConditions{Raw: b}, err
}

func (DefaultVictoryConditionsCodec) Encode(w io.Writer, vc VictoryConditions) error {
	return writeLenPrefixed(w, vc.Raw)
}

// unitListEnd is the sentinel length value DefaultUnitCodec writes in
// place of a real unit to signal "no more units", mirroring the real
// engine's use of an absent-Unit::decode result as a list terminator.
const unitListEnd = 0xFFFFFFFF

// DefaultUnitCodec round-trips unit-list entries as opaque, length-
// prefixed blobs, using a reserved length value as the list terminator.
type DefaultUnitCodec struct{}

func (DefaultUnitCodec) Decode(r io.Reader) (Unit, bool, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return Unit{}, false, fmt.Errorf("geniepeer: reading unit length prefix: %w", err)
	}
	if n == unitListEnd {
		return Unit{}, false, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Unit{}, false, fmt.Errorf("geniepeer: reading %d byte unit payload: %w", n, err)
	}
	return Unit{Raw: buf}, true, nil
}

func (DefaultUnitCodec) Encode(w io.Writer, u Unit) error {
	return writeLenPrefixed(w, u.Raw)
}

func (DefaultUnitCodec) EncodeEnd(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, uint32(unitListEnd))
}

// DefaultSet returns a Set backed by the opaque-blob default codecs
// above. It exists so round-trip tests don't each need to hand-wire a
// full Set.
func DefaultSet() Set {
	return Set{
		UnitType:          DefaultUnitTypeCodec{},
		TechTree:          DefaultTechTreeCodec{},
		PlayerAI:          DefaultPlayerAICodec{},
		Unit:              DefaultUnitCodec{},
		VictoryConditions: DefaultVictoryConditionsCodec{},
	}
}
