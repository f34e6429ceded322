// Package geniepeer defines the contracts for the sub-codecs the player-
// block codec delegates to but does not itself implement: unit-type,
// tech-tree, player-AI, unit, and victory-conditions decoding. Per
// spec.md §6 these are peer codecs — the player-block codec only fixes
// where they are invoked and what context they receive, not their
// internal format.
//
// The default implementations in this package are intentionally minimal:
// they read and write just enough to round-trip an opaque payload, not a
// full reverse-engineered format. A real deployment supplies its own
// UnitTypeCodec, TechTreeCodec, PlayerAICodec, UnitCodec, and
// VictoryConditionsCodec.
package geniepeer

import "io"

// UnitType is a peer-decoded compact unit-type prototype. Its shape is
// owned entirely by the UnitTypeCodec in use; this package only moves the
// opaque bytes it was given.
type UnitType struct {
	Raw []byte
}

// TechTree is a peer-decoded technology tree, opaque to the player-block
// codec.
type TechTree struct {
	Raw []byte
}

// PlayerAI is a peer-decoded AI script bundle, opaque to the player-block
// codec.
type PlayerAI struct {
	Raw []byte
}

// Unit is a single peer-decoded unit instance. Absent signals end-of-list
// for the unit-list scan in the player-block codec.
type Unit struct {
	Raw []byte
}

// VictoryConditions is a peer-decoded victory-condition bundle, invoked by
// the outer recording loader rather than the player-block codec itself.
type VictoryConditions struct {
	Raw []byte
}

// UnitTypeCodec decodes and encodes one CompactUnitType entry.
type UnitTypeCodec interface {
	Decode(r io.Reader) (UnitType, error)
	Encode(w io.Writer, ut UnitType) error
}

// TechTreeCodec decodes and encodes a civilization's tech tree.
type TechTreeCodec interface {
	Decode(r io.Reader) (TechTree, error)
	Encode(w io.Writer, t TechTree) error
}

// PlayerAICodec decodes and encodes an AI-controlled player's script
// bundle.
type PlayerAICodec interface {
	Decode(r io.Reader) (PlayerAI, error)
	Encode(w io.Writer, ai PlayerAI) error
}

// UnitCodec decodes and encodes one unit-list entry. Decode returns
// ok == false when the list terminator was read rather than a unit.
type UnitCodec interface {
	Decode(r io.Reader) (u Unit, ok bool, err error)
	Encode(w io.Writer, u Unit) error
	EncodeEnd(w io.Writer) error
}

// VictoryConditionsCodec decodes and encodes a match's victory
// conditions. The expanded flag mirrors spec.md §6's
// "VictoryConditions::decode(reader, expanded=true)" call made by the
// outer recording loader.
type VictoryConditionsCodec interface {
	Decode(r io.Reader, expanded bool) (VictoryConditions, error)
	Encode(w io.Writer, vc VictoryConditions) error
}

// Set bundles the five peer codecs a player-block decode/encode needs.
// Callers construct one and thread it through codec.Context.
type Set struct {
	UnitType          UnitTypeCodec
	TechTree          TechTreeCodec
	PlayerAI          PlayerAICodec
	Unit              UnitCodec
	VictoryConditions VictoryConditionsCodec
}
