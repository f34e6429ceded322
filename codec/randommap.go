// This file implements the two-phase random-map-info codec of spec.md
// §4.5.
//
// Grounded field-for-field on
// original_source/crates/genie-dat/src/random_map.rs
// (RandomMapInfo::from/finish/write_to/write_commands_to,
// RandomMapLand/Terrain/Object/Elevation::from/write_to).
package codec

import "github.com/genieio/geniecodec/genie"

// DecodeRandomMapInfoHeader is phase 1: the nine scalar fields, a
// discarded id, then four (count, pointer) pairs. Each child slice is
// preallocated to its declared length with zero-valued elements; call
// FinishRandomMapInfo to populate them.
func DecodeRandomMapInfoHeader(r *Reader) (genie.RandomMapInfo, error) {
	var info genie.RandomMapInfo
	var err error

	if info.ID, err = r.Int32(); err != nil {
		return info, err
	}
	for i := range info.Borders {
		if info.Borders[i], err = r.Int32(); err != nil {
			return info, err
		}
	}
	if info.BorderFade, err = r.Int32(); err != nil {
		return info, err
	}
	if info.WaterBorder, err = r.Int32(); err != nil {
		return info, err
	}
	if info.BaseTerrain, err = r.Int32(); err != nil {
		return info, err
	}
	if info.LandPercent, err = r.Int32(); err != nil {
		return info, err
	}

	if _, err = r.Int32(); err != nil { // discarded id
		return info, err
	}

	numLands, err := r.Uint32()
	if err != nil {
		return info, err
	}
	if _, err = r.Uint32(); err != nil { // pointer, ignored
		return info, err
	}
	numTerrains, err := r.Uint32()
	if err != nil {
		return info, err
	}
	if _, err = r.Uint32(); err != nil {
		return info, err
	}
	numObjects, err := r.Uint32()
	if err != nil {
		return info, err
	}
	if _, err = r.Uint32(); err != nil {
		return info, err
	}
	numElevations, err := r.Uint32()
	if err != nil {
		return info, err
	}
	if _, err = r.Uint32(); err != nil {
		return info, err
	}

	info.Lands = make([]genie.RandomMapLand, numLands)
	info.Terrains = make([]genie.RandomMapTerrain, numTerrains)
	info.Objects = make([]genie.RandomMapObject, numObjects)
	info.Elevations = make([]genie.RandomMapElevation, numElevations)

	return info, nil
}

// FinishRandomMapInfo is phase 2: it consumes the per-section padding and
// the four child payload arrays, populating the slices
// DecodeRandomMapInfoHeader preallocated.
func FinishRandomMapInfo(r *Reader, info *genie.RandomMapInfo) error {
	if err := r.Skip(44); err != nil {
		return err
	}
	for i := range info.Lands {
		land, err := decodeRandomMapLand(r)
		if err != nil {
			return err
		}
		info.Lands[i] = land
	}

	if err := r.Skip(8); err != nil {
		return err
	}
	for i := range info.Terrains {
		t, err := decodeRandomMapTerrain(r)
		if err != nil {
			return err
		}
		info.Terrains[i] = t
	}

	if err := r.Skip(8); err != nil {
		return err
	}
	for i := range info.Objects {
		o, err := decodeRandomMapObject(r)
		if err != nil {
			return err
		}
		info.Objects[i] = o
	}

	if err := r.Skip(8); err != nil {
		return err
	}
	for i := range info.Elevations {
		e, err := decodeRandomMapElevation(r)
		if err != nil {
			return err
		}
		info.Elevations[i] = e
	}

	return nil
}

func decodeRandomMapLand(r *Reader) (genie.RandomMapLand, error) {
	var l genie.RandomMapLand
	var err error
	if l.ID, err = r.Int32(); err != nil {
		return l, err
	}
	ttByte, err := r.Uint8()
	if err != nil {
		return l, err
	}
	l.TerrainType = ttByte
	if err = r.Skip(2); err != nil { // u16 padding
		return l, err
	}
	if err = r.Skip(1); err != nil { // u8 padding
		return l, err
	}
	if l.LandAvoidanceTiles, err = r.Int32(); err != nil {
		return l, err
	}
	if l.BaseSquareRadius, err = r.Int32(); err != nil {
		return l, err
	}
	if l.Zone, err = r.Int8(); err != nil {
		return l, err
	}
	if l.PlacementType, err = r.Int8(); err != nil {
		return l, err
	}
	if err = r.Skip(2); err != nil { // u16 padding
		return l, err
	}
	if l.X, err = r.Int32(); err != nil {
		return l, err
	}
	if l.Y, err = r.Int32(); err != nil {
		return l, err
	}
	if l.AmountOfLandUsedPercent, err = r.Int8(); err != nil {
		return l, err
	}
	if l.ByPlayerFlag, err = r.Int8(); err != nil {
		return l, err
	}
	if err = r.Skip(2); err != nil { // u16 padding
		return l, err
	}
	if l.Radius, err = r.Int32(); err != nil {
		return l, err
	}
	if l.Fade, err = r.Int32(); err != nil {
		return l, err
	}
	if l.ClumpinessFactor, err = r.Int32(); err != nil {
		return l, err
	}
	return l, nil
}

func encodeRandomMapLand(w *Writer, l genie.RandomMapLand) error {
	if err := w.Int32(l.ID); err != nil {
		return err
	}
	if err := w.Uint8(l.TerrainType); err != nil {
		return err
	}
	if err := w.Skip(2); err != nil {
		return err
	}
	if err := w.Skip(1); err != nil {
		return err
	}
	if err := w.Int32(l.LandAvoidanceTiles); err != nil {
		return err
	}
	if err := w.Int32(l.BaseSquareRadius); err != nil {
		return err
	}
	if err := w.Int8(l.Zone); err != nil {
		return err
	}
	if err := w.Int8(l.PlacementType); err != nil {
		return err
	}
	if err := w.Skip(2); err != nil {
		return err
	}
	if err := w.Int32(l.X); err != nil {
		return err
	}
	if err := w.Int32(l.Y); err != nil {
		return err
	}
	if err := w.Int8(l.AmountOfLandUsedPercent); err != nil {
		return err
	}
	if err := w.Int8(l.ByPlayerFlag); err != nil {
		return err
	}
	if err := w.Skip(2); err != nil {
		return err
	}
	if err := w.Int32(l.Radius); err != nil {
		return err
	}
	if err := w.Int32(l.Fade); err != nil {
		return err
	}
	return w.Int32(l.ClumpinessFactor)
}

func decodeRandomMapTerrain(r *Reader) (genie.RandomMapTerrain, error) {
	var t genie.RandomMapTerrain
	var err error
	if t.Percent, err = r.Int32(); err != nil {
		return t, err
	}
	if t.TerrainType, err = r.Int32(); err != nil {
		return t, err
	}
	if t.Clumps, err = r.Int32(); err != nil {
		return t, err
	}
	if t.Spacing, err = r.Int32(); err != nil {
		return t, err
	}
	if t.BaseTerrainType, err = r.Int32(); err != nil {
		return t, err
	}
	if t.ClumpinessFactor, err = r.Int32(); err != nil {
		return t, err
	}
	return t, nil
}

func encodeRandomMapTerrain(w *Writer, t genie.RandomMapTerrain) error {
	if err := w.Int32(t.Percent); err != nil {
		return err
	}
	if err := w.Int32(t.TerrainType); err != nil {
		return err
	}
	if err := w.Int32(t.Clumps); err != nil {
		return err
	}
	if err := w.Int32(t.Spacing); err != nil {
		return err
	}
	if err := w.Int32(t.BaseTerrainType); err != nil {
		return err
	}
	return w.Int32(t.ClumpinessFactor)
}

func decodeRandomMapObject(r *Reader) (genie.RandomMapObject, error) {
	var o genie.RandomMapObject
	var err error
	if o.UnitType, err = r.Int32(); err != nil {
		return o, err
	}
	if o.TerrainType, err = r.Int32(); err != nil {
		return o, err
	}
	if o.GroupFlag, err = r.Int8(); err != nil {
		return o, err
	}
	if o.ScaleFlag, err = r.Int8(); err != nil {
		return o, err
	}
	if err = r.Skip(2); err != nil {
		return o, err
	}
	if o.GroupSize, err = r.Int32(); err != nil {
		return o, err
	}
	if o.GroupSizeVariance, err = r.Int32(); err != nil {
		return o, err
	}
	if o.GroupCount, err = r.Int32(); err != nil {
		return o, err
	}
	if o.GroupArea, err = r.Int32(); err != nil {
		return o, err
	}
	if o.PlayerID, err = r.Int32(); err != nil {
		return o, err
	}
	if o.LandID, err = r.Int32(); err != nil {
		return o, err
	}
	if o.MinDistanceToPlayers, err = r.Int32(); err != nil {
		return o, err
	}
	if o.MaxDistanceToPlayers, err = r.Int32(); err != nil {
		return o, err
	}
	return o, nil
}

func encodeRandomMapObject(w *Writer, o genie.RandomMapObject) error {
	if err := w.Int32(o.UnitType); err != nil {
		return err
	}
	if err := w.Int32(o.TerrainType); err != nil {
		return err
	}
	if err := w.Int8(o.GroupFlag); err != nil {
		return err
	}
	if err := w.Int8(o.ScaleFlag); err != nil {
		return err
	}
	if err := w.Skip(2); err != nil {
		return err
	}
	if err := w.Int32(o.GroupSize); err != nil {
		return err
	}
	if err := w.Int32(o.GroupSizeVariance); err != nil {
		return err
	}
	if err := w.Int32(o.GroupCount); err != nil {
		return err
	}
	if err := w.Int32(o.GroupArea); err != nil {
		return err
	}
	if err := w.Int32(o.PlayerID); err != nil {
		return err
	}
	if err := w.Int32(o.LandID); err != nil {
		return err
	}
	if err := w.Int32(o.MinDistanceToPlayers); err != nil {
		return err
	}
	return w.Int32(o.MaxDistanceToPlayers)
}

func decodeRandomMapElevation(r *Reader) (genie.RandomMapElevation, error) {
	var e genie.RandomMapElevation
	var err error
	if e.Percent, err = r.Int32(); err != nil {
		return e, err
	}
	if e.Height, err = r.Int32(); err != nil {
		return e, err
	}
	if e.Clumps, err = r.Int32(); err != nil {
		return e, err
	}
	if e.Spacing, err = r.Int32(); err != nil {
		return e, err
	}
	if e.BaseTerrainType, err = r.Int32(); err != nil {
		return e, err
	}
	if e.BaseElevation, err = r.Int32(); err != nil {
		return e, err
	}
	return e, nil
}

func encodeRandomMapElevation(w *Writer, e genie.RandomMapElevation) error {
	if err := w.Int32(e.Percent); err != nil {
		return err
	}
	if err := w.Int32(e.Height); err != nil {
		return err
	}
	if err := w.Int32(e.Clumps); err != nil {
		return err
	}
	if err := w.Int32(e.Spacing); err != nil {
		return err
	}
	if err := w.Int32(e.BaseTerrainType); err != nil {
		return err
	}
	return w.Int32(e.BaseElevation)
}

// EncodeRandomMapInfoHeader writes only the header segment (the nine
// scalars, a zero discarded-id, and the four (count, 0) pairs), matching
// DecodeRandomMapInfoHeader's identity on that segment.
func EncodeRandomMapInfoHeader(w *Writer, info genie.RandomMapInfo) error {
	if err := writeRandomMapScalars(w, info); err != nil {
		return err
	}
	if err := w.Int32(0); err != nil { // discarded id
		return err
	}
	if err := w.Uint32(uint32(len(info.Lands))); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil {
		return err
	}
	if err := w.Uint32(uint32(len(info.Terrains))); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil {
		return err
	}
	if err := w.Uint32(uint32(len(info.Objects))); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil {
		return err
	}
	if err := w.Uint32(uint32(len(info.Elevations))); err != nil {
		return err
	}
	return w.Uint32(0)
}

// EncodeRandomMapInfoCommands writes the interleaved "commands" form:
// count, zero pointer, then payload, for each of the four sections in
// turn, after the scalar header.
func EncodeRandomMapInfoCommands(w *Writer, info genie.RandomMapInfo) error {
	if err := writeRandomMapScalars(w, info); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil { // discarded id
		return err
	}

	if err := w.Uint32(uint32(len(info.Lands))); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil {
		return err
	}
	for _, l := range info.Lands {
		if err := encodeRandomMapLand(w, l); err != nil {
			return err
		}
	}

	if err := w.Uint32(uint32(len(info.Terrains))); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil {
		return err
	}
	for _, t := range info.Terrains {
		if err := encodeRandomMapTerrain(w, t); err != nil {
			return err
		}
	}

	if err := w.Uint32(uint32(len(info.Objects))); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil {
		return err
	}
	for _, o := range info.Objects {
		if err := encodeRandomMapObject(w, o); err != nil {
			return err
		}
	}

	if err := w.Uint32(uint32(len(info.Elevations))); err != nil {
		return err
	}
	if err := w.Uint32(0); err != nil {
		return err
	}
	for _, e := range info.Elevations {
		if err := encodeRandomMapElevation(w, e); err != nil {
			return err
		}
	}

	return nil
}

func writeRandomMapScalars(w *Writer, info genie.RandomMapInfo) error {
	if err := w.Int32(info.ID); err != nil {
		return err
	}
	for _, b := range info.Borders {
		if err := w.Int32(b); err != nil {
			return err
		}
	}
	if err := w.Int32(info.BorderFade); err != nil {
		return err
	}
	if err := w.Int32(info.WaterBorder); err != nil {
		return err
	}
	if err := w.Int32(info.BaseTerrain); err != nil {
		return err
	}
	return w.Int32(info.LandPercent)
}
