// This file implements the player sub-record leaf codecs of spec.md
// §4.6: diplomacy offers, history entries/events, tech state, player
// tech, visible map, visible resources, gaia data, and the user-patch
// payload.
//
// Grounded field-for-field on
// original_source/crates/genie-rec/src/player.rs, generalized per spec
// §4.6 for the version gates the original predates.
package codec

import (
	"github.com/genieio/geniecodec/genie"
	"github.com/genieio/geniecodec/genie/geniecore"
)

// DecodeDiplomacyOffer reads one DiplomacyOffer: a run of fixed 8/32-bit
// fields, an 8-bit-length-prefixed message, then a trailing status byte.
func DecodeDiplomacyOffer(r *Reader) (genie.DiplomacyOffer, error) {
	var o genie.DiplomacyOffer
	var err error
	if o.Sequence, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.StartedBy, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.GameTime, err = r.Uint32(); err != nil {
		return o, err
	}
	if o.Declare, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.OldDiplomacy, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.NewDiplomacy, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.OldIntelligence, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.NewIntelligence, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.OldTrade, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.NewTrade, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.Demand, err = r.Uint8(); err != nil {
		return o, err
	}
	if o.Gold, err = r.Uint32(); err != nil {
		return o, err
	}
	msg, err := r.U8String()
	if err != nil {
		return o, err
	}
	o.Message = genie.DecodeGameString(msg)
	if o.Status, err = r.Uint8(); err != nil {
		return o, err
	}
	return o, nil
}

// EncodeDiplomacyOffer writes o in the same order DecodeDiplomacyOffer
// reads it.
func EncodeDiplomacyOffer(w *Writer, o genie.DiplomacyOffer) error {
	for _, v := range []uint8{o.Sequence, o.StartedBy} {
		if err := w.Uint8(v); err != nil {
			return err
		}
	}
	if err := w.Uint32(o.GameTime); err != nil {
		return err
	}
	for _, v := range []uint8{o.Declare, o.OldDiplomacy, o.NewDiplomacy, o.OldIntelligence,
		o.NewIntelligence, o.OldTrade, o.NewTrade, o.Demand} {
		if err := w.Uint8(v); err != nil {
			return err
		}
	}
	if err := w.Uint32(o.Gold); err != nil {
		return err
	}
	if err := w.U8String([]byte(o.Message)); err != nil {
		return err
	}
	return w.Uint8(o.Status)
}

// DecodeHistoryEntry reads one HistoryEntry (two u16 population counts).
func DecodeHistoryEntry(r *Reader) (genie.HistoryEntry, error) {
	var e genie.HistoryEntry
	var err error
	if e.CivilianPopulation, err = r.Uint16(); err != nil {
		return e, err
	}
	if e.MilitaryPopulation, err = r.Uint16(); err != nil {
		return e, err
	}
	return e, nil
}

func EncodeHistoryEntry(w *Writer, e genie.HistoryEntry) error {
	if err := w.Uint16(e.CivilianPopulation); err != nil {
		return err
	}
	return w.Uint16(e.MilitaryPopulation)
}

// DecodeHistoryEvent reads one HistoryEvent (8-bit type, two u32 times,
// three float32 params).
func DecodeHistoryEvent(r *Reader) (genie.HistoryEvent, error) {
	var e genie.HistoryEvent
	var err error
	if e.EventType, err = r.Int8(); err != nil {
		return e, err
	}
	if e.TimeSlice, err = r.Uint32(); err != nil {
		return e, err
	}
	if e.WorldTime, err = r.Uint32(); err != nil {
		return e, err
	}
	for i := range e.Params {
		if e.Params[i], err = r.Float32(); err != nil {
			return e, err
		}
	}
	return e, nil
}

func EncodeHistoryEvent(w *Writer, e genie.HistoryEvent) error {
	if err := w.Int8(e.EventType); err != nil {
		return err
	}
	if err := w.Uint32(e.TimeSlice); err != nil {
		return err
	}
	if err := w.Uint32(e.WorldTime); err != nil {
		return err
	}
	for _, p := range e.Params {
		if err := w.Float32(p); err != nil {
			return err
		}
	}
	return nil
}

// DecodeHistoryInfo reads a full HistoryInfo, per spec.md §4.6: an
// (entries count, ignored events placeholder, entries capacity) header;
// that many entries; a stored discriminator byte; the real events count
// and that many events; the trailing statistics bank; a final padding
// byte.
func DecodeHistoryInfo(ctx *Context, r *Reader) (genie.HistoryInfo, error) {
	var h genie.HistoryInfo
	var err error

	numEntries, err := r.Uint32()
	if err != nil {
		return h, err
	}
	if h.EventsPlaceholder, err = r.Uint32(); err != nil {
		return h, err
	}
	if h.EntriesCapacity, err = r.Uint32(); err != nil {
		return h, err
	}
	if err := ctx.checkLen("HistoryInfo.Entries", int64(numEntries)); err != nil {
		return h, err
	}
	h.Entries = make([]genie.HistoryEntry, numEntries)
	for i := range h.Entries {
		if h.Entries[i], err = DecodeHistoryEntry(r); err != nil {
			return h, err
		}
	}

	discriminator, err := r.Uint8()
	if err != nil {
		return h, err
	}
	h.IsGaia = discriminator == 22

	numEvents, err := r.Uint32()
	if err != nil {
		return h, err
	}
	if err := ctx.checkLen("HistoryInfo.Events", int64(numEvents)); err != nil {
		return h, err
	}
	h.Events = make([]genie.HistoryEvent, numEvents)
	for i := range h.Events {
		if h.Events[i], err = DecodeHistoryEvent(r); err != nil {
			return h, err
		}
	}

	if err := decodeHistoryStats(r, &h.Stats); err != nil {
		return h, err
	}

	if err := r.Skip(1); err != nil { // final padding byte
		return h, err
	}

	return h, nil
}

func decodeHistoryStats(r *Reader, s *genie.HistoryStats) error {
	fields := []*int32{
		&s.Razings, &s.HitPointsRazed, &s.RazedByOthers, &s.HitPointsRazedByOthers,
		&s.Kills, &s.HitPointsKilled, &s.KilledByOthers, &s.HitPointsKilledByOthers,
		&s.RazingsWeight, &s.KillsWeight, &s.RazingsPercent, &s.KillsPercent,
		&s.RazingMode, &s.BattleMode, &s.UpdateCount,
		&s.OldCurrentUnitsCreated, &s.OldCurrentBuildingsBuilt,
	}
	for _, f := range fields {
		v, err := r.Int32()
		if err != nil {
			return err
		}
		*f = v
	}
	for i := range s.OldKills {
		v, err := r.Uint16()
		if err != nil {
			return err
		}
		s.OldKills[i] = v
	}
	for i := range s.OldKillBVs {
		v, err := r.Uint32()
		if err != nil {
			return err
		}
		s.OldKillBVs[i] = v
	}
	for i := range s.OldRazings {
		v, err := r.Uint16()
		if err != nil {
			return err
		}
		s.OldRazings[i] = v
	}
	for i := range s.OldRazingBVs {
		v, err := r.Uint32()
		if err != nil {
			return err
		}
		s.OldRazingBVs[i] = v
	}
	trailing := []*int32{&s.RunningAverageBVPercent, &s.RunningTotalBVKills, &s.RunningTotalBVRazings}
	for _, f := range trailing {
		v, err := r.Int32()
		if err != nil {
			return err
		}
		*f = v
	}
	v, err := r.Int16()
	if err != nil {
		return err
	}
	s.RunningTotalKills = v
	if v, err = r.Int16(); err != nil {
		return err
	}
	s.RunningTotalRazings = v
	return nil
}

// EncodeHistoryInfo writes h in the same order DecodeHistoryInfo reads
// it.
func EncodeHistoryInfo(w *Writer, h genie.HistoryInfo) error {
	if err := w.Uint32(uint32(len(h.Entries))); err != nil {
		return err
	}
	if err := w.Uint32(h.EventsPlaceholder); err != nil {
		return err
	}
	if err := w.Uint32(h.EntriesCapacity); err != nil {
		return err
	}
	for _, e := range h.Entries {
		if err := EncodeHistoryEntry(w, e); err != nil {
			return err
		}
	}

	discriminator := uint8(0)
	if h.IsGaia {
		discriminator = 22
	}
	if err := w.Uint8(discriminator); err != nil {
		return err
	}

	if err := w.Uint32(uint32(len(h.Events))); err != nil {
		return err
	}
	for _, e := range h.Events {
		if err := EncodeHistoryEvent(w, e); err != nil {
			return err
		}
	}

	if err := encodeHistoryStats(w, h.Stats); err != nil {
		return err
	}

	return w.Skip(1)
}

func encodeHistoryStats(w *Writer, s genie.HistoryStats) error {
	fields := []int32{
		s.Razings, s.HitPointsRazed, s.RazedByOthers, s.HitPointsRazedByOthers,
		s.Kills, s.HitPointsKilled, s.KilledByOthers, s.HitPointsKilledByOthers,
		s.RazingsWeight, s.KillsWeight, s.RazingsPercent, s.KillsPercent,
		s.RazingMode, s.BattleMode, s.UpdateCount,
		s.OldCurrentUnitsCreated, s.OldCurrentBuildingsBuilt,
	}
	for _, f := range fields {
		if err := w.Int32(f); err != nil {
			return err
		}
	}
	for _, v := range s.OldKills {
		if err := w.Uint16(v); err != nil {
			return err
		}
	}
	for _, v := range s.OldKillBVs {
		if err := w.Uint32(v); err != nil {
			return err
		}
	}
	for _, v := range s.OldRazings {
		if err := w.Uint16(v); err != nil {
			return err
		}
	}
	for _, v := range s.OldRazingBVs {
		if err := w.Uint32(v); err != nil {
			return err
		}
	}
	for _, v := range []int32{s.RunningAverageBVPercent, s.RunningTotalBVKills, s.RunningTotalBVRazings} {
		if err := w.Int32(v); err != nil {
			return err
		}
	}
	if err := w.Int16(s.RunningTotalKills); err != nil {
		return err
	}
	return w.Int16(s.RunningTotalRazings)
}

// techStateDESkipBytes is the extra padding TechState carries starting
// at VariantDefinitiveEdition, per spec.md §4.6.
const techStateDESkipBytes = 15

// DecodeTechState reads one TechState: float progress, 5 signed 16-bit
// fields, plus a DE-only 15-byte skip.
func DecodeTechState(ctx *Context, r *Reader) (genie.TechState, error) {
	var t genie.TechState
	var err error
	if t.Progress, err = r.Float32(); err != nil {
		return t, err
	}
	if t.State, err = r.Int16(); err != nil {
		return t, err
	}
	for i := range t.Modifiers {
		if t.Modifiers[i], err = r.Int16(); err != nil {
			return t, err
		}
	}
	if t.TimeModifier, err = r.Int16(); err != nil {
		return t, err
	}
	if ctx.Variant >= geniecore.VariantDefinitiveEdition {
		if err := r.Skip(techStateDESkipBytes); err != nil {
			return t, err
		}
	}
	return t, nil
}

func EncodeTechState(ctx *Context, w *Writer, t genie.TechState) error {
	if err := w.Float32(t.Progress); err != nil {
		return err
	}
	if err := w.Int16(t.State); err != nil {
		return err
	}
	for _, v := range t.Modifiers {
		if err := w.Int16(v); err != nil {
			return err
		}
	}
	if err := w.Int16(t.TimeModifier); err != nil {
		return err
	}
	if ctx.Variant >= geniecore.VariantDefinitiveEdition {
		if err := w.Skip(techStateDESkipBytes); err != nil {
			return err
		}
	}
	return nil
}

// DecodePlayerTech reads a PlayerTech: a u16 count then that many
// TechState values.
func DecodePlayerTech(ctx *Context, r *Reader) (genie.PlayerTech, error) {
	var pt genie.PlayerTech
	n, err := r.Uint16()
	if err != nil {
		return pt, err
	}
	pt.Techs = make([]genie.TechState, n)
	for i := range pt.Techs {
		if pt.Techs[i], err = DecodeTechState(ctx, r); err != nil {
			return pt, err
		}
	}
	return pt, nil
}

func EncodePlayerTech(ctx *Context, w *Writer, pt genie.PlayerTech) error {
	if err := w.Uint16(uint16(len(pt.Techs))); err != nil {
		return err
	}
	for _, t := range pt.Techs {
		if err := EncodeTechState(ctx, w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeVisibleMap reads a VisibleMap per spec.md §4.6: width, height,
// an optional explored-tiles count, a player id, then width*height
// tiles, widened from 8-bit on pre-Definitive-Edition recordings.
func DecodeVisibleMap(ctx *Context, r *Reader) (genie.VisibleMap, error) {
	var m genie.VisibleMap
	var err error
	if m.Width, err = r.Int32(); err != nil {
		return m, err
	}
	if m.Height, err = r.Int32(); err != nil {
		return m, err
	}
	if ctx.at(geniecore.VerExploredTiles) {
		if m.ExploredTiles, err = r.Uint32(); err != nil {
			return m, err
		}
	}
	if m.PlayerID, err = r.Uint16(); err != nil {
		return m, err
	}

	n := int64(m.Width) * int64(m.Height)
	if err := ctx.checkLen("VisibleMap.Tiles", n); err != nil {
		return m, err
	}
	m.Tiles = make([]int16, n)
	for i := range m.Tiles {
		if ctx.Variant >= geniecore.VariantDefinitiveEdition {
			v, err := r.Int16()
			if err != nil {
				return m, err
			}
			m.Tiles[i] = v
		} else {
			v, err := r.Int8()
			if err != nil {
				return m, err
			}
			m.Tiles[i] = int16(v)
		}
	}
	return m, nil
}

// EncodeVisibleMap writes m back out, narrowing tiles to 8-bit for
// pre-Definitive-Edition variants so encode∘decode round-trips
// bit-exactly per spec.md §8.
func EncodeVisibleMap(ctx *Context, w *Writer, m genie.VisibleMap) error {
	if err := w.Int32(m.Width); err != nil {
		return err
	}
	if err := w.Int32(m.Height); err != nil {
		return err
	}
	if ctx.at(geniecore.VerExploredTiles) {
		if err := w.Uint32(m.ExploredTiles); err != nil {
			return err
		}
	}
	if err := w.Uint16(m.PlayerID); err != nil {
		return err
	}
	for _, t := range m.Tiles {
		if ctx.Variant >= geniecore.VariantDefinitiveEdition {
			if err := w.Int16(t); err != nil {
				return err
			}
		} else {
			if err := w.Int8(int8(t)); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeVisibleResources reads a VisibleResources: a u32 list count,
// then per list a capacity, a size, and that many VisibleResource
// records.
func DecodeVisibleResources(ctx *Context, r *Reader) (genie.VisibleResources, error) {
	var vr genie.VisibleResources
	count, err := r.Uint32()
	if err != nil {
		return vr, err
	}
	if err := ctx.checkLen("VisibleResources.Lists", int64(count)); err != nil {
		return vr, err
	}
	vr.Lists = make([]genie.VisibleResourceList, count)
	for i := range vr.Lists {
		cap32, err := r.Uint32()
		if err != nil {
			return vr, err
		}
		size, err := r.Uint32()
		if err != nil {
			return vr, err
		}
		if err := ctx.checkLen("VisibleResources.Lists[].Resources", int64(size)); err != nil {
			return vr, err
		}
		list := genie.VisibleResourceList{Capacity: cap32, Resources: make([]genie.VisibleResource, size)}
		for j := range list.Resources {
			res, err := decodeVisibleResource(r)
			if err != nil {
				return vr, err
			}
			list.Resources[j] = res
		}
		vr.Lists[i] = list
	}
	return vr, nil
}

func decodeVisibleResource(r *Reader) (genie.VisibleResource, error) {
	var res genie.VisibleResource
	rawID, err := r.Int32()
	if err != nil {
		return res, err
	}
	res.ObjectID = genie.DecodeOptionalObjectID(rawID)
	if res.Distance, err = r.Float32(); err != nil {
		return res, err
	}
	if res.Zone, err = r.Int32(); err != nil {
		return res, err
	}
	if res.X, err = r.Float32(); err != nil {
		return res, err
	}
	if res.Y, err = r.Float32(); err != nil {
		return res, err
	}
	return res, nil
}

func EncodeVisibleResources(w *Writer, vr genie.VisibleResources) error {
	if err := w.Uint32(uint32(len(vr.Lists))); err != nil {
		return err
	}
	for _, list := range vr.Lists {
		if err := w.Uint32(list.Capacity); err != nil {
			return err
		}
		if err := w.Uint32(uint32(len(list.Resources))); err != nil {
			return err
		}
		for _, res := range list.Resources {
			if err := encodeVisibleResource(w, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeVisibleResource(w *Writer, res genie.VisibleResource) error {
	if err := w.Int32(res.ObjectID.Encode()); err != nil {
		return err
	}
	if err := w.Float32(res.Distance); err != nil {
		return err
	}
	if err := w.Int32(res.Zone); err != nil {
		return err
	}
	if err := w.Float32(res.X); err != nil {
		return err
	}
	return w.Float32(res.Y)
}

// DecodeGaiaCreature reads one GaiaCreature (two floats, one u32).
func DecodeGaiaCreature(r *Reader) (genie.GaiaCreature, error) {
	var c genie.GaiaCreature
	var err error
	if c.GrowthRate, err = r.Float32(); err != nil {
		return c, err
	}
	if c.Remainder, err = r.Float32(); err != nil {
		return c, err
	}
	if c.Max, err = r.Uint32(); err != nil {
		return c, err
	}
	return c, nil
}

func EncodeGaiaCreature(w *Writer, c genie.GaiaCreature) error {
	if err := w.Float32(c.GrowthRate); err != nil {
		return err
	}
	if err := w.Float32(c.Remainder); err != nil {
		return err
	}
	return w.Uint32(c.Max)
}

// DecodeGaiaWolfInfo reads one GaiaWolfInfo (u32 id, float32 distance).
func DecodeGaiaWolfInfo(r *Reader) (genie.GaiaWolfInfo, error) {
	var w2 genie.GaiaWolfInfo
	var err error
	if w2.ID, err = r.Uint32(); err != nil {
		return w2, err
	}
	if w2.Distance, err = r.Float32(); err != nil {
		return w2, err
	}
	return w2, nil
}

func EncodeGaiaWolfInfo(w *Writer, g genie.GaiaWolfInfo) error {
	if err := w.Uint32(g.ID); err != nil {
		return err
	}
	return w.Float32(g.Distance)
}

// DecodeGaiaData reads a full GaiaData, field-for-field per spec.md §4.6
// and genie.GaiaData's layout.
func DecodeGaiaData(r *Reader) (genie.GaiaData, error) {
	var g genie.GaiaData
	var err error
	if g.UpdateTime, err = r.Uint32(); err != nil {
		return g, err
	}
	if g.UpdateNature, err = r.Uint32(); err != nil {
		return g, err
	}
	for i := range g.Creatures {
		if g.Creatures[i], err = DecodeGaiaCreature(r); err != nil {
			return g, err
		}
	}
	if g.NextWolfAttackUpdateTime, err = r.Uint32(); err != nil {
		return g, err
	}
	if g.WolfAttackUpdateInterval, err = r.Uint32(); err != nil {
		return g, err
	}
	if g.WolfAttackStopTime, err = r.Uint32(); err != nil {
		return g, err
	}
	if g.MinVillagerDistance, err = r.Float32(); err != nil {
		return g, err
	}
	for i := range g.TCPositions {
		if g.TCPositions[i][0], err = r.Float32(); err != nil {
			return g, err
		}
		if g.TCPositions[i][1], err = r.Float32(); err != nil {
			return g, err
		}
	}
	if g.WolfCurrentPlayer, err = r.Uint32(); err != nil {
		return g, err
	}
	for i := range g.WolfCurrentVillagers {
		if g.WolfCurrentVillagers[i], err = r.Uint32(); err != nil {
			return g, err
		}
	}
	rawVillager, err := r.Int32()
	if err != nil {
		return g, err
	}
	g.WolfCurrentVillager = genie.DecodeOptionalObjectID(rawVillager)
	if g.WolfVillagerCount, err = r.Uint32(); err != nil {
		return g, err
	}
	for i := range g.Wolves {
		if g.Wolves[i], err = DecodeGaiaWolfInfo(r); err != nil {
			return g, err
		}
	}
	rawWolf, err := r.Int32()
	if err != nil {
		return g, err
	}
	g.CurrentWolf = genie.DecodeOptionalObjectID(rawWolf)
	for i := range g.WolfCounts {
		if g.WolfCounts[i], err = r.Uint32(); err != nil {
			return g, err
		}
	}
	return g, nil
}

func EncodeGaiaData(w *Writer, g genie.GaiaData) error {
	if err := w.Uint32(g.UpdateTime); err != nil {
		return err
	}
	if err := w.Uint32(g.UpdateNature); err != nil {
		return err
	}
	for _, c := range g.Creatures {
		if err := EncodeGaiaCreature(w, c); err != nil {
			return err
		}
	}
	if err := w.Uint32(g.NextWolfAttackUpdateTime); err != nil {
		return err
	}
	if err := w.Uint32(g.WolfAttackUpdateInterval); err != nil {
		return err
	}
	if err := w.Uint32(g.WolfAttackStopTime); err != nil {
		return err
	}
	if err := w.Float32(g.MinVillagerDistance); err != nil {
		return err
	}
	for _, pos := range g.TCPositions {
		if err := w.Float32(pos[0]); err != nil {
			return err
		}
		if err := w.Float32(pos[1]); err != nil {
			return err
		}
	}
	if err := w.Uint32(g.WolfCurrentPlayer); err != nil {
		return err
	}
	for _, v := range g.WolfCurrentVillagers {
		if err := w.Uint32(v); err != nil {
			return err
		}
	}
	if err := w.Int32(g.WolfCurrentVillager.Encode()); err != nil {
		return err
	}
	if err := w.Uint32(g.WolfVillagerCount); err != nil {
		return err
	}
	for _, wolf := range g.Wolves {
		if err := EncodeGaiaWolfInfo(w, wolf); err != nil {
			return err
		}
	}
	if err := w.Int32(g.CurrentWolf.Encode()); err != nil {
		return err
	}
	for _, v := range g.WolfCounts {
		if err := w.Uint32(v); err != nil {
			return err
		}
	}
	return nil
}

const (
	userPatchHeaderPadding   = 4080
	userPatchCategoryEntries = 900
	userPatchGroupEntries    = 100
	userPatchTrailerPadding  = 2096
)

// DecodeUserPatchData consumes the fixed UserPatch trailer: 4080 opaque
// bytes, 900 category priorities, 100 group priorities, and 2096 further
// opaque bytes. Only the priority arrays are retained; the rest is
// discarded, matching genie.UserPatchData's documented scope.
func DecodeUserPatchData(r *Reader) (genie.UserPatchData, error) {
	var u genie.UserPatchData
	if err := r.Skip(userPatchHeaderPadding); err != nil {
		return u, err
	}
	cats, err := r.Uint16Slice(userPatchCategoryEntries)
	if err != nil {
		return u, err
	}
	groups, err := r.Uint16Slice(userPatchGroupEntries)
	if err != nil {
		return u, err
	}
	if err := r.Skip(userPatchTrailerPadding); err != nil {
		return u, err
	}
	u.CategoryPriorities = cats
	u.GroupPriorities = groups
	return u, nil
}

func EncodeUserPatchData(w *Writer, u genie.UserPatchData) error {
	if err := w.Skip(userPatchHeaderPadding); err != nil {
		return err
	}
	if err := w.Uint16Slice(u.CategoryPriorities); err != nil {
		return err
	}
	if err := w.Uint16Slice(u.GroupPriorities); err != nil {
		return err
	}
	return w.Skip(userPatchTrailerPadding)
}
