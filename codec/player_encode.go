// This file contains EncodePlayer, the write-back mirror of DecodePlayer
// in player.go. Every group here writes exactly what the corresponding
// decode group consumed; fields with no decode-time semantics (round-trip
// only) round-trip through the in-memory zero/defaults captured at decode
// time. This holds for a Player shaped as DecodePlayer produces it at
// ctx's version: the pointer-held groups (UserPatch, DiplomacyDetail,
// TechTree, Gaia) are written only when non-nil, and the unit-count slices
// are written at their own length, not at the width the version implies.
package codec

import (
	"github.com/genieio/geniecodec/genie"
	"github.com/genieio/geniecodec/genie/geniecore"
)

// EncodePlayer writes one full player block, the inverse of DecodePlayer.
func EncodePlayer(ctx *Context, w *Writer, p genie.Player) error {
	if err := w.Uint8(p.Type); err != nil {
		return err
	}
	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}
	if err := w.Bytes(p.Relations); err != nil {
		return err
	}
	for _, v := range p.Diplomacy {
		if err := w.Int32(v); err != nil {
			return err
		}
	}
	allied := uint32(0)
	if p.AlliedLOS {
		allied = 1
	}
	if err := w.Uint32(allied); err != nil {
		return err
	}
	alliedVictory := uint8(0)
	if p.AlliedVictory {
		alliedVictory = 1
	}
	if err := w.Uint8(alliedVictory); err != nil {
		return err
	}
	if err := w.U16String([]byte(p.Name)); err != nil {
		return err
	}
	if err := ctx.writeMarker(w, sentinelB); err != nil {
		return err
	}
	if err := w.Uint32(uint32(len(p.Attributes))); err != nil {
		return err
	}
	if err := ctx.writeMarker(w, sentinelC); err != nil {
		return err
	}
	if err := w.Float32Slice(p.Attributes); err != nil {
		return err
	}
	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		if err := w.Skip(len(p.Attributes) * 4); err != nil {
			return err
		}
	}
	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}
	if err := w.Float32(p.InitialViewX); err != nil {
		return err
	}
	if err := w.Float32(p.InitialViewY); err != nil {
		return err
	}

	if ctx.at(geniecore.VerSavedViews) {
		if err := w.Int32(int32(len(p.SavedViews))); err != nil {
			return err
		}
		for _, v := range p.SavedViews {
			if err := w.Float32(v.X); err != nil {
				return err
			}
			if err := w.Float32(v.Y); err != nil {
				return err
			}
		}
	}

	if err := w.Uint16(p.SpawnX); err != nil {
		return err
	}
	if err := w.Uint16(p.SpawnY); err != nil {
		return err
	}
	if err := w.Uint8(p.CultureID); err != nil {
		return err
	}
	if err := w.Uint8(p.CivilizationID); err != nil {
		return err
	}
	if err := w.Uint8(p.GameStatus); err != nil {
		return err
	}
	resigned := uint8(0)
	if p.Resigned {
		resigned = 1
	}
	if err := w.Uint8(resigned); err != nil {
		return err
	}

	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}

	if err := w.Uint8(p.Color); err != nil {
		return err
	}
	if err := w.Uint32(p.PathingAttemptCap); err != nil {
		return err
	}
	if err := w.Uint32(p.PathingDelayCap); err != nil {
		return err
	}

	if err := encodeUnitCounts(w, &p.Opaque.UnitCounts); err != nil {
		return err
	}
	if err := encodeFormations(ctx, w, &p.Opaque.Formation); err != nil {
		return err
	}
	if err := encodeEscrow(w, &p.Opaque.Escrow); err != nil {
		return err
	}

	if ctx.at(geniecore.VerViewScroll) {
		if err := encodeViewScroll(w, &p.Opaque.ViewScroll); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerAIReactions) {
		if err := w.Float32(p.Opaque.AIReaction.EasiestReactionPercent); err != nil {
			return err
		}
		if err := w.Float32(p.Opaque.AIReaction.EasierReactionPercent); err != nil {
			return err
		}
		task := uint8(0)
		if p.Opaque.AIReaction.TaskUngroupedSoldiers {
			task = 1
		}
		if err := w.Uint8(task); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerSelection) {
		sel := p.Opaque.Selection
		if err := w.Uint32(uint32(len(sel.IDs))); err != nil {
			return err
		}
		if len(sel.IDs) > 0 {
			if err := w.Int32(int32(sel.ObjectID)); err != nil {
				return err
			}
			if err := w.Uint32(sel.Properties); err != nil {
				return err
			}
			for _, id := range sel.IDs {
				if err := w.Int32(int32(id)); err != nil {
					return err
				}
			}
		}
	}

	// A definitive-edition recording carries a version-dependent span of
	// undocumented data here (codec/markers.go's deResyncPreSkip) before
	// its double sentinelA marker; the decoder's resync scan expects to
	// find that many bytes ahead of the marker even on a clean stream, so
	// the encoder reproduces it as zero padding rather than omitting it.
	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		if err := w.Skip(int(deResyncPreSkip(ctx.Version))); err != nil {
			return err
		}
	}
	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}
	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}

	if err := w.Uint8(p.Opaque.AICounters.UpdateType); err != nil {
		return err
	}
	if err := w.Uint32(p.Opaque.AICounters.UpdateCount); err != nil {
		return err
	}
	if err := w.Uint32(p.Opaque.AICounters.UpdateCountNeedHelp); err != nil {
		return err
	}

	if ctx.at(geniecore.VerAIAttack) {
		if err := encodeAIAttack(w, &p.Opaque.AIAttack); err != nil {
			return err
		}
	}

	if err := w.Uint32(p.Opaque.AICounters.FogUpdate); err != nil {
		return err
	}
	if err := w.Uint32(p.Opaque.AICounters.UpdateTime); err != nil {
		return err
	}

	if geniecore.IsUserPatchVersion(ctx.Version) && p.UserPatch != nil {
		if err := EncodeUserPatchData(w, *p.UserPatch); err != nil {
			return err
		}
	}

	if err := EncodePlayerTech(ctx, w, p.Tech); err != nil {
		return err
	}

	if err := EncodeHistoryInfo(w, p.History); err != nil {
		return err
	}

	if ctx.at(geniecore.VerHistoryObjectives) {
		if err := w.Uint32(p.Opaque.AICounters.RuinHeldTime); err != nil {
			return err
		}
		if err := w.Uint32(p.Opaque.AICounters.ArtifactHeldTime); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerDiplomacyDetail) && p.DiplomacyDetail != nil {
		if err := encodeDiplomacyDetail(w, *p.DiplomacyDetail); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerOffMapTradeExplored) {
		if err := w.Bytes(p.Opaque.OffMapTradeExplored[:]); err != nil {
			return err
		}
	}
	if ctx.at(geniecore.VerOffMapTradeExplore2) {
		if err := w.Bytes(p.Opaque.OffMapTradeBeingExplored[:]); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerMarketTrading) {
		if err := encodeMarket(w, &p.Opaque.Market); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerProductionQueue) {
		v := uint8(0)
		if p.Opaque.ProdQueueEnabled {
			v = 1
		}
		if err := w.Uint8(v); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerDodging) {
		if err := w.Uint8(p.Opaque.ChanceToDodgeMissiles); err != nil {
			return err
		}
		if err := w.Uint8(p.Opaque.ChanceForArchersToMaintainDistance); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerOpenGates) {
		if err := w.Uint32(p.Opaque.OpenGatesForPathingCount); err != nil {
			return err
		}
	}
	if ctx.at(geniecore.VerFarmQueue) {
		if err := w.Uint32(p.Opaque.FarmQueueCount); err != nil {
			return err
		}
	}
	if ctx.at(geniecore.VerNomadLock) {
		v := uint32(0)
		if p.Opaque.NomadBuildLock {
			v = 1
		}
		if err := w.Uint32(v); err != nil {
			return err
		}
	}

	if err := encodeStatistics(ctx, w, &p.Opaque.Stats); err != nil {
		return err
	}

	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		if err := w.Skip(11); err != nil {
			return err
		}
	}

	if ctx.at(geniecore.VerTechTree) && p.TechTree != nil {
		if err := ctx.Peers.TechTree.Encode(w.Raw(), *p.TechTree); err != nil {
			return &DelegateFailed{Component: "TechTree", Offset: w.Pos(), Cause: err}
		}
	}

	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		if err := w.Skip(4); err != nil {
			return err
		}
		if p.Type != 2 {
			if err := w.Skip(4); err != nil {
				return err
			}
		}
	}

	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}

	if p.Type == 3 {
		probe := uint32(0)
		if p.AI != nil {
			probe = 1
		}
		if err := w.Uint32(probe); err != nil {
			return err
		}
		if p.AI != nil {
			if err := ctx.Peers.PlayerAI.Encode(w.Raw(), *p.AI); err != nil {
				return &DelegateFailed{Component: "PlayerAI", Offset: w.Pos(), Cause: err}
			}
		}
	}

	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}

	if p.Type == 2 && p.Gaia != nil {
		if err := EncodeGaiaData(w, *p.Gaia); err != nil {
			return err
		}
	}

	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}

	if err := w.Uint32(uint32(len(p.AvailableUnitTypes))); err != nil {
		return err
	}
	for _, ut := range p.AvailableUnitTypes {
		v := uint32(0)
		if ut.Present {
			v = 1
		}
		if err := w.Uint32(v); err != nil {
			return err
		}
	}

	if err := ctx.writeMarker(w, sentinelA); err != nil {
		return err
	}

	for _, ut := range p.AvailableUnitTypes {
		if !ut.Present {
			continue
		}
		if err := ctx.writeMarker(w, sentinelB); err != nil {
			return err
		}
		if err := ctx.Peers.UnitType.Encode(w.Raw(), ut.Type); err != nil {
			return &DelegateFailed{Component: "UnitType", Offset: w.Pos(), Cause: err}
		}
		if err := ctx.writeMarker(w, sentinelC); err != nil {
			return err
		}
	}

	if err := EncodeVisibleMap(ctx, w, p.VisibleMap); err != nil {
		return err
	}
	if err := EncodeVisibleResources(w, p.VisibleResources); err != nil {
		return err
	}

	if err := encodeUnitList(ctx, w, p.LiveUnits); err != nil {
		return err
	}
	if ctx.active() {
		if err := ctx.writeMarker(w, sentinelA); err != nil {
			return err
		}
	}
	if err := encodeUnitList(ctx, w, p.SleepingUnits); err != nil {
		return err
	}
	if ctx.active() {
		if err := ctx.writeMarker(w, sentinelA); err != nil {
			return err
		}
	}
	if err := encodeUnitList(ctx, w, p.DoppelgangerUnits); err != nil {
		return err
	}

	return nil
}

func encodeUnitList(ctx *Context, w *Writer, units []genie.Unit) error {
	for _, u := range units {
		if err := ctx.Peers.Unit.Encode(w.Raw(), u); err != nil {
			return &DelegateFailed{Component: "Unit", Offset: w.Pos(), Cause: err}
		}
	}
	return ctx.Peers.Unit.EncodeEnd(w.Raw())
}

func encodeUnitCounts(w *Writer, uc *genie.UnitCounts) error {
	if err := w.Uint16Slice(uc.ObjectCategories); err != nil {
		return err
	}
	if err := w.Uint16Slice(uc.ObjectGroups); err != nil {
		return err
	}
	if err := w.Uint16Slice(uc.BuiltObjectCategories); err != nil {
		return err
	}
	if err := w.Uint16Slice(uc.BuiltObjectGroups); err != nil {
		return err
	}
	if err := w.Uint16(uc.TotalUnits); err != nil {
		return err
	}
	if err := w.Uint16(uc.TotalBuildings); err != nil {
		return err
	}
	if err := w.Uint16(uc.BuiltUnits); err != nil {
		return err
	}
	return w.Uint16(uc.BuiltBuildings)
}

func encodeFormations(ctx *Context, w *Writer, f *genie.FormationState) error {
	if err := w.Uint32(f.LineRatio); err != nil {
		return err
	}
	if err := w.Uint32(f.ColumnRatio); err != nil {
		return err
	}
	if err := w.Uint32(f.MinColumnDistance); err != nil {
		return err
	}
	if err := w.Uint32(f.ColumnToLineDistance); err != nil {
		return err
	}
	if err := w.Uint32(f.AutoFormations); err != nil {
		return err
	}
	if err := w.Float32(f.InfluenceDistance); err != nil {
		return err
	}
	if ctx.at(geniecore.VerFormationsBreakAuto) {
		if err := w.Float32(f.BreakAutoFormationsBySpeed); err != nil {
			return err
		}
	}
	return nil
}

func encodeEscrow(w *Writer, e *genie.EscrowState) error {
	if err := w.Float32Slice(e.PendingDebits[:]); err != nil {
		return err
	}
	if err := w.Float32Slice(e.Amounts[:]); err != nil {
		return err
	}
	return w.Float32Slice(e.Percentages[:])
}

func encodeViewScroll(w *Writer, v *genie.ViewScrollState) error {
	if err := w.Float32Slice(v.Vector[:]); err != nil {
		return err
	}
	if err := w.Float32Slice(v.End[:]); err != nil {
		return err
	}
	if err := w.Float32Slice(v.Start[:]); err != nil {
		return err
	}
	if err := w.Float32(v.TotalDistance); err != nil {
		return err
	}
	return w.Float32(v.Distance)
}

func encodeAIAttack(w *Writer, a *genie.AIAttackState) error {
	if err := w.Uint32(a.AlertedEnemyCount); err != nil {
		return err
	}
	if err := w.Uint32(a.RegularAttackCount); err != nil {
		return err
	}
	if err := w.Uint8(a.RegularAttackMode); err != nil {
		return err
	}
	if err := w.Float32Slice(a.RegularAttackLoc[:]); err != nil {
		return err
	}
	if err := w.Uint32(a.TownAttackCount); err != nil {
		return err
	}
	if err := w.Uint8(a.TownAttackMode); err != nil {
		return err
	}
	return w.Float32Slice(a.TownAttackLoc[:])
}

func encodeMarket(w *Writer, m *genie.MarketState) error {
	if err := w.Uint32(m.MaxTradeAmount); err != nil {
		return err
	}
	if err := w.Uint32(m.OldMaxTradeAmount); err != nil {
		return err
	}
	if err := w.Uint32(m.MaxTradeLimit); err != nil {
		return err
	}
	if err := w.Uint32(m.CurrentWoodLimit); err != nil {
		return err
	}
	if err := w.Uint32(m.CurrentFoodLimit); err != nil {
		return err
	}
	if err := w.Uint32(m.CurrentStoneLimit); err != nil {
		return err
	}
	if err := w.Uint32(m.CurrentOreLimit); err != nil {
		return err
	}
	if err := w.Int32(m.CommodityVolumeDelta); err != nil {
		return err
	}
	if err := w.Float32(m.TradeVigRate); err != nil {
		return err
	}
	if err := w.Uint32(m.TradeRefreshTimer); err != nil {
		return err
	}
	return w.Uint32(m.TradeRefreshRate)
}

func encodeStatistics(ctx *Context, w *Writer, s *genie.Statistics) error {
	if ctx.at(geniecore.VerStatsBasic) {
		if err := w.Uint32(s.OldKills); err != nil {
			return err
		}
		if err := w.Uint32(s.OldRazings); err != nil {
			return err
		}
		if err := w.Uint32(s.BattleMode); err != nil {
			return err
		}
		if err := w.Uint32(s.RazingsMode); err != nil {
			return err
		}
		if err := w.Uint32(s.TotalKills); err != nil {
			return err
		}
		if err := w.Uint32(s.TotalRazings); err != nil {
			return err
		}
	}
	if ctx.at(geniecore.VerStatsHitPoints) {
		if err := w.Uint32(s.OldHitPoints); err != nil {
			return err
		}
		if err := w.Uint32(s.TotalHitPoints); err != nil {
			return err
		}
	}
	if ctx.at(geniecore.VerStatsPlayerKills) {
		for _, v := range s.OldPlayerKills {
			if err := w.Uint32(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeDiplomacyDetail(w *Writer, dd genie.DiplomacyDetail) error {
	for _, v := range dd.Stances {
		if err := w.Uint8(v); err != nil {
			return err
		}
	}
	for _, v := range dd.Intelligence {
		if err := w.Uint8(v); err != nil {
			return err
		}
	}
	for _, v := range dd.Trade {
		if err := w.Uint8(v); err != nil {
			return err
		}
	}
	for _, o := range dd.Offers {
		if err := EncodeDiplomacyOffer(w, o); err != nil {
			return err
		}
	}
	return w.Uint16(dd.Fealty)
}
