// This file contains the player-block codec: the ~60-group linear decode
// and encode sequence spec.md §4.7 describes, grounded field-for-field on
// original_source/crates/genie-rec/src/player.rs's Player::read_from, with
// the additional version/variant gates (definitive-edition resync, the
// fogged-map and unit-list trailer) that original predates layered in
// from spec.md's own dispatch table.
package codec

import (
	"github.com/genieio/geniecodec/genie"
	"github.com/genieio/geniecodec/genie/geniecore"
)

// DecodePlayerBlock calls DecodePlayer, but protects the call from panics
// triggered by malformed untrusted input, returning ErrCorruptInput instead
// of crashing the caller. Any other decode failure is returned wrapped in a
// *HeaderError carrying r's position at the point of failure.
func DecodePlayerBlock(ctx *Context, r *Reader) (p genie.Player, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			ctx.Log.Error().Interface("panic", rec).Msg("recovered while decoding player block")
			err = ErrCorruptInput
		}
	}()
	p, err = DecodePlayer(ctx, r)
	if err != nil {
		err = &HeaderError{Offset: r.Pos(), Cause: err}
	}
	return p, err
}

// DecodePlayer decodes one full player block. ctx.PlayerCount must already
// be set to the match's player count (Relations' length).
func DecodePlayer(ctx *Context, r *Reader) (genie.Player, error) {
	var p genie.Player

	ty, err := r.Uint8()
	if err != nil {
		return p, err
	}
	p.Type = ty

	if err := ctx.assertMarker(r, sentinelA); err != nil {
		return p, err
	}

	relations, err := r.Bytes(int(ctx.PlayerCount))
	if err != nil {
		return p, err
	}
	p.Relations = relations

	for i := range p.Diplomacy {
		v, err := r.Int32()
		if err != nil {
			return p, err
		}
		p.Diplomacy[i] = v
	}

	allied, err := r.Uint32()
	if err != nil {
		return p, err
	}
	p.AlliedLOS = allied != 0

	alliedVictory, err := r.Uint8()
	if err != nil {
		return p, err
	}
	p.AlliedVictory = alliedVictory != 0

	nameBytes, err := r.U16String()
	if err != nil {
		return p, err
	}
	p.Name = genie.DecodeGameString(nameBytes)

	if err := ctx.assertMarker(r, sentinelB); err != nil {
		return p, err
	}

	attrCount, err := r.Uint32()
	if err != nil {
		return p, err
	}
	if err := ctx.checkLen("attributes", int64(attrCount)); err != nil {
		return p, err
	}

	if err := ctx.assertMarker(r, sentinelC); err != nil {
		return p, err
	}

	attrs, err := r.Float32Slice(int(attrCount))
	if err != nil {
		return p, err
	}
	p.Attributes = attrs

	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		if err := r.Skip(int(attrCount) * 4); err != nil {
			return p, err
		}
	}

	if err := ctx.assertMarker(r, sentinelA); err != nil {
		return p, err
	}

	p.InitialViewX, err = r.Float32()
	if err != nil {
		return p, err
	}
	p.InitialViewY, err = r.Float32()
	if err != nil {
		return p, err
	}

	if ctx.at(geniecore.VerSavedViews) {
		count, err := r.Int32()
		if err != nil {
			return p, err
		}
		if count > 0 {
			if err := ctx.checkLen("saved-views", int64(count)); err != nil {
				return p, err
			}
			views := make([]genie.SavedView, count)
			for i := range views {
				x, err := r.Float32()
				if err != nil {
					return p, err
				}
				y, err := r.Float32()
				if err != nil {
					return p, err
				}
				views[i] = genie.SavedView{X: x, Y: y}
			}
			p.SavedViews = views
		}
	}

	p.SpawnX, err = r.Uint16()
	if err != nil {
		return p, err
	}
	p.SpawnY, err = r.Uint16()
	if err != nil {
		return p, err
	}
	p.CultureID, err = r.Uint8()
	if err != nil {
		return p, err
	}
	p.CivilizationID, err = r.Uint8()
	if err != nil {
		return p, err
	}
	p.GameStatus, err = r.Uint8()
	if err != nil {
		return p, err
	}
	resigned, err := r.Uint8()
	if err != nil {
		return p, err
	}
	p.Resigned = resigned != 0

	if err := ctx.assertMarker(r, sentinelA); err != nil {
		return p, err
	}

	p.Color, err = r.Uint8()
	if err != nil {
		return p, err
	}
	p.PathingAttemptCap, err = r.Uint32()
	if err != nil {
		return p, err
	}
	p.PathingDelayCap, err = r.Uint32()
	if err != nil {
		return p, err
	}

	if err := decodeUnitCounts(ctx, r, &p.Opaque.UnitCounts); err != nil {
		return p, err
	}

	if err := decodeFormations(r, &p.Opaque.Formation, ctx); err != nil {
		return p, err
	}
	if err := decodeEscrow(r, &p.Opaque.Escrow); err != nil {
		return p, err
	}

	if ctx.at(geniecore.VerViewScroll) {
		if err := decodeViewScroll(r, &p.Opaque.ViewScroll); err != nil {
			return p, err
		}
	}

	if ctx.at(geniecore.VerAIReactions) {
		rx, err := r.Float32()
		if err != nil {
			return p, err
		}
		ry, err := r.Float32()
		if err != nil {
			return p, err
		}
		task, err := r.Uint8()
		if err != nil {
			return p, err
		}
		p.Opaque.AIReaction = genie.AIReactionState{
			EasiestReactionPercent: rx,
			EasierReactionPercent:  ry,
			TaskUngroupedSoldiers:  task != 0,
		}
	}

	if ctx.at(geniecore.VerSelection) {
		count, err := r.Uint32()
		if err != nil {
			return p, err
		}
		if count > 0 {
			if err := ctx.checkLen("selection", int64(count)); err != nil {
				return p, err
			}
			objID, err := r.Int32()
			if err != nil {
				return p, err
			}
			props, err := r.Uint32()
			if err != nil {
				return p, err
			}
			ids := make([]genie.ObjectID, count)
			for i := range ids {
				v, err := r.Int32()
				if err != nil {
					return p, err
				}
				ids[i] = genie.ObjectID(v)
			}
			p.Opaque.Selection = genie.SelectionState{
				ObjectID:   genie.ObjectID(objID),
				Properties: props,
				IDs:        ids,
			}
		}
	}

	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		diag, err := ctx.resyncToDoubleMarker(r)
		if err != nil {
			return p, err
		}
		if diag != nil && diag.Skipped > 0 {
			ctx.Log.Warn().Int64("skipped", diag.Skipped).Int64("pos", diag.Position).Msg("player block resynced past unexpected bytes")
		}
	} else {
		if err := ctx.assertMarker(r, sentinelA); err != nil {
			return p, err
		}
		if err := ctx.assertMarker(r, sentinelA); err != nil {
			return p, err
		}
	}

	p.Opaque.AICounters.UpdateType, err = r.Uint8()
	if err != nil {
		return p, err
	}
	if p.Opaque.AICounters.UpdateCount, err = r.Uint32(); err != nil {
		return p, err
	}
	if p.Opaque.AICounters.UpdateCountNeedHelp, err = r.Uint32(); err != nil {
		return p, err
	}

	if ctx.at(geniecore.VerAIAttack) {
		if err := decodeAIAttack(r, &p.Opaque.AIAttack); err != nil {
			return p, err
		}
	}

	if p.Opaque.AICounters.FogUpdate, err = r.Uint32(); err != nil {
		return p, err
	}
	if p.Opaque.AICounters.UpdateTime, err = r.Uint32(); err != nil {
		return p, err
	}

	if geniecore.IsUserPatchVersion(ctx.Version) {
		up, err := DecodeUserPatchData(r)
		if err != nil {
			return p, err
		}
		p.UserPatch = &up
	}

	playerTech, err := DecodePlayerTech(ctx, r)
	if err != nil {
		return p, err
	}
	p.Tech = playerTech

	history, err := DecodeHistoryInfo(ctx, r)
	if err != nil {
		return p, err
	}
	p.History = history

	if ctx.at(geniecore.VerHistoryObjectives) {
		if p.Opaque.AICounters.RuinHeldTime, err = r.Uint32(); err != nil {
			return p, err
		}
		if p.Opaque.AICounters.ArtifactHeldTime, err = r.Uint32(); err != nil {
			return p, err
		}
	}

	if ctx.at(geniecore.VerDiplomacyDetail) {
		dd, err := decodeDiplomacyDetail(r)
		if err != nil {
			return p, err
		}
		p.DiplomacyDetail = &dd
	}

	if ctx.at(geniecore.VerOffMapTradeExplored) {
		for i := range p.Opaque.OffMapTradeExplored {
			v, err := r.Uint8()
			if err != nil {
				return p, err
			}
			p.Opaque.OffMapTradeExplored[i] = v
		}
	}
	if ctx.at(geniecore.VerOffMapTradeExplore2) {
		for i := range p.Opaque.OffMapTradeBeingExplored {
			v, err := r.Uint8()
			if err != nil {
				return p, err
			}
			p.Opaque.OffMapTradeBeingExplored[i] = v
		}
	}

	if ctx.at(geniecore.VerMarketTrading) {
		if err := decodeMarket(r, &p.Opaque.Market); err != nil {
			return p, err
		}
	}

	if ctx.at(geniecore.VerProductionQueue) {
		v, err := r.Uint8()
		if err != nil {
			return p, err
		}
		p.Opaque.ProdQueueEnabled = v != 0
	} else {
		p.Opaque.ProdQueueEnabled = true
	}

	if ctx.at(geniecore.VerDodging) {
		p.Opaque.ChanceToDodgeMissiles, err = r.Uint8()
		if err != nil {
			return p, err
		}
		p.Opaque.ChanceForArchersToMaintainDistance, err = r.Uint8()
		if err != nil {
			return p, err
		}
	}

	if ctx.at(geniecore.VerOpenGates) {
		p.Opaque.OpenGatesForPathingCount, err = r.Uint32()
		if err != nil {
			return p, err
		}
	}
	if ctx.at(geniecore.VerFarmQueue) {
		p.Opaque.FarmQueueCount, err = r.Uint32()
		if err != nil {
			return p, err
		}
	}
	if ctx.at(geniecore.VerNomadLock) {
		v, err := r.Uint32()
		if err != nil {
			return p, err
		}
		p.Opaque.NomadBuildLock = v != 0
	}

	if err := decodeStatistics(ctx, r, &p.Opaque.Stats); err != nil {
		return p, err
	}

	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		if err := r.Skip(11); err != nil {
			return p, err
		}
	}

	if ctx.at(geniecore.VerTechTree) {
		ttBytes, err := ctx.Peers.TechTree.Decode(r.Raw())
		if err != nil {
			return p, &DelegateFailed{Component: "TechTree", Offset: r.Pos(), Cause: err}
		}
		p.TechTree = &ttBytes
	}

	if ctx.Variant == geniecore.VariantDefinitiveEdition {
		if err := r.Skip(4); err != nil {
			return p, err
		}
		if p.Type != 2 {
			if err := r.Skip(4); err != nil {
				return p, err
			}
		}
	}

	if err := ctx.assertMarker(r, sentinelA); err != nil {
		return p, err
	}

	if p.Type == 3 {
		probe, err := r.Uint32()
		if err != nil {
			return p, err
		}
		if probe == 1 {
			ai, err := ctx.Peers.PlayerAI.Decode(r.Raw())
			if err != nil {
				return p, &DelegateFailed{Component: "PlayerAI", Offset: r.Pos(), Cause: err}
			}
			p.AI = &ai
		}
	}

	if err := ctx.assertMarker(r, sentinelA); err != nil {
		return p, err
	}

	if p.Type == 2 {
		gaia, err := DecodeGaiaData(r)
		if err != nil {
			return p, err
		}
		p.Gaia = &gaia
	}

	if err := ctx.assertMarker(r, sentinelA); err != nil {
		return p, err
	}

	maskLen, err := r.Uint32()
	if err != nil {
		return p, err
	}
	if err := ctx.checkLen("unit-type-mask", int64(maskLen)); err != nil {
		return p, err
	}
	mask := make([]bool, maskLen)
	for i := range mask {
		v, err := r.Uint32()
		if err != nil {
			return p, err
		}
		mask[i] = v != 0
	}

	if err := ctx.assertMarker(r, sentinelA); err != nil {
		return p, err
	}

	types := make([]genie.AvailableUnitType, len(mask))
	for i, present := range mask {
		if !present {
			continue
		}
		if err := ctx.assertMarker(r, sentinelB); err != nil {
			return p, err
		}
		ut, err := ctx.Peers.UnitType.Decode(r.Raw())
		if err != nil {
			return p, &DelegateFailed{Component: "UnitType", Offset: r.Pos(), Cause: err}
		}
		types[i] = genie.AvailableUnitType{Present: true, Type: ut}
		if err := ctx.assertMarker(r, sentinelC); err != nil {
			return p, err
		}
	}
	p.AvailableUnitTypes = types

	vm, err := DecodeVisibleMap(ctx, r)
	if err != nil {
		return p, err
	}
	p.VisibleMap = vm

	vr, err := DecodeVisibleResources(ctx, r)
	if err != nil {
		return p, err
	}
	p.VisibleResources = vr

	p.LiveUnits, err = decodeUnitList(ctx, r)
	if err != nil {
		return p, err
	}
	if ctx.active() {
		if err := ctx.assertMarker(r, sentinelA); err != nil {
			return p, err
		}
	}
	p.SleepingUnits, err = decodeUnitList(ctx, r)
	if err != nil {
		return p, err
	}
	if ctx.active() {
		if err := ctx.assertMarker(r, sentinelA); err != nil {
			return p, err
		}
	}
	p.DoppelgangerUnits, err = decodeUnitList(ctx, r)
	if err != nil {
		return p, err
	}

	return p, nil
}

func decodeUnitList(ctx *Context, r *Reader) ([]genie.Unit, error) {
	var units []genie.Unit
	for {
		u, ok, err := ctx.Peers.Unit.Decode(r.Raw())
		if err != nil {
			return nil, &DelegateFailed{Component: "Unit", Offset: r.Pos(), Cause: err}
		}
		if !ok {
			return units, nil
		}
		units = append(units, u)
	}
}

func decodeUnitCounts(ctx *Context, r *Reader, uc *genie.UnitCounts) error {
	a, b := 750, 100
	switch {
	case ctx.at(geniecore.VerUnitCounts900):
		a = 900
	case ctx.at(geniecore.VerUnitCounts850):
		a = 850
	}
	var err error
	if uc.ObjectCategories, err = r.Uint16Slice(a); err != nil {
		return err
	}
	if uc.ObjectGroups, err = r.Uint16Slice(b); err != nil {
		return err
	}
	if uc.BuiltObjectCategories, err = r.Uint16Slice(a); err != nil {
		return err
	}
	if uc.BuiltObjectGroups, err = r.Uint16Slice(b); err != nil {
		return err
	}
	if uc.TotalUnits, err = r.Uint16(); err != nil {
		return err
	}
	if uc.TotalBuildings, err = r.Uint16(); err != nil {
		return err
	}
	if uc.BuiltUnits, err = r.Uint16(); err != nil {
		return err
	}
	if uc.BuiltBuildings, err = r.Uint16(); err != nil {
		return err
	}
	return nil
}

func decodeFormations(r *Reader, f *genie.FormationState, ctx *Context) error {
	var err error
	if f.LineRatio, err = r.Uint32(); err != nil {
		return err
	}
	if f.ColumnRatio, err = r.Uint32(); err != nil {
		return err
	}
	if f.MinColumnDistance, err = r.Uint32(); err != nil {
		return err
	}
	if f.ColumnToLineDistance, err = r.Uint32(); err != nil {
		return err
	}
	if f.AutoFormations, err = r.Uint32(); err != nil {
		return err
	}
	if f.InfluenceDistance, err = r.Float32(); err != nil {
		return err
	}
	if ctx.at(geniecore.VerFormationsBreakAuto) {
		if f.BreakAutoFormationsBySpeed, err = r.Float32(); err != nil {
			return err
		}
	}
	return nil
}

func decodeEscrow(r *Reader, e *genie.EscrowState) error {
	for i := range e.PendingDebits {
		v, err := r.Float32()
		if err != nil {
			return err
		}
		e.PendingDebits[i] = v
	}
	for i := range e.Amounts {
		v, err := r.Float32()
		if err != nil {
			return err
		}
		e.Amounts[i] = v
	}
	for i := range e.Percentages {
		v, err := r.Float32()
		if err != nil {
			return err
		}
		e.Percentages[i] = v
	}
	return nil
}

func decodeViewScroll(r *Reader, v *genie.ViewScrollState) error {
	var err error
	for i := range v.Vector {
		if v.Vector[i], err = r.Float32(); err != nil {
			return err
		}
	}
	for i := range v.End {
		if v.End[i], err = r.Float32(); err != nil {
			return err
		}
	}
	for i := range v.Start {
		if v.Start[i], err = r.Float32(); err != nil {
			return err
		}
	}
	if v.TotalDistance, err = r.Float32(); err != nil {
		return err
	}
	if v.Distance, err = r.Float32(); err != nil {
		return err
	}
	return nil
}

func decodeAIAttack(r *Reader, a *genie.AIAttackState) error {
	var err error
	if a.AlertedEnemyCount, err = r.Uint32(); err != nil {
		return err
	}
	if a.RegularAttackCount, err = r.Uint32(); err != nil {
		return err
	}
	if a.RegularAttackMode, err = r.Uint8(); err != nil {
		return err
	}
	for i := range a.RegularAttackLoc {
		if a.RegularAttackLoc[i], err = r.Float32(); err != nil {
			return err
		}
	}
	if a.TownAttackCount, err = r.Uint32(); err != nil {
		return err
	}
	if a.TownAttackMode, err = r.Uint8(); err != nil {
		return err
	}
	for i := range a.TownAttackLoc {
		if a.TownAttackLoc[i], err = r.Float32(); err != nil {
			return err
		}
	}
	return nil
}

func decodeMarket(r *Reader, m *genie.MarketState) error {
	var err error
	if m.MaxTradeAmount, err = r.Uint32(); err != nil {
		return err
	}
	if m.OldMaxTradeAmount, err = r.Uint32(); err != nil {
		return err
	}
	if m.MaxTradeLimit, err = r.Uint32(); err != nil {
		return err
	}
	if m.CurrentWoodLimit, err = r.Uint32(); err != nil {
		return err
	}
	if m.CurrentFoodLimit, err = r.Uint32(); err != nil {
		return err
	}
	if m.CurrentStoneLimit, err = r.Uint32(); err != nil {
		return err
	}
	if m.CurrentOreLimit, err = r.Uint32(); err != nil {
		return err
	}
	if m.CommodityVolumeDelta, err = r.Int32(); err != nil {
		return err
	}
	if m.TradeVigRate, err = r.Float32(); err != nil {
		return err
	}
	if m.TradeRefreshTimer, err = r.Uint32(); err != nil {
		return err
	}
	if m.TradeRefreshRate, err = r.Uint32(); err != nil {
		return err
	}
	return nil
}

func decodeStatistics(ctx *Context, r *Reader, s *genie.Statistics) error {
	if ctx.at(geniecore.VerStatsBasic) {
		var err error
		if s.OldKills, err = r.Uint32(); err != nil {
			return err
		}
		if s.OldRazings, err = r.Uint32(); err != nil {
			return err
		}
		if s.BattleMode, err = r.Uint32(); err != nil {
			return err
		}
		if s.RazingsMode, err = r.Uint32(); err != nil {
			return err
		}
		if s.TotalKills, err = r.Uint32(); err != nil {
			return err
		}
		if s.TotalRazings, err = r.Uint32(); err != nil {
			return err
		}
	}
	if ctx.at(geniecore.VerStatsHitPoints) {
		var err error
		if s.OldHitPoints, err = r.Uint32(); err != nil {
			return err
		}
		if s.TotalHitPoints, err = r.Uint32(); err != nil {
			return err
		}
	}
	if ctx.at(geniecore.VerStatsPlayerKills) {
		for i := range s.OldPlayerKills {
			v, err := r.Uint32()
			if err != nil {
				return err
			}
			s.OldPlayerKills[i] = v
		}
	}
	return nil
}

func decodeDiplomacyDetail(r *Reader) (genie.DiplomacyDetail, error) {
	var dd genie.DiplomacyDetail
	for i := 0; i < 9; i++ {
		v, err := r.Uint8()
		if err != nil {
			return dd, err
		}
		dd.Stances[i] = v
	}
	for i := 0; i < 9; i++ {
		v, err := r.Uint8()
		if err != nil {
			return dd, err
		}
		dd.Intelligence[i] = v
	}
	for i := 0; i < 9; i++ {
		v, err := r.Uint8()
		if err != nil {
			return dd, err
		}
		dd.Trade[i] = v
	}
	for i := 0; i < 9; i++ {
		o, err := DecodeDiplomacyOffer(r)
		if err != nil {
			return dd, err
		}
		dd.Offers[i] = o
	}
	fealty, err := r.Uint16()
	if err != nil {
		return dd, err
	}
	dd.Fealty = fealty
	return dd, nil
}
