// This file implements the colour-table codec of spec.md §4.4: a
// deterministic, fixed-layout round-trip with no version branching.
//
// Grounded field-for-field on
// original_source/crates/genie-dat/src/color_table.rs.
package codec

import "github.com/genieio/geniecodec/genie"

// DecodeColorTable reads a ColorTable: nine little-endian signed 32-bit
// fields in the order listed in spec.md §3.
func DecodeColorTable(r *Reader) (genie.ColorTable, error) {
	var ct genie.ColorTable
	var err error
	if ct.ID, err = r.Int32(); err != nil {
		return ct, err
	}
	if ct.Base, err = r.Int32(); err != nil {
		return ct, err
	}
	if ct.UnitOutline, err = r.Int32(); err != nil {
		return ct, err
	}
	for i := range ct.UnitSelection {
		if ct.UnitSelection[i], err = r.Int32(); err != nil {
			return ct, err
		}
	}
	for i := range ct.Minimap {
		if ct.Minimap[i], err = r.Int32(); err != nil {
			return ct, err
		}
	}
	if ct.StatisticsText, err = r.Int32(); err != nil {
		return ct, err
	}
	return ct, nil
}

// EncodeColorTable writes ct in the same order DecodeColorTable reads it,
// making encode∘decode the identity on the byte stream.
func EncodeColorTable(w *Writer, ct genie.ColorTable) error {
	if err := w.Int32(ct.ID); err != nil {
		return err
	}
	if err := w.Int32(ct.Base); err != nil {
		return err
	}
	if err := w.Int32(ct.UnitOutline); err != nil {
		return err
	}
	for _, v := range ct.UnitSelection {
		if err := w.Int32(v); err != nil {
			return err
		}
	}
	for _, v := range ct.Minimap {
		if err := w.Int32(v); err != nil {
			return err
		}
	}
	return w.Int32(ct.StatisticsText)
}
