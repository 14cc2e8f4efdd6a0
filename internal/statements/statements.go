// Package statements resolves named line items out of multi-period
// financial statement tables. Lookups never fail: an absent row, an
// out-of-range period, or a NaN cell resolves to 0.0 and the caller's
// score surfaces the gap through its calculation_possible flag.
package statements

import (
	"math"
	"strings"

	"stock-forensics/internal/types"
)

// Value returns the named line item for the given period index (0 = most
// recent). The row name is matched exactly first, then case-insensitively.
func Value(t types.StatementTable, name string, period int) float64 {
	if period < 0 || period >= len(t.Periods) {
		return 0
	}
	items := t.Periods[period].Items
	if items == nil {
		return 0
	}
	if v, ok := items[name]; ok {
		return nanToZero(v)
	}
	for k, v := range items {
		if strings.EqualFold(k, name) {
			return nanToZero(v)
		}
	}
	return 0
}

// AbsValue is Value with the sign stripped, for items like depreciation
// that appear negated on some cash flow statements.
func AbsValue(t types.StatementTable, name string, period int) float64 {
	return math.Abs(Value(t, name, period))
}

func nanToZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
