package production

import (
	"sort"
	"strconv"

	lo "github.com/samber/lo"
)

// BreakdownSlice is one proportional share of a record set's absolute
// variances, for pie/legend rendering.
type BreakdownSlice struct {
	Machine  string   `json:"machine"`
	Value    float64  `json:"value"`    // |actual - target|
	Fraction float64  `json:"fraction"` // value / total, slices sum to 1
	Label    string   `json:"label"`    // "MC-1 (50)"
	Percent  *float64 `json:"percent"`  // signed per-record percent, nil when target 0
}

// BuildBreakdown decomposes a record set (typically one shift on one date)
// into fractions of the total absolute variance, ordered largest share first.
// Records with zero variance are dropped; when every surviving value is 0 the
// total is treated as 1 so fractions come out 0 instead of NaN.
func BuildBreakdown(records []Record) []BreakdownSlice {
	slices := lo.FilterMap(records, func(r Record, _ int) (BreakdownSlice, bool) {
		value := r.Actual - r.Target
		if value < 0 {
			value = -value
		}
		if value == 0 {
			return BreakdownSlice{}, false
		}
		return BreakdownSlice{
			Machine: r.Machine,
			Value:   value,
			Label:   r.Machine + " (" + strconv.FormatFloat(value, 'f', -1, 64) + ")",
			Percent: VariancePercent(r.Target, r.Actual),
		}, true
	})

	total := lo.SumBy(slices, func(s BreakdownSlice) float64 { return s.Value })
	if total == 0 {
		total = 1
	}
	for i := range slices {
		slices[i].Fraction = slices[i].Value / total
	}

	sort.SliceStable(slices, func(i, j int) bool { return slices[i].Fraction > slices[j].Fraction })
	return slices
}

// LegendOrder returns a copy of the slices re-sorted ascending by machine
// number for legend display. The fraction-ordered input, which drives slice
// angles, is left untouched.
func LegendOrder(slices []BreakdownSlice) []BreakdownSlice {
	out := make([]BreakdownSlice, len(slices))
	copy(out, slices)
	sort.SliceStable(out, func(i, j int) bool { return machineLess(out[i].Machine, out[j].Machine) })
	return out
}
