package production

import (
	lo "github.com/samber/lo"
)

// Aggregate is summed target/actual for some grouping of records plus the
// derived variance percentage. Percent is nil exactly when the summed target
// is 0: no performance is computable then, and that is distinct from 0%.
type Aggregate struct {
	Target  float64  `json:"target"`
	Actual  float64  `json:"actual"`
	Percent *float64 `json:"percent"`
}

// Summarize sums target and actual over any finite set of records and derives
// the percent under the zero-denominator policy. Summation is exact; no
// intermediate rounding.
func Summarize(records []Record) Aggregate {
	agg := Aggregate{
		Target: lo.SumBy(records, func(r Record) float64 { return r.Target }),
		Actual: lo.SumBy(records, func(r Record) float64 { return r.Actual }),
	}
	agg.Percent = VariancePercent(agg.Target, agg.Actual)
	return agg
}

// VariancePercent returns (actual-target)/target*100, or nil when target is 0.
func VariancePercent(target, actual float64) *float64 {
	if target == 0 {
		return nil
	}
	pct := (actual - target) / target * 100
	return &pct
}

// filterShift keeps the records whose canonical shift matches.
func filterShift(records []Record, shift Shift) []Record {
	return lo.Filter(records, func(r Record, _ int) bool {
		return CanonicalShift(r.Shift) == shift
	})
}
