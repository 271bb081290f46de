package production

import (
	"sort"

	lo "github.com/samber/lo"
)

// Matrix is the date x machine x shift pivot of variance percentages for a
// date range. Rows are every stored day inside the range (days with no
// records are absent, not rows of nulls); columns are every machine seen in
// that range, each split into an A and a B cell. A nil cell means no records
// contributed to that (date, machine, shift), which renders as "no data"
// rather than 0.
type Matrix struct {
	Machines []string    `json:"machines"`
	Rows     []MatrixRow `json:"rows"`
}

type MatrixRow struct {
	Date  Day          `json:"date"`
	Cells []MatrixCell `json:"cells"` // parallel to Matrix.Machines
}

type MatrixCell struct {
	A *float64 `json:"a"`
	B *float64 `json:"b"`
}

// Empty reports whether the matrix carries no rows or no machines.
func (m Matrix) Empty() bool {
	return len(m.Rows) == 0 || len(m.Machines) == 0
}

// BuildMatrix pivots the store over [start, end] (order-independent bounds).
// Machine columns are ordered ascending by extracted machine number, ties by
// label. Only A and B shifts contribute; other-shift records are excluded
// from the per-shift cells.
func BuildMatrix(store *Store, start, end Day) Matrix {
	dates := store.DatesBetween(start, end)
	if len(dates) == 0 {
		return Matrix{}
	}

	machines := lo.Uniq(lo.FilterMap(store.Between(start, end), func(r Record, _ int) (string, bool) {
		return r.Machine, r.Machine != ""
	}))
	sort.Slice(machines, func(i, j int) bool { return machineLess(machines[i], machines[j]) })
	if len(machines) == 0 {
		return Matrix{}
	}

	rows := make([]MatrixRow, 0, len(dates))
	for _, d := range dates {
		recs := store.Records(d)
		cells := make([]MatrixCell, len(machines))
		for i, machine := range machines {
			mine := lo.Filter(recs, func(r Record, _ int) bool { return r.Machine == machine })
			cells[i] = MatrixCell{
				A: Summarize(filterShift(mine, ShiftA)).Percent,
				B: Summarize(filterShift(mine, ShiftB)).Percent,
			}
		}
		rows = append(rows, MatrixRow{Date: d, Cells: cells})
	}
	return Matrix{Machines: machines, Rows: rows}
}

// BuildMatrixFromBounds is the string-bounds entry point the query surface
// uses: if either bound is missing or unparsable the result is empty, since a
// range query needs both ends.
func BuildMatrixFromBounds(store *Store, start, end string) Matrix {
	from, okFrom := ParseDay(start)
	to, okTo := ParseDay(end)
	if !okFrom || !okTo {
		return Matrix{}
	}
	return BuildMatrix(store, from, to)
}
