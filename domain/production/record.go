package production

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Shift buckets. Labels other than A/B (after trim + uppercase) fall into
// ShiftOther; those records show in the table view but are excluded from
// per-shift aggregates.
type Shift string

const (
	ShiftA     Shift = "A"
	ShiftB     Shift = "B"
	ShiftOther Shift = "other"
)

// CanonicalShift maps a free-form shift label onto its bucket. Every component
// that compares shifts goes through this; nothing re-implements the
// trim/uppercase logic.
func CanonicalShift(label string) Shift {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "A":
		return ShiftA
	case "B":
		return ShiftB
	}
	return ShiftOther
}

// Record is one normalized production observation. Immutable once built.
type Record struct {
	Date     Day     `json:"date"`
	Machine  string  `json:"machine"`
	Shift    string  `json:"shift"`
	Target   float64 `json:"target"`
	Actual   float64 `json:"actual"`
	Variance float64 `json:"variance"`
	Percent  float64 `json:"percent"`
	Items    string  `json:"items"`
}

var firstNumber = regexp.MustCompile(`\d+`)

// MachineNumber extracts the first embedded integer from a machine label
// ("MC-01", "M/C2", "Machine 12" -> 1, 2, 12) for natural-order sorting.
// Labels with no digit return +Inf so they sort last. This is only ever a
// sort key: two distinct labels may share a number.
func MachineNumber(label string) float64 {
	if m := firstNumber.FindString(label); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return float64(n)
		}
	}
	return math.Inf(1)
}

// machineLess orders labels ascending by extracted number, ties broken by the
// label string itself.
func machineLess(a, b string) bool {
	na, nb := MachineNumber(a), MachineNumber(b)
	if na != nb {
		return na < nb
	}
	return a < b
}

// fieldCount is the positional row shape the sheet exports:
// DATE | MACHINE | SHIFT | TARGET | ACTUAL | EXTRA/LESS | PERCENT | ITEMS
const fieldCount = 8

// NormalizeRow converts one raw sheet row into a Record. Rows whose date
// fails canonicalization are dropped (second return false); that is defined
// behavior for dirty sheets, not an error. Short rows are padded with empty
// cells, numeric cells that fail to parse coerce to 0, and target/actual are
// clamped non-negative. An empty variance cell is derived as actual - target.
func NormalizeRow(cells []string) (Record, bool) {
	if len(cells) < fieldCount {
		padded := make([]string, fieldCount)
		copy(padded, cells)
		cells = padded
	}
	date, ok := ParseDay(cells[0])
	if !ok {
		return Record{}, false
	}
	target := math.Max(0, parseNumber(cells[3]))
	actual := math.Max(0, parseNumber(cells[4]))
	variance := parseNumber(cells[5])
	if strings.TrimSpace(cells[5]) == "" {
		variance = actual - target
	}
	return Record{
		Date:     date,
		Machine:  strings.TrimSpace(cells[1]),
		Shift:    strings.TrimSpace(cells[2]),
		Target:   target,
		Actual:   actual,
		Variance: variance,
		Percent:  parseNumber(cells[6]),
		Items:    strings.TrimSpace(cells[7]),
	}, true
}

// NormalizeRows runs NormalizeRow over a raw dataset, skipping the header row
// (the first raw row is always a header by contract) and dropping rows with
// unparsable dates.
func NormalizeRows(rows [][]string) []Record {
	if len(rows) == 0 {
		return nil
	}
	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rec, ok := NormalizeRow(row); ok {
			out = append(out, rec)
		}
	}
	return out
}

// parseNumber parses a numeric cell, coercing failures to 0 so NaN never
// enters the aggregation pipeline.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
