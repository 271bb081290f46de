package production

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineNumber(t *testing.T) {
	assert.Equal(t, 1.0, MachineNumber("MC-01"))
	assert.Equal(t, 2.0, MachineNumber("M/C2"))
	assert.Equal(t, 12.0, MachineNumber("Machine 12"))
	assert.Equal(t, 7.0, MachineNumber("7"))
	assert.True(t, math.IsInf(MachineNumber("spare"), 1))
	assert.True(t, math.IsInf(MachineNumber(""), 1))
}

func TestCanonicalShift(t *testing.T) {
	assert.Equal(t, ShiftA, CanonicalShift(" a "))
	assert.Equal(t, ShiftA, CanonicalShift("A"))
	assert.Equal(t, ShiftB, CanonicalShift("b"))
	assert.Equal(t, ShiftOther, CanonicalShift("night"))
	assert.Equal(t, ShiftOther, CanonicalShift(""))
}

func TestNormalizeRow(t *testing.T) {
	rec, ok := NormalizeRow([]string{"31/07/2025", " MC-1 ", "A", "1000", "1050", "50", "5", "caps"})
	require.True(t, ok)
	assert.Equal(t, "2025-07-31", rec.Date.String())
	assert.Equal(t, "MC-1", rec.Machine)
	assert.Equal(t, "A", rec.Shift)
	assert.Equal(t, 1000.0, rec.Target)
	assert.Equal(t, 1050.0, rec.Actual)
	assert.Equal(t, 50.0, rec.Variance)
	assert.Equal(t, 5.0, rec.Percent)
	assert.Equal(t, "caps", rec.Items)
}

func TestNormalizeRowDropsBadDate(t *testing.T) {
	_, ok := NormalizeRow([]string{"not-a-date", "MC-1", "A", "100", "90", "", "", ""})
	assert.False(t, ok)
}

func TestNormalizeRowCoercesBadNumbers(t *testing.T) {
	rec, ok := NormalizeRow([]string{"2025-07-01", "MC-1", "A", "n/a", "-", "", "", ""})
	require.True(t, ok)
	assert.Equal(t, 0.0, rec.Target)
	assert.Equal(t, 0.0, rec.Actual)
	assert.Equal(t, 0.0, rec.Variance)
	assert.False(t, math.IsNaN(rec.Percent))
}

func TestNormalizeRowPadsShortRows(t *testing.T) {
	rec, ok := NormalizeRow([]string{"2025-07-01", "MC-1", "A", "100"})
	require.True(t, ok)
	assert.Equal(t, 100.0, rec.Target)
	assert.Equal(t, 0.0, rec.Actual)
	assert.Equal(t, -100.0, rec.Variance) // derived from the empty cell
	assert.Equal(t, "", rec.Items)
}

func TestNormalizeRowClampsNegatives(t *testing.T) {
	rec, ok := NormalizeRow([]string{"2025-07-01", "MC-1", "A", "-50", "-10", "0", "0", ""})
	require.True(t, ok)
	assert.Equal(t, 0.0, rec.Target)
	assert.Equal(t, 0.0, rec.Actual)
}

func TestNormalizeRowParsesGroupedNumbers(t *testing.T) {
	rec, ok := NormalizeRow([]string{"2025-07-01", "MC-1", "A", "1,000", "1,050", "", "5%", ""})
	require.True(t, ok)
	assert.Equal(t, 1000.0, rec.Target)
	assert.Equal(t, 1050.0, rec.Actual)
	assert.Equal(t, 50.0, rec.Variance)
	assert.Equal(t, 5.0, rec.Percent)
}

func TestNormalizeRowsSkipsHeaderAndBadRows(t *testing.T) {
	rows := [][]string{
		{"DATE", "MACHINE", "SHIFT", "TARGET", "ACTUAL", "EXTRA/LESS", "PERCENT", "ITEMS"},
		{"2025-07-01", "MC-1", "A", "100", "110", "10", "10", ""},
		{"??", "MC-2", "B", "100", "90", "-10", "-10", ""},
		{"02-07-2025", "MC-2", "B", "100", "90", "-10", "-10", ""},
	}
	recs := NormalizeRows(rows)
	require.Len(t, recs, 2)
	assert.Equal(t, "2025-07-01", recs[0].Date.String())
	assert.Equal(t, "2025-07-02", recs[1].Date.String())

	assert.Empty(t, NormalizeRows(nil))
	assert.Empty(t, NormalizeRows(rows[:1])) // header only
}
