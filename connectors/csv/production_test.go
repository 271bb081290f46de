package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prod-stats/domain/production"
)

func TestProductionCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "imd.csv")

	d, _ := production.ParseDay("31-07-2025")
	in := []production.Record{
		{Date: d, Machine: "MC-1", Shift: "A", Target: 1000, Actual: 1050, Variance: 50, Percent: 5, Items: "caps"},
		{Date: d, Machine: "MC-2", Shift: "B", Target: 800, Actual: 760, Variance: -40, Percent: -5},
	}
	require.NoError(t, WriteProductionCSV(path, in))

	out, err := ReadProductionCSV(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Dates come back canonical regardless of the original sheet format
	assert.Equal(t, "2025-07-31", out[0].Date.String())
	assert.Equal(t, in, out)
}

func TestReadProductionCSVRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644))
	_, err := ReadProductionCSV(path)
	assert.ErrorContains(t, err, "missing column")
}

func TestReadProductionCSVDropsBadDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.csv")
	body := "date,machine,shift,target,actual,variance,percent,items\n" +
		"2025-07-01,MC-1,A,100,110,10,10,\n" +
		"soon,MC-2,B,100,90,-10,-10,\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := ReadProductionCSV(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "MC-1", out[0].Machine)
}

func TestWriteLeaderboardCSVNilPercentIsEmptyCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perf.csv")
	from, _ := production.ParseDay("2025-07-01")
	to, _ := production.ParseDay("2025-07-10")
	pct := 8.0
	board := production.Leaderboard{
		WindowDays: 10,
		From:       from,
		To:         to,
		Entries: []production.MachineRank{
			{Rank: 1, Machine: "MC-1", Target: 1000, Actual: 1080, Percent: &pct},
			{Rank: 2, Machine: "MC-2", Target: 0, Actual: 300},
		},
	}
	require.NoError(t, WriteLeaderboardCSV(path, board))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "1,MC-1,8.00,1000,1080,2025-07-01,2025-07-10")
	assert.Contains(t, string(b), "2,MC-2,,0,300,2025-07-01,2025-07-10")
}

func TestWriteDailySummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	d, _ := production.ParseDay("2025-07-01")
	store := production.NewStore([]production.Record{
		{Date: d, Machine: "MC-1", Shift: "A", Target: 100, Actual: 110},
		{Date: d, Machine: "MC-2", Shift: "night", Target: 100, Actual: 90},
	})
	require.NoError(t, WriteDailySummaryCSV(path, store))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	// Only the A bucket has records; other shifts are out of per-shift summaries
	assert.Contains(t, string(b), "2025-07-01,A,100,110,10.00")
	assert.NotContains(t, string(b), "night")
	assert.NotContains(t, string(b), "2025-07-01,B")
}
