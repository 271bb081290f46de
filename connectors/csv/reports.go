package csv

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"prod-stats/domain/production"
)

// WriteLeaderboardCSV persists one windowed ranking. A nil percent is written
// as an empty cell, keeping "no data" distinct from 0.
func WriteLeaderboardCSV(path string, board production.Leaderboard) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"rank", "machine", "percent", "target", "actual", "window_from", "window_to"}); err != nil {
		return err
	}
	for _, e := range board.Entries {
		row := []string{
			strconv.Itoa(e.Rank),
			e.Machine,
			formatNullable(e.Percent),
			formatNumber(e.Target),
			formatNumber(e.Actual),
			board.From.String(),
			board.To.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteDailySummaryCSV persists per date x shift aggregates across a whole
// store, one row per (date, shift) bucket that has records.
func WriteDailySummaryCSV(path string, store *production.Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"date", "shift", "target", "actual", "percent"}); err != nil {
		return err
	}
	for _, d := range store.Dates() {
		for _, shift := range []production.Shift{production.ShiftA, production.ShiftB} {
			recs := production.ShiftRecords(store, d, shift)
			if len(recs) == 0 {
				continue
			}
			agg := production.Summarize(recs)
			row := []string{
				d.String(),
				string(shift),
				formatNumber(agg.Target),
				formatNumber(agg.Actual),
				formatNullable(agg.Percent),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
