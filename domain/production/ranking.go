package production

import (
	"sort"

	lo "github.com/samber/lo"
)

// WindowSizes are the recognized trailing-window lengths, in days.
var WindowSizes = []int{10, 15, 30, 60}

// ValidWindow reports whether days is one of the recognized window sizes.
func ValidWindow(days int) bool {
	return lo.Contains(WindowSizes, days)
}

// MachineRank is one leaderboard entry. Percent nil means the machine had no
// computable performance in the window (summed target 0); those rank after
// every machine with a real percent.
type MachineRank struct {
	Rank    int      `json:"rank"`
	Machine string   `json:"machine"`
	Target  float64  `json:"target"`
	Actual  float64  `json:"actual"`
	Percent *float64 `json:"percent"`
}

// Leaderboard is the best-to-worst machine ordering over a trailing window
// anchored at the latest day in the store.
type Leaderboard struct {
	WindowDays int           `json:"window_days"`
	From       Day           `json:"from"`
	To         Day           `json:"to"`
	Entries    []MachineRank `json:"entries"`
}

// WindowLabel renders the inclusive window bounds for display.
func (l Leaderboard) WindowLabel() string {
	return l.From.String() + " → " + l.To.String()
}

// BuildLeaderboard aggregates per machine over the last `days` calendar days
// ending at the latest stored day and orders machines best first. Ties break
// by ascending machine number; machines with nil percent sort after all
// others, ordered among themselves by machine number. The second return is
// false when the store is empty ("no data", not an empty ranking).
func BuildLeaderboard(store *Store, days int) (Leaderboard, bool) {
	hi, ok := store.Latest()
	if !ok || days <= 0 {
		return Leaderboard{}, false
	}
	low := hi.AddDays(-(days - 1))

	byMachine := lo.GroupBy(store.Between(low, hi), func(r Record) string { return r.Machine })
	entries := make([]MachineRank, 0, len(byMachine))
	for machine, recs := range byMachine {
		agg := Summarize(recs)
		entries = append(entries, MachineRank{
			Machine: machine,
			Target:  agg.Target,
			Actual:  agg.Actual,
			Percent: agg.Percent,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.Percent == nil && b.Percent == nil:
			return machineLess(a.Machine, b.Machine)
		case a.Percent == nil:
			return false
		case b.Percent == nil:
			return true
		case *a.Percent != *b.Percent:
			return *a.Percent > *b.Percent
		}
		return machineLess(a.Machine, b.Machine)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return Leaderboard{WindowDays: days, From: low, To: hi, Entries: entries}, true
}
