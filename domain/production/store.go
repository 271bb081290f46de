package production

import (
	"sort"

	lo "github.com/samber/lo"
)

// Store is the date-grouped view of one loaded dataset: every Record keyed by
// its canonical Day, insertion order preserved within a day. A Store is built
// once per load and never mutated; reloads build a fresh one.
type Store struct {
	byDate map[Day][]Record
	dates  []Day // ascending
}

// NewStore groups records by day. Input order is kept within each day.
func NewStore(records []Record) *Store {
	byDate := make(map[Day][]Record)
	for _, r := range records {
		byDate[r.Date] = append(byDate[r.Date], r)
	}
	dates := lo.Keys(byDate)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return &Store{byDate: byDate, dates: dates}
}

// Dates returns all canonical days present, ascending.
func (s *Store) Dates() []Day {
	return s.dates
}

// Records returns the records for one day, empty if none.
func (s *Store) Records(d Day) []Record {
	return s.byDate[d]
}

// Latest returns the chronologically last day present, false when empty.
func (s *Store) Latest() (Day, bool) {
	if len(s.dates) == 0 {
		return Day{}, false
	}
	return s.dates[len(s.dates)-1], true
}

// Empty reports whether the store holds no records at all.
func (s *Store) Empty() bool {
	return len(s.dates) == 0
}

// Between returns the records of every stored day in [lo, hi] inclusive, in
// date order. Bounds may arrive in either order.
func (s *Store) Between(from, to Day) []Record {
	if to.Before(from) {
		from, to = to, from
	}
	var out []Record
	for _, d := range s.dates {
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, s.byDate[d]...)
	}
	return out
}

// DatesBetween returns the stored days falling in [lo, hi] inclusive,
// ascending. Days without records are absent by construction.
func (s *Store) DatesBetween(from, to Day) []Day {
	if to.Before(from) {
		from, to = to, from
	}
	return lo.Filter(s.dates, func(d Day, _ int) bool {
		return !d.Before(from) && !d.After(to)
	})
}
