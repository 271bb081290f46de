package production

import (
	"sort"

	lo "github.com/samber/lo"
)

// InterleaveByMachine orders one day's records for the table view: machines
// ascending by extracted number, and within each machine all A-shift rows
// (input order kept), then B, then other shifts. Grouping is by exact label,
// so two labels sharing a number stay separate rows.
func InterleaveByMachine(records []Record) []Record {
	byMachine := lo.GroupBy(records, func(r Record) string { return r.Machine })
	machines := lo.Keys(byMachine)
	sort.Slice(machines, func(i, j int) bool { return machineLess(machines[i], machines[j]) })

	out := make([]Record, 0, len(records))
	for _, machine := range machines {
		group := byMachine[machine]
		for _, shift := range []Shift{ShiftA, ShiftB, ShiftOther} {
			out = append(out, filterShift(group, shift)...)
		}
	}
	return out
}

// ShiftRecords returns the records of one day belonging to a shift bucket,
// for the per-shift breakdown charts.
func ShiftRecords(store *Store, date Day, shift Shift) []Record {
	return filterShift(store.Records(date), shift)
}
