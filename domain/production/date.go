package production

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Day is a canonical calendar day with no time component. Two Days are equal
// iff year, month and day all match, regardless of the input format they were
// parsed from.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// Recognized input shapes, tried in priority order: a 4-digit leading group
// means YYYY-MM-DD, a '/' separator means MM/DD/YYYY, otherwise '-' with a
// non-4-digit leading group means DD-MM-YYYY.
var (
	reISO = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reDMY = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)
	reMDY = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// ParseDay parses a date string in one of the recognized formats into a
// canonical Day. The second return is false for anything structurally or
// calendrically invalid (e.g. "2025-07-32").
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, false
	}
	var y, mo, d int
	if m := reISO.FindStringSubmatch(s); m != nil {
		y, mo, d = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else if m := reMDY.FindStringSubmatch(s); m != nil {
		mo, d, y = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else if m := reDMY.FindStringSubmatch(s); m != nil {
		d, mo, y = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else {
		return Day{}, false
	}
	day := Day{Year: y, Month: time.Month(mo), Date: d}
	// time.Date normalizes out-of-range components (day 32 rolls over), so a
	// round-trip mismatch means the date was calendrically invalid.
	if t := day.Time(); t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d {
		return Day{}, false
	}
	return day, true
}

// Time returns the day at UTC midnight.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, time.UTC)
}

// String renders the canonical YYYY-MM-DD key.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Date)
}

// Before compares two days chronologically.
func (d Day) Before(o Day) bool {
	return d.Time().Before(o.Time())
}

// After compares two days chronologically.
func (d Day) After(o Day) bool {
	return o.Before(d)
}

// AddDays returns the day n calendar days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	t := d.Time().AddDate(0, 0, n)
	return Day{Year: t.Year(), Month: t.Month(), Date: t.Day()}
}

// MarshalText lets Day render as its canonical key in JSON/CSV output.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	day, ok := ParseDay(string(b))
	if !ok {
		return fmt.Errorf("invalid day %q", string(b))
	}
	*d = day
	return nil
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
