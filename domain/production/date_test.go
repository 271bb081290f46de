package production

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayAcceptsAllFormats(t *testing.T) {
	// Same calendar day in each recognized format
	for _, in := range []string{"2025-07-31", "31-07-2025", "07/31/2025"} {
		d, ok := ParseDay(in)
		require.True(t, ok, in)
		assert.Equal(t, Day{Year: 2025, Month: 7, Date: 31}, d, in)
		assert.Equal(t, "2025-07-31", d.String(), in)
	}
}

func TestParseDaySeparatorDisambiguation(t *testing.T) {
	// '/' means MM/DD, '-' with a short leading group means DD-MM
	slash, ok := ParseDay("03/04/2025")
	require.True(t, ok)
	assert.Equal(t, Day{Year: 2025, Month: 3, Date: 4}, slash)

	dash, ok := ParseDay("03-04-2025")
	require.True(t, ok)
	assert.Equal(t, Day{Year: 2025, Month: 4, Date: 3}, dash)
}

func TestParseDayRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "2025-07-32", "31/07/2025", "2025-13-01", "29-02-2025", "yesterday", "2025/07/31"} {
		_, ok := ParseDay(in)
		assert.False(t, ok, in)
	}
	// leap day parses in a leap year
	_, ok := ParseDay("29-02-2024")
	assert.True(t, ok)
}

func TestDayOrderingIsChronological(t *testing.T) {
	a, _ := ParseDay("2025-09-30")
	b, _ := ParseDay("2025-10-01")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}

func TestDayAddDaysCrossesMonths(t *testing.T) {
	d, _ := ParseDay("2025-07-10")
	assert.Equal(t, "2025-07-01", d.AddDays(-9).String())
	assert.Equal(t, "2025-08-09", d.AddDays(30).String())
}

func TestDayTextMarshalling(t *testing.T) {
	d, _ := ParseDay("2025-07-01")
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", string(b))

	var back Day
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, d, back)
	assert.Error(t, back.UnmarshalText([]byte("not a date")))
}
