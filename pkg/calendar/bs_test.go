package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGregorianEpoch(t *testing.T) {
	got, err := ToGregorian("2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1943, time.April, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestToGregorianWithinFirstYear(t *testing.T) {
	// First month of BS 2000 has 30 days.
	got, err := ToGregorian("2000-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1943, time.May, 14, 0, 0, 0, 0, time.UTC), got)

	got, err = ToGregorian("2000-01-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1943, time.May, 13, 0, 0, 0, 0, time.UTC), got)
}

func TestToGregorianIsMonotonic(t *testing.T) {
	prev, err := ToGregorian("2080-01-01")
	require.NoError(t, err)

	for _, d := range []string{"2080-01-02", "2080-02-01", "2081-01-01", "2090-12-30"} {
		cur, err := ToGregorian(d)
		require.NoError(t, err)
		assert.True(t, cur.After(prev), "%s should map after previous date", d)
		prev = cur
	}
}

func TestToGregorianConsecutiveDaysAreAdjacent(t *testing.T) {
	a, err := ToGregorian("2045-06-30")
	require.NoError(t, err)
	b, err := ToGregorian("2045-07-01")
	require.NoError(t, err)
	assert.Equal(t, a.AddDate(0, 0, 1), b)
}

func TestToGregorianRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"2080/01/01",
		"1999-01-01", // before supported range
		"2091-01-01", // after supported range
		"2080-13-01",
		"2080-00-10",
		"2080-01-33",
		"2080-02-0x",
	}
	for _, c := range cases {
		_, err := ToGregorian(c)
		assert.Error(t, err, "input %q", c)
	}
}

func TestDaysInMonth(t *testing.T) {
	n, err := DaysInMonth(2000, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, n)

	_, err = DaysInMonth(1999, 1)
	assert.Error(t, err)
	_, err = DaysInMonth(2000, 13)
	assert.Error(t, err)
}
