package locate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davejbax/go-datetime/internal/locate"
	"github.com/davejbax/go-datetime/internal/spec"
)

func TestWeekday(t *testing.T) {
	cases := []struct {
		day     int64
		weekday int
	}{
		{0, 4},               // 1970-01-01, Thursday
		{-spec.DayMillis, 3}, // 1969-12-31, Wednesday
		{1262563200000, 1},   // 2010-01-04, Monday
		{1709164800000, 4},   // 2024-02-29, Thursday
		{1262563200000 - 7*spec.DayMillis, 1},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d", c.day), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.weekday, locate.Weekday(c.day))
		})
	}
}

func TestISOYearFromNumber(t *testing.T) {
	cases := []struct {
		year  int
		long  bool
		start int64
	}{
		// 2010 begins on Monday 2010-01-04.
		{2010, false, 1262563200000},
		// 1999 begins on Monday 1999-01-04.
		{1999, false, 915408000000},
		// 2020 begins on Monday 2019-12-30 and has 53 weeks.
		{2020, true, 1577664000000},
		// 1970 begins on Monday 1969-12-29 and has 53 weeks: January 1 was a
		// Thursday.
		{1970, true, -3 * spec.DayMillis},
		{2004, true, locate.YearFromNumber(2004).Start - 3*spec.DayMillis},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d", c.year), func(t *testing.T) {
			t.Parallel()

			year := locate.ISOYearFromNumber(c.year)
			assert.Equal(t, c.year, year.Year)
			assert.Equal(t, c.long, year.Long, "long flag should match")
			assert.Equal(t, c.start, year.Start, "year start should match")
		})
	}
}

// TestISOYearDefiningProperty checks, over several windows including century
// and 400-year boundaries, that every ISO year starts on the Monday of the
// week containing January 4, and that the long flag matches the actual
// distance to the next year's start.
func TestISOYearDefiningProperty(t *testing.T) {
	windows := []struct{ from, to int }{
		{1965, 2030},
		{2090, 2110},
		{2395, 2410},
		{-15, 15},
		{spec.MinFullYear + 1, spec.MinFullYear + 10},
		{spec.MaxFullYear - 10, spec.MaxFullYear - 1},
	}

	for _, w := range windows {
		w := w
		t.Run(fmt.Sprintf("%d..%d", w.from, w.to), func(t *testing.T) {
			t.Parallel()

			for y := w.from; y < w.to; y++ {
				year := locate.ISOYearFromNumber(y)

				jan4 := locate.YearFromNumber(y).Start + 3*spec.DayMillis
				monday := jan4 - int64(locate.Weekday(jan4)-1)*spec.DayMillis
				require.Equal(t, monday, year.Start, "year %d", y)
				require.Equal(t, 1, locate.Weekday(year.Start), "year %d must start on Monday", y)

				length := locate.ISOYearFromNumber(y+1).Start - year.Start
				require.Equal(t, year.Millis(), length, "length of year %d must match long flag", y)
			}
		})
	}
}

// TestISOWeekDensity checks the 400-year periodicity: 71 long plus 329 short
// years, 20,871 weeks in total, regardless of where the window starts.
func TestISOWeekDensity(t *testing.T) {
	t.Parallel()

	for _, base := range []int{2000, 2010, 1987, -200} {
		weeks, long := 0, 0
		for y := base; y < base+400; y++ {
			year := locate.ISOYearFromNumber(y)
			weeks += year.Weeks()
			if year.Long {
				long++
			}
		}
		assert.Equal(t, 71, long, "long years in window starting %d", base)
		assert.Equal(t, 20871, weeks, "weeks in window starting %d", base)
	}
}

func TestISOYearFromTimestampRoundTrip(t *testing.T) {
	years := []int{
		spec.MinFullYear + 1, -100, 0, 1969, 1970, 1998, 1999, 2000, 2004,
		2009, 2010, 2015, 2020, 2024, 2099, 2100, 2399, 2400, spec.MaxFullYear - 1,
	}

	for _, y := range years {
		y := y
		t.Run(fmt.Sprintf("%d", y), func(t *testing.T) {
			t.Parallel()

			year := locate.ISOYearFromNumber(y)

			probes := []int64{
				year.Start,
				year.Start + year.Millis() - spec.DayMillis,
				year.Start + 26*spec.WeekMillis,
			}
			for _, day := range probes {
				require.Equal(t, year, locate.ISOYearFromTimestamp(day), "timestamp %d", day)
			}

			assert.Equal(t, y+1, locate.ISOYearFromTimestamp(year.Start+year.Millis()).Year)
			assert.Equal(t, y-1, locate.ISOYearFromTimestamp(year.Start-spec.DayMillis).Year)
		})
	}
}

func TestISODay(t *testing.T) {
	t.Parallel()

	year := locate.ISOYearFromNumber(2024)

	day := locate.DayFromWeek(year, 9, 4)
	assert.Equal(t, int64(1709164800000), day.Start, "2024-W09-4 is 2024-02-29")

	for _, c := range []struct{ week, weekDay int }{
		{1, 1}, {1, 7}, {9, 4}, {52, 7},
	} {
		c := c
		d := locate.DayFromWeek(year, c.week, c.weekDay)
		assert.Equal(t, d, locate.ISODayFromOffset(year, d.Start-year.Start), "W%02d-%d", c.week, c.weekDay)
	}

	// Offsets inside a day resolve to that day's coordinates.
	mid := locate.DayFromWeek(year, 9, 4)
	located := locate.ISODayFromOffset(year, mid.Start-year.Start+spec.DayMillis/2)
	assert.Equal(t, mid, located)
}
