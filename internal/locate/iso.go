package locate

import (
	"github.com/davejbax/go-datetime/internal/spec"
)

// The ISO week calendar shares the Gregorian 400-year period: 400 ISO years
// hold exactly 71 long and 329 short years, 20,871 weeks = 146,097 days. The
// locators below reuse the Gregorian cycle engine and align its results to
// week boundaries, which preserves that periodicity exactly.

// Weekday returns the ISO weekday (1 = Monday .. 7 = Sunday) of the day
// containing the given day-part timestamp. 1970-01-01 was a Thursday.
func Weekday(day int64) int {
	return int(floorMod(day/spec.DayMillis+3, 7)) + 1
}

// ISOYearFromNumber locates the ISO year with the given number: it starts on
// the Monday of the week containing January 4 of the equally numbered
// Gregorian year, and is long exactly when that year begins on a Thursday, or
// on a Wednesday in a leap year.
func ISOYearFromNumber(year int) spec.ISOYear {
	g := YearFromNumber(year)
	jan4 := g.Start + 3*spec.DayMillis

	return spec.ISOYear{
		Year:  year,
		Long:  isLong(g),
		Start: jan4 - int64(Weekday(jan4)-1)*spec.DayMillis,
	}
}

// ISOYearFromTimestamp locates the ISO year containing the given day-part
// timestamp. Every day of an ISO week lies in the same ISO year as the week's
// Thursday, and a week's Thursday always falls inside the Gregorian year of
// the same number, so shifting to the Thursday reduces the problem to the
// Gregorian year locator.
func ISOYearFromTimestamp(day int64) spec.ISOYear {
	thursday := day + int64(4-Weekday(day))*spec.DayMillis
	return ISOYearFromNumber(YearFromTimestamp(thursday).Year)
}

// isLong reports whether the ISO year numbered like the given Gregorian year
// has 53 weeks: the case exactly when January 1 is a Thursday, or a Wednesday
// in a leap year (the leap day pushes a 53rd Thursday into the year).
func isLong(g spec.GregorianYear) bool {
	switch Weekday(g.Start) {
	case 4:
		return true
	case 3:
		return g.Leap
	default:
		return false
	}
}

// DayFromWeek locates the day with the given week and weekday coordinates
// within an ISO year. Week must lie in [1, year.Weeks()], weekday in [1,7].
func DayFromWeek(year spec.ISOYear, week, weekDay int) spec.ISODay {
	return spec.ISODay{
		Week:    week,
		WeekDay: weekDay,
		Start:   year.Start + int64(week-1)*spec.WeekMillis + int64(weekDay-1)*spec.DayMillis,
	}
}

// ISODayFromOffset locates the day at the given millisecond offset from the
// ISO year's start. The offset must lie in [0, year.Millis()).
func ISODayFromOffset(year spec.ISOYear, offset int64) spec.ISODay {
	return spec.ISODay{
		Week:    int(offset/spec.WeekMillis) + 1,
		WeekDay: int(offset%spec.WeekMillis/spec.DayMillis) + 1,
		Start:   year.Start + offset - offset%spec.DayMillis,
	}
}
