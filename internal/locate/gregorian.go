package locate

import (
	"github.com/davejbax/go-datetime/internal/spec"
)

// The Gregorian calendar repeats exactly every 400 years (146,097 days). The
// year locator is anchored at the start of 2001, the first year of a 400-year
// cycle, so every remainder below measures a non-negative offset into regular
// sub-cycles.
const (
	yearStart2001 = 11_323 * spec.DayMillis // 2001-01-01T00:00Z

	yearMillis            = 365 * spec.DayMillis
	fourYearMillis        = 1461 * spec.DayMillis   // 4*365 + 1
	hundredYearMillis     = 36524 * spec.DayMillis  // 25*1461 - 1
	fourHundredYearMillis = 146097 * spec.DayMillis // 4*36524 + 1
)

// daysBefore[m] is the number of days in a non-leap year before month m+1
// begins. Used to size months for validation; the ordinal/month conversions
// themselves are closed-form (see monthFromYearDays).
var daysBefore = [13]int{
	0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365,
}

// DaysInMonth returns the number of days in the given month (1 = January) of
// a leap or non-leap year.
func DaysInMonth(month int, leap bool) int {
	if month == 2 && leap {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// IsLeapYear reports whether the Gregorian year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// YearFromTimestamp locates the Gregorian year containing the given day-part
// timestamp. The offset from the 2001 anchor is cut into 400-year, 100-year,
// 4-year and single-year cycles in turn; only the first division can see a
// negative offset, so it rounds towards negative infinity.
func YearFromTimestamp(day int64) spec.GregorianYear {
	d := day - yearStart2001

	n400 := floorDiv(d, fourHundredYearMillis)
	d -= n400 * fourHundredYearMillis

	// The last 100-year cycle has one extra leap day (year 400 of the cycle
	// is a leap year, unlike years 100, 200 and 300), so on the last day of
	// the cycle the quotient would reach 4. Fold it back into the fourth
	// bucket.
	n100 := d / hundredYearMillis
	if n100 == 4 {
		n100 = 3
	}
	d -= n100 * hundredYearMillis

	// The final partial 4-year group of a century has no leap year, so the
	// quotient never overshoots here.
	n4 := d / fourYearMillis
	d -= n4 * fourYearMillis

	// Same folding as the 100-year cut: the fourth year of a full 4-year
	// group is the leap year.
	n1 := d / yearMillis
	if n1 == 4 {
		n1 = 3
	}
	d -= n1 * yearMillis

	return spec.GregorianYear{
		Year: 2001 + int(400*n400+100*n100+4*n4+n1),
		// Relative to the anchor, leap years are the fourth year of a 4-year
		// group, except the last group of a century unless that century is
		// the fourth of its 400-year cycle.
		Leap:  n1 == 3 && (n4 != 24 || n100 == 3),
		Start: day - d,
	}
}

// YearFromNumber locates the Gregorian year with the given number. It is the
// exact inverse of YearFromTimestamp: because the input addresses a year
// directly rather than a day inside one, plain floor quotients need no
// folding.
func YearFromNumber(year int) spec.GregorianYear {
	y := int64(year - 2001)

	n400 := floorDiv(y, 400)
	y -= n400 * 400
	n100 := y / 100
	y -= n100 * 100
	n4 := y / 4
	y -= n4 * 4

	return spec.GregorianYear{
		Year:  year,
		Leap:  IsLeapYear(year),
		Start: yearStart2001 + n400*fourHundredYearMillis + n100*hundredYearMillis + n4*fourYearMillis + y*yearMillis,
	}
}

// monthFromYearDays converts a 0-based day-of-year index into a month and a
// 1-based day of month, using the closed-form month-boundary polynomial over
// a March-based year: counting from March 1, month m (0 = March) begins on
// day (153m+2)/5, because the 31/30-day pattern repeats every five months
// (153 days). January and February are folded to the end of the preceding
// March-based year, which conveniently puts the leap day last.
func monthFromYearDays(yearDay int, leap bool) (month int, monthDay int) {
	feb := 59
	if leap {
		feb++
	}

	sinceMarch := yearDay - feb
	if sinceMarch < 0 {
		sinceMarch += 365
		if leap {
			sinceMarch++
		}
	}

	m := (5*sinceMarch + 2) / 153
	monthDay = sinceMarch - (153*m+2)/5 + 1

	month = m + 3
	if month > 12 {
		month -= 12
	}
	return month, monthDay
}

// monthStartYearDays returns the 0-based day-of-year index on which the given
// month begins; the inverse of the monthFromYearDays polynomial.
func monthStartYearDays(month int, leap bool) int {
	switch month {
	case 1:
		return 0
	case 2:
		return 31
	default:
		start := (153*(month-3)+2)/5 + 59
		if leap {
			start++
		}
		return start
	}
}

// DayFromOrdinal locates the day with the given 1-based ordinal index within
// a year. The ordinal must lie in [1, year.Days()].
func DayFromOrdinal(year spec.GregorianYear, ordinal int) spec.GregorianDay {
	month, monthDay := monthFromYearDays(ordinal-1, year.Leap)
	return spec.GregorianDay{
		OrdinalDay: ordinal,
		Month:      month,
		MonthDay:   monthDay,
		Start:      year.Start + int64(ordinal-1)*spec.DayMillis,
	}
}

// DayFromMonthDay locates the day with the given month and day-of-month
// coordinates within a year. The pair must name an existing day of the year.
func DayFromMonthDay(year spec.GregorianYear, month, monthDay int) spec.GregorianDay {
	ordinal := monthStartYearDays(month, year.Leap) + monthDay
	return spec.GregorianDay{
		OrdinalDay: ordinal,
		Month:      month,
		MonthDay:   monthDay,
		Start:      year.Start + int64(ordinal-1)*spec.DayMillis,
	}
}

// DayFromOffset locates the day at the given millisecond offset from the
// year's start. The offset must lie in [0, year.Millis()).
func DayFromOffset(year spec.GregorianYear, offset int64) spec.GregorianDay {
	return DayFromOrdinal(year, int(offset/spec.DayMillis)+1)
}
