// Package spec contains the plain record types and unit constants of the
// calendrical model: a millisecond timestamp split into day and time parts,
// and the Gregorian, ISO-8601 week-date and time-of-day descriptors derived
// from it. The types carry no behaviour beyond trivial projections; the
// arithmetic that produces them lives in internal/locate.
package spec

// Milliseconds per unit of civil time. A day is always exactly 86,400,000
// milliseconds; leap seconds are not modelled, matching POSIX time.
const (
	SecondMillis = 1000
	MinuteMillis = 60 * SecondMillis
	HourMillis   = 60 * MinuteMillis
	DayMillis    = 24 * HourMillis
	WeekMillis   = 7 * DayMillis
)

// MaxTimestamp is the largest representable timestamp, in milliseconds
// relative to 1970-01-01T00:00:00Z. The domain is symmetric around the epoch
// and matches the IEEE-754-safe integer range used by ECMAScript Date
// semantics (±100,000,000 days).
const (
	MaxTimestamp = 8_640_000_000_000_000
	MinTimestamp = -MaxTimestamp
)

// MinFullYear and MaxFullYear are the Gregorian years containing MinTimestamp
// and MaxTimestamp respectively; no descriptor can lie outside them.
const (
	MinFullYear = -271_821
	MaxFullYear = 275_760
)

// SplitTimestamp is a timestamp decomposed into a whole-day part and an
// intra-day part. Day is a multiple of DayMillis, Time lies in [0, DayMillis),
// and Day + Time reconstructs the original timestamp exactly.
type SplitTimestamp struct {
	Day  int64
	Time int64
}

// Millis returns the timestamp the split was produced from.
func (s SplitTimestamp) Millis() int64 {
	return s.Day + s.Time
}

// GregorianYear locates one calendar year on the timeline.
//
// ISO 8601-1:2019 §4.2.1 (calendar year)
type GregorianYear struct {
	Year int
	Leap bool

	// Start is the day-part timestamp of January 1, 00:00.
	Start int64
}

// Days returns the number of calendar days in the year.
func (y GregorianYear) Days() int {
	if y.Leap {
		return 366
	}
	return 365
}

// Millis returns the length of the year in milliseconds.
func (y GregorianYear) Millis() int64 {
	return int64(y.Days()) * DayMillis
}

// GregorianDay locates one day within a GregorianYear under both of its
// coordinate systems: the 1-based ordinal day of year, and the
// (month, day-of-month) pair. The two always agree.
//
// ISO 8601-1:2019 §4.2.2 (calendar date), §4.2.3 (ordinal date)
type GregorianDay struct {
	OrdinalDay int // [1,366]
	Month      int // [1,12]
	MonthDay   int // [1,31]

	// Start is the day-part timestamp of the day's 00:00.
	Start int64
}

// ISOYear locates one ISO-8601 week-calendar year. An ISO year begins on the
// Monday of the week containing January 4 of the same-numbered Gregorian
// year, and is long (53 weeks) when January 1 of that Gregorian year falls
// on a Thursday, or on a Wednesday in a leap year.
//
// ISO 8601-1:2019 §4.2.4 (week date)
type ISOYear struct {
	Year int
	Long bool

	// Start is the day-part timestamp of the year's first Monday.
	Start int64
}

// Weeks returns the number of ISO weeks in the year.
func (y ISOYear) Weeks() int {
	if y.Long {
		return 53
	}
	return 52
}

// Millis returns the length of the ISO year in milliseconds.
func (y ISOYear) Millis() int64 {
	return int64(y.Weeks()) * WeekMillis
}

// ISODay locates one day within an ISOYear by week number and weekday.
// Weekdays are numbered 1 (Monday) through 7 (Sunday).
type ISODay struct {
	Week    int // [1,53]
	WeekDay int // [1,7]

	// Start is the day-part timestamp of the day's 00:00.
	Start int64
}

// TimeOfDay decomposes an intra-day offset into clock fields. Hour24 is
// always Hour12 + Meridiem, with Meridiem either 0 or 12.
type TimeOfDay struct {
	Hour24      int // [0,23]
	Hour12      int // [0,11]
	Meridiem    int // 0 | 12
	Minute      int // [0,59]
	Second      int // [0,59]
	Millisecond int // [0,999]

	// Offset is the sum of all fields in milliseconds, in [0, DayMillis).
	Offset int64
}
