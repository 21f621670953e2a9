// Package locate implements the pure locator arithmetic of the calendar
// engine: splitting a timestamp into day and time parts, and converting
// between day-part timestamps and the Gregorian year/day, ISO week-year/day
// and time-of-day descriptors of internal/spec.
//
// Every function here is a closed-form quotient/remainder computation; none
// iterate, allocate or fail. Inputs outside the documented preconditions
// yield unspecified descriptors, so range validation belongs to the caller.
package locate

import (
	"github.com/davejbax/go-datetime/internal/spec"
)

// Split decomposes a timestamp into its whole-day and intra-day parts. The
// day part is rounded towards negative infinity, so the time part is
// non-negative even for timestamps before the epoch.
func Split(timestamp int64) spec.SplitTimestamp {
	day := floorDiv(timestamp, spec.DayMillis) * spec.DayMillis
	return spec.SplitTimestamp{
		Day:  day,
		Time: timestamp - day,
	}
}

// Zoned shifts a split timestamp by a zone offset, carrying at most one whole
// day between the parts. offsetMillis must be smaller than a day in
// magnitude, which every legal zone offset is.
func Zoned(s spec.SplitTimestamp, offsetMillis int64) spec.SplitTimestamp {
	t := s.Time + offsetMillis
	switch {
	case t < 0:
		return spec.SplitTimestamp{Day: s.Day - spec.DayMillis, Time: t + spec.DayMillis}
	case t >= spec.DayMillis:
		return spec.SplitTimestamp{Day: s.Day + spec.DayMillis, Time: t - spec.DayMillis}
	default:
		return spec.SplitTimestamp{Day: s.Day, Time: t}
	}
}
