// Package datetime converts between millisecond timestamps and Gregorian /
// ISO-8601 week calendar fields, in both directions, with a fixed numeric UTC
// offset per value.
//
// The central type is the immutable DateTime, constructed through validated
// factories (FromTimestamp, FromParts, Now). Setters return new instances.
// Timestamps are signed milliseconds relative to 1970-01-01T00:00:00Z within
// ±8,640,000,000,000,000 ms; all conversions are closed-form arithmetic.
//
// Only the proleptic Gregorian and ISO-8601 week calendars are modelled.
// There is no time-zone database: a zone is a fixed offset of real hours in
// [-12, 14], defaulting to the host's current offset. Textual parsing and
// locale-aware formatting are out of scope.
package datetime

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/davejbax/go-datetime/internal/locate"
	"github.com/davejbax/go-datetime/internal/spec"
)

// Domain bounds, re-exported for callers that clamp or reject inputs before
// constructing a DateTime.
const (
	MinTimestamp = spec.MinTimestamp
	MaxTimestamp = spec.MaxTimestamp
	MinFullYear  = spec.MinFullYear
	MaxFullYear  = spec.MaxFullYear
)

// Zone offset domain, in real hours (UTC-12:00 through UTC+14:00).
const (
	MinTimeZoneOffset = -12.0
	MaxTimeZoneOffset = 14.0
)

// A DateTime is an immutable instant paired with a fixed zone offset. The
// authoritative state is the UTC timestamp; every calendar field is derived
// from the zone-shifted timestamp on first access and memoized.
//
// Two DateTimes are equal exactly when their timestamps are equal; the zone
// offset and the memoized descriptors never participate in identity. The
// descriptor slots are written atomically and whole, so a DateTime may be
// shared between goroutines without locking: concurrent first accesses can
// recompute the same descriptor, which is harmless because every descriptor
// is a pure function of the zoned timestamp.
type DateTime struct {
	timestamp    int64
	offsetMillis int64
	zoned        spec.SplitTimestamp

	gregYear atomic.Pointer[spec.GregorianYear]
	gregDay  atomic.Pointer[spec.GregorianDay]
	isoYear  atomic.Pointer[spec.ISOYear]
	isoDay   atomic.Pointer[spec.ISODay]
	clock    atomic.Pointer[spec.TimeOfDay]
}

// FromTimestamp constructs a DateTime from a UTC millisecond timestamp.
// Without options the zone offset defaults to the host's current offset.
func FromTimestamp(timestamp int64, opts ...Option) (*DateTime, error) {
	o := buildOptions(opts)

	offsetHours := o.offsetHoursOrLocal()
	if offsetHours < MinTimeZoneOffset || offsetHours > MaxTimeZoneOffset {
		return nil, &RangeError{Field: "timeZoneOffset", Value: offsetHours, Min: MinTimeZoneOffset, Max: MaxTimeZoneOffset}
	}
	if timestamp < MinTimestamp || timestamp > MaxTimestamp {
		return nil, rangeErr64("timestamp", timestamp, MinTimestamp, MaxTimestamp)
	}

	return newDateTime(timestamp, offsetMillisOf(offsetHours)), nil
}

// Now constructs a DateTime for the current instant of the configured clock,
// which defaults to the system clock.
func Now(opts ...Option) (*DateTime, error) {
	o := buildOptions(opts)
	return FromTimestamp(o.clockOrDefault().Now().UnixMilli(), opts...)
}

func newDateTime(timestamp, offsetMillis int64) *DateTime {
	return &DateTime{
		timestamp:    timestamp,
		offsetMillis: offsetMillis,
		zoned:        locate.Zoned(locate.Split(timestamp), offsetMillis),
	}
}

func offsetMillisOf(hours float64) int64 {
	return int64(math.Round(hours * spec.HourMillis))
}

// Timestamp returns the authoritative UTC millisecond timestamp.
func (d *DateTime) Timestamp() int64 {
	return d.timestamp
}

// TimeZoneOffset returns the zone offset in real hours.
func (d *DateTime) TimeZoneOffset() float64 {
	return float64(d.offsetMillis) / spec.HourMillis
}

// Equal reports whether both values denote the same instant. Zone offsets
// are deliberately ignored: the same instant viewed from two zones is equal.
func (d *DateTime) Equal(other *DateTime) bool {
	return d.timestamp == other.timestamp
}

// Year returns the Gregorian calendar year.
func (d *DateTime) Year() int {
	return d.gregorianYear().Year
}

// LeapYear reports whether the Gregorian calendar year is a leap year.
func (d *DateTime) LeapYear() bool {
	return d.gregorianYear().Leap
}

// OrdinalDay returns the 1-based day of the Gregorian year, in [1,366].
func (d *DateTime) OrdinalDay() int {
	return d.gregorianDay().OrdinalDay
}

// Month returns the Gregorian month, 1 = January.
func (d *DateTime) Month() int {
	return d.gregorianDay().Month
}

// MonthDay returns the Gregorian day of the month, in [1,31].
func (d *DateTime) MonthDay() int {
	return d.gregorianDay().MonthDay
}

// ISOYear returns the ISO-8601 week-calendar year, which can differ from
// Year by one around January 1.
func (d *DateTime) ISOYear() int {
	return d.isoWeekYear().Year
}

// LongISOYear reports whether the ISO year has 53 weeks.
func (d *DateTime) LongISOYear() bool {
	return d.isoWeekYear().Long
}

// ISOWeek returns the ISO week of the year, in [1,53].
func (d *DateTime) ISOWeek() int {
	return d.isoWeekDay().Week
}

// WeekDay returns the ISO weekday, 1 = Monday through 7 = Sunday.
func (d *DateTime) WeekDay() int {
	return d.isoWeekDay().WeekDay
}

// Hour24 returns the hour of the day, in [0,23].
func (d *DateTime) Hour24() int {
	return d.timeOfDay().Hour24
}

// Hour12 returns the hour within the half-day, in [0,11].
func (d *DateTime) Hour12() int {
	return d.timeOfDay().Hour12
}

// Meridiem returns 0 before noon and 12 from noon on, so that
// Hour24 == Meridiem + Hour12.
func (d *DateTime) Meridiem() int {
	return d.timeOfDay().Meridiem
}

// Minute returns the minute of the hour, in [0,59].
func (d *DateTime) Minute() int {
	return d.timeOfDay().Minute
}

// Second returns the second of the minute, in [0,59].
func (d *DateTime) Second() int {
	return d.timeOfDay().Second
}

// Millisecond returns the millisecond of the second, in [0,999].
func (d *DateTime) Millisecond() int {
	return d.timeOfDay().Millisecond
}

// String renders the zoned fields numerically for debugging. The output is
// not a locale format and is not meant to be parsed back.
func (d *DateTime) String() string {
	sign := '+'
	off := d.offsetMillis
	if off < 0 {
		sign = '-'
		off = -off
	}

	return fmt.Sprintf("%d-%02d-%02d %02d:%02d:%02d:%03d GMT%c%02d%02d",
		d.Year(), d.Month(), d.MonthDay(),
		d.Hour24(), d.Minute(), d.Second(), d.Millisecond(),
		sign, off/spec.HourMillis, off%spec.HourMillis/spec.MinuteMillis)
}

// Descriptor accessors; each computes from the zoned timestamp on first use
// and publishes the result with a single atomic store. Losing a publication
// race costs one recomputation of an identical value.

func (d *DateTime) gregorianYear() *spec.GregorianYear {
	if v := d.gregYear.Load(); v != nil {
		return v
	}
	y := locate.YearFromTimestamp(d.zoned.Day)
	d.gregYear.Store(&y)
	return &y
}

func (d *DateTime) gregorianDay() *spec.GregorianDay {
	if v := d.gregDay.Load(); v != nil {
		return v
	}
	year := d.gregorianYear()
	day := locate.DayFromOffset(*year, d.zoned.Day-year.Start)
	d.gregDay.Store(&day)
	return &day
}

func (d *DateTime) isoWeekYear() *spec.ISOYear {
	if v := d.isoYear.Load(); v != nil {
		return v
	}
	y := locate.ISOYearFromTimestamp(d.zoned.Day)
	d.isoYear.Store(&y)
	return &y
}

func (d *DateTime) isoWeekDay() *spec.ISODay {
	if v := d.isoDay.Load(); v != nil {
		return v
	}
	year := d.isoWeekYear()
	day := locate.ISODayFromOffset(*year, d.zoned.Day-year.Start)
	d.isoDay.Store(&day)
	return &day
}

func (d *DateTime) timeOfDay() *spec.TimeOfDay {
	if v := d.clock.Load(); v != nil {
		return v
	}
	t := locate.TimeFromOffset(d.zoned.Time)
	d.clock.Store(&t)
	return &t
}
