package datetime

import (
	"github.com/davejbax/go-datetime/internal/locate"
	"github.com/davejbax/go-datetime/internal/spec"
)

// Parts is the field set accepted by FromParts. Nil fields are absent; absent
// fields either default (see FromParts) or are simply not checked. Int and
// Float build the pointers inline.
type Parts struct {
	Year       *int
	OrdinalDay *int
	Month      *int
	MonthDay   *int

	ISOYear *int
	ISOWeek *int
	WeekDay *int

	Hour24      *int
	Hour12      *int
	Meridiem    *int
	Minute      *int
	Second      *int
	Millisecond *int

	// TimeZoneOffset is in real hours; it defaults to the host's offset.
	TimeZoneOffset *float64
}

// Int returns a pointer to v, for populating Parts literals.
func Int(v int) *int {
	return &v
}

// Float returns a pointer to v, for populating Parts literals.
func Float(v float64) *float64 {
	return &v
}

// addressing is the day-addressing scheme resolved from which fields a Parts
// carries. It is computed once and then dispatched on; the redundant fields
// of the losing scheme are validated against the result afterwards.
type addressing int

const (
	addrUnderspecified addressing = iota
	addrGregorianMonthDay
	addrGregorianOrdinal
	addrISOWeekDay
)

func (p *Parts) addressing() addressing {
	switch {
	case p.Year != nil && p.Month != nil && p.MonthDay != nil:
		return addrGregorianMonthDay
	case p.Year != nil && p.OrdinalDay != nil:
		return addrGregorianOrdinal
	case p.Year != nil:
		// Month and monthDay default to 1.
		return addrGregorianMonthDay
	case p.ISOYear != nil:
		// ISOWeek and weekDay default to 1.
		return addrISOWeekDay
	default:
		return addrUnderspecified
	}
}

// FromParts constructs a DateTime from calendar fields.
//
// The day is addressed by whichever scheme has enough fields, preferring a
// fully specified Gregorian year+month+monthDay set, then year+ordinalDay,
// then year alone (month and monthDay defaulting to 1), then isoYear (isoWeek
// and weekDay defaulting to 1). With neither a year nor an isoYear,
// ErrUnderspecified is returned.
//
// The time of day comes from hour24 when present, otherwise from hour12 and
// meridiem, each defaulting to 0 independently; minute, second and
// millisecond default to 0.
//
// Checks run in a fixed order and stop at the first failure: the fields the
// chosen scheme consumes are range-checked in declaration order, then every
// supplied redundant field (the other scheme's day coordinates, and hour12
// or meridiem alongside hour24) is compared against the value derived from
// the authoritative ones, yielding a CoherenceError on disagreement.
func FromParts(p Parts) (*DateTime, error) {
	scheme := p.addressing()
	if scheme == addrUnderspecified {
		return nil, ErrUnderspecified
	}

	var (
		dayStart int64
		gregYear spec.GregorianYear
		gregDay  spec.GregorianDay
		isoYear  spec.ISOYear
		isoDay   spec.ISODay
	)

	switch scheme {
	case addrGregorianMonthDay:
		if *p.Year < MinFullYear || *p.Year > MaxFullYear {
			return nil, rangeErr("year", *p.Year, MinFullYear, MaxFullYear)
		}
		gregYear = locate.YearFromNumber(*p.Year)

		month := valueOr(p.Month, 1)
		if month < 1 || month > 12 {
			return nil, rangeErr("month", month, 1, 12)
		}
		monthDay := valueOr(p.MonthDay, 1)
		if max := locate.DaysInMonth(month, gregYear.Leap); monthDay < 1 || monthDay > max {
			return nil, rangeErr("monthDay", monthDay, 1, max)
		}

		gregDay = locate.DayFromMonthDay(gregYear, month, monthDay)
		dayStart = gregDay.Start

	case addrGregorianOrdinal:
		if *p.Year < MinFullYear || *p.Year > MaxFullYear {
			return nil, rangeErr("year", *p.Year, MinFullYear, MaxFullYear)
		}
		gregYear = locate.YearFromNumber(*p.Year)

		if max := gregYear.Days(); *p.OrdinalDay < 1 || *p.OrdinalDay > max {
			return nil, rangeErr("ordinalDay", *p.OrdinalDay, 1, max)
		}

		gregDay = locate.DayFromOrdinal(gregYear, *p.OrdinalDay)
		dayStart = gregDay.Start

	case addrISOWeekDay:
		if *p.ISOYear < MinFullYear || *p.ISOYear > MaxFullYear {
			return nil, rangeErr("isoYear", *p.ISOYear, MinFullYear, MaxFullYear)
		}
		isoYear = locate.ISOYearFromNumber(*p.ISOYear)

		week := valueOr(p.ISOWeek, 1)
		if max := isoYear.Weeks(); week < 1 || week > max {
			return nil, rangeErr("isoWeek", week, 1, max)
		}
		weekDay := valueOr(p.WeekDay, 1)
		if weekDay < 1 || weekDay > 7 {
			return nil, rangeErr("weekDay", weekDay, 1, 7)
		}

		isoDay = locate.DayFromWeek(isoYear, week, weekDay)
		dayStart = isoDay.Start
	}

	hour24 := 0
	hour24Given := p.Hour24 != nil
	if hour24Given {
		hour24 = *p.Hour24
		if hour24 < 0 || hour24 > 23 {
			return nil, rangeErr("hour24", hour24, 0, 23)
		}
	} else {
		hour12 := valueOr(p.Hour12, 0)
		if hour12 < 0 || hour12 > 11 {
			return nil, rangeErr("hour12", hour12, 0, 11)
		}
		meridiem := valueOr(p.Meridiem, 0)
		if meridiem != 0 && meridiem != 12 {
			return nil, rangeErr("meridiem", meridiem, 0, 12)
		}
		hour24 = hour12 + meridiem
	}

	minute := valueOr(p.Minute, 0)
	if minute < 0 || minute > 59 {
		return nil, rangeErr("minute", minute, 0, 59)
	}
	second := valueOr(p.Second, 0)
	if second < 0 || second > 59 {
		return nil, rangeErr("second", second, 0, 59)
	}
	millisecond := valueOr(p.Millisecond, 0)
	if millisecond < 0 || millisecond > 999 {
		return nil, rangeErr("millisecond", millisecond, 0, 999)
	}

	timeOfDay := locate.TimeFromParts(hour24, minute, second, millisecond)

	offsetHours := localHours()
	if p.TimeZoneOffset != nil {
		offsetHours = *p.TimeZoneOffset
	}
	if offsetHours < MinTimeZoneOffset || offsetHours > MaxTimeZoneOffset {
		return nil, &RangeError{Field: "timeZoneOffset", Value: offsetHours, Min: MinTimeZoneOffset, Max: MaxTimeZoneOffset}
	}
	offsetMillis := offsetMillisOf(offsetHours)

	timestamp := dayStart + timeOfDay.Offset - offsetMillis
	if timestamp < MinTimestamp || timestamp > MaxTimestamp {
		return nil, rangeErr64("timestamp", timestamp, MinTimestamp, MaxTimestamp)
	}

	d := newDateTime(timestamp, offsetMillis)

	// Seed the memo slots with the descriptors resolution already produced.
	switch scheme {
	case addrGregorianMonthDay, addrGregorianOrdinal:
		d.gregYear.Store(&gregYear)
		d.gregDay.Store(&gregDay)
	case addrISOWeekDay:
		d.isoYear.Store(&isoYear)
		d.isoDay.Store(&isoDay)
	}
	d.clock.Store(&timeOfDay)

	if err := p.checkCoherence(d, scheme, hour24Given); err != nil {
		return nil, err
	}
	return d, nil
}

// checkCoherence compares, in field-declaration order, every supplied field
// that the chosen scheme did not consume against the value the constructed
// DateTime derives for it.
func (p *Parts) checkCoherence(d *DateTime, scheme addressing, hour24Given bool) error {
	if scheme == addrISOWeekDay {
		if p.OrdinalDay != nil && *p.OrdinalDay != d.OrdinalDay() {
			return coherenceErr("ordinalDay", *p.OrdinalDay, d.OrdinalDay())
		}
		if p.Month != nil && *p.Month != d.Month() {
			return coherenceErr("month", *p.Month, d.Month())
		}
		if p.MonthDay != nil && *p.MonthDay != d.MonthDay() {
			return coherenceErr("monthDay", *p.MonthDay, d.MonthDay())
		}
	} else {
		if scheme == addrGregorianMonthDay && p.OrdinalDay != nil && *p.OrdinalDay != d.OrdinalDay() {
			return coherenceErr("ordinalDay", *p.OrdinalDay, d.OrdinalDay())
		}
		if scheme == addrGregorianOrdinal {
			if p.Month != nil && *p.Month != d.Month() {
				return coherenceErr("month", *p.Month, d.Month())
			}
			if p.MonthDay != nil && *p.MonthDay != d.MonthDay() {
				return coherenceErr("monthDay", *p.MonthDay, d.MonthDay())
			}
		}
		if p.ISOYear != nil && *p.ISOYear != d.ISOYear() {
			return coherenceErr("isoYear", *p.ISOYear, d.ISOYear())
		}
		if p.ISOWeek != nil && *p.ISOWeek != d.ISOWeek() {
			return coherenceErr("isoWeek", *p.ISOWeek, d.ISOWeek())
		}
		if p.WeekDay != nil && *p.WeekDay != d.WeekDay() {
			return coherenceErr("weekDay", *p.WeekDay, d.WeekDay())
		}
	}

	if hour24Given {
		if p.Hour12 != nil && *p.Hour12 != d.Hour12() {
			return coherenceErr("hour12", *p.Hour12, d.Hour12())
		}
		if p.Meridiem != nil && *p.Meridiem != d.Meridiem() {
			return coherenceErr("meridiem", *p.Meridiem, d.Meridiem())
		}
	}
	return nil
}

func valueOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
