package datetime

// Setters derive a new DateTime by feeding the changed field, together with
// the current values of the other fields of the same addressing scheme, back
// through FromParts or FromTimestamp. Nothing is patched in place, so every
// result is re-validated; an impossible combination (say, SetYear from
// February 29 into a non-leap year) fails the same way direct construction
// would.

func (d *DateTime) gregorianParts() Parts {
	return Parts{
		Year:           Int(d.Year()),
		Month:          Int(d.Month()),
		MonthDay:       Int(d.MonthDay()),
		Hour24:         Int(d.Hour24()),
		Minute:         Int(d.Minute()),
		Second:         Int(d.Second()),
		Millisecond:    Int(d.Millisecond()),
		TimeZoneOffset: Float(d.TimeZoneOffset()),
	}
}

func (d *DateTime) isoParts() Parts {
	return Parts{
		ISOYear:        Int(d.ISOYear()),
		ISOWeek:        Int(d.ISOWeek()),
		WeekDay:        Int(d.WeekDay()),
		Hour24:         Int(d.Hour24()),
		Minute:         Int(d.Minute()),
		Second:         Int(d.Second()),
		Millisecond:    Int(d.Millisecond()),
		TimeZoneOffset: Float(d.TimeZoneOffset()),
	}
}

// SetYear returns a copy with the Gregorian year replaced.
func (d *DateTime) SetYear(year int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Year = Int(year)
	return FromParts(p)
}

// SetOrdinalDay returns a copy with the day of year replaced.
func (d *DateTime) SetOrdinalDay(ordinalDay int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Month, p.MonthDay = nil, nil
	p.OrdinalDay = Int(ordinalDay)
	return FromParts(p)
}

// SetMonth returns a copy with the month replaced.
func (d *DateTime) SetMonth(month int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Month = Int(month)
	return FromParts(p)
}

// SetMonthDay returns a copy with the day of month replaced.
func (d *DateTime) SetMonthDay(monthDay int) (*DateTime, error) {
	p := d.gregorianParts()
	p.MonthDay = Int(monthDay)
	return FromParts(p)
}

// SetISOYear returns a copy with the ISO week-year replaced, keeping the
// current week and weekday.
func (d *DateTime) SetISOYear(isoYear int) (*DateTime, error) {
	p := d.isoParts()
	p.ISOYear = Int(isoYear)
	return FromParts(p)
}

// SetISOWeek returns a copy with the ISO week replaced.
func (d *DateTime) SetISOWeek(isoWeek int) (*DateTime, error) {
	p := d.isoParts()
	p.ISOWeek = Int(isoWeek)
	return FromParts(p)
}

// SetWeekDay returns a copy with the ISO weekday replaced.
func (d *DateTime) SetWeekDay(weekDay int) (*DateTime, error) {
	p := d.isoParts()
	p.WeekDay = Int(weekDay)
	return FromParts(p)
}

// SetHour24 returns a copy with the hour of day replaced.
func (d *DateTime) SetHour24(hour24 int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Hour24 = Int(hour24)
	return FromParts(p)
}

// SetHour12 returns a copy with the half-day hour replaced, keeping the
// current meridiem.
func (d *DateTime) SetHour12(hour12 int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Hour24 = nil
	p.Hour12 = Int(hour12)
	p.Meridiem = Int(d.Meridiem())
	return FromParts(p)
}

// SetMeridiem returns a copy with the meridiem replaced, keeping the current
// half-day hour.
func (d *DateTime) SetMeridiem(meridiem int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Hour24 = nil
	p.Hour12 = Int(d.Hour12())
	p.Meridiem = Int(meridiem)
	return FromParts(p)
}

// SetMinute returns a copy with the minute replaced.
func (d *DateTime) SetMinute(minute int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Minute = Int(minute)
	return FromParts(p)
}

// SetSecond returns a copy with the second replaced.
func (d *DateTime) SetSecond(second int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Second = Int(second)
	return FromParts(p)
}

// SetMillisecond returns a copy with the millisecond replaced.
func (d *DateTime) SetMillisecond(millisecond int) (*DateTime, error) {
	p := d.gregorianParts()
	p.Millisecond = Int(millisecond)
	return FromParts(p)
}

// SetTimestamp returns a copy at the given instant in the current zone.
func (d *DateTime) SetTimestamp(timestamp int64) (*DateTime, error) {
	return FromTimestamp(timestamp, WithTimeZoneOffset(d.TimeZoneOffset()))
}

// SetTimeZoneOffset returns a copy of the same instant viewed from another
// zone offset. The timestamp is unchanged; every zoned field may change.
func (d *DateTime) SetTimeZoneOffset(hours float64) (*DateTime, error) {
	return FromTimestamp(d.timestamp, WithTimeZoneOffset(hours))
}
