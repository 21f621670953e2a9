package locate

import (
	"github.com/davejbax/go-datetime/internal/spec"
)

// TimeFromOffset decomposes an intra-day offset into clock fields by
// successive quotient/remainder against the hour, minute and second lengths.
// The offset must lie in [0, DayMillis).
func TimeFromOffset(offset int64) spec.TimeOfDay {
	rest := offset

	hour24 := int(rest / spec.HourMillis)
	rest -= int64(hour24) * spec.HourMillis
	minute := int(rest / spec.MinuteMillis)
	rest -= int64(minute) * spec.MinuteMillis
	second := int(rest / spec.SecondMillis)
	rest -= int64(second) * spec.SecondMillis

	hour12, meridiem := hour24, 0
	if hour24 >= 12 {
		hour12, meridiem = hour24-12, 12
	}

	return spec.TimeOfDay{
		Hour24:      hour24,
		Hour12:      hour12,
		Meridiem:    meridiem,
		Minute:      minute,
		Second:      second,
		Millisecond: int(rest),
		Offset:      offset,
	}
}

// TimeFromParts composes clock fields into a time-of-day descriptor. All
// fields must already be within their declared ranges.
func TimeFromParts(hour24, minute, second, millisecond int) spec.TimeOfDay {
	offset := int64(hour24)*spec.HourMillis +
		int64(minute)*spec.MinuteMillis +
		int64(second)*spec.SecondMillis +
		int64(millisecond)

	hour12, meridiem := hour24, 0
	if hour24 >= 12 {
		hour12, meridiem = hour24-12, 12
	}

	return spec.TimeOfDay{
		Hour24:      hour24,
		Hour12:      hour12,
		Meridiem:    meridiem,
		Minute:      minute,
		Second:      second,
		Millisecond: millisecond,
		Offset:      offset,
	}
}
