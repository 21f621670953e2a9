package locate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davejbax/go-datetime/internal/locate"
	"github.com/davejbax/go-datetime/internal/spec"
)

func TestTimeFromOffset(t *testing.T) {
	cases := []struct {
		offset int64
		want   spec.TimeOfDay
	}{
		{
			offset: 0,
			want:   spec.TimeOfDay{},
		},
		{
			offset: 12 * spec.HourMillis,
			want:   spec.TimeOfDay{Hour24: 12, Hour12: 0, Meridiem: 12},
		},
		{
			offset: 11*spec.HourMillis + 59*spec.MinuteMillis + 59*spec.SecondMillis + 999,
			want:   spec.TimeOfDay{Hour24: 11, Hour12: 11, Minute: 59, Second: 59, Millisecond: 999},
		},
		{
			offset: spec.DayMillis - 1,
			want:   spec.TimeOfDay{Hour24: 23, Hour12: 11, Meridiem: 12, Minute: 59, Second: 59, Millisecond: 999},
		},
		{
			offset: 13*spec.HourMillis + 45*spec.MinuteMillis + 6*spec.SecondMillis + 7,
			want:   spec.TimeOfDay{Hour24: 13, Hour12: 1, Meridiem: 12, Minute: 45, Second: 6, Millisecond: 7},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d", c.offset), func(t *testing.T) {
			t.Parallel()

			c.want.Offset = c.offset
			got := locate.TimeFromOffset(c.offset)
			assert.Equal(t, c.want, got)

			// The decomposition must invert exactly.
			composed := locate.TimeFromParts(got.Hour24, got.Minute, got.Second, got.Millisecond)
			assert.Equal(t, got, composed)

			assert.Equal(t, got.Hour24, got.Meridiem+got.Hour12, "hour24 must be meridiem plus hour12")
		})
	}
}
