package datetime_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/davejbax/go-datetime"
)

func TestFromTimestampBounds(t *testing.T) {
	t.Parallel()

	d, err := datetime.FromTimestamp(datetime.MaxTimestamp, datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)
	assert.Equal(t, int64(datetime.MaxTimestamp), d.Timestamp())
	assert.Equal(t, 275760, d.Year())

	_, err = datetime.FromTimestamp(datetime.MaxTimestamp+1, datetime.WithTimeZoneOffset(0))
	var rangeErr *datetime.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "timestamp", rangeErr.Field)

	d, err = datetime.FromTimestamp(datetime.MinTimestamp, datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)
	assert.Equal(t, -271821, d.Year())

	_, err = datetime.FromTimestamp(datetime.MinTimestamp-1, datetime.WithTimeZoneOffset(0))
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "timestamp", rangeErr.Field)
}

func TestFromTimestampFields(t *testing.T) {
	t.Parallel()

	// 2024-02-29T13:45:06.007Z, a Thursday in ISO week 9.
	d, err := datetime.FromTimestamp(1709214306007, datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)

	assert.Equal(t, 2024, d.Year())
	assert.True(t, d.LeapYear())
	assert.Equal(t, 2, d.Month())
	assert.Equal(t, 29, d.MonthDay())
	assert.Equal(t, 60, d.OrdinalDay())
	assert.Equal(t, 2024, d.ISOYear())
	assert.Equal(t, 9, d.ISOWeek())
	assert.Equal(t, 4, d.WeekDay())
	assert.Equal(t, 13, d.Hour24())
	assert.Equal(t, 1, d.Hour12())
	assert.Equal(t, 12, d.Meridiem())
	assert.Equal(t, 45, d.Minute())
	assert.Equal(t, 6, d.Second())
	assert.Equal(t, 7, d.Millisecond())
	assert.Equal(t, 0.0, d.TimeZoneOffset())
}

func TestZoneShiftsFields(t *testing.T) {
	t.Parallel()

	// 23:30Z on New Year's Eve is already next year one zone eastwards.
	d, err := datetime.FromParts(datetime.Parts{
		Year: datetime.Int(2023), Month: datetime.Int(12), MonthDay: datetime.Int(31),
		Hour24: datetime.Int(23), Minute: datetime.Int(30),
		TimeZoneOffset: datetime.Float(0),
	})
	require.NoError(t, err)

	shifted, err := d.SetTimeZoneOffset(5.5)
	require.NoError(t, err)

	assert.True(t, d.Equal(shifted), "the instant must not change")
	assert.Equal(t, d.Timestamp(), shifted.Timestamp())
	assert.Equal(t, 2024, shifted.Year())
	assert.Equal(t, 1, shifted.Month())
	assert.Equal(t, 1, shifted.MonthDay())
	assert.Equal(t, 5, shifted.Hour24())
	assert.Equal(t, 0, shifted.Minute())
	assert.Equal(t, 5.5, shifted.TimeZoneOffset())
}

func TestEqualIgnoresZoneAndCaches(t *testing.T) {
	t.Parallel()

	a, err := datetime.FromTimestamp(1686832496789, datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)
	b, err := datetime.FromTimestamp(1686832496789, datetime.WithTimeZoneOffset(-7))
	require.NoError(t, err)

	// Exercise some getters on one side only, so the memo caches differ.
	_ = a.ISOWeek()
	_ = a.Month()

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c, err := datetime.FromTimestamp(1686832496790, datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestNowUsesInjectedClock(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.UnixMilli(1686832496789))

	d, err := datetime.Now(datetime.WithClock(clock), datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)

	assert.Equal(t, int64(1686832496789), d.Timestamp())
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, 6, d.Month())
	assert.Equal(t, 15, d.MonthDay())
	assert.Equal(t, 24, d.ISOWeek())
}

func TestInvalidZoneOffset(t *testing.T) {
	t.Parallel()

	for _, offset := range []float64{-12.5, 14.25} {
		_, err := datetime.FromTimestamp(0, datetime.WithTimeZoneOffset(offset))
		var rangeErr *datetime.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "timeZoneOffset", rangeErr.Field)
		assert.Equal(t, offset, rangeErr.Value)
		assert.Equal(t, -12.0, rangeErr.Min)
		assert.Equal(t, 14.0, rangeErr.Max)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	d, err := datetime.FromTimestamp(1709214306007, datetime.WithTimeZoneOffset(5.5))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29 19:15:06:007 GMT+0530", d.String())

	d, err = datetime.FromTimestamp(1709214306007, datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29 13:45:06:007 GMT+0000", d.String())
}

// TestConcurrentGetters hammers a shared instance from many goroutines; the
// memo slots are published atomically, so every reader must observe fully
// consistent field values.
func TestConcurrentGetters(t *testing.T) {
	defer goleak.VerifyNone(t)

	d, err := datetime.FromTimestamp(1686832496789, datetime.WithTimeZoneOffset(0))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if d.Year() != 2023 || d.OrdinalDay() != 166 ||
					d.ISOYear() != 2023 || d.ISOWeek() != 24 || d.WeekDay() != 4 ||
					d.Hour24() != 12 || d.Millisecond() != 789 {
					t.Error("observed inconsistent field values")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestUnderspecified(t *testing.T) {
	t.Parallel()

	cases := []datetime.Parts{
		{},
		{Month: datetime.Int(3), MonthDay: datetime.Int(14)},
		{ISOWeek: datetime.Int(2), WeekDay: datetime.Int(3)},
		{Hour24: datetime.Int(12)},
	}

	for _, p := range cases {
		_, err := datetime.FromParts(p)
		assert.ErrorIs(t, err, datetime.ErrUnderspecified)
	}
}
