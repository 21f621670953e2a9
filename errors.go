package datetime

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnderspecified is returned by FromParts when neither the Gregorian
// (year plus day locator) nor the ISO (isoYear plus week locator) addressing
// scheme has enough fields to resolve a day.
var ErrUnderspecified = errors.New("supplied fields do not determine a day: need at least year or isoYear")

// A RangeError reports a supplied field lying outside its valid domain for
// the given context. Bounds are carried as float64 so that the fractional
// timeZoneOffset field shares the type; every other field is integral.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s is %s, outside the valid range [%s, %s]",
		e.Field, formatNum(e.Value), formatNum(e.Min), formatNum(e.Max))
}

// A CoherenceError reports a supplied field that redundantly addresses the
// same day or time as the authoritative fields but disagrees with the value
// derived from them.
type CoherenceError struct {
	Field    string
	Value    int
	Expected int
}

func (e *CoherenceError) Error() string {
	return fmt.Sprintf("%s is %d, which does not match the derived value %d",
		e.Field, e.Value, e.Expected)
}

func rangeErr(field string, value, min, max int) error {
	return &RangeError{Field: field, Value: float64(value), Min: float64(min), Max: float64(max)}
}

func rangeErr64(field string, value, min, max int64) error {
	return &RangeError{Field: field, Value: float64(value), Min: float64(min), Max: float64(max)}
}

func coherenceErr(field string, value, expected int) error {
	return &CoherenceError{Field: field, Value: value, Expected: expected}
}

// formatNum renders without an exponent; the timestamp bounds are within the
// float64-exact integer range, so this stays lossless.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
