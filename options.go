package datetime

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

// Option adjusts construction-time defaults of a factory call.
type Option func(*options)

type options struct {
	clock       clockwork.Clock
	offsetHours *float64
}

// WithTimeZoneOffset fixes the zone offset of the constructed value to the
// given number of real hours instead of the host's local offset.
func WithTimeZoneOffset(hours float64) Option {
	return func(o *options) {
		o.offsetHours = &hours
	}
}

// WithClock substitutes the clock consulted by Now and by the local-offset
// probe. Intended for tests, with a clockwork fake clock.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) clockOrDefault() clockwork.Clock {
	if o.clock != nil {
		return o.clock
	}
	return clockwork.NewRealClock()
}

func (o options) offsetHoursOrLocal() float64 {
	if o.offsetHours != nil {
		return *o.offsetHours
	}
	return localOffsetHours(o.clockOrDefault())
}

// The host zone offset is probed once per process and treated as immutable
// thereafter; values that should follow a different zone pass an explicit
// offset instead.
var (
	localOffsetOnce sync.Once
	localOffset     float64
)

func localHours() float64 {
	return localOffsetHours(clockwork.NewRealClock())
}

func localOffsetHours(clock clockwork.Clock) float64 {
	localOffsetOnce.Do(func() {
		_, seconds := clock.Now().Zone()
		localOffset = float64(seconds) / 3600
	})
	return localOffset
}
