package seq

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Instants returns the lazy sequence of instants covering span at the
// given step: span.Start(), span.Start()+step, and so on, up to but not
// including span.End(). The instants are produced one cell at a time as
// the sequence is deconstructed. Panics if step is not positive.
func Instants(span timespan.TimeSpan, step time.Duration) Seq[time.Time] {
	if step <= 0 {
		panic("seq: step must be positive")
	}
	var gen func(t time.Time) (Seq[time.Time], error)
	gen = func(t time.Time) (Seq[time.Time], error) {
		if !t.Before(span.End()) {
			return Empty[time.Time](), nil
		}
		return ConsTail(t, func() (Seq[time.Time], error) {
			return gen(t.Add(step))
		}), nil
	}
	return Lazy(func() (Seq[time.Time], error) {
		return gen(span.Start())
	})
}

// Ticks returns the unbounded lazy sequence start, start+step,
// start+2*step, ... Panics if step, which may be negative, is zero.
func Ticks(start time.Time, step time.Duration) Seq[time.Time] {
	if step == 0 {
		panic("seq: zero step")
	}
	return Iterate(start, func(t time.Time) time.Time {
		return t.Add(step)
	})
}
