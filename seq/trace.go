package seq

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Traced wraps s so that its first resolution is reported through logger.
// Resolution is memoized, so exactly one event is logged per traced
// sequence regardless of how often it is deconstructed afterwards; wrap
// again to observe a later stage of a pipeline.
//
// Panics if logger or s is nil.
func Traced[T any](logger *zap.Logger, name string, s Seq[T]) Seq[T] {
	if logger == nil {
		panic("seq: nil logger")
	}
	if s == nil {
		panic("seq: nil sequence")
	}
	traceID := uuid.New().String()
	return Lazy(func() (Seq[T], error) {
		logger.Debug("resolving sequence",
			zap.String("sequence", name),
			zap.String("trace_id", traceID),
		)
		return s, nil
	})
}
