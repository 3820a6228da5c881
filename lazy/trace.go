package lazy

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Traced wraps p so that every force is reported through logger.
//
// Forcing logs at debug level before and after the computation; failures
// log at error level and still propagate unmodified. Tracing sits outside
// memoization on purpose: Traced(Memoize(p)) logs every call including
// cache hits, Memoize(Traced(p)) logs only the single real execution.
//
// Each wrapper carries a unique trace id so that forces of the same
// producer can be correlated across interleaved log output.
//
// Panics if logger or p is nil.
func Traced[T any](logger *zap.Logger, name string, p Producer[T]) Producer[T] {
	if logger == nil {
		panic("lazy: nil logger")
	}
	if p == nil {
		panic("lazy: nil producer")
	}
	logger = logger.With(zap.String("trace_id", uuid.New().String()))
	return Func[T](func() (T, error) {
		logger.Debug("forcing producer", zap.String("producer", name))
		v, err := p.Force()
		if err != nil {
			logger.Error("producer failed",
				zap.String("producer", name),
				zap.Error(err),
			)
			return v, err
		}
		logger.Debug("producer forced", zap.String("producer", name))
		return v, nil
	})
}
