package seq

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// hashKey renders an element for hashing: Stringer elements hash their
// String form, anything else its default format.
func hashKey[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

// Hash digests the full sequence into an xxhash sum: element order
// matters, and sequences that are Equal hash equally. This is a full
// traversal forcing every head; it does not terminate on infinite input.
func Hash[T any](s Seq[T]) (uint64, error) {
	d := xxhash.New()
	err := Each(s, func(v T) error {
		key := hashKey(v)
		// length prefix keeps ["ab","c"] distinct from ["a","bc"]
		_, _ = fmt.Fprintf(d, "%d:", len(key))
		_, _ = d.WriteString(key)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}
