// Package safe provides numeric conversions with range validation.
package safe

import (
	"fmt"
	"math"
)

// Uint64FromFloat converts a float64 to uint64, rejecting NaN, negative
// values, and values beyond the uint64 range.
func Uint64FromFloat(v float64) (uint64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("value is NaN")
	}
	if v < 0 {
		return 0, fmt.Errorf("value %f out of uint64 range", v)
	}
	// math.MaxUint64 is not exactly representable as a float64; the
	// nearest representable bound is 2^64.
	if v >= math.Pow(2, 64) {
		return 0, fmt.Errorf("value %f out of uint64 range", v)
	}
	return uint64(v), nil
}
