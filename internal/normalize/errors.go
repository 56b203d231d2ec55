package normalize

import (
	"fmt"
)

// ValidationError reports a batch whose channel count does not match the
// normalizer's statistics, or a batch that is not 4-dimensional.
//
// A failed validation never mutates the normalizer's stored mean/std.
type ValidationError struct {
	Field string // "mean", "std", or "batch"
	Want  int    // expected length (or rank, for "batch")
	Got   int    // actual length (or rank)
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "batch" {
		return fmt.Sprintf("normalize: batch must be %d-dimensional (N, C, H, W), got %d dimensions", e.Want, e.Got)
	}
	return fmt.Sprintf("normalize: channel count mismatch: batch has %d channels, %s has length %d", e.Want, e.Field, e.Got)
}
