// Package meter tracks running averages of scalar series, such as per-batch
// loss or accuracy during a training loop.
package meter

import "strconv"

// Average accumulates a weighted running average. The zero value is ready
// to use.
type Average struct {
	Val   float64 // most recent observation
	Sum   float64 // weighted sum of all observations
	Count int     // total weight observed
	Avg   float64 // Sum / Count
}

// Reset discards all observations.
func (a *Average) Reset() {
	*a = Average{}
}

// Update records an observation of val with weight n (n is typically the
// batch size the value was averaged over). Observations with weight < 1
// are ignored.
func (a *Average) Update(val float64, n int) {
	if n < 1 {
		return
	}
	a.Val = val
	a.Sum += val * float64(n)
	a.Count += n
	a.Avg = a.Sum / float64(a.Count)
}

// Add records a single observation, Update with weight 1.
func (a *Average) Add(val float64) {
	a.Update(val, 1)
}

// String returns the running average.
func (a *Average) String() string {
	return strconv.FormatFloat(a.Avg, 'g', -1, 64)
}
