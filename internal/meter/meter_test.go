package meter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageWeightedUpdates(t *testing.T) {
	var a Average

	a.Update(2.0, 3) // sum 6, count 3
	assert.Equal(t, 2.0, a.Val)
	assert.InDelta(t, 2.0, a.Avg, 1e-12)

	a.Update(5.0, 1) // sum 11, count 4
	assert.Equal(t, 5.0, a.Val)
	assert.InDelta(t, 2.75, a.Avg, 1e-12)
	assert.Equal(t, 4, a.Count)
}

func TestAverageAdd(t *testing.T) {
	var a Average
	for _, v := range []float64{1, 2, 3, 4} {
		a.Add(v)
	}
	assert.Equal(t, 4, a.Count)
	assert.InDelta(t, 2.5, a.Avg, 1e-12)
}

func TestAverageIgnoresNonPositiveWeight(t *testing.T) {
	var a Average

	a.Update(7.0, 0)
	assert.Equal(t, Average{}, a, "weight 0 must not be recorded")
	assert.False(t, math.IsNaN(a.Avg))

	a.Update(2.0, 2)
	a.Update(9.0, -3)
	assert.Equal(t, 2, a.Count)
	assert.InDelta(t, 2.0, a.Avg, 1e-12)
}

func TestAverageReset(t *testing.T) {
	var a Average
	a.Update(10, 5)
	a.Reset()
	assert.Equal(t, Average{}, a)
}

func TestAverageString(t *testing.T) {
	var a Average
	a.Update(1.5, 2)
	assert.Equal(t, "1.5", a.String())
}
