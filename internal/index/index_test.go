package index

import (
	"testing"

	"github.com/born-ml/born/backend/cpu"
	"github.com/born-ml/born/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatUnravelRoundTrip(t *testing.T) {
	shape := tensor.Shape{2, 3, 4}
	for flat := 0; flat < shape.NumElements(); flat++ {
		coords, err := Unravel(shape, flat)
		require.NoError(t, err)
		back, err := Flat(shape, coords)
		require.NoError(t, err)
		assert.Equal(t, flat, back)
	}
}

func TestFlatBounds(t *testing.T) {
	shape := tensor.Shape{2, 3}

	_, err := Flat(shape, []int{1})
	assert.Error(t, err, "wrong arity")
	_, err = Flat(shape, []int{2, 0})
	assert.Error(t, err, "coordinate out of range")
	_, err = Flat(shape, []int{0, -1})
	assert.Error(t, err, "negative coordinate")

	_, err = Unravel(shape, 6)
	assert.Error(t, err, "flat offset out of range")
}

func TestAtAndSet(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	got, err := At(x, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, float32(6), got)

	require.NoError(t, Set(x, 9, []int{0, 1}))
	got, err = At(x, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, float32(9), got)

	_, err = At(x, []int{2, 0})
	assert.Error(t, err)
	assert.Error(t, Set(x, 0, []int{0, 3}))
}

func TestArgmaxArgmin(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float32{
		3, 1, 4,
		1, 5, -9,
	}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	maxCoords, err := Argmax(x)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, maxCoords)

	minCoords, err := Argmin(x)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, minCoords)
}

func TestArgmaxHigherRank(t *testing.T) {
	backend := cpu.New()
	data := make([]float32, 2*2*3)
	data[7] = 10 // coords (1, 0, 1) in a (2, 2, 3) tensor
	x, err := tensor.FromSlice(data, tensor.Shape{2, 2, 3}, backend)
	require.NoError(t, err)

	coords, err := Argmax(x)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, coords)
}
