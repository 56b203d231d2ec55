// Package index addresses tensor elements by coordinate tuples and locates
// extrema as coordinates rather than flat offsets.
//
// Flat/Unravel convert between row-major offsets and coordinate tuples.
// Argmax and Argmin assume the tensor's data is laid out contiguously in
// row-major order, as tensors produced by the engine's creation functions
// are.
package index

import (
	"fmt"

	"github.com/born-ml/born/tensor"
	"gonum.org/v1/gonum/floats"
)

// Flat converts a coordinate tuple to a row-major flat offset, validating
// bounds against shape.
func Flat(shape tensor.Shape, coords []int) (int, error) {
	if len(coords) != len(shape) {
		return 0, fmt.Errorf("index: got %d coordinates for a %d-dimensional shape %v", len(coords), len(shape), shape)
	}
	flat := 0
	for i, c := range coords {
		if c < 0 || c >= shape[i] {
			return 0, fmt.Errorf("index: coordinate %d out of bounds for dimension %d (size %d)", c, i, shape[i])
		}
		flat = flat*shape[i] + c
	}
	return flat, nil
}

// Unravel converts a row-major flat offset to a coordinate tuple.
func Unravel(shape tensor.Shape, flat int) ([]int, error) {
	n := shape.NumElements()
	if flat < 0 || flat >= n {
		return nil, fmt.Errorf("index: flat offset %d out of bounds for shape %v (%d elements)", flat, shape, n)
	}
	coords := make([]int, len(shape))
	for i := len(shape) - 1; i >= 0; i-- {
		coords[i] = flat % shape[i]
		flat /= shape[i]
	}
	return coords, nil
}

// At returns the element at a coordinate tuple, with bounds checking.
func At[B tensor.Backend](t *tensor.Tensor[float32, B], coords []int) (float32, error) {
	if _, err := Flat(t.Shape(), coords); err != nil {
		return 0, err
	}
	return t.At(coords...), nil
}

// Set writes the element at a coordinate tuple, with bounds checking.
func Set[B tensor.Backend](t *tensor.Tensor[float32, B], v float32, coords []int) error {
	if _, err := Flat(t.Shape(), coords); err != nil {
		return err
	}
	t.Set(v, coords...)
	return nil
}

// Argmax returns the coordinates of the maximum element.
func Argmax[B tensor.Backend](t *tensor.Tensor[float32, B]) ([]int, error) {
	return argext(t, floats.MaxIdx)
}

// Argmin returns the coordinates of the minimum element.
func Argmin[B tensor.Backend](t *tensor.Tensor[float32, B]) ([]int, error) {
	return argext(t, floats.MinIdx)
}

func argext[B tensor.Backend](t *tensor.Tensor[float32, B], idx func([]float64) int) ([]int, error) {
	data := t.Data()
	if len(data) == 0 {
		return nil, fmt.Errorf("index: empty tensor has no extremum")
	}
	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}
	return Unravel(t.Shape(), idx(buf))
}
