// Copyright 2026 The Gradkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package index addresses tensor elements by coordinate tuples and locates
// extrema as coordinates rather than flat offsets.
package index

import (
	"github.com/born-ml/born/tensor"

	"github.com/robust-ml/gradkit/internal/index"
)

// Flat converts a coordinate tuple to a row-major flat offset.
func Flat(shape tensor.Shape, coords []int) (int, error) {
	return index.Flat(shape, coords)
}

// Unravel converts a row-major flat offset to a coordinate tuple.
func Unravel(shape tensor.Shape, flat int) ([]int, error) {
	return index.Unravel(shape, flat)
}

// At returns the element at a coordinate tuple, with bounds checking.
func At[B tensor.Backend](t *tensor.Tensor[float32, B], coords []int) (float32, error) {
	return index.At(t, coords)
}

// Set writes the element at a coordinate tuple, with bounds checking.
func Set[B tensor.Backend](t *tensor.Tensor[float32, B], v float32, coords []int) error {
	return index.Set(t, v, coords)
}

// Argmax returns the coordinates of the maximum element.
func Argmax[B tensor.Backend](t *tensor.Tensor[float32, B]) ([]int, error) {
	return index.Argmax(t)
}

// Argmin returns the coordinates of the minimum element.
func Argmin[B tensor.Backend](t *tensor.Tensor[float32, B]) ([]int, error) {
	return index.Argmin(t)
}
