// Copyright 2026 The Gradkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides element-wise helpers for perturbation-search loops:
// reference-relative clamping and the arctanh/tanh change of variables.
package ops

import (
	"github.com/born-ml/born/tensor"

	"github.com/robust-ml/gradkit/internal/ops"
)

// ClampRef clamps each element of x to within eps of the corresponding
// element of y.
func ClampRef[B tensor.Backend](x, y *tensor.Tensor[float32, B], eps float32) *tensor.Tensor[float32, B] {
	return ops.ClampRef(x, y, eps)
}

// Arctanh computes the inverse hyperbolic tangent element-wise, shrinking
// x by (1 - eps) first to keep the result finite at the boundary.
func Arctanh[B tensor.Backend](x *tensor.Tensor[float32, B], eps float32) *tensor.Tensor[float32, B] {
	return ops.Arctanh(x, eps)
}

// TanhRescale maps x through tanh and rescales the (-1, 1) range to
// (min, max).
func TanhRescale[B tensor.Backend](x *tensor.Tensor[float32, B], min, max float32) *tensor.Tensor[float32, B] {
	return ops.TanhRescale(x, min, max)
}
