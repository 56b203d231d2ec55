// Copyright 2026 The Gradkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package coerce converts safely between taped tensors, untaped tensors,
// and plain float32 slices through a tagged union with typed constructors.
//
// Example:
//
//	v := coerce.FromSlice[*cpu.Backend](data, tensor.Shape{2, 3})
//	x, err := v.Variable(backend) // materialize on the taped backend
package coerce

import (
	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/tensor"

	"github.com/robust-ml/gradkit/internal/coerce"
)

// Kind discriminates the representations a Value can hold.
type Kind = coerce.Kind

// Kind constants.
const (
	KindInvalid  Kind = coerce.KindInvalid
	KindVariable Kind = coerce.KindVariable
	KindTensor   Kind = coerce.KindTensor
	KindSlice    Kind = coerce.KindSlice
)

// Value is a tagged union over the three representations.
type Value[B tensor.Backend] = coerce.Value[B]

// UnsupportedTypeError reports a dynamic value that no Value
// representation can hold.
type UnsupportedTypeError = coerce.UnsupportedTypeError

// DeviceError reports a backend whose device does not match the required one.
type DeviceError = coerce.DeviceError

// ErrInvalid reports coercion of a zero (invalid) Value.
var ErrInvalid = coerce.ErrInvalid

// FromVariable wraps a tensor already on the taped backend.
func FromVariable[B tensor.Backend](t *tensor.Tensor[float32, *autodiff.Backend[B]]) Value[B] {
	return coerce.FromVariable(t)
}

// FromTensor wraps a tensor on the inner (untaped) backend.
func FromTensor[B tensor.Backend](t *tensor.Tensor[float32, B]) Value[B] {
	return coerce.FromTensor(t)
}

// FromSlice wraps raw float32 data with its shape.
func FromSlice[B tensor.Backend](data []float32, shape tensor.Shape) Value[B] {
	return coerce.FromSlice[B](data, shape)
}

// From folds an untyped value into the union, rejecting foreign types with
// an UnsupportedTypeError.
func From[B tensor.Backend](v any) (Value[B], error) {
	return coerce.From[B](v)
}

// AssertDevice verifies the backend computes on the required device.
func AssertDevice(b tensor.Backend, want tensor.Device) error {
	return coerce.AssertDevice(b, want)
}
