// Package coerce converts between the three value representations that show
// up at the boundary of a tensor pipeline: taped (differentiable) tensors,
// untaped tensors, and plain float32 slices.
//
// The representations are carried in a tagged union, Value, with typed
// constructors, so downstream code never has to guess what it was handed.
// The only dynamic entry point is From, which folds an untyped value into
// the union in exactly one place and rejects everything else with an
// UnsupportedTypeError naming the offending type.
package coerce

import (
	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/tensor"
)

// Kind discriminates the representations a Value can hold.
type Kind uint8

const (
	KindInvalid  Kind = iota // zero Value, holds nothing
	KindVariable             // tensor on the taped (autodiff) backend
	KindTensor               // tensor on the inner (untaped) backend
	KindSlice                // raw float32 data plus shape
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindTensor:
		return "tensor"
	case KindSlice:
		return "slice"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the three representations. The zero Value is
// invalid; coercing it fails with ErrInvalid.
type Value[B tensor.Backend] struct {
	kind     Kind
	variable *tensor.Tensor[float32, *autodiff.Backend[B]]
	plain    *tensor.Tensor[float32, B]
	data     []float32
	shape    tensor.Shape
}

// FromVariable wraps a tensor already on the taped backend.
func FromVariable[B tensor.Backend](t *tensor.Tensor[float32, *autodiff.Backend[B]]) Value[B] {
	return Value[B]{kind: KindVariable, variable: t}
}

// FromTensor wraps a tensor on the inner (untaped) backend.
func FromTensor[B tensor.Backend](t *tensor.Tensor[float32, B]) Value[B] {
	return Value[B]{kind: KindTensor, plain: t}
}

// FromSlice wraps raw float32 data with its shape. The data is not copied
// until the value is materialized on a backend.
func FromSlice[B tensor.Backend](data []float32, shape tensor.Shape) Value[B] {
	return Value[B]{kind: KindSlice, data: data, shape: shape}
}

// From folds an untyped value into the union. Accepted dynamic types:
// Value[B] itself, taped and untaped float32 tensors, and []float32
// (treated as 1-D). Anything else fails with an UnsupportedTypeError
// naming the dynamic type.
func From[B tensor.Backend](v any) (Value[B], error) {
	switch x := v.(type) {
	case Value[B]:
		return x, nil
	case *tensor.Tensor[float32, *autodiff.Backend[B]]:
		return FromVariable(x), nil
	case *tensor.Tensor[float32, B]:
		return FromTensor(x), nil
	case []float32:
		return FromSlice[B](x, tensor.Shape{len(x)}), nil
	default:
		return Value[B]{}, &UnsupportedTypeError{Value: v}
	}
}

// Kind returns the discriminator.
func (v Value[B]) Kind() Kind { return v.kind }

// Variable materializes the value as a tensor on the taped backend, so
// subsequent operations on it are recorded for differentiation.
//
// A variable passes through untouched. An untaped tensor is re-wrapped
// around the same storage (zero-copy). A slice is allocated on the taped
// backend.
func (v Value[B]) Variable(backend *autodiff.Backend[B]) (*tensor.Tensor[float32, *autodiff.Backend[B]], error) {
	switch v.kind {
	case KindVariable:
		return v.variable, nil
	case KindTensor:
		return tensor.New[float32](v.plain.Raw(), backend), nil
	case KindSlice:
		return tensor.FromSlice(v.data, v.shape, backend)
	default:
		return nil, ErrInvalid
	}
}

// Tensor materializes the value as a tensor on the inner (untaped)
// backend.
//
// A variable is detached onto the inner backend around the same storage
// (zero-copy, no gradient tracking). An untaped tensor passes through. A
// slice is allocated on the inner backend.
func (v Value[B]) Tensor(backend B) (*tensor.Tensor[float32, B], error) {
	switch v.kind {
	case KindVariable:
		return tensor.New[float32](v.variable.Raw(), backend), nil
	case KindTensor:
		return v.plain, nil
	case KindSlice:
		return tensor.FromSlice(v.data, v.shape, backend)
	default:
		return nil, ErrInvalid
	}
}

// AssertDevice verifies the backend computes on the required device.
// The analogue of asserting CUDA availability before moving work to it.
func AssertDevice(b tensor.Backend, want tensor.Device) error {
	if got := b.Device(); got != want {
		return &DeviceError{Want: want, Got: got}
	}
	return nil
}
