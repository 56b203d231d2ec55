// Package ops provides element-wise helpers composed from engine
// primitives, used by perturbation-search loops: reference-relative
// clamping and the arctanh/tanh change of variables.
//
// Everything here is built from ordinary tensor arithmetic, so on a taped
// backend the arithmetic steps participate in differentiation the same way
// the caller's own expressions do.
package ops

import (
	"github.com/born-ml/born/tensor"
)

// ClampRef clamps each element of x to within eps of the corresponding
// element of y: clamp(x - y, -eps, +eps) + y. The projection step of an
// L-infinity-bounded search around a reference input.
func ClampRef[B tensor.Backend](x, y *tensor.Tensor[float32, B], eps float32) *tensor.Tensor[float32, B] {
	diff := x.Sub(y)
	hi := tensor.Full[float32](diff.Shape(), eps, x.Backend())
	lo := tensor.Full[float32](diff.Shape(), -eps, x.Backend())
	clamped := tensor.Where(diff.Gt(hi), hi, diff)
	clamped = tensor.Where(clamped.Lt(lo), lo, clamped)
	return clamped.Add(y)
}

// Arctanh computes the inverse hyperbolic tangent element-wise,
// 0.5 * log((1 + x) / (1 - x)), after shrinking x by (1 - eps) to keep the
// ratio finite at the boundary. x is expected in (-1, 1).
func Arctanh[B tensor.Backend](x *tensor.Tensor[float32, B], eps float32) *tensor.Tensor[float32, B] {
	scaled := x.MulScalar(1 - eps)
	one := tensor.Ones[float32](x.Shape(), x.Backend())
	ratio := one.Add(scaled).Div(one.Sub(scaled))
	return ratio.Log().MulScalar(0.5)
}

// TanhRescale maps x through tanh and rescales the (-1, 1) range to
// (min, max): (tanh(x) + 1) * 0.5 * (max - min) + min. The inverse-style
// companion of Arctanh for box-constrained searches.
func TanhRescale[B tensor.Backend](x *tensor.Tensor[float32, B], min, max float32) *tensor.Tensor[float32, B] {
	return tanh(x).AddScalar(1).MulScalar(0.5 * (max - min)).AddScalar(min)
}

// tanh composed from Exp so it stays expressible in engine primitives:
// (e^2x - 1) / (e^2x + 1).
func tanh[B tensor.Backend](x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	e := x.MulScalar(2).Exp()
	one := tensor.Ones[float32](x.Shape(), x.Backend())
	return e.Sub(one).Div(e.Add(one))
}
