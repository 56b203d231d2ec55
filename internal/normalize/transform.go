package normalize

import (
	"slices"

	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/tensor"
)

// Transform is the non-differentiable per-channel normalize routine.
//
// It is constructed once from a (mean, std) pair and the engine's inner
// backend, and applies (x - mean) / std per channel without recording
// anything on the gradient tape. ChannelNorm caches one and rebuilds it
// whenever its statistics change, but Transform is also usable on its own
// when a caller only ever needs forward evaluation.
type Transform[B tensor.Backend] struct {
	mean    []float32
	std     []float32
	backend B // untaped inner backend
}

// NewTransform creates a Transform from per-channel statistics and the
// inner (untaped) backend obtained from autodiff.Backend.Inner().
func NewTransform[B tensor.Backend](mean, std []float32, backend B) *Transform[B] {
	return &Transform[B]{
		mean:    slices.Clone(mean),
		std:     slices.Clone(std),
		backend: backend,
	}
}

// Call normalizes batch without gradient tracking.
//
// The batch stays typed on the taped backend so the result drops straight
// back into the caller's pipeline, but every arithmetic step runs on the
// inner backend and never reaches the tape.
func (tr *Transform[B]) Call(batch *tensor.Tensor[float32, *autodiff.Backend[B]]) (*tensor.Tensor[float32, *autodiff.Backend[B]], error) {
	c, err := channels(batch.Shape(), len(tr.mean), len(tr.std))
	if err != nil {
		return nil, err
	}

	meanT, err := tensor.FromSlice(tr.mean, tensor.Shape{1, c, 1, 1}, tr.backend)
	if err != nil {
		return nil, err
	}
	stdT, err := tensor.FromSlice(tr.std, tensor.Shape{1, c, 1, 1}, tr.backend)
	if err != nil {
		return nil, err
	}

	centered := tr.backend.Sub(batch.Raw(), meanT.Raw())
	scaled := tr.backend.Div(centered, stdT.Raw())
	return tensor.New[float32](scaled, batch.Backend()), nil
}

// channels validates a 4-D (N, C, H, W) shape against the statistics
// lengths and returns C.
func channels(shape tensor.Shape, meanLen, stdLen int) (int, error) {
	if len(shape) != 4 {
		return 0, &ValidationError{Field: "batch", Want: 4, Got: len(shape)}
	}
	c := shape[1]
	if meanLen != c {
		return 0, &ValidationError{Field: "mean", Want: c, Got: meanLen}
	}
	if stdLen != c {
		return 0, &ValidationError{Field: "std", Want: c, Got: stdLen}
	}
	return c, nil
}
