package normalize

import (
	"slices"

	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/tensor"
)

// Batch is a float32 (N, C, H, W) tensor on the taped backend.
type Batch[B tensor.Backend] = *tensor.Tensor[float32, *autodiff.Backend[B]]

// Normalizer maps a batch to a normalized batch of the same shape using the
// normalizer's stored statistics. Identity and ChannelNorm both satisfy it,
// so callers treat "no normalization" and "normalize" uniformly.
type Normalizer[B tensor.Backend] interface {
	Apply(batch Batch[B]) (Batch[B], error)
}

// Identity is the null-object Normalizer: Apply returns its argument
// unchanged. No parameters, no state, no failure modes.
type Identity[B tensor.Backend] struct{}

// Apply returns batch unchanged.
func (Identity[B]) Apply(batch Batch[B]) (Batch[B], error) {
	return batch, nil
}

// ChannelNorm rescales each channel of a batch: (x - mean[c]) / std[c],
// broadcast over the batch and spatial dimensions.
//
// The rescaling is exposed twice. Forward runs through the autodiff backend
// so gradients flow from the batch to the output; Inference runs the same
// arithmetic on the inner backend through a cached Transform, producing
// numerically identical values with no tape entries. Apply dispatches
// between the two on the mode flag, which defaults to differentiable.
//
// Statistics may be replaced on any call by passing overrides; an override
// is validated against the batch's channel count before anything is stored,
// so a failed call leaves the normalizer exactly as it was.
//
// Not safe for concurrent use without external synchronization.
type ChannelNorm[B tensor.Backend] struct {
	mean           []float32
	std            []float32
	differentiable bool
	backend        *autodiff.Backend[B]
	inference      *Transform[B]
}

// New creates a ChannelNorm with initial per-channel statistics.
// The mode flag starts differentiable.
func New[B tensor.Backend](mean, std []float32, backend *autodiff.Backend[B]) *ChannelNorm[B] {
	n := &ChannelNorm[B]{
		mean:           slices.Clone(mean),
		std:            slices.Clone(std),
		differentiable: true,
		backend:        backend,
	}
	n.inference = NewTransform(n.mean, n.std, backend.Inner())
	return n
}

// Differentiable makes Apply take the gradient-tracking path.
func (n *ChannelNorm[B]) Differentiable() { n.differentiable = true }

// NonDifferentiable makes Apply take the cached-transform path.
func (n *ChannelNorm[B]) NonDifferentiable() { n.differentiable = false }

// Mean returns a copy of the stored per-channel means.
func (n *ChannelNorm[B]) Mean() []float32 { return slices.Clone(n.mean) }

// Std returns a copy of the stored per-channel standard deviations.
func (n *ChannelNorm[B]) Std() []float32 { return slices.Clone(n.std) }

// Apply normalizes batch with the stored statistics, dispatching on the
// mode flag.
func (n *ChannelNorm[B]) Apply(batch Batch[B]) (Batch[B], error) {
	return n.ApplyWith(batch, nil, nil)
}

// ApplyWith normalizes batch, optionally replacing the stored mean and/or
// std first. A nil override keeps the stored value. Dispatches on the mode
// flag.
func (n *ChannelNorm[B]) ApplyWith(batch Batch[B], mean, std []float32) (Batch[B], error) {
	if n.differentiable {
		return n.Forward(batch, mean, std)
	}
	return n.Inference(batch, mean, std)
}

// Forward normalizes batch through the autodiff backend, preserving
// gradient connectivity from batch to the output. A nil mean or std keeps
// the stored value; a non-nil one replaces it for this and subsequent calls
// once it validates against the batch's channel count.
func (n *ChannelNorm[B]) Forward(batch Batch[B], mean, std []float32) (Batch[B], error) {
	c, err := n.update(batch.Shape(), mean, std)
	if err != nil {
		return nil, err
	}

	meanT, err := tensor.FromSlice(n.mean, tensor.Shape{1, c, 1, 1}, n.backend)
	if err != nil {
		return nil, err
	}
	stdT, err := tensor.FromSlice(n.std, tensor.Shape{1, c, 1, 1}, n.backend)
	if err != nil {
		return nil, err
	}

	return batch.Sub(meanT).Div(stdT), nil
}

// Inference normalizes batch through the cached Transform on the inner
// backend. Values match Forward exactly; nothing is recorded on the tape.
// Override semantics are the same as Forward's.
func (n *ChannelNorm[B]) Inference(batch Batch[B], mean, std []float32) (Batch[B], error) {
	if _, err := n.update(batch.Shape(), mean, std); err != nil {
		return nil, err
	}
	return n.inference.Call(batch)
}

// update validates the candidate statistics against the batch shape and
// only then commits overrides and rebuilds the inference transform.
// Returns the batch's channel count.
func (n *ChannelNorm[B]) update(shape tensor.Shape, mean, std []float32) (int, error) {
	m, s := n.mean, n.std
	if mean != nil {
		m = mean
	}
	if std != nil {
		s = std
	}

	c, err := channels(shape, len(m), len(s))
	if err != nil {
		return 0, err
	}

	if mean != nil || std != nil {
		n.mean = slices.Clone(m)
		n.std = slices.Clone(s)
		n.inference = NewTransform(n.mean, n.std, n.backend.Inner())
	}
	return c, nil
}
