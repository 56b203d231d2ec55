// Copyright 2026 The Gradkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package normalize provides interchangeable per-channel normalization
// strategies for (N, C, H, W) image batches.
//
// Identity is the no-op strategy; ChannelNorm rescales each channel by
// stored mean/std statistics, either through the autodiff backend (so
// gradients flow through normalization) or through a cached transform on
// the untaped inner backend. Both paths produce numerically identical
// values.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	norm := normalize.New([]float32{0.485, 0.456, 0.406}, []float32{0.229, 0.224, 0.225}, backend)
//	out, err := norm.Apply(batch) // differentiable by default
package normalize

import (
	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/tensor"

	"github.com/robust-ml/gradkit/internal/normalize"
)

// Batch is a float32 (N, C, H, W) tensor on the taped backend.
type Batch[B tensor.Backend] = normalize.Batch[B]

// Normalizer maps a batch to a normalized batch of the same shape.
type Normalizer[B tensor.Backend] = normalize.Normalizer[B]

// Identity is the null-object Normalizer: Apply returns its argument unchanged.
type Identity[B tensor.Backend] = normalize.Identity[B]

// ChannelNorm rescales each channel of a batch by stored mean/std
// statistics, with differentiable and non-differentiable execution paths.
type ChannelNorm[B tensor.Backend] = normalize.ChannelNorm[B]

// Transform is the non-differentiable per-channel normalize routine,
// bound to a (mean, std) pair at construction.
type Transform[B tensor.Backend] = normalize.Transform[B]

// ValidationError reports statistics whose length does not match the
// batch's channel count, or a batch that is not 4-dimensional.
type ValidationError = normalize.ValidationError

// New creates a ChannelNorm with initial per-channel statistics.
// The mode flag starts differentiable.
func New[B tensor.Backend](mean, std []float32, backend *autodiff.Backend[B]) *ChannelNorm[B] {
	return normalize.New(mean, std, backend)
}

// NewTransform creates a Transform from per-channel statistics and the
// inner (untaped) backend.
func NewTransform[B tensor.Backend](mean, std []float32, backend B) *Transform[B] {
	return normalize.NewTransform(mean, std, backend)
}
