// Copyright 2026 The Gradkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metric provides top-k classification accuracy helpers.
package metric

import (
	"github.com/born-ml/born/tensor"

	"github.com/robust-ml/gradkit/internal/metric"
)

// CorrectCount returns the number of rows whose target class is among the
// k highest-scoring logits.
func CorrectCount[B tensor.Backend](logits *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B], k int) (int, error) {
	return metric.CorrectCount(logits, targets, k)
}

// PrecisionAtK returns precision@k as a percentage for each requested k,
// in the order given.
func PrecisionAtK[B tensor.Backend](logits *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B], ks ...int) ([]float64, error) {
	return metric.PrecisionAtK(logits, targets, ks...)
}
