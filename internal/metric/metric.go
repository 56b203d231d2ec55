// Package metric provides top-k classification accuracy helpers over
// (batch, classes) logit tensors.
package metric

import (
	"fmt"

	"github.com/born-ml/born/tensor"
	"gonum.org/v1/gonum/floats"
)

// CorrectCount returns the number of rows whose target class is among the
// k highest-scoring logits.
//
// logits must be 2-D (batch, classes), targets 1-D of length batch, and
// k in [1, classes].
func CorrectCount[B tensor.Backend](logits *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B], k int) (int, error) {
	counts, err := correctCounts(logits, targets, []int{k})
	if err != nil {
		return 0, err
	}
	return counts[0], nil
}

// PrecisionAtK returns precision@k as a percentage for each requested k,
// in the order given. Each row counts as correct for a given k when its
// target class is among the k highest-scoring logits.
func PrecisionAtK[B tensor.Backend](logits *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B], ks ...int) ([]float64, error) {
	counts, err := correctCounts(logits, targets, ks)
	if err != nil {
		return nil, err
	}
	batch := logits.Shape()[0]
	res := make([]float64, len(ks))
	for i, n := range counts {
		res[i] = float64(n) * 100.0 / float64(batch)
	}
	return res, nil
}

// correctCounts ranks each row once at the largest requested k and counts
// target membership for every k.
func correctCounts[B tensor.Backend](logits *tensor.Tensor[float32, B], targets *tensor.Tensor[int32, B], ks []int) ([]int, error) {
	shape := logits.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("metric: logits must be 2-D (batch, classes), got shape %v", shape)
	}
	batch, classes := shape[0], shape[1]
	if batch == 0 {
		return nil, fmt.Errorf("metric: empty batch")
	}
	if ts := targets.Shape(); len(ts) != 1 || ts[0] != batch {
		return nil, fmt.Errorf("metric: targets must have shape [%d], got %v", batch, ts)
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("metric: no k values requested")
	}
	maxk := 0
	for _, k := range ks {
		if k < 1 || k > classes {
			return nil, fmt.Errorf("metric: k=%d out of range [1, %d]", k, classes)
		}
		if k > maxk {
			maxk = k
		}
	}

	logitsData := logits.Raw().AsFloat32()
	targetsData := targets.Raw().AsInt32()

	// Reusable ranking buffers. Argsort orders ascending, so the top-k
	// class indices are the last k entries of inds.
	buf := make([]float64, classes)
	inds := make([]int, classes)

	counts := make([]int, len(ks))
	for b := 0; b < batch; b++ {
		row := logitsData[b*classes : (b+1)*classes]
		for i, v := range row {
			buf[i] = float64(v)
			inds[i] = i
		}
		floats.Argsort(buf, inds)

		target := int(targetsData[b])
		// rank 0 is the highest-scoring class
		rank := -1
		for r := 0; r < maxk; r++ {
			if inds[classes-1-r] == target {
				rank = r
				break
			}
		}
		if rank < 0 {
			continue
		}
		for i, k := range ks {
			if rank < k {
				counts[i]++
			}
		}
	}
	return counts, nil
}
