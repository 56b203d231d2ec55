package metric

import (
	"testing"

	"github.com/born-ml/born/backend/cpu"
	"github.com/born-ml/born/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 4 samples, 3 classes. Predicted order per row (best first):
//
//	row 0: 2, 1, 0  target 2 -> rank 0
//	row 1: 0, 2, 1  target 1 -> rank 2
//	row 2: 1, 0, 2  target 1 -> rank 0
//	row 3: 2, 0, 1  target 0 -> rank 1
func fixture(t *testing.T) (*tensor.Tensor[float32, *cpu.Backend], *tensor.Tensor[int32, *cpu.Backend]) {
	t.Helper()
	backend := cpu.New()
	logits, err := tensor.FromSlice([]float32{
		0.1, 0.3, 0.6,
		0.5, 0.1, 0.4,
		0.2, 0.7, 0.1,
		0.3, 0.1, 0.6,
	}, tensor.Shape{4, 3}, backend)
	require.NoError(t, err)
	targets, err := tensor.FromSlice([]int32{2, 1, 1, 0}, tensor.Shape{4}, backend)
	require.NoError(t, err)
	return logits, targets
}

func TestCorrectCount(t *testing.T) {
	logits, targets := fixture(t)

	tests := []struct {
		k    int
		want int
	}{
		{1, 2}, // rows 0 and 2
		{2, 3}, // row 3 joins
		{3, 4}, // everything
	}
	for _, tt := range tests {
		got, err := CorrectCount(logits, targets, tt.k)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "k=%d", tt.k)
	}
}

func TestPrecisionAtK(t *testing.T) {
	logits, targets := fixture(t)

	got, err := PrecisionAtK(logits, targets, 1, 2, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.InDelta(t, 50.0, got[0], 1e-9)
	assert.InDelta(t, 75.0, got[1], 1e-9)
	assert.InDelta(t, 100.0, got[2], 1e-9)
}

func TestMetricValidation(t *testing.T) {
	backend := cpu.New()
	logits, targets := fixture(t)

	t.Run("k out of range", func(t *testing.T) {
		_, err := CorrectCount(logits, targets, 0)
		assert.Error(t, err)
		_, err = CorrectCount(logits, targets, 4)
		assert.Error(t, err)
	})

	t.Run("logits not 2-D", func(t *testing.T) {
		bad, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
		require.NoError(t, err)
		_, err = CorrectCount(bad, targets, 1)
		assert.Error(t, err)
	})

	t.Run("targets batch mismatch", func(t *testing.T) {
		bad, err := tensor.FromSlice([]int32{1, 2}, tensor.Shape{2}, backend)
		require.NoError(t, err)
		_, err = CorrectCount(logits, bad, 1)
		assert.Error(t, err)
	})

	t.Run("no k requested", func(t *testing.T) {
		_, err := PrecisionAtK(logits, targets)
		assert.Error(t, err)
	})

	t.Run("empty batch", func(t *testing.T) {
		emptyLogits, err := tensor.FromSlice([]float32{}, tensor.Shape{0, 3}, backend)
		require.NoError(t, err)
		emptyTargets, err := tensor.FromSlice([]int32{}, tensor.Shape{0}, backend)
		require.NoError(t, err)

		_, err = PrecisionAtK(emptyLogits, emptyTargets, 1)
		assert.Error(t, err)
		_, err = CorrectCount(emptyLogits, emptyTargets, 1)
		assert.Error(t, err)
	})
}
