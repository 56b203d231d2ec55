// Package normalize implements per-channel batch normalization strategies
// for (N, C, H, W) image batches.
//
// Two interchangeable strategies satisfy the Normalizer interface:
//   - Identity: returns the batch unchanged (the "no normalization" case).
//   - ChannelNorm: per-channel affine rescaling, (x - mean) / std.
//
// ChannelNorm exposes the rescaling twice. Forward computes it through the
// autodiff backend, so the result stays connected to the gradient tape and
// upstream optimization loops can backpropagate through normalization.
// Inference delegates to a cached Transform running on the engine's inner
// (untaped) backend; outputs are numerically identical, only gradient
// tracking differs.
//
// A ChannelNorm holds mutable state (stored statistics and the cached
// inference transform). Sharing one instance across goroutines requires
// external synchronization.
package normalize
