// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/strata/internal/nn"
	"github.com/born-ml/strata/tensor"
)

// Defaults.
const (
	DefaultDropout      = nn.DefaultDropout
	DefaultLayerNormEps = nn.DefaultLayerNormEps
)

// Embedding maps int32 token indices [batch, seq] to vectors [batch, seq, dim].
type Embedding[B tensor.Backend] = nn.Embedding[B]

// NewEmbedding creates an embedding table initialized from N(0, 1).
//
// Example:
//
//	embed := nn.NewEmbedding(10000, 256, rng, backend)
//	vectors := embed.Forward(indices) // [batch, seq] -> [batch, seq, 256]
func NewEmbedding[B tensor.Backend](numEmbeddings, embeddingDim int, rng *rand.Rand, backend B) *Embedding[B] {
	return nn.NewEmbedding(numEmbeddings, embeddingDim, rng, backend)
}

// NewEmbeddingWithWeight creates an embedding around a pre-initialized
// [numEmbeddings, embeddingDim] weight.
func NewEmbeddingWithWeight[B tensor.Backend](weight *tensor.Tensor[float32, B]) *Embedding[B] {
	return nn.NewEmbeddingWithWeight(weight)
}

// Dropout zeroes elements with probability p in training mode and rescales the rest.
type Dropout[B tensor.Backend] = nn.Dropout[B]

// NewDropout creates a dropout layer with its own random source. p must be in [0, 1).
func NewDropout[B tensor.Backend](p float64, rng *rand.Rand) *Dropout[B] {
	return nn.NewDropout[B](p, rng)
}

// Linear computes y = x @ W + b with W stored as [in, out].
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a linear layer whose weight and bias are drawn from
// 0.1 * (U[0, 1) - 0.5).
//
// Example:
//
//	layer := nn.NewLinear(784, 128, true, rng, backend)
//	output := layer.Forward(input) // [n, 784] -> [n, 128]
func NewLinear[B tensor.Backend](inSize, outSize int, bias bool, rng *rand.Rand, backend B) *Linear[B] {
	return nn.NewLinear(inSize, outSize, bias, rng, backend)
}

// LayerNorm1d normalizes each row of a [batch, dim] input.
type LayerNorm1d[B tensor.Backend] = nn.LayerNorm1d[B]

// NewLayerNorm1d creates a LayerNorm1d layer. fused selects the backend's fused kernel
// over the composed tensor-op path.
func NewLayerNorm1d[B tensor.Backend](dim int, eps float64, fused bool, backend B) *LayerNorm1d[B] {
	return nn.NewLayerNorm1d(dim, eps, fused, backend)
}

// Sequential chains modules in order.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a Sequential container.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Initialization helpers.

// ScaledUniform draws from 0.1 * (U[0, 1) - 0.5).
func ScaledUniform[B tensor.Backend](shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	return nn.ScaledUniform(shape, rng, backend)
}

// Normal draws from N(0, 1).
func Normal[B tensor.Backend](shape tensor.Shape, rng *rand.Rand, backend B) *tensor.Tensor[float32, B] {
	return nn.Normal(shape, rng, backend)
}
