// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the neural network layers.
//
// # Layers
//
//   - Embedding: token index lookup, expressed as one-hot @ weight
//   - Dropout: inverted dropout, active only in training mode
//   - Linear: y = x @ W + b
//   - LayerNorm1d: per-row normalization with learnable scale and shift
//   - Sequential: ordered container that propagates train/eval mode
//
// Every layer is generic over the tensor backend and starts in training mode.
// Random initialization and dropout masks use an explicit *rand.Rand, so a fixed seed
// reproduces a model exactly.
//
// # Example
//
//	backend := cpu.New()
//	rng := rand.New(rand.NewSource(42))
//
//	embed := nn.NewEmbedding(vocab, 64, rng, backend)
//	head := nn.NewSequential[*cpu.Backend](
//	    nn.NewLayerNorm1d(64, nn.DefaultLayerNormEps, true, backend),
//	    nn.NewDropout[*cpu.Backend](0.1, rng),
//	    nn.NewLinear(64, 16, true, rng, backend),
//	)
//
//	x := embed.Forward(indices)             // [batch, seq, 64]
//	y := head.Forward(x.View(batch*seq, 64)) // [batch*seq, 16]
//
//	nn.Eval(head) // disables dropout
package nn
