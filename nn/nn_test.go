// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/strata/backend/cpu"
	"github.com/born-ml/strata/nn"
	"github.com/born-ml/strata/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Backend = *cpu.Backend

// TestPipeline runs the public layers end to end: embed, flatten, normalize, drop and
// project.
func TestPipeline(t *testing.T) {
	backend := cpu.NewWithWorkers(2)
	rng := rand.New(rand.NewSource(42))

	const (
		vocab = 20
		dim   = 8
		out   = 4
	)

	embed := nn.NewEmbedding(vocab, dim, rng, backend)
	head := nn.NewSequential[Backend](
		nn.NewLayerNorm1d(dim, nn.DefaultLayerNormEps, true, backend),
		nn.NewDropout[Backend](nn.DefaultDropout, rng),
		nn.NewLinear(dim, out, true, rng, backend),
	)

	indices, err := tensor.FromSlice([]int32{1, 5, 7, 0, 19, 3}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)

	vectors := embed.Forward(indices)
	require.Equal(t, tensor.Shape{2, 3, dim}, vectors.Shape())

	output := head.Forward(vectors.View(6, dim))
	assert.Equal(t, tensor.Shape{6, out}, output.Shape())

	// Eval mode is deterministic.
	nn.Eval(head)
	first := head.Forward(vectors.View(6, dim)).Data()
	second := head.Forward(vectors.View(6, dim)).Data()
	assert.Equal(t, first, second)
	assert.Equal(t, nn.ModeEval, head.Module(1).Mode())
}

func TestSameSeedSameModel(t *testing.T) {
	backend := cpu.New()

	build := func() *nn.Linear[Backend] {
		return nn.NewLinear(3, 2, true, rand.New(rand.NewSource(7)), backend)
	}
	a, b := build(), build()
	assert.Equal(t, a.Weight().Tensor().Data(), b.Weight().Tensor().Data())

	var m nn.Module[Backend] = a
	nn.Eval(m)
	assert.Equal(t, nn.ModeEval, m.Mode())
	nn.Train(m)
	assert.Equal(t, nn.ModeTrain, m.Mode())
}

func TestLoadStateDictErrors(t *testing.T) {
	backend := cpu.New()
	rng := rand.New(rand.NewSource(1))

	ln := nn.NewLayerNorm1d(4, nn.DefaultLayerNormEps, false, backend)
	err := ln.LoadStateDict(map[string]*tensor.RawTensor{})
	assert.ErrorIs(t, err, nn.ErrMissingParameter)

	embed := nn.NewEmbeddingWithWeight(nn.Normal(tensor.Shape{3, 4}, rng, backend))
	raw, err := tensor.NewRaw(tensor.Shape{3, 4}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	assert.ErrorIs(t, embed.LoadStateDict(map[string]*tensor.RawTensor{"weight": raw}), nn.ErrDTypeMismatch)
}
