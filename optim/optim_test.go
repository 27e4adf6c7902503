// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/strata/backend/cpu"
	"github.com/born-ml/strata/nn"
	"github.com/born-ml/strata/optim"
	"github.com/born-ml/strata/tensor"
	"github.com/stretchr/testify/assert"
)

func TestSGD_UpdatesLinearWeight(t *testing.T) {
	backend := cpu.New()
	layer := nn.NewLinear(2, 2, false, rand.New(rand.NewSource(1)), backend)
	before := append([]float32(nil), layer.Weight().Tensor().Data()...)

	var optimizer optim.Optimizer = optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: 0.5})
	layer.Weight().SetGrad(tensor.Ones[float32](tensor.Shape{2, 2}, backend))
	optimizer.Step()
	optimizer.ZeroGrad()

	for i, v := range layer.Weight().Tensor().Data() {
		assert.InDelta(t, before[i]-0.5, v, 1e-6)
	}
	assert.Nil(t, layer.Weight().Grad())
}

func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam[*cpu.Backend](nil, optim.AdamConfig{})
	assert.InDelta(t, 0.001, optimizer.LR(), 1e-9)
	optimizer.Step()
	assert.Equal(t, 1, optimizer.Timestep())
}
