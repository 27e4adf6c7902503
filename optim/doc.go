// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter update rules for nn layers.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers take gradients from nn.Parameter.Grad, which the caller sets. There is
// no automatic differentiation.
//
// # Basic Usage
//
//	layer := nn.NewLinear(3, 2, false, rng, backend)
//	optimizer := optim.NewSGD(layer.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	layer.Weight().SetGrad(grad) // [3, 2]
//	optimizer.Step()
//	optimizer.ZeroGrad()
package optim
