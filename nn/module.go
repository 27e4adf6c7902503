// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/strata/internal/nn"
	"github.com/born-ml/strata/tensor"
)

// Module is the base interface for float layers: Forward, Parameters, train/eval
// mode, and StateDict/LoadStateDict.
//
// Modules can be composed with Sequential:
//
//	model := nn.NewSequential[B](
//	    nn.NewLayerNorm1d(128, nn.DefaultLayerNormEps, true, backend),
//	    nn.NewDropout[B](0.1, rng),
//	    nn.NewLinear(128, 10, true, rng, backend),
//	)
type Module[B tensor.Backend] = nn.Module[B]

// Mode selects training or evaluation behavior.
type Mode = nn.Mode

// Module modes. New layers start in ModeTrain.
const (
	ModeTrain Mode = nn.ModeTrain
	ModeEval  Mode = nn.ModeEval
)

// ModeSetter is implemented by every layer, including Embedding.
type ModeSetter = nn.ModeSetter

// Train switches m to training mode.
func Train(m ModeSetter) {
	nn.Train(m)
}

// Eval switches m to evaluation mode.
func Eval(m ModeSetter) {
	nn.Eval(m)
}
