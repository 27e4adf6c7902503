// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/strata/internal/nn"
	"github.com/born-ml/strata/tensor"
)

// Parameter is a trainable tensor owned by one module.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Errors returned by Parameter.Update and LoadStateDict.
var (
	ErrMissingParameter = nn.ErrMissingParameter
	ErrShapeMismatch    = nn.ErrShapeMismatch
	ErrDTypeMismatch    = nn.ErrDTypeMismatch
)
