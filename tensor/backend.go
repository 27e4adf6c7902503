// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/strata/internal/tensor"

// Backend defines the interface that compute backends implement.
// Backends allocate a new RawTensor for every result and never modify their inputs.
//
// Implementations:
//   - backend/cpu: pure Go, row-parallel kernels
//
// Example:
//
//	import (
//	    "github.com/born-ml/strata/tensor"
//	    "github.com/born-ml/strata/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend = tensor.Backend
