// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 kernels, int32/int64 indices
//   - NumPy-compatible broadcasting
//   - A fused LayerNorm kernel
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/strata/backend/cpu"
//	    "github.com/born-ml/strata/tensor"
//	    "github.com/born-ml/strata/nn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//
//	    rng := rand.New(rand.NewSource(0))
//	    model := nn.NewLinear(3, 10, true, rng, backend)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Every operation allocates its own
// result and shares no mutable state. Matrix multiplication and LayerNorm split
// their rows across goroutines.
package cpu
