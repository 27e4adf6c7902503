// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/strata/internal/backend/cpu"
	"github.com/born-ml/strata/internal/parallel"
	"github.com/born-ml/strata/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a CPU backend that uses every available CPU.
//
// Example:
//
//	import (
//	    "github.com/born-ml/strata/backend/cpu"
//	    "github.com/born-ml/strata/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithWorkers creates a CPU backend that splits row-parallel kernels across at
// most workers goroutines. workers <= 1 runs every kernel on the calling goroutine.
func NewWithWorkers(workers int) *Backend {
	return internalcpu.NewWithConfig(parallel.WithWorkers(workers))
}
