// Package cpu implements tensor.Backend in pure Go.
//
// Kernels are generic over the element type and always write into a freshly allocated
// result; operands are never modified. Row-oriented kernels (matmul, fused layer norm)
// fan out across goroutines through internal/parallel, with each output row owned by a
// single goroutine so results do not depend on scheduling.
package cpu

import (
	"github.com/born-ml/strata/internal/parallel"
	"github.com/born-ml/strata/internal/tensor"
)

// CPUBackend implements tensor operations on the CPU.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a CPU backend using parallel.DefaultConfig.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallelism configuration.
// Pass parallel.Config{} to run every kernel on the calling goroutine.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// ParallelConfig returns the parallelism settings used by row kernels.
func (cpu *CPUBackend) ParallelConfig() parallel.Config {
	return cpu.parallel
}

// number is the element set supported by arithmetic kernels.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64
}

func (cpu *CPUBackend) alloc(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	return tensor.MustRaw(op, shape, dtype, cpu.device)
}
