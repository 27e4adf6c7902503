package cpu

import (
	"github.com/born-ml/strata/internal/tensor"
)

// broadcastStrides computes strides for reading inShape as if it had outShape.
// Padded and size-1 dimensions get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	offset := outDim - len(inShape)
	origStrides := inShape.ComputeStrides()

	strides := make([]int, outDim)
	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		if inIdx < 0 || inShape[inIdx] == 1 {
			continue
		}
		strides[i] = origStrides[inIdx]
	}
	return strides
}

// sourceIndex maps a flat output index to a flat input index.
// outStrides are the output's row-major strides, inStrides come from broadcastStrides.
func sourceIndex(outIdx int, outStrides, inStrides []int) int {
	src := 0
	for i, s := range outStrides {
		coord := outIdx / s
		outIdx %= s
		src += coord * inStrides[i]
	}
	return src
}
