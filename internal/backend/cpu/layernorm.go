package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/strata/internal/parallel"
	"github.com/born-ml/strata/internal/tensor"
)

// LayerNorm is the fused normalization kernel:
//
//	y = weight * (x - mean(x)) / sqrt(var(x) + eps) + bias
//
// computed independently for every row of the last dimension. Statistics use float64
// accumulators and the population variance. weight and bias must have shape [lastDim].
func (cpu *CPUBackend) LayerNorm(x, weight, bias *tensor.RawTensor, eps float64) *tensor.RawTensor {
	requireFloat("layernorm", x)

	shape := x.Shape()
	if len(shape) == 0 {
		panic("layernorm: input must have at least one dimension")
	}
	dim := shape[len(shape)-1]

	checkAffine("weight", weight, dim, x.DType())
	checkAffine("bias", bias, dim, x.DType())

	result := cpu.alloc("layernorm", shape, x.DType())

	switch x.DType() {
	case tensor.Float32:
		layerNormKernel(result.AsFloat32(), x.AsFloat32(), weight.AsFloat32(), bias.AsFloat32(), dim, eps, cpu.parallel)
	case tensor.Float64:
		layerNormKernel(result.AsFloat64(), x.AsFloat64(), weight.AsFloat64(), bias.AsFloat64(), dim, eps, cpu.parallel)
	}

	return result
}

func layerNormKernel[T tensor.Float](dst, src, weight, bias []T, dim int, eps float64, cfg parallel.Config) {
	rows := len(src) / dim
	parallel.For(rows, func(r int) {
		row := src[r*dim : (r+1)*dim]
		out := dst[r*dim : (r+1)*dim]

		var sum float64
		for _, v := range row {
			sum += float64(v)
		}
		mean := sum / float64(dim)

		var sq float64
		for _, v := range row {
			d := float64(v) - mean
			sq += d * d
		}
		inv := 1 / math.Sqrt(sq/float64(dim)+eps)

		for i, v := range row {
			out[i] = T((float64(v)-mean)*inv*float64(weight[i]) + float64(bias[i]))
		}
	}, cfg)
}

func checkAffine(name string, p *tensor.RawTensor, dim int, dtype tensor.DataType) {
	if !p.Shape().Equal(tensor.Shape{dim}) {
		panic(fmt.Sprintf("layernorm: %s shape %v, expected [%d]", name, p.Shape(), dim))
	}
	if p.DType() != dtype {
		panic(fmt.Sprintf("layernorm: %s dtype %s, expected %s", name, p.DType(), dtype))
	}
}
