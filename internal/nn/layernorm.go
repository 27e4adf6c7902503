package nn

import (
	"fmt"

	"github.com/born-ml/strata/internal/tensor"
)

// DefaultLayerNormEps is the usual numerical stability constant.
const DefaultLayerNormEps = 1e-5

// LayerNorm1d normalizes each row of a [batch, dim] input:
//
//	y = weight * (x - mean(x)) / sqrt(var(x) + eps) + bias
//
// mean and var are taken over the row; var is the population variance. weight starts
// at ones and bias at zeros, both of shape [dim].
//
// With fused set, Forward hands the whole computation to the backend's LayerNorm kernel.
// Otherwise it is composed from MeanDim, VarDim and element-wise ops. Both paths agree
// to within float32 rounding.
//
// Example:
//
//	ln := nn.NewLayerNorm1d(768, nn.DefaultLayerNormEps, true, backend)
//	output := ln.Forward(hidden) // [batch, 768] -> [batch, 768]
type LayerNorm1d[B tensor.Backend] struct {
	modeState

	dim    int
	eps    float64
	fused  bool
	weight *Parameter[B] // [dim]
	bias   *Parameter[B] // [dim]
}

// NewLayerNorm1d creates a LayerNorm1d layer over rows of size dim.
func NewLayerNorm1d[B tensor.Backend](dim int, eps float64, fused bool, backend B) *LayerNorm1d[B] {
	return &LayerNorm1d[B]{
		dim:    dim,
		eps:    eps,
		fused:  fused,
		weight: NewParameter("weight", Ones(tensor.Shape{dim}, backend)),
		bias:   NewParameter("bias", Zeros(tensor.Shape{dim}, backend)),
	}
}

// Forward normalizes a [batch, dim] tensor.
func (l *LayerNorm1d[B]) Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("LayerNorm1d.Forward: expected 2D input [batch, dim], got shape %v", shape))
	}
	if shape[1] != l.dim {
		panic(fmt.Sprintf("LayerNorm1d.Forward: expected last dimension %d, got %d", l.dim, shape[1]))
	}

	w := l.weight.Tensor()
	b := l.bias.Tensor()

	if l.fused {
		return x.LayerNorm(w, b, l.eps)
	}

	mean := x.MeanDim(1, true)                         // [batch, 1]
	std := x.VarDim(1, true).AddScalar(l.eps).Pow(0.5) // [batch, 1]
	return w.Mul(x.Sub(mean)).Div(std).Add(b)
}

// Parameters returns [weight, bias].
func (l *LayerNorm1d[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// NamedParameters returns {"weight", "bias"}.
func (l *LayerNorm1d[B]) NamedParameters() map[string]*Parameter[B] {
	return map[string]*Parameter[B]{"weight": l.weight, "bias": l.bias}
}

// Weight returns the scale parameter.
func (l *LayerNorm1d[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the shift parameter.
func (l *LayerNorm1d[B]) Bias() *Parameter[B] {
	return l.bias
}

// Dim returns the normalized row size.
func (l *LayerNorm1d[B]) Dim() int {
	return l.dim
}

// Eps returns the stability constant.
func (l *LayerNorm1d[B]) Eps() float64 {
	return l.eps
}

// Fused reports whether Forward uses the backend's fused kernel.
func (l *LayerNorm1d[B]) Fused() bool {
	return l.fused
}

// SetFused selects the fused or composed code path.
func (l *LayerNorm1d[B]) SetFused(fused bool) {
	l.fused = fused
}

// StateDict returns the live weight and bias tensors.
func (l *LayerNorm1d[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"weight": l.weight.Tensor().Raw(),
		"bias":   l.bias.Tensor().Raw(),
	}
}

// LoadStateDict copies "weight" and "bias" into the layer.
func (l *LayerNorm1d[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if err := l.weight.load(stateDict, "weight"); err != nil {
		return err
	}
	return l.bias.load(stateDict, "bias")
}
