package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/strata/internal/tensor"
)

// Linear applies an affine transformation: y = x @ W + b.
//
// Unlike layers that store W as [out, in] and transpose it on every call, the weight
// here is kept as [inSize, outSize] so the forward pass is a single matmul.
//
// Weight and bias are both drawn from 0.1 * (U[0, 1) - 0.5). Note that this is a much
// narrower range than the Uniform(-1/sqrt(inSize), 1/sqrt(inSize)) commonly used for
// linear layers.
//
// Example:
//
//	rng := rand.New(rand.NewSource(0))
//	layer := nn.NewLinear(784, 128, true, rng, backend)
//	output := layer.Forward(input) // [32, 784] -> [32, 128]
type Linear[B tensor.Backend] struct {
	modeState

	inSize  int
	outSize int
	weight  *Parameter[B] // [inSize, outSize]
	bias    *Parameter[B] // [outSize], nil when disabled
}

// NewLinear creates a Linear layer. When bias is false no bias parameter is created.
func NewLinear[B tensor.Backend](inSize, outSize int, bias bool, rng *rand.Rand, backend B) *Linear[B] {
	l := &Linear[B]{
		inSize:  inSize,
		outSize: outSize,
		weight:  NewParameter("weight", ScaledUniform(tensor.Shape{inSize, outSize}, rng, backend)),
	}
	if bias {
		l.bias = NewParameter("bias", ScaledUniform(tensor.Shape{outSize}, rng, backend))
	}
	return l
}

// Forward maps [n, inSize] to [n, outSize].
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [n, in_size], got shape %v", inputShape))
	}
	if inputShape[1] != l.inSize {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inSize, inputShape[1]))
	}

	batch := inputShape[0]
	w := l.weight.Tensor().View(l.inSize, l.outSize)
	output := input.View(batch, l.inSize).MatMul(w)

	if l.bias != nil {
		// [outSize] broadcasts across the batch dimension.
		output = output.Add(l.bias.Tensor())
	}

	return output
}

// Parameters returns [weight, bias], or [weight] when bias is disabled.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	if l.bias != nil {
		return []*Parameter[B]{l.weight, l.bias}
	}
	return []*Parameter[B]{l.weight}
}

// NamedParameters returns {"weight", "bias"}, without "bias" when disabled.
func (l *Linear[B]) NamedParameters() map[string]*Parameter[B] {
	named := map[string]*Parameter[B]{"weight": l.weight}
	if l.bias != nil {
		named["bias"] = l.bias
	}
	return named
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter, or nil when disabled.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// HasBias reports whether the layer adds a bias.
func (l *Linear[B]) HasBias() bool {
	return l.bias != nil
}

// InSize returns the number of input features.
func (l *Linear[B]) InSize() int {
	return l.inSize
}

// OutSize returns the number of output features.
func (l *Linear[B]) OutSize() int {
	return l.outSize
}

// StateDict returns the live weight and bias tensors.
func (l *Linear[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := map[string]*tensor.RawTensor{"weight": l.weight.Tensor().Raw()}
	if l.bias != nil {
		stateDict["bias"] = l.bias.Tensor().Raw()
	}
	return stateDict
}

// LoadStateDict copies "weight" (and "bias" when enabled) into the layer.
func (l *Linear[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if err := l.weight.load(stateDict, "weight"); err != nil {
		return err
	}
	if l.bias != nil {
		return l.bias.load(stateDict, "bias")
	}
	return nil
}
