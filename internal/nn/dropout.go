package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/strata/internal/tensor"
)

// DefaultDropout is the default probability of zeroing an element.
const DefaultDropout = 0.1

// Dropout randomly zeroes elements with probability p during training and scales the
// survivors by 1/(1-p), so the expected value of every element is unchanged (inverted
// dropout). In eval mode, or when p is 0, Forward returns its input as is.
//
// The mask is drawn from the layer's own random source; two layers seeded identically
// produce identical masks for identical call sequences.
//
// Example:
//
//	drop := nn.NewDropout[B](0.1, rand.New(rand.NewSource(1)))
//	y := drop.Forward(x)  // training: masked and rescaled
//	nn.Eval(drop)
//	y = drop.Forward(x)   // eval: y == x
type Dropout[B tensor.Backend] struct {
	modeState

	p   float64
	rng *rand.Rand
}

// NewDropout creates a Dropout layer. p must be in [0, 1). rng may be nil only when
// p is 0.
func NewDropout[B tensor.Backend](p float64, rng *rand.Rand) *Dropout[B] {
	if !(p >= 0 && p < 1) {
		panic(fmt.Sprintf("NewDropout: probability must be in [0, 1), got %v", p))
	}
	if rng == nil && p > 0 {
		panic("NewDropout: nil random source")
	}
	return &Dropout[B]{p: p, rng: rng}
}

// Forward applies dropout to a tensor of any shape.
func (d *Dropout[B]) Forward(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !d.Training() || d.p == 0 {
		return x
	}

	keep := 1 - d.p
	mask := tensor.Bernoulli[float32](x.Shape(), keep, d.rng, x.Backend())
	return mask.Mul(x).DivScalar(keep)
}

// P returns the drop probability.
func (d *Dropout[B]) P() float64 {
	return d.p
}

// Parameters returns an empty slice; Dropout has no trainable state.
func (d *Dropout[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{}
}

// NamedParameters returns an empty map.
func (d *Dropout[B]) NamedParameters() map[string]*Parameter[B] {
	return map[string]*Parameter[B]{}
}

// StateDict returns an empty map.
func (d *Dropout[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// LoadStateDict accepts any state dict; there is nothing to load.
func (d *Dropout[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}
