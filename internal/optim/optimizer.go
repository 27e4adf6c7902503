// Package optim implements parameter update rules for nn layers.
//
// Optimizers read each parameter's gradient from nn.Parameter.Grad and write the new
// values into the parameter's storage in place. Gradients are produced by the caller;
// parameters with no gradient are left untouched.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	for step := range steps {
//	    output := model.Forward(input)
//	    for _, p := range model.Parameters() {
//	        p.SetGrad(gradientFor(p, output))
//	    }
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/strata/internal/nn"
	"github.com/born-ml/strata/internal/tensor"
)

// Optimizer updates a fixed set of parameters.
//
// Step and ZeroGrad must not run concurrently with a forward pass over the same
// parameters.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float32
}

// gradient returns param's gradient, or nil when it has none. A gradient whose shape
// differs from the parameter is a programming error.
func gradient[B tensor.Backend](param *nn.Parameter[B]) *tensor.Tensor[float32, B] {
	if param == nil {
		return nil
	}
	grad := param.Grad()
	if grad != nil && !grad.Shape().Equal(param.Shape()) {
		panic(fmt.Sprintf("optim: gradient shape %v does not match parameter %s %v", grad.Shape(), param.Name(), param.Shape()))
	}
	return grad
}

func zeroGrad[B tensor.Backend](params []*nn.Parameter[B]) {
	for _, param := range params {
		param.ZeroGrad()
	}
}
