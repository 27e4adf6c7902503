package nn

import (
	"fmt"

	"github.com/born-ml/strata/internal/tensor"
)

// Parameter represents a trainable tensor owned by a single module.
//
// Its shape is fixed when it is created. Optimizers read Grad and write new values into
// the tensor in place; they do so between forward passes, never concurrently with one.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	w := weight.Tensor()
//	grad := weight.Grad()
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B] // set by the caller that computes gradients
}

// NewParameter wraps an initialized tensor as a trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Shape returns the fixed parameter shape.
func (p *Parameter[B]) Shape() tensor.Shape {
	return p.tensor.Shape()
}

// Grad returns the gradient tensor, or nil if none has been set.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}

// Update copies values into the parameter's storage. The shape must match exactly.
func (p *Parameter[B]) Update(values *tensor.Tensor[float32, B]) error {
	if !values.Shape().Equal(p.Shape()) {
		return fmt.Errorf("%w: %s expected %v, got %v", ErrShapeMismatch, p.name, p.Shape(), values.Shape())
	}
	copy(p.tensor.Data(), values.Data())
	return nil
}

// load copies stateDict[key] into p after validating shape and dtype.
func (p *Parameter[B]) load(stateDict map[string]*tensor.RawTensor, key string) error {
	raw, ok := stateDict[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	if !raw.Shape().Equal(p.Shape()) {
		return fmt.Errorf("%w: %s expected %v, got %v", ErrShapeMismatch, key, p.Shape(), raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		return fmt.Errorf("%w: %s expected float32, got %v", ErrDTypeMismatch, key, raw.DType())
	}
	copy(p.tensor.Data(), raw.AsFloat32())
	return nil
}
