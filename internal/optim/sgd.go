package optim

import (
	"fmt"

	"github.com/born-ml/strata/internal/nn"
	"github.com/born-ml/strata/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter[B]]*tensor.Tensor[float32, B]
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if !(config.Momentum >= 0 && config.Momentum < 1) {
		panic(fmt.Sprintf("NewSGD: momentum must be in [0, 1), got %v", config.Momentum))
	}

	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B]),
	}
}

// Step applies one SGD update. Parameters without a gradient are skipped.
func (s *SGD[B]) Step() {
	for _, param := range s.params {
		grad := gradient(param)
		if grad == nil {
			continue
		}

		step := grad
		if s.momentum != 0 {
			step = s.updateVelocity(param, grad)
		}

		data := param.Tensor().Data()
		for i, v := range step.MulScalar(float64(s.lr)).Data() {
			data[i] -= v
		}
	}
}

// updateVelocity computes momentum * velocity + grad and stores it for param.
func (s *SGD[B]) updateVelocity(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	velocity, ok := s.velocities[param]
	if !ok {
		velocity = grad.Clone()
	} else {
		velocity = velocity.MulScalar(float64(s.momentum)).Add(grad)
	}
	s.velocities[param] = velocity
	return velocity
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[B]) ZeroGrad() {
	zeroGrad(s.params)
}

// LR returns the current learning rate.
func (s *SGD[B]) LR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}

// StateDict exports velocity buffers as "velocity.{param_index}". Without momentum, or
// before the first step, the map is empty.
func (s *SGD[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	for i, param := range s.params {
		if velocity, ok := s.velocities[param]; ok {
			stateDict[fmt.Sprintf("velocity.%d", i)] = velocity.Raw()
		}
	}
	return stateDict
}

// LoadStateDict restores velocity buffers. Missing entries are initialized on the next
// step.
func (s *SGD[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	velocities := make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B])

	for i, param := range s.params {
		raw, ok := stateDict[fmt.Sprintf("velocity.%d", i)]
		if !ok {
			continue
		}
		if !raw.Shape().Equal(param.Shape()) {
			return fmt.Errorf("%w: velocity %d expected %v, got %v", nn.ErrShapeMismatch, i, param.Shape(), raw.Shape())
		}
		if raw.DType() != tensor.Float32 {
			return fmt.Errorf("%w: velocity %d is %v", nn.ErrDTypeMismatch, i, raw.DType())
		}
		velocities[param] = tensor.New[float32](raw.Clone(), param.Tensor().Backend())
	}

	s.velocities = velocities
	return nil
}
