// Package nn implements the layer building blocks: the Module contract, trainable
// Parameters, and the Embedding, Dropout, Linear and LayerNorm1d layers.
//
// Layers are generic over the tensor backend and only compose tensor operations; all
// arithmetic is dispatched to the backend they were constructed with.
package nn

import (
	"github.com/born-ml/strata/internal/tensor"
)

// Mode selects training or evaluation behavior for a module.
type Mode int

// Module modes. The zero value is ModeTrain, so freshly built layers start in
// training mode.
const (
	ModeTrain Mode = iota
	ModeEval
)

func (m Mode) String() string {
	switch m {
	case ModeTrain:
		return "train"
	case ModeEval:
		return "eval"
	default:
		return "unknown"
	}
}

// ModeSetter is implemented by anything whose behavior depends on Mode.
type ModeSetter interface {
	SetMode(mode Mode)
	Mode() Mode
}

// Train switches m to training mode.
func Train(m ModeSetter) {
	m.SetMode(ModeTrain)
}

// Eval switches m to evaluation mode.
func Eval(m ModeSetter) {
	m.SetMode(ModeEval)
}

// Module is the base interface for float layers.
//
// Every module must implement:
//   - Forward: compute output from input
//   - Parameters/NamedParameters: return all trainable parameters
//   - SetMode/Mode: per-instance train/eval state
//   - StateDict/LoadStateDict: copy parameter values out and in
//
// Modules can be composed:
//
//	model := nn.NewSequential[B](
//	    nn.NewLayerNorm1d(128, 1e-5, true, backend),
//	    nn.NewDropout[B](0.1, rng),
//	    nn.NewLinear(128, 10, true, rng, backend),
//	)
type Module[B tensor.Backend] interface {
	ModeSetter

	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module, in a stable order.
	// Modules without parameters return an empty, non-nil slice.
	Parameters() []*Parameter[B]

	// NamedParameters returns the same parameters keyed by their StateDict names.
	NamedParameters() map[string]*Parameter[B]

	// StateDict returns parameter name -> raw tensor. The tensors are the live
	// parameter storage, not copies.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict copies values into the module's parameters.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}

// modeState is embedded by layers to carry their train/eval flag.
type modeState struct {
	mode Mode
}

// Mode returns the current mode.
func (s *modeState) Mode() Mode {
	return s.mode
}

// SetMode sets the current mode.
func (s *modeState) SetMode(mode Mode) {
	s.mode = mode
}

// Training reports whether the module is in training mode.
func (s *modeState) Training() bool {
	return s.mode == ModeTrain
}
