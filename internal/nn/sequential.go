package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/strata/internal/tensor"
)

// Sequential chains modules: each module's output is the next module's input.
//
// Example:
//
//	head := nn.NewSequential[B](
//	    nn.NewLayerNorm1d(256, 1e-5, true, backend),
//	    nn.NewDropout[B](0.1, rng),
//	    nn.NewLinear(256, 10, true, rng, backend),
//	)
//	nn.Eval(head) // switches every child to eval mode
type Sequential[B tensor.Backend] struct {
	modeState

	modules []Module[B]
}

// NewSequential creates a Sequential container in train mode. Every module is
// switched to train mode as it is added.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	s := &Sequential[B]{modules: make([]Module[B], 0, len(modules))}
	for _, module := range modules {
		s.Add(module)
	}
	return s
}

// Forward applies all modules in order.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters concatenates the parameters of every module in order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	params := []*Parameter[B]{}
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// NamedParameters merges child parameters under "index.name" keys, matching StateDict.
func (s *Sequential[B]) NamedParameters() map[string]*Parameter[B] {
	named := make(map[string]*Parameter[B])
	for i, module := range s.modules {
		for name, param := range module.NamedParameters() {
			named[fmt.Sprintf("%d.%s", i, name)] = param
		}
	}
	return named
}

// SetMode sets the mode of the container and every child.
func (s *Sequential[B]) SetMode(mode Mode) {
	s.modeState.SetMode(mode)
	for _, module := range s.modules {
		module.SetMode(mode)
	}
}

// Add appends a module. The new module is switched to the container's mode.
func (s *Sequential[B]) Add(module Module[B]) {
	module.SetMode(s.Mode())
	s.modules = append(s.modules, module)
}

// Len returns the number of modules.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at index. Panics if index is out of bounds.
func (s *Sequential[B]) Module(index int) Module[B] {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// StateDict merges child state dicts, prefixing keys with the child index
// ("0.weight", "2.bias", ...).
func (s *Sequential[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	for i, module := range s.modules {
		for name, raw := range module.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = raw
		}
	}
	return stateDict
}

// LoadStateDict routes prefixed entries to the matching child.
func (s *Sequential[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	children := make([]map[string]*tensor.RawTensor, len(s.modules))
	for i := range children {
		children[i] = make(map[string]*tensor.RawTensor)
	}

	for key, raw := range stateDict {
		prefix, name, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}
		i, err := strconv.Atoi(prefix)
		if err != nil || i < 0 || i >= len(s.modules) {
			continue
		}
		children[i][name] = raw
	}

	for i, module := range s.modules {
		if err := module.LoadStateDict(children[i]); err != nil {
			return fmt.Errorf("failed to load module %d: %w", i, err)
		}
	}
	return nil
}
