package nn

import (
	"testing"

	"github.com/born-ml/strata/internal/backend/cpu"
	"github.com/born-ml/strata/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameter(t *testing.T) {
	backend := cpu.New()

	data := fromSlice(t, backend, tensor.Shape{3}, 1, 2, 3)
	param := NewParameter("test_param", data)

	assert.Equal(t, "test_param", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.Equal(t, tensor.Shape{3}, param.Shape())
	assert.Nil(t, param.Grad())

	grad := fromSlice(t, backend, tensor.Shape{3}, 0.1, 0.2, 0.3)
	param.SetGrad(grad)
	assert.Same(t, grad, param.Grad())

	param.ZeroGrad()
	assert.Nil(t, param.Grad())
}

func TestParameter_Update(t *testing.T) {
	backend := cpu.New()
	param := NewParameter("w", fromSlice(t, backend, tensor.Shape{2, 2}, 1, 2, 3, 4))
	storage := param.Tensor()

	require.NoError(t, param.Update(fromSlice(t, backend, tensor.Shape{2, 2}, 5, 6, 7, 8)))
	assert.Same(t, storage, param.Tensor(), "update must write in place")
	assert.Equal(t, []float32{5, 6, 7, 8}, param.Tensor().Data())

	err := param.Update(fromSlice(t, backend, tensor.Shape{4}, 0, 0, 0, 0))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, []float32{5, 6, 7, 8}, param.Tensor().Data())
}

func TestParameter_Load(t *testing.T) {
	backend := cpu.New()
	param := NewParameter("w", Zeros(tensor.Shape{2}, backend))

	tests := []struct {
		name      string
		stateDict map[string]*tensor.RawTensor
		wantErr   error
	}{
		{
			name:      "missing",
			stateDict: map[string]*tensor.RawTensor{},
			wantErr:   ErrMissingParameter,
		},
		{
			name:      "wrong shape",
			stateDict: map[string]*tensor.RawTensor{"w": Zeros(tensor.Shape{3}, backend).Raw()},
			wantErr:   ErrShapeMismatch,
		},
		{
			name:      "wrong dtype",
			stateDict: map[string]*tensor.RawTensor{"w": tensor.Zeros[float64](tensor.Shape{2}, backend).Raw()},
			wantErr:   ErrDTypeMismatch,
		},
		{
			name:      "ok",
			stateDict: map[string]*tensor.RawTensor{"w": fromSlice(t, backend, tensor.Shape{2}, 3, 4).Raw()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := param.load(tt.stateDict, "w")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []float32{3, 4}, param.Tensor().Data())
		})
	}
}
