package tensor

import (
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return New[T, B](MustRaw("zeros", shape, DataTypeOf[T](), b.Device()), b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var one T
	switch p := any(&one).(type) {
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *uint8:
		*p = 1
	case *bool:
		*p = true
	}
	return Full[T, B](shape, one, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with values drawn uniformly from [0, 1) using rng.
//
// The generator is explicit so that a fixed seed reproduces the same tensor:
//
//	rng := rand.New(rand.NewSource(42))
//	t := tensor.Rand[float32](tensor.Shape{10, 10}, rng, backend)
func Rand[T Float, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	mustRNG("rand", rng)
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		v := T(rng.Float64())
		for v >= 1 { // float32 rounding can reach 1
			v = T(rng.Float64())
		}
		data[i] = v
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal distribution N(0, 1).
func Randn[T Float, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	mustRNG("randn", rng)
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rng.NormFloat64())
	}
	return t
}

// Bernoulli creates a 0/1 mask where each element is 1 with probability keepProb.
// Mask generation is delegated to the backend.
func Bernoulli[T Float, B Backend](shape Shape, keepProb float64, rng *rand.Rand, b B) *Tensor[T, B] {
	mustRNG("bernoulli", rng)
	return New[T, B](b.Bernoulli(shape, keepProb, rng, DataTypeOf[T]()), b)
}

// OneHot expands int32 class indices of shape [...] into a float32 tensor of shape
// [..., numClasses] holding a single 1 per row.
//
// Panics if any index is outside [0, numClasses).
func OneHot[B Backend](indices *Tensor[int32, B], numClasses int) *Tensor[float32, B] {
	b := indices.Backend()
	return New[float32, B](b.OneHot(indices.Raw(), numClasses, Float32), b)
}

func mustRNG(op string, rng *rand.Rand) {
	if rng == nil {
		panic(op + ": nil random source")
	}
}
