// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor API.
//
// The package defines the types the layer packages are built on:
//   - Tensor[T, B]: generic tensor handle with value semantics
//   - RawTensor: untyped row-major storage
//   - Backend: the compute contract implemented by backend/cpu
//   - Shape, DataType, Device: core type definitions
//
// Random creation functions take an explicit *rand.Rand so that results are
// reproducible from a seed:
//
//	backend := cpu.New()
//	rng := rand.New(rand.NewSource(42))
//	x := tensor.Randn[float32](tensor.Shape{2, 3}, rng, backend)
//	y := x.MulScalar(2).Add(tensor.Ones[float32](tensor.Shape{3}, backend))
package tensor
