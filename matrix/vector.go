// SPDX-License-Identifier: MIT

// Package matrix - vector operations.
//
// Vectors are plain slices of any Number type. Every operation validates its
// inputs, never mutates them, and returns a fresh []float64 (or a scalar)
// passed through Snap.
//
// Errors:
//   - ErrNilArgument: a nil vector.
//   - ErrInvalidArgument: an empty vector.
//   - ErrIncompatibleSize: operands of different length, or a cross product
//     on vectors whose length is not 3.

package matrix

import (
	"fmt"
	"math"
)

const (
	opAddVectors    = "AddVectors"
	opSubVectors    = "SubVectors"
	opDotProduct    = "DotProduct"
	opScaleVector   = "ScaleVector"
	opCrossProduct  = "CrossProduct"
	opPerpendicular = "PerpendicularVector"
	opVectorLength  = "VectorLength"
)

// crossLen is the only length for which a cross product is defined here.
const crossLen = 3

// validateVector checks a single operand.
func validateVector[T Number](v []T) error {
	if v == nil {
		return ErrNilArgument
	}
	if len(v) == 0 {
		return ErrInvalidArgument
	}

	return nil
}

// validatePair checks two operands and their length agreement.
func validatePair[T Number](a, b []T) error {
	if err := validateVector(a); err != nil {
		return err
	}
	if err := validateVector(b); err != nil {
		return err
	}
	if len(a) != len(b) {
		return fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrIncompatibleSize)
	}

	return nil
}

// AddVectors returns a+b.
func AddVectors[T Number](a, b []T) ([]float64, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opAddVectors, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = Snap(float64(a[i]) + float64(b[i]))
	}

	return out, nil
}

// SubVectors returns a-b.
func SubVectors[T Number](a, b []T) ([]float64, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opSubVectors, err)
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = Snap(float64(a[i]) - float64(b[i]))
	}

	return out, nil
}

// DotProduct returns Σ a[i]*b[i].
func DotProduct[T Number](a, b []T) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, matrixErrorf(opDotProduct, err)
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}

	return Snap(sum), nil
}

// ScaleVector returns k*v.
func ScaleVector[T Number](v []T, k float64) ([]float64, error) {
	if err := validateVector(v); err != nil {
		return nil, matrixErrorf(opScaleVector, err)
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = Snap(k * float64(x))
	}

	return out, nil
}

// CrossProduct returns a×b for length-3 vectors.
func CrossProduct[T Number](a, b []T) ([]float64, error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opCrossProduct, err)
	}
	if len(a) != crossLen {
		return nil, matrixErrorf(opCrossProduct, fmt.Errorf("len %d: %w", len(a), ErrIncompatibleSize))
	}
	a0, a1, a2 := float64(a[0]), float64(a[1]), float64(a[2])
	b0, b1, b2 := float64(b[0]), float64(b[1]), float64(b[2])

	return []float64{
		Snap(a1*b2 - a2*b1),
		Snap(a2*b0 - a0*b2),
		Snap(a0*b1 - a1*b0),
	}, nil
}

// PerpendicularVector returns a non-zero vector orthogonal to v.
//
// Implementation:
//   - Rotate the (0,1) plane when either of the first two components is
//     non-zero: out = (-v[1], v[0], 0, ...). For n == 2 this is (-y, x).
//   - Otherwise rotate the (0,i) plane, i being the first non-zero index:
//     out[0] = -v[i], all other components zero.
//   - The zero vector is orthogonal to everything; e_0 is returned for it.
//
// Errors:
//   - ErrIncompatibleSize when len(v) < 2 (no orthogonal direction exists).
func PerpendicularVector[T Number](v []T) ([]float64, error) {
	if err := validateVector(v); err != nil {
		return nil, matrixErrorf(opPerpendicular, err)
	}
	n := len(v)
	if n < 2 {
		return nil, matrixErrorf(opPerpendicular, fmt.Errorf("len %d: %w", n, ErrIncompatibleSize))
	}
	out := make([]float64, n)
	if v[0] != 0 || v[1] != 0 {
		out[0] = Snap(-float64(v[1]))
		out[1] = Snap(float64(v[0]))

		return out, nil
	}
	for i := 2; i < n; i++ {
		if v[i] != 0 {
			out[0] = Snap(-float64(v[i]))

			return out, nil
		}
	}
	out[0] = 1

	return out, nil
}

// VectorLength returns the Euclidean norm of v.
func VectorLength[T Number](v []T) (float64, error) {
	if err := validateVector(v); err != nil {
		return 0, matrixErrorf(opVectorLength, err)
	}
	var sum float64
	for _, x := range v {
		f := float64(x)
		sum += f * f
	}

	return Snap(math.Sqrt(sum)), nil
}
