// Package scalar provides the generic numeric foundation every computation
// type in this module is parameterized over. It plays the same role
// common/math.go played for the engine's GPU matrix math, except the
// underlying float width (float32 or float64) is chosen by the caller
// instead of hard-coded.
package scalar

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Float is the constraint every scalar-carrying type in this module is
// parameterized over. Constants (pi, 0.5, ...) are materialized through Val
// rather than ad hoc casts, per the generic-numeric-type design note.
type Float interface {
	~float32 | ~float64
}

// Val converts a float64 literal to T, the only sanctioned way to
// materialize a numeric constant for a generic Float. It never fails for
// finite inputs, but returns an error for NaN/Inf so callers that build
// constants from configuration (not literals) still have a clear error
// path instead of silently producing a broken model.
func Val[T Float](v float64) (T, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return T(0), fmt.Errorf("scalar: cannot materialize non-finite constant %v", v)
	}
	return T(v), nil
}

// MustVal is Val without the error return, for use with literals that are
// known at compile time to be finite (e.g. MustVal[T](0.5)).
func MustVal[T Float](v float64) T {
	out, err := Val[T](v)
	if err != nil {
		panic(err)
	}
	return out
}

// Pi returns T(π) at the receiver's precision.
func Pi[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Pi)
	default:
		return T(math.Pi)
	}
}

// Sqrt returns the square root of v.
func Sqrt[T Float](v T) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Sqrt(float32(v)))
	default:
		return T(math.Sqrt(float64(v)))
	}
}

// Sin returns the sine of v (radians).
func Sin[T Float](v T) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Sin(float32(v)))
	default:
		return T(math.Sin(float64(v)))
	}
}

// Cos returns the cosine of v (radians).
func Cos[T Float](v T) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Cos(float32(v)))
	default:
		return T(math.Cos(float64(v)))
	}
}

// Asin returns the arcsine of v, in radians.
func Asin[T Float](v T) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Asin(float32(v)))
	default:
		return T(math.Asin(float64(v)))
	}
}

// Acos returns the arccosine of v, in radians. Used for the angle-weighted
// vertex pseudonormal computation (spec.md §3).
func Acos[T Float](v T) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Acos(float32(v)))
	default:
		return T(math.Acos(float64(v)))
	}
}

// Pow returns v raised to the exponent p.
func Pow[T Float](v, p T) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Pow(float32(v), float32(p)))
	default:
		return T(math.Pow(float64(v), float64(p)))
	}
}

// Abs returns the absolute value of v.
func Abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp constrains v to the closed interval [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}

// IsNaN reports whether v is NaN, propagated from a prior division by zero
// or similar numerical anomaly rather than raised as a structural error
// (spec: numerical anomalies propagate silently).
func IsNaN[T Float](v T) bool {
	f := float64(v)
	return f != f
}

// FromInt converts an int (typically a grid index) to T.
func FromInt[T Float](v int) T {
	return T(v)
}
