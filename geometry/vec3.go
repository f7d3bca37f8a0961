// Package geometry holds the value types and spatial data structures shared
// by every layer above it: vectors, bounds, triangles, planes, meshes and
// the generic octree used both for mesh closest-point queries and for the
// signed-distance oracle in package meshsdf.
package geometry

import "github.com/voxelforge/implicit/scalar"

// Vec3 is an ordered triple of scalar components. It is the leaf value type
// every other geometric primitive in this package is built from.
type Vec3[T scalar.Float] struct {
	X, Y, Z T
}

// NewVec3 constructs a Vec3 from its three components.
//
// Parameters:
//   - x, y, z: the vector components
//
// Returns:
//   - Vec3[T]: the constructed vector
func NewVec3[T scalar.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// FromTuple constructs a Vec3 from a [3]T tuple.
//
// Parameters:
//   - t: the tuple to convert
//
// Returns:
//   - Vec3[T]: the constructed vector
func FromTuple[T scalar.Float](t [3]T) Vec3[T] {
	return Vec3[T]{X: t[0], Y: t[1], Z: t[2]}
}

// Tuple returns the vector as a [3]T tuple.
//
// Returns:
//   - [3]T: the vector components, in x,y,z order
func (v Vec3[T]) Tuple() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Add returns v + o componentwise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o componentwise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns v scaled by s.
func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// MulVec returns v * o componentwise.
func (v Vec3[T]) MulVec(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec3[T]) Length() T {
	return scalar.Sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length.
//
// Undefined behavior contract: calling Normalize on a zero-length vector is
// undefined; callers must guard against it (spec.md §3).
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	return v.Mul(1 / l)
}

// DistanceTo returns the Euclidean distance from v to o.
func (v Vec3[T]) DistanceTo(o Vec3[T]) T {
	return v.Sub(o).Length()
}

// Min returns the componentwise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{scalar.Min(v.X, o.X), scalar.Min(v.Y, o.Y), scalar.Min(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{scalar.Max(v.X, o.X), scalar.Max(v.Y, o.Y), scalar.Max(v.Z, o.Z)}
}

// Neg returns the componentwise negation of v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}
