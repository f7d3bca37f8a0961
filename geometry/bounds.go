package geometry

import "github.com/voxelforge/implicit/scalar"

// BoundingBox is an axis-aligned box described by its min and max corners.
// Invariant: Min must be componentwise <= Max; NewBoundingBox enforces this
// by sorting the two corners on construction.
type BoundingBox[T scalar.Float] struct {
	Min, Max Vec3[T]
}

// NewBoundingBox constructs a BoundingBox from two corners in any order,
// normalizing them so Min <= Max componentwise.
//
// Parameters:
//   - a, b: two opposite corners of the box
//
// Returns:
//   - BoundingBox[T]: the normalized bounding box
func NewBoundingBox[T scalar.Float](a, b Vec3[T]) BoundingBox[T] {
	return BoundingBox[T]{Min: a.Min(b), Max: a.Max(b)}
}

// Contains reports whether p lies within the box, inclusive of its faces.
//
// Parameters:
//   - p: the point to test
//
// Returns:
//   - bool: true if p is inside or on the boundary of the box
func (b BoundingBox[T]) Contains(p Vec3[T]) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects reports whether b and o overlap (including touching faces).
//
// Parameters:
//   - o: the other box to test against
//
// Returns:
//   - bool: true if the two boxes intersect
func (b BoundingBox[T]) Intersects(o BoundingBox[T]) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Offset inflates (or, with a negative delta, deflates) the box uniformly
// in every direction. The result must remain a valid box (Min <= Max); a
// deflation past the box's half-extent collapses that axis to the box's
// center rather than producing an inverted box.
//
// Parameters:
//   - delta: amount to inflate each face by; negative shrinks the box
//
// Returns:
//   - BoundingBox[T]: the offset box
func (b BoundingBox[T]) Offset(delta T) BoundingBox[T] {
	out := BoundingBox[T]{
		Min: Vec3[T]{b.Min.X - delta, b.Min.Y - delta, b.Min.Z - delta},
		Max: Vec3[T]{b.Max.X + delta, b.Max.Y + delta, b.Max.Z + delta},
	}
	c := b.Centroid()
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	if out.Min.Z > out.Max.Z {
		out.Min.Z, out.Max.Z = c.Z, c.Z
	}
	return out
}

// Centroid returns the center point of the box.
func (b BoundingBox[T]) Centroid() Vec3[T] {
	return b.Min.Add(b.Max).Mul(scalar.MustVal[T](0.5))
}

// Dimensions returns the box's extent along each axis.
func (b BoundingBox[T]) Dimensions() Vec3[T] {
	return b.Max.Sub(b.Min)
}

// SignedDistance returns the signed distance from p to the box surface:
// positive outside (Euclidean distance to the nearest face), negative
// inside (the negative distance to the nearest face, i.e. the maximum
// inset at which p still lies within the box).
//
// Parameters:
//   - p: the query point
//
// Returns:
//   - T: signed distance, negative when p is strictly inside the box
func (b BoundingBox[T]) SignedDistance(p Vec3[T]) T {
	dx := scalar.Max(b.Min.X-p.X, p.X-b.Max.X)
	dy := scalar.Max(b.Min.Y-p.Y, p.Y-b.Max.Y)
	dz := scalar.Max(b.Min.Z-p.Z, p.Z-b.Max.Z)

	outsideX, outsideY, outsideZ := scalar.Max(dx, 0), scalar.Max(dy, 0), scalar.Max(dz, 0)
	outsideLen := scalar.Sqrt(outsideX*outsideX + outsideY*outsideY + outsideZ*outsideZ)

	inside := scalar.Min(scalar.Max(dx, scalar.Max(dy, dz)), 0)
	return outsideLen + inside
}

// LowerBoundDistance returns a lower bound on the Euclidean distance from p
// to any point in the box: zero if p is inside, else the Euclidean
// distance to the nearest face. This is the admissible pruning bound the
// octree's best-first closest-point search relies on.
func (b BoundingBox[T]) LowerBoundDistance(p Vec3[T]) T {
	dx := scalar.Max(scalar.Max(b.Min.X-p.X, p.X-b.Max.X), 0)
	dy := scalar.Max(scalar.Max(b.Min.Y-p.Y, p.Y-b.Max.Y), 0)
	dz := scalar.Max(scalar.Max(b.Min.Z-p.Z, p.Z-b.Max.Z), 0)
	return scalar.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox[T]) Union(o BoundingBox[T]) BoundingBox[T] {
	return BoundingBox[T]{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Octant returns one of the eight child octants of b, indexed 0-7 with bit 0
// selecting the X half, bit 1 the Y half, bit 2 the Z half (low bit = lower
// half). Used by Octree subdivision.
func (b BoundingBox[T]) Octant(index int) BoundingBox[T] {
	c := b.Centroid()
	min, max := b.Min, b.Max
	if index&1 != 0 {
		min.X = c.X
	} else {
		max.X = c.X
	}
	if index&2 != 0 {
		min.Y = c.Y
	} else {
		max.Y = c.Y
	}
	if index&4 != 0 {
		min.Z = c.Z
	} else {
		max.Z = c.Z
	}
	return BoundingBox[T]{Min: min, Max: max}
}
