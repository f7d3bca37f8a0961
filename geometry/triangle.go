package geometry

import "github.com/voxelforge/implicit/scalar"

// Region identifies which feature of a triangle a closest-point projection
// landed on: the face interior, one of the three edges, or one of the
// three vertices. Which pseudonormal applies (spec.md §3) depends on this.
type Region int

const (
	RegionFace Region = iota
	RegionEdge01
	RegionEdge12
	RegionEdge20
	RegionVertex0
	RegionVertex1
	RegionVertex2
)

// Triangle is a triangle in 3-space with a lazily cached face normal.
type Triangle[T scalar.Float] struct {
	V          [3]Vec3[T]
	faceNormal *Vec3[T]
}

// NewTriangle constructs a Triangle from its three vertices, in winding
// order (v0, v1, v2).
func NewTriangle[T scalar.Float](v0, v1, v2 Vec3[T]) *Triangle[T] {
	return &Triangle[T]{V: [3]Vec3[T]{v0, v1, v2}}
}

// FaceNormal returns the triangle's (unit) face normal, computing and
// caching it on first use.
func (t *Triangle[T]) FaceNormal() Vec3[T] {
	if t.faceNormal != nil {
		return *t.faceNormal
	}
	e1 := t.V[1].Sub(t.V[0])
	e2 := t.V[2].Sub(t.V[0])
	n := e1.Cross(e2).Normalize()
	t.faceNormal = &n
	return n
}

// Area returns the triangle's surface area.
func (t *Triangle[T]) Area() T {
	e1 := t.V[1].Sub(t.V[0])
	e2 := t.V[2].Sub(t.V[0])
	return e1.Cross(e2).Length() * scalar.MustVal[T](0.5)
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t *Triangle[T]) Bounds() BoundingBox[T] {
	return NewBoundingBox(t.V[0], t.V[1]).Union(NewBoundingBox(t.V[2], t.V[2]))
}

// ClosestPoint projects q onto the triangle, returning the closest point
// and which feature (face interior, edge, or vertex) it landed on via
// barycentric projection with edge/vertex clamping.
func (t *Triangle[T]) ClosestPoint(q Vec3[T]) (Vec3[T], Region) {
	a, b, c := t.V[0], t.V[1], t.V[2]
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := q.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a, RegionVertex0
	}

	bp := q.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b, RegionVertex1
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Mul(v)), RegionEdge01
	}

	cp := q.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c, RegionVertex2
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Mul(w)), RegionEdge20
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w)), RegionEdge12
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w)), RegionFace
}

// VertexAngle returns the interior angle of the triangle at vertex index i
// (0, 1 or 2), used to weight the vertex's contribution to a solid-angle
// pseudonormal.
func (t *Triangle[T]) VertexAngle(i int) T {
	a := t.V[i]
	b := t.V[(i+1)%3]
	c := t.V[(i+2)%3]
	u := b.Sub(a).Normalize()
	v := c.Sub(a).Normalize()
	cos := scalar.Clamp(u.Dot(v), -1, 1)
	return scalar.Acos(cos)
}
