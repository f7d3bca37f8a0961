package geometry

import (
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/voxelforge/implicit/scalar"
)

// Face is a triangular face referencing three vertex indices into a Mesh's
// vertex list.
type Face [3]int

// Mesh is an indexed triangle mesh: a vertex list plus a face list of index
// triples, with optional cached vertex normals.
type Mesh[T scalar.Float] struct {
	Vertices []Vec3[T]
	Faces    []Face

	normals []Vec3[T]
}

// NewMesh constructs a Mesh from a vertex list and a face list. The face
// list is not validated against the vertex list here; AsTriangles and
// ComputeOctree will panic on out-of-range indices, matching the teacher's
// "trust internal invariants, validate only at the boundary" posture (OBJ
// import is the boundary and does validate).
func NewMesh[T scalar.Float](vertices []Vec3[T], faces []Face) *Mesh[T] {
	return &Mesh[T]{Vertices: vertices, Faces: faces}
}

// Bounds returns the axis-aligned bounding box of every vertex in the mesh.
//
// Returns:
//   - BoundingBox[T]: the mesh's bounds; zero-valued if the mesh has no vertices
func (m *Mesh[T]) Bounds() BoundingBox[T] {
	if len(m.Vertices) == 0 {
		return BoundingBox[T]{}
	}
	bb := NewBoundingBox(m.Vertices[0], m.Vertices[0])
	for _, v := range m.Vertices[1:] {
		bb = bb.Union(NewBoundingBox(v, v))
	}
	return bb
}

// AsTriangles materializes a Triangle for each face, sharing no state with
// the mesh's own vertex slice (each Triangle owns a copy of its vertices so
// octree payloads remain valid independent of subsequent mesh edits).
//
// Returns:
//   - []*Triangle[T]: one triangle per face, in face order
func (m *Mesh[T]) AsTriangles() []*Triangle[T] {
	out := make([]*Triangle[T], len(m.Faces))
	for i, f := range m.Faces {
		out[i] = NewTriangle(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
	}
	return out
}

// VertexNormals returns the mesh's cached vertex normals, computing them
// with ComputeVertexNormals first if absent.
func (m *Mesh[T]) VertexNormals() []Vec3[T] {
	if m.normals == nil {
		m.ComputeVertexNormals()
	}
	return m.normals
}

// ComputeVertexNormals computes area-weighted vertex normals: each face
// contributes its (unnormalized, hence area-proportional) cross product to
// every one of its three vertices, and the accumulated vector is
// normalized per vertex. Runs serially; see ComputeVertexNormalsPar for the
// data-parallel variant.
func (m *Mesh[T]) ComputeVertexNormals() {
	acc := make([]Vec3[T], len(m.Vertices))
	for _, f := range m.Faces {
		v0, v1, v2 := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		weighted := v1.Sub(v0).Cross(v2.Sub(v0))
		acc[f[0]] = acc[f[0]].Add(weighted)
		acc[f[1]] = acc[f[1]].Add(weighted)
		acc[f[2]] = acc[f[2]].Add(weighted)
	}
	for i, n := range acc {
		if n.LengthSquared() == 0 {
			continue
		}
		acc[i] = n.Normalize()
	}
	m.normals = acc
}

// ComputeVertexNormalsPar is the data-parallel counterpart of
// ComputeVertexNormals: per-face contributions are accumulated into
// goroutine-local buffers (no shared-write contention) and reduced
// serially, then the per-vertex normalization is fanned out across a
// worker pool since it touches no shared state. Grounded on the same
// fan-out/WaitGroup-barrier shape engine/scene used for per-frame animator
// prep (see sampler package).
//
// Parameters:
//   - workers: number of worker goroutines to use; values <= 1 fall back to
//     the serial path
func (m *Mesh[T]) ComputeVertexNormalsPar(workers int) {
	if workers <= 1 || len(m.Faces) < workers*64 {
		m.ComputeVertexNormals()
		return
	}

	partials := make([][]Vec3[T], workers)
	var wg sync.WaitGroup
	chunk := (len(m.Faces) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= len(m.Faces) {
			partials[w] = nil
			continue
		}
		if end > len(m.Faces) {
			end = len(m.Faces)
		}
		partials[w] = make([]Vec3[T], len(m.Vertices))
		wg.Add(1)
		go func(faces []Face, acc []Vec3[T]) {
			defer wg.Done()
			for _, f := range faces {
				v0, v1, v2 := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
				weighted := v1.Sub(v0).Cross(v2.Sub(v0))
				acc[f[0]] = acc[f[0]].Add(weighted)
				acc[f[1]] = acc[f[1]].Add(weighted)
				acc[f[2]] = acc[f[2]].Add(weighted)
			}
		}(m.Faces[start:end], partials[w])
	}
	wg.Wait()

	acc := make([]Vec3[T], len(m.Vertices))
	for _, p := range partials {
		for i, v := range p {
			acc[i] = acc[i].Add(v)
		}
	}

	pool := worker.NewDynamicWorkerPool(workers, len(m.Vertices), 0)
	var normWg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * ((len(acc) + workers - 1) / workers)
		end := start + ((len(acc) + workers - 1) / workers)
		if start >= len(acc) {
			continue
		}
		if end > len(acc) {
			end = len(acc)
		}
		normWg.Add(1)
		s, e := start, end
		pool.SubmitTask(worker.Task{
			ID: w,
			Do: func() (any, error) {
				defer normWg.Done()
				for i := s; i < e; i++ {
					if acc[i].LengthSquared() == 0 {
						continue
					}
					acc[i] = acc[i].Normalize()
				}
				return nil, nil
			},
		})
	}
	normWg.Wait()

	m.normals = acc
}

// edgeKey is an undirected key for a mesh edge, used to find the (at most
// two, for a manifold mesh) faces sharing it.
type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// ComputeOctree builds an Octree of SDFTriangle payloads suitable for the
// mesh signed-distance oracle (package meshsdf). Per-triangle edge and
// vertex pseudonormals (Baerentzen–Aanaes) are precomputed here so octree
// queries are read-only and trivially parallelizable (spec.md §4.3).
//
// Parameters:
//   - maxDepth: maximum octree subdivision depth
//   - maxTrianglesPerLeaf: subdivide while a leaf holds more triangles than this
//
// Returns:
//   - *Octree[*SDFTriangle[T], T]: the constructed spatial index
func (m *Mesh[T]) ComputeOctree(maxDepth, maxTrianglesPerLeaf int) *Octree[*SDFTriangle[T], T] {
	tris := m.AsTriangles()

	faceNormals := make([]Vec3[T], len(tris))
	for i, t := range tris {
		faceNormals[i] = t.FaceNormal()
	}

	// Vertex pseudonormals: angle-weighted sum of incident face normals.
	vertexNormal := make([]Vec3[T], len(m.Vertices))
	for fi, f := range m.Faces {
		for corner := 0; corner < 3; corner++ {
			w := tris[fi].VertexAngle(corner)
			vertexNormal[f[corner]] = vertexNormal[f[corner]].Add(faceNormals[fi].Mul(w))
		}
	}
	for i, n := range vertexNormal {
		if n.LengthSquared() != 0 {
			vertexNormal[i] = n.Normalize()
		}
	}

	// Edge pseudonormals: mean of the (up to two) adjacent face normals.
	edgeFaces := make(map[edgeKey][]int, len(m.Faces)*3/2)
	edgeOf := func(f Face, i int) (int, int) { return f[i], f[(i+1)%3] }
	for fi, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := edgeOf(f, i)
			k := newEdgeKey(a, b)
			edgeFaces[k] = append(edgeFaces[k], fi)
		}
	}
	edgeNormal := make(map[edgeKey]Vec3[T], len(edgeFaces))
	for k, faces := range edgeFaces {
		var sum Vec3[T]
		for _, fi := range faces {
			sum = sum.Add(faceNormals[fi])
		}
		if sum.LengthSquared() != 0 {
			sum = sum.Normalize()
		}
		edgeNormal[k] = sum
	}

	payloads := make([]*SDFTriangle[T], len(tris))
	for fi, f := range m.Faces {
		var vn [3]Vec3[T]
		var en [3]Vec3[T]
		for i := 0; i < 3; i++ {
			vn[i] = vertexNormal[f[i]]
			a, b := edgeOf(f, i)
			en[i] = edgeNormal[newEdgeKey(a, b)]
		}
		payloads[fi] = &SDFTriangle[T]{
			Triangle:     tris[fi],
			VertexNormal: vn,
			EdgeNormal:   en,
		}
	}

	return NewOctree[*SDFTriangle[T], T](m.Bounds().Offset(scalar.MustVal[T](1e-4)), payloads, maxDepth, maxTrianglesPerLeaf)
}
