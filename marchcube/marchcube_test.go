package marchcube_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voxelforge/implicit/field"
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/marchcube"
)

func sphereField(t *testing.T, n int, radius float64) *field.ScalarField[float64] {
	t.Helper()
	origin := geometry.NewVec3(-3.0, -3.0, -3.0)
	cell := 6.0 / float64(n-1)
	f := field.NewScalarField(origin, cell, n, n, n)
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				p := f.WorldPosition(i, j, k)
				d := math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z) - radius
				f.Set(i, j, k, d)
			}
		}
	}
	return f
}

func TestExtractProducesNonEmptyMeshCrossingSurface(t *testing.T) {
	f := sphereField(t, 12, 2.0)
	mesh := marchcube.Extract[float64](f, marchcube.Config[float64]{Iso: 0, Workers: 2})

	require.NotEmpty(t, mesh.Vertices)
	require.NotEmpty(t, mesh.Faces)
}

func TestExtractVerticesLieNearSphereRadius(t *testing.T) {
	radius := 2.0
	f := sphereField(t, 20, radius)
	mesh := marchcube.Extract[float64](f, marchcube.Config[float64]{Iso: 0, Workers: 4})

	require.NotEmpty(t, mesh.Vertices)
	for _, v := range mesh.Vertices {
		r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		require.InDelta(t, radius, r, 0.2)
	}
}

func TestExtractWithNaNCornerDoesNotPanic(t *testing.T) {
	f := sphereField(t, 8, 2.0)
	f.Set(3, 3, 3, math.NaN())

	require.NotPanics(t, func() {
		mesh := marchcube.Extract[float64](f, marchcube.Config[float64]{Iso: 0, Workers: 2})
		require.NotNil(t, mesh)
	})
}

func TestExtractOnUniformFieldProducesEmptyMesh(t *testing.T) {
	n := 6
	f := field.NewScalarField(geometry.NewVec3(0.0, 0.0, 0.0), 1.0, n, n, n)
	// every value above iso: no cell straddles the surface.
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				f.Set(i, j, k, 5.0)
			}
		}
	}
	mesh := marchcube.Extract[float64](f, marchcube.Config[float64]{Iso: 0})
	require.Empty(t, mesh.Faces)
}

func TestExtractWeldsSharedCellBoundaryVertices(t *testing.T) {
	f := sphereField(t, 12, 2.0)
	mesh := marchcube.Extract[float64](f, marchcube.Config[float64]{Iso: 0, Workers: 1})

	// every face index must resolve to a valid, distinct-from-siblings vertex.
	for _, face := range mesh.Faces {
		require.Less(t, face[0], len(mesh.Vertices))
		require.Less(t, face[1], len(mesh.Vertices))
		require.Less(t, face[2], len(mesh.Vertices))
		require.NotEqual(t, face[0], face[1])
		require.NotEqual(t, face[1], face[2])
		require.NotEqual(t, face[0], face[2])
	}

	// running extraction twice on the same field yields the same vertex count:
	// welding is deterministic, not accumulating duplicates across runs.
	mesh2 := marchcube.Extract[float64](f, marchcube.Config[float64]{Iso: 0, Workers: 1})
	require.Equal(t, len(mesh.Vertices), len(mesh2.Vertices))
}

func TestExtractSparseSkipsInactiveTiles(t *testing.T) {
	n := 16
	origin := geometry.NewVec3(-4.0, -4.0, -4.0)
	cell := 8.0 / float64(n-1)
	sf := field.NewSparseField(origin, cell, n, n, n, 4, field.DENSE, 0, 0.2)

	radius := 2.0
	for bk := 0; bk < n; bk += 4 {
		for bj := 0; bj < n; bj += 4 {
			for bi := 0; bi < n; bi += 4 {
				var corners [8]float64
				for c := 0; c < 8; c++ {
					off := [8][3]int{{0, 0, 0}, {4, 0, 0}, {4, 4, 0}, {0, 4, 0}, {0, 0, 4}, {4, 0, 4}, {4, 4, 4}, {0, 4, 4}}[c]
					gi, gj, gk := bi+off[0], bj+off[1], bk+off[2]
					if gi >= n {
						gi = n - 1
					}
					if gj >= n {
						gj = n - 1
					}
					if gk >= n {
						gk = n - 1
					}
					p := sf.WorldPosition(gi, gj, gk)
					d := math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z) - radius
					corners[c] = d
				}
				active := sf.SetCorners(bi/4, bj/4, bk/4, corners)
				if active {
					dense := sf.AllocateDense(bi/4, bj/4, bk/4)
					for k := 0; k < 5 && bk+k < n; k++ {
						for j := 0; j < 5 && bj+j < n; j++ {
							for i := 0; i < 5 && bi+i < n; i++ {
								p := sf.WorldPosition(bi+i, bj+j, bk+k)
								d := math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z) - radius
								dense.Set(i, j, k, d)
							}
						}
					}
				}
			}
		}
	}

	mesh := marchcube.ExtractSparse[float64](sf, marchcube.Config[float64]{Iso: 0, Workers: 2})
	require.NotEmpty(t, mesh.Vertices)
	for _, v := range mesh.Vertices {
		r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
		require.InDelta(t, radius, r, 0.6)
	}
}
