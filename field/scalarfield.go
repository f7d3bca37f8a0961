// Package field implements the sampled voxel grids an ImplicitModel is
// discretized onto: the dense ScalarField and the narrow-band
// SparseField, plus Laplacian smoothing and domain capping (spec.md §4.4,
// §4.5).
package field

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// ScalarField is a dense regular grid of sampled values stored in k-j-i
// order (k outer, i inner): index = k*nx*ny + j*nx + i. Allocated by a
// Sampler, mutated only during sampling and smoothing, consumed by
// marching cubes.
type ScalarField[T scalar.Float] struct {
	Origin     geometry.Vec3[T]
	CellSize   T
	Nx, Ny, Nz int
	Values     []T
}

// NewScalarField allocates a zero-valued dense field of the given
// dimensions.
func NewScalarField[T scalar.Float](origin geometry.Vec3[T], cellSize T, nx, ny, nz int) *ScalarField[T] {
	return &ScalarField[T]{
		Origin:   origin,
		CellSize: cellSize,
		Nx:       nx,
		Ny:       ny,
		Nz:       nz,
		Values:   make([]T, nx*ny*nz),
	}
}

// Dims returns the grid's sample counts along each axis.
func (f *ScalarField[T]) Dims() (nx, ny, nz int) { return f.Nx, f.Ny, f.Nz }

// Index converts a 3D grid coordinate into the linear buffer index.
func (f *ScalarField[T]) Index(i, j, k int) int {
	return k*f.Nx*f.Ny + j*f.Nx + i
}

// Coord converts a linear buffer index back into its 3D grid coordinate.
func (f *ScalarField[T]) Coord(index int) (i, j, k int) {
	k = index / (f.Nx * f.Ny)
	rem := index - k*f.Nx*f.Ny
	j = rem / f.Nx
	i = rem % f.Nx
	return
}

// WorldPosition returns the world-space sample point for grid coordinate
// (i,j,k): origin + (i*dx, j*dy, k*dz).
func (f *ScalarField[T]) WorldPosition(i, j, k int) geometry.Vec3[T] {
	return geometry.NewVec3(
		f.Origin.X+T(i)*f.CellSize,
		f.Origin.Y+T(j)*f.CellSize,
		f.Origin.Z+T(k)*f.CellSize,
	)
}

// At returns the sampled value at grid coordinate (i,j,k).
func (f *ScalarField[T]) At(i, j, k int) T {
	return f.Values[f.Index(i, j, k)]
}

// Set writes a sampled value at grid coordinate (i,j,k).
func (f *ScalarField[T]) Set(i, j, k int, v T) {
	f.Values[f.Index(i, j, k)] = v
}

// CellCorners returns the 8 linear indices of the cell whose min corner is
// grid coordinate (i,j,k), in the order marching cubes expects:
// (000,100,110,010,001,101,111,011).
func (f *ScalarField[T]) CellCorners(i, j, k int) [8]int {
	return [8]int{
		f.Index(i, j, k),
		f.Index(i+1, j, k),
		f.Index(i+1, j+1, k),
		f.Index(i, j+1, k),
		f.Index(i, j, k+1),
		f.Index(i+1, j, k+1),
		f.Index(i+1, j+1, k+1),
		f.Index(i, j+1, k+1),
	}
}

// Cap forces the six outer faces of the grid to a large positive value so
// the extracted surface closes at the domain boundary (spec.md §4.4).
func (f *ScalarField[T]) Cap() {
	const largeValue = 1e6
	large := scalar.MustVal[T](largeValue)
	for k := 0; k < f.Nz; k++ {
		for j := 0; j < f.Ny; j++ {
			for i := 0; i < f.Nx; i++ {
				if i == 0 || j == 0 || k == 0 || i == f.Nx-1 || j == f.Ny-1 || k == f.Nz-1 {
					f.Set(i, j, k, large)
				}
			}
		}
	}
}

// Smooth applies smoothingIter passes of Laplacian smoothing with factor
// alpha: each interior cell becomes v + alpha*(mean(6-neighbors) - v).
// Boundary cells are left untouched. Every pass reads from one buffer and
// writes to another (ping-pong) so no cell ever reads a value already
// updated this pass (spec.md §4.4).
func (f *ScalarField[T]) Smooth(alpha T, smoothingIter int) {
	if smoothingIter <= 0 {
		return
	}
	size := f.Nx * f.Ny * f.Nz
	front := f.Values
	back := make([]T, size)
	six := scalar.FromInt[T](6)

	for pass := 0; pass < smoothingIter; pass++ {
		for k := 0; k < f.Nz; k++ {
			for j := 0; j < f.Ny; j++ {
				for i := 0; i < f.Nx; i++ {
					idx := f.Index(i, j, k)
					if i == 0 || j == 0 || k == 0 || i == f.Nx-1 || j == f.Ny-1 || k == f.Nz-1 {
						back[idx] = front[idx]
						continue
					}
					sum := front[f.Index(i-1, j, k)] + front[f.Index(i+1, j, k)] +
						front[f.Index(i, j-1, k)] + front[f.Index(i, j+1, k)] +
						front[f.Index(i, j, k-1)] + front[f.Index(i, j, k+1)]
					mean := sum / six
					v := front[idx]
					back[idx] = v + alpha*(mean-v)
				}
			}
		}
		front, back = back, front
	}
	f.Values = front
}
