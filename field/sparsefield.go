package field

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// Mode selects how far a SparseSampler samples a tile. In both modes a
// tile's activity is decided from its eight corner samples; CORNERS stops
// there, while DENSE then samples every interior point of each active tile
// (spec.md §4.5).
type Mode int

const (
	CORNERS Mode = iota
	DENSE
)

// allowed leaf block sizes (spec.md §4.5).
var allowedBlockSizes = [...]int{4, 8, 16}

// ValidBlockSize reports whether b is one of the allowed leaf block sizes.
func ValidBlockSize(b int) bool {
	for _, v := range allowedBlockSizes {
		if v == b {
			return true
		}
	}
	return false
}

// Tile is one B³ leaf block of a SparseField. Inactive tiles carry only
// their eight corner samples and a constant sign marker; active tiles
// additionally carry a dense (B+1)³ sub-grid of interior samples.
type Tile[T scalar.Float] struct {
	TI, TJ, TK int
	Corners    [8]T
	Active     bool
	// ConstantSign is +1 or -1 when every corner sample agrees in sign
	// (the tile is entirely outside the narrow band and can be skipped
	// by marching cubes), or 0 when the tile straddles the band.
	ConstantSign int
	Dense        *ScalarField[T]
}

// SparseField is a shallow tile tree over a regular grid: the bounds are
// tiled into BlockSize³ leaf blocks, each evaluated at its corners first
// and promoted to a dense sub-grid only if it is "active" — its corner
// samples bracket the narrow band around Iso with half-width Epsilon
// (spec.md §4.5).
type SparseField[T scalar.Float] struct {
	Origin       geometry.Vec3[T]
	CellSize     T
	Nx, Ny, Nz   int
	BlockSize    int
	Mode         Mode
	Iso, Epsilon T

	ntx, nty, ntz int
	tiles         []Tile[T]
}

// NewSparseField allocates the tile tree's bookkeeping for a grid of
// nx*ny*nz samples, tiled at blockSize. blockSize must be one of {4,8,16}
// (spec.md §4.5); callers are expected to have validated this with
// ValidBlockSize before construction.
func NewSparseField[T scalar.Float](origin geometry.Vec3[T], cellSize T, nx, ny, nz, blockSize int, mode Mode, iso, epsilon T) *SparseField[T] {
	ntx := (nx + blockSize - 1) / blockSize
	nty := (ny + blockSize - 1) / blockSize
	ntz := (nz + blockSize - 1) / blockSize
	return &SparseField[T]{
		Origin:    origin,
		CellSize:  cellSize,
		Nx:        nx,
		Ny:        ny,
		Nz:        nz,
		BlockSize: blockSize,
		Mode:      mode,
		Iso:       iso,
		Epsilon:   epsilon,
		ntx:       ntx,
		nty:       nty,
		ntz:       ntz,
		tiles:     make([]Tile[T], ntx*nty*ntz),
	}
}

// Dims returns the grid's sample counts along each axis.
func (f *SparseField[T]) Dims() (nx, ny, nz int) { return f.Nx, f.Ny, f.Nz }

// TileCounts returns the number of tiles along each axis.
func (f *SparseField[T]) TileCounts() (ntx, nty, ntz int) { return f.ntx, f.nty, f.ntz }

func (f *SparseField[T]) tileIndex(ti, tj, tk int) int {
	return tk*f.ntx*f.nty + tj*f.ntx + ti
}

// TileAt returns the tile at tile-grid coordinate (ti,tj,tk).
func (f *SparseField[T]) TileAt(ti, tj, tk int) *Tile[T] {
	return &f.tiles[f.tileIndex(ti, tj, tk)]
}

// TileCornerGridCoord returns the global grid coordinate of tile
// (ti,tj,tk)'s corner c (0..7, same ordering as ScalarField.CellCorners),
// clamped to the field's actual dimensions since the last tile on an axis
// may be partial.
func (f *SparseField[T]) TileCornerGridCoord(ti, tj, tk, c int) (i, j, k int) {
	baseI, baseJ, baseK := ti*f.BlockSize, tj*f.BlockSize, tk*f.BlockSize
	var di, dj, dk int
	// corner ordering (000,100,110,010,001,101,111,011), matching
	// ScalarField.CellCorners.
	switch c {
	case 0:
		di, dj, dk = 0, 0, 0
	case 1:
		di, dj, dk = 1, 0, 0
	case 2:
		di, dj, dk = 1, 1, 0
	case 3:
		di, dj, dk = 0, 1, 0
	case 4:
		di, dj, dk = 0, 0, 1
	case 5:
		di, dj, dk = 1, 0, 1
	case 6:
		di, dj, dk = 1, 1, 1
	case 7:
		di, dj, dk = 0, 1, 1
	}
	i = clampInt(baseI+di*f.BlockSize, f.Nx-1)
	j = clampInt(baseJ+dj*f.BlockSize, f.Ny-1)
	k = clampInt(baseK+dk*f.BlockSize, f.Nz-1)
	return
}

func clampInt(v, max int) int {
	if v > max {
		return max
	}
	return v
}

// WorldPosition returns the world-space position of global grid
// coordinate (i,j,k).
func (f *SparseField[T]) WorldPosition(i, j, k int) geometry.Vec3[T] {
	return geometry.NewVec3(
		f.Origin.X+T(i)*f.CellSize,
		f.Origin.Y+T(j)*f.CellSize,
		f.Origin.Z+T(k)*f.CellSize,
	)
}

// SetCorners records a tile's eight corner samples and classifies it:
// active if the corners straddle [Iso-Epsilon, Iso+Epsilon], carrying a
// ConstantSign of 0 in that case; inactive (ConstantSign = sign of any
// corner) otherwise. Returns whether the tile should be densely sampled.
func (f *SparseField[T]) SetCorners(ti, tj, tk int, corners [8]T) bool {
	t := f.TileAt(ti, tj, tk)
	t.TI, t.TJ, t.TK = ti, tj, tk
	t.Corners = corners

	min, max := corners[0], corners[0]
	for _, c := range corners[1:] {
		min = scalar.Min(min, c)
		max = scalar.Max(max, c)
	}

	active := min <= f.Iso+f.Epsilon && max >= f.Iso-f.Epsilon
	t.Active = active
	if !active {
		if max < f.Iso {
			t.ConstantSign = -1
		} else {
			t.ConstantSign = 1
		}
	} else {
		t.ConstantSign = 0
	}
	return active
}

// AllocateDense gives an active tile its own (B+1)³ sub-grid, positioned
// in world space at the tile's minimum corner, for a sampler to fill with
// interior samples.
func (f *SparseField[T]) AllocateDense(ti, tj, tk int) *ScalarField[T] {
	t := f.TileAt(ti, tj, tk)
	baseI, baseJ, baseK := ti*f.BlockSize, tj*f.BlockSize, tk*f.BlockSize
	n := f.BlockSize + 1
	origin := f.WorldPosition(baseI, baseJ, baseK)
	t.Dense = NewScalarField(origin, f.CellSize, n, n, n)
	return t.Dense
}

// ConstantSignAt reports whether cell (i,j,k) lies entirely within a
// single inactive tile, and if so, that tile's constant sign. A marching
// cubes pass can skip any such cell outright: a tile classified inactive
// has no corner sample within epsilon of the isosurface, so no cell fully
// inside it can contain a crossing. Cells straddling a tile boundary
// report ok=false and must be evaluated normally.
func (f *SparseField[T]) ConstantSignAt(i, j, k int) (sign int, ok bool) {
	ti, tj, tk := i/f.BlockSize, j/f.BlockSize, k/f.BlockSize
	// the cell's far corner (i+1,j+1,k+1) must fall in the same tile.
	if (i+1)/f.BlockSize != ti || (j+1)/f.BlockSize != tj || (k+1)/f.BlockSize != tk {
		return 0, false
	}
	if ti >= f.ntx || tj >= f.nty || tk >= f.ntz {
		return 0, false
	}
	t := f.TileAt(ti, tj, tk)
	if t.Active || t.ConstantSign == 0 {
		return 0, false
	}
	return t.ConstantSign, true
}

// At returns the sampled value at global grid coordinate (i,j,k): the
// dense sub-grid's value for an active tile, or a trilinear interpolation
// of the tile's eight corners for an inactive one.
func (f *SparseField[T]) At(i, j, k int) T {
	ti, tj, tk := i/f.BlockSize, j/f.BlockSize, k/f.BlockSize
	if ti >= f.ntx {
		ti = f.ntx - 1
	}
	if tj >= f.nty {
		tj = f.nty - 1
	}
	if tk >= f.ntz {
		tk = f.ntz - 1
	}
	t := f.TileAt(ti, tj, tk)

	if t.Active && t.Dense != nil {
		li, lj, lk := i-ti*f.BlockSize, j-tj*f.BlockSize, k-tk*f.BlockSize
		return t.Dense.At(li, lj, lk)
	}
	return trilinearCorner(t.Corners, i-ti*f.BlockSize, j-tj*f.BlockSize, k-tk*f.BlockSize, f.BlockSize)
}

// trilinearCorner interpolates a tile's eight corner samples at local
// coordinate (li,lj,lk) within a block of the given size.
func trilinearCorner[T scalar.Float](corners [8]T, li, lj, lk, blockSize int) T {
	one := scalar.FromInt[T](1)
	size := scalar.FromInt[T](blockSize)
	u := scalar.FromInt[T](li) / size
	v := scalar.FromInt[T](lj) / size
	w := scalar.FromInt[T](lk) / size

	c000, c100, c110, c010 := corners[0], corners[1], corners[2], corners[3]
	c001, c101, c111, c011 := corners[4], corners[5], corners[6], corners[7]

	c00 := c000*(one-u) + c100*u
	c10 := c010*(one-u) + c110*u
	c01 := c001*(one-u) + c101*u
	c11 := c011*(one-u) + c111*u

	c0 := c00*(one-v) + c10*v
	c1 := c01*(one-v) + c11*v

	return c0*(one-w) + c1*w
}
