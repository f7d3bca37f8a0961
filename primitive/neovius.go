package primitive

import "github.com/voxelforge/implicit/scalar"

// Neovius is the distance function of a Neovius triply periodic
// minimal-surface approximation (spec.md §6):
//
//	(3(cos kx·x + cos ky·y + cos kz·z) + 4 cos kx·x cos ky·y cos kz·z) / 10
//
// multiplied by scale = min(Lx,Ly,Lz)/2. When Linear is set the value is
// instead remapped through scale·asin(clamp(v,±1))/(π/2), as in Gyroid.
// Unlike Gyroid, the non-linear value is scaled too.
type Neovius[T scalar.Float] struct {
	LengthX, LengthY, LengthZ T
	Linear                    bool
}

// NewNeovius constructs a Neovius with independent period lengths.
func NewNeovius[T scalar.Float](lx, ly, lz T, linear bool) *Neovius[T] {
	return &Neovius[T]{LengthX: lx, LengthY: ly, LengthZ: lz, Linear: linear}
}

// NewNeoviusUniform constructs a Neovius with equal period length on all axes.
func NewNeoviusUniform[T scalar.Float](length T, linear bool) *Neovius[T] {
	return NewNeovius(length, length, length, linear)
}

// Eval implements model.ImplicitFunction.
func (n *Neovius[T]) Eval(x, y, z T) T {
	two := scalar.FromInt[T](2)
	three := scalar.FromInt[T](3)
	four := scalar.FromInt[T](4)
	ten := scalar.FromInt[T](10)

	kx := two * scalar.Pi[T]() * x / n.LengthX
	ky := two * scalar.Pi[T]() * y / n.LengthY
	kz := two * scalar.Pi[T]() * z / n.LengthZ

	cx, cy, cz := scalar.Cos(kx), scalar.Cos(ky), scalar.Cos(kz)
	normalized := (three*(cx+cy+cz) + four*cx*cy*cz) / ten

	scale := scalar.Min(scalar.Min(n.LengthX, n.LengthY), n.LengthZ) / two
	if !n.Linear {
		return scale * normalized
	}
	one := scalar.FromInt[T](1)
	return scale * scalar.Asin(scalar.Clamp(normalized, -one, one)) / (scalar.Pi[T]() / two)
}
