package primitive

import "github.com/voxelforge/implicit/scalar"

// SchwarzP is the distance function of a Schwarz-P triply periodic
// minimal-surface approximation (spec.md §6):
//
//	cos(kx·x) + cos(ky·y) + cos(kz·z), kᵢ=2π/Lᵢ
//
// multiplied by scale = min(Lx,Ly,Lz)/2. When Linear is set the raw value
// is instead remapped through scale·asin(clamp(v,±1))/(π/2), as in Gyroid.
// Unlike Gyroid, the non-linear value is scaled too.
type SchwarzP[T scalar.Float] struct {
	LengthX, LengthY, LengthZ T
	Linear                    bool
}

// NewSchwarzP constructs a SchwarzP with independent period lengths.
func NewSchwarzP[T scalar.Float](lx, ly, lz T, linear bool) *SchwarzP[T] {
	return &SchwarzP[T]{LengthX: lx, LengthY: ly, LengthZ: lz, Linear: linear}
}

// NewSchwarzPUniform constructs a SchwarzP with equal period length on all axes.
func NewSchwarzPUniform[T scalar.Float](length T, linear bool) *SchwarzP[T] {
	return NewSchwarzP(length, length, length, linear)
}

// Eval implements model.ImplicitFunction.
func (s *SchwarzP[T]) Eval(x, y, z T) T {
	two := scalar.FromInt[T](2)
	kx := two * scalar.Pi[T]() * x / s.LengthX
	ky := two * scalar.Pi[T]() * y / s.LengthY
	kz := two * scalar.Pi[T]() * z / s.LengthZ

	raw := scalar.Cos(kx) + scalar.Cos(ky) + scalar.Cos(kz)

	scale := scalar.Min(scalar.Min(s.LengthX, s.LengthY), s.LengthZ) / two
	if !s.Linear {
		return scale * raw
	}
	one := scalar.FromInt[T](1)
	return scale * scalar.Asin(scalar.Clamp(raw, -one, one)) / (scalar.Pi[T]() / two)
}
