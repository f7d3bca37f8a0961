package objio

import (
	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// Import assembles a geometry.Mesh[T] from a parsed document, fan-
// triangulating any face with more than three vertices (spec.md §6.3).
//
// Parameters:
//   - doc: a document produced by Parser.Parse/ParseReader
//
// Returns:
//   - *geometry.Mesh[T]: the assembled mesh
func Import[T scalar.Float](doc *document) *geometry.Mesh[T] {
	vertices := make([]geometry.Vec3[T], len(doc.positions))
	for i, p := range doc.positions {
		vertices[i] = geometry.NewVec3(T(p[0]), T(p[1]), T(p[2]))
	}

	var faces []geometry.Face
	for _, f := range doc.faces {
		for i := 1; i+1 < len(f); i++ {
			faces = append(faces, geometry.Face{f[0], f[i], f[i+1]})
		}
	}

	return geometry.NewMesh(vertices, faces)
}

// Load parses the OBJ file at path and imports it directly into a
// geometry.Mesh[T], the common case when the caller has no use for the
// intermediate document.
//
// Parameters:
//   - path: the OBJ file path
//
// Returns:
//   - *geometry.Mesh[T]: the imported mesh
//   - error: error if parsing fails
func Load[T scalar.Float](path string) (*geometry.Mesh[T], error) {
	p := NewParser()
	if err := p.Parse(path); err != nil {
		return nil, err
	}
	return Import[T](p.Document()), nil
}
