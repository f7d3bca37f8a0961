package objio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/voxelforge/implicit/geometry"
	"github.com/voxelforge/implicit/scalar"
)

// writerOptions holds Writer's configurable behavior.
type writerOptions struct {
	withNormals bool
}

// WriterOption is a functional option for Write/WriteFile, mirroring the
// teacher's LoaderBuilderOption pattern.
type WriterOption func(*writerOptions)

// WithNormals emits a `vn` line per vertex (from Mesh.VertexNormals) and
// references it from each face record. Off by default (spec.md §6.3).
func WithNormals() WriterOption {
	return func(o *writerOptions) { o.withNormals = true }
}

// Write serializes mesh to w as OBJ text: `v` lines, optional `vn` lines,
// and `f` lines with 1-based indices.
//
// Parameters:
//   - w: the destination writer
//   - mesh: the mesh to serialize
//   - opts: optional writer behavior overrides
//
// Returns:
//   - error: error if writing fails
func Write[T scalar.Float](w io.Writer, mesh *geometry.Mesh[T], opts ...WriterOption) error {
	o := writerOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	for _, v := range mesh.Vertices {
		if _, err := fmt.Fprintf(bw, "v %v %v %v\n", float64(v.X), float64(v.Y), float64(v.Z)); err != nil {
			return fmt.Errorf("objio: writing vertex: %w", err)
		}
	}

	if o.withNormals {
		for _, n := range mesh.VertexNormals() {
			if _, err := fmt.Fprintf(bw, "vn %v %v %v\n", float64(n.X), float64(n.Y), float64(n.Z)); err != nil {
				return fmt.Errorf("objio: writing normal: %w", err)
			}
		}
	}

	for _, f := range mesh.Faces {
		if o.withNormals {
			if _, err := fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
				f[0]+1, f[0]+1, f[1]+1, f[1]+1, f[2]+1, f[2]+1); err != nil {
				return fmt.Errorf("objio: writing face: %w", err)
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1); err != nil {
			return fmt.Errorf("objio: writing face: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes mesh to it as OBJ text.
//
// Parameters:
//   - path: destination file path
//   - mesh: the mesh to serialize
//   - opts: optional writer behavior overrides
//
// Returns:
//   - error: error if the file cannot be created or writing fails
func WriteFile[T scalar.Float](path string, mesh *geometry.Mesh[T], opts ...WriterOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objio: creating %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, mesh, opts...)
}
