// Package objio reads and writes the Wavefront OBJ subset this module
// needs: `v x y z` position lines and `f i j k [l]` face lines (quads
// triangulated fan-wise), with no material/texture/normal parsing on read
// (spec.md §6.3). Structurally mirrors the teacher's gltf loader's
// parser/importer split: Parse tokenizes lines into a document, Import
// assembles a geometry.Mesh from it.
package objio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Common errors returned by the parser.
var (
	errMalformedVertex = errors.New("objio: malformed v line")
	errMalformedFace   = errors.New("objio: malformed f line")
	errDegenerateFace  = errors.New("objio: face references fewer than 3 vertices")
)

// document is the tokenized, not-yet-typed form of an OBJ file: one
// []float64 triple per v line, one []int per f line (0-based after
// resolving OBJ's 1-based indices).
type document struct {
	positions [][3]float64
	faces     [][]int
}

// objParser is the implementation of the Parser interface.
type objParser struct {
	doc *document
}

// Parser tokenizes an OBJ file or stream into a document, exactly the way
// the teacher's gltfParser tokenizes glTF JSON before gltfImporter
// assembles engine types from it.
type Parser interface {
	// Parse reads and tokenizes the OBJ file at path.
	Parse(path string) error

	// ParseReader tokenizes OBJ text from an arbitrary reader.
	ParseReader(r io.Reader) error

	// Document returns the most recently parsed document, or nil if Parse
	// has not been called successfully.
	Document() *document
}

var _ Parser = &objParser{}

// NewParser constructs an empty Parser.
func NewParser() Parser {
	return &objParser{}
}

func (p *objParser) Parse(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("objio: opening %s: %w", path, err)
	}
	defer f.Close()
	return p.ParseReader(f)
}

func (p *objParser) ParseReader(r io.Reader) error {
	doc := &document{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			pos, err := parseVertex(fields[1:])
			if err != nil {
				return fmt.Errorf("objio: line %d: %w", lineNo, err)
			}
			doc.positions = append(doc.positions, pos)
		case "f":
			face, err := parseFace(fields[1:], len(doc.positions))
			if err != nil {
				return fmt.Errorf("objio: line %d: %w", lineNo, err)
			}
			doc.faces = append(doc.faces, face)
		default:
			// Every other OBJ record (vt, vn, usemtl, o, g, s, mtllib, ...)
			// is outside this subset's contract and is ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("objio: reading: %w", err)
	}
	p.doc = doc
	return nil
}

func (p *objParser) Document() *document {
	return p.doc
}

func parseVertex(fields []string) ([3]float64, error) {
	var out [3]float64
	if len(fields) < 3 {
		return out, errMalformedVertex
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, fmt.Errorf("%w: %v", errMalformedVertex, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseFace parses an OBJ face record's vertex-index group (each of which
// may carry /vt/vn suffixes, which this subset ignores) into 0-based vertex
// indices, validating them against vertexCount.
func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, errDegenerateFace
	}
	out := make([]int, len(fields))
	for i, tok := range fields {
		idxStr := tok
		if slash := strings.IndexByte(tok, '/'); slash >= 0 {
			idxStr = tok[:slash]
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformedFace, err)
		}
		if idx < 0 {
			// negative OBJ indices count back from the current vertex list.
			idx = vertexCount + idx + 1
		}
		if idx < 1 || idx > vertexCount {
			return nil, fmt.Errorf("%w: index %d out of range (%d vertices so far)", errMalformedFace, idx, vertexCount)
		}
		out[i] = idx - 1
	}
	return out, nil
}
