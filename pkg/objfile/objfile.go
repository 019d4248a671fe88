// Package objfile reads and writes quad meshes in Wavefront OBJ form.
// Only v and f records are interpreted; f records must have exactly
// four corners and may use the v/vt/vn corner syntax, of which only
// the vertex reference is kept. All other record types are ignored.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/subdiv/pkg/quadmesh"
)

// Read parses an OBJ stream into a quad mesh. Faces with a corner
// count other than four are rejected, as are vertex references
// outside the vertices read so far (negative references count back
// from the most recent vertex, per the OBJ convention).
func Read(r io.Reader) (*quadmesh.Mesh, error) {
	m := &quadmesh.Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vert, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objfile: line %d: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, vert)

		case "f":
			quad, err := parseQuad(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("objfile: line %d: %w", lineNo, err)
			}
			m.Quads = append(m.Quads, quad)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}

	return m, nil
}

// ReadFile reads a quad mesh from an OBJ file.
func ReadFile(path string) (*quadmesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func parseVertex(fields []string) (v3.Vec, error) {
	if len(fields) < 3 {
		return v3.Vec{}, fmt.Errorf("vertex record has %d coordinates, want 3", len(fields))
	}
	var coords [3]float64
	for i := 0; i < 3; i++ {
		c, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v3.Vec{}, fmt.Errorf("bad vertex coordinate %q", fields[i])
		}
		coords[i] = c
	}
	return v3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func parseQuad(fields []string, vertexCount int) (quadmesh.Quad, error) {
	var quad quadmesh.Quad
	if len(fields) != quadmesh.QuadSize {
		return quad, fmt.Errorf("face record has %d corners, want %d", len(fields), quadmesh.QuadSize)
	}
	for i, field := range fields {
		// Strip vt/vn references: "7/1/3" -> "7".
		ref, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return quad, fmt.Errorf("bad vertex reference %q", field)
		}
		switch {
		case idx > 0 && idx <= vertexCount:
			quad[i] = idx - 1
		case idx < 0 && -idx <= vertexCount:
			quad[i] = vertexCount + idx
		default:
			return quad, fmt.Errorf("vertex reference %d out of range, have %d vertices", idx, vertexCount)
		}
	}
	return quad, nil
}

// Write emits a quad mesh as OBJ v and f records.
func Write(w io.Writer, m *quadmesh.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, vert := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", vert.X, vert.Y, vert.Z)
	}
	for _, q := range m.Quads {
		fmt.Fprintf(bw, "f %d %d %d %d\n", q[0]+1, q[1]+1, q[2]+1, q[3]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("objfile: %w", err)
	}
	return nil
}

// WriteFile writes a quad mesh to an OBJ file.
func WriteFile(path string, m *quadmesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("objfile: %w", err)
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("objfile: %w", err)
	}
	return nil
}
