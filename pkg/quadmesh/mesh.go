// Package quadmesh defines the quadrilateral mesh container shared by
// the subdivision core and the file format helpers. A mesh is a flat
// vertex position array plus quads of exactly four vertex indices in
// cyclic order.
package quadmesh

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// QuadSize is the number of corners in every face.
const QuadSize = 4

// Quad holds four vertex indices in cyclic order. Consecutive corners
// (wrapping around) form the face's four boundary edges.
type Quad [QuadSize]int

// Mesh is a quad mesh: vertex positions plus quads indexing into them.
// The zero value is an empty mesh.
type Mesh struct {
	Vertices []v3.Vec
	Quads    []Quad
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// QuadCount returns the number of faces.
func (m *Mesh) QuadCount() int {
	return len(m.Quads)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// MalformedFaceError reports a quad corner referencing a vertex index
// outside the mesh's vertex array.
type MalformedFaceError struct {
	Face        int // offending quad index
	Corner      int // offending corner within the quad (0..3)
	Index       int // vertex index the corner holds
	VertexCount int
}

func (e MalformedFaceError) Error() string {
	return fmt.Sprintf("malformed face %d: corner %d references vertex %d, mesh has %d vertices",
		e.Face, e.Corner, e.Index, e.VertexCount)
}

// Validate checks that every quad references only existing vertices.
// The Quad type fixes the corner count at four, so out-of-range
// indices are the only way a face can be malformed. Read-only.
func (m *Mesh) Validate() error {
	for fi, q := range m.Quads {
		for j, vi := range q {
			if vi < 0 || vi >= len(m.Vertices) {
				return MalformedFaceError{
					Face:        fi,
					Corner:      j,
					Index:       vi,
					VertexCount: len(m.Vertices),
				}
			}
		}
	}
	return nil
}
