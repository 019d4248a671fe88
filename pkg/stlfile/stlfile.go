// Package stlfile exports quad meshes as binary STL through the sdfx
// render package. STL has no quad primitive, so each quad is split
// along its (0,2) diagonal into two triangles that keep the quad's
// winding.
package stlfile

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/chazu/subdiv/pkg/quadmesh"
)

// Triangles converts a quad mesh into sdfx render triangles, two per
// quad.
func Triangles(m *quadmesh.Mesh) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, len(m.Quads)*2)
	for _, q := range m.Quads {
		a := m.Vertices[q[0]]
		b := m.Vertices[q[1]]
		c := m.Vertices[q[2]]
		d := m.Vertices[q[3]]
		tris = append(tris,
			&sdf.Triangle3{a, b, c},
			&sdf.Triangle3{a, c, d},
		)
	}
	return tris
}

// SaveFile validates the mesh and writes it to a binary STL file.
func SaveFile(path string, m *quadmesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("stlfile: %w", err)
	}
	if err := render.SaveSTL(path, Triangles(m)); err != nil {
		return fmt.Errorf("stlfile: %w", err)
	}
	return nil
}
