// Command subdiv applies Catmull-Clark subdivision passes to a quad
// mesh. Input is a Wavefront OBJ file or a generated primitive; the
// output format is chosen by the output file extension (.obj or .stl).
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/chazu/subdiv/pkg/catmull"
	"github.com/chazu/subdiv/pkg/objfile"
	"github.com/chazu/subdiv/pkg/quadmesh"
	"github.com/chazu/subdiv/pkg/stlfile"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("subdiv: ")

	in := flag.String("in", "", "input OBJ file (quad faces only)")
	out := flag.String("out", "", "output file, .obj or .stl")
	passes := flag.Int("passes", 1, "number of subdivision passes")
	primitive := flag.String("primitive", "", "generate input instead of reading a file: cube or plane")
	size := flag.Float64("size", 1.0, "edge/cell size for generated primitives")
	grid := flag.Int("grid", 4, "cells per side for the plane primitive")
	quiet := flag.Bool("q", false, "suppress per-pass statistics")
	flag.Parse()

	mesh, err := loadMesh(*in, *primitive, *size, *grid)
	if err != nil {
		log.Fatal(err)
	}
	if !*quiet {
		fmt.Printf("input: %d vertices, %d quads\n", mesh.VertexCount(), mesh.QuadCount())
	}

	for i := 1; i <= *passes; i++ {
		mesh, err = catmull.Subdivide(mesh)
		if err != nil {
			log.Fatalf("pass %d: %v", i, err)
		}
		if !*quiet {
			fmt.Printf("pass %d: %d vertices, %d quads\n", i, mesh.VertexCount(), mesh.QuadCount())
		}
	}

	if *out == "" {
		return
	}
	if err := saveMesh(*out, mesh); err != nil {
		log.Fatal(err)
	}
}

// loadMesh reads the input OBJ or generates the requested primitive.
func loadMesh(in, primitive string, size float64, grid int) (*quadmesh.Mesh, error) {
	switch {
	case in != "" && primitive != "":
		return nil, fmt.Errorf("-in and -primitive are mutually exclusive")
	case in != "":
		return objfile.ReadFile(in)
	case primitive == "cube":
		return quadmesh.Cube(size), nil
	case primitive == "plane":
		m := quadmesh.Plane(grid, grid, size)
		if m == nil {
			return nil, fmt.Errorf("-grid must be positive, got %d", grid)
		}
		return m, nil
	case primitive != "":
		return nil, fmt.Errorf("unknown primitive %q, want cube or plane", primitive)
	default:
		return nil, fmt.Errorf("no input: use -in or -primitive")
	}
}

// saveMesh writes the mesh in the format implied by the extension.
func saveMesh(path string, m *quadmesh.Mesh) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return objfile.WriteFile(path, m)
	case ".stl":
		return stlfile.SaveFile(path, m)
	default:
		return fmt.Errorf("unsupported output extension %q, want .obj or .stl", filepath.Ext(path))
	}
}
