package quadmesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// Plane returns a flat rectangular grid of nx by ny quads in the z=0
// plane, with square cells of the given size and the minimum corner at
// the origin. Quads wind counter-clockwise viewed from +z. Returns nil
// if nx or ny is not positive.
func Plane(nx, ny int, size float64) *Mesh {
	if nx <= 0 || ny <= 0 {
		return nil
	}

	m := &Mesh{
		Vertices: make([]v3.Vec, 0, (nx+1)*(ny+1)),
		Quads:    make([]Quad, 0, nx*ny),
	}

	for y := 0; y <= ny; y++ {
		for x := 0; x <= nx; x++ {
			m.Vertices = append(m.Vertices, v3.Vec{
				X: float64(x) * size,
				Y: float64(y) * size,
			})
		}
	}

	// Vertex index of grid position (x, y) is y*(nx+1)+x.
	stride := nx + 1
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			v0 := y*stride + x
			m.Quads = append(m.Quads, Quad{v0, v0 + 1, v0 + 1 + stride, v0 + stride})
		}
	}

	return m
}

// Cube returns a closed axis-aligned cube of the given edge length
// with its minimum corner at the origin: 8 vertices, 6 quads, all
// winding outward.
func Cube(size float64) *Mesh {
	s := size
	return &Mesh{
		Vertices: []v3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: s, Y: 0, Z: 0},
			{X: s, Y: s, Z: 0},
			{X: 0, Y: s, Z: 0},
			{X: 0, Y: 0, Z: s},
			{X: s, Y: 0, Z: s},
			{X: s, Y: s, Z: s},
			{X: 0, Y: s, Z: s},
		},
		Quads: []Quad{
			{0, 3, 2, 1}, // bottom, normal -z
			{4, 5, 6, 7}, // top, normal +z
			{0, 1, 5, 4}, // front, normal -y
			{2, 3, 7, 6}, // back, normal +y
			{0, 4, 7, 3}, // left, normal -x
			{1, 2, 6, 5}, // right, normal +x
		},
	}
}
