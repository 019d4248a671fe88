package catmull

import "github.com/chazu/subdiv/pkg/quadmesh"

// Subdivide applies one Catmull-Clark refinement pass to a quad mesh
// and returns the refined mesh. For valid input with V vertices, F
// faces and E edges the result has exactly V+F+E vertices and 4F
// quads. The input mesh is never mutated.
//
// Errors: quadmesh.MalformedFaceError for out-of-range corner
// indices, NonManifoldEdgeError for an edge shared by more than two
// faces, DanglingVertexError for a vertex with no incident edges, and
// StitchMismatchError when the face list and derived topology
// disagree. All fail the whole pass; no partial mesh is returned.
func Subdivide(m *quadmesh.Mesh) (*quadmesh.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	topo, err := BuildTopology(m.Quads, m.VertexCount())
	if err != nil {
		return nil, err
	}

	facePoints := FacePoints(m.Vertices, m.Quads)
	edgePoints := EdgePoints(m.Vertices, facePoints, topo.Edges)

	relocated, err := RelocateVertices(m.Vertices, topo, facePoints)
	if err != nil {
		return nil, err
	}

	return stitch(m.Quads, relocated, facePoints, edgePoints, topo)
}
