// Package catmull implements a single Catmull-Clark subdivision pass
// on quadrilateral meshes. Each call to Subdivide derives the edge
// topology of the input, computes face, edge and vertex points per the
// Catmull-Clark rules, and stitches them into a denser quad mesh.
// Callers apply the pass repeatedly for deeper refinement.
//
// The pass is a pure function: the input mesh is never mutated and
// identical input yields identical output.
package catmull

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/subdiv/pkg/quadmesh"
)

// NoFace marks the missing second face of a boundary edge.
const NoFace = -1

// Edge is an undirected mesh edge. Lo and Hi are the endpoint vertex
// indices in canonical order (Lo < Hi), so edge identity is
// independent of traversal direction. Faces holds the incident quad
// indices; boundary edges have Faces[1] == NoFace.
type Edge struct {
	Lo, Hi int
	Faces  [2]int
}

// IsBoundary reports whether the edge belongs to exactly one face.
func (e Edge) IsBoundary() bool {
	return e.Faces[1] == NoFace
}

// Midpoint returns the midpoint of the edge's endpoints.
func (e Edge) Midpoint(vertices []v3.Vec) v3.Vec {
	return vertices[e.Lo].Add(vertices[e.Hi]).MulScalar(0.5)
}

// Topology is the derived connectivity of a quad mesh: the unique
// undirected edge set plus, per vertex, the indices of the edges
// touching it. Built once by BuildTopology and read-only afterwards.
type Topology struct {
	Edges       []Edge
	VertexEdges [][]int // vertex index -> incident edge indices
}

// edgeKey identifies an edge by its canonically ordered endpoints.
// Used only during extraction; everything downstream works with edge
// indices.
type edgeKey struct {
	lo, hi int
}

func canonical(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// BuildTopology derives the unique edge set of the given quads
// together with per-vertex incident edge lists. Faces are scanned in
// order and corners in cyclic order, and edges are stored in
// first-encounter order, so the result is deterministic. An edge
// incident to more than two quads violates the manifold assumption
// and is reported as a NonManifoldEdgeError.
func BuildTopology(quads []quadmesh.Quad, vertexCount int) (*Topology, error) {
	topo := &Topology{
		Edges:       make([]Edge, 0, len(quads)*quadmesh.QuadSize),
		VertexEdges: make([][]int, vertexCount),
	}
	index := make(map[edgeKey]int, len(quads)*quadmesh.QuadSize)

	for fi, q := range quads {
		for j := 0; j < quadmesh.QuadSize; j++ {
			key := canonical(q[j], q[(j+1)%quadmesh.QuadSize])

			ei, seen := index[key]
			if !seen {
				ei = len(topo.Edges)
				index[key] = ei
				topo.Edges = append(topo.Edges, Edge{
					Lo:    key.lo,
					Hi:    key.hi,
					Faces: [2]int{fi, NoFace},
				})
				topo.VertexEdges[key.lo] = append(topo.VertexEdges[key.lo], ei)
				topo.VertexEdges[key.hi] = append(topo.VertexEdges[key.hi], ei)
				continue
			}

			e := &topo.Edges[ei]
			if e.Faces[1] != NoFace {
				return nil, NonManifoldEdgeError{V0: e.Lo, V1: e.Hi, Face: fi}
			}
			e.Faces[1] = fi
		}
	}

	return topo, nil
}

// EdgeCount returns the number of unique edges.
func (t *Topology) EdgeCount() int {
	return len(t.Edges)
}

// lookupEdge scans vertex a's incident edge list for the edge
// connecting a and b, returning its index.
func (t *Topology) lookupEdge(a, b int) (int, bool) {
	for _, ei := range t.VertexEdges[a] {
		e := t.Edges[ei]
		if (e.Lo == a && e.Hi == b) || (e.Lo == b && e.Hi == a) {
			return ei, true
		}
	}
	return 0, false
}
