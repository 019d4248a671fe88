package catmull

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/subdiv/pkg/quadmesh"
)

// stitch assembles the subdivided mesh. The output vertex array is the
// relocated original vertices followed by face points and edge points,
// each point appended on first use. Edge points are keyed by edge
// index, never by position, so a shared edge point is materialized
// exactly once even though both adjacent faces visit it.
//
// Each original face (v0,v1,v2,v3) yields four quads, one per corner:
// (corner, next-edge point, face point, previous-edge point). This
// preserves the winding of the original face.
func stitch(quads []quadmesh.Quad, relocated, facePoints, edgePoints []v3.Vec, topo *Topology) (*quadmesh.Mesh, error) {
	out := &quadmesh.Mesh{
		Vertices: make([]v3.Vec, 0, len(relocated)+len(facePoints)+len(edgePoints)),
		Quads:    make([]quadmesh.Quad, 0, len(quads)*quadmesh.QuadSize),
	}
	out.Vertices = append(out.Vertices, relocated...)

	// edgeVertex[ei] is the output vertex index assigned to edge ei's
	// edge point, or -1 until first use.
	edgeVertex := make([]int, len(edgePoints))
	for i := range edgeVertex {
		edgeVertex[i] = -1
	}
	materialize := func(ei int) int {
		if edgeVertex[ei] < 0 {
			edgeVertex[ei] = len(out.Vertices)
			out.Vertices = append(out.Vertices, edgePoints[ei])
		}
		return edgeVertex[ei]
	}

	for fi, q := range quads {
		c := len(out.Vertices)
		out.Vertices = append(out.Vertices, facePoints[fi])

		for j := 0; j < quadmesh.QuadSize; j++ {
			a := q[j]
			next := q[(j+1)%quadmesh.QuadSize]
			prev := q[(j+quadmesh.QuadSize-1)%quadmesh.QuadSize]

			nextEdge, ok := topo.lookupEdge(a, next)
			if !ok {
				return nil, StitchMismatchError{Face: fi, V0: a, V1: next}
			}
			prevEdge, ok := topo.lookupEdge(a, prev)
			if !ok {
				return nil, StitchMismatchError{Face: fi, V0: prev, V1: a}
			}

			b := materialize(nextEdge)
			d := materialize(prevEdge)
			out.Quads = append(out.Quads, quadmesh.Quad{a, b, c, d})
		}
	}

	return out, nil
}
