package catmull

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/subdiv/pkg/quadmesh"
)

// FacePoints returns the centroid of every quad, indexed like the
// quads themselves.
func FacePoints(vertices []v3.Vec, quads []quadmesh.Quad) []v3.Vec {
	points := make([]v3.Vec, len(quads))
	for i, q := range quads {
		sum := vertices[q[0]].Add(vertices[q[1]]).Add(vertices[q[2]]).Add(vertices[q[3]])
		points[i] = sum.DivScalar(quadmesh.QuadSize)
	}
	return points
}

// EdgePoints returns one smoothed point per edge, indexed like the
// edge list. An interior edge averages its two endpoints with both
// adjacent face points; a boundary edge averages its endpoints with
// its single adjacent face point.
func EdgePoints(vertices []v3.Vec, facePoints []v3.Vec, edges []Edge) []v3.Vec {
	points := make([]v3.Vec, len(edges))
	for i, e := range edges {
		sum := vertices[e.Lo].Add(vertices[e.Hi]).Add(facePoints[e.Faces[0]])
		if e.IsBoundary() {
			points[i] = sum.DivScalar(3)
			continue
		}
		points[i] = sum.Add(facePoints[e.Faces[1]]).DivScalar(4)
	}
	return points
}
