package catmull

import v3 "github.com/deadsy/sdfx/vec/v3"

// RelocateVertices computes the new position of every original vertex
// using the Catmull-Clark vertex rule
//
//	(F + 2R + (n-3)P) / n
//
// where n is the vertex valence, F the mean of the incident faces'
// face points, R the mean of the incident edges' midpoints (taken
// from original positions) and P the original position. Boundary
// vertices use the same rule with their naturally reduced face and
// edge counts; there is no separate crease rule. A vertex with no
// incident edges yields a DanglingVertexError.
func RelocateVertices(vertices []v3.Vec, topo *Topology, facePoints []v3.Vec) ([]v3.Vec, error) {
	relocated := make([]v3.Vec, len(vertices))

	for v := range vertices {
		incident := topo.VertexEdges[v]
		n := len(incident)
		if n == 0 {
			return nil, DanglingVertexError{Vertex: v}
		}

		// Accumulate face points once per incident edge occurrence. A
		// face touching v does so through two of its edges, so its
		// point is added twice, but the count doubles in lockstep and
		// the mean stays the mean over distinct incident faces.
		var faceSum, midSum v3.Vec
		faceCount := 0
		for _, ei := range incident {
			e := topo.Edges[ei]
			faceSum = faceSum.Add(facePoints[e.Faces[0]])
			faceCount++
			if !e.IsBoundary() {
				faceSum = faceSum.Add(facePoints[e.Faces[1]])
				faceCount++
			}
			midSum = midSum.Add(e.Midpoint(vertices))
		}

		f := faceSum.DivScalar(float64(faceCount))
		r := midSum.DivScalar(float64(n))
		p := vertices[v]
		relocated[v] = f.Add(r.MulScalar(2)).Add(p.MulScalar(float64(n - 3))).DivScalar(float64(n))
	}

	return relocated, nil
}
