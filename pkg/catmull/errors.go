package catmull

import "fmt"

// NonManifoldEdgeError reports an edge shared by more than two faces.
// V0 and V1 are the edge's endpoint vertex indices in canonical order;
// Face is the quad that attached the third incidence.
type NonManifoldEdgeError struct {
	V0, V1 int
	Face   int
}

func (e NonManifoldEdgeError) Error() string {
	return fmt.Sprintf("non-manifold edge (%d,%d): already shared by two faces, face %d adds a third",
		e.V0, e.V1, e.Face)
}

// DanglingVertexError reports a vertex with no incident edges. The
// vertex rule divides by valence, so isolated vertices cannot be
// relocated.
type DanglingVertexError struct {
	Vertex int
}

func (e DanglingVertexError) Error() string {
	return fmt.Sprintf("dangling vertex %d: no incident edges", e.Vertex)
}

// StitchMismatchError reports a face corner whose boundary edge could
// not be found among the corner vertex's incident edges. This means
// the derived topology and the face list disagree.
type StitchMismatchError struct {
	Face   int
	V0, V1 int // endpoints of the edge that was expected to exist
}

func (e StitchMismatchError) Error() string {
	return fmt.Sprintf("stitch mismatch at face %d: no edge connects vertices %d and %d",
		e.Face, e.V0, e.V1)
}
