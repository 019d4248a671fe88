package catmull

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/subdiv/pkg/quadmesh"
)

func TestStitchMismatch(t *testing.T) {
	// Topology derived from one quad, stitched against a face list
	// that references an edge the topology never saw.
	topoQuads := []quadmesh.Quad{{0, 1, 2, 3}}
	topo, err := BuildTopology(topoQuads, 5)
	if err != nil {
		t.Fatalf("BuildTopology failed: %v", err)
	}

	relocated := make([]v3.Vec, 5)
	facePoints := make([]v3.Vec, 1)
	edgePoints := make([]v3.Vec, topo.EdgeCount())

	_, err = stitch([]quadmesh.Quad{{0, 1, 2, 4}}, relocated, facePoints, edgePoints, topo)
	if err == nil {
		t.Fatal("expected stitch mismatch error")
	}
	var sme StitchMismatchError
	if !errors.As(err, &sme) {
		t.Fatalf("error is %T, want StitchMismatchError", err)
	}
	if sme.Face != 0 {
		t.Errorf("got face %d, want 0", sme.Face)
	}
}
