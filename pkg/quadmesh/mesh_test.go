package quadmesh_test

import (
	"errors"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/subdiv/pkg/quadmesh"
)

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		mesh      *quadmesh.Mesh
		wantVerts int
		wantQuads int
		wantEmpty bool
	}{
		{"zero value", &quadmesh.Mesh{}, 0, 0, true},
		{"vertices only", &quadmesh.Mesh{Vertices: make([]v3.Vec, 3)}, 3, 0, false},
		{"cube", quadmesh.Cube(1), 8, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
			if got := tt.mesh.QuadCount(); got != tt.wantQuads {
				t.Errorf("QuadCount() = %d, want %d", got, tt.wantQuads)
			}
			if got := tt.mesh.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantEmpty)
			}
		})
	}
}

func TestValidateOK(t *testing.T) {
	if err := quadmesh.Cube(1).Validate(); err != nil {
		t.Fatalf("Validate failed on cube: %v", err)
	}
	if err := (&quadmesh.Mesh{}).Validate(); err != nil {
		t.Fatalf("Validate failed on empty mesh: %v", err)
	}
}

func TestValidateOutOfRange(t *testing.T) {
	m := &quadmesh.Mesh{
		Vertices: make([]v3.Vec, 4),
		Quads:    []quadmesh.Quad{{0, 1, 2, 7}},
	}

	err := m.Validate()
	if err == nil {
		t.Fatal("expected error for out-of-range vertex index")
	}
	var mfe quadmesh.MalformedFaceError
	if !errors.As(err, &mfe) {
		t.Fatalf("error is %T, want MalformedFaceError", err)
	}
	if mfe.Face != 0 || mfe.Corner != 3 || mfe.Index != 7 {
		t.Errorf("got face %d corner %d index %d, want 0 3 7", mfe.Face, mfe.Corner, mfe.Index)
	}
}

func TestValidateNegativeIndex(t *testing.T) {
	m := &quadmesh.Mesh{
		Vertices: make([]v3.Vec, 4),
		Quads:    []quadmesh.Quad{{0, -1, 2, 3}},
	}

	var mfe quadmesh.MalformedFaceError
	if err := m.Validate(); !errors.As(err, &mfe) {
		t.Fatalf("got %v, want MalformedFaceError", err)
	}
	if mfe.Index != -1 {
		t.Errorf("got index %d, want -1", mfe.Index)
	}
}
