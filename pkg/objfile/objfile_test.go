package objfile_test

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/chazu/subdiv/pkg/objfile"
	"github.com/chazu/subdiv/pkg/quadmesh"
)

func TestRoundTrip(t *testing.T) {
	m := quadmesh.Cube(2.5)

	var buf bytes.Buffer
	if err := objfile.Write(&buf, m); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := objfile.Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Error("round trip changed the mesh")
	}
}

func TestReadBasic(t *testing.T) {
	src := `# comment
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
f 1 2 3 4
`
	m, err := objfile.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got := m.VertexCount(); got != 4 {
		t.Errorf("VertexCount() = %d, want 4", got)
	}
	if got := m.QuadCount(); got != 1 {
		t.Errorf("QuadCount() = %d, want 1", got)
	}
	if want := (quadmesh.Quad{0, 1, 2, 3}); m.Quads[0] != want {
		t.Errorf("quad = %v, want %v", m.Quads[0], want)
	}
}

func TestReadCornerSyntax(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1/1/1 2/2/1 3/3/1 4/4/1
`
	m, err := objfile.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if want := (quadmesh.Quad{0, 1, 2, 3}); m.Quads[0] != want {
		t.Errorf("quad = %v, want %v", m.Quads[0], want)
	}
}

func TestReadNegativeReferences(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f -4 -3 -2 -1
`
	m, err := objfile.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if want := (quadmesh.Quad{0, 1, 2, 3}); m.Quads[0] != want {
		t.Errorf("quad = %v, want %v", m.Quads[0], want)
	}
}

func TestReadRejectsNonQuadFaces(t *testing.T) {
	tests := []struct {
		name string
		face string
	}{
		{"triangle", "f 1 2 3"},
		{"pentagon", "f 1 2 3 4 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\n" + tt.face + "\n"
			if _, err := objfile.Read(strings.NewReader(src)); err == nil {
				t.Error("expected error for non-quad face")
			}
		})
	}
}

func TestReadRejectsBadReference(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 9\n"
	if _, err := objfile.Read(strings.NewReader(src)); err == nil {
		t.Error("expected error for out-of-range vertex reference")
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.obj")
	m := quadmesh.Plane(3, 2, 1.5)

	if err := objfile.WriteFile(path, m); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := objfile.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Error("file round trip changed the mesh")
	}
}
