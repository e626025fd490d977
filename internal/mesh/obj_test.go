package mesh

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOBJ_TriangleWithUVs(t *testing.T) {
	path := writeOBJ(t, `
# a single textured triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`)

	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Vertices) != 3 || len(m.Faces) != 1 {
		t.Fatalf("got %d vertices, %d faces; want 3, 1", len(m.Vertices), len(m.Faces))
	}

	f := m.Faces[0]
	if f.A != 0 || f.B != 1 || f.C != 2 {
		t.Errorf("face indices = %d/%d/%d, want 0/1/2", f.A, f.B, f.C)
	}
	if f.BUV.U != 1 || f.CUV.V != 1 {
		t.Errorf("face UVs not carried: %+v", f)
	}
	if f.Color != 0xFFFFFFFF {
		t.Errorf("default face color = %#x, want white", f.Color)
	}
}

func TestLoadOBJ_QuadFanTriangulation(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Faces) != 2 {
		t.Fatalf("quad produced %d faces, want 2", len(m.Faces))
	}
	if m.Faces[0].A != 0 || m.Faces[0].B != 1 || m.Faces[0].C != 2 {
		t.Errorf("first fan triangle = %+v", m.Faces[0])
	}
	if m.Faces[1].A != 0 || m.Faces[1].B != 2 || m.Faces[1].C != 3 {
		t.Errorf("second fan triangle = %+v", m.Faces[1])
	}
}

func TestLoadOBJ_NegativeIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)

	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	f := m.Faces[0]
	if f.A != 0 || f.B != 1 || f.C != 2 {
		t.Errorf("negative indices resolved to %d/%d/%d, want 0/1/2", f.A, f.B, f.C)
	}
}

func TestLoadOBJ_NormalsIgnored(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`)

	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(m.Faces))
	}
}

func TestLoadOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"vertex index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"short vertex", "v 1 2\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"no vertices", "# empty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOBJ(t, tt.content)
			if _, err := LoadOBJ(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewCube(t *testing.T) {
	m := NewCube()

	if len(m.Vertices) != 8 {
		t.Errorf("cube has %d vertices, want 8", len(m.Vertices))
	}
	if len(m.Faces) != 12 {
		t.Errorf("cube has %d faces, want 12", len(m.Faces))
	}
	if got, want := m.Radius(), math.Sqrt(3); math.Abs(got-want) > 1e-12 {
		t.Errorf("cube radius = %v, want %v", got, want)
	}
	for i, f := range m.Faces {
		if f.A >= 8 || f.B >= 8 || f.C >= 8 {
			t.Errorf("face %d references missing vertex: %+v", i, f)
		}
	}
}
