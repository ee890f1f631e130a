package model

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRadialNormals(t *testing.T) {
	positions := []float32{
		1, 0, 0,
		-1, 0, 0,
		0, 2, 0,
		0, -2, 0,
		0, 0, 0,
	}
	normals := RadialNormals(positions)
	if len(normals) != len(positions) {
		t.Fatalf("len = %d", len(normals))
	}
	want := [][3]float32{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 0}}
	for i, w := range want {
		got := [3]float32{normals[i*3], normals[i*3+1], normals[i*3+2]}
		if got != w {
			t.Fatalf("normal %d = %v, want %v", i, got, w)
		}
	}
}

func TestRadialNormalsUnitLength(t *testing.T) {
	m := Cone(1, 2, 12)
	n := m.Normals()
	for i := 0; i+2 < len(n); i += 3 {
		l := math.Sqrt(float64(n[i]*n[i] + n[i+1]*n[i+1] + n[i+2]*n[i+2]))
		if math.Abs(l-1) > 1e-5 {
			t.Fatalf("normal %d length %v", i/3, l)
		}
	}
}

func TestMismatchedNormalsReplaced(t *testing.T) {
	m := NewMesh(WithPositions([]float32{0, 0, 0, 2, 0, 0}), WithNormals([]float32{0, 1, 0}), WithIndices([]uint32{0, 1}))
	if len(m.Normals()) != 6 {
		t.Fatalf("normals = %v", m.Normals())
	}
	if m.Normals()[3] != 1 {
		t.Fatalf("expected radial normal for vertex 1, got %v", m.Normals()[3:6])
	}
}

func TestSetDataBumpsRevision(t *testing.T) {
	m := NewMesh()
	if !m.Empty() {
		t.Fatalf("new mesh should be empty")
	}
	r := m.Revision()
	m.SetData([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, nil, []uint32{0, 1, 2})
	if m.Revision() == r {
		t.Fatalf("revision not bumped")
	}
	if m.Empty() || m.VertexCount() != 3 || m.IndexCount() != 3 {
		t.Fatalf("counts = %d/%d", m.VertexCount(), m.IndexCount())
	}
	var nilMesh *Mesh
	if !nilMesh.Empty() {
		t.Fatalf("nil mesh should be empty")
	}
}

func TestWireframeIndices(t *testing.T) {
	// two triangles sharing the 0-2 edge
	lines := WireframeIndices([]uint32{0, 1, 2, 0, 2, 3, 7})
	if len(lines) != 10 {
		t.Fatalf("got %d indices, want 10 (5 edges): %v", len(lines), lines)
	}
	seen := map[[2]uint32]bool{}
	for i := 0; i < len(lines); i += 2 {
		e := [2]uint32{lines[i], lines[i+1]}
		if e[0] > e[1] || seen[e] {
			t.Fatalf("edge %v repeated or unordered", e)
		}
		seen[e] = true
	}
}

func TestArrowGeometry(t *testing.T) {
	a := Arrow()
	if a.VertexCount() != 7 || a.IndexCount() != 9 {
		t.Fatalf("arrow counts = %d/%d", a.VertexCount(), a.IndexCount())
	}
	lo, hi := a.Bounds()
	if lo.Z() != -3 || hi.Z() != 9 {
		t.Fatalf("arrow z span = %v..%v", lo.Z(), hi.Z())
	}
}

func TestSphereRadius(t *testing.T) {
	s := Sphere(2, 8, 12)
	if r := s.BoundingRadius(); math.Abs(float64(r-2)) > 1e-5 {
		t.Fatalf("radius = %v", r)
	}
	for _, idx := range s.Indices() {
		if int(idx) >= s.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestAxisAndGrid(t *testing.T) {
	for axis := 0; axis < 3; axis++ {
		lo, hi := AxisLine(axis, 5).Bounds()
		if lo[axis] != -5 || hi[axis] != 5 {
			t.Fatalf("axis %d line = %v..%v", axis, lo, hi)
		}
		_, tip := AxisHead(axis, 5).Bounds()
		if tip[axis] != 5.5 {
			t.Fatalf("axis %d head tip = %v", axis, tip)
		}
	}
	g := Grid(3)
	if g.IndexCount() != 7*4 {
		t.Fatalf("grid indices = %d", g.IndexCount())
	}
	lo, hi := g.Bounds()
	if lo != (mgl32.Vec3{-3, 0, -3}) || hi != (mgl32.Vec3{3, 0, 3}) {
		t.Fatalf("grid bounds = %v..%v", lo, hi)
	}
}

func TestVertexData(t *testing.T) {
	m := NewMesh(WithPositions([]float32{1, 2, 3}), WithNormals([]float32{0, 0, 1}), WithIndices([]uint32{0}))
	v := GPUVertex{}
	if v.Size() != 24 {
		t.Fatalf("vertex size = %d", v.Size())
	}
	data := m.VertexData()
	if len(data) != 24 {
		t.Fatalf("vertex data = %d bytes", len(data))
	}
	if len(m.IndexData()) != 4 {
		t.Fatalf("index data = %d bytes", len(m.IndexData()))
	}
	wire, n := Cone(1, 1, 4).WireIndexData()
	if len(wire) != n*4 || n == 0 {
		t.Fatalf("wire data %d bytes for %d indices", len(wire), n)
	}
}
