package model

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is CPU-side triangle or line geometry: flat xyz positions, flat xyz normals and
// an index list. The revision counter increases on every SetData so the renderer can
// tell when its cached GPU buffers are stale.
type Mesh struct {
	mu *sync.Mutex

	name      string
	positions []float32
	normals   []float32
	indices   []uint32
	revision  uint64
}

// NewMesh creates a Mesh with the specified options applied.
// When normals are absent or do not match the positions they are replaced by RadialNormals.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - *Mesh: the new mesh
func NewMesh(options ...MeshBuilderOption) *Mesh {
	m := &Mesh{mu: &sync.Mutex{}}
	for _, opt := range options {
		opt(m)
	}
	m.normals = ensureNormals(m.positions, m.normals)
	m.revision = 1
	return m
}

// Name returns the mesh identifier, usually the path it was loaded from.
func (m *Mesh) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name
}

// Positions returns the flat xyz position list. The slice must not be modified.
func (m *Mesh) Positions() []float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.positions
}

// Normals returns the flat xyz normal list, one normal per position. The slice must not be modified.
func (m *Mesh) Normals() []float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.normals
}

// Indices returns the index list. The slice must not be modified.
func (m *Mesh) Indices() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indices
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.positions) / 3
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.indices)
}

// Revision returns a counter that changes whenever the mesh data is replaced.
func (m *Mesh) Revision() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revision
}

// Empty reports whether the mesh has nothing to draw.
func (m *Mesh) Empty() bool {
	if m == nil {
		return true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.indices) == 0 || len(m.positions) == 0
}

// SetData replaces the mesh geometry and bumps the revision.
// Normals that are missing or mismatched are replaced by RadialNormals.
//
// Parameters:
//   - positions: flat xyz positions
//   - normals: flat xyz normals, may be nil
//   - indices: the index list
func (m *Mesh) SetData(positions, normals []float32, indices []uint32) {
	normals = ensureNormals(positions, normals)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions = positions
	m.normals = normals
	m.indices = indices
	m.revision++
}

// CopyFrom replaces this mesh's geometry and name with another mesh's.
//
// Parameters:
//   - other: the source mesh
func (m *Mesh) CopyFrom(other *Mesh) {
	if other == nil || other == m {
		return
	}
	other.mu.Lock()
	name, pos, nrm, idx := other.name, other.positions, other.normals, other.indices
	other.mu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.name = name
	m.positions = pos
	m.normals = nrm
	m.indices = idx
	m.revision++
}

// Bounds returns the axis-aligned bounding box of the positions.
// An empty mesh yields two zero vectors.
//
// Returns:
//   - mgl32.Vec3: the minimum corner
//   - mgl32.Vec3: the maximum corner
func (m *Mesh) Bounds() (mgl32.Vec3, mgl32.Vec3) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.positions) < 3 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	lo := mgl32.Vec3{m.positions[0], m.positions[1], m.positions[2]}
	hi := lo
	for i := 3; i+2 < len(m.positions); i += 3 {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], m.positions[i+a])
			hi[a] = max(hi[a], m.positions[i+a])
		}
	}
	return lo, hi
}

// BoundingRadius returns the largest vertex distance from the origin.
func (m *Mesh) BoundingRadius() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var r float32
	for i := 0; i+2 < len(m.positions); i += 3 {
		v := mgl32.Vec3{m.positions[i], m.positions[i+1], m.positions[i+2]}
		r = max(r, v.Len())
	}
	return r
}

func ensureNormals(positions, normals []float32) []float32 {
	if len(normals) == 0 || len(normals) != len(positions) {
		return RadialNormals(positions)
	}
	return normals
}
