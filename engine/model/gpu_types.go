package model

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-lumen/common"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Matches the VertexInput struct of the renderer's shaders.
// Size: 24 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position
	Normal   [3]float32 // offset 12: vertex normal
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (24)
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 24)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	return buf
}

// VertexData interleaves the mesh positions and normals into GPUVertex layout.
//
// Returns:
//   - []byte: the vertex buffer contents
func (m *Mesh) VertexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.positions) / 3
	verts := make([]GPUVertex, n)
	for i := 0; i < n; i++ {
		copy(verts[i].Position[:], m.positions[i*3:i*3+3])
		if i*3+2 < len(m.normals) {
			copy(verts[i].Normal[:], m.normals[i*3:i*3+3])
		}
	}
	out := make([]byte, len(verts)*24)
	for i := range verts {
		copy(out[i*24:], verts[i].Marshal())
	}
	return out
}

// IndexData returns the index list as uint32 little-endian bytes.
//
// Returns:
//   - []byte: the index buffer contents
func (m *Mesh) IndexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), common.SliceToBytes(m.indices)...)
}

// WireIndexData returns the derived wireframe edge list as uint32 bytes and its index count.
//
// Returns:
//   - []byte: the line-list index buffer contents
//   - int: the number of line indices
func (m *Mesh) WireIndexData() ([]byte, int) {
	m.mu.Lock()
	lines := WireframeIndices(m.indices)
	m.mu.Unlock()
	return append([]byte(nil), common.SliceToBytes(lines)...), len(lines)
}
