package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawUniformStride is the distance between per-draw uniforms in the dynamic-offset
// buffer. WebGPU requires dynamic offsets to be multiples of
// minUniformBufferOffsetAlignment, which is 256 on every adapter.
const DrawUniformStride = 256

// GPUDrawUniformSource is the WGSL definition of the DrawUniform struct.
//
//go:embed assets/draw_uniform.wgsl
var GPUDrawUniformSource string

// GPUDrawUniform is the GPU-aligned representation of the per-draw uniform.
// Matches the WGSL DrawUniform struct (see GPUDrawUniformSource).
// Size: 80 bytes.
type GPUDrawUniform struct {
	Model [16]float32 // offset  0: model matrix (mat4x4<f32>)
	Color [4]float32  // offset 64: flat tint or base color (vec4<f32>)
}

// NewGPUDrawUniform packs a model matrix and color.
func NewGPUDrawUniform(transform mgl32.Mat4, color mgl32.Vec4) GPUDrawUniform {
	return GPUDrawUniform{Model: transform, Color: color}
}

// Size returns the size of the GPUDrawUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUDrawUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUDrawUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUDrawUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Color[i]))
	}
	return buf
}
