package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// MaxGPULights is the number of light slots in the light uniform buffer.
// It matches the scene's light capacity; unused slots are zero-filled.
const MaxGPULights = 4

// GPULightSource is the WGSL definition of the Light struct.
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULightBufferSource is the WGSL definition of the LightBuffer struct: the header
// fields followed by MaxGPULights Light slots. It depends on GPULightSource.
//
//go:embed assets/light_buffer.wgsl
var GPULightBufferSource string

// GPULight is the GPU-aligned representation of a single light source.
// Matches the WGSL Light struct (see GPULightSource).
// Size: 64 bytes (WGSL uniform aligned).
type GPULight struct {
	Position       [3]float32 // offset  0: world-space position
	Kind           uint32     // offset 12: 0 = spot, 1 = point
	Color          [3]float32 // offset 16: RGB color
	Intensity      float32    // offset 28: scalar multiplier
	Direction      [3]float32 // offset 32: normalized spot direction
	Linear         float32    // offset 44: linear attenuation
	Quadratic      float32    // offset 48: quadratic attenuation
	CutOffCos      float32    // offset 52: cos(inner cone angle)
	OuterCutOffCos float32    // offset 56: cos(outer cone angle)
	Enabled        uint32     // offset 60: 1 = lit, 0 = off
}

// NewGPULight packs a lighting record for upload.
//
// Parameters:
//   - d: the lighting record
//   - enabled: whether the light contributes to shading
//
// Returns:
//   - GPULight: the packed light
func NewGPULight(d Data, enabled bool) GPULight {
	g := GPULight{
		Position:       d.Position,
		Kind:           uint32(d.Kind),
		Color:          d.Color,
		Intensity:      d.Intensity,
		Direction:      d.Direction,
		Linear:         d.Linear,
		Quadratic:      d.Quadratic,
		CutOffCos:      d.CutOffCos,
		OuterCutOffCos: d.OuterCutOffCos,
	}
	if enabled {
		g.Enabled = 1
	}
	return g
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 64)
	putVec3(buf[0:], g.Position)
	binary.LittleEndian.PutUint32(buf[12:16], g.Kind)
	putVec3(buf[16:], g.Color)
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Intensity))
	putVec3(buf[32:], g.Direction)
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Linear))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.Quadratic))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.CutOffCos))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(g.OuterCutOffCos))
	binary.LittleEndian.PutUint32(buf[60:64], g.Enabled)
	return buf
}

// GPULightHeader is the header at the start of the light uniform buffer.
// Size: 16 bytes.
type GPULightHeader struct {
	AmbientColor [3]float32 // offset  0: ambient RGB applied to every lit fragment
	LightCount   uint32     // offset 12: number of populated light slots
}

// Size returns the size of the GPULightHeader struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (h *GPULightHeader) Size() int {
	return int(unsafe.Sizeof(*h))
}

// Marshal serializes the GPULightHeader struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (h *GPULightHeader) Marshal() []byte {
	buf := make([]byte, 16)
	putVec3(buf[0:], h.AmbientColor)
	binary.LittleEndian.PutUint32(buf[12:16], h.LightCount)
	return buf
}

// LightBufferSize is the byte size of the light uniform buffer: one header and MaxGPULights slots.
const LightBufferSize = 16 + MaxGPULights*64

// MarshalLightBuffer packs the header and up to MaxGPULights lights into a single
// LightBufferSize byte slice. Extra lights are dropped and unused slots stay zeroed.
//
// Parameters:
//   - ambient: the ambient color
//   - lights: the packed lights
//
// Returns:
//   - []byte: the light uniform buffer contents
func MarshalLightBuffer(ambient [3]float32, lights []GPULight) []byte {
	n := min(len(lights), MaxGPULights)
	header := GPULightHeader{AmbientColor: ambient, LightCount: uint32(n)}

	buf := make([]byte, LightBufferSize)
	copy(buf, header.Marshal())
	for i := 0; i < n; i++ {
		copy(buf[16+i*64:], lights[i].Marshal())
	}
	return buf
}

func putVec3(buf []byte, v [3]float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v[2]))
}
