package common

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// WebGPUClipCorrection remaps an OpenGL-convention projection (clip z in [-w, w]) into
// WebGPU clip space (clip z in [0, w]). Left-multiply it onto a projection built with
// mgl32.Perspective before handing the matrix to a WebGPU pipeline.
var WebGPUClipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// RotateAround rotates v by angle radians about axis using an axis-angle rotation.
// A zero-length axis leaves v unchanged.
//
// Parameters:
//   - v: the vector to rotate
//   - axis: the rotation axis (need not be normalized)
//   - angle: the rotation angle in radians
//
// Returns:
//   - mgl32.Vec3: the rotated vector
func RotateAround(v, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	if axis.Len() == 0 || angle == 0 {
		return v
	}
	return mgl32.QuatRotate(angle, axis.Normalize()).Rotate(v)
}

// TransformPoint applies the affine transform m to the point p (w = 1).
//
// Parameters:
//   - m: the transform matrix (column-major)
//   - p: the point in model space
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v has no length.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampVec3 clamps every component of v into [lo, hi].
func ClampVec3(v mgl32.Vec3, lo, hi float32) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(v[0], lo, hi),
		mgl32.Clamp(v[1], lo, hi),
		mgl32.Clamp(v[2], lo, hi),
	}
}
