package model

import (
	"math"
)

// Arrow returns the direction marker drawn alongside spotlights: a thin shaft from
// z=-3 to z=8 capped by a flat arrow head at z=8..9.
func Arrow() *Mesh {
	return NewMesh(
		WithName("arrow"),
		WithPositions([]float32{
			-0.05, 0, -3,
			0.05, 0, -3,
			-0.05, 0, 8,
			0.05, 0, 8,
			-1, 0, 8,
			0, 0.1, 9,
			1, 0, 8,
		}),
		WithIndices([]uint32{0, 2, 3, 0, 1, 3, 4, 5, 6}),
	)
}

// Cone returns a closed cone with its apex at the origin opening along +Z.
//
// Parameters:
//   - radius: the base radius
//   - length: the distance from apex to base
//   - segments: number of sides, at least 3
//
// Returns:
//   - *Mesh: the cone mesh
func Cone(radius, length float32, segments int) *Mesh {
	segments = max(segments, 3)
	positions := []float32{0, 0, 0, 0, 0, length}
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		positions = append(positions,
			radius*float32(math.Cos(a)),
			radius*float32(math.Sin(a)),
			length,
		)
	}

	indices := make([]uint32, 0, segments*6)
	for i := 0; i < segments; i++ {
		cur := uint32(2 + i)
		next := uint32(2 + (i+1)%segments)
		indices = append(indices, 0, cur, next)
		indices = append(indices, 1, next, cur)
	}
	return NewMesh(WithName("cone"), WithPositions(positions), WithIndices(indices))
}

// Sphere returns a UV sphere centered at the origin with exact radial normals.
//
// Parameters:
//   - radius: sphere radius
//   - rings: latitude bands, at least 2
//   - sectors: longitude bands, at least 3
//
// Returns:
//   - *Mesh: the sphere mesh
func Sphere(radius float32, rings, sectors int) *Mesh {
	rings = max(rings, 2)
	sectors = max(sectors, 3)

	var positions, normals []float32
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		for s := 0; s <= sectors; s++ {
			theta := 2 * math.Pi * float64(s) / float64(sectors)
			x := float32(math.Sin(phi) * math.Cos(theta))
			y := float32(math.Cos(phi))
			z := float32(math.Sin(phi) * math.Sin(theta))
			positions = append(positions, x*radius, y*radius, z*radius)
			normals = append(normals, x, y, z)
		}
	}

	var indices []uint32
	stride := uint32(sectors + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(sectors); s++ {
			a := r*stride + s
			b := a + stride
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return NewMesh(WithName("sphere"), WithPositions(positions), WithNormals(normals), WithIndices(indices))
}

// AxisLine returns a line from -scale to +scale along one axis (0 = X, 1 = Y, 2 = Z).
//
// Parameters:
//   - axis: the axis index
//   - scale: half length of the line
//
// Returns:
//   - *Mesh: a two-vertex line mesh
func AxisLine(axis int, scale float32) *Mesh {
	var a, b [3]float32
	a[axis%3] = -scale
	b[axis%3] = scale
	return NewMesh(
		WithName("axis line"),
		WithPositions([]float32{a[0], a[1], a[2], b[0], b[1], b[2]}),
		WithNormals([]float32{0, 1, 0, 0, 1, 0}),
		WithIndices([]uint32{0, 1}),
	)
}

// AxisHead returns the arrow-head triangle at the positive end of an axis line.
// The tip sits at scale+0.5 and the base at scale.
//
// Parameters:
//   - axis: the axis index
//   - scale: half length of the matching AxisLine
//
// Returns:
//   - *Mesh: a single-triangle mesh
func AxisHead(axis int, scale float32) *Mesh {
	const w = 0.2
	var positions []float32
	switch axis % 3 {
	case 0:
		positions = []float32{scale, -w, 0, scale + 0.5, 0, 0, scale, w, 0}
	case 1:
		positions = []float32{-w, scale, 0, 0, scale + 0.5, 0, w, scale, 0}
	default:
		positions = []float32{-w, 0, scale, 0, 0, scale + 0.5, w, 0, scale}
	}
	return NewMesh(
		WithName("axis head"),
		WithPositions(positions),
		WithNormals([]float32{0, 0, 1, 0, 0, 1, 0, 0, 1}),
		WithIndices([]uint32{0, 1, 2}),
	)
}

// Grid returns a line-list ground grid on the XZ plane covering [-half, half] with
// unit spacing.
//
// Parameters:
//   - half: half extent in whole units, at least 1
//
// Returns:
//   - *Mesh: the grid mesh
func Grid(half int) *Mesh {
	half = max(half, 1)
	h := float32(half)

	var positions []float32
	var indices []uint32
	for i := -half; i <= half; i++ {
		f := float32(i)
		base := uint32(len(positions) / 3)
		positions = append(positions,
			f, 0, -h, f, 0, h,
			-h, 0, f, h, 0, f,
		)
		indices = append(indices, base, base+1, base+2, base+3)
	}
	normals := make([]float32, len(positions))
	for i := 1; i < len(normals); i += 3 {
		normals[i] = 1
	}
	return NewMesh(WithName("grid"), WithPositions(positions), WithNormals(normals), WithIndices(indices))
}
