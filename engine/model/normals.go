package model

import "math"

// RadialNormals computes one normal per vertex pointing from the centroid of all
// positions towards the vertex. A vertex at the centroid gets a zero normal.
//
// Parameters:
//   - positions: flat xyz positions
//
// Returns:
//   - []float32: flat xyz normals, same length as positions
func RadialNormals(positions []float32) []float32 {
	n := len(positions) / 3
	normals := make([]float32, n*3)
	if n == 0 {
		return normals
	}

	var cx, cy, cz float64
	for i := 0; i < n; i++ {
		cx += float64(positions[i*3])
		cy += float64(positions[i*3+1])
		cz += float64(positions[i*3+2])
	}
	cx /= float64(n)
	cy /= float64(n)
	cz /= float64(n)

	for i := 0; i < n; i++ {
		x := float64(positions[i*3]) - cx
		y := float64(positions[i*3+1]) - cy
		z := float64(positions[i*3+2]) - cz
		length := math.Sqrt(x*x + y*y + z*z)
		if length > 0 {
			x, y, z = x/length, y/length, z/length
		}
		normals[i*3] = float32(x)
		normals[i*3+1] = float32(y)
		normals[i*3+2] = float32(z)
	}
	return normals
}

// WireframeIndices converts a triangle index list into a line list holding every
// unique edge once, in first-seen order. A trailing partial triangle is ignored.
//
// Parameters:
//   - indices: triangle indices
//
// Returns:
//   - []uint32: line-list indices
func WireframeIndices(indices []uint32) []uint32 {
	type edge struct{ a, b uint32 }
	seen := make(map[edge]struct{}, len(indices))
	lines := make([]uint32, 0, len(indices)*2)

	add := func(a, b uint32) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		e := edge{a, b}
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		lines = append(lines, a, b)
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		add(a, b)
		add(b, c)
		add(c, a)
	}
	return lines
}
