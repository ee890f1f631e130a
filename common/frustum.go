package common

// DefaultCorrectionFactor is the depth correction applied to projected cursor deltas.
const DefaultCorrectionFactor float32 = 10

// NearPlaneExtents returns the width and height of the normalized near plane for a viewport.
// The width is always 2 (NDC -1..1) and the height is scaled by the viewport ratio height/width.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - w, h: near plane extents, or (0, 0) for a degenerate viewport
func NearPlaneExtents(width, height int) (w, h float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	ratio := float32(height) / float32(width)
	return 1 - (-1), ratio - (-ratio)
}

// ProjectScreenDelta converts a pixel-space cursor delta into a frustum-space delta.
// The delta is normalized to device coordinates, scaled by the half extents of the
// near plane and multiplied by the depth correction factor k. A degenerate viewport
// yields a zero delta.
//
// Parameters:
//   - dx, dy: cursor movement in pixels
//   - width, height: viewport size in pixels
//   - k: depth correction factor (DefaultCorrectionFactor in the editor)
//
// Returns:
//   - adjustedX, adjustedY: the frustum-space delta
func ProjectScreenDelta(dx, dy float64, width, height int, k float32) (adjustedX, adjustedY float32) {
	frustumW, frustumH := NearPlaneExtents(width, height)
	if frustumW == 0 {
		return 0, 0
	}

	ndcX := float32(dx / (float64(width) / 2))
	ndcY := float32(dy / (float64(height) / 2))

	adjustedX = ndcX * frustumW / 2 * k
	adjustedY = ndcY * frustumH / 2 * k
	return adjustedX, adjustedY
}
