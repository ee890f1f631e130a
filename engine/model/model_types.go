package model

import "github.com/go-gl/mathgl/mgl32"

// DrawMode selects how a DrawRecord's mesh is rasterized.
type DrawMode int

const (
	// DrawFill draws the mesh indices as filled triangles.
	DrawFill DrawMode = iota

	// DrawWireframe draws the unique triangle edges of the mesh as lines.
	DrawWireframe

	// DrawLines draws the mesh indices directly as a line list.
	DrawLines
)

func (d DrawMode) String() string {
	switch d {
	case DrawFill:
		return "fill"
	case DrawWireframe:
		return "wireframe"
	case DrawLines:
		return "lines"
	default:
		return "unknown"
	}
}

// DrawRecord is one draw request produced by a scene entity.
type DrawRecord struct {
	// Transform is the model matrix.
	Transform mgl32.Mat4

	// Color is the flat tint, or the base color when Lit is set.
	Color mgl32.Vec4

	// Mesh is the geometry to draw.
	Mesh *Mesh

	// Mode selects filled, wireframe or line rasterization.
	Mode DrawMode

	// Lit routes the record through the lighting shader instead of the flat one.
	Lit bool
}
