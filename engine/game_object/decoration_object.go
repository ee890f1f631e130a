package game_object

import (
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

var axisColors = [3]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

type decorationPart struct {
	mesh  *model.Mesh
	color mgl32.Vec3
	mode  model.DrawMode
}

type decorationObjectImpl struct {
	name  string
	parts []decorationPart
}

// DecorationObject is static helper geometry drawn with the flat shader.
// It never appears in the pick pass.
type DecorationObject interface {
	GameObject

	// Name returns the decoration's label.
	Name() string

	// PartCount returns the number of draw records produced per pass.
	PartCount() int
}

var _ DecorationObject = &decorationObjectImpl{}

// NewAxisGizmo creates the three colored axis lines (X red, Y green, Z blue) spanning
// ±scale, each capped by an arrow head at scale+0.5.
//
// Parameters:
//   - scale: half length of each axis
//
// Returns:
//   - DecorationObject: the gizmo
func NewAxisGizmo(scale float32) DecorationObject {
	d := &decorationObjectImpl{name: "axes"}
	for axis := 0; axis < 3; axis++ {
		d.parts = append(d.parts,
			decorationPart{mesh: model.AxisLine(axis, scale), color: axisColors[axis], mode: model.DrawLines},
			decorationPart{mesh: model.AxisHead(axis, scale), color: axisColors[axis], mode: model.DrawFill},
		)
	}
	return d
}

// NewGrid creates a ground grid on the XZ plane.
//
// Parameters:
//   - half: half extent in whole units
//   - color: line color
//
// Returns:
//   - DecorationObject: the grid
func NewGrid(half int, color mgl32.Vec3) DecorationObject {
	return &decorationObjectImpl{
		name:  "grid",
		parts: []decorationPart{{mesh: model.Grid(half), color: color, mode: model.DrawLines}},
	}
}

func (d *decorationObjectImpl) Kind() EntityKind {
	return EntityDecoration
}

func (d *decorationObjectImpl) Name() string {
	return d.name
}

func (d *decorationObjectImpl) PartCount() int {
	return len(d.parts)
}

func (d *decorationObjectImpl) Mesh() *model.Mesh {
	if len(d.parts) == 0 {
		return nil
	}
	return d.parts[0].mesh
}

func (d *decorationObjectImpl) Color() mgl32.Vec3 {
	if len(d.parts) == 0 {
		return mgl32.Vec3{}
	}
	return d.parts[0].color
}

func (d *decorationObjectImpl) Transform() mgl32.Mat4 {
	return mgl32.Ident4()
}

func (d *decorationObjectImpl) Draw(pickMode bool, out []model.DrawRecord) []model.DrawRecord {
	if pickMode {
		return out
	}
	for _, p := range d.parts {
		out = append(out, model.DrawRecord{
			Transform: mgl32.Ident4(),
			Color:     p.color.Vec4(1),
			Mesh:      p.mesh,
			Mode:      p.mode,
		})
	}
	return out
}
