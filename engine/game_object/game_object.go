package game_object

import (
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// EntityKind identifies which variant a GameObject is.
type EntityKind int

const (
	// EntityFocal is the central loaded object lit by the scene's lights.
	EntityFocal EntityKind = iota

	// EntityLight is a pickable light marker.
	EntityLight

	// EntityDecoration is static helper geometry such as the axis gizmo.
	EntityDecoration
)

func (k EntityKind) String() string {
	switch k {
	case EntityFocal:
		return "focal"
	case EntityLight:
		return "light"
	case EntityDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// MeshSource loads the mesh stored at path.
type MeshSource func(path string) (*model.Mesh, error)

// KindMeshSource returns the canonical marker mesh for a light kind.
type KindMeshSource func(kind light.Kind) (*model.Mesh, error)

// GameObject is the capability set every scene entity shares.
// The set of variants is closed: FocalObject, LightObject and DecorationObject.
type GameObject interface {
	// Kind reports which variant this entity is.
	//
	// Returns:
	//   - EntityKind: the entity variant
	Kind() EntityKind

	// Mesh returns the entity's primary geometry.
	//
	// Returns:
	//   - *model.Mesh: the mesh, possibly empty
	Mesh() *model.Mesh

	// Color returns the entity's tint.
	//
	// Returns:
	//   - mgl32.Vec3: RGB in [0, 1]
	Color() mgl32.Vec3

	// Transform returns the model matrix the entity is drawn with.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	Transform() mgl32.Mat4

	// Draw appends the entity's draw records for this pass to out.
	// In pick mode every record is a flat fill in the entity's pick color, or in the
	// "nothing" color for entities that cannot be picked.
	//
	// Parameters:
	//   - pickMode: true for the selection pass
	//   - out: the record list to append to
	//
	// Returns:
	//   - []model.DrawRecord: out with this entity's records appended
	Draw(pickMode bool, out []model.DrawRecord) []model.DrawRecord
}
