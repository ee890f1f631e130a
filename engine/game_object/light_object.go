package game_object

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PositionLimit bounds each light position component to [-PositionLimit, PositionLimit].
	PositionLimit float32 = 10

	// RotationLimit bounds each rotation offset set through SetRotation, in degrees.
	RotationLimit float32 = 90

	// rotateGain converts a frustum-space pointer delta into degrees.
	rotateGain float32 = 20
)

var (
	markerColor = mgl32.Vec4{1, 1, 1, 1}

	// direction sample points in the light's local frame
	dirTail = mgl32.Vec3{0, -3, 0}
	dirHead = mgl32.Vec3{0, 8, 0}
)

// Pose is the per-kind marker placement: a uniform scale, a fixed base rotation and
// the user-controlled rotation offsets in degrees about X (Offset[0]) and Z (Offset[1]).
type Pose struct {
	Scale     float32
	BaseAngle float32 // degrees
	BaseAxis  mgl32.Vec3
	Offset    [2]float32
}

// DefaultPoses returns the pose table for a new light: spotlights at scale 0.15 turned
// 90° about X, point lights at scale 0.1 turned 180° about X, both with zero offsets.
func DefaultPoses() [light.KindCount]Pose {
	return [light.KindCount]Pose{
		light.KindSpot:  {Scale: 0.15, BaseAngle: 90, BaseAxis: mgl32.Vec3{1, 0, 0}},
		light.KindPoint: {Scale: 0.1, BaseAngle: 180, BaseAxis: mgl32.Vec3{1, 0, 0}},
	}
}

type lightObjectImpl struct {
	mu *sync.Mutex

	id        int
	pickColor common.PickColor
	light     light.Light
	position  mgl32.Vec3
	poses     [light.KindCount]Pose

	mesh     *model.Mesh
	arrow    *model.Mesh
	kindMesh KindMeshSource

	panelOpen       bool
	panelPositioned bool
}

// LightObject is a pickable light marker. It owns a light.Light record and derives
// the light's world position and direction from its own transform on every query.
type LightObject interface {
	GameObject

	// ID returns the light's identity. Identities are never reused within a scene.
	ID() int

	// PickColor returns the unique color this light is drawn with in pick mode.
	PickColor() common.PickColor

	// Light returns the lighting record.
	Light() light.Light

	// Position returns the world position.
	Position() mgl32.Vec3

	// SetPosition moves the light. Each component is clamped to [-PositionLimit, PositionLimit].
	//
	// Parameters:
	//   - pos: the new world position
	SetPosition(pos mgl32.Vec3)

	// Rotation returns the current kind's rotation offsets in degrees about X and Z.
	Rotation() [2]float32

	// SetRotation sets the current kind's rotation offsets, each clamped to
	// [-RotationLimit, RotationLimit] degrees.
	//
	// Parameters:
	//   - x: degrees about X
	//   - z: degrees about Z
	SetRotation(x, z float32)

	// SetColor sets the light color.
	SetColor(color mgl32.Vec3)

	// Pose returns the pose table entry for a kind.
	//
	// Parameters:
	//   - kind: the light kind
	//
	// Returns:
	//   - Pose: the pose for kind
	Pose(kind light.Kind) Pose

	// TransformWithBase builds T(position) · [R(base)] · R(offset X) · R(offset Z) · S(scale)
	// for the current kind. Transform() is TransformWithBase(true).
	//
	// Parameters:
	//   - applyBase: include the kind's base rotation
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	TransformWithBase(applyBase bool) mgl32.Mat4

	// WorldPosition returns the light origin under TransformWithBase(false).
	WorldPosition() mgl32.Vec3

	// WorldDirection returns TransformWithBase(false) applied to (0,-3,0) minus the
	// same transform applied to (0,8,0). The vector is not normalized.
	WorldDirection() mgl32.Vec3

	// RotateBy adds a frustum-space drag to the current kind's offsets:
	// offset X += dy·20 and offset Z += dx·20.
	//
	// Parameters:
	//   - dx: horizontal frustum-space delta
	//   - dy: vertical frustum-space delta
	RotateBy(dx, dy float32)

	// Reset zeroes the current kind's rotation offsets.
	Reset()

	// SwitchKind changes the light kind and swaps in that kind's marker mesh.
	// If the mesh cannot be loaded the previous geometry stays and the switch still
	// happens. The panel position flag is cleared.
	//
	// Parameters:
	//   - kind: the new kind
	SwitchKind(kind light.Kind)

	// LightData returns the light record with freshly derived position and direction.
	LightData() light.Data

	// PanelOpen reports whether the light's control panel is shown.
	PanelOpen() bool

	// TogglePanel flips the panel state and clears the panel position flag.
	TogglePanel()

	// PanelPositioned reports whether the open panel has been placed.
	PanelPositioned() bool

	// SetPanelPositioned records whether the panel has been placed.
	SetPanelPositioned(positioned bool)
}

var _ LightObject = &lightObjectImpl{}

// NewLightObject creates a spotlight marker at (0, 3, 0) with the default pose table.
// Without a kind mesh source the marker geometry falls back to model.Cone for
// spotlights and model.Sphere for point lights.
//
// Parameters:
//   - id: the light identity
//   - pickColor: the unique pick color
//   - options: functional options to configure the light
//
// Returns:
//   - LightObject: the new light
func NewLightObject(id int, pickColor common.PickColor, options ...LightObjectBuilderOption) LightObject {
	l := &lightObjectImpl{
		mu:        &sync.Mutex{},
		id:        id,
		pickColor: pickColor,
		position:  mgl32.Vec3{0, 3, 0},
		poses:     DefaultPoses(),
		mesh:      model.NewMesh(model.WithName("light marker")),
	}
	for _, option := range options {
		option(l)
	}
	if l.light == nil {
		l.light = light.NewLight()
	}
	if l.kindMesh == nil {
		l.kindMesh = FallbackKindMesh
	}
	if l.arrow == nil {
		l.arrow = model.Arrow()
	}
	l.loadKindMesh(l.light.Kind())
	return l
}

// FallbackKindMesh returns the procedural marker for a kind: a cone for spotlights
// and a sphere for point lights.
func FallbackKindMesh(kind light.Kind) (*model.Mesh, error) {
	if kind == light.KindPoint {
		return model.Sphere(1, 8, 12), nil
	}
	return model.Cone(1, 2, 16), nil
}

func (l *lightObjectImpl) Kind() EntityKind {
	return EntityLight
}

func (l *lightObjectImpl) ID() int {
	return l.id
}

func (l *lightObjectImpl) PickColor() common.PickColor {
	return l.pickColor
}

func (l *lightObjectImpl) Light() light.Light {
	return l.light
}

func (l *lightObjectImpl) Mesh() *model.Mesh {
	return l.mesh
}

func (l *lightObjectImpl) Color() mgl32.Vec3 {
	return l.light.Color()
}

func (l *lightObjectImpl) SetColor(color mgl32.Vec3) {
	l.light.SetColor(color)
}

func (l *lightObjectImpl) Position() mgl32.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.position
}

func (l *lightObjectImpl) SetPosition(pos mgl32.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.position = common.ClampVec3(pos, -PositionLimit, PositionLimit)
}

func (l *lightObjectImpl) Rotation() [2]float32 {
	kind := l.light.Kind()
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.poses[kind].Offset
}

func (l *lightObjectImpl) SetRotation(x, z float32) {
	kind := l.light.Kind()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.poses[kind].Offset = [2]float32{
		mgl32.Clamp(x, -RotationLimit, RotationLimit),
		mgl32.Clamp(z, -RotationLimit, RotationLimit),
	}
}

func (l *lightObjectImpl) Pose(kind light.Kind) Pose {
	l.mu.Lock()
	defer l.mu.Unlock()
	if kind < 0 || kind >= light.KindCount {
		return Pose{}
	}
	return l.poses[kind]
}

func (l *lightObjectImpl) Transform() mgl32.Mat4 {
	return l.TransformWithBase(true)
}

func (l *lightObjectImpl) TransformWithBase(applyBase bool) mgl32.Mat4 {
	kind := l.light.Kind()
	l.mu.Lock()
	pose := l.poses[kind]
	pos := l.position
	l.mu.Unlock()

	m := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	if applyBase && pose.BaseAngle != 0 && pose.BaseAxis.Len() > 0 {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(pose.BaseAngle), pose.BaseAxis.Normalize()))
	}
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(pose.Offset[0])))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(pose.Offset[1])))
	return m.Mul4(mgl32.Scale3D(pose.Scale, pose.Scale, pose.Scale))
}

func (l *lightObjectImpl) WorldPosition() mgl32.Vec3 {
	return common.TransformPoint(l.TransformWithBase(false), mgl32.Vec3{})
}

func (l *lightObjectImpl) WorldDirection() mgl32.Vec3 {
	t := l.TransformWithBase(false)
	return common.TransformPoint(t, dirTail).Sub(common.TransformPoint(t, dirHead))
}

func (l *lightObjectImpl) RotateBy(dx, dy float32) {
	kind := l.light.Kind()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.poses[kind].Offset[0] += dy * rotateGain
	l.poses[kind].Offset[1] += dx * rotateGain
}

func (l *lightObjectImpl) Reset() {
	kind := l.light.Kind()
	l.mu.Lock()
	l.poses[kind].Offset = [2]float32{}
	l.mu.Unlock()
	l.RotateBy(0, 0)
}

func (l *lightObjectImpl) SwitchKind(kind light.Kind) {
	if kind < 0 || kind >= light.KindCount {
		return
	}
	l.light.SetKind(kind)
	l.loadKindMesh(kind)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.panelPositioned = false
}

func (l *lightObjectImpl) LightData() light.Data {
	return l.light.Data(l.WorldPosition(), l.WorldDirection())
}

func (l *lightObjectImpl) PanelOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.panelOpen
}

func (l *lightObjectImpl) TogglePanel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.panelOpen = !l.panelOpen
	l.panelPositioned = false
}

func (l *lightObjectImpl) PanelPositioned() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.panelPositioned
}

func (l *lightObjectImpl) SetPanelPositioned(positioned bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.panelPositioned = positioned
}

func (l *lightObjectImpl) Draw(pickMode bool, out []model.DrawRecord) []model.DrawRecord {
	t := l.Transform()
	spot := l.light.Kind() == light.KindSpot

	if pickMode {
		c := l.pickColor.Vec4()
		out = append(out, model.DrawRecord{Transform: t, Color: c, Mesh: l.mesh, Mode: model.DrawFill})
		if spot {
			out = append(out, model.DrawRecord{Transform: t, Color: c, Mesh: l.arrow, Mode: model.DrawFill})
		}
		return out
	}

	out = append(out, model.DrawRecord{Transform: t, Color: markerColor, Mesh: l.mesh, Mode: model.DrawWireframe})
	if spot {
		out = append(out, model.DrawRecord{Transform: t, Color: l.light.Color().Vec4(1), Mesh: l.arrow, Mode: model.DrawFill})
	}
	return out
}

// loadKindMesh swaps the marker geometry for kind's mesh, keeping the old one on failure.
func (l *lightObjectImpl) loadKindMesh(kind light.Kind) {
	m, err := l.kindMesh(kind)
	if err != nil {
		log.Printf("light %d: unable to load %s mesh, keeping previous geometry: %v", l.id, kind, err)
		return
	}
	if m == nil {
		return
	}
	l.mesh.CopyFrom(m)
}
