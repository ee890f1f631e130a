package scene

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxLights is the light capacity of a scene unless WithMaxLights says otherwise.
const DefaultMaxLights = 4

// NotFound is returned by index lookups that match nothing.
const NotFound = -1

// ErrLightCapacity is returned by AddLight when the scene already holds its maximum
// number of lights.
var ErrLightCapacity = errors.New("light capacity reached")

// Pass is the output of one draw pass: every draw record in submission order plus
// the lighting records of the lights that are switched on.
type Pass struct {
	Records  []model.DrawRecord
	Lights   []light.Data
	Eye      mgl32.Vec3
	Ambient  mgl32.Vec3
	PickMode bool
}

type scene struct {
	mu *sync.Mutex

	name    string
	ambient mgl32.Vec3

	focal       game_object.FocalObject
	lights      []game_object.LightObject
	decorations []game_object.DecorationObject

	decorationsEnabled bool
	maxLights          int

	nextLightID    int
	pickColors     pickColorOdometer
	pendingRemoval []int // light IDs

	kindMesh game_object.KindMeshSource
}

// Scene is the registry of everything the editor draws: one focal object, up to
// MaxLights light markers and optional decorations.
//
// Light identities come from a per-scene counter and are never reused. Each light is
// assigned a unique pick color at creation. Removals requested with RemoveLight are
// held until the end of the next DrawPass so the pass never sees a list that changes
// under it.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// AmbientColor returns the ambient light color applied to lit geometry.
	AmbientColor() mgl32.Vec3

	// SetAmbientColor sets the ambient light color.
	SetAmbientColor(color mgl32.Vec3)

	// AddLight creates a default spotlight with the next identity and pick color.
	// When the scene is full nothing changes and ErrLightCapacity is returned.
	//
	// Returns:
	//   - game_object.LightObject: the new light, nil on error
	//   - error: ErrLightCapacity when full
	AddLight() (game_object.LightObject, error)

	// RemoveLight schedules the light with the given identity for removal at the end
	// of the next draw pass. Unknown identities are ignored.
	//
	// Parameters:
	//   - id: the light identity
	RemoveLight(id int)

	// PendingRemovals returns the identities scheduled for removal.
	PendingRemovals() []int

	// ResolveIdentityByPickColor finds the light drawn with pick color c.
	//
	// Parameters:
	//   - c: the color read back from the pick pass
	//
	// Returns:
	//   - int: the light's index in Lights(), or NotFound
	ResolveIdentityByPickColor(c common.PickColor) int

	// LightIDAt returns the identity of the light at index, or NotFound when the index
	// is out of range.
	LightIDAt(index int) int

	// Light returns the light with the given identity, or nil.
	Light(id int) game_object.LightObject

	// RotateLight applies a frustum-space drag to a light's rotation offsets.
	//
	// Returns:
	//   - bool: false when no light has the identity
	RotateLight(id int, dx, dy float32) bool

	// TogglePanel opens or closes a light's control panel.
	//
	// Returns:
	//   - bool: false when no light has the identity
	TogglePanel(id int) bool

	// Lights returns a snapshot of the current lights in creation order.
	Lights() []game_object.LightObject

	// LightCount returns the number of lights.
	LightCount() int

	// MaxLights returns the light capacity.
	MaxLights() int

	// FocalObject returns the central object.
	FocalObject() game_object.FocalObject

	// LoadFocalObject replaces the focal object's mesh. Failures are logged and the
	// previous geometry is kept.
	//
	// Parameters:
	//   - path: the mesh file
	//
	// Returns:
	//   - error: the load error, if any
	LoadFocalObject(path string) error

	// DecorationsEnabled reports whether decorations are drawn.
	DecorationsEnabled() bool

	// SetDecorationsEnabled shows or hides decorations.
	SetDecorationsEnabled(enabled bool)

	// DrawPass visits every entity and collects its draw records and, for lights that
	// are on, their lighting data. Lights are visited first, then the focal object,
	// then decorations (never in pick mode). Pending removals are applied after every
	// entity has been visited.
	//
	// Parameters:
	//   - pickMode: true for the selection pass
	//   - eye: the camera position, carried through for specular lighting
	//
	// Returns:
	//   - Pass: the collected records and lights
	DrawPass(pickMode bool, eye mgl32.Vec3) Pass
}

var _ Scene = &scene{}

// NewScene creates an empty Scene. Without WithFocalObject a focal object with an
// empty mesh is created.
//
// Parameters:
//   - name: the scene identifier
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:                 &sync.Mutex{},
		name:               name,
		ambient:            mgl32.Vec3{0.1, 0.1, 0.1},
		maxLights:          DefaultMaxLights,
		decorationsEnabled: true,
	}
	for _, option := range options {
		option(s)
	}
	if s.focal == nil {
		s.focal = game_object.NewFocalObject()
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) AmbientColor() mgl32.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ambient
}

func (s *scene) SetAmbientColor(color mgl32.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambient = common.ClampVec3(color, 0, 1)
}

func (s *scene) AddLight() (game_object.LightObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lights) >= s.maxLights {
		log.Printf("scene: light capacity reached (%d)", s.maxLights)
		return nil, fmt.Errorf("%w: %d lights", ErrLightCapacity, s.maxLights)
	}

	s.nextLightID++
	var opts []game_object.LightObjectBuilderOption
	if s.kindMesh != nil {
		opts = append(opts, game_object.WithKindMeshSource(s.kindMesh))
	}
	l := game_object.NewLightObject(s.nextLightID, s.pickColors.next(), opts...)
	s.lights = append(s.lights, l)
	log.Printf("scene: added light %d (pick color %s)", l.ID(), l.PickColor())
	return l, nil
}

func (s *scene) RemoveLight(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) == NotFound || slices.Contains(s.pendingRemoval, id) {
		return
	}
	s.pendingRemoval = append(s.pendingRemoval, id)
}

func (s *scene) PendingRemovals() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pendingRemoval)
}

func (s *scene) ResolveIdentityByPickColor(c common.PickColor) int {
	if c == common.NoPickColor {
		return NotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.ID()
	for i, l := range s.lights {
		if l.PickColor().ID() == id {
			return i
		}
	}
	return NotFound
}

func (s *scene) LightIDAt(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.lights) {
		return NotFound
	}
	return s.lights[index].ID()
}

func (s *scene) Light(id int) game_object.LightObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i != NotFound {
		return s.lights[i]
	}
	return nil
}

func (s *scene) RotateLight(id int, dx, dy float32) bool {
	l := s.Light(id)
	if l == nil {
		return false
	}
	l.RotateBy(dx, dy)
	return true
}

func (s *scene) TogglePanel(id int) bool {
	l := s.Light(id)
	if l == nil {
		return false
	}
	l.TogglePanel()
	return true
}

func (s *scene) Lights() []game_object.LightObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lights)
}

func (s *scene) LightCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lights)
}

func (s *scene) MaxLights() int {
	return s.maxLights
}

func (s *scene) FocalObject() game_object.FocalObject {
	return s.focal
}

func (s *scene) LoadFocalObject(path string) error {
	return s.focal.Load(path)
}

func (s *scene) DecorationsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decorationsEnabled
}

func (s *scene) SetDecorationsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decorationsEnabled = enabled
}

func (s *scene) DrawPass(pickMode bool, eye mgl32.Vec3) Pass {
	s.mu.Lock()
	lights := slices.Clone(s.lights)
	decorations := s.decorations
	decorate := s.decorationsEnabled && !pickMode
	ambient := s.ambient
	s.mu.Unlock()

	pass := Pass{Eye: eye, Ambient: ambient, PickMode: pickMode}
	for _, l := range lights {
		if l.Light().Enabled() {
			pass.Lights = append(pass.Lights, l.LightData())
		}
		pass.Records = l.Draw(pickMode, pass.Records)
	}

	pass.Records = s.focal.Draw(pickMode, pass.Records)

	if decorate {
		for _, d := range decorations {
			pass.Records = d.Draw(pickMode, pass.Records)
		}
	}

	s.applyRemovals()
	return pass
}

// applyRemovals drops every pending light, keeping the order of the rest.
func (s *scene) applyRemovals() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pendingRemoval) == 0 {
		return
	}
	s.lights = slices.DeleteFunc(s.lights, func(l game_object.LightObject) bool {
		return slices.Contains(s.pendingRemoval, l.ID())
	})
	for _, id := range s.pendingRemoval {
		log.Printf("scene: removed light %d", id)
	}
	s.pendingRemoval = s.pendingRemoval[:0]
}

// indexOf returns the index of the light with identity id. Caller must hold the mutex.
func (s *scene) indexOf(id int) int {
	for i, l := range s.lights {
		if l.ID() == id {
			return i
		}
	}
	return NotFound
}
