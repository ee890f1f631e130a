package game_object

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

type focalObjectImpl struct {
	mu *sync.Mutex

	mesh   *model.Mesh
	color  mgl32.Vec3
	scale  float32
	path   string
	source MeshSource
}

// FocalObject is the central object the user lights. It is drawn filled through the
// lighting shader and cannot be picked.
type FocalObject interface {
	GameObject

	// Scale returns the uniform scale factor.
	Scale() float32

	// SetScale sets the uniform scale factor. Non-positive values are ignored.
	SetScale(scale float32)

	// SetColor sets the base color. Components are clamped to [0, 1].
	SetColor(color mgl32.Vec3)

	// Path returns the path of the last mesh loaded successfully.
	Path() string

	// Load replaces the geometry with the mesh at path.
	// An empty path is a no-op. On failure the previous geometry is kept, the error is
	// logged and returned.
	//
	// Parameters:
	//   - path: the mesh file to load
	//
	// Returns:
	//   - error: the loader's error, if any
	Load(path string) error
}

var _ FocalObject = &focalObjectImpl{}

// NewFocalObject creates a FocalObject with an empty mesh, white color and scale 1.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - FocalObject: the new object
func NewFocalObject(options ...FocalObjectBuilderOption) FocalObject {
	f := &focalObjectImpl{
		mu:    &sync.Mutex{},
		color: mgl32.Vec3{1, 1, 1},
		scale: 1,
	}
	for _, option := range options {
		option(f)
	}
	if f.mesh == nil {
		f.mesh = model.NewMesh(model.WithName("focal"))
	}
	return f
}

func (f *focalObjectImpl) Kind() EntityKind {
	return EntityFocal
}

func (f *focalObjectImpl) Mesh() *model.Mesh {
	return f.mesh
}

func (f *focalObjectImpl) Color() mgl32.Vec3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.color
}

func (f *focalObjectImpl) SetColor(color mgl32.Vec3) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.color = common.ClampVec3(color, 0, 1)
}

func (f *focalObjectImpl) Scale() float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scale
}

func (f *focalObjectImpl) SetScale(scale float32) {
	if scale <= 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scale = scale
}

func (f *focalObjectImpl) Path() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

func (f *focalObjectImpl) Transform() mgl32.Mat4 {
	s := f.Scale()
	return mgl32.Scale3D(s, s, s)
}

func (f *focalObjectImpl) Load(path string) error {
	if path == "" {
		return nil
	}
	if f.source == nil {
		err := fmt.Errorf("no mesh source configured")
		log.Printf("focal: unable to load mesh %s: %v", path, err)
		return err
	}

	m, err := f.source(path)
	if err != nil {
		log.Printf("focal: unable to load mesh %s: %v", path, err)
		return err
	}
	f.mesh.CopyFrom(m)

	f.mu.Lock()
	f.path = path
	f.mu.Unlock()
	return nil
}

func (f *focalObjectImpl) Draw(pickMode bool, out []model.DrawRecord) []model.DrawRecord {
	rec := model.DrawRecord{
		Transform: f.Transform(),
		Mesh:      f.mesh,
		Mode:      model.DrawFill,
	}
	if pickMode {
		rec.Color = common.NoPickColor.Vec4()
	} else {
		rec.Color = f.Color().Vec4(1)
		rec.Lit = true
	}
	return append(out, rec)
}
