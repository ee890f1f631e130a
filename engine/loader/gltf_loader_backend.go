package loader

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// gltfLoaderBackend flattens every triangle primitive of every mesh in a glTF or GLB
// document into one mesh. Node transforms are not applied. The decoder detects the
// binary container on its own, so one backend serves both extensions.
type gltfLoaderBackend struct{}

var _ loaderBackend = &gltfLoaderBackend{}

func newGLTFLoaderBackend() *gltfLoaderBackend {
	return &gltfLoaderBackend{}
}

func (b *gltfLoaderBackend) Load(path string) (*model.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file: %w", err)
	}
	return b.meshFromDocument(path, doc)
}

func (b *gltfLoaderBackend) LoadReader(name string, r io.Reader) (*model.Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode glTF stream: %w", err)
	}
	return b.meshFromDocument(name, doc)
}

func (b *gltfLoaderBackend) meshFromDocument(name string, doc *gltf.Document) (*model.Mesh, error) {
	var positions, normals []float32
	var indices []uint32

	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			pos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: read positions: %w", mi, pi, err)
			}

			var nrm [][3]float32
			if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				nrm, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d: read normals: %w", mi, pi, err)
				}
			}

			base := uint32(len(positions) / 3)
			flatPos := make([]float32, 0, len(pos)*3)
			for _, p := range pos {
				flatPos = append(flatPos, p[0], p[1], p[2])
			}
			positions = append(positions, flatPos...)

			if len(nrm) == len(pos) {
				for _, n := range nrm {
					normals = append(normals, n[0], n[1], n[2])
				}
			} else {
				normals = append(normals, model.RadialNormals(flatPos)...)
			}

			if prim.Indices != nil {
				idx, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("mesh %d primitive %d: read indices: %w", mi, pi, err)
				}
				for _, i := range idx {
					indices = append(indices, base+i)
				}
			} else {
				for i := range uint32(len(pos)) {
					indices = append(indices, base+i)
				}
			}
		}
	}

	if len(indices) == 0 {
		return nil, fmt.Errorf("%s: no triangle primitives", name)
	}
	return model.NewMesh(
		model.WithName(name),
		model.WithPositions(positions),
		model.WithNormals(normals),
		model.WithIndices(indices),
	), nil
}
