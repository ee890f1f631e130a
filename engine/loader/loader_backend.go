package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
)

// loaderBackend decodes one file format into a model.Mesh.
type loaderBackend interface {
	// Load reads and decodes the file at path.
	Load(path string) (*model.Mesh, error)

	// LoadReader decodes a stream, naming the resulting mesh.
	LoadReader(name string, r io.Reader) (*model.Mesh, error)
}
