package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
)

// ErrUnsupportedFormat is returned when a path's extension has no loader backend.
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// Format identifies a mesh file format backend.
type Format int

const (
	// FormatOBJ selects the Wavefront OBJ backend.
	FormatOBJ Format = iota

	// FormatGLTF selects the glTF JSON backend.
	FormatGLTF

	// FormatGLB selects the binary glTF backend.
	FormatGLB
)

// Result is the outcome of loading one path during Preload.
type Result struct {
	Path string
	Mesh *model.Mesh
	Err  error
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	meshCache map[string]*model.Mesh
	caching   bool

	workers int
	pool    worker.DynamicWorkerPool

	backends map[Format]loaderBackend
}

// Loader loads triangle meshes from disk and caches them by path.
// The backend is chosen from the file extension: .obj, .gltf and .glb are understood.
// Loaded meshes always carry one normal per vertex; files without usable normals get
// radial normals computed from the vertex centroid.
type Loader interface {
	// Load imports a mesh file and caches the result.
	// If the mesh is already cached (by file path), the cached mesh is returned.
	//
	// Parameters:
	//   - path: the file path to the mesh file
	//
	// Returns:
	//   - *model.Mesh: the loaded mesh
	//   - error: ErrUnsupportedFormat for unknown extensions, or the backend's error
	Load(path string) (*model.Mesh, error)

	// LoadReader imports a mesh from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded mesh
	//   - format: which backend decodes the stream
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - *model.Mesh: the loaded mesh
	//   - error: error if decoding fails
	LoadReader(name string, format Format, r io.Reader) (*model.Mesh, error)

	// Preload loads several meshes concurrently on the loader's worker pool and blocks
	// until all of them have finished. Successful loads are cached.
	//
	// Parameters:
	//   - paths: the files to load
	//
	// Returns:
	//   - []Result: one result per path, in the order given
	Preload(paths ...string) []Result

	// Get retrieves a cached mesh by path. Returns nil if not found.
	//
	// Parameters:
	//   - path: the cache key to look up
	//
	// Returns:
	//   - *model.Mesh: the cached mesh or nil
	Get(path string) *model.Mesh

	// Evict drops a path from the cache so the next Load reads the file again.
	//
	// Parameters:
	//   - path: the cache key to drop
	Evict(path string)
}

var _ Loader = &loader{}

// NewLoader creates a Loader with the OBJ and glTF backends registered and the
// specified options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		meshCache: make(map[string]*model.Mesh),
		caching:   true,
		workers:   4,
		backends: map[Format]loaderBackend{
			FormatOBJ:  newOBJLoaderBackend(),
			FormatGLTF: newGLTFLoaderBackend(),
			FormatGLB:  newGLTFLoaderBackend(),
		},
	}
	for _, option := range options {
		option(l)
	}
	l.pool = worker.NewDynamicWorkerPool(max(l.workers, 1), 64, 1*time.Second)
	return l
}

// FormatForPath maps a file extension to a Format.
//
// Parameters:
//   - path: the file path
//
// Returns:
//   - Format: the matching format
//   - error: ErrUnsupportedFormat if no backend handles the extension
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".obj":
		return FormatOBJ, nil
	case ".gltf":
		return FormatGLTF, nil
	case ".glb":
		return FormatGLB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func (l *loader) Load(path string) (*model.Mesh, error) {
	if m := l.Get(path); m != nil {
		return m, nil
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	m, err := l.backends[format].Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	l.store(path, m)
	return m, nil
}

func (l *loader) LoadReader(name string, format Format, r io.Reader) (*model.Mesh, error) {
	if m := l.Get(name); m != nil {
		return m, nil
	}

	backend, ok := l.backends[format]
	if !ok {
		return nil, fmt.Errorf("%w: format %d", ErrUnsupportedFormat, format)
	}
	m, err := backend.LoadReader(name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}
	l.store(name, m)
	return m, nil
}

func (l *loader) Preload(paths ...string) []Result {
	results := make([]Result, len(paths))

	// The pool's own Wait blocks until workers idle out, so each batch joins on a WaitGroup.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		idx, p := i, path
		l.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				m, err := l.Load(p)
				results[idx] = Result{Path: p, Mesh: m, Err: err}
				return m, err
			},
		})
	}
	wg.Wait()
	return results
}

func (l *loader) Get(path string) *model.Mesh {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.meshCache[path]
}

func (l *loader) Evict(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.meshCache, path)
}

func (l *loader) store(path string, m *model.Mesh) {
	if !l.caching {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.meshCache[path] = m
}
