package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// meshEvictFrames is how many frames a mesh may go undrawn before its buffers are freed.
const meshEvictFrames = 120

// meshBuffers holds the GPU buffers of one mesh at one revision.
type meshBuffers struct {
	vertex *wgpu.Buffer
	index  *wgpu.Buffer
	wire   *wgpu.Buffer

	indexCount uint32
	wireCount  uint32

	revision uint64
	lastUsed uint64
}

// meshUploader creates and frees the buffers of a mesh.
type meshUploader interface {
	upload(m *model.Mesh) (*meshBuffers, error)
	release(b *meshBuffers)
}

// meshCache keeps one set of buffers per mesh, re-uploading when the mesh revision
// changes and freeing meshes that have not been drawn for meshEvictFrames frames.
type meshCache struct {
	uploader meshUploader
	entries  map[*model.Mesh]*meshBuffers
	frame    uint64
}

func newMeshCache(uploader meshUploader) *meshCache {
	return &meshCache{
		uploader: uploader,
		entries:  make(map[*model.Mesh]*meshBuffers),
	}
}

// get returns up-to-date buffers for m.
func (c *meshCache) get(m *model.Mesh) (*meshBuffers, error) {
	rev := m.Revision()
	if b, ok := c.entries[m]; ok {
		if b.revision == rev {
			b.lastUsed = c.frame
			return b, nil
		}
		c.uploader.release(b)
		delete(c.entries, m)
	}

	b, err := c.uploader.upload(m)
	if err != nil {
		return nil, fmt.Errorf("upload mesh %q: %w", m.Name(), err)
	}
	b.revision = rev
	b.lastUsed = c.frame
	c.entries[m] = b
	return b, nil
}

// endFrame advances the frame counter and frees stale entries.
func (c *meshCache) endFrame() {
	for m, b := range c.entries {
		if c.frame-b.lastUsed >= meshEvictFrames {
			c.uploader.release(b)
			delete(c.entries, m)
		}
	}
	c.frame++
}

// clear frees every entry.
func (c *meshCache) clear() {
	for m, b := range c.entries {
		c.uploader.release(b)
		delete(c.entries, m)
	}
}

func (c *meshCache) size() int {
	return len(c.entries)
}
