package renderer

import "github.com/cogentcore/webgpu/wgpu"

// pipelineKind names the fixed set of render pipelines the editor uses.
type pipelineKind int

const (
	// pipelineLit shades filled triangles with the scene lights.
	pipelineLit pipelineKind = iota

	// pipelineFlat fills triangles with the record color.
	pipelineFlat

	// pipelineWire draws the derived unique-edge list of a triangle mesh.
	pipelineWire

	// pipelineLines draws the mesh indices directly as a line list.
	pipelineLines

	// pipelinePick fills triangles with the pick color into the offscreen pick target.
	pipelinePick

	pipelineCount
)

func (k pipelineKind) String() string {
	switch k {
	case pipelineLit:
		return "lit"
	case pipelineFlat:
		return "flat"
	case pipelineWire:
		return "wire"
	case pipelineLines:
		return "lines"
	case pipelinePick:
		return "pick"
	default:
		return "unknown"
	}
}

// pipelineConfig describes the fixed-function state of one pipeline.
type pipelineConfig struct {
	fragmentEntry string
	topology      wgpu.PrimitiveTopology
	cullMode      wgpu.CullMode
	offscreen     bool
	wireIndices   bool
}

// pipelineConfigs is indexed by pipelineKind.
var pipelineConfigs = [pipelineCount]pipelineConfig{
	pipelineLit: {
		fragmentEntry: "fs_lit",
		topology:      wgpu.PrimitiveTopologyTriangleList,
		cullMode:      wgpu.CullModeNone,
	},
	pipelineFlat: {
		fragmentEntry: "fs_flat",
		topology:      wgpu.PrimitiveTopologyTriangleList,
		cullMode:      wgpu.CullModeNone,
	},
	pipelineWire: {
		fragmentEntry: "fs_flat",
		topology:      wgpu.PrimitiveTopologyLineList,
		cullMode:      wgpu.CullModeNone,
		wireIndices:   true,
	},
	pipelineLines: {
		fragmentEntry: "fs_flat",
		topology:      wgpu.PrimitiveTopologyLineList,
		cullMode:      wgpu.CullModeNone,
	},
	pipelinePick: {
		fragmentEntry: "fs_flat",
		topology:      wgpu.PrimitiveTopologyTriangleList,
		cullMode:      wgpu.CullModeNone,
		offscreen:     true,
	},
}
