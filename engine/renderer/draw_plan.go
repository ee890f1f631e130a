package renderer

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
)

// drawCall is one planned draw: which pipeline, which geometry and which slot of the
// per-draw uniform buffer it reads.
type drawCall struct {
	pipeline pipelineKind
	mesh     *model.Mesh
	slot     int
}

// planDraws turns draw records into ordered draw calls plus the packed per-draw
// uniform data, one DrawUniformStride slot per call. Records without geometry are
// dropped. In pick mode only filled records are kept and all of them use the pick
// pipeline. Calls are grouped by pipeline, keeping record order inside a group.
func planDraws(records []model.DrawRecord, pickMode bool) ([]drawCall, []byte) {
	calls := make([]drawCall, 0, len(records))
	uniforms := make([]byte, 0, len(records)*DrawUniformStride)

	for _, r := range records {
		if r.Mesh.Empty() {
			continue
		}
		kind, ok := pipelineFor(r, pickMode)
		if !ok {
			continue
		}
		u := NewGPUDrawUniform(r.Transform, r.Color)
		slot := len(calls)
		uniforms = append(uniforms, make([]byte, DrawUniformStride)...)
		copy(uniforms[slot*DrawUniformStride:], u.Marshal())
		calls = append(calls, drawCall{pipeline: kind, mesh: r.Mesh, slot: slot})
	}

	slices.SortStableFunc(calls, func(a, b drawCall) int {
		return int(a.pipeline) - int(b.pipeline)
	})
	return calls, uniforms
}

func pipelineFor(r model.DrawRecord, pickMode bool) (pipelineKind, bool) {
	if pickMode {
		return pipelinePick, r.Mode == model.DrawFill
	}
	switch r.Mode {
	case model.DrawWireframe:
		return pipelineWire, true
	case model.DrawLines:
		return pipelineLines, true
	default:
		if r.Lit {
			return pipelineLit, true
		}
		return pipelineFlat, true
	}
}
