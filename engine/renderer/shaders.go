package renderer

import (
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/oxy-lumen/engine/renderer/shader"
)

// sceneShaderSource holds every entry point the editor pipelines use, with its
// structs and bindings written as @oxy: annotations.
//
//go:embed assets/scene.wgsl
var sceneShaderSource string

const annotationArgDraw shader.AnnotationArg = "draw"

// frameBindings are the bindings the pipeline layouts provide, as group and binding pairs.
var frameBindings = [][2]int{{0, 0}, {0, 1}, {1, 0}}

// buildSceneShader expands the scene shader annotations and checks that every binding
// the pipeline layouts provide is declared.
//
// Returns:
//   - string: plain WGSL ready for CreateShaderModule
//   - error: an error if pre-processing fails or a binding is missing
func buildSceneShader() (string, error) {
	p := shader.NewPreProcessor(shader.WithStruct(annotationArgDraw, GPUDrawUniformSource, "DrawUniform"))
	code, err := p.Process(sceneShaderSource)
	if err != nil {
		return "", fmt.Errorf("renderer: pre-process scene shader: %w", err)
	}
	for _, fb := range frameBindings {
		if !shader.HasBinding(p.Declarations(), fb[0], fb[1]) {
			return "", fmt.Errorf("renderer: scene shader does not declare @group(%d) @binding(%d)", fb[0], fb[1])
		}
	}
	return code, nil
}
