package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-lumen/engine/camera"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
)

// registryEntry pairs a WGSL struct source with the type name it declares.
type registryEntry struct {
	Source string
	Type   string
}

type preProcessor struct {
	structs      map[AnnotationArg]registryEntry
	declarations []Annotation
}

// PreProcessor expands @oxy: annotations in WGSL source. Includes are replaced by the
// registered struct source, each struct injected at most once; group annotations are
// replaced by @group/@binding declarations and collected for later inspection.
type PreProcessor interface {
	// Process expands every annotation in source.
	//
	// Parameters:
	//   - source: WGSL source with annotations
	//
	// Returns:
	//   - string: plain WGSL
	//   - error: an error naming the line of a malformed or unknown annotation
	Process(source string) (string, error)

	// Declarations returns the binding declarations collected by the last Process
	// call, in source order.
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the camera and light structs registered.
// Further structs are added with WithStruct.
//
// Parameters:
//   - options: functional options to register extra structs
//
// Returns:
//   - PreProcessor: the pre-processor
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	p := &preProcessor{
		structs: map[AnnotationArg]registryEntry{
			AnnotationArgCamera:      {Source: camera.GPUCameraUniformSource, Type: "CameraUniform"},
			AnnotationArgLight:       {Source: light.GPULightSource, Type: "Light"},
			AnnotationArgLightBuffer: {Source: light.GPULightBufferSource, Type: "LightBuffer"},
		},
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = nil
	included := map[AnnotationArg]bool{}

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case AnnotationTypeInclude:
			entry, ok := p.structs[a.Args[0]]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @oxy:include argument %q", a.Line, a.Args[0])
			}
			if !included[a.Args[0]] {
				out = append(out, strings.TrimRight(entry.Source, "\n"))
				included[a.Args[0]] = true
			}
		case AnnotationTypeBindingGroup:
			entry, ok := p.structs[a.Args[2]]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @oxy:group struct %q", a.Line, a.Args[2])
			}
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;",
				a.Group, a.Binding, addressSpaces[a.Args[0]], a.Args[1], entry.Type))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
