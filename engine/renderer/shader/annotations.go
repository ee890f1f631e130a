// annotations.go defines the @oxy: annotations understood by the WGSL pre-processor.
// An annotation is a single-line WGSL comment of the form
//
//	//@oxy:<type> <args...>
//
// and is replaced by generated WGSL during pre-processing.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix marks an annotation inside a WGSL comment line.
const annotationPrefix = "@oxy:"

// AnnotationType identifies what an annotation asks the pre-processor to do.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the WGSL source of a registered struct.
	//
	// Syntax: //@oxy:include <struct>
	//
	// Example: //@oxy:include camera
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a @group/@binding variable declaration for a
	// registered struct and records it in the declarations list.
	//
	// Syntax: //@oxy:group <group> <binding> <address_space> <var_name> <struct>
	//
	// Example: //@oxy:group 0 0 uniform camera camera
	AnnotationTypeBindingGroup AnnotationType = "group"
)

// AnnotationArg is a single whitespace-separated annotation argument.
type AnnotationArg string

// Struct keys registered by default.
const (
	AnnotationArgCamera      AnnotationArg = "camera"
	AnnotationArgLight       AnnotationArg = "light"
	AnnotationArgLightBuffer AnnotationArg = "light_buffer"
)

// Address spaces accepted by @oxy:group.
const (
	annotationArgUniform     AnnotationArg = "uniform"
	annotationArgStorageRead AnnotationArg = "storage_read"
)

var addressSpaces = map[AnnotationArg]string{
	annotationArgUniform:     "var<uniform>",
	annotationArgStorageRead: "var<storage, read>",
}

// Annotation is one parsed @oxy: line.
type Annotation struct {
	// Type is the annotation kind.
	Type AnnotationType

	// Args are the arguments after the type, group and binding removed.
	Args []AnnotationArg

	// Line is the 1-based source line.
	Line int

	// Group and Binding are set for AnnotationTypeBindingGroup only.
	Group   int
	Binding int
}

// parseAnnotation parses a single source line. It returns nil without error when the
// line is not an annotation.
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	body, ok := strings.CutPrefix(trimmed, "//")
	if !ok {
		return nil, nil
	}
	body, ok = strings.CutPrefix(strings.TrimSpace(body), annotationPrefix)
	if !ok {
		return nil, nil
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, fmt.Errorf("line %d: empty annotation", lineNum)
	}

	a := &Annotation{Type: AnnotationType(fields[0]), Line: lineNum}
	args := fields[1:]

	switch a.Type {
	case AnnotationTypeInclude:
		if len(args) != 1 {
			return nil, fmt.Errorf("line %d: @oxy:include takes 1 argument, got %d", lineNum, len(args))
		}
	case AnnotationTypeBindingGroup:
		if len(args) != 5 {
			return nil, fmt.Errorf("line %d: @oxy:group takes 5 arguments, got %d", lineNum, len(args))
		}
		group, err := strconv.Atoi(args[0])
		if err != nil || group < 0 {
			return nil, fmt.Errorf("line %d: invalid group %q", lineNum, args[0])
		}
		binding, err := strconv.Atoi(args[1])
		if err != nil || binding < 0 {
			return nil, fmt.Errorf("line %d: invalid binding %q", lineNum, args[1])
		}
		if _, ok := addressSpaces[AnnotationArg(args[2])]; !ok {
			return nil, fmt.Errorf("line %d: unknown address space %q", lineNum, args[2])
		}
		a.Group, a.Binding = group, binding
		args = args[2:]
	default:
		return nil, fmt.Errorf("line %d: unknown annotation type %q", lineNum, a.Type)
	}

	for _, arg := range args {
		a.Args = append(a.Args, AnnotationArg(arg))
	}
	return a, nil
}

// HasBinding reports whether decls declares the given group and binding.
func HasBinding(decls []Annotation, group, binding int) bool {
	return slices.ContainsFunc(decls, func(a Annotation) bool {
		return a.Type == AnnotationTypeBindingGroup && a.Group == group && a.Binding == binding
	})
}
