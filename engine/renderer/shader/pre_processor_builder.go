package shader

type PreProcessorBuilderOption func(*preProcessor)

// WithStruct registers a WGSL struct under key for @oxy:include and @oxy:group.
//
// Parameters:
//   - key: the annotation argument naming the struct
//   - source: the WGSL struct definition
//   - typeName: the WGSL type name the source declares
//
// Returns:
//   - PreProcessorBuilderOption: a function that registers the struct
func WithStruct(key AnnotationArg, source, typeName string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.structs[key] = registryEntry{Source: source, Type: typeName}
	}
}
