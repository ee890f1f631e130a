package overlay

// OverlayBuilderOption is a functional option for configuring an Overlay during construction.
type OverlayBuilderOption func(*overlayImpl)

// WithBindings replaces the key to command table.
//
// Parameters:
//   - bindings: key code to command
//
// Returns:
//   - OverlayBuilderOption: functional option to set the bindings
func WithBindings(bindings map[int]Command) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.bindings = bindings
	}
}

// WithReloader sets the action run by CommandReloadFocal.
//
// Parameters:
//   - reload: reloads the central object from disk
//
// Returns:
//   - OverlayBuilderOption: functional option to set the reloader
func WithReloader(reload func() error) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.reload = reload
	}
}
