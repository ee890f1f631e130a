package interaction

import "time"

// MachineBuilderOption is a functional option for configuring a Machine during construction.
type MachineBuilderOption func(*machineImpl)

// WithClock replaces the wall clock used for double-click timing.
//
// Parameters:
//   - now: returns the current time
//
// Returns:
//   - MachineBuilderOption: functional option to set the clock
func WithClock(now func() time.Time) MachineBuilderOption {
	return func(m *machineImpl) {
		if now != nil {
			m.now = now
		}
	}
}

// WithDoubleClickWindow sets the longest gap between two left presses that counts as
// a double click.
//
// Parameters:
//   - d: the window, non-positive values are ignored
//
// Returns:
//   - MachineBuilderOption: functional option to set the window
func WithDoubleClickWindow(d time.Duration) MachineBuilderOption {
	return func(m *machineImpl) {
		if d > 0 {
			m.doubleClickWindow = d
		}
	}
}

// WithCorrectionFactor sets the depth correction factor applied to frustum-space deltas.
//
// Parameters:
//   - k: the factor
//
// Returns:
//   - MachineBuilderOption: functional option to set the factor
func WithCorrectionFactor(k float32) MachineBuilderOption {
	return func(m *machineImpl) {
		m.correction = k
	}
}

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - MachineBuilderOption: functional option to set the viewport
func WithViewport(width, height int) MachineBuilderOption {
	return func(m *machineImpl) {
		m.width, m.height = width, height
	}
}
