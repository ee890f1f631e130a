package interaction

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-lumen/common"
)

// DefaultDoubleClickWindow is the longest gap between two left presses that still
// counts as a double click.
const DefaultDoubleClickWindow = 250 * time.Millisecond

// NoSelection is the selection value when no light is under the pointer.
const NoSelection = -1

// State is the pointer-button state of the machine.
type State int

const (
	// StateIdle means no tracked button is held.
	StateIdle State = iota

	// StateLeftDown means the left button is held.
	StateLeftDown

	// StateRightDown means the right button is held.
	StateRightDown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLeftDown:
		return "left down"
	case StateRightDown:
		return "right down"
	default:
		return "unknown"
	}
}

// CameraRig is the part of the camera the machine drives.
type CameraRig interface {
	Rotate(dYaw, dPitch, dRoll float32)
	Zoom(delta float32)
}

// SceneRegistry is the part of the scene the machine queries and mutates.
type SceneRegistry interface {
	ResolveIdentityByPickColor(c common.PickColor) int
	LightIDAt(index int) int
	RotateLight(id int, dx, dy float32) bool
	TogglePanel(id int) bool
}

type machineImpl struct {
	mu *sync.Mutex

	camera CameraRig
	scene  SceneRegistry

	state     State
	selection int

	awaitingPickReadback bool
	doubleClickPending   bool
	lastLeftPress        time.Time

	prev, current [2]float64
	width, height int

	pointerCaptured bool
	rollModifier    bool

	now               func() time.Time
	doubleClickWindow time.Duration
	correction        float32
}

// Machine turns raw pointer events into camera and light manipulation.
//
// A press records the button and asks the host for a pick readback: the next frame
// renders pick colors, reads the pixel under the cursor and hands it to
// CompletePickReadback, which fixes the selection for the rest of the drag.
// Pointer motion is converted to frustum-space deltas and routed by state:
// right-drag on a light rotates it, left-drag on empty space orbits the camera (or
// rolls it while the modifier is held), and left-drag on a light does nothing.
type Machine interface {
	// Press handles a mouse button press. Presses are ignored while the overlay
	// captures the pointer.
	//
	// Parameters:
	//   - button: common.MouseButtonLeft or common.MouseButtonRight, others are ignored
	Press(button int)

	// Release handles a mouse button release: back to idle with no selection.
	//
	// Parameters:
	//   - button: the released button
	Release(button int)

	// Move handles a cursor position sample and routes the resulting delta.
	// The position is tracked in every state so the first delta after a press is
	// measured against the sample just before it.
	//
	// Parameters:
	//   - x: cursor x in window pixels
	//   - y: cursor y in window pixels
	Move(x, y float64)

	// Scroll zooms the camera by dy unless the overlay captures the pointer.
	//
	// Parameters:
	//   - dy: vertical scroll offset
	Scroll(dy float64)

	// SetViewport records the framebuffer size used for delta projection.
	SetViewport(width, height int)

	// SetPointerCaptured records whether the overlay owns the pointer this frame.
	SetPointerCaptured(captured bool)

	// SetRollModifier records whether the camera roll modifier (Ctrl) is held.
	SetRollModifier(held bool)

	// AwaitingPickReadback reports whether the next frame must run the pick pass.
	AwaitingPickReadback() bool

	// CompletePickReadback resolves the color read under the cursor into the
	// selection. A pending double click toggles the hit light's panel. Calling it
	// without a pending readback does nothing.
	//
	// Parameters:
	//   - c: the color read back from the pick pass
	CompletePickReadback(c common.PickColor)

	// CursorPos returns the most recent cursor sample.
	CursorPos() (x, y float64)

	// State returns the button state.
	State() State

	// Selection returns the selected light identity, or NoSelection.
	Selection() int

	// DoubleClickPending reports whether a double click awaits its pick readback.
	DoubleClickPending() bool
}

var _ Machine = &machineImpl{}

// NewMachine creates an idle Machine driving cam and sc.
// Defaults: wall clock, 250 ms double-click window, correction factor 10.
//
// Parameters:
//   - cam: the camera to orbit, roll and zoom
//   - sc: the scene to pick from and rotate lights in
//   - options: functional options to configure the machine
//
// Returns:
//   - Machine: the new machine
func NewMachine(cam CameraRig, sc SceneRegistry, options ...MachineBuilderOption) Machine {
	m := &machineImpl{
		mu:                &sync.Mutex{},
		camera:            cam,
		scene:             sc,
		selection:         NoSelection,
		now:               time.Now,
		doubleClickWindow: DefaultDoubleClickWindow,
		correction:        common.DefaultCorrectionFactor,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *machineImpl) Press(button int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pointerCaptured {
		return
	}

	switch button {
	case common.MouseButtonLeft:
		now := m.now()
		m.awaitingPickReadback = true
		if !m.lastLeftPress.IsZero() && now.Sub(m.lastLeftPress) < m.doubleClickWindow {
			m.doubleClickPending = true
			m.lastLeftPress = time.Time{}
			return
		}
		m.lastLeftPress = now
		m.state = StateLeftDown
		m.selection = NoSelection

	case common.MouseButtonRight:
		m.awaitingPickReadback = true
		m.state = StateRightDown
		m.selection = NoSelection
	}
}

func (m *machineImpl) Release(button int) {
	if button != common.MouseButtonLeft && button != common.MouseButtonRight {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateIdle
	m.selection = NoSelection
}

func (m *machineImpl) Move(x, y float64) {
	m.mu.Lock()
	m.prev = m.current
	m.current = [2]float64{x, y}
	dx, dy := common.ProjectScreenDelta(
		m.current[0]-m.prev[0], m.current[1]-m.prev[1],
		m.width, m.height, m.correction,
	)
	state, sel, roll := m.state, m.selection, m.rollModifier
	m.mu.Unlock()

	switch {
	case state == StateRightDown && sel != NoSelection:
		m.scene.RotateLight(sel, dx, dy)
	case state == StateLeftDown && sel == NoSelection:
		if roll {
			m.camera.Rotate(0, 0, dx)
		} else {
			m.camera.Rotate(dx, dy, 0)
		}
	}
}

func (m *machineImpl) Scroll(dy float64) {
	m.mu.Lock()
	captured := m.pointerCaptured
	m.mu.Unlock()
	if captured {
		return
	}
	m.camera.Zoom(float32(dy))
}

func (m *machineImpl) SetViewport(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
}

func (m *machineImpl) SetPointerCaptured(captured bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointerCaptured = captured
}

func (m *machineImpl) SetRollModifier(held bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollModifier = held
}

func (m *machineImpl) AwaitingPickReadback() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.awaitingPickReadback
}

func (m *machineImpl) CompletePickReadback(c common.PickColor) {
	m.mu.Lock()
	if !m.awaitingPickReadback {
		m.mu.Unlock()
		return
	}
	double := m.doubleClickPending
	m.awaitingPickReadback = false
	m.doubleClickPending = false
	m.mu.Unlock()

	sel := NoSelection
	if idx := m.scene.ResolveIdentityByPickColor(c); idx >= 0 {
		sel = m.scene.LightIDAt(idx)
	}

	m.mu.Lock()
	m.selection = sel
	m.mu.Unlock()

	if double && sel != NoSelection {
		m.scene.TogglePanel(sel)
	}
}

func (m *machineImpl) CursorPos() (x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current[0], m.current[1]
}

func (m *machineImpl) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *machineImpl) Selection() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selection
}

func (m *machineImpl) DoubleClickPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doubleClickPending
}
