package overlay

import (
	"errors"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-lumen/common"
	"github.com/Carmen-Shannon/oxy-lumen/engine/game_object"
	"github.com/Carmen-Shannon/oxy-lumen/engine/light"
	"github.com/Carmen-Shannon/oxy-lumen/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Command is an editor action bound to a key.
type Command int

const (
	CommandNone Command = iota
	CommandAddLight
	CommandRemoveOpen
	CommandCycleKind
	CommandToggleOn
	CommandResetRotation
	CommandToggleDecorations
	CommandCutOffDown
	CommandCutOffUp
	CommandReloadFocal
	CommandHelp
	CommandMoveXDown
	CommandMoveXUp
	CommandMoveYDown
	CommandMoveYUp
	CommandMoveZDown
	CommandMoveZUp
	CommandRotateXDown
	CommandRotateXUp
	CommandRotateZDown
	CommandRotateZUp
	CommandCycleColor
	CommandLinearDown
	CommandLinearUp
	CommandQuadraticDown
	CommandQuadraticUp
	CommandFocalShrink
	CommandFocalGrow
	CommandCycleFocalColor
	commandCount
)

// Edit step sizes for one key press.
const (
	// CutOffStep moves the spot cone, in degrees.
	CutOffStep float32 = 0.5

	// PositionStep moves a light along one axis.
	PositionStep float32 = 0.5

	// RotationStep moves one rotation slider, in degrees.
	RotationStep float32 = 5

	// LinearStep and QuadraticStep move the point light attenuation coefficients.
	LinearStep    float32 = 0.01
	QuadraticStep float32 = 0.002

	// ScaleStep multiplies or divides the central object scale.
	ScaleStep float32 = 1.1
)

// Palette is the color sequence the color commands cycle through. It starts with the
// default light color.
var Palette = []mgl32.Vec3{
	{1, 0, 1},
	{1, 1, 1},
	{1, 0.85, 0.6},
	{1, 0.2, 0.2},
	{0.2, 1, 0.2},
	{0.3, 0.5, 1},
	{1, 1, 0.2},
	{0.2, 1, 1},
}

var commandNames = map[Command]string{
	CommandAddLight:          "add light",
	CommandRemoveOpen:        "remove lights with open panels",
	CommandCycleKind:         "cycle light kind",
	CommandToggleOn:          "toggle light on/off",
	CommandResetRotation:     "reset light rotation",
	CommandToggleDecorations: "toggle axes and grid",
	CommandCutOffDown:        "narrow spot cone",
	CommandCutOffUp:          "widen spot cone",
	CommandReloadFocal:       "reload central object",
	CommandHelp:              "show key bindings",
	CommandMoveXDown:         "move light -x",
	CommandMoveXUp:           "move light +x",
	CommandMoveYDown:         "move light -y",
	CommandMoveYUp:           "move light +y",
	CommandMoveZDown:         "move light -z",
	CommandMoveZUp:           "move light +z",
	CommandRotateXDown:       "tilt light -x",
	CommandRotateXUp:         "tilt light +x",
	CommandRotateZDown:       "tilt light -z",
	CommandRotateZUp:         "tilt light +z",
	CommandCycleColor:        "cycle light color",
	CommandLinearDown:        "lower linear attenuation",
	CommandLinearUp:          "raise linear attenuation",
	CommandQuadraticDown:     "lower quadratic attenuation",
	CommandQuadraticUp:       "raise quadratic attenuation",
	CommandFocalShrink:       "shrink central object",
	CommandFocalGrow:         "grow central object",
	CommandCycleFocalColor:   "cycle central object color",
}

// editsPanel reports whether the command edits the lights with an open panel.
func (c Command) editsPanel() bool {
	switch c {
	case CommandRemoveOpen, CommandCycleKind, CommandToggleOn, CommandResetRotation,
		CommandCutOffDown, CommandCutOffUp, CommandCycleColor,
		CommandLinearDown, CommandLinearUp, CommandQuadraticDown, CommandQuadraticUp:
		return true
	}
	return c >= CommandMoveXDown && c <= CommandRotateZUp
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "none"
}

// DefaultBindings maps keys to editor commands.
func DefaultBindings() map[int]Command {
	return map[int]Command{
		common.KeyN:            CommandAddLight,
		common.KeyDelete:       CommandRemoveOpen,
		common.KeyK:            CommandCycleKind,
		common.KeyO:            CommandToggleOn,
		common.KeyR:            CommandResetRotation,
		common.KeyG:            CommandToggleDecorations,
		common.KeyLeftBracket:  CommandCutOffDown,
		common.KeyRightBracket: CommandCutOffUp,
		common.KeyL:            CommandReloadFocal,
		common.KeyH:            CommandHelp,
		common.KeyLeft:         CommandMoveXDown,
		common.KeyRight:        CommandMoveXUp,
		common.KeyDown:         CommandMoveYDown,
		common.KeyUp:           CommandMoveYUp,
		common.KeyPageDown:     CommandMoveZDown,
		common.KeyPageUp:       CommandMoveZUp,
		common.KeyS:            CommandRotateXDown,
		common.KeyW:            CommandRotateXUp,
		common.KeyA:            CommandRotateZDown,
		common.KeyD:            CommandRotateZUp,
		common.KeyC:            CommandCycleColor,
		common.KeyComma:        CommandLinearDown,
		common.KeyPeriod:       CommandLinearUp,
		common.KeySemicolon:    CommandQuadraticDown,
		common.KeyApostrophe:   CommandQuadraticUp,
		common.KeyMinus:        CommandFocalShrink,
		common.KeyEqual:        CommandFocalGrow,
		common.KeyV:            CommandCycleFocalColor,
	}
}

// keyNames labels the default bindings in the help output.
var keyNames = map[int]string{
	common.KeyN: "N", common.KeyDelete: "Delete", common.KeyK: "K", common.KeyO: "O",
	common.KeyR: "R", common.KeyG: "G", common.KeyLeftBracket: "[", common.KeyRightBracket: "]",
	common.KeyL: "L", common.KeyH: "H",
	common.KeyLeft: "Left", common.KeyRight: "Right", common.KeyDown: "Down", common.KeyUp: "Up",
	common.KeyPageDown: "PgDn", common.KeyPageUp: "PgUp",
	common.KeyS: "S", common.KeyW: "W", common.KeyA: "A", common.KeyD: "D", common.KeyC: "C",
	common.KeyComma: ",", common.KeyPeriod: ".", common.KeySemicolon: ";", common.KeyApostrophe: "'",
	common.KeyMinus: "-", common.KeyEqual: "=", common.KeyV: "V",
}

type overlayImpl struct {
	mu *sync.Mutex

	scene    scene.Scene
	bindings map[int]Command
	reload   func() error

	queue []Command
	held  map[int]bool
}

// Overlay is the keyboard-driven editor surface. Key presses queue commands which
// Update applies to the scene once per frame; open light panels are exposed through
// Panels. While a key editing an open panel is held the overlay reports that it
// captures the pointer so a drag cannot start mid-edit.
type Overlay interface {
	// HandleKey records a key transition. Presses of bound keys queue their command.
	//
	// Parameters:
	//   - key: the key code
	//   - pressed: true on press, false on release
	HandleKey(key int, pressed bool)

	// Queue adds a command directly, bypassing key bindings.
	Queue(cmd Command)

	// Update applies every queued command in order.
	Update()

	// CapturesPointer reports whether pointer input belongs to the overlay this frame:
	// a key bound to a panel edit is held while at least one panel is open.
	CapturesPointer() bool

	// ReleaseKeys forgets every held key. Called when the window loses focus, since
	// the matching releases may never arrive.
	ReleaseKeys()

	// Panels returns accessors for every light whose panel is open.
	Panels() []Panel

	// Bindings returns the key to command table.
	Bindings() map[int]Command
}

var _ Overlay = &overlayImpl{}

// NewOverlay creates an Overlay editing sc with the default key bindings.
//
// Parameters:
//   - sc: the scene to edit
//   - options: functional options to configure the overlay
//
// Returns:
//   - Overlay: the new overlay
func NewOverlay(sc scene.Scene, options ...OverlayBuilderOption) Overlay {
	o := &overlayImpl{
		mu:       &sync.Mutex{},
		scene:    sc,
		bindings: DefaultBindings(),
		held:     make(map[int]bool),
	}
	for _, option := range options {
		option(o)
	}
	return o
}

func (o *overlayImpl) HandleKey(key int, pressed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	cmd, bound := o.bindings[key]
	if !bound {
		return
	}
	if !pressed {
		delete(o.held, key)
		return
	}
	if o.held[key] {
		return
	}
	o.held[key] = true
	o.queue = append(o.queue, cmd)
}

func (o *overlayImpl) Queue(cmd Command) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.queue = append(o.queue, cmd)
}

func (o *overlayImpl) CapturesPointer() bool {
	o.mu.Lock()
	editing := false
	for key := range o.held {
		if o.bindings[key].editsPanel() {
			editing = true
			break
		}
	}
	o.mu.Unlock()
	return editing && len(o.Panels()) > 0
}

func (o *overlayImpl) ReleaseKeys() {
	o.mu.Lock()
	defer o.mu.Unlock()
	clear(o.held)
}

func (o *overlayImpl) Bindings() map[int]Command {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make(map[int]Command, len(o.bindings))
	for k, v := range o.bindings {
		out[k] = v
	}
	return out
}

func (o *overlayImpl) Panels() []Panel {
	var panels []Panel
	for _, l := range o.scene.Lights() {
		if l.PanelOpen() {
			panels = append(panels, Panel{light: l, remove: o.scene.RemoveLight})
		}
	}
	return panels
}

func (o *overlayImpl) Update() {
	o.mu.Lock()
	queue := o.queue
	o.queue = nil
	o.mu.Unlock()

	for _, cmd := range queue {
		o.apply(cmd)
	}
}

func (o *overlayImpl) apply(cmd Command) {
	switch cmd {
	case CommandAddLight:
		if _, err := o.scene.AddLight(); errors.Is(err, scene.ErrLightCapacity) {
			log.Printf("overlay: cannot add more than %d lights", o.scene.MaxLights())
		}

	case CommandToggleDecorations:
		o.scene.SetDecorationsEnabled(!o.scene.DecorationsEnabled())

	case CommandReloadFocal:
		if o.reload == nil {
			log.Println("overlay: no central object to reload")
			return
		}
		if err := o.reload(); err != nil {
			log.Printf("overlay: reload failed: %v", err)
		}

	case CommandHelp:
		o.logHelp()

	case CommandFocalShrink, CommandFocalGrow:
		f := o.scene.FocalObject()
		if cmd == CommandFocalGrow {
			f.SetScale(f.Scale() * ScaleStep)
		} else {
			f.SetScale(f.Scale() / ScaleStep)
		}

	case CommandCycleFocalColor:
		f := o.scene.FocalObject()
		f.SetColor(nextColor(f.Color()))

	default:
		if !cmd.editsPanel() {
			return
		}
		panels := o.Panels()
		if len(panels) == 0 {
			log.Printf("overlay: %s needs an open light panel (double-click a light)", cmd)
			return
		}
		for _, p := range panels {
			applyToPanel(cmd, p)
		}
	}
}

// axisSteps maps the move commands to their position delta.
var axisSteps = map[Command]mgl32.Vec3{
	CommandMoveXDown: {-PositionStep, 0, 0},
	CommandMoveXUp:   {PositionStep, 0, 0},
	CommandMoveYDown: {0, -PositionStep, 0},
	CommandMoveYUp:   {0, PositionStep, 0},
	CommandMoveZDown: {0, 0, -PositionStep},
	CommandMoveZUp:   {0, 0, PositionStep},
}

func applyToPanel(cmd Command, p Panel) {
	if d, ok := axisSteps[cmd]; ok {
		p.SetPosition(p.Position().Add(d))
		return
	}

	switch cmd {
	case CommandRemoveOpen:
		p.Remove()
	case CommandCycleKind:
		p.SetKind(p.Kind().Next())
	case CommandToggleOn:
		p.SetEnabled(!p.Enabled())
	case CommandResetRotation:
		p.ResetRotation()
	case CommandCutOffDown, CommandCutOffUp:
		step := CutOffStep
		if cmd == CommandCutOffDown {
			step = -step
		}
		inner, outer := p.CutOff()
		if step > 0 {
			p.SetOuterCutOff(outer + step)
			p.SetCutOff(inner + step)
		} else {
			p.SetCutOff(inner + step)
			p.SetOuterCutOff(outer + step)
		}
	case CommandRotateXDown, CommandRotateXUp, CommandRotateZDown, CommandRotateZUp:
		r := p.Rotation()
		switch cmd {
		case CommandRotateXDown:
			r[0] -= RotationStep
		case CommandRotateXUp:
			r[0] += RotationStep
		case CommandRotateZDown:
			r[1] -= RotationStep
		case CommandRotateZUp:
			r[1] += RotationStep
		}
		p.SetRotation(r[0], r[1])
	case CommandCycleColor:
		p.SetColor(nextColor(p.Color()))
	case CommandLinearDown, CommandLinearUp, CommandQuadraticDown, CommandQuadraticUp:
		linear, quadratic := p.Attenuation()
		switch cmd {
		case CommandLinearDown:
			linear -= LinearStep
		case CommandLinearUp:
			linear += LinearStep
		case CommandQuadraticDown:
			quadratic -= QuadraticStep
		case CommandQuadraticUp:
			quadratic += QuadraticStep
		}
		p.SetAttenuation(linear, quadratic)
	}
}

// nextColor returns the palette entry after c, or the first entry when c is not in
// the palette.
func nextColor(c mgl32.Vec3) mgl32.Vec3 {
	for i, p := range Palette {
		if p.ApproxEqual(c) {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

func (o *overlayImpl) logHelp() {
	log.Println("overlay: left-drag orbits the camera, ctrl+left-drag rolls it, scroll zooms")
	log.Println("overlay: right-drag on a light rotates it, double-click a light to open its panel")
	bindings := o.Bindings()
	for cmd := CommandAddLight; cmd < commandCount; cmd++ {
		for key, bound := range bindings {
			if bound == cmd {
				label, ok := keyNames[key]
				if !ok {
					label = "?"
				}
				log.Printf("overlay:   %-6s %s", label, cmd)
			}
		}
	}
	log.Printf("overlay: spot cone limit %.0f degrees, light position limit %.0f",
		light.MaxCutOff, game_object.PositionLimit)
}
