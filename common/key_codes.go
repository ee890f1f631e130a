package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyApostrophe   = 39  // ' key (ASCII)
	KeyComma        = 44  // , key (ASCII)
	KeyMinus        = 45  // - key (ASCII)
	KeyPeriod       = 46  // . key (ASCII)
	KeySemicolon    = 59  // ; key (ASCII)
	KeyEqual        = 61  // = key (ASCII)
	KeyA            = 65  // A key (ASCII)
	KeyC            = 67  // C key (ASCII)
	KeyD            = 68  // D key (ASCII)
	KeyG            = 71  // G key (ASCII)
	KeyH            = 72  // H key (ASCII)
	KeyK            = 75  // K key (ASCII)
	KeyL            = 76  // L key (ASCII)
	KeyN            = 78  // N key (ASCII)
	KeyO            = 79  // O key (ASCII)
	KeyR            = 82  // R key (ASCII)
	KeyS            = 83  // S key (ASCII)
	KeyV            = 86  // V key (ASCII)
	KeyW            = 87  // W key (ASCII)
	KeyLeftBracket  = 91  // [ key (ASCII)
	KeyRightBracket = 93  // ] key (ASCII)
	KeyEsc          = 256 // Escape key (GLFW)
	KeyBackspace    = 259 // Backspace key (GLFW)
	KeyDelete       = 261 // Delete key (GLFW)
	KeyRight        = 262 // Right arrow (GLFW)
	KeyLeft         = 263 // Left arrow (GLFW)
	KeyDown         = 264 // Down arrow (GLFW)
	KeyUp           = 265 // Up arrow (GLFW)
	KeyPageUp       = 266 // Page Up (GLFW)
	KeyPageDown     = 267 // Page Down (GLFW)
)

// Modifier keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// Mouse buttons, matching glfw.MouseButtonLeft/Right/Middle.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)
