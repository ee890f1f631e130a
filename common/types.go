// package common contains common types that are used throughout this editor. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// PickColor is a 24-bit RGB color used to identify an entity in the pick pass.
// The zero value (0, 0, 0) is never assigned to an entity and reads back as "nothing".
type PickColor [3]uint8

// NoPickColor is the color drawn by the background and by entities that cannot be picked.
var NoPickColor = PickColor{}

// PickColorFromID decodes a 24-bit id back into its RGB triple.
//
// Parameters:
//   - id: the packed id (R*65536 + G*256 + B); bits above 24 are ignored
//
// Returns:
//   - PickColor: the decoded color
func PickColorFromID(id uint32) PickColor {
	return PickColor{uint8(id >> 16), uint8(id >> 8), uint8(id)}
}

// ID packs the color into its 24-bit id: R*65536 + G*256 + B.
func (c PickColor) ID() uint32 {
	return uint32(c[0])*65536 + uint32(c[1])*256 + uint32(c[2])
}

// Vec4 returns the color normalized to [0, 1] with an opaque alpha, ready for a shader uniform.
func (c PickColor) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255, 1}
}

func (c PickColor) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}
