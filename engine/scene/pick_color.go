package scene

import "github.com/Carmen-Shannon/oxy-lumen/common"

// pickColorStep is the per-issue increment of the odometer's lowest channel.
const pickColorStep = 10

// pickColorOdometer issues unique pick colors. Blue advances by pickColorStep; a
// channel that would pass 255 resets to 0 and carries into the next channel up
// (blue into green, green into red). (0,0,0) is never issued.
type pickColorOdometer struct {
	rgb [3]int
}

func (o *pickColorOdometer) next() common.PickColor {
	o.advance()
	if o.rgb == [3]int{} {
		// every channel rolled over
		o.advance()
	}
	return common.PickColor{uint8(o.rgb[0]), uint8(o.rgb[1]), uint8(o.rgb[2])}
}

func (o *pickColorOdometer) advance() {
	for ch := 2; ch >= 0; ch-- {
		o.rgb[ch] += pickColorStep
		if o.rgb[ch] <= 255 {
			return
		}
		o.rgb[ch] = 0
	}
}
