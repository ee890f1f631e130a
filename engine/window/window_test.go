package window

import "testing"

func TestCursorScale(t *testing.T) {
	tests := []struct {
		name        string
		framebuffer int
		window      int
		want        float64
	}{
		{"standard display", 800, 800, 1},
		{"retina", 1600, 800, 2},
		{"fractional", 1500, 1000, 1.5},
		{"minimized", 0, 0, 1},
		{"zero window", 800, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cursorScale(tt.framebuffer, tt.window); got != tt.want {
				t.Fatalf("cursorScale(%d, %d) = %v, want %v", tt.framebuffer, tt.window, got, tt.want)
			}
		})
	}
}
