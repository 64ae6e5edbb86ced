package framebuffer

import "testing"

func TestScaledSize(t *testing.T) {
	tests := []struct {
		w, h   int
		scale  float32
		ww, wh int32
	}{
		{900, 900, 1, 900, 900},
		{900, 600, 0.5, 450, 300},
		{901, 601, 0.5, 451, 301},
		{1, 1, 0.25, 1, 1},
		{0, 0, 1, 1, 1},
		{800, 600, 0, 800, 600},
		{800, 600, 2, 800, 600},
	}
	for _, tt := range tests {
		gw, gh := ScaledSize(tt.w, tt.h, tt.scale)
		if gw != tt.ww || gh != tt.wh {
			t.Errorf("ScaledSize(%d, %d, %v): got %dx%d, want %dx%d", tt.w, tt.h, tt.scale, gw, gh, tt.ww, tt.wh)
		}
	}
}
