package renderer

import "testing"

func TestAspect(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          float32
	}{
		{"wide", 1600, 800, 2},
		{"square", 900, 900, 1},
		{"tall", 400, 800, 0.5},
		{"zero height", 800, 0, 1},
		{"zero width", 0, 600, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Renderer{config: Config{Width: tt.width, Height: tt.height}}
			if got := r.Aspect(); got != tt.want {
				t.Errorf("Aspect() = %v, want %v", got, tt.want)
			}
		})
	}
}
