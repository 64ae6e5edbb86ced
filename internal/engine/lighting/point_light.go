package lighting

import "strconv"

// MaxPointLights is the size of the point light array in the lit shader.
const MaxPointLights = 4

// PointLightBuffer holds point lights for upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights in the buffer.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	if len(lights) > MaxPointLights {
		lights = lights[:MaxPointLights]
	}
	b.Lights = append(b.Lights, lights...)
}

// Apply writes name[i] for every light and the count to countName.
func (b *PointLightBuffer) Apply(u Uniforms, name, countName string) {
	for i, l := range b.Lights {
		l.Apply(u, name+"["+strconv.Itoa(i)+"]")
	}
	u.SetInt(countName, int32(len(b.Lights)))
}
