// Package lighting provides the Phong light records consumed by the lit shader.
package lighting

import "github.com/Faultbox/raymarcher/pkg/math"

// Uniforms is the subset of a shader program the lights write to.
type Uniforms interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v math.Vec3)
}

// Phong holds the colour of each lighting term.
type Phong struct {
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Attenuation is the 1 / (c + l*d + q*d*d) falloff.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// At returns the attenuation factor at distance d.
func (a Attenuation) At(d float32) float32 {
	den := a.Constant + a.Linear*d + a.Quadratic*d*d
	if den <= 0 {
		return 1
	}
	return 1 / den
}

// Range50 is a common falloff that reaches a few percent at 50 units.
var Range50 = Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032}

// Cone bounds a spot light. Both values are cosines of the half-angle.
type Cone struct {
	CutOff      float32
	OuterCutOff float32
}

// NewCone builds a cone from inner and outer half-angles in degrees.
func NewCone(innerDeg, outerDeg float32) Cone {
	return Cone{
		CutOff:      math.Cos(math.Radians(innerDeg)),
		OuterCutOff: math.Cos(math.Radians(outerDeg)),
	}
}

// DirectionalLight is infinitely far away, like the sun.
type DirectionalLight struct {
	Phong
	Direction math.Vec3
}

// PointLight shines in all directions from a position.
type PointLight struct {
	Phong
	Attenuation
	Position math.Vec3
}

// SpotLight shines a cone from a position.
type SpotLight struct {
	Phong
	Attenuation
	Cone
	Position  math.Vec3
	Direction math.Vec3
}

// FlashLight is a spot light that follows the camera.
type FlashLight struct {
	Phong
	Attenuation
	Cone
}

// At places the flashlight at a camera position and direction.
func (f FlashLight) At(position, direction math.Vec3) SpotLight {
	return SpotLight{
		Phong:       f.Phong,
		Attenuation: f.Attenuation,
		Cone:        f.Cone,
		Position:    position,
		Direction:   direction,
	}
}

func (p Phong) apply(u Uniforms, name string) {
	u.SetVec3(name+".ambient", p.Ambient)
	u.SetVec3(name+".diffuse", p.Diffuse)
	u.SetVec3(name+".specular", p.Specular)
}

func (a Attenuation) apply(u Uniforms, name string) {
	u.SetFloat(name+".constant", a.Constant)
	u.SetFloat(name+".linear", a.Linear)
	u.SetFloat(name+".quadratic", a.Quadratic)
}

func (c Cone) apply(u Uniforms, name string) {
	u.SetFloat(name+".cutOff", c.CutOff)
	u.SetFloat(name+".outerCutOff", c.OuterCutOff)
}

// Apply writes the light into the struct uniform called name.
func (l DirectionalLight) Apply(u Uniforms, name string) {
	l.Phong.apply(u, name)
	u.SetVec3(name+".direction", l.Direction)
}

// Apply writes the light into the struct uniform called name.
func (l PointLight) Apply(u Uniforms, name string) {
	l.Phong.apply(u, name)
	l.Attenuation.apply(u, name)
	u.SetVec3(name+".position", l.Position)
}

// Apply writes the light into the struct uniform called name.
func (l SpotLight) Apply(u Uniforms, name string) {
	l.Phong.apply(u, name)
	l.Attenuation.apply(u, name)
	l.Cone.apply(u, name)
	u.SetVec3(name+".position", l.Position)
	u.SetVec3(name+".direction", l.Direction)
}
