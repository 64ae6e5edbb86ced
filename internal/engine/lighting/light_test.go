package lighting

import (
	"testing"

	"github.com/Faultbox/raymarcher/pkg/math"
)

type fakeUniforms struct {
	ints   map[string]int32
	floats map[string]float32
	vecs   map[string]math.Vec3
}

func newFakeUniforms() *fakeUniforms {
	return &fakeUniforms{
		ints:   map[string]int32{},
		floats: map[string]float32{},
		vecs:   map[string]math.Vec3{},
	}
}

func (f *fakeUniforms) SetInt(name string, v int32)      { f.ints[name] = v }
func (f *fakeUniforms) SetFloat(name string, v float32)  { f.floats[name] = v }
func (f *fakeUniforms) SetVec3(name string, v math.Vec3) { f.vecs[name] = v }

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestDirectionalApply(t *testing.T) {
	u := newFakeUniforms()
	l := DirectionalLight{
		Phong: Phong{
			Ambient:  math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
			Diffuse:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			Specular: math.Vec3{X: 1, Y: 1, Z: 1},
		},
		Direction: math.Vec3{X: -0.2, Y: -1, Z: -0.3},
	}
	l.Apply(u, "dirLight")

	if got := u.vecs["dirLight.direction"]; got != l.Direction {
		t.Errorf("direction: got %v, want %v", got, l.Direction)
	}
	if got := u.vecs["dirLight.diffuse"]; got != l.Diffuse {
		t.Errorf("diffuse: got %v, want %v", got, l.Diffuse)
	}
	if len(u.vecs) != 4 || len(u.floats) != 0 {
		t.Errorf("wrote %d vec3 and %d float uniforms, want 4 and 0", len(u.vecs), len(u.floats))
	}
}

func TestFlashLightFollowsCamera(t *testing.T) {
	f := FlashLight{
		Phong:       Phong{Diffuse: math.Vec3{X: 1, Y: 1, Z: 1}},
		Attenuation: Range50,
		Cone:        NewCone(12.5, 15),
	}
	pos := math.Vec3{X: 1, Y: 2, Z: 3}
	dir := math.Vec3{Z: -1}

	u := newFakeUniforms()
	f.At(pos, dir).Apply(u, "flashLight")

	if u.vecs["flashLight.position"] != pos || u.vecs["flashLight.direction"] != dir {
		t.Errorf("flashlight not placed at camera: %v %v", u.vecs["flashLight.position"], u.vecs["flashLight.direction"])
	}
	if u.floats["flashLight.linear"] != Range50.Linear {
		t.Errorf("linear: got %v, want %v", u.floats["flashLight.linear"], Range50.Linear)
	}
	if u.floats["flashLight.cutOff"] <= u.floats["flashLight.outerCutOff"] {
		t.Errorf("inner cone cosine %v should exceed outer %v", u.floats["flashLight.cutOff"], u.floats["flashLight.outerCutOff"])
	}
}

func TestNewCone(t *testing.T) {
	c := NewCone(0, 60)
	if abs(c.CutOff-1) > 1e-6 {
		t.Errorf("CutOff: got %v, want 1", c.CutOff)
	}
	if abs(c.OuterCutOff-0.5) > 1e-6 {
		t.Errorf("OuterCutOff: got %v, want 0.5", c.OuterCutOff)
	}
}

func TestAttenuation(t *testing.T) {
	a := Attenuation{Constant: 1, Linear: 0.5, Quadratic: 0.25}
	if got := a.At(0); got != 1 {
		t.Errorf("At(0): got %v, want 1", got)
	}
	if got := a.At(2); abs(got-1.0/3.0) > 1e-6 {
		t.Errorf("At(2): got %v, want 1/3", got)
	}
	if got := (Attenuation{}).At(5); got != 1 {
		t.Errorf("zero attenuation: got %v, want 1", got)
	}
}

func TestPointLightBuffer(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{Position: math.Vec3{X: float32(i)}}) {
			t.Fatalf("AddLight %d rejected", i)
		}
	}
	if b.AddLight(PointLight{}) {
		t.Error("AddLight accepted a light past MaxPointLights")
	}

	u := newFakeUniforms()
	b.Apply(u, "pointLights", "pointLightCount")
	if got := u.ints["pointLightCount"]; got != MaxPointLights {
		t.Errorf("count: got %d, want %d", got, MaxPointLights)
	}
	if got := u.vecs["pointLights[2].position"]; got.X != 2 {
		t.Errorf("pointLights[2].position: got %v", got)
	}

	b.SetLights(make([]PointLight, MaxPointLights+3))
	if b.Count() != MaxPointLights {
		t.Errorf("SetLights: count %d, want %d", b.Count(), MaxPointLights)
	}

	b.Clear()
	u = newFakeUniforms()
	b.Apply(u, "pointLights", "pointLightCount")
	if got, ok := u.ints["pointLightCount"]; !ok || got != 0 {
		t.Errorf("empty buffer count: got %d (set %v), want 0", got, ok)
	}
}
