package app

import (
	"testing"

	"github.com/Faultbox/raymarcher/internal/engine/camera"
	"github.com/Faultbox/raymarcher/internal/engine/mesh"
	"github.com/Faultbox/raymarcher/pkg/math"
)

type recorder struct {
	ints   map[string]int32
	floats map[string]float32
	bools  map[string]bool
	vec2s  map[string]math.Vec2
	vec3s  map[string]math.Vec3
	mats   map[string][]math.Mat4
}

func newRecorder() *recorder {
	return &recorder{
		ints:   map[string]int32{},
		floats: map[string]float32{},
		bools:  map[string]bool{},
		vec2s:  map[string]math.Vec2{},
		vec3s:  map[string]math.Vec3{},
		mats:   map[string][]math.Mat4{},
	}
}

func (r *recorder) SetInt(name string, v int32)      { r.ints[name] = v }
func (r *recorder) SetFloat(name string, v float32)  { r.floats[name] = v }
func (r *recorder) SetBool(name string, v bool)      { r.bools[name] = v }
func (r *recorder) SetVec2(name string, v math.Vec2) { r.vec2s[name] = v }
func (r *recorder) SetVec3(name string, v math.Vec3) { r.vec3s[name] = v }
func (r *recorder) SetMat4(name string, m math.Mat4) { r.mats[name] = append(r.mats[name], m) }

type countingDevice struct {
	buffers []*countingBuffers
}

func (d *countingDevice) NewBuffers() mesh.Buffers {
	b := &countingBuffers{}
	d.buffers = append(d.buffers, b)
	return b
}

type countingBuffers struct {
	uploads, draws, releases int
}

func (b *countingBuffers) Upload([]mesh.Slot, int, []float32, []uint32)   { b.uploads++ }
func (b *countingBuffers) Draw(mesh.Primitive, mesh.Attributes, int, int) { b.draws++ }
func (b *countingBuffers) Release()                                       { b.releases++ }

func matNear(a, b math.Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			d := a[i][j] - b[i][j]
			if d > 1e-4 || d < -1e-4 {
				return false
			}
		}
	}
	return true
}

func TestLitSceneDraw(t *testing.T) {
	s := newLitScene()
	dev := &countingDevice{}
	u := newRecorder()
	cam := camera.New(math.Vec3{Y: 2, Z: 5})
	proj := projection(45, 0.1, 100, 1)

	s.draw(dev, u, cam, proj, true, 1.5)

	if len(dev.buffers) != len(s.objects) {
		t.Fatalf("allocated %d buffers for %d objects", len(dev.buffers), len(s.objects))
	}
	for i, b := range dev.buffers {
		if b.uploads != 1 || b.draws != 1 {
			t.Errorf("%s: uploads %d draws %d", s.objects[i].name, b.uploads, b.draws)
		}
	}

	models := u.mats["u_model"]
	mvps := u.mats["u_mvp"]
	if len(models) != len(s.objects) || len(mvps) != len(s.objects) {
		t.Fatalf("got %d models and %d mvps for %d objects", len(models), len(mvps), len(s.objects))
	}
	vp := cam.VP(proj)
	for i := range s.objects {
		if !matNear(mvps[i], vp.Mul(models[i])) {
			t.Errorf("%s: u_mvp is not VP * model", s.objects[i].name)
		}
	}

	if u.vec3s["u_viewPos"] != cam.Position() {
		t.Errorf("u_viewPos: got %v, want %v", u.vec3s["u_viewPos"], cam.Position())
	}
	if !u.bools["hasLighting"] {
		t.Error("hasLighting not set")
	}
	if u.vec3s["flashLight.position"] != cam.Position() || u.vec3s["flashLight.direction"] != cam.Direction() {
		t.Error("flashlight does not follow the camera")
	}
	if u.ints["pointLightCount"] != int32(s.points.Count()) {
		t.Errorf("pointLightCount: got %d, want %d", u.ints["pointLightCount"], s.points.Count())
	}

	// Second frame draws without re-uploading.
	s.draw(dev, u, cam, proj, true, 2)
	for i, b := range dev.buffers {
		if b.uploads != 1 || b.draws != 2 {
			t.Errorf("%s after second frame: uploads %d draws %d", s.objects[i].name, b.uploads, b.draws)
		}
	}

	s.release()
	for i, b := range dev.buffers {
		if b.releases != 1 {
			t.Errorf("%s: released %d times", s.objects[i].name, b.releases)
		}
	}
}

func TestLitSceneWithoutLighting(t *testing.T) {
	s := newLitScene()
	u := newRecorder()
	cam := camera.New(math.Vec3{Y: 2, Z: 5})

	s.draw(&countingDevice{}, u, cam, math.Identity(), false, 0)

	if u.bools["hasLighting"] {
		t.Error("hasLighting should be false")
	}
	if _, ok := u.vec3s["dirLight.direction"]; ok {
		t.Error("lights uploaded while lighting is off")
	}
}

func TestSetRaymarchUniforms(t *testing.T) {
	u := newRecorder()
	cam := camera.New(math.Vec3{Y: 2, Z: 5})

	setRaymarchUniforms(u, cam, raymarchState{time: 3.5, width: 450, height: 300, scene: 2, lighting: true})

	if u.floats["time"] != 3.5 {
		t.Errorf("time: got %v", u.floats["time"])
	}
	if u.vec2s["resolution"] != (math.Vec2{X: 450, Y: 300}) {
		t.Errorf("resolution: got %v", u.vec2s["resolution"])
	}
	if u.vec2s["mouse"] != (math.Vec2{X: 0.5, Y: 0.5}) {
		t.Errorf("mouse: got %v", u.vec2s["mouse"])
	}
	if u.ints["active_scene"] != 2 || !u.bools["hasLighting"] {
		t.Errorf("scene/lighting: got %d %v", u.ints["active_scene"], u.bools["hasLighting"])
	}
	for name, want := range map[string]math.Vec3{
		"cameraPos":   cam.Position(),
		"cameraFront": cam.Direction(),
		"cameraRight": cam.Right(),
		"cameraUp":    cam.Up(),
	} {
		if u.vec3s[name] != want {
			t.Errorf("%s: got %v, want %v", name, u.vec3s[name], want)
		}
	}
}

func TestProjection(t *testing.T) {
	p := projection(90, 1, 10, 2)
	// tan(45deg) = 1, so the y scale is 1 and x scale is 1/aspect.
	if d := p[1][1] - 1; d > 1e-5 || d < -1e-5 {
		t.Errorf("y scale: got %v, want 1", p[1][1])
	}
	if d := p[0][0] - 0.5; d > 1e-5 || d < -1e-5 {
		t.Errorf("x scale: got %v, want 0.5", p[0][0])
	}
}
