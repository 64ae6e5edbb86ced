package app

import (
	"github.com/Faultbox/raymarcher/internal/engine/camera"
	"github.com/Faultbox/raymarcher/internal/engine/lighting"
	"github.com/Faultbox/raymarcher/internal/engine/mesh"
	"github.com/Faultbox/raymarcher/pkg/math"
)

// uniforms is what the scene writes into a shader program.
type uniforms interface {
	lighting.Uniforms
	SetBool(name string, v bool)
	SetVec2(name string, v math.Vec2)
	SetMat4(name string, m math.Mat4)
}

// object is one mesh in the lit scene. model is evaluated every frame.
type object struct {
	name  string
	mesh  *mesh.Mesh
	color math.Vec3
	model func(t float32) math.Mat4
}

func static(m math.Mat4) func(float32) math.Mat4 {
	return func(float32) math.Mat4 { return m }
}

// litScene is the mesh scene drawn in lit mode.
type litScene struct {
	objects []object
	sun     lighting.DirectionalLight
	flash   lighting.FlashLight
	points  *lighting.PointLightBuffer
}

func newLitScene() *litScene {
	s := &litScene{
		sun: lighting.DirectionalLight{
			Phong: lighting.Phong{
				Ambient:  math.Vec3{X: 0.08, Y: 0.08, Z: 0.1},
				Diffuse:  math.Vec3{X: 0.5, Y: 0.5, Z: 0.45},
				Specular: math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
			},
			Direction: math.Vec3{X: -0.2, Y: -1, Z: -0.3},
		},
		flash: lighting.FlashLight{
			Phong: lighting.Phong{
				Diffuse:  math.Vec3{X: 1, Y: 1, Z: 1},
				Specular: math.Vec3{X: 1, Y: 1, Z: 1},
			},
			Attenuation: lighting.Range50,
			Cone:        lighting.NewCone(12.5, 17.5),
		},
		points: lighting.NewPointLightBuffer(),
	}

	for _, p := range []struct {
		pos, color math.Vec3
	}{
		{math.Vec3{X: 3, Y: 1.5, Z: 2}, math.Vec3{X: 1, Y: 0.4, Z: 0.3}},
		{math.Vec3{X: -3, Y: 1.5, Z: -2}, math.Vec3{X: 0.3, Y: 0.5, Z: 1}},
	} {
		s.points.AddLight(lighting.PointLight{
			Phong: lighting.Phong{
				Ambient:  p.color.Scale(0.05),
				Diffuse:  p.color,
				Specular: p.color,
			},
			Attenuation: lighting.Range50,
			Position:    p.pos,
		})
	}

	white := math.Vec3{X: 1, Y: 1, Z: 1}
	s.objects = []object{
		{"grid", mesh.Grid(20, 20), math.Vec3{X: 0.4, Y: 0.4, Z: 0.4}, static(math.Identity())},
		{"axes", mesh.Axes(1), white, static(math.TranslateY(0.001))},
		{"floor", mesh.NormalPlane(20), math.Vec3{X: 0.5, Y: 0.55, Z: 0.5},
			static(math.TranslateY(-0.01))},
		{"cube", mesh.Cube(), math.Vec3{X: 0.9, Y: 0.4, Z: 0.2}, func(t float32) math.Mat4 {
			return math.Translate3(-2, 0.5, 0).Mul(math.RotateY(math.Degrees(t) * 0.5))
		}},
		{"sphere", mesh.Sphere(32, 16), math.Vec3{X: 0.2, Y: 0.6, Z: 0.9},
			static(math.Translate3(0, 1, 0))},
		{"textured sphere", mesh.TexturedSphere(32, 16), white, func(t float32) math.Mat4 {
			return math.Translate3(2, 1, 0).Mul(math.Rotate(math.Degrees(t)*0.3, math.Vec3{X: 1, Y: 1})).Mul(math.Scale(0.6))
		}},
		{"wire cube", mesh.WireframeCube(), math.Vec3{X: 1, Y: 1, Z: 0.3},
			static(math.Translate3(0, 1, 0).Mul(math.Scale(1.2)))},
	}
	return s
}

// draw renders every object with the lit program, which must be in use.
func (s *litScene) draw(dev mesh.Device, u uniforms, cam *camera.Camera, projection math.Mat4, lit bool, t float32) {
	u.SetVec3("u_viewPos", cam.Position())
	u.SetBool("hasLighting", lit)
	if lit {
		s.sun.Apply(u, "dirLight")
		s.points.Apply(u, "pointLights", "pointLightCount")
		s.flash.At(cam.Position(), cam.Direction()).Apply(u, "flashLight")
	}

	vp := cam.VP(projection)
	for _, o := range s.objects {
		model := o.model(t)
		u.SetMat4("u_model", model)
		u.SetMat4("u_mvp", vp.Mul(model))
		u.SetVec3("u_baseColor", o.color)
		o.mesh.Draw(dev)
	}
}

func (s *litScene) release() {
	for _, o := range s.objects {
		o.mesh.Release()
	}
}

// raymarchState is the per-frame input of the ray-marched pass.
type raymarchState struct {
	time          float32
	width, height int32
	scene         int
	lighting      bool
}

// setRaymarchUniforms writes the ray-marched pass inputs.
func setRaymarchUniforms(u uniforms, cam *camera.Camera, s raymarchState) {
	u.SetFloat("time", s.time)
	u.SetVec2("resolution", math.Vec2{X: float32(s.width), Y: float32(s.height)})
	u.SetVec2("mouse", math.Vec2{X: 0.5, Y: 0.5})
	u.SetVec3("cameraPos", cam.Position())
	u.SetVec3("cameraFront", cam.Direction())
	u.SetVec3("cameraRight", cam.Right())
	u.SetVec3("cameraUp", cam.Up())
	u.SetInt("active_scene", int32(s.scene))
	u.SetBool("hasLighting", s.lighting)
}

// projection builds the perspective matrix for a viewport aspect ratio.
func projection(fovDegrees, near, far, aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(fovDegrees), aspect, near, far)
}
