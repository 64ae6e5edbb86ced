package shader

import (
	"fmt"

	"github.com/Faultbox/raymarcher/pkg/math"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked GL program. Uniforms are looked up by name on every
// call; names the driver optimized away are silently ignored.
type Program struct {
	id   uint32
	name string
}

// NewProgram compiles and links a program from GLSL sources.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	return &Program{id: id, name: name}, nil
}

// ID returns the GL program object.
func (p *Program) ID() uint32 { return p.id }

// Name returns the name given at creation.
func (p *Program) Name() string { return p.name }

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Release deletes the GL program.
func (p *Program) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func (p *Program) location(name string) int32 {
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

// Uniform setters write to the program regardless of which program is bound.

// SetInt sets an int uniform.
func (p *Program) SetInt(name string, v int32) {
	gl.ProgramUniform1i(p.id, p.location(name), v)
}

// SetUint sets a uint uniform.
func (p *Program) SetUint(name string, v uint32) {
	gl.ProgramUniform1ui(p.id, p.location(name), v)
}

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.ProgramUniform1i(p.id, p.location(name), i)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.ProgramUniform1f(p.id, p.location(name), v)
}

// SetFloat2 sets a vec2 uniform by components.
func (p *Program) SetFloat2(name string, x, y float32) {
	gl.ProgramUniform2f(p.id, p.location(name), x, y)
}

// SetFloat3 sets a vec3 uniform by components.
func (p *Program) SetFloat3(name string, x, y, z float32) {
	gl.ProgramUniform3f(p.id, p.location(name), x, y, z)
}

// SetFloat4 sets a vec4 uniform by components.
func (p *Program) SetFloat4(name string, x, y, z, w float32) {
	gl.ProgramUniform4f(p.id, p.location(name), x, y, z, w)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v math.Vec2) {
	p.SetFloat2(name, v.X, v.Y)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	p.SetFloat3(name, v.X, v.Y, v.Z)
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v math.Vec4) {
	p.SetFloat4(name, v.X, v.Y, v.Z, v.W)
}

// SetMat4 sets a mat4 uniform. The matrix is sent row-major with transpose set.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.ProgramUniformMatrix4fv(p.id, p.location(name), 1, true, m.Ptr())
}

// Int reads back an int uniform.
func (p *Program) Int(name string) int32 {
	var v int32
	gl.GetUniformiv(p.id, p.location(name), &v)
	return v
}

// Uint reads back a uint uniform.
func (p *Program) Uint(name string) uint32 {
	var v uint32
	gl.GetUniformuiv(p.id, p.location(name), &v)
	return v
}

// Bool reads back a bool uniform.
func (p *Program) Bool(name string) bool {
	return p.Int(name) != 0
}

// Float reads back a float uniform.
func (p *Program) Float(name string) float32 {
	var v float32
	gl.GetUniformfv(p.id, p.location(name), &v)
	return v
}

// Vec2 reads back a vec2 uniform.
func (p *Program) Vec2(name string) math.Vec2 {
	var v [2]float32
	gl.GetUniformfv(p.id, p.location(name), &v[0])
	return math.Vec2{X: v[0], Y: v[1]}
}

// Vec3 reads back a vec3 uniform.
func (p *Program) Vec3(name string) math.Vec3 {
	var v [3]float32
	gl.GetUniformfv(p.id, p.location(name), &v[0])
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec4 reads back a vec4 uniform.
func (p *Program) Vec4(name string) math.Vec4 {
	var v [4]float32
	gl.GetUniformfv(p.id, p.location(name), &v[0])
	return math.Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Mat4 reads back a mat4 uniform. GL returns column-major data, which is
// transposed into the row-major Mat4.
func (p *Program) Mat4(name string) math.Mat4 {
	var m math.Mat4
	gl.GetUniformfv(p.id, p.location(name), m.Ptr())
	return m.Transpose()
}
