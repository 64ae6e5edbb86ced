package renderer

import (
	"unsafe"

	"github.com/Faultbox/raymarcher/internal/engine/mesh"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// attributesUniform receives the mesh attribute mask on every draw.
var attributesUniform = gl.Str("attributes\x00")

// maxLocations covers every slot a mesh can enable.
const maxLocations = 4

// buffers is the VAO/VBO/EBO triple behind one mesh.
type buffers struct {
	vao, vbo, ebo uint32
}

func newBuffers() *buffers {
	b := &buffers{}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)
	return b
}

// Upload implements mesh.Buffers.
func (b *buffers) Upload(slots []mesh.Slot, stride int, data []float32, indices []uint32) {
	const floatSize = 4
	strideBytes := int32(stride * floatSize)

	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, ptr(data), gl.STATIC_DRAW)

	for loc := uint32(0); loc < maxLocations; loc++ {
		gl.DisableVertexAttribArray(loc)
	}
	for _, s := range slots {
		gl.VertexAttribPointerWithOffset(s.Location, s.Size, gl.FLOAT, false, strideBytes, uintptr(s.Offset*floatSize))
		gl.EnableVertexAttribArray(s.Location)
	}

	if len(indices) > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw implements mesh.Buffers.
func (b *buffers) Draw(p mesh.Primitive, attrs mesh.Attributes, vertexCount, indexCount int) {
	gl.BindVertexArray(b.vao)

	var program int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &program)
	if program != 0 {
		if loc := gl.GetUniformLocation(uint32(program), attributesUniform); loc >= 0 {
			gl.Uniform1ui(loc, uint32(attrs))
		}
	}

	mode := primitive(p)
	if indexCount > 0 {
		gl.DrawElements(mode, int32(indexCount), gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(mode, 0, int32(vertexCount))
	}

	gl.BindVertexArray(0)
}

// Release implements mesh.Buffers.
func (b *buffers) Release() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
}

func primitive(p mesh.Primitive) uint32 {
	switch p {
	case mesh.Lines:
		return gl.LINES
	case mesh.Points:
		return gl.POINTS
	case mesh.LineStrip:
		return gl.LINE_STRIP
	case mesh.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}

func ptr(data []float32) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}
