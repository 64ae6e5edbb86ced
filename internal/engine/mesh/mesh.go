package mesh

import "github.com/Faultbox/raymarcher/pkg/math"

// Primitive is the topology used to assemble vertices.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
	Points
	LineStrip
	TriangleStrip
)

// Device creates backend buffers. Implemented by the renderer.
type Device interface {
	NewBuffers() Buffers
}

// Buffers is the backend-resident copy of one mesh.
type Buffers interface {
	// Upload replaces vertex and index data. stride is in floats.
	Upload(slots []Slot, stride int, data []float32, indices []uint32)
	// Draw issues one draw call. The backend also reports attrs to the
	// bound program so a shader can branch on present attributes.
	// indexCount == 0 means a non-indexed draw of vertexCount vertices.
	Draw(p Primitive, attrs Attributes, vertexCount, indexCount int)
	// Release frees backend resources.
	Release()
}

// Mesh accumulates interleaved vertex attributes and indices.
//
// Every vertex must append its attributes in the order position, normal,
// texcoord, color, and once a vertex has an optional attribute every vertex
// must have it. This is not checked: a broken order misaligns the buffer.
type Mesh struct {
	primitive  Primitive
	attributes Attributes

	data    []float32
	indices []uint32

	buffers    Buffers
	shouldBind bool
}

// New creates an empty mesh.
func New(p Primitive) *Mesh {
	return &Mesh{
		primitive:  p,
		attributes: AttrPosition,
		shouldBind: true,
	}
}

// Clone returns a copy with its own data and no backend resources. The
// copy uploads on its first draw.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		primitive:  m.primitive,
		attributes: m.attributes,
		data:       append([]float32(nil), m.data...),
		indices:    append([]uint32(nil), m.indices...),
		shouldBind: true,
	}
}

// AddPosition appends a vertex position.
func (m *Mesh) AddPosition(x, y, z float32) {
	m.push(x, y, z)
}

// AddPositionV appends a vertex position.
func (m *Mesh) AddPositionV(p math.Vec3) {
	m.push(p.X, p.Y, p.Z)
}

// AddNormal appends a normal and marks normals present.
func (m *Mesh) AddNormal(x, y, z float32) {
	m.attributes |= AttrNormal
	m.push(x, y, z)
}

// AddNormalV appends a normal and marks normals present.
func (m *Mesh) AddNormalV(n math.Vec3) {
	m.AddNormal(n.X, n.Y, n.Z)
}

// AddTexCoord appends texture coordinates and marks them present.
func (m *Mesh) AddTexCoord(u, v float32) {
	m.attributes |= AttrTexCoord
	m.push(u, v)
}

// AddTexCoordV appends texture coordinates and marks them present.
func (m *Mesh) AddTexCoordV(t math.Vec2) {
	m.AddTexCoord(t.X, t.Y)
}

// AddColor appends an RGB colour and marks colours present.
func (m *Mesh) AddColor(r, g, b float32) {
	m.attributes |= AttrColor
	m.push(r, g, b)
}

// AddColorV appends an RGB colour and marks colours present.
func (m *Mesh) AddColorV(c math.Vec3) {
	m.AddColor(c.X, c.Y, c.Z)
}

// AddIndex appends one index.
func (m *Mesh) AddIndex(i uint32) {
	m.indices = append(m.indices, i)
	m.shouldBind = true
}

// AddTriangle appends three indices as given. Winding is not corrected.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.indices = append(m.indices, a, b, c)
	m.shouldBind = true
}

// AddFace splits a quad given clockwise from the top-left corner into the
// triangles (tl, bl, br) and (tl, br, tr).
func (m *Mesh) AddFace(tl, bl, br, tr uint32) {
	m.indices = append(m.indices,
		tl, bl, br,
		tl, br, tr,
	)
	m.shouldBind = true
}

func (m *Mesh) push(v ...float32) {
	m.data = append(m.data, v...)
	m.shouldBind = true
}

// Draw uploads the mesh if it changed since the last upload, then draws it.
func (m *Mesh) Draw(dev Device) {
	if m.buffers == nil {
		m.buffers = dev.NewBuffers()
		m.shouldBind = true
	}
	if m.shouldBind {
		m.buffers.Upload(m.attributes.Slots(), m.Stride(), m.data, m.indices)
		m.shouldBind = false
	}
	m.buffers.Draw(m.primitive, m.attributes, m.VertexCount(), len(m.indices))
}

// Release frees backend resources. The mesh can still be drawn again and
// will re-upload.
func (m *Mesh) Release() {
	if m.buffers != nil {
		m.buffers.Release()
		m.buffers = nil
	}
	m.shouldBind = true
}

// Primitive returns the mesh topology.
func (m *Mesh) Primitive() Primitive { return m.primitive }

// Attributes returns the attribute set.
func (m *Mesh) Attributes() Attributes { return m.attributes }

// Stride returns the floats per vertex.
func (m *Mesh) Stride() int { return m.attributes.Stride() }

// VertexCount returns len(data) / stride.
func (m *Mesh) VertexCount() int { return len(m.data) / m.Stride() }

// Data returns the interleaved vertex data. Callers must not modify it.
func (m *Mesh) Data() []float32 { return m.data }

// Indices returns the index data. Callers must not modify it.
func (m *Mesh) Indices() []uint32 { return m.indices }

// NeedsUpload reports whether the next draw will upload.
func (m *Mesh) NeedsUpload() bool { return m.shouldBind }
