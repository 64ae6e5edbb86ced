// Package mesh builds interleaved vertex data on the CPU and hands it to a
// rendering backend in a single lazy upload.
package mesh

// Attributes is the set of vertex attributes present in a mesh.
// Position is always present.
type Attributes uint8

const (
	AttrPosition Attributes = 1 << iota
	AttrNormal
	AttrTexCoord
	AttrColor
)

// Component counts per attribute.
const (
	PositionSize = 3
	NormalSize   = 3
	TexCoordSize = 2
	ColorSize    = 3
)

// Attribute locations bound in the vertex shader.
const (
	PositionLocation = 0
	NormalLocation   = 1
	TexCoordLocation = 2
	ColorLocation    = 3
)

// Has reports whether every attribute in f is present.
func (a Attributes) Has(f Attributes) bool {
	return a&f == f
}

// Stride returns the number of floats one vertex contributes.
func (a Attributes) Stride() int {
	stride := PositionSize
	if a.Has(AttrNormal) {
		stride += NormalSize
	}
	if a.Has(AttrTexCoord) {
		stride += TexCoordSize
	}
	if a.Has(AttrColor) {
		stride += ColorSize
	}
	return stride
}

// Slot describes where one attribute lives inside an interleaved vertex.
type Slot struct {
	Location uint32
	Size     int32 // components
	Offset   int   // floats from the start of the vertex
}

// Slots returns the enabled attribute slots in interleave order:
// position, normal, texcoord, color.
func (a Attributes) Slots() []Slot {
	slots := make([]Slot, 0, 4)
	offset := 0

	add := func(loc uint32, size int) {
		slots = append(slots, Slot{Location: loc, Size: int32(size), Offset: offset})
		offset += size
	}

	add(PositionLocation, PositionSize)
	if a.Has(AttrNormal) {
		add(NormalLocation, NormalSize)
	}
	if a.Has(AttrTexCoord) {
		add(TexCoordLocation, TexCoordSize)
	}
	if a.Has(AttrColor) {
		add(ColorLocation, ColorSize)
	}
	return slots
}

func (a Attributes) String() string {
	s := "position"
	if a.Has(AttrNormal) {
		s += "|normal"
	}
	if a.Has(AttrTexCoord) {
		s += "|texcoord"
	}
	if a.Has(AttrColor) {
		s += "|color"
	}
	return s
}
