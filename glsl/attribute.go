package glsl

import "github.com/go-gl/mathgl/mgl32"

// Attrib is a resolved vertex-attribute handle. A location of -1 marks an
// attribute that is not active in the linked program; every operation on
// such a handle is a pure no-op. Handles stay valid until the owning
// program is linked again.
type Attrib struct {
	prog *Program
	name string
	loc  int32
	// vertex-array slots switched on by EnableArray, for DisableArray
	enabled []uint32
}

// Attrib resolves name to an attribute location in the linked program,
// returning AttribNotFoundError when it is not active. Resolving before a
// successful Link is undefined.
func (p *Program) Attrib(name string) (*Attrib, error) {
	a := p.AttribOptional(name)
	if a.loc == -1 && p.ctx.caps != CapabilityNone {
		return a, &AttribNotFoundError{Name: name}
	}
	return a, nil
}

// AttribOptional resolves name without failing: attributes eliminated by
// the compiler come back as dead handles and all further calls on them
// no-op, so callers can wire optional attributes unconditionally.
func (p *Program) AttribOptional(name string) *Attrib {
	loc := p.ctx.backend.AttribLocation(p.handle, name)
	return &Attrib{prog: p, name: name, loc: loc}
}

// Name returns the attribute's name.
func (a *Attrib) Name() string { return a.name }

// Location returns the resolved location, -1 when not active.
func (a *Attrib) Location() int32 { return a.loc }

func (a *Attrib) set(fn func(b Backend)) {
	if a.loc == -1 {
		return
	}
	a.prog.ctx.BindProgram(a.prog)
	fn(a.prog.ctx.backend)
}

// SetFloat sets a constant per-vertex float.
func (a *Attrib) SetFloat(v float32) {
	a.set(func(b Backend) { b.VertexAttrib1f(uint32(a.loc), v) })
}

// SetVec2 sets a constant per-vertex vec2.
func (a *Attrib) SetVec2(v mgl32.Vec2) {
	a.set(func(b Backend) { b.VertexAttrib2f(uint32(a.loc), v[0], v[1]) })
}

// SetVec3 sets a constant per-vertex vec3.
func (a *Attrib) SetVec3(v mgl32.Vec3) {
	a.set(func(b Backend) { b.VertexAttrib3f(uint32(a.loc), v[0], v[1], v[2]) })
}

// SetVec4 sets a constant per-vertex vec4.
func (a *Attrib) SetVec4(v mgl32.Vec4) {
	a.set(func(b Backend) { b.VertexAttrib4f(uint32(a.loc), v[0], v[1], v[2], v[3]) })
}

// SetMat3 sets a constant mat3 attribute as three column vectors at
// consecutive locations; the API has no single matrix-attribute call.
func (a *Attrib) SetMat3(m mgl32.Mat3) {
	a.set(func(b Backend) {
		for c := uint32(0); c < 3; c++ {
			col := m.Col(int(c))
			b.VertexAttrib3f(uint32(a.loc)+c, col[0], col[1], col[2])
		}
	})
}

// SetMat4 sets a constant mat4 attribute as four column vectors at
// consecutive locations.
func (a *Attrib) SetMat4(m mgl32.Mat4) {
	a.set(func(b Backend) {
		for c := uint32(0); c < 4; c++ {
			col := m.Col(int(c))
			b.VertexAttrib4f(uint32(a.loc)+c, col[0], col[1], col[2], col[3])
		}
	})
}

// EnableArray switches the vertex-array slot at location+slotOffset to
// stream size components of typ from the bound vertex buffer, stride bytes
// apart starting at byteOffset. The slot is recorded so DisableArray can
// switch it back off.
func (a *Attrib) EnableArray(slotOffset int, size int32, typ DataType, normalized bool, stride, byteOffset int32) {
	a.set(func(b Backend) {
		loc := uint32(int(a.loc) + slotOffset)
		b.EnableVertexAttribArray(loc)
		b.VertexAttribPointer(loc, size, typ, normalized, stride, byteOffset)
		a.enabled = append(a.enabled, loc)
	})
}

// EnableArrayFloat streams single floats.
func (a *Attrib) EnableArrayFloat(stride, byteOffset int32) {
	a.EnableArray(0, 1, Float, false, stride, byteOffset)
}

// EnableArrayVec2 streams vec2s.
func (a *Attrib) EnableArrayVec2(stride, byteOffset int32) {
	a.EnableArray(0, 2, Float, false, stride, byteOffset)
}

// EnableArrayVec3 streams vec3s.
func (a *Attrib) EnableArrayVec3(stride, byteOffset int32) {
	a.EnableArray(0, 3, Float, false, stride, byteOffset)
}

// EnableArrayVec4 streams vec4s.
func (a *Attrib) EnableArrayVec4(stride, byteOffset int32) {
	a.EnableArray(0, 4, Float, false, stride, byteOffset)
}

// EnableArrayMat3 streams mat3s as three vec3 columns at consecutive slot
// offsets, each column one vec3 further into the vertex.
func (a *Attrib) EnableArrayMat3(stride, byteOffset int32) {
	for c := 0; c < 3; c++ {
		a.EnableArray(c, 3, Float, false, stride, byteOffset+int32(c)*3*4)
	}
}

// EnableArrayMat4 streams mat4s as four vec4 columns.
func (a *Attrib) EnableArrayMat4(stride, byteOffset int32) {
	for c := 0; c < 4; c++ {
		a.EnableArray(c, 4, Float, false, stride, byteOffset+int32(c)*4*4)
	}
}

// DisableArray switches off every slot previously switched on by
// EnableArray. No-op on a dead handle or when nothing was enabled.
func (a *Attrib) DisableArray() {
	if a.loc == -1 || len(a.enabled) == 0 {
		return
	}
	b := a.prog.ctx.backend
	for _, loc := range a.enabled {
		b.DisableVertexAttribArray(loc)
	}
	a.enabled = a.enabled[:0]
}
