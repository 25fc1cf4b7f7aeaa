package gfx

import (
	"errors"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/peragwin/glshader/glsl"
)

// VertexArrayObject points to a vertex buffer that has already been
// loaded into graphics memory.
type VertexArrayObject struct {
	vaoID      uint32
	length     int32
	glDrawType uint32
	attrs      []*glsl.Attrib
	onDraw     func(s *Scene) bool
}

// VertexAttr describes one interleaved attribute: a shader attribute name,
// its component count, and its offset within a vertex, both in floats.
type VertexAttr struct {
	Name   string
	Size   int32
	Offset int32
}

// VAOConfig represents a configuration for creating a new VAO.
// OnDraw is a function that returns true if the VAO should be drawn, but can
// also be used to set uniforms.
type VAOConfig struct {
	Vertices   []float32
	Stride     int32 // floats per vertex
	Attrs      []VertexAttr
	GLDrawType uint32
	OnDraw     func(s *Scene) bool
}

// AddVertexArrayObject uploads cfg.Vertices into a new vertex buffer and
// wires each configured attribute to stream from it. Attributes the linker
// eliminated resolve as silent no-ops, so optional inputs can be listed
// unconditionally.
func (s *Scene) AddVertexArrayObject(cfg *VAOConfig) error {
	if cfg.Stride == 0 || len(cfg.Vertices)%int(cfg.Stride) != 0 {
		return errors.New("invalid length for vertices, must be a multiple of stride")
	}
	stride := 4 * cfg.Stride

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(cfg.Vertices), gl.Ptr(cfg.Vertices), gl.STATIC_DRAW)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	attrs := make([]*glsl.Attrib, 0, len(cfg.Attrs))
	for _, at := range cfg.Attrs {
		a := s.Program.AttribOptional(at.Name)
		a.EnableArray(0, at.Size, glsl.Float, false, stride, at.Offset*4)
		attrs = append(attrs, a)
	}

	gl.BindVertexArray(0)

	s.vaos = append(s.vaos, &VertexArrayObject{
		vaoID:      vao,
		length:     int32(len(cfg.Vertices)) / cfg.Stride,
		glDrawType: cfg.GLDrawType,
		attrs:      attrs,
		onDraw:     cfg.OnDraw,
	})
	return nil
}

// Draw draws a VertexArrayObject to the current frame buffer
func (v *VertexArrayObject) Draw(s *Scene) {
	gl.BindVertexArray(v.vaoID)
	if v.onDraw != nil {
		if !v.onDraw(s) {
			return
		}
	}
	gl.DrawArrays(v.glDrawType, 0, v.length)
}
