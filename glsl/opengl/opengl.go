// Package opengl implements glsl.Backend over the go-gl bindings, once for
// the native 2.0+ entry points and once for the ARB-extension entry points
// used on pre-2.0 contexts.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/peragwin/glshader/glsl"
)

// not in the 2.1 enum set; from ARB_geometry_shader4 / core 3.2
const glGeometryShader = 0x8DD9

// Init loads the OpenGL function pointers. Must be called once after the
// context is current and before any backend use.
func Init() error {
	return gl.Init()
}

// NewContext probes the current context and returns a glsl.Context routed
// through whichever entry points it supports.
func NewContext() *glsl.Context {
	std := Standard{}
	if glsl.DetectCapability(std) == glsl.CapabilityExtension {
		return glsl.NewContext(ARB{})
	}
	return glsl.NewContext(std)
}

func stageEnum(s glsl.Stage) uint32 {
	switch s {
	case glsl.StageGeometry:
		return glGeometryShader
	case glsl.StageFragment:
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func dataTypeEnum(t glsl.DataType) uint32 {
	switch t {
	case glsl.Byte:
		return gl.BYTE
	case glsl.UnsignedByte:
		return gl.UNSIGNED_BYTE
	case glsl.Short:
		return gl.SHORT
	case glsl.UnsignedShort:
		return gl.UNSIGNED_SHORT
	case glsl.Int:
		return gl.INT
	case glsl.UnsignedInt:
		return gl.UNSIGNED_INT
	}
	return gl.FLOAT
}

func decodeError(code uint32) glsl.ErrCode {
	switch code {
	case gl.NO_ERROR:
		return glsl.ErrNone
	case gl.INVALID_ENUM:
		return glsl.ErrInvalidEnum
	case gl.INVALID_VALUE:
		return glsl.ErrInvalidValue
	case gl.INVALID_OPERATION:
		return glsl.ErrInvalidOperation
	case gl.OUT_OF_MEMORY:
		return glsl.ErrOutOfMemory
	}
	return glsl.ErrUnknown
}

func versionString() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func extensionList() []string {
	// The indexed query only exists from 3.0 on; the aggregate string works
	// everywhere this binding set targets.
	s := gl.GoStr(gl.GetString(gl.EXTENSIONS))
	return strings.Fields(s)
}

func isES() bool {
	return strings.HasPrefix(versionString(), "OpenGL ES")
}

// uploadSource hands src to the driver as a single nul-terminated string.
func uploadSource(src string, fn func(cstrs **uint8)) {
	cstrs, free := gl.Strs(src + "\x00")
	fn(cstrs)
	free()
}

// readLog reads an info log of up to n bytes through fn.
func readLog(n int32, fn func(buf *uint8)) string {
	if n <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	fn(gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

// Standard is the native-API backend for contexts reporting version 2.0+.
type Standard struct{}

var _ glsl.Backend = Standard{}

func (Standard) VersionString() string { return versionString() }
func (Standard) Extensions() []string  { return extensionList() }
func (Standard) IsES() bool            { return isES() }

func (Standard) CreateProgram() uint32     { return gl.CreateProgram() }
func (Standard) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }
func (Standard) UseProgram(prog uint32)    { gl.UseProgram(prog) }

func (Standard) CreateShader(stage glsl.Stage) uint32 {
	return gl.CreateShader(stageEnum(stage))
}

func (Standard) ShaderSource(shader uint32, src string) {
	uploadSource(src, func(cstrs **uint8) {
		gl.ShaderSource(shader, 1, cstrs, nil)
	})
}

func (Standard) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Standard) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Standard) ShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	return readLog(n, func(buf *uint8) {
		gl.GetShaderInfoLog(shader, n, nil, buf)
	})
}

func (Standard) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Standard) AttachShader(prog, shader uint32) { gl.AttachShader(prog, shader) }
func (Standard) DetachShader(prog, shader uint32) { gl.DetachShader(prog, shader) }
func (Standard) LinkProgram(prog uint32)          { gl.LinkProgram(prog) }

func (Standard) LinkStatus(prog uint32) bool {
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Standard) ProgramInfoLog(prog uint32) string {
	var n int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
	return readLog(n, func(buf *uint8) {
		gl.GetProgramInfoLog(prog, n, nil, buf)
	})
}

func (Standard) ActiveUniforms(prog uint32) []glsl.ActiveVar {
	var count, maxLen int32
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(prog, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	vars := make([]glsl.ActiveVar, 0, count)
	for i := int32(0); i < count; i++ {
		buf := strings.Repeat("\x00", int(maxLen+1))
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(prog, uint32(i), maxLen, &length, &size, &xtype, gl.Str(buf))
		vars = append(vars, glsl.ActiveVar{Name: buf[:length], Type: xtype, Size: size})
	}
	return vars
}

func (Standard) ActiveAttribs(prog uint32) []glsl.ActiveVar {
	var count, maxLen int32
	gl.GetProgramiv(prog, gl.ACTIVE_ATTRIBUTES, &count)
	gl.GetProgramiv(prog, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLen)
	vars := make([]glsl.ActiveVar, 0, count)
	for i := int32(0); i < count; i++ {
		buf := strings.Repeat("\x00", int(maxLen+1))
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(prog, uint32(i), maxLen, &length, &size, &xtype, gl.Str(buf))
		vars = append(vars, glsl.ActiveVar{Name: buf[:length], Type: xtype, Size: size})
	}
	return vars
}

func (Standard) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (Standard) AttribLocation(prog uint32, name string) int32 {
	return gl.GetAttribLocation(prog, gl.Str(name+"\x00"))
}

func (Standard) Uniform1i(loc, v int32)              { gl.Uniform1i(loc, v) }
func (Standard) Uniform2i(loc, v0, v1 int32)         { gl.Uniform2i(loc, v0, v1) }
func (Standard) Uniform3i(loc, v0, v1, v2 int32)     { gl.Uniform3i(loc, v0, v1, v2) }
func (Standard) Uniform4i(loc, v0, v1, v2, v3 int32) { gl.Uniform4i(loc, v0, v1, v2, v3) }

func (Standard) Uniform1f(loc int32, v float32)              { gl.Uniform1f(loc, v) }
func (Standard) Uniform2f(loc int32, v0, v1 float32)         { gl.Uniform2f(loc, v0, v1) }
func (Standard) Uniform3f(loc int32, v0, v1, v2 float32)     { gl.Uniform3f(loc, v0, v1, v2) }
func (Standard) Uniform4f(loc int32, v0, v1, v2, v3 float32) { gl.Uniform4f(loc, v0, v1, v2, v3) }

func (Standard) Uniform1iv(loc, count int32, v []int32)   { gl.Uniform1iv(loc, count, &v[0]) }
func (Standard) Uniform1fv(loc, count int32, v []float32) { gl.Uniform1fv(loc, count, &v[0]) }
func (Standard) Uniform2fv(loc, count int32, v []float32) { gl.Uniform2fv(loc, count, &v[0]) }
func (Standard) Uniform3fv(loc, count int32, v []float32) { gl.Uniform3fv(loc, count, &v[0]) }
func (Standard) Uniform4fv(loc, count int32, v []float32) { gl.Uniform4fv(loc, count, &v[0]) }

func (Standard) UniformMatrix2fv(loc, count int32, v []float32) {
	gl.UniformMatrix2fv(loc, count, false, &v[0])
}

func (Standard) UniformMatrix3fv(loc, count int32, v []float32) {
	gl.UniformMatrix3fv(loc, count, false, &v[0])
}

func (Standard) UniformMatrix4fv(loc, count int32, v []float32) {
	gl.UniformMatrix4fv(loc, count, false, &v[0])
}

func (Standard) VertexAttrib1f(loc uint32, v float32)          { gl.VertexAttrib1f(loc, v) }
func (Standard) VertexAttrib2f(loc uint32, v0, v1 float32)     { gl.VertexAttrib2f(loc, v0, v1) }
func (Standard) VertexAttrib3f(loc uint32, v0, v1, v2 float32) { gl.VertexAttrib3f(loc, v0, v1, v2) }
func (Standard) VertexAttrib4f(loc uint32, v0, v1, v2, v3 float32) {
	gl.VertexAttrib4f(loc, v0, v1, v2, v3)
}

func (Standard) EnableVertexAttribArray(loc uint32)  { gl.EnableVertexAttribArray(loc) }
func (Standard) DisableVertexAttribArray(loc uint32) { gl.DisableVertexAttribArray(loc) }

func (Standard) VertexAttribPointer(loc uint32, size int32, typ glsl.DataType, normalized bool, stride, offset int32) {
	gl.VertexAttribPointer(loc, size, dataTypeEnum(typ), normalized, stride, gl.PtrOffset(int(offset)))
}

func (Standard) GetError() glsl.ErrCode {
	return decodeError(gl.GetError())
}
