package opengl

import (
	"strings"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/peragwin/glshader/glsl"
)

// ARB is the backend for pre-2.0 contexts exposing shaders through
// GL_ARB_shader_objects / GL_ARB_vertex_shader / GL_ARB_fragment_shader.
// Program and shader handles are ARB object handles; the two object spaces
// never mix because a context is served by exactly one backend.
type ARB struct{}

var _ glsl.Backend = ARB{}

func arbStageEnum(s glsl.Stage) uint32 {
	switch s {
	case glsl.StageGeometry:
		return glGeometryShader
	case glsl.StageFragment:
		return gl.FRAGMENT_SHADER_ARB
	}
	return gl.VERTEX_SHADER_ARB
}

func (ARB) VersionString() string { return versionString() }
func (ARB) Extensions() []string  { return extensionList() }
func (ARB) IsES() bool            { return isES() }

func (ARB) CreateProgram() uint32     { return uint32(gl.CreateProgramObjectARB()) }
func (ARB) DeleteProgram(prog uint32) { gl.DeleteObjectARB(uintptr(prog)) }
func (ARB) UseProgram(prog uint32)    { gl.UseProgramObjectARB(uintptr(prog)) }

func (ARB) CreateShader(stage glsl.Stage) uint32 {
	return uint32(gl.CreateShaderObjectARB(arbStageEnum(stage)))
}

func (ARB) ShaderSource(shader uint32, src string) {
	uploadSource(src, func(cstrs **uint8) {
		gl.ShaderSourceARB(uintptr(shader), 1, cstrs, nil)
	})
}

func (ARB) CompileShader(shader uint32) { gl.CompileShaderARB(uintptr(shader)) }

func (ARB) CompileStatus(shader uint32) bool {
	var status int32
	gl.GetObjectParameterivARB(uintptr(shader), gl.OBJECT_COMPILE_STATUS_ARB, &status)
	return status != gl.FALSE
}

func (ARB) ShaderInfoLog(shader uint32) string { return arbInfoLog(shader) }

func (ARB) DeleteShader(shader uint32) { gl.DeleteObjectARB(uintptr(shader)) }

func (ARB) AttachShader(prog, shader uint32) { gl.AttachObjectARB(uintptr(prog), uintptr(shader)) }
func (ARB) DetachShader(prog, shader uint32) { gl.DetachObjectARB(uintptr(prog), uintptr(shader)) }
func (ARB) LinkProgram(prog uint32)          { gl.LinkProgramARB(uintptr(prog)) }

func (ARB) LinkStatus(prog uint32) bool {
	var status int32
	gl.GetObjectParameterivARB(uintptr(prog), gl.OBJECT_LINK_STATUS_ARB, &status)
	return status != gl.FALSE
}

func (ARB) ProgramInfoLog(prog uint32) string { return arbInfoLog(prog) }

func arbInfoLog(obj uint32) string {
	var n int32
	gl.GetObjectParameterivARB(uintptr(obj), gl.OBJECT_INFO_LOG_LENGTH_ARB, &n)
	return readLog(n, func(buf *uint8) {
		gl.GetInfoLogARB(uintptr(obj), n, nil, buf)
	})
}

func (ARB) ActiveUniforms(prog uint32) []glsl.ActiveVar {
	var count, maxLen int32
	gl.GetObjectParameterivARB(uintptr(prog), gl.OBJECT_ACTIVE_UNIFORMS_ARB, &count)
	gl.GetObjectParameterivARB(uintptr(prog), gl.OBJECT_ACTIVE_UNIFORM_MAX_LENGTH_ARB, &maxLen)
	vars := make([]glsl.ActiveVar, 0, count)
	for i := int32(0); i < count; i++ {
		buf := strings.Repeat("\x00", int(maxLen+1))
		var length, size int32
		var xtype uint32
		gl.GetActiveUniformARB(uintptr(prog), uint32(i), maxLen, &length, &size, &xtype, gl.Str(buf))
		vars = append(vars, glsl.ActiveVar{Name: buf[:length], Type: xtype, Size: size})
	}
	return vars
}

func (ARB) ActiveAttribs(prog uint32) []glsl.ActiveVar {
	var count, maxLen int32
	gl.GetObjectParameterivARB(uintptr(prog), gl.OBJECT_ACTIVE_ATTRIBUTES_ARB, &count)
	gl.GetObjectParameterivARB(uintptr(prog), gl.OBJECT_ACTIVE_ATTRIBUTE_MAX_LENGTH_ARB, &maxLen)
	vars := make([]glsl.ActiveVar, 0, count)
	for i := int32(0); i < count; i++ {
		buf := strings.Repeat("\x00", int(maxLen+1))
		var length, size int32
		var xtype uint32
		gl.GetActiveAttribARB(uintptr(prog), uint32(i), maxLen, &length, &size, &xtype, gl.Str(buf))
		vars = append(vars, glsl.ActiveVar{Name: buf[:length], Type: xtype, Size: size})
	}
	return vars
}

func (ARB) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocationARB(uintptr(prog), gl.Str(name+"\x00"))
}

func (ARB) AttribLocation(prog uint32, name string) int32 {
	return gl.GetAttribLocationARB(uintptr(prog), gl.Str(name+"\x00"))
}

func (ARB) Uniform1i(loc, v int32)              { gl.Uniform1iARB(loc, v) }
func (ARB) Uniform2i(loc, v0, v1 int32)         { gl.Uniform2iARB(loc, v0, v1) }
func (ARB) Uniform3i(loc, v0, v1, v2 int32)     { gl.Uniform3iARB(loc, v0, v1, v2) }
func (ARB) Uniform4i(loc, v0, v1, v2, v3 int32) { gl.Uniform4iARB(loc, v0, v1, v2, v3) }

func (ARB) Uniform1f(loc int32, v float32)              { gl.Uniform1fARB(loc, v) }
func (ARB) Uniform2f(loc int32, v0, v1 float32)         { gl.Uniform2fARB(loc, v0, v1) }
func (ARB) Uniform3f(loc int32, v0, v1, v2 float32)     { gl.Uniform3fARB(loc, v0, v1, v2) }
func (ARB) Uniform4f(loc int32, v0, v1, v2, v3 float32) { gl.Uniform4fARB(loc, v0, v1, v2, v3) }

func (ARB) Uniform1iv(loc, count int32, v []int32)   { gl.Uniform1ivARB(loc, count, &v[0]) }
func (ARB) Uniform1fv(loc, count int32, v []float32) { gl.Uniform1fvARB(loc, count, &v[0]) }
func (ARB) Uniform2fv(loc, count int32, v []float32) { gl.Uniform2fvARB(loc, count, &v[0]) }
func (ARB) Uniform3fv(loc, count int32, v []float32) { gl.Uniform3fvARB(loc, count, &v[0]) }
func (ARB) Uniform4fv(loc, count int32, v []float32) { gl.Uniform4fvARB(loc, count, &v[0]) }

func (ARB) UniformMatrix2fv(loc, count int32, v []float32) {
	gl.UniformMatrix2fvARB(loc, count, false, &v[0])
}

func (ARB) UniformMatrix3fv(loc, count int32, v []float32) {
	gl.UniformMatrix3fvARB(loc, count, false, &v[0])
}

func (ARB) UniformMatrix4fv(loc, count int32, v []float32) {
	gl.UniformMatrix4fvARB(loc, count, false, &v[0])
}

func (ARB) VertexAttrib1f(loc uint32, v float32)          { gl.VertexAttrib1fARB(loc, v) }
func (ARB) VertexAttrib2f(loc uint32, v0, v1 float32)     { gl.VertexAttrib2fARB(loc, v0, v1) }
func (ARB) VertexAttrib3f(loc uint32, v0, v1, v2 float32) { gl.VertexAttrib3fARB(loc, v0, v1, v2) }
func (ARB) VertexAttrib4f(loc uint32, v0, v1, v2, v3 float32) {
	gl.VertexAttrib4fARB(loc, v0, v1, v2, v3)
}

func (ARB) EnableVertexAttribArray(loc uint32)  { gl.EnableVertexAttribArrayARB(loc) }
func (ARB) DisableVertexAttribArray(loc uint32) { gl.DisableVertexAttribArrayARB(loc) }

func (ARB) VertexAttribPointer(loc uint32, size int32, typ glsl.DataType, normalized bool, stride, offset int32) {
	gl.VertexAttribPointerARB(loc, size, dataTypeEnum(typ), normalized, stride, gl.PtrOffset(int(offset)))
}

func (ARB) GetError() glsl.ErrCode {
	return decodeError(gl.GetError())
}
