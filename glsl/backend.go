package glsl

// Stage identifies one programmable pipeline stage.
type Stage int

// Pipeline stages.
const (
	StageVertex Stage = iota
	StageGeometry
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

// DataType describes the component type of vertex data streamed from a buffer.
type DataType int

// Vertex component types.
const (
	Float DataType = iota
	Byte
	UnsignedByte
	Short
	UnsignedShort
	Int
	UnsignedInt
)

// ErrCode is a decoded GPU error-state value as reported by the driver's
// error queue.
type ErrCode int

// GPU error states.
const (
	ErrNone ErrCode = iota
	ErrInvalidEnum
	ErrInvalidValue
	ErrInvalidOperation
	ErrOutOfMemory
	ErrUnknown
)

func (e ErrCode) String() string {
	switch e {
	case ErrNone:
		return "no error"
	case ErrInvalidEnum:
		return "invalid enum"
	case ErrInvalidValue:
		return "invalid value"
	case ErrInvalidOperation:
		return "invalid operation"
	case ErrOutOfMemory:
		return "out of memory"
	}
	return "unknown error"
}

// ActiveVar describes one active uniform or attribute reported by the linker.
// Type is the raw GL type enum, passed through verbatim for diagnostics.
type ActiveVar struct {
	Name string
	Type uint32
	Size int32
}

// Backend is the GPU call surface the shader abstraction is built on.
// The opengl package provides implementations for the desktop core entry
// points and for the ARB-extension entry points used on pre-2.0 contexts;
// tests provide an instrumented fake. All calls must be made on the thread
// that owns the graphics context.
type Backend interface {
	// VersionString returns the context's reported version string, verbatim.
	VersionString() string
	// Extensions returns the context's reported extension names.
	Extensions() []string
	// IsES reports whether the context is an OpenGL ES context.
	IsES() bool

	CreateProgram() uint32
	DeleteProgram(prog uint32)
	// UseProgram makes prog the active program; 0 unbinds.
	UseProgram(prog uint32)

	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	AttachShader(prog, shader uint32)
	DetachShader(prog, shader uint32)
	LinkProgram(prog uint32)
	LinkStatus(prog uint32) bool
	ProgramInfoLog(prog uint32) string
	ActiveUniforms(prog uint32) []ActiveVar
	ActiveAttribs(prog uint32) []ActiveVar

	// UniformLocation and AttribLocation return -1 when the named variable
	// is not active in the linked program.
	UniformLocation(prog uint32, name string) int32
	AttribLocation(prog uint32, name string) int32

	Uniform1i(loc, v int32)
	Uniform2i(loc, v0, v1 int32)
	Uniform3i(loc, v0, v1, v2 int32)
	Uniform4i(loc, v0, v1, v2, v3 int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, v0, v1 float32)
	Uniform3f(loc int32, v0, v1, v2 float32)
	Uniform4f(loc int32, v0, v1, v2, v3 float32)
	Uniform1iv(loc, count int32, v []int32)
	Uniform1fv(loc, count int32, v []float32)
	Uniform2fv(loc, count int32, v []float32)
	Uniform3fv(loc, count int32, v []float32)
	Uniform4fv(loc, count int32, v []float32)
	UniformMatrix2fv(loc, count int32, v []float32)
	UniformMatrix3fv(loc, count int32, v []float32)
	UniformMatrix4fv(loc, count int32, v []float32)

	VertexAttrib1f(loc uint32, v float32)
	VertexAttrib2f(loc uint32, v0, v1 float32)
	VertexAttrib3f(loc uint32, v0, v1, v2 float32)
	VertexAttrib4f(loc uint32, v0, v1, v2, v3 float32)
	EnableVertexAttribArray(loc uint32)
	DisableVertexAttribArray(loc uint32)
	VertexAttribPointer(loc uint32, size int32, typ DataType, normalized bool, stride, offset int32)

	// GetError pops one entry from the driver's error queue.
	GetError() ErrCode
}

// noopBackend swallows every call. It stands in for the real backend when
// the context reports no shader support at all: handles come back zero,
// locations come back -1, and everything downstream degrades to a silent
// no-op.
type noopBackend struct{}

func (noopBackend) VersionString() string                                           { return "" }
func (noopBackend) Extensions() []string                                            { return nil }
func (noopBackend) IsES() bool                                                      { return false }
func (noopBackend) CreateProgram() uint32                                           { return 0 }
func (noopBackend) DeleteProgram(uint32)                                            {}
func (noopBackend) UseProgram(uint32)                                               {}
func (noopBackend) CreateShader(Stage) uint32                                       { return 0 }
func (noopBackend) ShaderSource(uint32, string)                                     {}
func (noopBackend) CompileShader(uint32)                                            {}
func (noopBackend) CompileStatus(uint32) bool                                       { return true }
func (noopBackend) ShaderInfoLog(uint32) string                                     { return "" }
func (noopBackend) DeleteShader(uint32)                                             {}
func (noopBackend) AttachShader(uint32, uint32)                                     {}
func (noopBackend) DetachShader(uint32, uint32)                                     {}
func (noopBackend) LinkProgram(uint32)                                              {}
func (noopBackend) LinkStatus(uint32) bool                                          { return true }
func (noopBackend) ProgramInfoLog(uint32) string                                    { return "" }
func (noopBackend) ActiveUniforms(uint32) []ActiveVar                               { return nil }
func (noopBackend) ActiveAttribs(uint32) []ActiveVar                                { return nil }
func (noopBackend) UniformLocation(uint32, string) int32                            { return -1 }
func (noopBackend) AttribLocation(uint32, string) int32                             { return -1 }
func (noopBackend) Uniform1i(int32, int32)                                          {}
func (noopBackend) Uniform2i(int32, int32, int32)                                   {}
func (noopBackend) Uniform3i(int32, int32, int32, int32)                            {}
func (noopBackend) Uniform4i(int32, int32, int32, int32, int32)                     {}
func (noopBackend) Uniform1f(int32, float32)                                        {}
func (noopBackend) Uniform2f(int32, float32, float32)                               {}
func (noopBackend) Uniform3f(int32, float32, float32, float32)                      {}
func (noopBackend) Uniform4f(int32, float32, float32, float32, float32)             {}
func (noopBackend) Uniform1iv(int32, int32, []int32)                                {}
func (noopBackend) Uniform1fv(int32, int32, []float32)                              {}
func (noopBackend) Uniform2fv(int32, int32, []float32)                              {}
func (noopBackend) Uniform3fv(int32, int32, []float32)                              {}
func (noopBackend) Uniform4fv(int32, int32, []float32)                              {}
func (noopBackend) UniformMatrix2fv(int32, int32, []float32)                        {}
func (noopBackend) UniformMatrix3fv(int32, int32, []float32)                        {}
func (noopBackend) UniformMatrix4fv(int32, int32, []float32)                        {}
func (noopBackend) VertexAttrib1f(uint32, float32)                                  {}
func (noopBackend) VertexAttrib2f(uint32, float32, float32)                         {}
func (noopBackend) VertexAttrib3f(uint32, float32, float32, float32)                {}
func (noopBackend) VertexAttrib4f(uint32, float32, float32, float32, float32)       {}
func (noopBackend) EnableVertexAttribArray(uint32)                                  {}
func (noopBackend) DisableVertexAttribArray(uint32)                                 {}
func (noopBackend) VertexAttribPointer(uint32, int32, DataType, bool, int32, int32) {}
func (noopBackend) GetError() ErrCode                                               { return ErrNone }
