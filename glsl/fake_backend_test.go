package glsl

// fakeBackend is an instrumented in-memory Backend. It counts every call,
// keeps per-location uniform values (zeroing them on link, like the GPU
// does), and lets tests inject compile/link failures, driver panics, and
// error-queue contents.
type fakeBackend struct {
	version string
	exts    []string
	es      bool

	nextShader  uint32
	nextProgram uint32

	failProgram  bool
	failCompile  bool
	compileLog   string
	panicCompile bool
	failLink     bool
	linkLog      string

	uniformLocs map[string]int32
	attribLocs  map[string]int32

	// uniform values by location; nil means GPU-default zero
	uniforms map[int32]interface{}

	attached map[uint32][]uint32
	sources  map[uint32]string
	deleted  []uint32

	errQueue  []ErrCode
	stickyErr ErrCode // reported on every poll, like a lost context

	calls map[string]int

	useProgram     []uint32
	enabledArrays  []uint32
	disabledArrays []uint32
	pointers       []pointerCall
	vattrLocs      []uint32
}

type pointerCall struct {
	loc        uint32
	size       int32
	typ        DataType
	normalized bool
	stride     int32
	offset     int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		version:     "2.1 Mesa 23.1.4",
		uniformLocs: map[string]int32{},
		attribLocs:  map[string]int32{},
		uniforms:    map[int32]interface{}{},
		attached:    map[uint32][]uint32{},
		sources:     map[uint32]string{},
		calls:       map[string]int{},
	}
}

func (f *fakeBackend) record(name string) { f.calls[name]++ }

func (f *fakeBackend) VersionString() string { return f.version }
func (f *fakeBackend) Extensions() []string  { return f.exts }
func (f *fakeBackend) IsES() bool            { return f.es }

func (f *fakeBackend) CreateProgram() uint32 {
	f.record("CreateProgram")
	if f.failProgram {
		return 0
	}
	f.nextProgram++
	return f.nextProgram
}

func (f *fakeBackend) DeleteProgram(prog uint32) {
	f.record("DeleteProgram")
	f.deleted = append(f.deleted, prog)
}

func (f *fakeBackend) UseProgram(prog uint32) {
	f.record("UseProgram")
	f.useProgram = append(f.useProgram, prog)
}

func (f *fakeBackend) CreateShader(stage Stage) uint32 {
	f.record("CreateShader")
	f.nextShader++
	return 100 + f.nextShader
}

func (f *fakeBackend) ShaderSource(shader uint32, src string) {
	f.record("ShaderSource")
	f.sources[shader] = src
}

func (f *fakeBackend) CompileShader(shader uint32) {
	f.record("CompileShader")
	if f.panicCompile {
		panic("segfault in driver compiler")
	}
}

func (f *fakeBackend) CompileStatus(shader uint32) bool {
	f.record("CompileStatus")
	return !f.failCompile
}

func (f *fakeBackend) ShaderInfoLog(shader uint32) string {
	f.record("ShaderInfoLog")
	return f.compileLog
}

func (f *fakeBackend) DeleteShader(shader uint32) {
	f.record("DeleteShader")
	f.deleted = append(f.deleted, shader)
}

func (f *fakeBackend) AttachShader(prog, shader uint32) {
	f.record("AttachShader")
	f.attached[prog] = append(f.attached[prog], shader)
}

func (f *fakeBackend) DetachShader(prog, shader uint32) {
	f.record("DetachShader")
	kept := f.attached[prog][:0]
	for _, sh := range f.attached[prog] {
		if sh != shader {
			kept = append(kept, sh)
		}
	}
	f.attached[prog] = kept
}

func (f *fakeBackend) LinkProgram(prog uint32) {
	f.record("LinkProgram")
	// linking resets every uniform to its GPU default
	for loc := range f.uniforms {
		f.uniforms[loc] = nil
	}
}

func (f *fakeBackend) LinkStatus(prog uint32) bool {
	f.record("LinkStatus")
	return !f.failLink
}

func (f *fakeBackend) ProgramInfoLog(prog uint32) string {
	f.record("ProgramInfoLog")
	return f.linkLog
}

func (f *fakeBackend) ActiveUniforms(prog uint32) []ActiveVar {
	f.record("ActiveUniforms")
	vars := make([]ActiveVar, 0, len(f.uniformLocs))
	for name := range f.uniformLocs {
		vars = append(vars, ActiveVar{Name: name, Size: 1})
	}
	return vars
}

func (f *fakeBackend) ActiveAttribs(prog uint32) []ActiveVar {
	f.record("ActiveAttribs")
	vars := make([]ActiveVar, 0, len(f.attribLocs))
	for name := range f.attribLocs {
		vars = append(vars, ActiveVar{Name: name, Size: 1})
	}
	return vars
}

func (f *fakeBackend) UniformLocation(prog uint32, name string) int32 {
	f.record("UniformLocation")
	if loc, ok := f.uniformLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeBackend) AttribLocation(prog uint32, name string) int32 {
	f.record("AttribLocation")
	if loc, ok := f.attribLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeBackend) store(loc int32, v interface{}) {
	f.uniforms[loc] = v
}

func (f *fakeBackend) Uniform1i(loc, v int32) { f.record("Uniform1i"); f.store(loc, v) }
func (f *fakeBackend) Uniform2i(loc, v0, v1 int32) {
	f.record("Uniform2i")
	f.store(loc, [2]int32{v0, v1})
}
func (f *fakeBackend) Uniform3i(loc, v0, v1, v2 int32) {
	f.record("Uniform3i")
	f.store(loc, [3]int32{v0, v1, v2})
}
func (f *fakeBackend) Uniform4i(loc, v0, v1, v2, v3 int32) {
	f.record("Uniform4i")
	f.store(loc, [4]int32{v0, v1, v2, v3})
}
func (f *fakeBackend) Uniform1f(loc int32, v float32) { f.record("Uniform1f"); f.store(loc, v) }
func (f *fakeBackend) Uniform2f(loc int32, v0, v1 float32) {
	f.record("Uniform2f")
	f.store(loc, [2]float32{v0, v1})
}
func (f *fakeBackend) Uniform3f(loc int32, v0, v1, v2 float32) {
	f.record("Uniform3f")
	f.store(loc, [3]float32{v0, v1, v2})
}
func (f *fakeBackend) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	f.record("Uniform4f")
	f.store(loc, [4]float32{v0, v1, v2, v3})
}
func (f *fakeBackend) Uniform1iv(loc, count int32, v []int32) {
	f.record("Uniform1iv")
	f.store(loc, append([]int32(nil), v...))
}
func (f *fakeBackend) Uniform1fv(loc, count int32, v []float32) {
	f.record("Uniform1fv")
	f.store(loc, append([]float32(nil), v...))
}
func (f *fakeBackend) Uniform2fv(loc, count int32, v []float32) {
	f.record("Uniform2fv")
	f.store(loc, append([]float32(nil), v...))
}
func (f *fakeBackend) Uniform3fv(loc, count int32, v []float32) {
	f.record("Uniform3fv")
	f.store(loc, append([]float32(nil), v...))
}
func (f *fakeBackend) Uniform4fv(loc, count int32, v []float32) {
	f.record("Uniform4fv")
	f.store(loc, append([]float32(nil), v...))
}
func (f *fakeBackend) UniformMatrix2fv(loc, count int32, v []float32) {
	f.record("UniformMatrix2fv")
	f.store(loc, append([]float32(nil), v...))
}
func (f *fakeBackend) UniformMatrix3fv(loc, count int32, v []float32) {
	f.record("UniformMatrix3fv")
	f.store(loc, append([]float32(nil), v...))
}
func (f *fakeBackend) UniformMatrix4fv(loc, count int32, v []float32) {
	f.record("UniformMatrix4fv")
	f.store(loc, append([]float32(nil), v...))
}

func (f *fakeBackend) VertexAttrib1f(loc uint32, v float32) {
	f.record("VertexAttrib1f")
	f.vattrLocs = append(f.vattrLocs, loc)
}
func (f *fakeBackend) VertexAttrib2f(loc uint32, v0, v1 float32) {
	f.record("VertexAttrib2f")
	f.vattrLocs = append(f.vattrLocs, loc)
}
func (f *fakeBackend) VertexAttrib3f(loc uint32, v0, v1, v2 float32) {
	f.record("VertexAttrib3f")
	f.vattrLocs = append(f.vattrLocs, loc)
}
func (f *fakeBackend) VertexAttrib4f(loc uint32, v0, v1, v2, v3 float32) {
	f.record("VertexAttrib4f")
	f.vattrLocs = append(f.vattrLocs, loc)
}

func (f *fakeBackend) EnableVertexAttribArray(loc uint32) {
	f.record("EnableVertexAttribArray")
	f.enabledArrays = append(f.enabledArrays, loc)
}

func (f *fakeBackend) DisableVertexAttribArray(loc uint32) {
	f.record("DisableVertexAttribArray")
	f.disabledArrays = append(f.disabledArrays, loc)
}

func (f *fakeBackend) VertexAttribPointer(loc uint32, size int32, typ DataType, normalized bool, stride, offset int32) {
	f.record("VertexAttribPointer")
	f.pointers = append(f.pointers, pointerCall{loc, size, typ, normalized, stride, offset})
}

func (f *fakeBackend) GetError() ErrCode {
	f.record("GetError")
	if f.stickyErr != ErrNone {
		return f.stickyErr
	}
	if len(f.errQueue) == 0 {
		return ErrNone
	}
	code := f.errQueue[0]
	f.errQueue = f.errQueue[1:]
	return code
}

// totalCalls sums every recorded backend call, optionally ignoring some.
func (f *fakeBackend) totalCalls(ignore ...string) int {
	n := 0
	for name, c := range f.calls {
		skip := false
		for _, ig := range ignore {
			if name == ig {
				skip = true
			}
		}
		if !skip {
			n += c
		}
	}
	return n
}

// countWarnings redirects the package warning sink and returns a counter
// plus a restore func.
func countWarnings() (*int, func()) {
	n := 0
	prev := warnf
	warnf = func(format string, args ...interface{}) { n++ }
	return &n, func() { warnf = prev }
}
