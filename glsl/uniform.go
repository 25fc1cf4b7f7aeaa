package glsl

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
)

// warnf is the warning sink; a variable so tests can intercept it.
var warnf = func(format string, args ...interface{}) {
	glog.WarningDepth(1, fmt.Sprintf(format, args...))
}

// Uniform is a resolved (program, name, location) triple. A location of -1
// marks a variable that is not active in the linked program; every setter
// on such a handle is a pure no-op, so optional uniforms can be wired up
// unconditionally. Handles stay valid until the owning program is linked
// again.
type Uniform struct {
	prog  *Program
	name  string
	loc   int32
	check bool
}

// Uniform resolves name to a location in the linked program. Resolving
// before a successful Link is undefined. The program's OnMissing policy
// applies when the name is not active: ActionError also
// returns a UniformNotFoundError, ActionWarn logs once per call, and
// ActionIgnore stays silent. The returned handle is usable in every case.
func (p *Program) Uniform(name string) (*Uniform, error) {
	loc := p.ctx.backend.UniformLocation(p.handle, name)
	u := &Uniform{prog: p, name: name, loc: loc}
	if loc == -1 && p.ctx.caps != CapabilityNone {
		switch p.OnMissing {
		case ActionError:
			return u, &UniformNotFoundError{Name: name}
		case ActionWarn:
			warnf("uniform %q not found in program %d", name, p.handle)
		}
	}
	return u, nil
}

// Name returns the uniform's name.
func (u *Uniform) Name() string { return u.name }

// Location returns the resolved location, -1 when not active.
func (u *Uniform) Location() int32 { return u.loc }

// Checked returns a handle whose setters always validate against the
// driver's error queue and return UniformTypeMismatchError on failure,
// regardless of the program's TypeCheck policy.
func (u *Uniform) Checked() *Uniform {
	c := *u
	c.check = true
	return &c
}

// maxErrorDrain bounds the pre-upload error-queue drain.
const maxErrorDrain = 16

// set binds the owning program and issues one typed upload through fn,
// wrapped in error-queue polling when validation is on. Out-of-memory is
// always escalated; other codes follow the check policy.
func (u *Uniform) set(fn func(b Backend)) error {
	if u.loc == -1 {
		return nil
	}
	p := u.prog
	p.ctx.BindProgram(p)
	b := p.ctx.backend

	if !u.check && p.TypeCheck == TypeCheckNone {
		fn(b)
		return nil
	}

	// Drain stale error state so the poll below is attributable. Bounded:
	// a lost context can report errors forever.
	for i := 0; i < maxErrorDrain && b.GetError() != ErrNone; i++ {
	}
	fn(b)
	code := b.GetError()
	if code == ErrNone {
		return nil
	}
	if code == ErrOutOfMemory {
		return &OutOfMemoryError{Op: "uniform " + u.name + " upload"}
	}
	err := &UniformTypeMismatchError{Name: u.name, Code: code}
	if u.check || p.TypeCheck == TypeCheckError {
		return err
	}
	warnf("%s", err.Error())
	return nil
}

// SetBool uploads a boolean through the integer path; GLSL accepts integer
// or float setters interchangeably for bool uniforms.
func (u *Uniform) SetBool(v bool) error {
	var i int32
	if v {
		i = 1
	}
	return u.set(func(b Backend) { b.Uniform1i(u.loc, i) })
}

// SetInt uploads an integer scalar.
func (u *Uniform) SetInt(v int32) error {
	return u.set(func(b Backend) { b.Uniform1i(u.loc, v) })
}

// SetVec2i uploads an integer 2-vector.
func (u *Uniform) SetVec2i(v [2]int32) error {
	return u.set(func(b Backend) { b.Uniform2i(u.loc, v[0], v[1]) })
}

// SetVec3i uploads an integer 3-vector.
func (u *Uniform) SetVec3i(v [3]int32) error {
	return u.set(func(b Backend) { b.Uniform3i(u.loc, v[0], v[1], v[2]) })
}

// SetVec4i uploads an integer 4-vector.
func (u *Uniform) SetVec4i(v [4]int32) error {
	return u.set(func(b Backend) { b.Uniform4i(u.loc, v[0], v[1], v[2], v[3]) })
}

// SetFloat uploads a float scalar.
func (u *Uniform) SetFloat(v float32) error {
	return u.set(func(b Backend) { b.Uniform1f(u.loc, v) })
}

// SetVec2 uploads a float 2-vector.
func (u *Uniform) SetVec2(v mgl32.Vec2) error {
	return u.set(func(b Backend) { b.Uniform2f(u.loc, v[0], v[1]) })
}

// SetVec3 uploads a float 3-vector.
func (u *Uniform) SetVec3(v mgl32.Vec3) error {
	return u.set(func(b Backend) { b.Uniform3f(u.loc, v[0], v[1], v[2]) })
}

// SetVec4 uploads a float 4-vector.
func (u *Uniform) SetVec4(v mgl32.Vec4) error {
	return u.set(func(b Backend) { b.Uniform4f(u.loc, v[0], v[1], v[2], v[3]) })
}

// SetMat2 uploads a 2x2 float matrix.
func (u *Uniform) SetMat2(m mgl32.Mat2) error {
	return u.set(func(b Backend) { b.UniformMatrix2fv(u.loc, 1, m[:]) })
}

// SetMat3 uploads a 3x3 float matrix.
func (u *Uniform) SetMat3(m mgl32.Mat3) error {
	return u.set(func(b Backend) { b.UniformMatrix3fv(u.loc, 1, m[:]) })
}

// SetMat4 uploads a 4x4 float matrix.
func (u *Uniform) SetMat4(m mgl32.Mat4) error {
	return u.set(func(b Backend) { b.UniformMatrix4fv(u.loc, 1, m[:]) })
}

// SetInts uploads an int array uniform. An empty slice is a no-op.
func (u *Uniform) SetInts(v []int32) error {
	if len(v) == 0 {
		return nil
	}
	return u.set(func(b Backend) { b.Uniform1iv(u.loc, int32(len(v)), v) })
}

// SetFloats uploads a float array uniform. An empty slice is a no-op.
func (u *Uniform) SetFloats(v []float32) error {
	if len(v) == 0 {
		return nil
	}
	return u.set(func(b Backend) { b.Uniform1fv(u.loc, int32(len(v)), v) })
}

// SetVec2s uploads a vec2 array uniform. An empty slice is a no-op.
func (u *Uniform) SetVec2s(v []mgl32.Vec2) error {
	if len(v) == 0 {
		return nil
	}
	return u.set(func(b Backend) { b.Uniform2fv(u.loc, int32(len(v)), flatten2(v)) })
}

// SetVec3s uploads a vec3 array uniform. An empty slice is a no-op.
func (u *Uniform) SetVec3s(v []mgl32.Vec3) error {
	if len(v) == 0 {
		return nil
	}
	return u.set(func(b Backend) { b.Uniform3fv(u.loc, int32(len(v)), flatten3(v)) })
}

// SetVec4s uploads a vec4 array uniform. An empty slice is a no-op.
func (u *Uniform) SetVec4s(v []mgl32.Vec4) error {
	if len(v) == 0 {
		return nil
	}
	return u.set(func(b Backend) { b.Uniform4fv(u.loc, int32(len(v)), flatten4(v)) })
}

// SetMat3s uploads a mat3 array uniform. An empty slice is a no-op.
func (u *Uniform) SetMat3s(v []mgl32.Mat3) error {
	if len(v) == 0 {
		return nil
	}
	flat := make([]float32, 0, len(v)*9)
	for i := range v {
		flat = append(flat, v[i][:]...)
	}
	return u.set(func(b Backend) { b.UniformMatrix3fv(u.loc, int32(len(v)), flat) })
}

// SetMat4s uploads a mat4 array uniform. An empty slice is a no-op.
func (u *Uniform) SetMat4s(v []mgl32.Mat4) error {
	if len(v) == 0 {
		return nil
	}
	flat := make([]float32, 0, len(v)*16)
	for i := range v {
		flat = append(flat, v[i][:]...)
	}
	return u.set(func(b Backend) { b.UniformMatrix4fv(u.loc, int32(len(v)), flat) })
}

func flatten2(v []mgl32.Vec2) []float32 {
	flat := make([]float32, 0, len(v)*2)
	for i := range v {
		flat = append(flat, v[i][:]...)
	}
	return flat
}

func flatten3(v []mgl32.Vec3) []float32 {
	flat := make([]float32, 0, len(v)*3)
	for i := range v {
		flat = append(flat, v[i][:]...)
	}
	return flat
}

func flatten4(v []mgl32.Vec4) []float32 {
	flat := make([]float32, 0, len(v)*4)
	for i := range v {
		flat = append(flat, v[i][:]...)
	}
	return flat
}

// SetUniform resolves name and uploads value in one call, dispatching on
// the value's type. Unlike Program.Uniform it always treats a missing name
// as an error, whatever the OnMissing policy.
func (p *Program) SetUniform(name string, value interface{}) error {
	loc := p.ctx.backend.UniformLocation(p.handle, name)
	u := &Uniform{prog: p, name: name, loc: loc}
	if loc == -1 && p.ctx.caps != CapabilityNone {
		return &UniformNotFoundError{Name: name}
	}
	switch v := value.(type) {
	case bool:
		return u.SetBool(v)
	case int:
		return u.SetInt(int32(v))
	case int32:
		return u.SetInt(v)
	case [2]int32:
		return u.SetVec2i(v)
	case [3]int32:
		return u.SetVec3i(v)
	case [4]int32:
		return u.SetVec4i(v)
	case float32:
		return u.SetFloat(v)
	case float64:
		return u.SetFloat(float32(v))
	case mgl32.Vec2:
		return u.SetVec2(v)
	case mgl32.Vec3:
		return u.SetVec3(v)
	case mgl32.Vec4:
		return u.SetVec4(v)
	case mgl32.Mat2:
		return u.SetMat2(v)
	case mgl32.Mat3:
		return u.SetMat3(v)
	case mgl32.Mat4:
		return u.SetMat4(v)
	case []int32:
		return u.SetInts(v)
	case []float32:
		return u.SetFloats(v)
	case []mgl32.Vec2:
		return u.SetVec2s(v)
	case []mgl32.Vec3:
		return u.SetVec3s(v)
	case []mgl32.Vec4:
		return u.SetVec4s(v)
	case []mgl32.Mat3:
		return u.SetMat3s(v)
	case []mgl32.Mat4:
		return u.SetMat4s(v)
	}
	return fmt.Errorf("uniform %q: unsupported value type %T", name, value)
}
