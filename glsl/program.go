// Package glsl manages GPU shader programs: compiling stages, linking,
// and pushing uniform and vertex-attribute values, with capability
// negotiation across native, ARB-extension, and shaderless contexts.
package glsl

import (
	"fmt"
	"strings"

	"github.com/golang/glog"
)

// MissingAction configures what Program.Uniform does when a name resolves
// to no active location.
type MissingAction int

// Missing-uniform policies.
const (
	// ActionError returns a UniformNotFoundError alongside the dead handle.
	ActionError MissingAction = iota
	// ActionWarn logs a warning and returns the dead handle.
	ActionWarn
	// ActionIgnore silently returns the dead handle.
	ActionIgnore
)

// TypeCheck configures validation of typed uniform uploads.
type TypeCheck int

// Uniform type-check policies.
const (
	// TypeCheckNone performs no validation; a wrong-typed upload leaves an
	// error in the driver's queue for later generic polling. Fastest.
	TypeCheckNone TypeCheck = iota
	// TypeCheckWarn polls the error queue around every upload and logs.
	TypeCheckWarn
	// TypeCheckError polls the error queue around every upload and returns
	// a UniformTypeMismatchError.
	TypeCheckError
)

// Program owns one GPU program object and its attached shader stages.
// Create through Context.NewProgram, attach stages, then Link before
// resolving any uniform or attribute. Relinking resets all previously
// pushed uniform values to zero (GPU contract) and invalidates previously
// resolved handles.
type Program struct {
	ctx     *Context
	handle  uint32
	shaders []uint32
	linked  bool

	// OnMissing is the policy Uniform applies to unresolved names.
	OnMissing MissingAction
	// TypeCheck is the validation policy for uniform uploads.
	TypeCheck TypeCheck
}

// NewProgram allocates a GPU program object. A null handle from the driver
// is fatal for the program and reported as ProgramCreationError.
func (c *Context) NewProgram() (*Program, error) {
	handle := c.backend.CreateProgram()
	if handle == 0 && c.caps != CapabilityNone {
		return nil, &ProgramCreationError{}
	}
	return &Program{ctx: c, handle: handle}, nil
}

// Handle returns the GPU program object handle.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Context returns the owning context.
func (p *Program) Context() *Context {
	return p.ctx
}

// Bind makes this the active program.
func (p *Program) Bind() {
	p.ctx.BindProgram(p)
}

// compile builds one shader object for stage from src. The recover wrapper
// converts a driver crash during compilation (seen on broken fglrx builds
// with some GLSL constructs) into an ordinary compile error.
func (p *Program) compile(stage Stage, src string) (sh uint32, err error) {
	b := p.ctx.backend
	defer func() {
		if r := recover(); r != nil {
			if sh != 0 {
				b.DeleteShader(sh)
			}
			sh = 0
			err = &ShaderCompileError{Stage: stage, Log: fmt.Sprintf("driver fault during compilation: %v", r)}
		}
	}()

	sh = b.CreateShader(stage)
	if sh == 0 {
		// Shaderless context: stay silent, per the no-support contract.
		return 0, nil
	}
	b.ShaderSource(sh, src)
	b.CompileShader(sh)
	if !b.CompileStatus(sh) {
		log := b.ShaderInfoLog(sh)
		b.DeleteShader(sh)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return sh, nil
}

func (p *Program) checkStage(stage Stage) error {
	if stage != StageGeometry {
		return nil
	}
	switch p.ctx.caps {
	case CapabilityNone:
		return nil
	case CapabilityExtension:
		return ErrGeometryUnsupported
	}
	if !p.ctx.VersionAtLeast(3, 2) {
		return ErrGeometryUnsupported
	}
	return nil
}

// AttachShader compiles src as one stage and attaches it to the program.
// The compiled object is tracked so DetachAll and Delete can release it.
func (p *Program) AttachShader(stage Stage, src string) error {
	if err := p.checkStage(stage); err != nil {
		return err
	}
	sh, err := p.compile(stage, src)
	if err != nil {
		return err
	}
	if sh == 0 {
		return nil
	}
	p.ctx.backend.AttachShader(p.handle, sh)
	p.shaders = append(p.shaders, sh)
	return nil
}

// AttachShaderParts attaches several source parts for one stage. Desktop
// contexts compile each part as its own shader object, linked together with
// a single entry point overall. ES contexts disallow multiple shader
// objects per stage, so there the parts are concatenated and compiled as
// one unit; a concatenation that is empty or whitespace-only is skipped
// entirely.
func (p *Program) AttachShaderParts(stage Stage, parts []string) error {
	if p.ctx.backend.IsES() {
		joined := strings.Join(parts, "\n")
		if strings.TrimSpace(joined) == "" {
			return nil
		}
		return p.AttachShader(stage, joined)
	}
	for _, part := range parts {
		if err := p.AttachShader(stage, part); err != nil {
			return err
		}
	}
	return nil
}

// DetachAll detaches and deletes every attached shader object. Safe with
// nothing attached.
func (p *Program) DetachAll() {
	b := p.ctx.backend
	for _, sh := range p.shaders {
		b.DetachShader(p.handle, sh)
		b.DeleteShader(sh)
	}
	p.shaders = p.shaders[:0]
}

// Link links the attached stages. On failure the driver's link log is
// returned verbatim inside ProgramLinkError. Linking again after more
// attach/detach calls is allowed; it resets all uniform values to zero and
// invalidates handles resolved against the previous link.
func (p *Program) Link() error {
	b := p.ctx.backend
	b.LinkProgram(p.handle)
	if !b.LinkStatus(p.handle) {
		return &ProgramLinkError{Log: b.ProgramInfoLog(p.handle)}
	}
	p.linked = true
	if glog.V(2) {
		glog.Info(p.DebugInfo())
	}
	return nil
}

// Linked reports whether the program has been linked successfully.
func (p *Program) Linked() bool {
	return p.linked
}

// DebugInfo returns a multi-line dump of the linked program's active
// uniforms and attributes, as reported by the driver.
func (p *Program) DebugInfo() string {
	b := p.ctx.backend
	var sb strings.Builder
	fmt.Fprintf(&sb, "program %d\n", p.handle)
	sb.WriteString("active uniforms:\n")
	for _, v := range b.ActiveUniforms(p.handle) {
		fmt.Fprintf(&sb, "  %s (type 0x%04x, size %d)\n", v.Name, v.Type, v.Size)
	}
	sb.WriteString("active attributes:\n")
	for _, v := range b.ActiveAttribs(p.handle) {
		fmt.Fprintf(&sb, "  %s (type 0x%04x, size %d)\n", v.Name, v.Type, v.Size)
	}
	return sb.String()
}

// Delete releases all GPU resources. The program is unbound first if it is
// the active one. Terminal: the program cannot be used afterwards.
func (p *Program) Delete() {
	if p.ctx.current == p {
		p.ctx.BindProgram(nil)
	}
	p.DetachAll()
	if p.handle != 0 {
		p.ctx.backend.DeleteProgram(p.handle)
	}
	p.handle = 0
	p.linked = false
}
