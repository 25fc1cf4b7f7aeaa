package glsl

import "github.com/golang/glog"

// Context ties the shader abstraction to one live graphics context. It owns
// the negotiated capability tier and the single "currently bound program"
// slot. All methods must run on the thread that owns the graphics context;
// concurrent use without external locking is unsupported.
type Context struct {
	backend Backend
	caps    Capability
	major   int
	minor   int
	current *Program
}

// NewContext negotiates the capability tier of the backend's context and
// returns a Context routing all further calls through it. When the context
// offers no shader support every operation degrades to a silent no-op.
func NewContext(b Backend) *Context {
	caps := DetectCapability(b)
	major, minor, _ := parseVersion(b.VersionString())
	if caps == CapabilityNone {
		b = noopBackend{}
	}
	glog.V(1).Infof("shader capability: %s (version %d.%d)", caps, major, minor)
	return &Context{backend: b, caps: caps, major: major, minor: minor}
}

// Capability returns the tier negotiated at context creation.
func (c *Context) Capability() Capability {
	return c.caps
}

// VersionAtLeast reports whether the context version is at least major.minor.
func (c *Context) VersionAtLeast(major, minor int) bool {
	return c.major > major || (c.major == major && c.minor >= minor)
}

// BindProgram makes p the active program, or unbinds with nil. Rebinding
// whatever is already bound is a no-op, so callers can bind unconditionally
// before every draw batch.
func (c *Context) BindProgram(p *Program) {
	if p == c.current {
		return
	}
	if p == nil {
		c.backend.UseProgram(0)
		if c.caps == CapabilityExtension {
			// fglrx-class drivers leave the old shader visibly active on
			// the fixed-function path unless the null bind is issued twice.
			c.backend.UseProgram(0)
		}
	} else {
		c.backend.UseProgram(p.handle)
	}
	c.current = p
}

// BoundProgram returns the currently bound program, or nil.
func (c *Context) BoundProgram() *Program {
	return c.current
}
