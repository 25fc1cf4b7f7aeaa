package glsl

import (
	"fmt"
	"strings"
)

// Capability is the negotiated shader feature tier of the active context.
type Capability int

// Capability tiers.
const (
	// CapabilityNone means the context offers no shader support at all.
	// Every operation in this package becomes a silent no-op and every
	// resolved location is -1.
	CapabilityNone Capability = iota
	// CapabilityExtension means shaders are available only through the
	// ARB extension entry points (pre-2.0 desktop contexts).
	CapabilityExtension
	// CapabilityStandard means the context provides the native 2.0+ API.
	CapabilityStandard
)

func (c Capability) String() string {
	switch c {
	case CapabilityExtension:
		return "extension"
	case CapabilityStandard:
		return "standard"
	}
	return "none"
}

// Extensions that together provide shader support below version 2.0.
var arbShaderExtensions = [...]string{
	"GL_ARB_shader_objects",
	"GL_ARB_vertex_shader",
	"GL_ARB_fragment_shader",
	"GL_ARB_shading_language_100",
}

// DetectCapability derives the shader capability tier from the backend's
// reported version and extension list. It is a pure function of that state
// and must be re-derived if the underlying context ever changes.
func DetectCapability(b Backend) Capability {
	major, _, err := parseVersion(b.VersionString())
	if err != nil {
		return CapabilityNone
	}
	if b.IsES() {
		// ES 2.0+ is shader-only; ES 1.x has no shader path at all.
		if major >= 2 {
			return CapabilityStandard
		}
		return CapabilityNone
	}
	if major >= 2 {
		return CapabilityStandard
	}
	exts := make(map[string]bool, len(b.Extensions()))
	for _, e := range b.Extensions() {
		exts[e] = true
	}
	for _, need := range arbShaderExtensions {
		if !exts[need] {
			return CapabilityNone
		}
	}
	return CapabilityExtension
}

// parseVersion extracts the major and minor version from a GL version
// string. Desktop strings start with "major.minor", ES strings carry an
// "OpenGL ES" (or "OpenGL ES-CM" / "OpenGL ES-CL") prefix, and vendors
// append arbitrary text after the number.
func parseVersion(s string) (major, minor int, err error) {
	const prefix = "OpenGL ES"
	if strings.HasPrefix(s, prefix) {
		rest := s[len(prefix):]
		// profile suffix on 1.x strings, e.g. "OpenGL ES-CM 1.1"
		if i := strings.IndexByte(rest, ' '); i > 0 {
			rest = rest[i:]
		}
		s = strings.TrimSpace(rest)
	}
	if _, err := fmt.Sscanf(s, "%d.%d", &major, &minor); err != nil {
		return 0, 0, fmt.Errorf("unrecognized version string %q: %w", s, err)
	}
	return major, minor, nil
}
