package glsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCapability(t *testing.T) {
	allARB := []string{
		"GL_ARB_shader_objects",
		"GL_ARB_vertex_shader",
		"GL_ARB_fragment_shader",
		"GL_ARB_shading_language_100",
	}
	cases := []struct {
		name    string
		version string
		exts    []string
		es      bool
		want    Capability
	}{
		{"modern desktop", "4.1 NVIDIA 535.54.03", nil, false, CapabilityStandard},
		{"minimum desktop", "2.0", nil, false, CapabilityStandard},
		{"mesa 2.1", "2.1 Mesa 23.1.4", nil, false, CapabilityStandard},
		{"es 2", "OpenGL ES 2.0 (ANGLE)", nil, true, CapabilityStandard},
		{"es 3", "OpenGL ES 3.2 Mesa 23.1.4", nil, true, CapabilityStandard},
		{"es 1 common", "OpenGL ES-CM 1.1", nil, true, CapabilityNone},
		{"old with arb", "1.5.2 NVIDIA 71.74", allARB, false, CapabilityExtension},
		{"old missing one arb", "1.5", allARB[:3], false, CapabilityNone},
		{"ancient", "1.2", nil, false, CapabilityNone},
		{"garbage version", "yes", nil, false, CapabilityNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeBackend()
			f.version = tc.version
			f.exts = tc.exts
			f.es = tc.es
			assert.Equal(t, tc.want, DetectCapability(f))
		})
	}
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in           string
		major, minor int
		ok           bool
	}{
		{"4.1 INTEL-18.4.6", 4, 1, true},
		{"2.1", 2, 1, true},
		{"OpenGL ES 3.0 Mesa 20.0.4", 3, 0, true},
		{"OpenGL ES-CM 1.1 Apple", 1, 1, true},
		{"", 0, 0, false},
		{"vendor nonsense", 0, 0, false},
	}
	for _, tc := range cases {
		major, minor, err := parseVersion(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.major, major, tc.in)
		assert.Equal(t, tc.minor, minor, tc.in)
	}
}

func TestCapabilityNoneDisablesEverything(t *testing.T) {
	f := newFakeBackend()
	f.version = "1.4"

	ctx := NewContext(f)
	assert.Equal(t, CapabilityNone, ctx.Capability())

	p, err := ctx.NewProgram()
	assert.NoError(t, err)
	assert.NoError(t, p.AttachShader(StageVertex, "void main() {}"))
	assert.NoError(t, p.AttachShader(StageGeometry, "void main() {}"))
	assert.NoError(t, p.Link())

	u, err := p.Uniform("anything")
	assert.NoError(t, err)
	assert.Equal(t, int32(-1), u.Location())
	assert.NoError(t, u.SetFloat(1))

	a, err := p.Attrib("anything")
	assert.NoError(t, err)
	assert.Equal(t, int32(-1), a.Location())
	a.EnableArrayVec3(0, 0)
	a.DisableArray()

	ctx.BindProgram(p)
	ctx.BindProgram(nil)
	p.Delete()

	// the probed backend never sees a single GPU call
	assert.Zero(t, f.totalCalls())
}
