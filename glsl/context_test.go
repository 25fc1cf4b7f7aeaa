package glsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T, f *fakeBackend) (*Context, *Program) {
	t.Helper()
	ctx := NewContext(f)
	p, err := ctx.NewProgram()
	assert.NoError(t, err)
	return ctx, p
}

func TestBindProgramDeduplicates(t *testing.T) {
	f := newFakeBackend()
	ctx, p := newTestContext(t, f)

	ctx.BindProgram(p)
	ctx.BindProgram(p)
	ctx.BindProgram(p)

	assert.Equal(t, 1, f.calls["UseProgram"])
	assert.Equal(t, []uint32{p.Handle()}, f.useProgram)
	assert.Same(t, p, ctx.BoundProgram())
}

func TestBindNilIsNoopWhenNothingBound(t *testing.T) {
	f := newFakeBackend()
	ctx, _ := newTestContext(t, f)

	ctx.BindProgram(nil)

	assert.Zero(t, f.calls["UseProgram"])
	assert.Nil(t, ctx.BoundProgram())
}

func TestUnbindStandard(t *testing.T) {
	f := newFakeBackend()
	ctx, p := newTestContext(t, f)

	ctx.BindProgram(p)
	ctx.BindProgram(nil)

	assert.Equal(t, []uint32{p.Handle(), 0}, f.useProgram)
}

func TestUnbindExtensionIssuesNullBindTwice(t *testing.T) {
	f := newFakeBackend()
	f.version = "1.5.2 NVIDIA"
	f.exts = arbShaderExtensions[:]
	ctx, p := newTestContext(t, f)
	assert.Equal(t, CapabilityExtension, ctx.Capability())

	ctx.BindProgram(p)
	ctx.BindProgram(nil)
	ctx.BindProgram(nil)

	assert.Equal(t, []uint32{p.Handle(), 0, 0}, f.useProgram)
}

func TestDeleteUnbindsActiveProgram(t *testing.T) {
	f := newFakeBackend()
	ctx, p := newTestContext(t, f)

	h := p.Handle()
	ctx.BindProgram(p)
	p.Delete()

	assert.Nil(t, ctx.BoundProgram())
	assert.Equal(t, []uint32{h}, f.deleted)
	assert.Equal(t, []uint32{h, 0}, f.useProgram)
}
