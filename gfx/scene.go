package gfx

import (
	"context"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/peragwin/glshader/glsl"
	"github.com/peragwin/glshader/glsl/opengl"
)

// ShaderConfig is one stage of the scene's program. Parts are attached
// through AttachShaderParts, so multi-part sources work on desktop and ES
// contexts alike.
type ShaderConfig struct {
	Stage glsl.Stage
	Parts []string
}

// Scene is a window plus one linked shader program and the vertex/texture
// objects drawn with it.
type Scene struct {
	Window  *Window
	GL      *glsl.Context
	Program *glsl.Program

	vaos     []*VertexArrayObject
	textures []*TextureObject

	ctx context.Context
}

// NewScene opens a window, initializes OpenGL, and compiles and links the
// given shader stages into the scene's program.
func NewScene(ctx context.Context,
	windowConfig *WindowConfig, shaderConfigs []*ShaderConfig) (*Scene, error) {
	window, err := NewWindow(windowConfig)
	if err != nil {
		return nil, err
	}

	if err := opengl.Init(); err != nil {
		return nil, err
	}
	glc := opengl.NewContext()

	program, err := glc.NewProgram()
	if err != nil {
		return nil, err
	}
	for _, cfg := range shaderConfigs {
		if err := program.AttachShaderParts(cfg.Stage, cfg.Parts); err != nil {
			return nil, err
		}
	}
	if err := program.Link(); err != nil {
		return nil, err
	}
	if glog.V(1) {
		glog.Info(program.DebugInfo())
	}

	return &Scene{
		Window:  window,
		GL:      glc,
		Program: program,
		ctx:     ctx,
	}, nil
}

// EventLoop clears the current framebuffer and executes render in a loop
// until the underlying glfw window tells it to stop. Calls glfw.Terminate
// when finished.
func (s *Scene) EventLoop(render func(*Scene)) {

	// OpenGL requires that rendering functions be called from the main thread
	runtime.LockOSThread()
	defer s.Terminate()

	for !s.Window.GlfwWindow.ShouldClose() {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		s.Program.Bind()

		render(s)

		s.Draw()

		glfw.PollEvents()
		s.Window.GlfwWindow.SwapBuffers()
	}
}

// Draw draws every VAO that's attached to the scene.
func (s *Scene) Draw() {
	for _, v := range s.vaos {
		v.Draw(s)
	}
}

// Terminate releases the program and ends the glfw session.
func (s *Scene) Terminate() {
	s.Program.Delete()
	glfw.Terminate()
}
