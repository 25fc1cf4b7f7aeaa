package gfx

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context version requested from glfw. 2.1 is the floor of the binding set;
// drivers hand back the highest compatible version they have.
const (
	openglVersionMajor = 2
	openglVersionMinor = 1
)

// Window represents a wrapped glfw window object.
type Window struct {
	Config     *WindowConfig
	GlfwWindow *glfw.Window
}

// WindowConfig contains a new window configuration
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// NewWindow initializes a new window object with glfw and makes its GL
// context current on the calling thread.
func NewWindow(cfg *WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, openglVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, openglVersionMinor)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	return &Window{Config: cfg, GlfwWindow: window}, nil
}

// Size returns the current framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.GlfwWindow.GetFramebufferSize()
}
