package glsl

import (
	"errors"
	"fmt"
)

// ErrGeometryUnsupported is returned when a geometry stage is attached on a
// context below OpenGL 3.2 or on the extension-only shader path.
var ErrGeometryUnsupported = errors.New("geometry shaders require an OpenGL 3.2 context")

// ProgramCreationError means the driver refused to allocate a program
// object. Programs cannot be used past this point.
type ProgramCreationError struct{}

func (e *ProgramCreationError) Error() string {
	return "program creation failed: driver returned a null program object"
}

// ShaderCompileError carries the failing stage and the driver's compile log
// verbatim.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader failed to compile: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the driver's link log verbatim.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("program failed to link: %s", e.Log)
}

// UniformNotFoundError means a uniform name resolved to no active location.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform %q not found (misspelled, unused, or eliminated by the compiler)", e.Name)
}

// AttribNotFoundError means an attribute name resolved to no active location.
type AttribNotFoundError struct {
	Name string
}

func (e *AttribNotFoundError) Error() string {
	return fmt.Sprintf("attribute %q not found (misspelled, unused, or eliminated by the compiler)", e.Name)
}

// UniformTypeMismatchError means the driver flagged an error state right
// after a typed uniform upload, which almost always means the Go-side value
// type disagrees with the GLSL declaration.
type UniformTypeMismatchError struct {
	Name string
	Code ErrCode
}

func (e *UniformTypeMismatchError) Error() string {
	return fmt.Sprintf("setting uniform %q: %s", e.Name, e.Code)
}

// OutOfMemoryError is the driver reporting exhausted GPU memory. It is
// always surfaced regardless of the owning program's check policy.
type OutOfMemoryError struct {
	Op string
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("GPU out of memory during %s", e.Op)
}
