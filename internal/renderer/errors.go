package renderer

import "errors"

var (
	ErrShaderCompile         = errors.New("shader compile failed")
	ErrProgramLink           = errors.New("program link failed")
	ErrFramebufferIncomplete = errors.New("framebuffer incomplete")
)
