package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
)

// maxErrors bounds the error flags drained in one Err call
const maxErrors = 16

// Error is an OpenGL error code
type Error uint32

func (e Error) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "OpenGL error: invalid enumerant"
	case gl.INVALID_VALUE:
		return "OpenGL error: invalid value"
	case gl.INVALID_OPERATION:
		return "OpenGL error: invalid operation"
	case gl.STACK_OVERFLOW:
		return "OpenGL error: stack overflow"
	case gl.STACK_UNDERFLOW:
		return "OpenGL error: stack underflow"
	case gl.OUT_OF_MEMORY:
		return "OpenGL error: out of memory"
	default:
		return fmt.Sprintf("OpenGL error: 0x%04x", uint32(e))
	}
}

func pixelFormat(channels int) (uint32, error) {
	switch channels {
	case 3:
		return gl.RGB, nil
	case 4:
		return gl.RGBA, nil
	default:
		return 0, fmt.Errorf("unsupported number of channels: %d", channels)
	}
}
