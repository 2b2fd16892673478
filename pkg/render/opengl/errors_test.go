package opengl

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v2.1/gl"
)

func TestError_Strings(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{gl.INVALID_ENUM, "OpenGL error: invalid enumerant"},
		{gl.INVALID_OPERATION, "OpenGL error: invalid operation"},
		{gl.OUT_OF_MEMORY, "OpenGL error: out of memory"},
		{0x1234, "OpenGL error: 0x1234"},
	}
	for _, tt := range tests {
		if got := Error(tt.code).Error(); got != tt.want {
			t.Errorf("Error(0x%x) = %q, want %q", tt.code, got, tt.want)
		}
	}

	var target Error
	if !errors.As(errors.Join(Error(gl.INVALID_VALUE)), &target) || uint32(target) != gl.INVALID_VALUE {
		t.Error("joined errors should unwrap to Error")
	}
}

func TestPixelFormat(t *testing.T) {
	tests := []struct {
		channels int
		want     uint32
		wantErr  bool
	}{
		{3, gl.RGB, false},
		{4, gl.RGBA, false},
		{1, 0, true},
		{2, 0, true},
	}
	for _, tt := range tests {
		got, err := pixelFormat(tt.channels)
		if (err != nil) != tt.wantErr {
			t.Errorf("channels %d: unexpected error %v", tt.channels, err)
		}
		if got != tt.want {
			t.Errorf("channels %d: got 0x%x, want 0x%x", tt.channels, got, tt.want)
		}
	}

	if len(DefaultLights()) != 2 {
		t.Error("expected key and fill lights")
	}
}
