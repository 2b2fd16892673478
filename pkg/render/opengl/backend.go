// Package opengl draws frames with the OpenGL 2.1 fixed-function pipeline.
// All calls must happen on the goroutine owning the GL context.
package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/render"
	"github.com/opd-ai/go-orrery/pkg/resource"
)

// Light is a fixed-function light source
type Light struct {
	Position [4]float32
	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32
}

// DefaultLights returns the two lights at the viewer: a bright key light
// and a dimmer fill.
func DefaultLights() []Light {
	return []Light{
		{
			Position: [4]float32{0, 0, 0, 1},
			Ambient:  [4]float32{0.2, 0.2, 0.2, 1},
			Diffuse:  [4]float32{0.9, 0.9, 0.9, 1},
			Specular: [4]float32{1, 1, 1, 1},
		},
		{
			Position: [4]float32{0, 0, 0, 1},
			Diffuse:  [4]float32{0.5, 0.5, 0.5, 1},
		},
	}
}

// Backend implements render.Backend on top of go-gl
type Backend struct {
	lights []Light
	view   mgl32.Mat4
}

// New creates a backend with the default lights. Init must be called once
// the context is current.
func New() *Backend {
	return &Backend{lights: DefaultLights(), view: mgl32.Ident4()}
}

// Init loads the GL entry points and sets up the fixed pipeline state.
func (b *Backend) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.COLOR_MATERIAL)
	gl.Enable(gl.NORMALIZE)
	gl.ClearColor(0, 0, 0, 1)

	// Light positions are given in eye space so the lights follow the camera.
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
	for i, l := range b.lights {
		id := uint32(gl.LIGHT0 + i)
		gl.Enable(id)
		gl.Lightfv(id, gl.POSITION, &l.Position[0])
		gl.Lightfv(id, gl.AMBIENT, &l.Ambient[0])
		gl.Lightfv(id, gl.DIFFUSE, &l.Diffuse[0])
		gl.Lightfv(id, gl.SPECULAR, &l.Specular[0])
	}

	return b.Err()
}

// CreateTexture implements render.Backend
func (b *Backend) CreateTexture(img *resource.Image) (entity.TextureHandle, error) {
	format, err := pixelFormat(img.Channels)
	if err != nil {
		return entity.NoTexture, err
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(img.Width), int32(img.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := b.Err(); err != nil {
		gl.DeleteTextures(1, &id)
		return entity.NoTexture, err
	}
	return entity.TextureHandle(id), nil
}

// SetViewport implements render.Backend
func (b *Backend) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetProjection implements render.Backend
func (b *Backend) SetProjection(m mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&m[0])
	gl.MatrixMode(gl.MODELVIEW)
}

// BeginFrame implements render.Backend
func (b *Backend) BeginFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetView implements render.Backend
func (b *Backend) SetView(m mgl32.Mat4) {
	b.view = m
}

// Draw implements render.Backend
func (b *Backend) Draw(call render.DrawCall) {
	mv := b.view.Mul4(call.Model)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&mv[0])

	mat := call.Material
	if mat.Lit {
		gl.Enable(gl.LIGHTING)
	} else {
		gl.Disable(gl.LIGHTING)
	}
	if mat.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	if mat.Textured() {
		gl.Enable(gl.TEXTURE_2D)
		gl.BindTexture(gl.TEXTURE_2D, uint32(mat.Texture))
	} else {
		gl.Disable(gl.TEXTURE_2D)
	}
	gl.Color4f(mat.Color[0], mat.Color[1], mat.Color[2], mat.Color[3])

	submit(call.Mesh)

	if mat.Textured() {
		gl.Disable(gl.TEXTURE_2D)
	}
	if mat.Blend {
		gl.Disable(gl.BLEND)
	}
}

func submit(mesh *render.Mesh) {
	gl.Begin(gl.TRIANGLES)
	for _, i := range mesh.Indices {
		v := mesh.Vertices[i]
		gl.Normal3f(v.Normal[0], v.Normal[1], v.Normal[2])
		gl.TexCoord2f(v.UV[0], v.UV[1])
		gl.Vertex3f(v.Position[0], v.Position[1], v.Position[2])
	}
	gl.End()
}

// Err implements render.Backend. Every pending error flag is drained.
func (b *Backend) Err() error {
	var errs []error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		errs = append(errs, Error(code))
		if len(errs) > maxErrors {
			break
		}
	}
	return errors.Join(errs...)
}

// EndFrame implements render.Backend
func (b *Backend) EndFrame() {
	gl.Flush()
}

var _ render.Backend = (*Backend)(nil)
