package render

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/resource"
)

// recordingBackend captures every call for inspection
type recordingBackend struct {
	textures []*resource.Image
	calls    []DrawCall
	view     mgl32.Mat4
	proj     mgl32.Mat4
	width    int
	height   int
	began    int
	ended    int

	failUpload bool
	errs       []error
}

func (b *recordingBackend) CreateTexture(img *resource.Image) (entity.TextureHandle, error) {
	if b.failUpload {
		return entity.NoTexture, errors.New("upload failed")
	}
	b.textures = append(b.textures, img)
	return entity.TextureHandle(len(b.textures)), nil
}

func (b *recordingBackend) SetViewport(w, h int) { b.width, b.height = w, h }
func (b *recordingBackend) SetProjection(m mgl32.Mat4) { b.proj = m }
func (b *recordingBackend) BeginFrame() { b.began++; b.calls = nil }
func (b *recordingBackend) SetView(m mgl32.Mat4) { b.view = m }
func (b *recordingBackend) Draw(call DrawCall) { b.calls = append(b.calls, call) }
func (b *recordingBackend) EndFrame() { b.ended++ }

func (b *recordingBackend) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	err := b.errs[0]
	b.errs = b.errs[1:]
	return err
}

func (b *recordingBackend) labels() []string {
	out := make([]string, len(b.calls))
	for i, c := range b.calls {
		out[i] = c.Label
	}
	return out
}

func (b *recordingBackend) call(label string) (DrawCall, bool) {
	for _, c := range b.calls {
		if c.Label == label {
			return c, true
		}
	}
	return DrawCall{}, false
}

func fakeImage(string) (*resource.Image, error) {
	return &resource.Image{Width: 1, Height: 1, Channels: 3, Format: "png", Pix: []byte{255, 255, 255}}, nil
}
