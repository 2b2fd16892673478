package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/resource"
)

func newLibrary(t *testing.T, b Backend) (*TextureLibrary, *event.Bus) {
	t.Helper()
	t.Setenv(logging.LevelEnvVar, "")
	bus := event.NewEventBus()
	return NewTextureLibrary(b, logging.NewLoggerWithWriter(&bytes.Buffer{}), bus), bus
}

func TestTextureLibrary_LoadsPNGFromDisk(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	path := filepath.Join(dir, "earth.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	backend := &recordingBackend{}
	lib, _ := newLibrary(t, backend)

	h := lib.Load(context.Background(), "earth", path)
	if !h.Valid() {
		t.Fatal("expected a valid handle")
	}
	if len(backend.textures) != 1 || backend.textures[0].Channels != 3 {
		t.Fatalf("expected one RGB upload, got %v", backend.textures)
	}
	if backend.textures[0].Pix[0] != 10 {
		t.Errorf("first pixel red = %d, want 10", backend.textures[0].Pix[0])
	}

	// Cached on second use.
	if again := lib.Load(context.Background(), "earth", path); again != h {
		t.Errorf("expected cached handle %d, got %d", h, again)
	}
	if len(backend.textures) != 1 {
		t.Error("texture uploaded twice")
	}
}

func TestTextureLibrary_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		backend *recordingBackend
		loader  ImageLoader
	}{
		{
			name:    "load error",
			backend: &recordingBackend{},
			loader: func(string) (*resource.Image, error) {
				return nil, errors.New("broken")
			},
		},
		{
			name:    "two channels",
			backend: &recordingBackend{},
			loader: func(string) (*resource.Image, error) {
				return &resource.Image{Width: 1, Height: 1, Channels: 2, Pix: []byte{0, 0}}, nil
			},
		},
		{
			name:    "upload error",
			backend: &recordingBackend{failUpload: true},
			loader:  fakeImage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, bus := newLibrary(t, tt.backend)
			lib.WithLoader(tt.loader)

			var events int
			bus.Subscribe(event.TextureFallback, func(event.Event) { events++ })

			if h := lib.Load(context.Background(), "venus", "venus.png"); h.Valid() {
				t.Errorf("expected NoTexture, got %d", h)
			}
			if events != 1 {
				t.Errorf("expected one fallback event, got %d", events)
			}
			if _, ok := lib.Failures()["venus.png"]; !ok {
				t.Error("failure not recorded")
			}
		})
	}
}

func TestTextureLibrary_EmptyPath(t *testing.T) {
	lib, _ := newLibrary(t, &recordingBackend{})
	if h := lib.Load(context.Background(), "sun", ""); h.Valid() {
		t.Error("empty path should yield NoTexture")
	}
	if len(lib.Failures()) != 0 {
		t.Error("empty path is not a failure")
	}
}
