package resource

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImage_OpaquePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.RGBA{R: uint8(10 * x), G: uint8(100 + y), B: 7, A: 255})
		}
	}

	img, err := LoadImage(writePNG(t, src))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if img.Width != 3 || img.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", img.Width, img.Height)
	}
	if img.Channels != 3 {
		t.Errorf("channels = %d, want 3", img.Channels)
	}
	if len(img.Pix) != 3*2*3 {
		t.Fatalf("len(Pix) = %d, want 18", len(img.Pix))
	}
	// Pixel (2,1)
	off := 1*img.Stride() + 2*3
	if img.Pix[off] != 20 || img.Pix[off+1] != 101 || img.Pix[off+2] != 7 {
		t.Errorf("pixel (2,1) = %v", img.Pix[off:off+3])
	}
	if img.Format != "png" {
		t.Errorf("format = %q, want png", img.Format)
	}
}

func TestLoadImage_TranslucentPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 200, G: 150, B: 100, A: 128})

	img, err := LoadImage(writePNG(t, src))
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Channels != 4 {
		t.Fatalf("channels = %d, want 4", img.Channels)
	}
	if got := img.Pix[:4]; got[0] != 200 || got[1] != 150 || got[2] != 100 || got[3] != 128 {
		t.Errorf("pixel (0,0) = %v", got)
	}
}

func TestDecode_BMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Format != "bmp" || img.Width != 4 || img.Height != 4 {
		t.Errorf("unexpected image %s %dx%d", img.Format, img.Width, img.Height)
	}
}

func TestLoadImage_MissingFile(t *testing.T) {
	img, err := LoadImage(filepath.Join(t.TempDir(), "Textures", "pluto.png"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if img != nil {
		t.Error("expected nil image on failure")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadImage_Undecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := LoadImage(path)
	if err == nil || img != nil {
		t.Errorf("expected decode failure, got %v, %v", img, err)
	}
}
