// Package resource decodes texture images from disk into raw pixel data.
package resource

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned for images without pixels
var ErrEmptyImage = errors.New("image has no pixels")

// Image is decoded pixel data, tightly packed, first row first
type Image struct {
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA, non-premultiplied)
	Format   string
	Pix      []byte
}

// Stride returns the number of bytes per row
func (img *Image) Stride() int {
	return img.Width * img.Channels
}

// LoadImage decodes the file at path. On failure it returns a nil image
// and an error naming the path.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered image format from r
func Decode(r io.Reader) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	out := &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}

	if isOpaque(src) {
		out.Channels = 3
		out.Pix = stripAlpha(nrgba)
	} else {
		out.Channels = 4
		out.Pix = packRows(nrgba)
	}

	return out, nil
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}

func packRows(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride == w*4 {
		return img.Pix[:w*h*4]
	}
	pix := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		pix = append(pix, row...)
	}
	return pix
}

func stripAlpha(img *image.NRGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return pix
}
