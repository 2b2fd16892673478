package render

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/resource"
)

// ImageLoader decodes an image file
type ImageLoader func(path string) (*resource.Image, error)

// TextureLibrary loads textures once at startup and hands out handles.
// A file that cannot be loaded yields NoTexture so the body renders flat.
type TextureLibrary struct {
	backend Backend
	load    ImageLoader
	logger  *logging.Logger
	bus     *event.Bus

	handles  map[string]entity.TextureHandle
	failures map[string]error
}

// NewTextureLibrary creates a library uploading through backend.
// bus may be nil.
func NewTextureLibrary(backend Backend, logger *logging.Logger, bus *event.Bus) *TextureLibrary {
	return &TextureLibrary{
		backend:  backend,
		load:     resource.LoadImage,
		logger:   logger,
		bus:      bus,
		handles:  make(map[string]entity.TextureHandle),
		failures: make(map[string]error),
	}
}

// WithLoader replaces the image loader
func (l *TextureLibrary) WithLoader(load ImageLoader) *TextureLibrary {
	l.load = load
	return l
}

// Load returns the handle for path, loading it on first use. subject names
// the body the texture belongs to in logs.
func (l *TextureLibrary) Load(ctx context.Context, subject, path string) entity.TextureHandle {
	if path == "" {
		return entity.NoTexture
	}
	if h, ok := l.handles[path]; ok {
		return h
	}

	h, err := l.upload(path)
	if err != nil {
		l.failures[path] = err
		l.logger.Error(ctx, "Failed to load texture", err, "body", subject, "path", path)
		if l.bus != nil {
			l.bus.Publish(event.NewFailureEvent(event.TextureFallback, l, subject, err))
		}
	} else {
		l.logger.Debug(ctx, "Texture loaded", "body", subject, "path", path, "handle", uint32(h))
	}

	l.handles[path] = h
	return h
}

func (l *TextureLibrary) upload(path string) (entity.TextureHandle, error) {
	img, err := l.load(path)
	if err != nil {
		return entity.NoTexture, err
	}
	if img == nil {
		return entity.NoTexture, fmt.Errorf("no image data for %s", path)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return entity.NoTexture, fmt.Errorf("unsupported number of channels: %d", img.Channels)
	}

	h, err := l.backend.CreateTexture(img)
	if err != nil {
		return entity.NoTexture, err
	}
	return h, nil
}

// LoadSystem assigns a texture handle to every body and ring in system.
// resolve maps a texture file name to a path.
func (l *TextureLibrary) LoadSystem(ctx context.Context, system *entity.System, resolve func(string) string) {
	for _, b := range system.Bodies() {
		b.Texture = l.Load(ctx, b.Name, resolve(b.TextureFile))
		if b.Ring != nil {
			b.Ring.Texture = l.Load(ctx, b.Name+" ring", resolve(b.Ring.TextureFile))
		}
	}

	if len(l.failures) > 0 {
		l.logger.Warn(ctx, "Failed to load one or more textures", "failed", len(l.failures), "loaded", len(l.handles)-len(l.failures))
	}
}

// Failures returns the load error recorded for each failed path
func (l *TextureLibrary) Failures() map[string]error {
	return l.failures
}

// LoadScene uploads every body, ring and skybox texture of a scene and
// hands the skybox handle to fr.
func (l *TextureLibrary) LoadScene(ctx context.Context, cfg *config.SceneConfig, system *entity.System, fr *FrameRenderer) {
	l.LoadSystem(ctx, system, cfg.TexturePath)
	fr.SkyboxTexture = l.Load(ctx, "skybox", cfg.TexturePath(cfg.Skybox.Texture))
}
