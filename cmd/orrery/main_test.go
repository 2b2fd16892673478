package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/render"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	t.Setenv(logging.LevelEnvVar, "")
	return logging.NewLoggerWithWriter(&bytes.Buffer{})
}

func TestLoadSceneConfig_MissingFileUsesDefaults(t *testing.T) {
	logger := testLogger(t)
	t.Setenv(config.EnvTickInterval, "20ms")

	cfg, err := loadSceneConfig(context.Background(), logger, filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("loadSceneConfig failed: %v", err)
	}
	if len(cfg.Bodies) != 10 {
		t.Errorf("expected the default bodies, got %d", len(cfg.Bodies))
	}
	if cfg.Timing.TickIntervalMS != 20 {
		t.Errorf("environment override not applied: %d", cfg.Timing.TickIntervalMS)
	}
}

func TestLoadSceneConfig_FromFile(t *testing.T) {
	logger := testLogger(t)
	path := filepath.Join(t.TempDir(), "orrery.json")

	want := config.DefaultConfig()
	want.Window.Title = "Inner planets"
	want.Bodies = want.Bodies[:4]
	if err := config.SaveConfig(want, path); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadSceneConfig(context.Background(), logger, path)
	if err != nil {
		t.Fatalf("loadSceneConfig failed: %v", err)
	}
	if cfg.Window.Title != "Inner planets" || len(cfg.Bodies) != 4 {
		t.Errorf("unexpected config: title=%q bodies=%d", cfg.Window.Title, len(cfg.Bodies))
	}
}

func TestLoadSceneConfig_BadEnvironment(t *testing.T) {
	logger := testLogger(t)
	t.Setenv(config.EnvWindowWidth, "wide")

	if _, err := loadSceneConfig(context.Background(), logger, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a malformed override")
	}
}

func newTestHeadless(t *testing.T) (*headless, *render.NullBackend) {
	t.Helper()
	logger := testLogger(t)
	cfg := config.DefaultConfig()
	cfg.TextureDir = t.TempDir()

	system, err := entity.NewSystem(cfg.Bodies)
	if err != nil {
		t.Fatal(err)
	}
	backend := render.NewNullBackend(logger)
	return newHeadless(context.Background(), backend, cfg, system, logger, event.NewEventBus()), backend
}

func TestHeadless_DrawsOnlyAfterTicks(t *testing.T) {
	h, backend := newTestHeadless(t)
	ctx := context.Background()

	if !h.step(ctx, 0) {
		t.Error("the first frame should be drawn")
	}
	if h.step(ctx, 10*time.Millisecond) {
		t.Error("no tick is due yet, nothing to draw")
	}
	if !h.step(ctx, 20*time.Millisecond) {
		t.Error("a tick fell due, a frame should be drawn")
	}
	if h.animator.CurrentTick != 1 || backend.Rendered != 2 {
		t.Errorf("tick=%d frames=%d, want 1 and 2", h.animator.CurrentTick, backend.Rendered)
	}
}

func TestHeadless_RunStopsWithContext(t *testing.T) {
	h, backend := newTestHeadless(t)

	var quit bool
	h.bus.Subscribe(event.QuitRequested, func(event.Event) { quit = true })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	h.run(ctx, time.Now)

	if !quit {
		t.Error("expected a quit event")
	}
	if backend.Rendered == 0 {
		t.Error("expected at least one frame")
	}
}
