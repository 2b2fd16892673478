// cmd/orrery/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/render"
	engorender "github.com/opd-ai/go-orrery/pkg/render/engo"
	"github.com/opd-ai/go-orrery/pkg/validation"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	configPath := flag.String("config", "orrery.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'null'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	textures := flag.String("textures", "", "Texture directory (overrides config)")
	duration := flag.Duration("duration", 0, "Stop after this long (terminal and null only, 0 runs until interrupted)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	sceneConfig, err := loadSceneConfig(ctx, logger, *configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", *configPath,
		)
		os.Exit(1)
	}

	// Command line flags win over file and environment
	if *width > 0 {
		sceneConfig.Window.Width = *width
	}
	if *height > 0 {
		sceneConfig.Window.Height = *height
	}
	if *textures != "" {
		sceneConfig.TextureDir = *textures
	}
	sceneConfig.Window.Fullscreen = sceneConfig.Window.Fullscreen || *fullscreen

	if err := validation.ValidateConfig(sceneConfig); err != nil {
		logger.Error(ctx, "Invalid configuration", err)
		os.Exit(1)
	}

	system, err := entity.NewSystem(sceneConfig.Bodies)
	if err != nil {
		logger.Error(ctx, "Failed to build solar system", err)
		os.Exit(1)
	}

	eventBus := event.NewEventBus()
	eventBus.Subscribe(event.QuitRequested, func(e event.Event) {
		logger.Info(ctx, "Quit requested")
	})

	logger.Info(ctx, "Starting orrery",
		"renderer", *renderer,
		"bodies", len(system.Bodies()),
		"texture_dir", sceneConfig.TextureDir,
	)

	// Choose renderer based on command line flag
	switch *renderer {
	case "terminal":
		backend := render.NewTerminalBackend(os.Stdout, 100, 40, 8)
		backend.Clear = true
		startHeadless(ctx, backend, sceneConfig, system, logger, eventBus, *duration)
	case "null":
		startHeadless(ctx, render.NewNullBackend(logger), sceneConfig, system, logger, eventBus, *duration)
	case "engo":
		startEngoRenderer(ctx, sceneConfig, system, logger, eventBus)
	default:
		logger.Error(ctx, "Unknown renderer", nil, "renderer", *renderer)
		os.Exit(2)
	}
}

// loadSceneConfig reads the configuration file, falling back to the
// defaults when it does not exist, and applies environment overrides.
func loadSceneConfig(ctx context.Context, logger *logging.Logger, path string) (*config.SceneConfig, error) {
	var sceneConfig *config.SceneConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		sceneConfig = config.DefaultConfig()
	} else {
		sceneConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	// Apply environment variable overrides
	if err := config.ApplyEnv(sceneConfig); err != nil {
		return nil, logging.WrapError(err, "failed to apply environment configuration")
	}
	return sceneConfig, nil
}

// startEngoRenderer opens the window and runs the scene until it closes
func startEngoRenderer(ctx context.Context, cfg *config.SceneConfig, system *entity.System, logger *logging.Logger, eventBus *event.Bus) {
	scene := engorender.NewOrreryScene(ctx, cfg, system, logger, eventBus)

	// Configure Engo options
	opts := engo.RunOptions{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

// startHeadless drives the scene without a window until interrupted
func startHeadless(ctx context.Context, backend render.Backend, cfg *config.SceneConfig, system *entity.System, logger *logging.Logger, eventBus *event.Bus, duration time.Duration) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	h := newHeadless(ctx, backend, cfg, system, logger, eventBus)
	h.run(ctx, time.Now)

	logger.Info(ctx, "Shutting down", "ticks", h.animator.CurrentTick, "frames", h.renderer.Frames())
}
