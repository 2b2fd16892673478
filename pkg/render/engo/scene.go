// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orrery/pkg/camera"
	"github.com/opd-ai/go-orrery/pkg/config"
	"github.com/opd-ai/go-orrery/pkg/engine"
	"github.com/opd-ai/go-orrery/pkg/entity"
	"github.com/opd-ai/go-orrery/pkg/event"
	"github.com/opd-ai/go-orrery/pkg/logging"
	"github.com/opd-ai/go-orrery/pkg/render"
	"github.com/opd-ai/go-orrery/pkg/render/opengl"
)

// SceneType is the engo scene type name
const SceneType = "OrreryScene"

// initializer is implemented by backends that need the GL context
type initializer interface {
	Init() error
}

// OrreryScene hosts the solar system in an engo window
type OrreryScene struct {
	ctx    context.Context
	world  *ecs.World
	cfg    *config.SceneConfig
	logger *logging.Logger
	bus    *event.Bus

	system   *entity.System
	animator *engine.Animator
	backend  render.Backend
	renderer *render.FrameRenderer

	camera    *CameraSystem
	input     *InputSystem
	animation *AnimationSystem
	frame     *FrameSystem
}

// NewOrreryScene creates the scene. The OpenGL backend is used unless
// WithBackend replaces it.
func NewOrreryScene(ctx context.Context, cfg *config.SceneConfig, system *entity.System, logger *logging.Logger, bus *event.Bus) *OrreryScene {
	return &OrreryScene{
		ctx:      ctx,
		world:    &ecs.World{},
		cfg:      cfg,
		logger:   logger,
		bus:      bus,
		system:   system,
		animator: engine.NewAnimator(system, bus),
		backend:  opengl.New(),
	}
}

// WithBackend replaces the graphics backend
func (scene *OrreryScene) WithBackend(b render.Backend) *OrreryScene {
	scene.backend = b
	return scene
}

// Type returns the scene type (required by Engo)
func (scene *OrreryScene) Type() string {
	return SceneType
}

// Preload is called before the scene starts (required by Engo).
// Textures are uploaded in Setup once the backend is initialized.
func (scene *OrreryScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *OrreryScene) Setup(u engo.Updater) {
	if w, ok := u.(*ecs.World); ok {
		scene.world = w
	}

	if err := scene.build(); err != nil {
		scene.logger.Error(scene.ctx, "Failed to initialize graphics", err)
		engo.Exit()
		return
	}

	scene.camera.Listen(engo.Mailbox)
	SetupInputBindings()

	scene.world.AddSystem(scene.input)
	scene.world.AddSystem(scene.animation)
	scene.world.AddSystem(scene.camera)
	scene.world.AddSystem(scene.frame)

	scene.camera.Reshape(int(engo.CanvasWidth()), int(engo.CanvasHeight()))
}

// build initializes the backend, loads textures and creates the systems
func (scene *OrreryScene) build() error {
	if in, ok := scene.backend.(initializer); ok {
		if err := in.Init(); err != nil {
			return err
		}
	}

	scene.renderer = render.NewFrameRenderer(scene.backend, scene.cfg, scene.logger, scene.bus)
	render.NewTextureLibrary(scene.backend, scene.logger, scene.bus).
		LoadScene(scene.ctx, scene.cfg, scene.system, scene.renderer)

	cam := camera.NewState(scene.cfg.Camera)
	scene.camera = NewCameraSystem(cam, scene.renderer, scene.bus)
	scene.input = NewInputSystem(scene.camera, engo.Exit)
	scene.animation = NewAnimationSystem(scene.animator,
		engine.NewTicker(scene.cfg.Timing.FirstTickDelay(), scene.cfg.Timing.TickInterval()).
			Limit(engine.DefaultMaxCatchUp))
	scene.frame = NewFrameSystem(scene.ctx, scene.renderer, cam, scene.system, scene.animator)

	scene.logger.Info(scene.ctx, "Scene ready",
		"bodies", len(scene.system.Bodies()),
		"tick_interval", scene.cfg.Timing.TickInterval().String(),
	)
	return nil
}

// Animator returns the scene's animation clock
func (scene *OrreryScene) Animator() *engine.Animator {
	return scene.animator
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *OrreryScene) Exit() {
	scene.logger.Info(scene.ctx, "Scene exiting", "ticks", scene.animator.CurrentTick)
}
