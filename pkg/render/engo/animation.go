package engo

import (
	"time"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-orrery/pkg/engine"
)

// AnimationSystem advances the orbits on the fixed tick schedule, however
// long each frame takes.
type AnimationSystem struct {
	animator *engine.Animator
	ticker   *engine.Ticker
}

// NewAnimationSystem creates a new animation system
func NewAnimationSystem(animator *engine.Animator, ticker *engine.Ticker) *AnimationSystem {
	return &AnimationSystem{animator: animator, ticker: ticker}
}

// Priority runs animation after input and before drawing
func (as *AnimationSystem) Priority() int {
	return 50
}

// Remove satisfies the ecs.System interface
func (as *AnimationSystem) Remove(basic ecs.BasicEntity) {}

// Update runs every tick due in the dt seconds since the last frame
func (as *AnimationSystem) Update(dt float32) {
	as.animator.Run(as.ticker.Advance(seconds(dt)))
}

func seconds(dt float32) time.Duration {
	return time.Duration(float64(dt) * float64(time.Second))
}
