// Package validation checks a scene configuration before the renderer is built.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/opd-ai/go-orrery/pkg/config"
)

// Limits applied to scene configurations
const (
	MaxBodyNameLen  = 32
	MaxBodies       = 64
	MaxTickInterval = 1000 // milliseconds
)

var validBodyNameChars = regexp.MustCompile(`^[a-zA-Z0-9\-_ ]+$`)

// ValidateConfig reports every problem found in cfg, joined into one error.
func ValidateConfig(cfg *config.SceneConfig) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	var errs []error
	errs = append(errs, ValidateWindow(cfg.Window))
	errs = append(errs, ValidateProjection(cfg.Projection))
	errs = append(errs, ValidateTiming(cfg.Timing))
	errs = append(errs, ValidateCamera(cfg.Camera))
	if cfg.Skybox.HalfSize <= 0 {
		errs = append(errs, fmt.Errorf("skybox half size must be positive: %g", cfg.Skybox.HalfSize))
	} else if cfg.Skybox.HalfSize > cfg.Projection.Far {
		errs = append(errs, fmt.Errorf("skybox half size %g lies beyond the far plane %g", cfg.Skybox.HalfSize, cfg.Projection.Far))
	}
	errs = append(errs, ValidateBodies(cfg.Bodies))

	return errors.Join(errs...)
}

// ValidateWindow validates the initial window size
func ValidateWindow(w config.WindowConfig) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", w.Width, w.Height)
	}
	return nil
}

// ValidateProjection validates the perspective parameters
func ValidateProjection(p config.ProjectionConfig) error {
	if p.FieldOfView <= 0 || p.FieldOfView >= 180 {
		return fmt.Errorf("field of view must be in (0,180): %g", p.FieldOfView)
	}
	if p.Near <= 0 {
		return fmt.Errorf("near plane must be positive: %g", p.Near)
	}
	if p.Far <= p.Near {
		return fmt.Errorf("far plane %g must lie beyond near plane %g", p.Far, p.Near)
	}
	return nil
}

// ValidateTiming validates the animation timer
func ValidateTiming(t config.TimingConfig) error {
	if t.TickIntervalMS <= 0 || t.TickIntervalMS > MaxTickInterval {
		return fmt.Errorf("tick interval must be in (0,%d] ms: %d", MaxTickInterval, t.TickIntervalMS)
	}
	if t.FirstTickDelayMS < 0 {
		return fmt.Errorf("first tick delay cannot be negative: %d", t.FirstTickDelayMS)
	}
	return nil
}

// ValidateCamera validates the input step sizes
func ValidateCamera(c config.CameraConfig) error {
	if c.RotateStep <= 0 || c.ZoomStep <= 0 || c.DragScale <= 0 {
		return fmt.Errorf("camera steps must be positive: rotate=%g zoom=%g drag=%g", c.RotateStep, c.ZoomStep, c.DragScale)
	}
	return nil
}

// ValidateBodyName validates a celestial body name
func ValidateBodyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("body name cannot be empty")
	}
	if len(name) > MaxBodyNameLen {
		return fmt.Errorf("body name too long: %d characters (max %d)", len(name), MaxBodyNameLen)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("body name contains invalid UTF-8 characters")
	}
	if !validBodyNameChars.MatchString(name) {
		return fmt.Errorf("body name %q contains invalid characters", name)
	}
	return nil
}

// ValidateBodies validates the body table: unique names, positive radii and
// parents that are declared earlier in the table. Declaring parents first
// rules out cycles and gives a draw order where every parent precedes its children.
func ValidateBodies(bodies []config.BodyConfig) error {
	if len(bodies) == 0 {
		return fmt.Errorf("scene has no bodies")
	}
	if len(bodies) > MaxBodies {
		return fmt.Errorf("too many bodies: %d (max %d)", len(bodies), MaxBodies)
	}

	var errs []error
	seen := make(map[string]bool, len(bodies))
	for i, b := range bodies {
		if err := ValidateBodyName(b.Name); err != nil {
			errs = append(errs, fmt.Errorf("body %d: %w", i, err))
		}
		if seen[b.Name] {
			errs = append(errs, fmt.Errorf("body %q declared twice", b.Name))
		}

		if b.Radius <= 0 {
			errs = append(errs, fmt.Errorf("body %q: radius must be positive: %g", b.Name, b.Radius))
		}
		if b.OrbitRadius < 0 {
			errs = append(errs, fmt.Errorf("body %q: orbit radius cannot be negative: %g", b.Name, b.OrbitRadius))
		}

		if b.Parent != "" {
			if b.Parent == b.Name {
				errs = append(errs, fmt.Errorf("body %q orbits itself", b.Name))
			} else if !seen[b.Parent] {
				errs = append(errs, fmt.Errorf("body %q: parent %q must be declared before it", b.Name, b.Parent))
			}
		}

		if b.Ring != nil {
			if b.Ring.InnerFactor <= 0 || b.Ring.OuterFactor <= b.Ring.InnerFactor {
				errs = append(errs, fmt.Errorf("body %q: ring factors must satisfy 0 < inner < outer: %g, %g",
					b.Name, b.Ring.InnerFactor, b.Ring.OuterFactor))
			}
		}

		seen[b.Name] = true
	}

	return errors.Join(errs...)
}
