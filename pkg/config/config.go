// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SceneConfig contains configuration for the orrery
type SceneConfig struct {
	Window     WindowConfig     `json:"window"`
	Projection ProjectionConfig `json:"projection"`
	Timing     TimingConfig     `json:"timing"`
	Camera     CameraConfig     `json:"camera"`
	TextureDir string           `json:"textureDir"`
	Skybox     SkyboxConfig     `json:"skybox"`
	Bodies     []BodyConfig     `json:"bodies"`
}

// WindowConfig contains the initial window surface
type WindowConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
}

// ProjectionConfig contains the perspective projection parameters
type ProjectionConfig struct {
	FieldOfView float32 `json:"fieldOfView"`
	Near        float32 `json:"near"`
	Far         float32 `json:"far"`
}

// TimingConfig contains the animation timer settings in milliseconds
type TimingConfig struct {
	FirstTickDelayMS int `json:"firstTickDelayMs"`
	TickIntervalMS   int `json:"tickIntervalMs"`
}

// FirstTickDelay returns the delay before the first tick
func (t TimingConfig) FirstTickDelay() time.Duration {
	return time.Duration(t.FirstTickDelayMS) * time.Millisecond
}

// TickInterval returns the steady-state tick interval
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMS) * time.Millisecond
}

// CameraConfig contains the initial camera and the input step sizes
type CameraConfig struct {
	InitialZoom float32 `json:"initialZoom"`
	RotateStep  float32 `json:"rotateStep"`
	ZoomStep    float32 `json:"zoomStep"`
	DragScale   float32 `json:"dragScale"`
}

// SkyboxConfig contains the starfield backdrop
type SkyboxConfig struct {
	Texture  string  `json:"texture"`
	HalfSize float32 `json:"halfSize"`
}

// RingConfig describes a flat ring drawn around a body
type RingConfig struct {
	Texture     string  `json:"texture"`
	InnerFactor float32 `json:"innerFactor"`
	OuterFactor float32 `json:"outerFactor"`
}

// BodyConfig contains configuration for a celestial body.
// Bodies are drawn in table order; children are drawn in their parent's frame.
// Speed is the orbit increment and Spin the self-rotation increment, both in
// degrees per tick. Spin turns only the body's own sphere, never its children.
type BodyConfig struct {
	Name        string      `json:"name"`
	Texture     string      `json:"texture"`
	Radius      float32     `json:"radius"`
	OrbitRadius float32     `json:"orbitRadius"`
	Speed       float32     `json:"speed"`
	Spin        float32     `json:"spin,omitempty"`
	Angle       float32     `json:"angle,omitempty"`
	Parent      string      `json:"parent,omitempty"`
	Ring        *RingConfig `json:"ring,omitempty"`
}

// TexturePath resolves a texture file name against the texture directory
func (c *SceneConfig) TexturePath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.TextureDir, name)
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names.
	config := DefaultConfig()
	defaults := config.Bodies
	config.Bodies = nil
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(config.Bodies) == 0 {
		config.Bodies = defaults
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SceneConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the classic solar system scene
func DefaultConfig() *SceneConfig {
	return &SceneConfig{
		Window: WindowConfig{
			Title:  "Solar System",
			Width:  800,
			Height: 600,
		},
		Projection: ProjectionConfig{
			FieldOfView: 60,
			Near:        1,
			Far:         1000,
		},
		Timing: TimingConfig{
			FirstTickDelayMS: 25,
			TickIntervalMS:   16,
		},
		Camera: CameraConfig{
			InitialZoom: -150,
			RotateStep:  5,
			ZoomStep:    2,
			DragScale:   0.5,
		},
		TextureDir: "Textures",
		Skybox: SkyboxConfig{
			Texture:  "stars.png",
			HalfSize: 400,
		},
		Bodies: []BodyConfig{
			{Name: "sun", Texture: "sun.png", Radius: 20, Spin: 0.5},
			{Name: "mercury", Texture: "mercury.png", Radius: 0.38, OrbitRadius: 30, Speed: 1.5, Parent: "sun"},
			{Name: "venus", Texture: "venus.png", Radius: 0.95, OrbitRadius: 50, Speed: 1.2, Parent: "sun"},
			{Name: "earth", Texture: "earth.png", Radius: 1.0, OrbitRadius: 70, Speed: 1.0, Parent: "sun"},
			{Name: "moon", Texture: "moon.png", Radius: 0.27, OrbitRadius: 3, Speed: 6.0, Parent: "earth"},
			{Name: "mars", Texture: "mars.png", Radius: 0.53, OrbitRadius: 100, Speed: 0.9, Parent: "sun"},
			{Name: "jupiter", Texture: "jupiter.png", Radius: 11, OrbitRadius: 140, Speed: 0.7, Parent: "sun"},
			{
				Name: "saturn", Texture: "saturn.png", Radius: 9, OrbitRadius: 190, Speed: 0.5, Parent: "sun",
				Ring: &RingConfig{Texture: "saturn_rings.png", InnerFactor: 1.2, OuterFactor: 2.5},
			},
			{Name: "uranus", Texture: "uranus.png", Radius: 4, OrbitRadius: 250, Speed: 0.3, Parent: "sun"},
			{Name: "neptune", Texture: "neptune.png", Radius: 3.9, OrbitRadius: 300, Speed: 0.2, Parent: "sun"},
		},
	}
}
