package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvTextureDir     = "ORRERY_TEXTURE_DIR"
	EnvWindowWidth    = "ORRERY_WINDOW_WIDTH"
	EnvWindowHeight   = "ORRERY_WINDOW_HEIGHT"
	EnvTickInterval   = "ORRERY_TICK_INTERVAL"
	EnvFirstTickDelay = "ORRERY_FIRST_TICK_DELAY"
)

// ApplyEnv overrides fields of config from ORRERY_* environment variables.
// Intervals accept Go duration syntax ("16ms") or a bare millisecond count.
func ApplyEnv(config *SceneConfig) error {
	if dir := strings.TrimSpace(os.Getenv(EnvTextureDir)); dir != "" {
		config.TextureDir = dir
	}

	if err := envInt(EnvWindowWidth, &config.Window.Width); err != nil {
		return err
	}
	if err := envInt(EnvWindowHeight, &config.Window.Height); err != nil {
		return err
	}
	if err := envMillis(EnvTickInterval, &config.Timing.TickIntervalMS); err != nil {
		return err
	}
	if err := envMillis(EnvFirstTickDelay, &config.Timing.FirstTickDelayMS); err != nil {
		return err
	}

	return nil
}

// LoadConfigFromEnv returns the default configuration with environment overrides applied
func LoadConfigFromEnv() (*SceneConfig, error) {
	config := DefaultConfig()
	if err := ApplyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

func envInt(key string, dst *int) error {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}

func envMillis(key string, dst *int) error {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		*dst = ms
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = int(d / time.Millisecond)
	return nil
}
