// Package config loads optional TOML overrides for the tuning constants
// fixed at process start. Everything has a default; a missing file is not
// an error unless a path was given explicitly.
package config

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/easel/constants"
	"github.com/lixenwraith/easel/fitness"
)

// Config is the decoded easel.toml
type Config struct {
	// Seconds fields mirror the original tuning knobs
	MaxTimePerImageSeconds   float64 `toml:"max_time_per_image_seconds"`
	MinStepTimeSeconds       float64 `toml:"min_step_time_seconds"`
	WaitBetweenImagesSeconds float64 `toml:"wait_between_images_seconds"`

	DiffMethod string `toml:"diff_method"`
	Fullscreen bool   `toml:"fullscreen"`
	Mute       bool   `toml:"mute"`
}

// Default returns the built-in tuning
func Default() Config {
	return Config{
		MaxTimePerImageSeconds:   constants.MaxTimePerImage.Seconds(),
		MinStepTimeSeconds:       constants.MinStepTime.Seconds(),
		WaitBetweenImagesSeconds: constants.WaitBetweenImages.Seconds(),
		DiffMethod:               fitness.DiffDeltaE.String(),
		Fullscreen:               true,
	}
}

// Load reads path over the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// MaxTimePerImage returns the per-image budget as a duration
func (c Config) MaxTimePerImage() time.Duration {
	return secs(c.MaxTimePerImageSeconds)
}

// MinStepTime returns the iteration floor as a duration
func (c Config) MinStepTime() time.Duration {
	return secs(c.MinStepTimeSeconds)
}

// WaitBetweenImages returns the inter-image delay as a duration
func (c Config) WaitBetweenImages() time.Duration {
	return secs(c.WaitBetweenImagesSeconds)
}

// Method parses the configured difference metric
func (c Config) Method() (fitness.DifferenceMethod, error) {
	return fitness.ParseDifferenceMethod(c.DiffMethod)
}

func secs(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
