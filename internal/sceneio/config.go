package sceneio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RenderConfig is the render job's TOML-configured knobs: everything
// about how a scene is rasterized that isn't part of the scene itself
// (antialiasing strategy, recursion depth, where output goes).
type RenderConfig struct {
	OutputPath     string `toml:"output_path"`
	OutputFormat   string `toml:"output_format"` // "ppm" or "png"
	MaxReflections int    `toml:"max_reflections"`
	AntialiasGrid  int    `toml:"antialias_grid"` // 1 disables AGSS and uses Native
}

// DefaultRenderConfig mirrors the values a render job gets if no
// config file is present.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		OutputPath:     "render.png",
		OutputFormat:   "png",
		MaxReflections: 5,
		AntialiasGrid:  1,
	}
}

// LoadRenderConfig reads a TOML render config file, falling back to
// DefaultRenderConfig for any field the file leaves unset.
func LoadRenderConfig(path string) (RenderConfig, error) {
	conf := DefaultRenderConfig()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return RenderConfig{}, fmt.Errorf("sceneio: reading %s: %w", path, err)
	}
	return conf, nil
}

// WriteRenderConfig serializes conf as TOML to path, for generating a
// starter config a user can then edit.
func WriteRenderConfig(path string, conf RenderConfig) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&conf); err != nil {
		return fmt.Errorf("sceneio: encoding render config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
