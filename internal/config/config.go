// Package config loads viewer preferences from file and environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds viewer configuration.
type Config struct {
	Window      WindowConfig
	Model       ModelConfig
	Camera      CameraConfig
	Log         LogConfig
	AnatomyPath string `mapstructure:"anatomy_path"`
	Diagnostics bool
	Grid        bool
}

// WindowConfig holds window geometry and title.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// ModelConfig points at the mouth model asset. URL is used to fetch the file
// on first run when Path does not exist; leave it empty to use the built-in
// placeholder model instead.
type ModelConfig struct {
	Path string
	URL  string
}

// CameraConfig is the default view pose captured at startup; reset returns
// the camera here.
type CameraConfig struct {
	Position [3]float32
	Target   [3]float32
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	Debug      bool
}

// Load reads configuration from config/explorer.yaml (or the file named by
// MOUTHEXPLORER_CONFIG) and the environment. Env var overrides use prefix
// MOUTHEXPLORER_. A missing config file is not an error; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Mouth Explorer")
	v.SetDefault("model.path", "assets/models/mouth.glb")
	v.SetDefault("model.url", "")
	v.SetDefault("camera.position", []float32{0, 1.2, 6})
	v.SetDefault("camera.target", []float32{0, 0.4, 0})
	v.SetDefault("log.path", "logs/explorer.log")
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.debug", false)
	v.SetDefault("anatomy_path", "assets/anatomy.yaml")
	v.SetDefault("diagnostics", false)
	v.SetDefault("grid", true)

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("MOUTHEXPLORER_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("explorer")
	}

	v.SetEnvPrefix("MOUTHEXPLORER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
