// Package config loads the viewer's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gocube_viewer"
)

// Config is the on-disk configuration, ~/.gocube_viewer/config.yaml.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Playback   PlaybackConfig   `yaml:"playback"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Storage    StorageConfig    `yaml:"storage"`
	MockServer MockServerConfig `yaml:"mock_server"`
}

// APIConfig locates the color and solution service.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// PlaybackConfig tunes solve playback and animation.
type PlaybackConfig struct {
	MoveInterval     time.Duration `yaml:"move_interval" validate:"gt=0"`
	TweenDuration    time.Duration `yaml:"tween_duration" validate:"gt=0"`
	FrameInterval    time.Duration `yaml:"frame_interval" validate:"gt=0"`
	WaitForAnimation bool          `yaml:"wait_for_animation"`
	Easing           string        `yaml:"easing" validate:"oneof=linear ease_in_out"`
}

// ViewerConfig holds terminal viewer settings.
type ViewerConfig struct {
	Camera string `yaml:"camera" validate:"oneof=top bottom front back left right"`
}

// StorageConfig controls scan and solve history.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path,omitempty"` // empty means the default path
}

// MockServerConfig configures `gocube serve`.
type MockServerConfig struct {
	Addr     string `yaml:"addr" validate:"required,hostname_port"`
	Scramble string `yaml:"scramble" validate:"notation"`
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	if err := configValidate.RegisterValidation("notation", validateNotation); err != nil {
		panic(err)
	}
}

func validateNotation(fl validator.FieldLevel) bool {
	_, err := gocube.ParseMoves(fl.Field().String())
	return err == nil
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 5 * time.Second,
		},
		Playback: PlaybackConfig{
			MoveInterval:  gocube.DefaultMoveInterval,
			TweenDuration: gocube.DefaultTweenDuration,
			FrameInterval: gocube.DefaultFrameInterval,
			Easing:        "linear",
		},
		Viewer: ViewerConfig{
			Camera: "front",
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		MockServer: MockServerConfig{
			Addr:     "localhost:8080",
			Scramble: "R U R' U' F2 D L' B U2 R2 F' D2",
		},
	}
}

// DefaultPath returns ~/.gocube_viewer/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_viewer", "config.yaml"), nil
}

// Load reads the config at path, creating it with defaults if it does not
// exist. Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return configValidate.Struct(c)
}

// PlaybackOptions converts the playback settings into library options.
func (c *Config) PlaybackOptions() []gocube.Option {
	easing := gocube.Linear
	if c.Playback.Easing == "ease_in_out" {
		easing = gocube.EaseInOutQuad
	}
	return []gocube.Option{
		gocube.WithMoveInterval(c.Playback.MoveInterval),
		gocube.WithTweenDuration(c.Playback.TweenDuration),
		gocube.WithFrameInterval(c.Playback.FrameInterval),
		gocube.WithWaitForAnimation(c.Playback.WaitForAnimation),
		gocube.WithEasing(easing),
	}
}
