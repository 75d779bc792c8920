package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"memmatch/internal/game"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultFPS        = 60
	DefaultGridSize   = 6
	DefaultFlipMs     = 200
	DefaultMismatchMs = 1000
	DefaultWinDelayMs = 1000
)

type Config struct {
	Window     WindowConfig `yaml:"window"`
	GridSize   int          `yaml:"grid_size" validate:"oneof=4 6"`
	FlipMs     int          `yaml:"flip_ms" validate:"gt=0"`
	MismatchMs int          `yaml:"mismatch_ms" validate:"gt=0"`
	WinDelayMs int          `yaml:"win_delay_ms" validate:"gte=0"`
	FontPath   string       `yaml:"font_path"`
	Theme      ThemeConfig  `yaml:"theme"`
}

type WindowConfig struct {
	Width      int  `yaml:"width" validate:"gte=480"`
	Height     int  `yaml:"height" validate:"gte=480"`
	FPS        int  `yaml:"fps" validate:"gte=24,lte=240"`
	Fullscreen bool `yaml:"fullscreen"`
}

type ThemeConfig struct {
	Background string `yaml:"background" validate:"hexcolor"`
	Accent     string `yaml:"accent" validate:"hexcolor"`
	CardFront  string `yaml:"card_front" validate:"hexcolor"`
	CardBack   string `yaml:"card_back" validate:"hexcolor"`
	Text       string `yaml:"text" validate:"hexcolor"`
}

var validate = validator.New()

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		GridSize:   DefaultGridSize,
		FlipMs:     DefaultFlipMs,
		MismatchMs: DefaultMismatchMs,
		WinDelayMs: DefaultWinDelayMs,
		Theme: ThemeConfig{
			Background: "#0A1128",
			Accent:     "#FFD700",
			CardFront:  "#F0F0F0",
			CardBack:   "#1A2D5A",
			Text:       "#FFFFFF",
		},
	}
}

// Load overlays the yaml file at path onto the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Rules converts the millisecond timing knobs to game rules in seconds.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		FlipDuration:  float64(c.FlipMs) / 1000,
		MismatchDelay: float64(c.MismatchMs) / 1000,
		WinDelay:      float64(c.WinDelayMs) / 1000,
	}
}
