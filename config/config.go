// Package config loads runtime configuration from a TOML file.
//
// A missing file is not an error: callers get the defaults back, so a fresh
// install runs without any configuration on disk.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Window configures the OS window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Input tunes the arbitration windows. Zero values fall through to the
// runtime's built-in defaults.
type Input struct {
	TimeoutSeconds   float64 `toml:"timeout_seconds"`
	CooldownSeconds  float64 `toml:"cooldown_seconds"`
	StickDeadzone    float64 `toml:"stick_deadzone"`
	StickRepeatDelay float64 `toml:"stick_repeat_delay"`
}

// Config is the full runtime configuration.
type Config struct {
	Window     Window `toml:"window"`
	Input      Input  `toml:"input"`
	GameWidth  int    `toml:"game_width"`
	GameHeight int    `toml:"game_height"`
	ProfileDir string `toml:"profile_dir"`
	Verbose    bool   `toml:"verbose"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Window:     Window{Title: "ember", Width: 960, Height: 540},
		GameWidth:  640,
		GameHeight: 360,
		ProfileDir: "profiles",
	}
}

// Load reads TOML from path, layered over Default. A missing file returns
// Default with no error; a malformed file returns a wrapped error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path as TOML.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config %q: %w", path, err)
	}
	return nil
}
