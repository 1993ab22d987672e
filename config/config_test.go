package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load = %v, want nil for a missing file", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
game_width = 1280
game_height = 720
profile_dir = "saves"
verbose = true

[window]
title = "My Game"
width = 1920
height = 1080

[input]
timeout_seconds = 3.0
cooldown_seconds = 0.5
stick_deadzone = 0.4
stick_repeat_delay = 0.15
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "My Game" || cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.GameWidth != 1280 || cfg.GameHeight != 720 {
		t.Errorf("game plane = %dx%d, want 1280x720", cfg.GameWidth, cfg.GameHeight)
	}
	if cfg.ProfileDir != "saves" || !cfg.Verbose {
		t.Errorf("ProfileDir = %q, Verbose = %v", cfg.ProfileDir, cfg.Verbose)
	}
	if cfg.Input.TimeoutSeconds != 3.0 || cfg.Input.CooldownSeconds != 0.5 {
		t.Errorf("Input = %+v", cfg.Input)
	}
	if cfg.Input.StickDeadzone != 0.4 || cfg.Input.StickRepeatDelay != 0.15 {
		t.Errorf("Input = %+v", cfg.Input)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[window]\ntitle = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "x" {
		t.Errorf("Title = %q, want x", cfg.Window.Title)
	}
	if cfg.Window.Width != 960 || cfg.GameWidth != 640 {
		t.Errorf("unset fields lost their defaults: %+v", cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("window = {{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load succeeded on malformed TOML, want error")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.Window.Title = "round trip"
	cfg.Input.TimeoutSeconds = 7.5
	cfg.Verbose = true

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}
