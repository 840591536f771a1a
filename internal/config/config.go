package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/solarsystem.yaml"

// Prefs holds viewer preferences. Missing fields keep their defaults.
type Prefs struct {
	AssetDir     string     `yaml:"asset_dir"`
	LogPath      string     `yaml:"log_path"`
	Title        string     `yaml:"title"`
	WindowWidth  int32      `yaml:"window_width"`
	WindowHeight int32      `yaml:"window_height"`
	TargetFPS    int32      `yaml:"target_fps"`
	Camera       [3]float32 `yaml:"camera"`
	CameraStep   float32    `yaml:"camera_step"`
	Lighting     bool       `yaml:"lighting"`
	ShowFPS      bool       `yaml:"show_fps"`
	ShowMemAlloc bool       `yaml:"show_memalloc"`
	Font         string     `yaml:"font,omitempty"`
}

// Default returns the built-in preferences.
func Default() Prefs {
	return Prefs{
		AssetDir:     "assets",
		LogPath:      "logs/solarsystem.log",
		Title:        "3D Interactive Solar System",
		WindowWidth:  1200,
		WindowHeight: 900,
		TargetFPS:    60,
		Camera:       [3]float32{0, 30, 70},
		CameraStep:   2,
		Lighting:     false,
		ShowFPS:      false,
		ShowMemAlloc: false,
	}
}

// Load reads preferences from path on top of Default(). A missing file yields the defaults and no error;
// a malformed file yields the defaults and the parse error so the caller can log it.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	p.sanitize()
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// TexturePath returns the path of a texture file inside the asset directory.
func (p Prefs) TexturePath(name string) string {
	return filepath.Join(p.AssetDir, "textures", name)
}

// FontDir returns the fonts directory inside the asset directory.
func (p Prefs) FontDir() string {
	return filepath.Join(p.AssetDir, "fonts")
}

// BodiesPath returns the optional body list inside the asset directory.
func (p Prefs) BodiesPath() string {
	return filepath.Join(p.AssetDir, "bodies.yaml")
}

// StylesheetPath returns the optional HUD stylesheet inside the asset directory.
func (p Prefs) StylesheetPath() string {
	return filepath.Join(p.AssetDir, "ui", "hud.css")
}

// sanitize replaces values that would break the window or the loop with defaults.
func (p *Prefs) sanitize() {
	d := Default()
	if p.AssetDir == "" {
		p.AssetDir = d.AssetDir
	}
	if p.Title == "" {
		p.Title = d.Title
	}
	if p.WindowWidth <= 0 {
		p.WindowWidth = d.WindowWidth
	}
	if p.WindowHeight <= 0 {
		p.WindowHeight = d.WindowHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.CameraStep <= 0 {
		p.CameraStep = d.CameraStep
	}
}
