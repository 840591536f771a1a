package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p != Default() {
		t.Fatalf("Load() = %+v, want defaults", p)
	}
}

func TestLoadOverridesAndSanitizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	data := "asset_dir: /srv/solar\nwindow_width: 800\nwindow_height: -3\ncamera_step: 0\nshow_fps: true\ncamera: [1, 2, 3]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.AssetDir != "/srv/solar" || p.WindowWidth != 800 || !p.ShowFPS {
		t.Fatalf("overrides not applied: %+v", p)
	}
	if p.WindowHeight != 900 || p.CameraStep != 2 {
		t.Fatalf("invalid values not reset: %+v", p)
	}
	if p.Camera != [3]float32{1, 2, 3} {
		t.Fatalf("Camera = %v", p.Camera)
	}
	if p.TargetFPS != 60 || p.Title == "" {
		t.Fatalf("unset fields should keep defaults: %+v", p)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window_width: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err == nil {
		t.Fatal("Load() should report the parse error")
	}
	if p != Default() {
		t.Fatalf("malformed file should yield defaults, got %+v", p)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "c.yaml")
	p := Default()
	p.Lighting = true
	p.Font = "Inter"
	if err := Save(path, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil || got != p {
		t.Fatalf("Load(Save(p)) = %+v, %v", got, err)
	}
}

func TestAssetPaths(t *testing.T) {
	p := Default()
	p.AssetDir = "data"
	if got, want := p.TexturePath("sun.jpg"), filepath.Join("data", "textures", "sun.jpg"); got != want {
		t.Errorf("TexturePath = %q, want %q", got, want)
	}
	if got, want := p.BodiesPath(), filepath.Join("data", "bodies.yaml"); got != want {
		t.Errorf("BodiesPath = %q, want %q", got, want)
	}
	if got, want := p.StylesheetPath(), filepath.Join("data", "ui", "hud.css"); got != want {
		t.Errorf("StylesheetPath = %q, want %q", got, want)
	}
}
