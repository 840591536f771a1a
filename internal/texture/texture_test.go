package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"solar-system/internal/logger"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "earth.png")
	writePNG(t, good, 4, 2)
	img, err := Decode(good)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}

	bad := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(bad); err == nil {
		t.Fatal("Decode() of garbage should fail")
	}
	if _, err := Decode(filepath.Join(dir, "missing.jpg")); err == nil {
		t.Fatal("Decode() of a missing file should fail")
	}
}

func TestLoaderCachesAndNeverRetries(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "sun.png")
	writePNG(t, good, 2, 2)
	missing := filepath.Join(dir, "moon.jpg")

	uploads := 0
	log := logger.New(filepath.Join(dir, "log.txt"))
	log.SetMirror(nil)
	l := NewLoader(func(img image.Image) (int, error) {
		uploads++
		return 100 + uploads, nil
	}, log)

	h, ok := l.Load(good)
	if !ok || h != 101 {
		t.Fatalf("Load(good) = %v, %v", h, ok)
	}
	if h, _ = l.Load(good); h != 101 || uploads != 1 {
		t.Fatalf("second Load should hit the cache, uploads = %d", uploads)
	}

	for i := 0; i < 3; i++ {
		if h, ok := l.Load(missing); ok || h != 0 {
			t.Fatalf("Load(missing) = %v, %v; want zero handle", h, ok)
		}
	}
	data, err := os.ReadFile(log.Path())
	if err != nil {
		t.Fatal(err)
	}
	if failures := strings.Count(string(data), "Failed to load"); failures != 1 {
		t.Fatalf("logged %d failures, want 1", failures)
	}
	if got := l.Loaded(); len(got) != 1 || got[0] != 101 {
		t.Fatalf("Loaded() = %v", got)
	}
}

func TestLoaderUploadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writePNG(t, path, 1, 1)
	l := NewLoader(func(image.Image) (string, error) { return "", errors.New("no context") }, nil)
	if h, ok := l.Load(path); ok || h != "" {
		t.Fatalf("Load() = %q, %v; want failure", h, ok)
	}
}
