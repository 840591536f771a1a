// Package texture decodes image files and hands the pixels to a GPU upload function.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"solar-system/internal/logger"
)

// Decode reads path and decodes it with any registered image format (jpeg, png, bmp, tiff, webp).
func Decode(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("texture: %s: empty image", path)
	}
	return img, nil
}

// Loader decodes files and uploads them with Upload, caching handles by path.
// T is the GPU handle type; its zero value is the "no texture" handle.
type Loader[T any] struct {
	upload func(image.Image) (T, error)
	log    *logger.Logger
	cache  map[string]T
	failed map[string]bool
}

// NewLoader returns a loader using upload to create GPU handles. log may be nil.
func NewLoader[T any](upload func(image.Image) (T, error), log *logger.Logger) *Loader[T] {
	return &Loader[T]{upload: upload, log: log, cache: make(map[string]T), failed: make(map[string]bool)}
}

// Load returns the handle for path. On failure it logs once and returns the zero handle and false;
// the path is not retried.
func (l *Loader[T]) Load(path string) (T, bool) {
	if h, ok := l.cache[path]; ok {
		return h, true
	}
	var zero T
	if l.failed[path] {
		return zero, false
	}
	img, err := Decode(path)
	if err == nil {
		var h T
		if h, err = l.upload(img); err == nil {
			l.cache[path] = h
			return h, true
		}
		err = fmt.Errorf("texture: upload %s: %w", path, err)
	}
	l.failed[path] = true
	if l.log != nil {
		l.log.Log("Failed to load: " + err.Error())
	}
	return zero, false
}

// Loaded returns every handle uploaded so far, e.g. for unloading at shutdown.
func (l *Loader[T]) Loaded() []T {
	out := make([]T, 0, len(l.cache))
	for _, h := range l.cache {
		out = append(out, h)
	}
	return out
}
