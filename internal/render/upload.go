package render

import (
	"errors"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var errUpload = errors.New("gpu rejected texture")

// Upload copies a decoded image to the GPU with bilinear filtering. It is the upload function
// for texture.Loader.
func Upload(img image.Image) (rl.Texture2D, error) {
	im := rl.NewImageFromImage(img)
	defer rl.UnloadImage(im)
	tex := rl.LoadTextureFromImage(im)
	if !rl.IsTextureValid(tex) {
		return rl.Texture2D{}, errUpload
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex, nil
}
