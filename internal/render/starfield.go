package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawStarfield draws the background sphere around the origin, seen from inside.
// Depth writes are off so bodies always draw over it.
func (r *Renderer) drawStarfield(deg, radius float32) {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	transform := rl.MatrixMultiply(
		rl.MatrixMultiply(rl.MatrixScale(radius, radius, radius), rl.MatrixRotateY(deg*rl.Deg2rad)),
		rl.MatrixTranslate(0, 0, 0),
	)
	if rl.IsTextureValid(r.tex.Starfield) {
		rl.SetMaterialTexture(&r.meshes.textured, rl.MapAlbedo, r.tex.Starfield)
		rl.DrawMesh(r.meshes.starfield, r.meshes.textured, transform)
	}
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}
