// Package render draws composed scene frames with raylib.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/bodies"
	"solar-system/internal/graphics"
	"solar-system/internal/orbit"
	"solar-system/internal/primitives"
	"solar-system/internal/scene"
	"solar-system/internal/ui"
)

var (
	guideColor     = rl.NewColor(153, 153, 153, 255)
	highlightColor = rl.Yellow
	defaultTint    = rl.NewColor(128, 128, 128, 255)
)

// highlightRings and highlightSlices give the wire sphere resolution.
const (
	highlightRings  = 20
	highlightSlices = 20
)

// Textures are the GPU handles per body, indexed like the registry. A zero handle means the
// body is drawn in its flat colour.
type Textures struct {
	Bodies    []rl.Texture2D
	Rings     []rl.Texture2D
	Starfield rl.Texture2D
}

// Renderer executes the 3D commands of a frame and hands 2D commands to an overlay callback.
type Renderer struct {
	reg    *bodies.Registry
	tex    Textures
	colors []rl.Color
	meshes *meshes
	circle *primitives.Circle
	ring   *primitives.Ring
	points []orbit.Vec3
	strip  []primitives.RingVertex
	camera rl.Camera3D
}

// New creates GPU meshes; call after the window is open.
func New(reg *bodies.Registry, tex Textures, lighting bool) *Renderer {
	r := &Renderer{
		reg:    reg,
		tex:    tex,
		colors: make([]rl.Color, reg.Len()),
		meshes: newMeshes(lighting),
		circle: primitives.NewCircle(primitives.CircleSegments),
		ring:   primitives.NewRing(primitives.RingSegments, scene.RingInner, scene.RingOuter),
		camera: rl.Camera3D{
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       graphics.FovY,
			Projection: rl.CameraPerspective,
		},
	}
	for i := range r.colors {
		c, ok := ui.ParseHexColor(reg.At(i).Color)
		if !ok {
			c = defaultTint
		}
		r.colors[i] = c
	}
	return r
}

// Close releases meshes and the lighting shader. Textures belong to the loader.
func (r *Renderer) Close() {
	r.meshes.unload()
}

// Draw draws f from its camera looking at the origin with projection p. Title and HUD commands
// are passed to overlay, in order, after the 3D pass ends.
func (r *Renderer) Draw(f scene.Frame, p graphics.Projection, overlay func(scene.Command)) {
	r.camera.Position = vec(f.Camera)
	r.camera.Target = rl.NewVector3(0, 0, 0)
	r.camera.Fovy = p.FovY

	rl.BeginMode3D(r.camera)
	rl.SetMatrixProjection(rl.MatrixPerspective(p.FovY*rl.Deg2rad, p.Aspect, p.Near, p.Far))
	for _, c := range f.Commands {
		switch c.Kind {
		case scene.KindStarfield:
			r.drawStarfield(c.Spin, c.Radius)
		case scene.KindSphere:
			r.meshes.drawSphere(vec(c.Center), c.Orbit+c.Spin, c.Radius, r.bodyTexture(c.Body), r.colors[c.Body], c.Body == 0)
		case scene.KindOrbitGuide:
			r.drawGuide(c.Center, c.Radius)
		case scene.KindHighlight:
			rl.DrawSphereWires(vec(c.Center), c.Radius, highlightRings, highlightSlices, highlightColor)
		case scene.KindRing:
			r.drawRing(c)
		}
	}
	rl.EndMode3D()

	if overlay == nil {
		return
	}
	for _, c := range f.Commands {
		if c.Kind == scene.KindTitle || c.Kind == scene.KindHUD {
			overlay(c)
		}
	}
}

func (r *Renderer) bodyTexture(i int) rl.Texture2D {
	if i < 0 || i >= len(r.tex.Bodies) {
		return rl.Texture2D{}
	}
	return r.tex.Bodies[i]
}

// ringTexture prefers the ring texture and falls back to the body texture.
func (r *Renderer) ringTexture(i int) rl.Texture2D {
	if i >= 0 && i < len(r.tex.Rings) && rl.IsTextureValid(r.tex.Rings[i]) {
		return r.tex.Rings[i]
	}
	return r.bodyTexture(i)
}

func (r *Renderer) drawGuide(center orbit.Vec3, radius float32) {
	r.points = r.circle.Place(r.points, center, radius)
	n := len(r.points)
	for i := 0; i < n; i++ {
		rl.DrawLine3D(vec(r.points[i]), vec(r.points[(i+1)%n]), guideColor)
	}
}

// drawRing emits the annulus as quads between consecutive (inner, outer) pairs, visible from both sides.
func (r *Renderer) drawRing(c scene.Command) {
	scale := c.Radius / scene.RingOuter
	r.strip = r.ring.Place(r.strip, c.Center, c.Orbit+c.Spin, scale)
	tex := r.ringTexture(c.Body)
	tint := rl.White
	if rl.IsTextureValid(tex) {
		rl.SetTexture(tex.ID)
	} else {
		tint = r.colors[c.Body]
	}

	rl.DisableBackfaceCulling()
	rl.Begin(rl.Quads)
	rl.Color4ub(tint.R, tint.G, tint.B, tint.A)
	for i := 0; i+3 < len(r.strip); i += 2 {
		in0, out0, in1, out1 := r.strip[i], r.strip[i+1], r.strip[i+2], r.strip[i+3]
		quadVertex(in0)
		quadVertex(out0)
		quadVertex(out1)
		quadVertex(in1)
	}
	rl.End()
	rl.SetTexture(0)
	rl.EnableBackfaceCulling()
}

func quadVertex(v primitives.RingVertex) {
	rl.TexCoord2f(v.U, v.V)
	rl.Vertex3f(v.Pos.X, v.Pos.Y, v.Pos.Z)
}

func vec(v orbit.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
