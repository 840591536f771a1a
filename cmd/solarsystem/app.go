package main

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/bodies"
	"solar-system/internal/config"
	"solar-system/internal/debug"
	"solar-system/internal/fonts"
	"solar-system/internal/graphics"
	"solar-system/internal/input"
	"solar-system/internal/logger"
	"solar-system/internal/orbit"
	"solar-system/internal/render"
	"solar-system/internal/scene"
	"solar-system/internal/state"
	"solar-system/internal/texture"
	"solar-system/internal/ui"
	"solar-system/internal/window"
)

func runApp(o *options) error {
	prefs, warn := o.resolve()
	log := logger.New(prefs.LogPath)
	if warn != nil {
		log.Logf("Using default preferences: %v", warn)
	}
	reg := loadRegistry(prefs, log)

	win := window.Open(prefs)
	defer win.Close()

	loader := texture.NewLoader(render.Upload, log)
	defer func() {
		for _, tex := range loader.Loaded() {
			rl.UnloadTexture(tex)
		}
	}()
	r := render.New(reg, loadTextures(prefs, reg, loader), prefs.Lighting)
	defer r.Close()

	engine := ui.New()
	if err := engine.LoadCSS(prefs.StylesheetPath()); err != nil {
		log.Logf("Using built-in stylesheet: %v", err)
	}
	dbg := debug.New()
	debugStyle := engine.Style(ui.NewNode("label", "debug", "", ""))
	dbg.Color, dbg.FontSize = debugStyle.Color, debugStyle.FontSize
	if path, err := fonts.Find(prefs.FontDir(), prefs.Font); err == nil {
		if err := engine.LoadFont(path); err != nil {
			log.Logf("Using default font: %v", err)
		} else {
			dbg.SetFont(engine.Font())
		}
	}

	s := state.New(reg.Len())
	s.Camera.X, s.Camera.Y, s.Camera.Z = prefs.Camera[0], prefs.Camera[1], prefs.Camera[2]
	ctrl := input.New(s, prefs.CameraStep)
	composer := scene.New(reg)
	overlay := ui.NewOverlay(prefs.Title)

	log.Logf("Started with %d bodies, assets in %s, logging to %s", reg.Len(), prefs.AssetDir, log.Path())
	loop := graphics.Run(win,
		func() { ctrl.Poll(win.NextChar) },
		func(p graphics.Projection) {
			t := win.Time()
			frame := composer.Compose(t, s)
			hud := false
			r.Draw(frame, p, func(c scene.Command) {
				hud = hud || c.Kind == scene.KindHUD
			})
			engine.SetNodes(overlay.Nodes(reg, s.Selected, hud))
			engine.Draw()
			dbg.ShowFPS = prefs.ShowFPS || s.DebugVisible
			dbg.ShowMemAlloc = prefs.ShowMemAlloc
			dbg.ShowClock = s.DebugVisible
			dbg.Draw(debug.Clock{
				Time:  t,
				Speed: s.Speed,
				Body:  reg.At(s.Selected).Name,
				Orbit: orbit.Wrap(composer.Placements()[s.Selected].Orbit),
				Log:   log.Last(),
			})
		})
	log.Logf("Closed after %d frames", loop.Frames())
	return nil
}

// loadTextures loads every body, ring and starfield texture once. Failures are logged by the loader
// and leave a zero handle in place.
func loadTextures(p config.Prefs, reg *bodies.Registry, loader *texture.Loader[rl.Texture2D]) render.Textures {
	tex := render.Textures{
		Bodies: make([]rl.Texture2D, reg.Len()),
		Rings:  make([]rl.Texture2D, reg.Len()),
	}
	for i := 0; i < reg.Len(); i++ {
		b := reg.At(i)
		if b.Texture != "" {
			tex.Bodies[i], _ = loader.Load(p.TexturePath(b.Texture))
		}
		if b.HasRing && b.RingTexture != "" {
			tex.Rings[i], _ = loader.Load(p.TexturePath(b.RingTexture))
		}
	}
	tex.Starfield, _ = loader.Load(p.TexturePath(bodies.StarfieldTexture))
	return tex
}

// texturePaths lists every texture file the registry refers to, starfield last.
func texturePaths(p config.Prefs, reg *bodies.Registry) []string {
	var paths []string
	for i := 0; i < reg.Len(); i++ {
		b := reg.At(i)
		if b.Texture != "" {
			paths = append(paths, p.TexturePath(b.Texture))
		}
		if b.HasRing && b.RingTexture != "" {
			paths = append(paths, p.TexturePath(b.RingTexture))
		}
	}
	return append(paths, p.TexturePath(bodies.StarfieldTexture))
}

func relPath(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}
