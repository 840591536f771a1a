package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultFontSize = 20
	padding         = 12
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Clock is the simulation state shown on the clock line.
type Clock struct {
	Time  float32 // seconds since start
	Speed float32
	Body  string  // selected body; empty omits the angle
	Orbit float32 // selected body's orbit angle, degrees in [0, 360)
	Log   string  // last log line; empty omits it
}

// Debug draws optional runtime overlays in the top-right corner: FPS, heap usage, the
// simulation clock and the last log line. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowClock    bool
	Color        rl.Color
	FontSize     int32
	font         rl.Font
	frameCount   uint32
	lines        []string
	memStats     runtime.MemStats
}

// New returns a Debug with all overlays hidden, drawn in green.
func New() *Debug {
	return &Debug{Color: rl.Green, FontSize: defaultFontSize}
}

// SetFont sets the font used for the overlay. Zero texture ID = raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Visible reports whether anything would be drawn.
func (d *Debug) Visible() bool {
	return d.ShowFPS || d.ShowMemAlloc || d.ShowClock
}

// Text returns the overlay lines for the given values. Separate from Draw so it can be tested.
func Text(showFPS, showMem, showClock bool, fps int32, allocBytes uint64, c Clock) []string {
	var out []string
	if showFPS {
		out = append(out, fmt.Sprintf("FPS: %d", fps))
	}
	if showMem {
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(allocBytes)/(1024*1024)))
	}
	if !showClock {
		return out
	}
	out = append(out, fmt.Sprintf("t=%.1fs speed=%gx", c.Time, c.Speed))
	if c.Body != "" {
		out = append(out, fmt.Sprintf("%s orbit %.1f deg", c.Body, c.Orbit))
	}
	if c.Log != "" {
		out = append(out, c.Log)
	}
	return out
}

// Draw renders the enabled overlays. Text is recomputed every updateInterval frames.
func (d *Debug) Draw(c Clock) {
	if !d.Visible() {
		d.lines = d.lines[:0]
		return
	}
	d.frameCount++
	if d.frameCount%updateInterval == 0 || len(d.lines) == 0 {
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.memStats)
		}
		d.lines = Text(d.ShowFPS, d.ShowMemAlloc, d.ShowClock, rl.GetFPS(), d.memStats.Alloc, c)
	}

	size := d.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	screenW := float32(rl.GetScreenWidth())
	y := float32(padding)
	for _, text := range d.lines {
		if d.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(d.font, text, float32(size), 1).X
			rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), float32(size), 1, d.Color)
		} else {
			w := float32(rl.MeasureText(text, size))
			rl.DrawText(text, int32(screenW-w-padding), int32(y), size, d.Color)
		}
		y += float32(size + 4)
	}
}
