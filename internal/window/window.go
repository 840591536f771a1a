// Package window opens the raylib window and implements graphics.Window on it.
package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-system/internal/config"
)

// Window is the single OpenGL window. Only one may be open at a time.
type Window struct{}

// Open creates a resizable, multisampled window from prefs. ESC does not close it; the
// window close button does.
func Open(p config.Prefs) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(p.WindowWidth, p.WindowHeight, p.Title)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(p.TargetFPS)
	return &Window{}
}

// Close destroys the window and its GL context.
func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) Resized() bool {
	return rl.IsWindowResized()
}

func (w *Window) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// BeginFrame clears colour and depth to black.
func (w *Window) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

// Time returns seconds since the window opened.
func (w *Window) Time() float32 {
	return float32(rl.GetTime())
}

// NextChar returns the next queued typed character, or 0 when the queue is empty.
func (w *Window) NextChar() int32 {
	return rl.GetCharPressed()
}
