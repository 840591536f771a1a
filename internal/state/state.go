package state

import "solar-system/internal/orbit"

// DefaultCamera is the starting camera position; the camera always looks at the origin.
var DefaultCamera = orbit.Vec3{X: 0, Y: 30, Z: 70}

// State is the view state shared by input handling and frame composition.
// It is owned by the main loop and passed by pointer; nothing here is safe for concurrent use.
type State struct {
	Camera       orbit.Vec3
	Selected     int
	HUDVisible   bool
	Speed        float32
	DebugVisible bool

	count int // number of selectable bodies
}

// New returns the default state for a registry of count bodies: star selected, HUD hidden, 1× speed.
func New(count int) *State {
	return &State{Camera: DefaultCamera, Speed: 1, count: count}
}

// Axis names one camera axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// MoveCamera adds delta to one camera axis.
func (s *State) MoveCamera(axis Axis, delta float32) {
	switch axis {
	case AxisX:
		s.Camera.X += delta
	case AxisY:
		s.Camera.Y += delta
	case AxisZ:
		s.Camera.Z += delta
	}
}

// SelectNext advances the selection cyclically and shows the HUD.
func (s *State) SelectNext() {
	s.HUDVisible = true
	if s.count <= 0 {
		s.Selected = 0
		return
	}
	s.Selected = (s.Selected + 1) % s.count
}

// SpeedUp doubles the speed multiplier.
func (s *State) SpeedUp() {
	s.Speed *= 2
}

// MinSpeed is the floor for SlowDown so the multiplier never reaches zero.
const MinSpeed = 1.0 / 1024

// SlowDown halves the speed multiplier, stopping at MinSpeed.
func (s *State) SlowDown() {
	s.Speed *= 0.5
	if s.Speed < MinSpeed {
		s.Speed = MinSpeed
	}
}

// ResetSpeed sets the speed multiplier back to exactly 1.
func (s *State) ResetSpeed() {
	s.Speed = 1
}

// ToggleDebug flips the FPS/memory overlay.
func (s *State) ToggleDebug() {
	s.DebugVisible = !s.DebugVisible
}
