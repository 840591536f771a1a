package input

import "solar-system/internal/state"

// DefaultStep is how far one key press moves the camera.
const DefaultStep = float32(2)

// Action is what a key does to the view state.
type Action func(s *state.State, step float32)

// Bindings maps ASCII keys (case-sensitive) to actions.
var Bindings = map[rune]Action{
	'w': func(s *state.State, step float32) { s.MoveCamera(state.AxisZ, -step) },
	's': func(s *state.State, step float32) { s.MoveCamera(state.AxisZ, step) },
	'a': func(s *state.State, step float32) { s.MoveCamera(state.AxisX, -step) },
	'd': func(s *state.State, step float32) { s.MoveCamera(state.AxisX, step) },
	'q': func(s *state.State, step float32) { s.MoveCamera(state.AxisY, step) },
	'e': func(s *state.State, step float32) { s.MoveCamera(state.AxisY, -step) },
	'i': func(s *state.State, _ float32) { s.SelectNext() },
	'+': func(s *state.State, _ float32) { s.SpeedUp() },
	'-': func(s *state.State, _ float32) { s.SlowDown() },
	'r': func(s *state.State, _ float32) { s.ResetSpeed() },
	'f': func(s *state.State, _ float32) { s.ToggleDebug() },
}

// Controller applies key presses to a State.
type Controller struct {
	state *state.State
	step  float32
}

// New returns a controller mutating s. step <= 0 uses DefaultStep.
func New(s *state.State, step float32) *Controller {
	if step <= 0 {
		step = DefaultStep
	}
	return &Controller{state: s, step: step}
}

// HandleKey applies the binding for key. Returns false for unbound keys.
func (c *Controller) HandleKey(key rune) bool {
	act, ok := Bindings[key]
	if !ok {
		return false
	}
	act(c.state, c.step)
	return true
}

// Poll drains queued characters from next (e.g. rl.GetCharPressed) until it returns 0,
// applying each in order. Returns how many keys were handled.
func (c *Controller) Poll(next func() int32) int {
	n := 0
	for {
		ch := next()
		if ch == 0 {
			return n
		}
		if c.HandleKey(rune(ch)) {
			n++
		}
	}
}
