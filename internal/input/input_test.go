package input

import (
	"testing"

	"solar-system/internal/state"
)

func queue(keys string) func() int32 {
	rs := []rune(keys)
	return func() int32 {
		if len(rs) == 0 {
			return 0
		}
		r := rs[0]
		rs = rs[1:]
		return int32(r)
	}
}

func TestCameraKeys(t *testing.T) {
	tests := []struct {
		key  rune
		want [3]float32
	}{
		{'w', [3]float32{0, 0, -2}},
		{'s', [3]float32{0, 0, 2}},
		{'a', [3]float32{-2, 0, 0}},
		{'d', [3]float32{2, 0, 0}},
		{'q', [3]float32{0, 2, 0}},
		{'e', [3]float32{0, -2, 0}},
	}
	for _, tt := range tests {
		s := state.New(10)
		before := s.Camera
		if !New(s, 0).HandleKey(tt.key) {
			t.Fatalf("key %q not handled", tt.key)
		}
		got := [3]float32{s.Camera.X - before.X, s.Camera.Y - before.Y, s.Camera.Z - before.Z}
		if got != tt.want {
			t.Errorf("key %q moved camera by %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeysAreCaseSensitive(t *testing.T) {
	s := state.New(10)
	c := New(s, 0)
	for _, k := range "WSADQEIR" {
		if c.HandleKey(k) {
			t.Errorf("upper-case %q should be unbound", k)
		}
	}
	if s.Camera != state.DefaultCamera || s.Selected != 0 || s.HUDVisible {
		t.Fatalf("state changed by unbound keys: %+v", s)
	}
}

func TestScenario(t *testing.T) {
	s := state.New(10)
	c := New(s, 0)

	c.Poll(queue("i"))
	if !s.HUDVisible || s.Selected != 1 {
		t.Fatalf("after i: %+v", s)
	}
	for want := 2; want <= 10; want++ {
		c.Poll(queue("i"))
		if s.Selected != want%10 {
			t.Fatalf("Selected = %d, want %d", s.Selected, want%10)
		}
	}

	if n := c.Poll(queue("++")); n != 2 || s.Speed != 4 {
		t.Fatalf("after ++: handled %d, Speed %v", n, s.Speed)
	}
	c.Poll(queue("-+++r"))
	if s.Speed != 1 {
		t.Fatalf("after r: Speed %v, want 1", s.Speed)
	}
}

func TestPollSkipsUnbound(t *testing.T) {
	s := state.New(10)
	if n := New(s, 5).Poll(queue("x?d!")); n != 1 {
		t.Fatalf("Poll handled %d keys, want 1", n)
	}
	if s.Camera.X != 5 {
		t.Fatalf("custom step not applied: X = %v", s.Camera.X)
	}
}

func TestDebugToggleKey(t *testing.T) {
	s := state.New(10)
	New(s, 0).HandleKey('f')
	if !s.DebugVisible {
		t.Fatal("f should toggle the debug overlay")
	}
}
