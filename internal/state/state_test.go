package state

import "testing"

func TestDefaults(t *testing.T) {
	s := New(10)
	if s.Selected != 0 || s.HUDVisible || s.Speed != 1 || s.Camera != DefaultCamera {
		t.Fatalf("New(10) = %+v", s)
	}
}

func TestSelectNextCycles(t *testing.T) {
	s := New(10)
	s.SelectNext()
	if !s.HUDVisible || s.Selected != 1 {
		t.Fatalf("after one SelectNext: %+v", s)
	}
	want := []int{2, 3, 4, 5, 6, 7, 8, 9, 0}
	for i, w := range want {
		s.SelectNext()
		if s.Selected != w {
			t.Fatalf("step %d: Selected = %d, want %d", i+2, s.Selected, w)
		}
	}
}

func TestSelectNextFullCycleReturns(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		s := New(n)
		s.Selected = n - 1
		for i := 0; i < n; i++ {
			s.SelectNext()
		}
		if s.Selected != n-1 {
			t.Errorf("n=%d: Selected = %d after full cycle", n, s.Selected)
		}
	}
}

func TestSpeed(t *testing.T) {
	s := New(10)
	s.SpeedUp()
	s.SlowDown()
	if s.Speed != 1 {
		t.Fatalf("double then halve = %v, want 1", s.Speed)
	}
	s.SpeedUp()
	s.SpeedUp()
	if s.Speed != 4 {
		t.Fatalf("two doublings = %v, want 4", s.Speed)
	}
	for i := 0; i < 7; i++ {
		s.SlowDown()
	}
	s.ResetSpeed()
	if s.Speed != 1 {
		t.Fatalf("ResetSpeed() = %v, want exactly 1", s.Speed)
	}
}

func TestMoveCameraSingleAxis(t *testing.T) {
	tests := []struct {
		axis  Axis
		delta float32
	}{
		{AxisX, 2}, {AxisX, -2}, {AxisY, 2}, {AxisY, -2}, {AxisZ, 2}, {AxisZ, -2},
	}
	for _, tt := range tests {
		s := New(10)
		s.Camera.X, s.Camera.Y, s.Camera.Z = 13, -7, 101
		before := s.Camera
		s.MoveCamera(tt.axis, tt.delta)
		d := [3]float32{s.Camera.X - before.X, s.Camera.Y - before.Y, s.Camera.Z - before.Z}
		for a := 0; a < 3; a++ {
			want := float32(0)
			if Axis(a) == tt.axis {
				want = tt.delta
			}
			if d[a] != want {
				t.Errorf("MoveCamera(%v, %v): axis %d changed by %v, want %v", tt.axis, tt.delta, a, d[a], want)
			}
		}
	}
}

func TestToggleDebug(t *testing.T) {
	s := New(1)
	s.ToggleDebug()
	if !s.DebugVisible {
		t.Fatal("ToggleDebug should show the overlay")
	}
	s.ToggleDebug()
	if s.DebugVisible {
		t.Fatal("second ToggleDebug should hide the overlay")
	}
}

func TestSlowDownStaysPositive(t *testing.T) {
	s := New(10)
	for i := 0; i < 500; i++ {
		s.SlowDown()
	}
	if s.Speed != MinSpeed {
		t.Fatalf("Speed after 500 halvings = %v, want %v", s.Speed, MinSpeed)
	}
	s.SpeedUp()
	if s.Speed != 2*MinSpeed {
		t.Fatalf("SpeedUp from the floor = %v", s.Speed)
	}
}
