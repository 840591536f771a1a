package orbit

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-3

func near(a, b float32) bool {
	return math32.Abs(a-b) <= eps*math32.Max(1, math32.Abs(b))
}

func TestStarNeverOrbits(t *testing.T) {
	for _, tm := range []float32{0, 0.5, 10, 3600, 1e6} {
		for _, m := range []float32{0.25, 1, 8} {
			if got := OrbitAngle(tm, 0, m); got != 0 {
				t.Fatalf("OrbitAngle(%v, 0, %v) = %v, want 0", tm, m, got)
			}
		}
	}
}

func TestAnglesLinearInMultiplier(t *testing.T) {
	cases := []struct {
		name  string
		angle func(t, speed, m float32) float32
		speed float32
	}{
		{"orbit", OrbitAngle, 5},
		{"spin", SpinAngle, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, interval := range []float32{0.1, 1, 12.5} {
				base := c.angle(interval, c.speed, 1)
				double := c.angle(interval, c.speed, 2)
				if !near(double, 2*base) {
					t.Errorf("interval %v: doubled multiplier gave %v, want %v", interval, double, 2*base)
				}
			}
		})
	}
}

func TestAnglesLinearInTime(t *testing.T) {
	a := OrbitAngle(3, 4, 1)
	b := OrbitAngle(6, 4, 1)
	if !near(b, 2*a) {
		t.Fatalf("OrbitAngle not linear in time: %v vs %v", a, b)
	}
	if got := SpinAngle(1, 1, 1); got != SpinScale {
		t.Fatalf("SpinAngle(1,1,1) = %v, want %v", got, SpinScale)
	}
}

func TestStarfieldIgnoresMultiplier(t *testing.T) {
	if got := StarfieldAngle(10); got != 20 {
		t.Fatalf("StarfieldAngle(10) = %v, want 20", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0}, {359, 359}, {360, 0}, {725, 5}, {-90, 270},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in); !near(got, tt.want) {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		deg  float32
		want Vec3
	}{
		{0, Vec3{10, 0, 0}},
		{90, Vec3{0, 0, -10}},
		{180, Vec3{-10, 0, 0}},
		{270, Vec3{0, 0, 10}},
	}
	for _, tt := range tests {
		got := Offset(10, tt.deg)
		if !near(got.X, tt.want.X) || !near(got.Z, tt.want.Z) || got.Y != 0 {
			t.Errorf("Offset(10, %v) = %+v, want %+v", tt.deg, got, tt.want)
		}
	}
}

func TestPlaceSatelliteFollowsParent(t *testing.T) {
	parent := Place(Vec3{}, Motion{OrbitalRadius: 16, OrbitalSpeed: 5, SpinSpeed: 2}, 18, 1)
	moon := Place(parent.Center, Motion{OrbitalRadius: 2, OrbitalSpeed: 50, SpinSpeed: 5}, 18, 1)
	dx := moon.Center.X - parent.Center.X
	dz := moon.Center.Z - parent.Center.Z
	if d := math32.Sqrt(dx*dx + dz*dz); !near(d, 2) {
		t.Fatalf("moon distance from parent = %v, want 2", d)
	}
	if !near(parent.Orbit, 90) {
		t.Fatalf("parent orbit = %v, want 90", parent.Orbit)
	}
}
