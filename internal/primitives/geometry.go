package primitives

import (
	"github.com/chewxy/math32"

	"solar-system/internal/orbit"
)

// Segment counts for the precomputed outlines. One vertex per degree matches a smooth circle at
// the distances the scene uses.
const (
	CircleSegments = 360
	RingSegments   = 360
)

// Circle is a closed unit circle in the XZ plane, built once and scaled per frame.
type Circle struct {
	points []orbit.Vec3
}

// NewCircle precomputes segments points on the unit circle. segments < 3 is raised to 3.
func NewCircle(segments int) *Circle {
	if segments < 3 {
		segments = 3
	}
	pts := make([]orbit.Vec3, segments)
	for i := range pts {
		a := float32(i) * 2 * math32.Pi / float32(segments)
		pts[i] = orbit.Vec3{X: math32.Cos(a), Z: math32.Sin(a)}
	}
	return &Circle{points: pts}
}

// Len returns the number of points.
func (c *Circle) Len() int {
	return len(c.points)
}

// Place writes the circle of the given radius around center into dst (reusing its storage) and returns it.
// The loop is closed by the caller connecting the last point back to the first.
func (c *Circle) Place(dst []orbit.Vec3, center orbit.Vec3, radius float32) []orbit.Vec3 {
	dst = dst[:0]
	for _, p := range c.points {
		dst = append(dst, orbit.Vec3{X: center.X + p.X*radius, Y: center.Y, Z: center.Z + p.Z*radius})
	}
	return dst
}

// RingVertex is one vertex of the ring strip with its texture coordinate.
type RingVertex struct {
	Pos  orbit.Vec3
	U, V float32
}

// Ring is a flat annulus in the XZ plane stored as a strip of (inner, outer) vertex pairs.
// Radii are relative: Inner and Outer are multiplied by the body radius when placed.
type Ring struct {
	Inner, Outer float32
	strip        []RingVertex
}

// NewRing precomputes the strip. V is 0 on the inner edge and 1 on the outer edge; U runs once around.
func NewRing(segments int, inner, outer float32) *Ring {
	if segments < 3 {
		segments = 3
	}
	strip := make([]RingVertex, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		a := u * 2 * math32.Pi
		cos, sin := math32.Cos(a), math32.Sin(a)
		strip = append(strip,
			RingVertex{Pos: orbit.Vec3{X: cos * inner, Z: sin * inner}, U: u, V: 0},
			RingVertex{Pos: orbit.Vec3{X: cos * outer, Z: sin * outer}, U: u, V: 1},
		)
	}
	return &Ring{Inner: inner, Outer: outer, strip: strip}
}

// Len returns the number of strip vertices.
func (r *Ring) Len() int {
	return len(r.strip)
}

// Place scales the ring by scale, rotates it by spinDeg around +Y and moves it to center.
// Output reuses dst's storage.
func (r *Ring) Place(dst []RingVertex, center orbit.Vec3, spinDeg, scale float32) []RingVertex {
	rad := spinDeg * math32.Pi / 180
	cos, sin := math32.Cos(rad), math32.Sin(rad)
	dst = dst[:0]
	for _, v := range r.strip {
		x, z := v.Pos.X*scale, v.Pos.Z*scale
		// Same handedness as orbit.Offset: +X turns towards -Z.
		rx := x*cos + z*sin
		rz := -x*sin + z*cos
		dst = append(dst, RingVertex{Pos: orbit.Vec3{X: center.X + rx, Y: center.Y, Z: center.Z + rz}, U: v.U, V: v.V})
	}
	return dst
}
