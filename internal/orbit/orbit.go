package orbit

import "github.com/chewxy/math32"

const (
	// OrbitScale converts a body's orbital speed into degrees per second (K1).
	OrbitScale = float32(1.0)
	// SpinScale converts a body's spin speed into degrees per second (K2).
	SpinScale = float32(20.0)
	// StarfieldRate is the background rotation in degrees per second. Not affected by the speed multiplier.
	StarfieldRate = float32(2.0)
)

// Vec3 is a position in world units. Y is up; bodies orbit in the XZ plane.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Angle returns the angle in degrees accumulated after t seconds at rate*scale degrees per second,
// with the global speed multiplier applied. The result is not wrapped so it stays linear in t and multiplier.
func Angle(t, rate, scale, multiplier float32) float32 {
	return t * rate * scale * multiplier
}

// OrbitAngle is the revolution angle (degrees) of a body with the given orbital speed at time t.
func OrbitAngle(t, orbitalSpeed, multiplier float32) float32 {
	return Angle(t, orbitalSpeed, OrbitScale, multiplier)
}

// SpinAngle is the rotation angle (degrees) of a body about its own vertical axis at time t.
func SpinAngle(t, spinSpeed, multiplier float32) float32 {
	return Angle(t, spinSpeed, SpinScale, multiplier)
}

// StarfieldAngle is the rotation of the background sphere at time t.
func StarfieldAngle(t float32) float32 {
	return t * StarfieldRate
}

// Wrap reduces deg into [0, 360). Only for display; the kinematics never wrap.
func Wrap(deg float32) float32 {
	w := math32.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	return w
}

// Offset returns the position reached by rotating (radius, 0, 0) by deg around +Y.
// Matches a right-handed Y rotation: positive angles move +X towards -Z.
func Offset(radius, deg float32) Vec3 {
	rad := deg * math32.Pi / 180
	return Vec3{X: radius * math32.Cos(rad), Y: 0, Z: -radius * math32.Sin(rad)}
}
