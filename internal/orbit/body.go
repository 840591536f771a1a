package orbit

// Placement is where a body sits in one frame and how far it has turned.
type Placement struct {
	Center Vec3    // world position of the body's center
	Orbit  float32 // degrees around its parent (or the origin)
	Spin   float32 // degrees about its own axis
}

// Motion is the per-body input for Place.
type Motion struct {
	OrbitalRadius float32
	OrbitalSpeed  float32
	SpinSpeed     float32
}

// Place computes the placement of a body orbiting parentCenter at time t with speed multiplier m.
// A body with zero orbital radius stays at parentCenter.
func Place(parentCenter Vec3, mo Motion, t, m float32) Placement {
	orbit := OrbitAngle(t, mo.OrbitalSpeed, m)
	return Placement{
		Center: parentCenter.Add(Offset(mo.OrbitalRadius, orbit)),
		Orbit:  orbit,
		Spin:   SpinAngle(t, mo.SpinSpeed, m),
	}
}
