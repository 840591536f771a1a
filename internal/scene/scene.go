package scene

import (
	"solar-system/internal/bodies"
	"solar-system/internal/orbit"
	"solar-system/internal/state"
)

const (
	// StarfieldRadius is the radius of the background sphere. It must stay inside the far clip plane.
	StarfieldRadius = 200
	// HighlightPadding is added to a selected body's radius for its wire sphere.
	HighlightPadding = 0.3
	// RingInner and RingOuter are the ring radii as multiples of the body radius.
	RingInner = 1.4
	RingOuter = 2.0
	// Title is drawn centred at the top of every frame.
	Title = "3D Interactive Solar System"
)

// Kind is the type of a draw command.
type Kind int

const (
	KindStarfield Kind = iota
	KindSphere
	KindOrbitGuide
	KindHighlight
	KindRing
	KindTitle
	KindHUD
)

func (k Kind) String() string {
	switch k {
	case KindStarfield:
		return "starfield"
	case KindSphere:
		return "sphere"
	case KindOrbitGuide:
		return "orbit-guide"
	case KindHighlight:
		return "highlight"
	case KindRing:
		return "ring"
	case KindTitle:
		return "title"
	case KindHUD:
		return "hud"
	}
	return "unknown"
}

// Command is one draw call. Body is the registry index, or -1 for commands not tied to a body.
// Angles are in degrees around +Y. For rings Inner/Radius are the annulus radii; for guides
// Center is the orbit's centre and Radius the orbital radius.
type Command struct {
	Kind   Kind
	Body   int
	Center orbit.Vec3
	Orbit  float32
	Spin   float32
	Radius float32
	Inner  float32
}

// Frame is the composed draw list plus the view it should be drawn from.
type Frame struct {
	Time     float32
	Camera   orbit.Vec3
	Commands []Command
}

// Composer turns the registry and view state into a draw list each frame.
// The Commands slice of a returned Frame is reused by the next Compose call.
type Composer struct {
	reg        *bodies.Registry
	placements []orbit.Placement
	cmds       []Command
}

// New returns a composer for reg.
func New(reg *bodies.Registry) *Composer {
	return &Composer{
		reg:        reg,
		placements: make([]orbit.Placement, reg.Len()),
		cmds:       make([]Command, 0, 4*reg.Len()+4),
	}
}

// Placements returns the body placements computed by the last Compose call, indexed like the registry.
func (c *Composer) Placements() []orbit.Placement {
	return c.placements
}

// Compose builds the frame for elapsed time t (seconds) and the current view state.
// Order: starfield, star, orbit guides, bodies (highlight, sphere, satellites, ring), title, HUD.
func (c *Composer) Compose(t float32, s *state.State) Frame {
	c.place(t, s.Speed)
	cmds := c.cmds[:0]

	cmds = append(cmds, Command{Kind: KindStarfield, Body: -1, Spin: orbit.StarfieldAngle(t), Radius: StarfieldRadius})
	cmds = c.appendBody(cmds, 0, -1)

	for i := 1; i < c.reg.Len(); i++ {
		b := c.reg.At(i)
		center := orbit.Vec3{}
		if b.IsSatellite() {
			center = c.placements[b.ParentIndex].Center
		}
		cmds = append(cmds, Command{Kind: KindOrbitGuide, Body: i, Center: center, Radius: b.OrbitalRadius})
	}

	for i := 1; i < c.reg.Len(); i++ {
		if c.reg.At(i).IsSatellite() {
			continue
		}
		cmds = c.appendBody(cmds, i, s.Selected)
		for _, sat := range c.reg.Satellites(i) {
			cmds = c.appendBody(cmds, sat, s.Selected)
		}
		if b := c.reg.At(i); b.HasRing {
			p := c.placements[i]
			cmds = append(cmds, Command{Kind: KindRing, Body: i, Center: p.Center, Orbit: p.Orbit, Spin: p.Spin,
				Inner: b.Radius * RingInner, Radius: b.Radius * RingOuter})
		}
	}

	cmds = append(cmds, Command{Kind: KindTitle, Body: -1})
	if s.HUDVisible && s.Selected >= 0 && s.Selected < c.reg.Len() {
		cmds = append(cmds, Command{Kind: KindHUD, Body: s.Selected})
	}
	c.cmds = cmds
	return Frame{Time: t, Camera: s.Camera, Commands: cmds}
}

// appendBody appends the highlight (when i is selected) and the sphere for body i.
// The star is passed selected = -1 so it is never highlighted.
func (c *Composer) appendBody(cmds []Command, i, selected int) []Command {
	b := c.reg.At(i)
	p := c.placements[i]
	if i == selected {
		cmds = append(cmds, Command{Kind: KindHighlight, Body: i, Center: p.Center, Radius: b.Radius + HighlightPadding})
	}
	return append(cmds, Command{Kind: KindSphere, Body: i, Center: p.Center, Orbit: p.Orbit, Spin: p.Spin, Radius: b.Radius})
}

// place computes every body's placement. Parents precede satellites in the registry.
func (c *Composer) place(t, m float32) {
	c.placements[0] = orbit.Placement{Spin: orbit.SpinAngle(t, c.reg.At(0).SpinSpeed, m)}
	for i := 1; i < c.reg.Len(); i++ {
		b := c.reg.At(i)
		parent := orbit.Vec3{}
		if b.IsSatellite() {
			parent = c.placements[b.ParentIndex].Center
		}
		c.placements[i] = orbit.Place(parent, orbit.Motion{
			OrbitalRadius: b.OrbitalRadius,
			OrbitalSpeed:  b.OrbitalSpeed,
			SpinSpeed:     b.SpinSpeed,
		}, t, m)
	}
}
