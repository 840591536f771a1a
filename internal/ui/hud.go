package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"solar-system/internal/bodies"
)

// HUD layout in pixels from the top-left corner.
const (
	hudLeft           = 20
	hudTop            = 60
	hudHeadingAdvance = 35
	hudLineAdvance    = 30
)

var printer = message.NewPrinter(language.English)

// HUDLines returns the text block for body b. parent is the name of the body it orbits.
func HUDLines(b bodies.Body, parent string) []string {
	return []string{
		printer.Sprintf("Body: %s", b.Name),
		printer.Sprintf("Distance from %s: %.1f units", parent, b.OrbitalRadius),
		printer.Sprintf("Radius: %.2f units", b.Radius),
		printer.Sprintf("Orbital Period: %.2f days", b.OrbitalPeriodDays),
		printer.Sprintf("Rotation Period: %.2f hours", b.RotationPeriodHours),
		"Short Fact: " + b.ShortFact,
		"Detailed Info: " + b.DetailedInfo,
	}
}

// Overlay owns the title node and the HUD nodes and lays them out each frame.
type Overlay struct {
	title *Node
	lines []*Node
	nodes []*Node
}

// NewOverlay creates the title node (#title) and one node per HUD line (.hud-heading, then .hud-line).
func NewOverlay(title string) *Overlay {
	o := &Overlay{title: NewNode("label", "", "title", title)}
	y := float32(hudTop)
	for i := 0; i < 7; i++ {
		class, adv := "hud-line", hudLineAdvance
		if i == 0 {
			class, adv = "hud-heading", hudHeadingAdvance
		}
		n := NewNode("label", class, "", "")
		n.Bounds.X, n.Bounds.Y = hudLeft, y
		o.lines = append(o.lines, n)
		y += float32(adv)
	}
	return o
}

// Nodes returns the nodes to draw this frame: the title, then the HUD lines for reg.At(selected)
// when visible is true. The returned slice is reused by the next call.
func (o *Overlay) Nodes(reg *bodies.Registry, selected int, visible bool) []*Node {
	o.nodes = append(o.nodes[:0], o.title)
	if !visible || selected < 0 || selected >= reg.Len() {
		return o.nodes
	}
	parent := reg.ParentName(selected)
	if parent == "" {
		parent = reg.At(0).Name
	}
	for i, text := range HUDLines(reg.At(selected), parent) {
		o.lines[i].Text = text
		o.nodes = append(o.nodes, o.lines[i])
	}
	return o.nodes
}
