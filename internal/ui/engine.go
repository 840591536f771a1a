package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// BoldOffsets are the pixel offsets each bold line is stamped at.
var BoldOffsets = [4][2]int32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

//go:embed default.css
var defaultCSS string

// DefaultStylesheet returns the built-in overlay stylesheet.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		return &Stylesheet{}
	}
	return sheet
}

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order. Resolved styles are cached per node and dropped when the stylesheet changes.
// If a font is loaded (LoadFont), text is drawn with it; otherwise raylib's default font is used.
type Engine struct {
	sheet  *Stylesheet
	nodes  []*Node
	styles map[*Node]ComputedStyle
	font   rl.Font
}

// New creates an engine using the built-in stylesheet and no nodes.
func New() *Engine {
	return &Engine{sheet: DefaultStylesheet(), styles: make(map[*Node]ComputedStyle)}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	clear(e.styles)
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF/OTF font from path. If loading fails, the engine keeps its current font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	e.font = f
	return nil
}

// Font returns the loaded font; a zero texture ID means raylib's default font.
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetNodes replaces all nodes. The slice is kept; callers rebuilding it each frame may reuse storage.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

// Style returns the resolved style for n.
func (e *Engine) Style(n *Node) ComputedStyle {
	if s, ok := e.styles[n]; ok {
		return s
	}
	s := ResolveProps(e.resolveProps(n))
	e.styles[n] = s
	return s
}

// resolveProps returns merged properties for a node: class rules first, then id rules, later rules winning.
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, wantID := range []bool{false, true} {
		for _, rule := range e.sheet.Rules {
			sel := rule.Selector
			if len(sel) < 2 {
				continue
			}
			isID := sel[0] == '#'
			if isID != wantID {
				continue
			}
			if (isID && n.ID == sel[1:]) || (!isID && n.Class == sel[1:]) {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	return merged
}

// Draw draws every node: background, border, then text (stamped four times when bold).
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for _, n := range e.nodes {
		style := e.Style(n)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)
		if style.Width > 0 {
			w = style.Width
		}
		if style.Height > 0 {
			h = style.Height
		}
		if style.LeftSet {
			x = style.Left
			if style.LeftPct >= 0 {
				x = (screenW - w) * style.LeftPct / 100
			}
		}
		if style.TopSet {
			y = style.Top
			if style.TopPct >= 0 {
				y = (screenH - h) * style.TopPct / 100
			}
		}

		if style.Background.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		tx, ty := x+style.Padding, y+style.Padding
		if style.Center {
			tx = (screenW - e.measure(n.Text, style.FontSize)) / 2
		}
		if !style.Bold {
			e.drawText(n.Text, tx, ty, style.FontSize, style.Color)
			continue
		}
		for _, off := range BoldOffsets {
			e.drawText(n.Text, tx+off[0], ty+off[1], style.FontSize, style.Color)
		}
	}
}

func (e *Engine) measure(text string, size int32) int32 {
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}

func (e *Engine) drawText(text string, x, y, size int32, c rl.Color) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(text, x, y, size, c)
}
