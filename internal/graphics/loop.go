package graphics

// Window is the platform side of the render loop: it reports close/resize and brackets frames.
// BeginFrame clears the colour and depth buffers; EndFrame presents (swaps buffers).
type Window interface {
	ShouldClose() bool
	Resized() bool
	Size() (w, h int)
	BeginFrame()
	EndFrame()
}

// Phase is the render loop state.
type Phase int

const (
	Idle Phase = iota
	Rendering
)

func (p Phase) String() string {
	if p == Rendering {
		return "rendering"
	}
	return "idle"
}

// Loop drives redraws: an idle tick requests a redraw, a redraw composes and presents one frame
// and returns the loop to Idle.
type Loop struct {
	phase   Phase
	pending bool
	frames  uint64
	proj    Projection
}

// NewLoop returns an idle loop for a w×h window.
func NewLoop(w, h int) *Loop {
	return &Loop{proj: ProjectionFor(w, h)}
}

// Frames returns how many frames have been presented.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Projection returns the projection for the current window size.
func (l *Loop) Projection() Projection {
	return l.proj
}

// Resize recomputes the projection from the new window size.
func (l *Loop) Resize(w, h int) {
	l.proj = ProjectionFor(w, h)
}

// RequestRedraw marks a frame as wanted. Ignored while a frame is being rendered.
func (l *Loop) RequestRedraw() {
	if l.phase == Idle {
		l.pending = true
	}
}

// Redraw renders one frame if one was requested: clear, draw, present, back to Idle.
// Returns false when there was nothing to draw.
func (l *Loop) Redraw(win Window, draw func(Projection)) bool {
	if !l.pending || l.phase != Idle {
		return false
	}
	l.pending = false
	l.phase = Rendering
	win.BeginFrame()
	draw(l.proj)
	win.EndFrame()
	l.phase = Idle
	l.frames++
	return true
}

// Run loops until the window asks to close. Each tick it handles resize, calls update (input),
// requests a redraw and renders it with draw.
func Run(win Window, update func(), draw func(Projection)) *Loop {
	l := NewLoop(win.Size())
	for !win.ShouldClose() {
		if win.Resized() {
			l.Resize(win.Size())
		}
		update()
		l.RequestRedraw()
		l.Redraw(win, draw)
	}
	return l
}
