package graphics

// Perspective parameters used for every frame.
const (
	FovY = 45.0
	Near = 1.0
	Far  = 500.0
)

// Projection is the perspective projection for the current window size.
type Projection struct {
	FovY   float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32
	Width  int
	Height int
}

// ProjectionFor returns the projection for a w×h viewport. A zero height is treated as 1.
func ProjectionFor(w, h int) Projection {
	if h <= 0 {
		h = 1
	}
	if w < 0 {
		w = 0
	}
	return Projection{
		FovY:   FovY,
		Aspect: float32(w) / float32(h),
		Near:   Near,
		Far:    Far,
		Width:  w,
		Height: h,
	}
}
