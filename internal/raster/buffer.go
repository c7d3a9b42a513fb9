package raster

import "math"

// FarDepth is the depth-buffer clear value. Any in-frustum NDC depth is
// strictly smaller, so the first fragment at a pixel always wins over it.
const FarDepth = math.MaxFloat64

// FrameBuffer holds the rendering target as flat slices for cache locality:
// a packed 0xRRGGBB color plane and a parallel depth plane. Within a frame
// the depth entry at a pixel only ever decreases (closer fragments win).
type FrameBuffer struct {
	width  int
	height int
	color  []uint32
	depth  []float64

	background uint32
	current    uint32
}

// NewFrameBuffer allocates a w×h buffer cleared to black with far depth.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		width:  w,
		height: h,
		color:  make([]uint32, w*h),
		depth:  make([]float64, w*h),
	}
	fb.Clear()
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// SetBackground sets the color Clear fills with.
func (fb *FrameBuffer) SetBackground(c Color) {
	fb.background = c.Hex()
}

// Clear resets every pixel to the background color and every depth entry to
// the far sentinel.
func (fb *FrameBuffer) Clear() {
	for i := range fb.color {
		fb.color[i] = fb.background
	}
	for i := range fb.depth {
		fb.depth[i] = FarDepth
	}
}

// SetCurrentColor sets the register used by the next Point call. It is
// scoped to a single write: set it immediately before each Point.
func (fb *FrameBuffer) SetCurrentColor(c Color) {
	fb.current = c.Hex()
}

// Point writes the current color at (x, y) if depth is strictly closer than
// the stored value; otherwise it is a no-op. Bounds are the caller's
// responsibility; the rasterizer never emits out-of-range fragments.
func (fb *FrameBuffer) Point(x, y int, depth float64) {
	i := y*fb.width + x
	if depth < fb.depth[i] {
		fb.depth[i] = depth
		fb.color[i] = fb.current
	}
}

// DepthAt returns the stored depth for a pixel.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	return fb.depth[y*fb.width+x]
}

// ColorAt returns the packed color for a pixel.
func (fb *FrameBuffer) ColorAt(x, y int) uint32 {
	return fb.color[y*fb.width+x]
}

// Buffer exposes the packed-pixel plane for display sinks. Callers must
// treat it as read-only.
func (fb *FrameBuffer) Buffer() []uint32 {
	return fb.color
}

// RGBA expands the packed pixels into an RGBA byte slice (alpha 0xFF).
// dst is reused when large enough; the returned slice is len w*h*4.
func (fb *FrameBuffer) RGBA(dst []byte) []byte {
	n := len(fb.color) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, px := range fb.color {
		j := i * 4
		dst[j+0] = uint8(px >> 16)
		dst[j+1] = uint8(px >> 8)
		dst[j+2] = uint8(px)
		dst[j+3] = 0xFF
	}
	return dst
}
