package raster

import (
	"testing"

	"orbit-renderer/internal/mathutil"
)

// flatWhite shades every fragment plain white, ignoring lighting.
func flatWhite(f *Fragment, u *Uniforms) Color {
	return RGB(255, 255, 255)
}

// identityUniforms passes NDC straight through to the viewport, so test
// geometry can be placed in [-1,1] directly.
func identityUniforms(w, h float64) *Uniforms {
	return &Uniforms{
		Model:      mathutil.Mat4Identity(),
		View:       mathutil.Mat4Identity(),
		Projection: mathutil.Mat4Identity(),
		Viewport:   mathutil.Viewport(w, h),
	}
}

// fullscreenTriangle covers all of NDC [-1,1]².
func fullscreenTriangle(depth float64) []Vertex {
	n := mathutil.Vec3{0, 0, 1}
	return []Vertex{
		{Position: mathutil.Vec3{-1, -3, depth}, Normal: n},
		{Position: mathutil.Vec3{-1, 1, depth}, Normal: n},
		{Position: mathutil.Vec3{3, 1, depth}, Normal: n},
	}
}

func TestDrawFullscreenTriangleCoversEveryPixel(t *testing.T) {
	const w, h = 64, 48
	fb := NewFrameBuffer(w, h)
	fb.SetBackground(RGB(0x33, 0x33, 0x55))
	fb.Clear()

	r := NewRenderer(1)
	r.Draw(fb, identityUniforms(w, h), fullscreenTriangle(0), flatWhite)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fb.ColorAt(x, y) == 0x333355 {
				t.Fatalf("pixel (%d,%d) still background", x, y)
			}
			if fb.DepthAt(x, y) >= FarDepth {
				t.Fatalf("pixel (%d,%d) depth not written", x, y)
			}
		}
	}
}

func TestDrawDepthOrderBetweenDrawCalls(t *testing.T) {
	const w, h = 32, 32
	fb := NewFrameBuffer(w, h)
	fb.Clear()
	r := NewRenderer(1)
	u := identityUniforms(w, h)

	red := func(f *Fragment, _ *Uniforms) Color { return RGB(255, 0, 0) }
	blue := func(f *Fragment, _ *Uniforms) Color { return RGB(0, 0, 255) }

	// Far blue first, then near red: red must win everywhere. Then the
	// reverse order into a fresh buffer must agree.
	r.Draw(fb, u, fullscreenTriangle(0.9), blue)
	r.Draw(fb, u, fullscreenTriangle(0.1), red)

	fb2 := NewFrameBuffer(w, h)
	fb2.Clear()
	r.Draw(fb2, u, fullscreenTriangle(0.1), red)
	r.Draw(fb2, u, fullscreenTriangle(0.9), blue)

	want := RGB(255, 0, 0).Hex()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if fb.ColorAt(x, y) != want || fb2.ColorAt(x, y) != want {
				t.Fatalf("pixel (%d,%d): %#x / %#x, want near red", x, y, fb.ColorAt(x, y), fb2.ColorAt(x, y))
			}
		}
	}
}

func TestDrawParallelMatchesSerial(t *testing.T) {
	const w, h = 80, 60
	u := identityUniforms(w, h)

	// A few overlapping triangles at different depths.
	var verts []Vertex
	verts = append(verts, fullscreenTriangle(0.8)...)
	n := mathutil.Vec3{0, 1, 0}
	verts = append(verts,
		Vertex{Position: mathutil.Vec3{-0.5, -0.5, 0.2}, Normal: n},
		Vertex{Position: mathutil.Vec3{0.5, -0.5, 0.2}, Normal: n},
		Vertex{Position: mathutil.Vec3{0, 0.6, 0.2}, Normal: n},
	)

	shade := func(f *Fragment, _ *Uniforms) Color {
		return RGB(200, 180, 160).Scale(f.Intensity)
	}

	serial := NewFrameBuffer(w, h)
	serial.Clear()
	NewRenderer(1).Draw(serial, u, verts, shade)

	parallel := NewFrameBuffer(w, h)
	parallel.Clear()
	NewRenderer(4).Draw(parallel, u, verts, shade)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if serial.ColorAt(x, y) != parallel.ColorAt(x, y) {
				t.Fatalf("pixel (%d,%d): serial %#x, parallel %#x", x, y, serial.ColorAt(x, y), parallel.ColorAt(x, y))
			}
			if serial.DepthAt(x, y) != parallel.DepthAt(x, y) {
				t.Fatalf("depth (%d,%d): serial %v, parallel %v", x, y, serial.DepthAt(x, y), parallel.DepthAt(x, y))
			}
		}
	}
}

func TestDrawSkipsDanglingVertices(t *testing.T) {
	const w, h = 16, 16
	fb := NewFrameBuffer(w, h)
	fb.Clear()
	r := NewRenderer(1)

	// Two leftover vertices after the full triple must be ignored.
	verts := fullscreenTriangle(0.5)
	verts = append(verts, verts[0], verts[1])
	r.Draw(fb, identityUniforms(w, h), verts, flatWhite)

	if fb.ColorAt(8, 8) != RGB(255, 255, 255).Hex() {
		t.Fatalf("triangle not drawn")
	}
}
