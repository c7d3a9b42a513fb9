package engine

import (
	"math"
	"testing"

	"orbit-renderer/internal/mathutil"
	"orbit-renderer/internal/noise"
	"orbit-renderer/internal/raster"
	"orbit-renderer/internal/scene"
)

func testEngine(workers int) *Engine {
	cam := scene.NewCamera(
		mathutil.Vec3{0, 3, 5},
		mathutil.Vec3{0, 0, 0},
		mathutil.Vec3{0, 1, 0},
	)
	return New(Params{
		Width:      160,
		Height:     120,
		FOV:        math.Pi / 4,
		Near:       0.1,
		Far:        1000,
		Background: raster.FromHex(0x333355),
		Workers:    workers,
	}, cam, noise.New(1337), scene.Sphere(1, 16, 8), scene.DefaultInstances())
}

func countForeground(fb *raster.FrameBuffer) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.ColorAt(x, y) != 0x333355 {
				n++
			}
		}
	}
	return n
}

func TestRenderFrameDrawsBodies(t *testing.T) {
	e := testEngine(1)
	fb := e.RenderFrame()

	fg := countForeground(fb)
	if fg == 0 {
		t.Fatalf("frame is entirely background")
	}
	// Every foreground pixel must have passed the depth test.
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.ColorAt(x, y) != 0x333355 && fb.DepthAt(x, y) >= raster.FarDepth {
				t.Fatalf("pixel (%d,%d) colored but depth unset", x, y)
			}
		}
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	a := testEngine(1)
	b := testEngine(1)
	a.SetTime(42)
	b.SetTime(42)

	fa := a.RenderFrame()
	fbuf := b.RenderFrame()
	for y := 0; y < fa.Height(); y++ {
		for x := 0; x < fa.Width(); x++ {
			if fa.ColorAt(x, y) != fbuf.ColorAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs between identical engines", x, y)
			}
		}
	}
}

func TestRenderFrameParallelMatchesSerial(t *testing.T) {
	a := testEngine(1)
	b := testEngine(4)
	a.SetTime(7)
	b.SetTime(7)

	fa := a.RenderFrame()
	fbuf := b.RenderFrame()
	for y := 0; y < fa.Height(); y++ {
		for x := 0; x < fa.Width(); x++ {
			if fa.ColorAt(x, y) != fbuf.ColorAt(x, y) {
				t.Fatalf("pixel (%d,%d) differs with parallel rasterization", x, y)
			}
		}
	}
}

func TestAnimationMovesBodies(t *testing.T) {
	e := testEngine(1)
	e.SetTime(0)
	first := append([]uint32(nil), e.RenderFrame().Buffer()...)

	e.SetTime(60)
	second := e.RenderFrame().Buffer()

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("frames at t=0 and t=60 are identical")
	}
}

func TestAdvanceStepsClock(t *testing.T) {
	e := testEngine(1)
	if e.Time() != 0 {
		t.Fatalf("initial time %d", e.Time())
	}
	e.Advance()
	e.Advance()
	if e.Time() != 2 {
		t.Fatalf("time %d after two steps", e.Time())
	}
}
