package raster

import (
	"math"
	"testing"

	"orbit-renderer/internal/mathutil"
)

// screenVertex builds an already-shaded vertex at a screen position.
func screenVertex(x, y, z float64) Vertex {
	return Vertex{
		Position:            mathutil.Vec3{x / 100, y / 100, z},
		Normal:              mathutil.Vec3{0, 0, 1},
		TransformedPosition: mathutil.Vec3{x, y, z},
		TransformedNormal:   mathutil.Vec3{0, 0, 1},
	}
}

func TestTriangleFragmentCountNearArea(t *testing.T) {
	// Right triangle with legs of 20 px: area 200.
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(30, 10, 0.5)
	v2 := screenVertex(10, 30, 0.5)

	frags := Triangle(nil, v0, v1, v2, 100, 100)

	if len(frags) < 180 || len(frags) > 260 {
		t.Fatalf("fragment count %d, want ≈200", len(frags))
	}
	for _, f := range frags {
		if f.X < 10-1 || f.X > 30+1 || f.Y < 10-1 || f.Y > 30+1 {
			t.Fatalf("fragment (%d,%d) outside bounding box", f.X, f.Y)
		}
		if math.Abs(f.Depth-0.5) > 1e-9 {
			t.Fatalf("flat triangle interpolated depth %v", f.Depth)
		}
	}
}

func TestTriangleOutsideBoundsYieldsNoFragments(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 Vertex
	}{
		{"right of target", screenVertex(200, 10, 0), screenVertex(240, 10, 0), screenVertex(200, 40, 0)},
		{"above target", screenVertex(10, -50, 0), screenVertex(40, -50, 0), screenVertex(10, -20, 0)},
		{"left of target", screenVertex(-90, 10, 0), screenVertex(-50, 10, 0), screenVertex(-90, 40, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if frags := Triangle(nil, tc.v0, tc.v1, tc.v2, 100, 100); len(frags) != 0 {
				t.Fatalf("%d fragments for off-target triangle", len(frags))
			}
		})
	}
}

func TestTriangleDegenerateYieldsNoFragments(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 Vertex
	}{
		{"zero area point", screenVertex(10, 10, 0), screenVertex(10, 10, 0), screenVertex(10, 10, 0)},
		{"collinear", screenVertex(10, 10, 0), screenVertex(20, 20, 0), screenVertex(30, 30, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if frags := Triangle(nil, tc.v0, tc.v1, tc.v2, 100, 100); len(frags) != 0 {
				t.Fatalf("%d fragments for degenerate triangle", len(frags))
			}
		})
	}
}

func TestTriangleInterpolatesDepth(t *testing.T) {
	v0 := screenVertex(0, 0, 0.0)
	v1 := screenVertex(40, 0, 1.0)
	v2 := screenVertex(0, 40, 1.0)

	frags := Triangle(nil, v0, v1, v2, 100, 100)
	if len(frags) == 0 {
		t.Fatalf("no fragments")
	}
	for _, f := range frags {
		if f.Depth < -0.01 || f.Depth > 1.01 {
			t.Fatalf("depth %v outside vertex range", f.Depth)
		}
	}
}

func TestTriangleInterpolatesShadingPosition(t *testing.T) {
	v0 := screenVertex(0, 0, 0)
	v1 := screenVertex(40, 0, 0)
	v2 := screenVertex(0, 40, 0)

	frags := Triangle(nil, v0, v1, v2, 100, 100)
	for _, f := range frags {
		// Object-space positions were screen/100: interpolants stay inside
		// the triangle's object-space extent.
		p := f.VertexPosition
		if p[0] < -0.01 || p[0] > 0.41 || p[1] < -0.01 || p[1] > 0.41 {
			t.Fatalf("shading position %v outside extent", p)
		}
	}
}

func TestTriangleIntensityRange(t *testing.T) {
	v0 := screenVertex(0, 0, 0)
	v1 := screenVertex(40, 0, 0)
	v2 := screenVertex(0, 40, 0)
	// Tilt the normals around so intensity sweeps its range.
	v0.TransformedNormal = mathutil.Vec3{1, 0, 0}
	v1.TransformedNormal = mathutil.Vec3{0, 1, 0}
	v2.TransformedNormal = mathutil.Vec3{0, 0, -1}

	frags := Triangle(nil, v0, v1, v2, 100, 100)
	for _, f := range frags {
		if f.Intensity < 0 || f.Intensity > 1 {
			t.Fatalf("intensity %v outside [0,1]", f.Intensity)
		}
	}
}

func TestTriangleRowBandsPartitionFragments(t *testing.T) {
	v0 := screenVertex(10, 10, 0.5)
	v1 := screenVertex(60, 20, 0.5)
	v2 := screenVertex(20, 70, 0.5)

	full := Triangle(nil, v0, v1, v2, 100, 100)

	var banded []Fragment
	banded = triangleRows(banded, v0, v1, v2, 100, 0, 39)
	banded = triangleRows(banded, v0, v1, v2, 100, 40, 99)

	if len(full) != len(banded) {
		t.Fatalf("bands produced %d fragments, full pass %d", len(banded), len(full))
	}

	seen := make(map[[2]int]bool, len(full))
	for _, f := range full {
		seen[[2]int{f.X, f.Y}] = true
	}
	for _, f := range banded {
		if !seen[[2]int{f.X, f.Y}] {
			t.Fatalf("band emitted (%d,%d) missing from full pass", f.X, f.Y)
		}
	}
}
