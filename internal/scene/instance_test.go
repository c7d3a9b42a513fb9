package scene

import (
	"math"
	"testing"

	"orbit-renderer/internal/mathutil"
)

func TestOrbitPositionPinnedPrimary(t *testing.T) {
	in := Instance{Center: mathutil.Vec3{0, 0, 0}, Scale: 0.7}
	for _, time := range []uint32{0, 1, 500, 100000} {
		if got := in.OrbitPosition(time); got != (mathutil.Vec3{}) {
			t.Fatalf("time %d: primary moved to %v", time, got)
		}
	}
}

func TestOrbitPositionRadiusIsCenterMagnitude(t *testing.T) {
	in := Instance{Center: mathutil.Vec3{-2, 0, 0}, Speed: 0.2, Phase: 1}
	radius := in.Center.Len()
	for _, time := range []uint32{0, 10, 333, 9999} {
		p := in.OrbitPosition(time)
		r := math.Hypot(p[0], p[1])
		if math.Abs(r-radius) > 1e-9 {
			t.Fatalf("time %d: orbit radius %v, want %v", time, r, radius)
		}
		if p[2] != in.Center[2] {
			t.Fatalf("time %d: z drifted to %v", time, p[2])
		}
	}
}

func TestOrbitPositionAdvancesWithTime(t *testing.T) {
	in := Instance{Center: mathutil.Vec3{2, 0, 0}, Speed: 0.2}
	if in.OrbitPosition(0) == in.OrbitPosition(100) {
		t.Fatalf("orbit position frozen in time")
	}
}

func TestOrbitPositionPhaseOffsets(t *testing.T) {
	a := Instance{Center: mathutil.Vec3{2, 0, 0}, Speed: 0.2, Phase: 0}
	b := Instance{Center: mathutil.Vec3{2, 0, 0}, Speed: 0.2, Phase: math.Pi}
	pa := a.OrbitPosition(0)
	pb := b.OrbitPosition(0)
	// Opposite phases sit on opposite sides of the orbit.
	if pa.Add(pb).Len() > 1e-9 {
		t.Fatalf("opposite phases not antipodal: %v vs %v", pa, pb)
	}
}

func TestDefaultInstances(t *testing.T) {
	insts := DefaultInstances()
	if len(insts) != 7 {
		t.Fatalf("instance count %d, want 7", len(insts))
	}
	if insts[0].Center != (mathutil.Vec3{}) || insts[0].Speed != 0 {
		t.Fatalf("first instance is not the pinned primary: %+v", insts[0])
	}
	seen := map[int]bool{}
	for _, in := range insts {
		if seen[in.Material] {
			t.Fatalf("material %d assigned twice", in.Material)
		}
		seen[in.Material] = true
	}
}
