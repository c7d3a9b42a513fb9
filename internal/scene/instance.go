package scene

import (
	"math"

	"orbit-renderer/internal/mathutil"
)

// Base angular rate; Speed values in the instance table are multiples of it.
const orbitRate = 0.01

// Instance is one rendered body: where it orbits, how large it is, and
// which material shader colors it.
type Instance struct {
	// Center is the rest position; its magnitude doubles as the orbit
	// radius. A zero center pins the body at the origin (the primary).
	Center   mathutil.Vec3 `json:"center"`
	Scale    float64       `json:"scale"`
	Speed    float64       `json:"speed"`
	Phase    float64       `json:"phase"`
	Material int           `json:"material"`
}

// OrbitPosition returns the body's position at an animation time: the rest
// position swept around the origin in the XY plane.
func (in Instance) OrbitPosition(time uint32) mathutil.Vec3 {
	radius := in.Center.Len()
	angle := float64(time)*in.Speed*orbitRate + in.Phase
	return mathutil.Vec3{
		radius * math.Cos(angle),
		radius * math.Sin(angle),
		in.Center[2],
	}
}

// DefaultInstances is the stock scene: a fixed primary surrounded by six
// orbiting bodies, one per remaining material.
func DefaultInstances() []Instance {
	return []Instance{
		{Center: mathutil.Vec3{0, 0, 0}, Scale: 0.7, Speed: 0.0, Phase: 0, Material: 0},
		{Center: mathutil.Vec3{-2, 0, 0}, Scale: 0.5, Speed: 0.2, Phase: 0, Material: 1},
		{Center: mathutil.Vec3{2, 0, 0}, Scale: 0.5, Speed: 0.2, Phase: 1, Material: 2},
		{Center: mathutil.Vec3{0, 2, 0}, Scale: 0.5, Speed: 0.2, Phase: 2, Material: 3},
		{Center: mathutil.Vec3{0, -2, 0}, Scale: 0.5, Speed: 0.2, Phase: 3, Material: 4},
		{Center: mathutil.Vec3{1.5, 1.5, 0}, Scale: 0.5, Speed: 0.2, Phase: 4, Material: 5},
		{Center: mathutil.Vec3{-1.5, -1.5, 0}, Scale: 0.5, Speed: 0.2, Phase: 5, Material: 6},
	}
}
