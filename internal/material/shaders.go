// Package material holds the procedural surface shaders. Each shader is a
// pure function of a fragment and the draw-call uniforms: it samples the
// noise field at the fragment's shading coordinate, buckets the value into a
// small band→color table, and scales the result by the lighting intensity.
package material

import (
	"math"
	"math/rand"

	"orbit-renderer/internal/raster"
)

// Shader is a procedural coloring function.
type Shader = raster.FragmentShader

// Indexed surface shaders. ByIndex falls back to Static for anything
// outside the table, so dispatch is total over all integers.
var shaders = [...]Shader{
	Terran,
	Spotted,
	Cloudy,
	Cellular,
	Molten,
	Rocky,
	Stellar,
	Gaseous,
}

// Count is the number of indexed (non-fallback) shaders.
const Count = len(shaders)

// ByIndex returns the shader for a material index.
func ByIndex(i int) Shader {
	if i < 0 || i >= len(shaders) {
		return Static
	}
	return shaders[i]
}

// Static is the fallback: a reproducible per-pixel black/white choice seeded
// from time and shading coordinate. No coherent noise involved.
func Static(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	seed := float64(u.Time) * f.VertexPosition[1] * f.VertexPosition[0]
	rng := rand.New(rand.NewSource(int64(math.Abs(seed))))

	c := raster.RGB(0, 0, 0)
	if rng.Intn(101) >= 50 {
		c = raster.RGB(255, 255, 255)
	}
	return c.Scale(f.Intensity)
}

// Spotted renders white spots on black, dalmatian style.
func Spotted(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	const zoom = 100.0
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	n := u.Noise.Sample2D(x*zoom, y*zoom)

	c := raster.RGB(0, 0, 0)
	if n < 0.5 {
		c = raster.RGB(255, 255, 255)
	}
	return c.Scale(f.Intensity)
}

// Cloudy renders drifting white clouds over a sky blue base. The time term
// advects the cloud layer horizontally.
func Cloudy(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	const (
		zoom = 100.0
		ox   = 100.0
		oy   = 100.0
	)
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]
	t := float64(u.Time) * 0.5

	n := u.Noise.Sample2D(x*zoom+ox+t, y*zoom+oy)

	sky := raster.RGB(30, 97, 145)
	if n > 0.5 {
		sky = raster.RGB(255, 255, 255)
	}
	return sky.Scale(f.Intensity)
}

// Cellular buckets folded noise into four shades of green, giving a
// plant-cell tiling.
func Cellular(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	const (
		zoom = 30.0
		ox   = 50.0
		oy   = 50.0
	)
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	n := math.Abs(u.Noise.Sample2D(x*zoom+ox, y*zoom+oy))

	var c raster.Color
	switch {
	case n < 0.15:
		c = raster.RGB(85, 107, 47)
	case n < 0.7:
		c = raster.RGB(124, 252, 0)
	case n < 0.75:
		c = raster.RGB(34, 139, 34)
	default:
		c = raster.RGB(173, 255, 47)
	}
	return c.Scale(f.Intensity)
}

// Molten blends between dark crust and bright lava, with a slow pulse on the
// z axis that makes the flow pattern breathe.
func Molten(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	bright := raster.RGB(255, 240, 0)
	dark := raster.RGB(130, 20, 0)

	x := f.VertexPosition[0]
	y := f.VertexPosition[1]
	z := f.Depth

	const (
		zoom          = 1000.0
		baseFrequency = 0.2
		pulseAmp      = 0.5
	)
	t := float64(u.Time) * 0.01
	pulse := math.Sin(t*baseFrequency) * pulseAmp

	n1 := u.Noise.Sample3D(x*zoom, y*zoom, (z+pulse)*zoom)
	n2 := u.Noise.Sample3D((x+1000)*zoom, (y+1000)*zoom, (z+1000+pulse)*zoom)
	n := (n1 + n2) * 0.5

	return dark.Lerp(bright, n).Scale(f.Intensity)
}

// Rocky banded terrain: lowlands, plains, mountains.
func Rocky(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	const (
		zoom = 50.0
		ox   = 10.0
		oy   = 20.0
	)
	x := f.VertexPosition[0]
	y := f.VertexPosition[1]

	n := math.Abs(u.Noise.Sample2D(x*zoom+ox, y*zoom+oy))

	var c raster.Color
	switch {
	case n < 0.2:
		c = raster.RGB(222, 184, 135)
	case n < 0.5:
		c = raster.RGB(205, 133, 63)
	default:
		c = raster.RGB(139, 69, 19)
	}
	return c.Scale(f.Intensity)
}

// Stellar combines two advected 3D noise taps into corona/core/flare bands.
func Stellar(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	const (
		zoom  = 20.0
		speed = 0.2
	)
	t := float64(u.Time) * speed

	x := f.VertexPosition[0]
	y := f.VertexPosition[1]
	z := f.Depth

	n1 := math.Abs(u.Noise.Sample3D(x*zoom+t, y*zoom, z*zoom))
	n2 := math.Abs(u.Noise.Sample3D((x+50)*zoom, (y+50)*zoom, (z+t)*zoom))
	n := (n1 + n2) * 0.5

	var c raster.Color
	switch {
	case n < 0.3:
		c = raster.RGB(255, 215, 0)
	case n < 0.6:
		c = raster.RGB(255, 140, 0)
	default:
		c = raster.RGB(255, 69, 0)
	}
	return c.Scale(f.Intensity)
}

// Terran oceans, continents and mountain ranges from two advected 3D taps.
func Terran(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	const (
		zoom  = 20.0
		speed = 0.10
	)
	t := float64(u.Time) * speed

	x := f.VertexPosition[0]
	y := f.VertexPosition[1]
	z := f.Depth

	n1 := math.Abs(u.Noise.Sample3D(x*zoom+t, y*zoom, z*zoom))
	n2 := math.Abs(u.Noise.Sample3D((x+50)*zoom, (y+50)*zoom, (z+t)*zoom))
	n := (n1 + n2) * 0.5

	var c raster.Color
	switch {
	case n < 0.3:
		c = raster.RGB(0, 105, 148)
	case n < 0.6:
		c = raster.RGB(34, 139, 34)
	default:
		c = raster.RGB(139, 69, 19)
	}
	return c.Scale(f.Intensity)
}

// Gaseous renders soft latitudinal gas bands that drift with time.
func Gaseous(f *raster.Fragment, u *raster.Uniforms) raster.Color {
	const (
		zoom  = 0.3
		speed = 0.1
	)
	t := float64(u.Time) * speed

	x := f.VertexPosition[0]
	y := f.VertexPosition[1]
	z := f.Depth

	n := math.Abs(u.Noise.Sample3D(x*zoom, (y+t)*zoom, z*zoom))

	var c raster.Color
	switch {
	case n < 0.4:
		c = raster.RGB(135, 206, 250)
	case n < 0.7:
		c = raster.RGB(176, 224, 230)
	default:
		c = raster.RGB(255, 228, 196)
	}
	return c.Scale(f.Intensity)
}
