// Package noise provides a seeded, deterministic coherent-noise field used to
// drive the procedural surface shaders.
package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Base frequency applied to every sample. Shader zoom constants are tuned
// against this scale.
const baseFrequency = 0.01

// Field is a fractal OpenSimplex noise generator. A Field is immutable after
// construction and safe for concurrent sampling: identical (seed, fractal
// config, coordinates) always produce the identical value.
type Field struct {
	src        opensimplex.Noise
	frequency  float64
	octaves    int
	lacunarity float64
	gain       float64
}

// New returns a single-octave field for the given seed.
func New(seed int64) *Field {
	return &Field{
		src:        opensimplex.New(seed),
		frequency:  baseFrequency,
		octaves:    1,
		lacunarity: 2.0,
		gain:       0.5,
	}
}

// NewFractal returns a field that sums octaves of noise, each octave at
// lacunarity× the frequency and gain× the amplitude of the previous one.
func NewFractal(seed int64, octaves int) *Field {
	f := New(seed)
	if octaves > 1 {
		f.octaves = octaves
	}
	return f
}

// Sample2D returns a noise value in roughly [-1, 1] for a 2D coordinate.
func (f *Field) Sample2D(x, y float64) float64 {
	x *= f.frequency
	y *= f.frequency
	if f.octaves == 1 {
		return f.src.Eval2(x, y)
	}
	sum, amp, norm := 0.0, 1.0, 0.0
	for i := 0; i < f.octaves; i++ {
		sum += f.src.Eval2(x, y) * amp
		norm += amp
		amp *= f.gain
		x *= f.lacunarity
		y *= f.lacunarity
	}
	return sum / norm
}

// Sample3D returns a noise value in roughly [-1, 1] for a 3D coordinate.
func (f *Field) Sample3D(x, y, z float64) float64 {
	x *= f.frequency
	y *= f.frequency
	z *= f.frequency
	if f.octaves == 1 {
		return f.src.Eval3(x, y, z)
	}
	sum, amp, norm := 0.0, 1.0, 0.0
	for i := 0; i < f.octaves; i++ {
		sum += f.src.Eval3(x, y, z) * amp
		norm += amp
		amp *= f.gain
		x *= f.lacunarity
		y *= f.lacunarity
		z *= f.lacunarity
	}
	return sum / norm
}
