package scene

import (
	"math"

	"orbit-renderer/internal/mathutil"
	"orbit-renderer/internal/raster"
)

// Sphere generates a UV-sphere as a flat vertex array, consecutive triples
// forming triangles, the layout the render pipeline consumes. Normals equal
// the unit position, which is exact for a sphere.
func Sphere(radius float64, segments, rings int) []raster.Vertex {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	// Grid of (rings+1)×(segments+1) shared vertices, then flattened.
	grid := make([]raster.Vertex, 0, (rings+1)*(segments+1))
	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * math.Pi / float64(rings)
		sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2 * math.Pi / float64(segments)
			sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

			normal := mathutil.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			grid = append(grid, raster.Vertex{
				Position: normal.Scale(radius),
				Normal:   normal,
				TexCoords: mathutil.Vec2{
					float64(seg) / float64(segments),
					float64(ring) / float64(rings),
				},
				Color: raster.RGB(204, 204, 204),
			})
		}
	}

	stride := segments + 1
	out := make([]raster.Vertex, 0, rings*segments*6)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			cur := ring*stride + seg
			next := cur + stride

			out = append(out, grid[cur], grid[next], grid[cur+1])
			out = append(out, grid[cur+1], grid[next], grid[next+1])
		}
	}
	return out
}
