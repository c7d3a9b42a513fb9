package raster

import "math"

// Edge tolerance for the inside test, in barycentric units. Pixel centers
// within this band of an edge are accepted; together with the depth test
// this keeps shared edges between adjacent triangles from visibly
// double-covering.
const edgeEpsilon = -0.001

// Triangle rasterizes three screen-space vertices into fragments appended
// to dst. The triangle's pixel footprint is clipped to a width×height
// target. Degenerate (zero-area) triangles produce no fragments.
//
// This is the hot path: no allocation in the inner loop beyond dst growth.
func Triangle(dst []Fragment, v0, v1, v2 Vertex, width, height int) []Fragment {
	return triangleRows(dst, v0, v1, v2, width, 0, height-1)
}

// triangleRows restricts output to scanlines yLo..yHi inclusive. Disjoint
// row bands let the renderer rasterize in parallel without synchronizing
// the depth test.
func triangleRows(dst []Fragment, v0, v1, v2 Vertex, width, yLo, yHi int) []Fragment {
	a := v0.TransformedPosition
	b := v1.TransformedPosition
	c := v2.TransformedPosition

	x0, y0, z0 := a[0], a[1], a[2]
	x1, y1, z1 := b[0], b[1], b[2]
	x2, y2, z2 := c[0], c[1], c[2]

	// Bounding box clipped to the target and the row band.
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= width {
		maxX = width - 1
	}
	if minY < yLo {
		minY = yLo
	}
	if maxY > yHi {
		maxY = yHi
	}
	if minX > maxX || minY > maxY {
		return dst
	}

	// Barycentric setup; near-zero determinant means a degenerate triangle.
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return dst
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	p0 := v0.Position
	p1 := v1.Position
	p2 := v2.Position
	n0 := v0.TransformedNormal
	n1 := v1.TransformedNormal
	n2 := v2.TransformedNormal

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < edgeEpsilon || w1 < edgeEpsilon || w2 < edgeEpsilon {
				continue
			}

			depth := w0*z0 + w1*z1 + w2*z2

			normal := [3]float64{
				w0*n0[0] + w1*n1[0] + w2*n2[0],
				w0*n0[1] + w1*n1[1] + w2*n2[1],
				w0*n0[2] + w1*n1[2] + w2*n2[2],
			}
			vpos := [3]float64{
				w0*p0[0] + w1*p1[0] + w2*p2[0],
				w0*p0[1] + w1*p1[1] + w2*p2[1],
				w0*p0[2] + w1*p1[2] + w2*p2[2],
			}

			dst = append(dst, Fragment{
				X:              sx,
				Y:              sy,
				Depth:          depth,
				VertexPosition: vpos,
				Normal:         normal,
				Intensity:      shadeIntensity(normal),
			})
		}
	}
	return dst
}
