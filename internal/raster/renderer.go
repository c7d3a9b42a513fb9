package raster

import "sync"

// FragmentShader resolves a fragment to a color. Implementations must be
// pure: identical fragment + uniforms in, bit-identical color out.
type FragmentShader func(*Fragment, *Uniforms) Color

// Renderer drives one draw call through the pipeline: vertex shading,
// triangle assembly from consecutive vertex triples, rasterization, fragment
// shading, depth-tested writes. Create it once and reuse it across frames to
// keep the per-frame scratch allocations stable.
type Renderer struct {
	// Workers splits rasterization + fragment shading across disjoint
	// row bands. Values below 2 render on the calling goroutine.
	Workers int

	shaded []Vertex
	frags  []Fragment
}

// NewRenderer returns a renderer using the given worker count.
func NewRenderer(workers int) *Renderer {
	if workers < 1 {
		workers = 1
	}
	return &Renderer{Workers: workers}
}

// Draw renders a vertex array (consecutive triples form triangles) into fb.
// Uniforms are read-only for the whole call. A trailing partial triple is
// ignored.
func (r *Renderer) Draw(fb *FrameBuffer, u *Uniforms, vertices []Vertex, shade FragmentShader) {
	r.shaded = r.shaded[:0]
	for _, v := range vertices {
		sv, ok := ShadeVertex(v, u)
		// A degenerate w poisons every triangle sharing the vertex; mark it
		// so assembly skips those triangles instead of crashing.
		if !ok {
			sv.TransformedPosition[2] = FarDepth
		}
		r.shaded = append(r.shaded, sv)
	}

	if r.Workers > 1 && fb.height >= r.Workers {
		r.drawParallel(fb, u, shade)
		return
	}

	r.frags = r.frags[:0]
	for i := 0; i+2 < len(r.shaded); i += 3 {
		if degenerateTriple(r.shaded[i : i+3]) {
			continue
		}
		r.frags = Triangle(r.frags, r.shaded[i], r.shaded[i+1], r.shaded[i+2], fb.width, fb.height)
	}
	for i := range r.frags {
		f := &r.frags[i]
		fb.SetCurrentColor(shade(f, u))
		fb.Point(f.X, f.Y, f.Depth)
	}
}

// drawParallel gives each worker an exclusive horizontal band of the
// framebuffer. Every worker walks all triangles but only emits fragments in
// its own rows, so depth-test writes never race and closer-wins holds.
func (r *Renderer) drawParallel(fb *FrameBuffer, u *Uniforms, shade FragmentShader) {
	workers := r.Workers
	rows := fb.height / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		yLo := w * rows
		yHi := yLo + rows - 1
		if w == workers-1 {
			yHi = fb.height - 1
		}

		wg.Add(1)
		go func(yLo, yHi int) {
			defer wg.Done()
			var frags []Fragment
			for i := 0; i+2 < len(r.shaded); i += 3 {
				if degenerateTriple(r.shaded[i : i+3]) {
					continue
				}
				frags = triangleRows(frags, r.shaded[i], r.shaded[i+1], r.shaded[i+2], fb.width, yLo, yHi)
			}
			for i := range frags {
				f := &frags[i]
				// Bands are disjoint rows: this worker is the only writer
				// for these pixels.
				c := shade(f, u).Hex()
				idx := f.Y*fb.width + f.X
				if f.Depth < fb.depth[idx] {
					fb.depth[idx] = f.Depth
					fb.color[idx] = c
				}
			}
		}(yLo, yHi)
	}
	wg.Wait()
}

func degenerateTriple(tri []Vertex) bool {
	for i := range tri {
		if tri[i].TransformedPosition[2] == FarDepth {
			return true
		}
	}
	return false
}
