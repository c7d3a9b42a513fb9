package scene

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"orbit-renderer/internal/mathutil"
	"orbit-renderer/internal/raster"
)

// LoadOBJ parses a Wavefront .obj file into a flat vertex array, consecutive
// triples forming triangles. Faces with more than three corners are fan
// triangulated. Missing normals are filled from the face plane.
func LoadOBJ(path string) ([]raster.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	var positions []mathutil.Vec3
	var normals []mathutil.Vec3
	var uvs []mathutil.Vec2
	var out []raster.Vertex

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			v, err := parseVec3(parts)
			if err != nil {
				return nil, fmt.Errorf("scene: %s:%d: %w", path, lineNo, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseVec3(parts)
			if err != nil {
				return nil, fmt.Errorf("scene: %s:%d: %w", path, lineNo, err)
			}
			normals = append(normals, v)
		case "vt":
			if len(parts) < 3 {
				return nil, fmt.Errorf("scene: %s:%d: short vt line", path, lineNo)
			}
			u, err1 := strconv.ParseFloat(parts[1], 64)
			v, err2 := strconv.ParseFloat(parts[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("scene: %s:%d: bad vt line", path, lineNo)
			}
			uvs = append(uvs, mathutil.Vec2{u, v})
		case "f":
			corners := parts[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("scene: %s:%d: face with %d corners", path, lineNo, len(corners))
			}
			face := make([]raster.Vertex, len(corners))
			for i, c := range corners {
				fv, err := parseFaceVertex(c, positions, normals, uvs)
				if err != nil {
					return nil, fmt.Errorf("scene: %s:%d: %w", path, lineNo, err)
				}
				face[i] = fv
			}
			for i := 1; i+1 < len(face); i++ {
				out = append(out, fillNormals(face[0], face[i], face[i+1])...)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("scene: %s: no faces", path)
	}
	return out, nil
}

func parseVec3(parts []string) (mathutil.Vec3, error) {
	if len(parts) < 4 {
		return mathutil.Vec3{}, fmt.Errorf("short %s line", parts[0])
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(parts[i+1], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("bad %s line: %w", parts[0], err)
		}
		v[i] = f
	}
	return v, nil
}

// parseFaceVertex resolves one "v", "v/vt", "v//vn" or "v/vt/vn" reference.
// OBJ indices are 1-based; negative indices count from the end.
func parseFaceVertex(ref string, positions, normals []mathutil.Vec3, uvs []mathutil.Vec2) (raster.Vertex, error) {
	fields := strings.Split(ref, "/")

	resolve := func(s string, n int) (int, bool, error) {
		if s == "" {
			return 0, false, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, fmt.Errorf("bad face index %q: %w", s, err)
		}
		if i < 0 {
			i = n + i
		} else {
			i--
		}
		if i < 0 || i >= n {
			return 0, false, fmt.Errorf("face index %q out of range", s)
		}
		return i, true, nil
	}

	var v raster.Vertex
	v.Color = raster.RGB(204, 204, 204)

	pi, ok, err := resolve(fields[0], len(positions))
	if err != nil {
		return v, err
	}
	if !ok {
		return v, fmt.Errorf("face reference %q has no position", ref)
	}
	v.Position = positions[pi]

	if len(fields) > 1 {
		ti, ok, err := resolve(fields[1], len(uvs))
		if err != nil {
			return v, err
		}
		if ok {
			v.TexCoords = uvs[ti]
		}
	}
	if len(fields) > 2 {
		ni, ok, err := resolve(fields[2], len(normals))
		if err != nil {
			return v, err
		}
		if ok {
			v.Normal = normals[ni]
		}
	}
	return v, nil
}

// fillNormals substitutes the face normal where a corner has none.
func fillNormals(a, b, c raster.Vertex) []raster.Vertex {
	if a.Normal != (mathutil.Vec3{}) && b.Normal != (mathutil.Vec3{}) && c.Normal != (mathutil.Vec3{}) {
		return []raster.Vertex{a, b, c}
	}
	fn := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position)).Normalize()
	if a.Normal == (mathutil.Vec3{}) {
		a.Normal = fn
	}
	if b.Normal == (mathutil.Vec3{}) {
		b.Normal = fn
	}
	if c.Normal == (mathutil.Vec3{}) {
		c.Normal = fn
	}
	return []raster.Vertex{a, b, c}
}
