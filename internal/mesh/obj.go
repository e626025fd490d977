package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"softrender/internal/mathutil"
)

// LoadOBJ parses a Wavefront OBJ file into a mesh. Only v, vt, and f records
// are used; faces with more than three corners are fan-triangulated. OBJ
// indices are 1-based and may be negative (relative to the end of the list).
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	m := New()
	var texcoords []TexCoord

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: %s:%d: short vertex record", path, lineNo)
			}
			var v mathutil.Vec3
			for i := 0; i < 3; i++ {
				v[i], err = strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("mesh: %s:%d: vertex: %w", path, lineNo, err)
				}
			}
			m.Vertices = append(m.Vertices, v)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("mesh: %s:%d: short texcoord record", path, lineNo)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("mesh: %s:%d: texcoord: %w", path, lineNo, err)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("mesh: %s:%d: texcoord: %w", path, lineNo, err)
			}
			texcoords = append(texcoords, TexCoord{U: u, V: v})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: %s:%d: face needs at least 3 corners", path, lineNo)
			}
			corners := fields[1:]
			vIdx := make([]int, len(corners))
			tIdx := make([]int, len(corners))
			for i, c := range corners {
				vi, ti, err := parseCorner(c, len(m.Vertices), len(texcoords))
				if err != nil {
					return nil, fmt.Errorf("mesh: %s:%d: %w", path, lineNo, err)
				}
				vIdx[i] = vi
				tIdx[i] = ti
			}
			// Fan triangulation for quads and larger polygons.
			for i := 1; i+1 < len(corners); i++ {
				face := Face{
					A:     vIdx[0],
					B:     vIdx[i],
					C:     vIdx[i+1],
					Color: 0xFFFFFFFF,
				}
				if tIdx[0] >= 0 {
					face.AUV = texcoords[tIdx[0]]
				}
				if tIdx[i] >= 0 {
					face.BUV = texcoords[tIdx[i]]
				}
				if tIdx[i+1] >= 0 {
					face.CUV = texcoords[tIdx[i+1]]
				}
				m.Faces = append(m.Faces, face)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}

	if len(m.Vertices) == 0 {
		return nil, fmt.Errorf("mesh: %s: no vertices", path)
	}
	for i, f := range m.Faces {
		if f.A >= len(m.Vertices) || f.B >= len(m.Vertices) || f.C >= len(m.Vertices) {
			return nil, fmt.Errorf("mesh: %s: face %d references missing vertex", path, i)
		}
	}

	return m, nil
}

// parseCorner parses one "v", "v/vt", "v//vn", or "v/vt/vn" face corner into
// zero-based vertex and texcoord indices. The texcoord index is -1 when
// absent.
func parseCorner(s string, nv, nt int) (vi, ti int, err error) {
	parts := strings.Split(s, "/")

	vi, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("face corner %q: %w", s, err)
	}
	vi = resolveIndex(vi, nv)
	if vi < 0 {
		return 0, 0, fmt.Errorf("face corner %q: vertex index out of range", s)
	}

	ti = -1
	if len(parts) > 1 && parts[1] != "" {
		t, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("face corner %q: %w", s, err)
		}
		ti = resolveIndex(t, nt)
		if ti < 0 {
			return 0, 0, fmt.Errorf("face corner %q: texcoord index out of range", s)
		}
	}
	return vi, ti, nil
}

// resolveIndex converts a 1-based (or negative, end-relative) OBJ index into
// a zero-based one, or -1 if out of range.
func resolveIndex(idx, n int) int {
	if idx > 0 {
		idx--
	} else if idx < 0 {
		idx = n + idx
	} else {
		return -1
	}
	if idx < 0 || idx >= n {
		return -1
	}
	return idx
}
