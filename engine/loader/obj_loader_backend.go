package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-lumen/engine/model"
)

// objLoaderBackend parses Wavefront OBJ geometry: v, vn and f records.
// Texture coordinates, groups and materials are ignored.
type objLoaderBackend struct{}

var _ loaderBackend = &objLoaderBackend{}

func newOBJLoaderBackend() *objLoaderBackend {
	return &objLoaderBackend{}
}

func (b *objLoaderBackend) Load(path string) (*model.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer f.Close()

	return b.LoadReader(path, f)
}

func (b *objLoaderBackend) LoadReader(name string, r io.Reader) (*model.Mesh, error) {
	var positions [][3]float32
	var normals [][3]float32

	// A vertex is a unique (position, normal) pair; -1 means no normal.
	type vertexKey struct {
		pos, normal int
	}
	vertexMap := make(map[vertexKey]uint32)

	var outPos, outNrm []float32
	var indices []uint32
	anyNormal := false

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNum, err)
			}
			positions = append(positions, v)

		case "vn":
			v, err := parseVec3(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid normal: %w", lineNum, err)
			}
			normals = append(normals, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, field := range fields[1:] {
				posIdx, normalIdx, err := parseFaceVertex(field)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				posIdx = resolveIndex(posIdx, len(positions))
				normalIdx = resolveIndex(normalIdx, len(normals))
				if posIdx < 0 || posIdx >= len(positions) {
					return nil, fmt.Errorf("line %d: position index out of range", lineNum)
				}
				if normalIdx >= len(normals) {
					normalIdx = -1
				}

				key := vertexKey{posIdx, normalIdx}
				idx, ok := vertexMap[key]
				if !ok {
					idx = uint32(len(outPos) / 3)
					p := positions[posIdx]
					outPos = append(outPos, p[0], p[1], p[2])
					if normalIdx >= 0 {
						n := normals[normalIdx]
						outNrm = append(outNrm, n[0], n[1], n[2])
						anyNormal = true
					} else {
						outNrm = append(outNrm, 0, 0, 0)
					}
					vertexMap[key] = idx
				}
				face = append(face, idx)
			}

			// fan triangulation, convex polygons only
			for i := 1; i+1 < len(face); i++ {
				indices = append(indices, face[0], face[i], face[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	if !anyNormal {
		outNrm = nil
	}
	return model.NewMesh(
		model.WithName(name),
		model.WithPositions(outPos),
		model.WithNormals(outNrm),
		model.WithIndices(indices),
	), nil
}

func parseVec3(fields []string) ([3]float32, error) {
	var v [3]float32
	if len(fields) < 4 {
		return v, fmt.Errorf("need x y z")
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseFaceVertex splits "v", "v/t", "v/t/n" and "v//n" into 1-based position and
// normal indices. A missing normal is returned as 0.
func parseFaceVertex(s string) (pos, normal int, err error) {
	parts := strings.Split(s, "/")
	pos, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid face index %q", s)
	}
	if len(parts) >= 3 && parts[2] != "" {
		normal, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid normal index %q", s)
		}
	}
	return pos, normal, nil
}

// resolveIndex turns a 1-based or negative relative OBJ index into a 0-based one.
// Zero (absent) maps to -1.
func resolveIndex(idx, count int) int {
	switch {
	case idx > 0:
		return idx - 1
	case idx < 0:
		return count + idx
	default:
		return -1
	}
}
