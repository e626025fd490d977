package main

import (
	"fmt"
	"math"
	"os"

	"softrender/internal/mesh"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: meshinfo <model.obj>")
		os.Exit(1)
	}
	path := os.Args[1]

	m, err := mesh.LoadOBJ(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Vertices: %d, Faces: %d\n", len(m.Vertices), len(m.Faces))

	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for _, v := range m.Vertices {
		if v[0] < minX {
			minX = v[0]
		}
		if v[1] < minY {
			minY = v[1]
		}
		if v[2] < minZ {
			minZ = v[2]
		}
		if v[0] > maxX {
			maxX = v[0]
		}
		if v[1] > maxY {
			maxY = v[1]
		}
		if v[2] > maxZ {
			maxZ = v[2]
		}
	}
	fmt.Printf("BBox: X[%.2f, %.2f] Y[%.2f, %.2f] Z[%.2f, %.2f]\n", minX, maxX, minY, maxY, minZ, maxZ)
	fmt.Printf("Size: %.2f x %.2f x %.2f\n", maxX-minX, maxY-minY, maxZ-minZ)
	fmt.Printf("Radius: %.2f\n", m.Radius())

	// Count degenerate faces (zero area) that the rasterizer would skip.
	degenerate := 0
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f.A], m.Vertices[f.B], m.Vertices[f.C]
		area := b.Sub(a).Cross(c.Sub(a)).Len() / 2
		if area < 1e-12 {
			degenerate++
		}
	}
	fmt.Printf("Degenerate faces: %d\n", degenerate)
}
