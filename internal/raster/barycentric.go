package raster

import "softrender/internal/mathutil"

// Weights holds the barycentric coordinates of a point relative to a
// triangle. Alpha + Beta + Gamma == 1 by construction.
type Weights struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// BarycentricWeights returns the barycentric weights of point p relative to
// triangle abc. Each weight is the signed area of the sub-triangle opposite
// the corresponding vertex divided by the area of abc; gamma is derived from
// the other two so the weights always sum to 1.
//
// The function is pure. A degenerate (zero-area) triangle divides by zero;
// callers must not scan-convert degenerate triangles.
func BarycentricWeights(a, b, c, p mathutil.Vec2) Weights {
	ab := b.Sub(a)
	bc := c.Sub(b)
	ac := c.Sub(a)
	ap := p.Sub(a)
	bp := p.Sub(b)

	// Twice the signed area of the full triangle.
	areaABC := ab.Cross(ac)

	alpha := bc.Cross(bp) / areaABC
	beta := ap.Cross(ac) / areaABC
	gamma := 1 - alpha - beta

	return Weights{Alpha: alpha, Beta: beta, Gamma: gamma}
}
