package raster

import (
	"math"
	"testing"

	"softrender/internal/mathutil"
)

const eps = 1e-9

func TestBarycentricWeights_SumToOne(t *testing.T) {
	a := mathutil.Vec2{0, 0}
	b := mathutil.Vec2{10, 0}
	c := mathutil.Vec2{0, 10}

	points := []mathutil.Vec2{
		{1, 1},
		{5, 2},
		{2, 5},
		{3.3, 3.3},
		{0, 0},
		{10, 0},
		{0, 10},
		{5, 5}, // on the hypotenuse
	}

	for _, p := range points {
		w := BarycentricWeights(a, b, c, p)
		sum := w.Alpha + w.Beta + w.Gamma
		if math.Abs(sum-1) > eps {
			t.Errorf("weights at %v sum to %v, want 1", p, sum)
		}
		if w.Alpha < -eps || w.Alpha > 1+eps ||
			w.Beta < -eps || w.Beta > 1+eps ||
			w.Gamma < -eps || w.Gamma > 1+eps {
			t.Errorf("weights at %v = %+v, want all in [0,1]", p, w)
		}
	}
}

func TestBarycentricWeights_Vertices(t *testing.T) {
	a := mathutil.Vec2{2, 1}
	b := mathutil.Vec2{9, 3}
	c := mathutil.Vec2{4, 8}

	tests := []struct {
		name string
		p    mathutil.Vec2
		want Weights
	}{
		{"at a", a, Weights{1, 0, 0}},
		{"at b", b, Weights{0, 1, 0}},
		{"at c", c, Weights{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := BarycentricWeights(a, b, c, tt.p)
			if math.Abs(w.Alpha-tt.want.Alpha) > eps ||
				math.Abs(w.Beta-tt.want.Beta) > eps ||
				math.Abs(w.Gamma-tt.want.Gamma) > eps {
				t.Errorf("weights = %+v, want %+v", w, tt.want)
			}
		})
	}
}

func TestBarycentricWeights_Centroid(t *testing.T) {
	a := mathutil.Vec2{0, 0}
	b := mathutil.Vec2{6, 0}
	c := mathutil.Vec2{0, 6}
	centroid := mathutil.Vec2{2, 2}

	w := BarycentricWeights(a, b, c, centroid)
	third := 1.0 / 3.0
	if math.Abs(w.Alpha-third) > eps || math.Abs(w.Beta-third) > eps || math.Abs(w.Gamma-third) > eps {
		t.Errorf("centroid weights = %+v, want (1/3, 1/3, 1/3)", w)
	}
}

func TestBarycentricWeights_Interpolation(t *testing.T) {
	// Weights must reproduce a linear function sampled at the vertices.
	a := mathutil.Vec2{1, 2}
	b := mathutil.Vec2{8, 1}
	c := mathutil.Vec2{3, 9}
	f := func(p mathutil.Vec2) float64 { return 2*p[0] - 3*p[1] + 7 }

	for _, p := range []mathutil.Vec2{{3, 3}, {4, 5}, {2, 2.5}} {
		w := BarycentricWeights(a, b, c, p)
		got := w.Alpha*f(a) + w.Beta*f(b) + w.Gamma*f(c)
		if math.Abs(got-f(p)) > 1e-8 {
			t.Errorf("interpolated f(%v) = %v, want %v", p, got, f(p))
		}
	}
}
