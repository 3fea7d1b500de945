// Copyright 2025 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package continuous approximates distribution functions on the unit
// interval by piecewise linear functions. The empirical distributions of
// the normalized walk statistics are built from value counts, compressed
// to a bounded number of points, and evaluated or sampled through the
// piecewise linear form.
package continuous

import (
	"fmt"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/0xsoniclabs/aida-randwalk/walk"
)

// CDF evaluates a piecewise linear cumulative distribution function at x.
// The function is given as a list of points (x_i, y_i) with first point
// (0,0) and last point (1,1); between points the value is interpolated
// linearly. Arguments outside the unit interval clamp to 0 and 1.
func CDF(f [][2]float64, x float64) float64 {
	if x <= 0 {
		return 0.0
	}
	for i := 0; i < len(f)-1; i++ {
		if f[i+1][0] >= x {
			scale := (x - f[i][0]) / (f[i+1][0] - f[i][0])
			return f[i][1] + scale*(f[i+1][1]-f[i][1])
		}
	}
	return 1.0 // x is 1.0 or greater
}

// Quantile evaluates the inverse of a piecewise linear cumulative
// distribution function at probability y.
func Quantile(f [][2]float64, y float64) float64 {
	if y <= 0 {
		return 0.0
	}
	for i := 0; i < len(f)-1; i++ {
		if f[i+1][1] >= y {
			scale := (y - f[i][1]) / (f[i+1][1] - f[i][1])
			return f[i][0] + scale*(f[i+1][0]-f[i][0])
		}
	}
	return 1.0 // y is 1.0 or greater
}

// Sample draws a random sample from a piecewise linear CDF using inverse transform sampling.
func Sample(rg *rand.Rand, ecdf [][2]float64, n int64) int64 {
	return int64(float64(n) * Quantile(ecdf, rg.Float64()))
}

// Check whether the piecewise linear function is valid as a CDF.
// The function must start at (0,0) and end at (1,1).
// The points of the function must be monotonically increasing.
func Check(f [][2]float64) error {
	if len(f) < 2 {
		return fmt.Errorf("CDF must have at least start and end point")
	}
	// check start point; must be the coordinate (0,0)
	if f[0] != [2]float64{0.0, 0.0} {
		return fmt.Errorf("CDF must start at (0,0), but starts at (%v,%v)", f[0][0], f[0][1])
	}
	// check end point; must be the coordinate (1,1)
	last := len(f) - 1
	if f[last] != [2]float64{1.0, 1.0} {
		return fmt.Errorf("CDF must end at (1,1), but ends at (%v,%v)", f[last][0], f[last][1])
	}
	// check monotonicity condition of points
	for i := 0; i < len(f)-1; i++ {
		if f[i][0] >= f[i+1][0] && f[i][1] >= f[i+1][1] {
			return fmt.Errorf("CDF points must be strictly monotonically increasing, but point %v (%v,%v) is not smaller than point %v (%v,%v)", i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	return nil
}

// FromCounts computes the empirical cumulative distribution function of a
// counting statistic. The counts are indexed by the observed value; the
// mass of value k is placed at the bucket midpoint (k+0.5)/len(counts), so
// that masses at the smallest and largest value stay representable by a
// function anchored at (0,0) and (1,1). The accumulated masses use Kahan's
// summation to avoid errors for small probabilities, see
// https://en.wikipedia.org/wiki/Kahan_summation_algorithm. The resulting
// function is compressed with the Visvalingam-Whyatt algorithm to at most
// NumECDFPoints points, see
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm.
// The function panics if the resulting ECDF is not valid.
func FromCounts(counts []uint64) [][2]float64 {
	total := uint64(0)
	for _, freq := range counts {
		total += freq
	}
	if total == 0 {
		return [][2]float64{{0.0, 0.0}, {1.0, 1.0}}
	}
	domain := float64(len(counts))
	ls := orb.LineString{}
	ls = append(ls, orb.Point{0.0, 0.0})
	sumP := float64(0.0)
	// Correction term for Kahan's sum
	cP := float64(0.0)
	for value, freq := range counts {
		if freq == 0 {
			continue
		}
		f := float64(freq) / float64(total)
		yP := f - cP
		tP := sumP + yP
		cP = (tP - sumP) - yP
		sumP = tP
		x := (float64(value) + 0.5) / domain
		ls = append(ls, orb.Point{x, sumP})
	}
	ls = append(ls, orb.Point{1.0, 1.0})
	simplifier := simplify.VisvalingamKeep(walk.NumECDFPoints)
	compressed := simplifier.Simplify(ls).(orb.LineString)
	ecdf := make([][2]float64, len(compressed))
	for i := range compressed {
		ecdf[i] = [2]float64(compressed[i])
	}
	if err := Check(ecdf); err != nil {
		panic(fmt.Sprintf("FromCounts: cannot create valid CDF from counting statistics; Error %v", err))
	}
	return ecdf
}
