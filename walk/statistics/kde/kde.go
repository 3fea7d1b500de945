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

// Package kde smooths samples from the unit interval into a continuous
// density curve with a Gaussian kernel. The curve is evaluated on an
// equi-distant grid for charting next to closed-form densities.
package kde

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bandwidth returns Silverman's rule-of-thumb bandwidth for the samples:
// 0.9 min(sigma, IQR/1.34) n^(-1/5). The spread estimate takes the smaller
// of the standard deviation and the rescaled interquartile range so that a
// heavy-tailed or bimodal sample is not oversmoothed.
func Bandwidth(samples []float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0.0
	}
	sigma := stat.StdDev(samples, nil)

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)
	iqr := stat.Quantile(0.75, stat.Empirical, sorted, nil) - stat.Quantile(0.25, stat.Empirical, sorted, nil)

	spread := sigma
	if scaled := iqr / 1.34; scaled > 0.0 && scaled < spread {
		spread = scaled
	}
	return 0.9 * spread * math.Pow(float64(n), -0.2)
}

// Estimate evaluates the Gaussian kernel density estimate of the samples on
// an equi-distant grid of the given number of points over the unit
// interval. The bandwidth follows Silverman's rule.
func Estimate(samples []float64, points int) ([][2]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("cannot estimate a density without samples")
	}
	if points < 2 {
		return nil, fmt.Errorf("number of grid points (%v) must be at least two", points)
	}
	h := Bandwidth(samples)
	if h <= 0.0 {
		return nil, fmt.Errorf("bandwidth of the density estimate is zero; samples are degenerate")
	}

	kernel := distuv.UnitNormal
	norm := 1.0 / (float64(len(samples)) * h)
	curve := make([][2]float64, points)
	for j := 0; j < points; j++ {
		x := float64(j) / float64(points-1)
		density := 0.0
		for _, s := range samples {
			density += kernel.Prob((x - s) / h)
		}
		curve[j] = [2]float64{x, norm * density}
	}
	return curve, nil
}
