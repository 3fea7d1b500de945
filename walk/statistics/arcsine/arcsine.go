// Copyright 2024 Fantom Foundation
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

package arcsine

import (
	"math"
	"math/rand"
)

// Package for the arcsine distribution on the unit interval. The normalized
// last-maximum and last-return times of a symmetric random walk converge in
// distribution to this law, which coincides with Beta(1/2,1/2).

// Moments of the arcsine distribution.
const (
	Mean     = 0.5
	Variance = 0.125
)

// PDF is the probability density function of the arcsine distribution. The
// density diverges at both ends of the unit interval; outside the open
// interval the density is zero.
func PDF(x float64) float64 {
	if x <= 0.0 || x >= 1.0 {
		return 0.0
	}
	return 1.0 / (math.Pi * math.Sqrt(x*(1.0-x)))
}

// CDF is the cumulative distribution function of the arcsine distribution.
func CDF(x float64) float64 {
	if x <= 0.0 {
		return 0.0
	}
	if x >= 1.0 {
		return 1.0
	}
	return 2.0 / math.Pi * math.Asin(math.Sqrt(x))
}

// Quantile is the inverse cumulative distribution function.
func Quantile(p float64) float64 {
	if p <= 0.0 {
		return 0.0
	}
	if p >= 1.0 {
		return 1.0
	}
	s := math.Sin(math.Pi * p / 2.0)
	return s * s
}

// Sample samples the distribution and discretizes the result for numbers in the range between 0 and n-1.
func Sample(rg *rand.Rand, n int64) int64 {
	y := int64(float64(n) * Quantile(rg.Float64()))
	if y < 0 {
		return 0
	} else if y >= n {
		return n - 1
	} else {
		return y
	}
}

// ToECDF is a piecewise linear representation of the cumulative distribution function.
func ToECDF(n int) [][2]float64 {
	// The points are equi-distantly spread, i.e., 1/n.
	fn := [][2]float64{}
	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n)
		y := CDF(x)
		fn = append(fn, [2]float64{x, y})
	}
	return fn
}
