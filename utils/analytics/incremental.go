// Copyright 2025 Sonic Labs
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

// Package analytics provides numerically stable single-pass statistics.
package analytics

import (
	"encoding/json"
	"math"

	umath "github.com/0xsoniclabs/aida-randwalk/utils/math"
)

// IncrementalStats collects count, extrema and the first four central
// moments of a stream of observations in a single pass. The sum is kept
// with Kahan compensation, the moments with the incremental update of
// Pebay so that long streams do not lose precision.
type IncrementalStats struct {
	count uint64
	min   float64
	max   float64

	ksum float64
	c    float64

	m1 float64
	m2 float64
	m3 float64
	m4 float64
}

// NewIncrementalStats creates an empty statistics accumulator.
func NewIncrementalStats() *IncrementalStats {
	return &IncrementalStats{}
}

// Update incorporates a new observation into the running statistics.
func (s *IncrementalStats) Update(x float64) {
	if s.count == 0 {
		s.min = x
		s.max = x
	} else {
		s.min = umath.Min(s.min, x)
		s.max = umath.Max(s.max, x)
	}

	// compensated summation
	y := x - s.c
	t := s.ksum + y
	s.c = (t - s.ksum) - y
	s.ksum = t

	n0 := float64(s.count)
	s.count++
	n := float64(s.count)

	delta := x - s.m1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n0

	s.m1 += deltaN
	s.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term1*deltaN*(n-2) - 3*deltaN*s.m2
	s.m2 += term1
}

// GetCount returns the number of observations seen so far.
func (s *IncrementalStats) GetCount() uint64 {
	return s.count
}

// GetMin returns the smallest observation, or zero for an empty stream.
func (s *IncrementalStats) GetMin() float64 {
	return s.min
}

// GetMax returns the largest observation, or zero for an empty stream.
func (s *IncrementalStats) GetMax() float64 {
	return s.max
}

// GetSum returns the compensated sum of all observations.
func (s *IncrementalStats) GetSum() float64 {
	return s.ksum
}

// GetMean returns the arithmetic mean of the observations.
func (s *IncrementalStats) GetMean() float64 {
	return s.m1
}

// GetVariance returns the unbiased sample variance.
func (s *IncrementalStats) GetVariance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count-1)
}

// GetStandardDeviation returns the square root of the sample variance.
func (s *IncrementalStats) GetStandardDeviation() float64 {
	return math.Sqrt(s.GetVariance())
}

// GetSkewness returns the sample skewness of the observations.
func (s *IncrementalStats) GetSkewness() float64 {
	if s.m2 == 0 {
		return 0
	}
	return math.Sqrt(float64(s.count)) * s.m3 / math.Pow(s.m2, 1.5)
}

// GetKurtosis returns the excess kurtosis of the observations.
func (s *IncrementalStats) GetKurtosis() float64 {
	if s.m2 == 0 {
		return 0
	}
	return float64(s.count)*s.m4/(s.m2*s.m2) - 3.0
}

func (s IncrementalStats) String() string {
	str, _ := json.Marshal(s)
	return string(str)
}
