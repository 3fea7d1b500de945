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

// Package gof checks simulated walk statistics against their limiting
// distribution. The tests consume normalised samples from the unit interval
// and report the test statistic together with its p-value so that callers
// can apply their own significance level.
package gof

import (
	"fmt"
	"math"
	"sort"

	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/histogram"
	"gonum.org/v1/gonum/stat/distuv"
)

// Result holds the outcome of a goodness-of-fit test.
type Result struct {
	Statistic float64 // distance between observed and expected distribution
	PValue    float64 // probability of a distance at least this large under the null hypothesis
}

// KolmogorovSmirnov performs a one-sample Kolmogorov-Smirnov test of the
// samples against the distribution with the given CDF. The p-value uses the
// asymptotic Kolmogorov distribution with Stephens' finite-sample
// correction of the test statistic.
func KolmogorovSmirnov(samples []float64, cdf func(float64) float64) (Result, error) {
	n := len(samples)
	if n == 0 {
		return Result{}, fmt.Errorf("cannot test a distribution without samples")
	}
	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	// supremum distance between the empirical CDF and the expected CDF
	d := 0.0
	for i, x := range sorted {
		f := cdf(x)
		if up := float64(i+1)/float64(n) - f; up > d {
			d = up
		}
		if down := f - float64(i)/float64(n); down > d {
			d = down
		}
	}

	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	return Result{Statistic: d, PValue: ksProbability(lambda)}, nil
}

// ksProbability evaluates the survival function of the Kolmogorov
// distribution, Q(lambda) = 2 sum_k (-1)^(k-1) exp(-2 k^2 lambda^2). The
// series is truncated once the terms no longer contribute.
func ksProbability(lambda float64) float64 {
	if lambda <= 0.0 {
		return 1.0
	}
	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := math.Exp(-2.0 * float64(k*k) * lambda * lambda)
		sum += sign * term
		if term < 1e-12 {
			break
		}
		sign = -sign
	}
	p := 2.0 * sum
	if p < 0.0 {
		p = 0.0
	}
	if p > 1.0 {
		p = 1.0
	}
	return p
}

// ChiSquared performs Pearson's chi-squared test of the samples against the
// distribution with the given CDF. The unit interval is partitioned into
// equi-width bins; the expected count of a bin is the distribution's mass
// on the bin scaled by the number of samples. The test has bins-1 degrees
// of freedom.
func ChiSquared(samples []float64, cdf func(float64) float64, bins int) (Result, error) {
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("cannot test a distribution without samples")
	}
	h, err := histogram.New(samples, bins)
	if err != nil {
		return Result{}, err
	}
	total := float64(h.Total())
	statistic := 0.0
	for i, observed := range h.Counts() {
		lo := float64(i) / float64(bins)
		hi := float64(i+1) / float64(bins)
		expected := total * (cdf(hi) - cdf(lo))
		if expected <= 0.0 {
			return Result{}, fmt.Errorf("distribution assigns no mass to bin %v", i)
		}
		delta := expected - float64(observed)
		statistic += delta * delta / expected
	}
	dist := distuv.ChiSquared{K: float64(bins - 1)}
	return Result{Statistic: statistic, PValue: dist.Survival(statistic)}, nil
}
