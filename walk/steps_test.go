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

package walk

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

// TestSampleSteps_LengthAndValues checks the shape of a sampled step sequence.
func TestSampleSteps_LengthAndValues(t *testing.T) {
	rg := rand.New(rand.NewSource(999))
	steps, err := SampleSteps(rg, 1000, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 1000 {
		t.Fatalf("expected 1000 steps, got %v", len(steps))
	}
	for i, s := range steps {
		if s != 1 && s != -1 {
			t.Fatalf("step %v is %v; must be +1 or -1", i, s)
		}
	}
}

// TestSampleSteps_InvalidParameters checks that parameters outside their
// domain are rejected before any sampling happens.
func TestSampleSteps_InvalidParameters(t *testing.T) {
	rg := rand.New(rand.NewSource(999))
	if _, err := SampleSteps(rg, 0, 0.5); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := SampleSteps(rg, -5, 0.5); err == nil {
		t.Fatalf("expected error for negative steps")
	}
	for _, p := range []float64{0.0, 1.0, -0.1, 1.7} {
		if _, err := SampleSteps(rg, 10, p); err == nil {
			t.Fatalf("expected error for probability %v", p)
		}
	}
}

// TestSampleSteps_Deterministic checks that a fixed seed reproduces the
// step sequence.
func TestSampleSteps_Deterministic(t *testing.T) {
	a, err := SampleSteps(rand.New(rand.NewSource(4711)), 500, 0.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := SampleSteps(rand.New(rand.NewSource(4711)), 500, 0.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %v differs between runs with the same seed", i)
		}
	}
}

// TestSampleSteps_Unbiased performs a chi-squared test that up-steps occur
// with the configured probability.
func TestSampleSteps_Unbiased(t *testing.T) {
	rg := rand.New(rand.NewSource(999))
	for _, p := range []float64{0.1, 0.5, 0.9} {
		n := 100_000
		steps, err := SampleSteps(rg, n, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		up := 0
		for _, s := range steps {
			if s == 1 {
				up++
			}
		}

		// compute chi-squared value for the up/down counts
		expectedUp := float64(n) * p
		expectedDown := float64(n) * (1.0 - p)
		errUp := float64(up) - expectedUp
		errDown := float64(n-up) - expectedDown
		chi2 := errUp*errUp/expectedUp + errDown*errDown/expectedDown

		// Perform statistical test whether the step distribution is unbiased
		// with an alpha of 0.001 and one degree of freedom.
		alpha := 0.001
		chi2Critical := distuv.ChiSquared{K: 1, Src: nil}.Quantile(1.0 - alpha)
		if chi2 > chi2Critical {
			t.Fatalf("step sampling is biased for probability %v", p)
		}
	}
}
