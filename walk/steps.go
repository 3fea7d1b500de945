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

// Package walk simulates one-dimensional simple random walks and computes
// the arcsine-law statistics of their trajectories. A walk of n steps moves
// up by one with probability p and down by one otherwise; the package
// derives the step index of the last maximum (tau) and of the last return
// to the start position (gamma) and runs Monte Carlo studies of their
// distributions. All randomness enters through an injected random generator
// so that runs are reproducible under a fixed seed.
package walk

import (
	"fmt"
	"math/rand"
)

// checkStepParameters validates the parameters of a walk. The number of
// steps must be positive and the up-step probability must lie strictly
// between zero and one.
func checkStepParameters(n int, p float64) error {
	if n <= 0 {
		return fmt.Errorf("number of steps (%v) must be greater than zero", n)
	}
	if p <= 0.0 || p >= 1.0 {
		return fmt.Errorf("step probability (%v) must be in the open interval (0,1)", p)
	}
	return nil
}

// SampleSteps draws the step sequence of a simple random walk with n steps.
// Each step is +1 with probability p and -1 otherwise. The steps are drawn
// from the given random generator; no other source of randomness is used.
func SampleSteps(rg *rand.Rand, n int, p float64) ([]int, error) {
	if err := checkStepParameters(n, p); err != nil {
		return nil, err
	}
	steps := make([]int, n)
	for i := 0; i < n; i++ {
		if rg.Float64() < p {
			steps[i] = 1
		} else {
			steps[i] = -1
		}
	}
	return steps, nil
}
