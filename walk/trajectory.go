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

package walk

import (
	"fmt"
	"math/rand"
)

// Trajectory is the position sequence of a simple random walk. Position k
// is the value of the walk after k steps; position zero is the start
// position. A trajectory is immutable once constructed. The zero-step
// trajectory consisting of the start position alone is well-formed, even
// though the generators refuse to draw one.
type Trajectory struct {
	start     int64
	positions []int64
}

// NewTrajectory builds a trajectory from a start position and an explicit
// step sequence. Each step must be +1 or -1. An empty step sequence yields
// the single-point trajectory.
func NewTrajectory(start int64, steps []int) (*Trajectory, error) {
	positions := make([]int64, len(steps)+1)
	positions[0] = start
	pos := start
	for i, s := range steps {
		if s != 1 && s != -1 {
			return nil, fmt.Errorf("step %v of the walk is %v; must be +1 or -1", i, s)
		}
		pos += int64(s)
		positions[i+1] = pos
	}
	return &Trajectory{start: start, positions: positions}, nil
}

// Generate draws a random walk of n steps with up-step probability p
// starting at the given position.
func Generate(rg *rand.Rand, p float64, n int, start int64) (*Trajectory, error) {
	steps, err := SampleSteps(rg, n, p)
	if err != nil {
		return nil, err
	}
	return NewTrajectory(start, steps)
}

// Start returns the start position of the walk.
func (t *Trajectory) Start() int64 {
	return t.start
}

// NumSteps returns the number of steps of the walk.
func (t *Trajectory) NumSteps() int {
	return len(t.positions) - 1
}

// Position returns the value of the walk after the given number of steps.
func (t *Trajectory) Position(step int) int64 {
	return t.positions[step]
}

// Positions returns a copy of the position sequence of the walk including
// the start position.
func (t *Trajectory) Positions() []int64 {
	positions := make([]int64, len(t.positions))
	copy(positions, t.positions)
	return positions
}

// Times returns the step indices 0..n of the walk, pairing with Positions.
func (t *Trajectory) Times() []int {
	times := make([]int, len(t.positions))
	for i := range times {
		times[i] = i
	}
	return times
}
