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

// Tau returns the step index of the last maximum of the trajectory. When
// the maximum value is attained several times, the largest index wins; the
// tie-break matters because the normalized index follows the arcsine law
// only for a fixed occurrence rule. For the single-point trajectory the
// index is zero.
func Tau(t *Trajectory) int {
	index := 0
	max := t.positions[0]
	for i, x := range t.positions {
		if x >= max {
			max = x
			index = i
		}
	}
	return index
}

// Gamma returns the step index of the last visit to the start position of
// the trajectory. The comparison is against the actual start value, so a
// walk translated to another origin keeps the same gamma. Index zero is a
// visit, hence a walk that never returns has gamma zero.
func Gamma(t *Trajectory) int {
	index := 0
	for i, x := range t.positions {
		if x == t.start {
			index = i
		}
	}
	return index
}
