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

// Package histogram bins normalized samples from the unit interval into
// equi-width buckets. The bucket densities are normalized so that they are
// comparable against a probability density function.
package histogram

import "fmt"

// Histogram holds the bucket counts of binned samples.
type Histogram struct {
	bins   int
	counts []uint64
	total  uint64
}

// New bins the given samples into the given number of equi-width buckets
// over the unit interval. A sample equal to one falls into the last bucket;
// samples outside the unit interval are rejected.
func New(samples []float64, bins int) (*Histogram, error) {
	if bins < 2 {
		return nil, fmt.Errorf("number of histogram bins (%v) must be at least two", bins)
	}
	h := &Histogram{
		bins:   bins,
		counts: make([]uint64, bins),
	}
	for i, x := range samples {
		if x < 0.0 || x > 1.0 {
			return nil, fmt.Errorf("sample %v (%v) is outside the unit interval", i, x)
		}
		idx := int(x * float64(bins))
		if idx >= bins {
			idx = bins - 1
		}
		h.counts[idx]++
		h.total++
	}
	return h, nil
}

// Bins returns the number of buckets of the histogram.
func (h *Histogram) Bins() int {
	return h.bins
}

// Total returns the number of binned samples.
func (h *Histogram) Total() uint64 {
	return h.total
}

// Counts returns the bucket counts of the histogram.
func (h *Histogram) Counts() []uint64 {
	counts := make([]uint64, len(h.counts))
	copy(counts, h.counts)
	return counts
}

// Centers returns the bucket midpoints of the histogram.
func (h *Histogram) Centers() []float64 {
	centers := make([]float64, h.bins)
	for i := range centers {
		centers[i] = (float64(i) + 0.5) / float64(h.bins)
	}
	return centers
}

// Densities returns the normalized bucket heights. The heights integrate
// to one over the unit interval, making them comparable against a
// probability density function.
func (h *Histogram) Densities() []float64 {
	densities := make([]float64, h.bins)
	if h.total == 0 {
		return densities
	}
	for i, c := range h.counts {
		densities[i] = float64(c) * float64(h.bins) / float64(h.total)
	}
	return densities
}
