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

package analytics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncrementalStats_Update(t *testing.T) {
	stats := NewIncrementalStats()
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		stats.Update(x)
	}

	assert.Equal(t, uint64(8), stats.GetCount())
	assert.Equal(t, 2.0, stats.GetMin())
	assert.Equal(t, 9.0, stats.GetMax())
	assert.InDelta(t, 40.0, stats.GetSum(), 1e-12)
	assert.InDelta(t, 5.0, stats.GetMean(), 1e-12)
	assert.InDelta(t, 32.0/7.0, stats.GetVariance(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), stats.GetStandardDeviation(), 1e-12)
	assert.InDelta(t, 0.65625, stats.GetSkewness(), 1e-12)
	assert.InDelta(t, -0.21875, stats.GetKurtosis(), 1e-12)
}

func TestIncrementalStats_Empty(t *testing.T) {
	stats := NewIncrementalStats()

	assert.Equal(t, uint64(0), stats.GetCount())
	assert.Equal(t, 0.0, stats.GetVariance())
	assert.Equal(t, 0.0, stats.GetStandardDeviation())
	assert.Equal(t, 0.0, stats.GetSkewness())
	assert.Equal(t, 0.0, stats.GetKurtosis())
}

func TestIncrementalStats_ConstantStream(t *testing.T) {
	stats := NewIncrementalStats()
	for i := 0; i < 5; i++ {
		stats.Update(3)
	}

	assert.Equal(t, 3.0, stats.GetMean())
	assert.Equal(t, 0.0, stats.GetVariance())
	assert.Equal(t, 0.0, stats.GetSkewness())
	assert.Equal(t, 0.0, stats.GetKurtosis())
}

func TestIncrementalStats_String(t *testing.T) {
	obj := IncrementalStats{
		count: 10,
		min:   0,
		max:   0,
		ksum:  0,
		c:     0,
		m1:    0,
		m2:    0,
		m3:    0,
		m4:    0,
	}

	str, err := json.Marshal(obj) //nolint:staticcheck // SA9005: ignore for test comparison
	assert.NoError(t, err)
	assert.Equal(t, string(str), obj.String())
}
