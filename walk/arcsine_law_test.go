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
	"math"
	"math/rand"
	"testing"

	"github.com/0xsoniclabs/aida-randwalk/logger"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/arcsine"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/gof"
)

// TestRunStudy_ArcsineLaw runs the reference study of 10000 walks with 222
// steps each and checks that the normalised statistics follow the arcsine
// law. The walk statistics live on a grid of 223 values and carry atoms of
// mass u_n ~ 0.054 at the boundary, so their distance to the continuous
// arcsine distribution cannot vanish; the distance bound of 0.09 leaves
// room for the discretisation and still rejects the uniform distribution,
// whose distance to the arcsine distribution is 0.105.
func TestRunStudy_ArcsineLaw(t *testing.T) {
	log := logger.NewLogger("Warning", "TestArcsineLaw")
	rg := rand.New(rand.NewSource(999))
	table, err := RunStudy(rg, 10_000, 222, 0.5, 0, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.NumRows() != 10_000 {
		t.Fatalf("expected 10000 rows, got %v", table.NumRows())
	}
	for _, samples := range [][]float64{table.TauSamples(), table.GammaSamples()} {
		for i, x := range samples {
			if x < 0.0 || x > 1.0 {
				t.Fatalf("normalised sample %v (%v) is outside the unit interval", i, x)
			}
		}
		result, err := gof.KolmogorovSmirnov(samples, arcsine.CDF)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Statistic > 0.09 {
			t.Fatalf("distance %v to the arcsine distribution is too large", result.Statistic)
		}
	}

	// the arcsine distribution is symmetric around one half
	summary := table.Summary()
	if mean := summary.TauNorm.GetMean(); math.Abs(mean-0.5) > 0.03 {
		t.Fatalf("mean of the normalised last-maximum time is %v; want ~0.5", mean)
	}
	if mean := summary.GammaNorm.GetMean(); math.Abs(mean-0.5) > 0.03 {
		t.Fatalf("mean of the normalised last-return time is %v; want ~0.5", mean)
	}

	// the mass piles up at the edges of the unit interval, not in the middle
	for _, samples := range [][]float64{table.TauSamples(), table.GammaSamples()} {
		edge, center := 0, 0
		for _, x := range samples {
			if x <= 0.1 || x >= 0.9 {
				edge++
			}
			if x >= 0.45 && x <= 0.55 {
				center++
			}
		}
		// arcsine mass: ~0.41 on the edge decile pair, ~0.064 on the
		// central band; the uniform distribution puts 0.2 and 0.1 there
		if float64(edge)/float64(len(samples)) < 0.3 {
			t.Fatalf("edge mass %v is too small for an arcsine-shaped sample", edge)
		}
		if float64(center)/float64(len(samples)) > 0.09 {
			t.Fatalf("central mass %v is too large for an arcsine-shaped sample", center)
		}
	}
}
