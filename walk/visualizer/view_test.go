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

package visualizer

import (
	"testing"

	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetViewState_RejectsNilStudy(t *testing.T) {
	err := setViewState(nil, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "study is nil")
}

func TestSetViewState_RejectsEmptyStudy(t *testing.T) {
	err := setViewState(walk.NewTable(0.5, 16, 0, 0), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no rows")
}

func TestBuildViewState_RejectsInvalidBins(t *testing.T) {
	_, err := buildViewState(sampleStudy(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at least two")
}

func TestBuildViewState_RejectsRowsOutsideWalk(t *testing.T) {
	table := walk.NewTable(0.5, 4, 0, 0)
	table.Append(9, 0)
	_, err := buildViewState(table, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside the walk")
}

func TestBuildViewState_DerivesCurves(t *testing.T) {
	state, err := buildViewState(sampleStudy(), 8)
	require.NoError(t, err)

	require.NotNil(t, state.summary)
	assert.Equal(t, uint64(50), state.summary.Tau.GetCount())

	for _, curve := range [][][2]float64{state.tauECDF, state.gammaECDF} {
		require.NotEmpty(t, curve)
		assert.Equal(t, [2]float64{0.0, 0.0}, curve[0])
		assert.Equal(t, [2]float64{1.0, 1.0}, curve[len(curve)-1])
	}

	assert.Equal(t, 8, state.tauHist.Bins())
	assert.Equal(t, 8, state.gammaHist.Bins())
	assert.Equal(t, uint64(50), state.tauHist.Total())

	require.Len(t, state.tauDensity, densityPoints)
	require.Len(t, state.gammaDensity, densityPoints)
}

func TestBuildViewState_DegenerateSamplesHaveNoDensity(t *testing.T) {
	table := walk.NewTable(0.5, 16, 0, 0)
	for i := 0; i < 10; i++ {
		table.Append(5, 5)
	}
	state, err := buildViewState(table, 10)
	require.NoError(t, err)
	assert.Nil(t, state.tauDensity)
	assert.Nil(t, state.gammaDensity)
}

func TestCurrentView_WithoutState(t *testing.T) {
	clearView(t)
	_, err := currentView()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "study not initialised")
}
