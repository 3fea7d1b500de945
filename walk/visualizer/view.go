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
	"fmt"
	"sync"

	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/continuous"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/histogram"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/kde"
)

// densityPoints is the grid resolution of the smoothed density curves.
const densityPoints = 201

type viewState struct {
	study        *walk.Table
	summary      *walk.Summary
	tauECDF      [][2]float64
	gammaECDF    [][2]float64
	tauDensity   [][2]float64
	gammaDensity [][2]float64
	tauHist      *histogram.Histogram
	gammaHist    *histogram.Histogram
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(study *walk.Table, bins int) error {
	if study == nil {
		return fmt.Errorf("visualizer: study is nil")
	}
	derived, err := buildViewState(study, bins)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(study *walk.Table, bins int) (*viewState, error) {
	if study.NumRows() == 0 {
		return nil, fmt.Errorf("visualizer: study has no rows")
	}
	steps := study.Steps()
	for _, row := range study.Rows() {
		if row.Tau < 0 || row.Tau > steps || row.Gamma < 0 || row.Gamma > steps {
			return nil, fmt.Errorf("visualizer: row %v has statistics outside the walk", row.Trial)
		}
	}

	tauHist, err := histogram.New(study.TauSamples(), bins)
	if err != nil {
		return nil, fmt.Errorf("visualizer: last-maximum histogram: %w", err)
	}
	gammaHist, err := histogram.New(study.GammaSamples(), bins)
	if err != nil {
		return nil, fmt.Errorf("visualizer: last-return histogram: %w", err)
	}

	return &viewState{
		study:        study,
		summary:      study.Summary(),
		tauECDF:      statisticECDF(study, func(r walk.Row) int { return r.Tau }),
		gammaECDF:    statisticECDF(study, func(r walk.Row) int { return r.Gamma }),
		tauDensity:   statisticDensity(study.TauSamples()),
		gammaDensity: statisticDensity(study.GammaSamples()),
		tauHist:      tauHist,
		gammaHist:    gammaHist,
	}, nil
}

// statisticECDF derives the empirical distribution of one step-index
// statistic mapped to the unit interval.
func statisticECDF(study *walk.Table, pick func(walk.Row) int) [][2]float64 {
	counts := make([]uint64, study.Steps()+1)
	for _, row := range study.Rows() {
		counts[pick(row)]++
	}
	return continuous.FromCounts(counts)
}

// statisticDensity smooths the samples of one statistic. Degenerate samples
// have no smooth density; the histogram still shows their mass.
func statisticDensity(samples []float64) [][2]float64 {
	curve, err := kde.Estimate(samples, densityPoints)
	if err != nil {
		return nil
	}
	return curve
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: study not initialised")
	}
	return currentState, nil
}
