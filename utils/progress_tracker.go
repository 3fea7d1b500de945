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

package utils

import (
	"time"

	"github.com/0xsoniclabs/aida-randwalk/logger"
)

// OperationThreshold is the number of operations between two progress reports.
const OperationThreshold = 1_000

// ProgressTracker reports progress of a long running operation in regular
// intervals together with a smoothed rate and an estimated time of arrival.
type ProgressTracker struct {
	step   int       // number of completed operations
	target int       // total number of operations
	start  time.Time // start time of the operation
	last   time.Time // time of the previous report
	rate   float64   // smoothed operations per second
	log    logger.Logger
}

// NewProgressTracker creates a new progress tracker for the given number of
// operations. The first report is produced after OperationThreshold steps.
func NewProgressTracker(target int, log logger.Logger) *ProgressTracker {
	now := time.Now()
	return &ProgressTracker{
		step:   0,
		target: target,
		start:  now,
		last:   now,
		rate:   0.0,
		log:    log,
	}
}

// PrintProgress counts one completed operation and emits a report whenever
// the operation threshold is reached.
func (pt *ProgressTracker) PrintProgress() {
	pt.step++
	if pt.step%OperationThreshold == 0 {
		now := time.Now()
		currentRate := OperationThreshold / now.Sub(pt.last).Seconds()
		pt.rate = currentRate*0.1 + pt.rate*0.9
		pt.last = now
		progress := float64(pt.step) / float64(pt.target)
		elapsed := now.Sub(pt.start).Round(time.Second)
		eta := time.Duration(float64(pt.target-pt.step)/pt.rate) * time.Second
		pt.log.Infof("Progress %.1f%% (%d of %d); elapsed: %v, eta: %v, rate: %.1f op/s", progress*100.0, pt.step, pt.target, elapsed, eta, pt.rate)
	}
}
