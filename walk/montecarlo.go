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
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/0xsoniclabs/aida-randwalk/logger"
	"github.com/0xsoniclabs/aida-randwalk/utils"
)

// checkStudyParameters validates the parameters of a Monte Carlo study
// before any walk is simulated.
func checkStudyParameters(m, n int, p float64) error {
	if m <= 0 {
		return fmt.Errorf("number of trials (%v) must be greater than zero", m)
	}
	return checkStepParameters(n, p)
}

// RunStudy simulates m independent walks of n steps each and collects their
// statistics in a table. The walks are simulated sequentially on the given
// random generator, so a fixed seed reproduces the table bit for bit.
func RunStudy(rg *rand.Rand, m, n int, p float64, start int64, log logger.Logger) (*Table, error) {
	if err := checkStudyParameters(m, n, p); err != nil {
		return nil, err
	}

	begin := time.Now()
	table := NewTable(p, n, start, m)
	pt := utils.NewProgressTracker(m, log)
	for i := 0; i < m; i++ {
		t, err := Generate(rg, p, n, start)
		if err != nil {
			return nil, err
		}
		table.Append(Tau(t), Gamma(t))
		pt.PrintProgress()
	}

	log.Noticef("Total elapsed time: %.3f s, simulated %v walks", time.Since(begin).Seconds(), m)
	return table, nil
}

// RunStudyParallel distributes the walks of a study over a fixed number of
// worker goroutines. Each worker derives its own random stream from the
// root seed and fills a partial table; the partial tables are merged in
// trial order after all workers complete. The result is deterministic for
// a given seed and worker count.
func RunStudyParallel(seed int64, workers, m, n int, p float64, start int64, log logger.Logger) (*Table, error) {
	if workers < 1 {
		return nil, fmt.Errorf("number of workers (%v) must be greater than zero", workers)
	}
	if err := checkStudyParameters(m, n, p); err != nil {
		return nil, err
	}

	// derive one child seed per worker from the root seed
	rg := rand.New(rand.NewSource(seed))
	seeds := make([]int64, workers)
	for w := 0; w < workers; w++ {
		seeds[w] = rg.Int63()
	}

	begin := time.Now()
	partials := make([]*Table, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	lo := 0
	for w := 0; w < workers; w++ {
		// partition the trials into contiguous chunks
		size := m / workers
		if w < m%workers {
			size++
		}
		hi := lo + size
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			wrg := rand.New(rand.NewSource(seeds[w]))
			part := NewTable(p, n, start, hi-lo)
			for i := 0; i < hi-lo; i++ {
				t, err := Generate(wrg, p, n, start)
				if err != nil {
					errs[w] = err
					return
				}
				part.Append(Tau(t), Gamma(t))
			}
			partials[w] = part
			log.Debugf("worker %v finished walks %v..%v", w, lo, hi-1)
		}(w, lo, hi)
		lo = hi
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// merge the partial tables in trial order
	table := NewTable(p, n, start, m)
	for _, part := range partials {
		for _, row := range part.Rows() {
			table.Append(row.Tau, row.Gamma)
		}
	}

	log.Noticef("Total elapsed time: %.3f s, simulated %v walks on %v workers", time.Since(begin).Seconds(), m, workers)
	return table, nil
}
