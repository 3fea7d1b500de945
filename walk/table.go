// Copyright 2025 Fantom Foundation
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xsoniclabs/aida-randwalk/utils/analytics"
)

// Row captures the statistics of a single walk of a study.
type Row struct {
	Trial     int     `json:"trial"`     // index of the walk within the study
	Tau       int     `json:"tau"`       // step index of the last maximum
	Gamma     int     `json:"gamma"`     // step index of the last return to start
	TauNorm   float64 `json:"tauNorm"`   // tau normalized by the number of steps
	GammaNorm float64 `json:"gammaNorm"` // gamma normalized by the number of steps
}

// Table collects the rows of a Monte Carlo study together with the walk
// parameters shared by all rows. Rows are kept in trial order.
type Table struct {
	probability float64
	steps       int
	start       int64
	rows        []Row
}

// NewTable creates an empty table for walks with the given parameters. The
// capacity is a size hint for the expected number of rows.
func NewTable(p float64, n int, start int64, capacity int) *Table {
	return &Table{
		probability: p,
		steps:       n,
		start:       start,
		rows:        make([]Row, 0, capacity),
	}
}

// Append adds the statistics of the next walk to the table, deriving the
// trial index and the normalized statistics.
func (t *Table) Append(tau, gamma int) {
	n := float64(t.steps)
	t.rows = append(t.rows, Row{
		Trial:     len(t.rows),
		Tau:       tau,
		Gamma:     gamma,
		TauNorm:   float64(tau) / n,
		GammaNorm: float64(gamma) / n,
	})
}

// Probability returns the up-step probability shared by all walks of the table.
func (t *Table) Probability() float64 {
	return t.probability
}

// Steps returns the number of steps of each walk of the table.
func (t *Table) Steps() int {
	return t.steps
}

// Start returns the start position shared by all walks of the table.
func (t *Table) Start() int64 {
	return t.start
}

// NumRows returns the number of rows of the table.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Rows returns the rows of the table in trial order.
func (t *Table) Rows() []Row {
	return t.rows
}

// TauSamples returns the normalized last-maximum indices of all rows.
func (t *Table) TauSamples() []float64 {
	samples := make([]float64, len(t.rows))
	for i, r := range t.rows {
		samples[i] = r.TauNorm
	}
	return samples
}

// GammaSamples returns the normalized last-return indices of all rows.
func (t *Table) GammaSamples() []float64 {
	samples := make([]float64, len(t.rows))
	for i, r := range t.rows {
		samples[i] = r.GammaNorm
	}
	return samples
}

// Summary holds single-pass moment statistics for the numeric columns of a
// table.
type Summary struct {
	Tau       *analytics.IncrementalStats
	Gamma     *analytics.IncrementalStats
	TauNorm   *analytics.IncrementalStats
	GammaNorm *analytics.IncrementalStats
}

// Summary computes the per-column moment statistics of the table.
func (t *Table) Summary() *Summary {
	s := &Summary{
		Tau:       analytics.NewIncrementalStats(),
		Gamma:     analytics.NewIncrementalStats(),
		TauNorm:   analytics.NewIncrementalStats(),
		GammaNorm: analytics.NewIncrementalStats(),
	}
	for _, r := range t.rows {
		s.Tau.Update(float64(r.Tau))
		s.Gamma.Update(float64(r.Gamma))
		s.TauNorm.Update(r.TauNorm)
		s.GammaNorm.Update(r.GammaNorm)
	}
	return s
}

// StudyJSON is the JSON struct for a Monte Carlo study of walk statistics.
type StudyJSON struct {
	FileId      string  `json:"FileId"`      // file identification
	Probability float64 `json:"probability"` // probability of an up-step
	Steps       int     `json:"steps"`       // number of steps of each walk
	Trials      int     `json:"trials"`      // number of walks of the study
	Start       int64   `json:"start"`       // start position of the walks
	Rows        []Row   `json:"rows"`        // per-walk statistics in trial order
}

const studyFileID = "randwalk-study"

// MarshalJSON ensures the FileId is populated before serialising.
func (s StudyJSON) MarshalJSON() ([]byte, error) {
	if s.FileId == "" {
		s.FileId = studyFileID
	}
	type alias StudyJSON
	return json.Marshal(alias(s))
}

// UnmarshalJSON validates the FileId while deserialising.
func (s *StudyJSON) UnmarshalJSON(data []byte) error {
	type alias StudyJSON
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.FileId == "" {
		return fmt.Errorf("StudyJSON: missing FileId")
	}
	if tmp.FileId != studyFileID {
		return fmt.Errorf("StudyJSON: unexpected FileId %q", tmp.FileId)
	}
	*s = StudyJSON(tmp)
	return nil
}

// JSON produces the JSON struct for the table.
func (t *Table) JSON() StudyJSON {
	return StudyJSON{
		FileId:      studyFileID,
		Probability: t.probability,
		Steps:       t.steps,
		Trials:      len(t.rows),
		Start:       t.start,
		Rows:        t.rows,
	}
}

// WriteJSON writes the table as a study file in JSON format.
func (t *Table) WriteJSON(filename string) (err error) {
	f, fErr := os.Create(filename)
	if fErr != nil {
		return fmt.Errorf("cannot open for writing JSON file; %v", fErr)
	}
	defer func(f *os.File) {
		err = errors.Join(err, f.Close())
	}(f)
	jOut, err := json.MarshalIndent(t.JSON(), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to convert JSON; %v", err)
	}
	_, err = fmt.Fprintln(f, string(jOut))
	if err != nil {
		return fmt.Errorf("failed to write file; %v", err)
	}
	return nil
}

// ReadTable reads a study file in JSON format and reconstructs its table.
func ReadTable(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed opening study file %v; %v", filename, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed reading study file; %v", err)
	}
	var study StudyJSON
	err = json.Unmarshal(contents, &study)
	if err != nil {
		return nil, fmt.Errorf("cannot unmarshal study; %v", err)
	}
	if study.FileId != studyFileID {
		return nil, fmt.Errorf("file %v is not a study file", filename)
	}
	if study.Steps <= 0 {
		return nil, fmt.Errorf("study file %v has an invalid number of steps (%v)", filename, study.Steps)
	}
	table := &Table{
		probability: study.Probability,
		steps:       study.Steps,
		start:       study.Start,
		rows:        study.Rows,
	}
	return table, nil
}
