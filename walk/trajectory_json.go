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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// TrajectoryJSON is the JSON struct for a single simulated walk.
type TrajectoryJSON struct {
	FileId    string  `json:"FileId"`    // file identification
	Start     int64   `json:"start"`     // start position of the walk
	Steps     int     `json:"steps"`     // number of steps of the walk
	Times     []int   `json:"times"`     // step indices 0..n
	Positions []int64 `json:"positions"` // position after each step
}

const trajectoryFileID = "randwalk-trajectory"

// MarshalJSON ensures the FileId is populated before serialising.
func (t TrajectoryJSON) MarshalJSON() ([]byte, error) {
	if t.FileId == "" {
		t.FileId = trajectoryFileID
	}
	type alias TrajectoryJSON
	return json.Marshal(alias(t))
}

// UnmarshalJSON validates the FileId while deserialising.
func (t *TrajectoryJSON) UnmarshalJSON(data []byte) error {
	type alias TrajectoryJSON
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.FileId == "" {
		return fmt.Errorf("TrajectoryJSON: missing FileId")
	}
	if tmp.FileId != trajectoryFileID {
		return fmt.Errorf("TrajectoryJSON: unexpected FileId %q", tmp.FileId)
	}
	*t = TrajectoryJSON(tmp)
	return nil
}

// JSON produces the JSON struct for the trajectory.
func (t *Trajectory) JSON() TrajectoryJSON {
	return TrajectoryJSON{
		FileId:    trajectoryFileID,
		Start:     t.start,
		Steps:     t.NumSteps(),
		Times:     t.Times(),
		Positions: t.Positions(),
	}
}

// WriteJSON writes the trajectory as a JSON file.
func (t *Trajectory) WriteJSON(filename string) (err error) {
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

// ReadTrajectory reads a trajectory file in JSON format and reconstructs the
// walk. The position sequence is re-validated by deriving the steps, so a
// file with non-unit increments is rejected.
func ReadTrajectory(filename string) (*Trajectory, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed opening trajectory file %v; %v", filename, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed reading trajectory file; %v", err)
	}
	var traj TrajectoryJSON
	err = json.Unmarshal(contents, &traj)
	if err != nil {
		return nil, fmt.Errorf("cannot unmarshal trajectory; %v", err)
	}
	if len(traj.Positions) == 0 {
		return nil, fmt.Errorf("trajectory file %v has no positions", filename)
	}
	if traj.Steps != len(traj.Positions)-1 {
		return nil, fmt.Errorf("trajectory file %v announces %v steps but has %v positions", filename, traj.Steps, len(traj.Positions))
	}
	if traj.Positions[0] != traj.Start {
		return nil, fmt.Errorf("trajectory file %v starts at %v instead of its start position %v", filename, traj.Positions[0], traj.Start)
	}
	steps := make([]int, traj.Steps)
	for i := range steps {
		steps[i] = int(traj.Positions[i+1] - traj.Positions[i])
	}
	return NewTrajectory(traj.Start, steps)
}
