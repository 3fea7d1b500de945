package walk

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrajectoryJSONMarshalSetsFileID(t *testing.T) {
	traj := TrajectoryJSON{}
	bytes, err := json.Marshal(traj)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var decoded TrajectoryJSON
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if decoded.FileId != trajectoryFileID {
		t.Fatalf("expected FileId %q, got %q", trajectoryFileID, decoded.FileId)
	}
}

func TestTrajectoryJSONUnmarshalRejectsForeignFileID(t *testing.T) {
	var traj TrajectoryJSON
	if err := json.Unmarshal([]byte(`{"FileId":"stats"}`), &traj); err == nil {
		t.Fatalf("expected error for foreign FileId")
	}
	if err := json.Unmarshal([]byte(`{"steps":3}`), &traj); err == nil {
		t.Fatalf("expected error for missing FileId")
	}
}

func TestTrajectory_WriteReadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	traj, err := NewTrajectory(-2, []int{1, 1, -1, 1, -1})
	assert.NoError(t, err)

	file := tempDir + "/trajectory.json"
	err = traj.WriteJSON(file)
	assert.NoError(t, err)

	got, err := ReadTrajectory(file)
	assert.NoError(t, err)
	assert.Equal(t, traj.Start(), got.Start())
	assert.Equal(t, traj.NumSteps(), got.NumSteps())
	assert.Equal(t, traj.Positions(), got.Positions())

	// error path: write to a directory
	err = traj.WriteJSON(tempDir)
	assert.Error(t, err)
}

func TestReadTrajectory_Errors(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("no exist", func(t *testing.T) {
		traj, err := ReadTrajectory(tempDir + "/1234.json")
		assert.Error(t, err)
		assert.Nil(t, traj)
	})

	t.Run("no json", func(t *testing.T) {
		file := tempDir + "/garbage.json"
		if err := os.WriteFile(file, []byte("not json"), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		traj, err := ReadTrajectory(file)
		assert.Error(t, err)
		assert.Nil(t, traj)
	})

	t.Run("no positions", func(t *testing.T) {
		file := tempDir + "/empty.json"
		payload := `{"FileId":"randwalk-trajectory","start":0,"steps":0,"times":[],"positions":[]}`
		if err := os.WriteFile(file, []byte(payload), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		traj, err := ReadTrajectory(file)
		assert.Error(t, err)
		assert.Nil(t, traj)
	})

	t.Run("steps mismatch", func(t *testing.T) {
		file := tempDir + "/mismatch.json"
		payload := `{"FileId":"randwalk-trajectory","start":0,"steps":3,"times":[0,1],"positions":[0,1]}`
		if err := os.WriteFile(file, []byte(payload), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		traj, err := ReadTrajectory(file)
		assert.Error(t, err)
		assert.Nil(t, traj)
	})

	t.Run("start mismatch", func(t *testing.T) {
		file := tempDir + "/start.json"
		payload := `{"FileId":"randwalk-trajectory","start":5,"steps":1,"times":[0,1],"positions":[0,1]}`
		if err := os.WriteFile(file, []byte(payload), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		traj, err := ReadTrajectory(file)
		assert.Error(t, err)
		assert.Nil(t, traj)
	})

	t.Run("non-unit increment", func(t *testing.T) {
		file := tempDir + "/jump.json"
		payload := `{"FileId":"randwalk-trajectory","start":0,"steps":2,"times":[0,1,2],"positions":[0,2,3]}`
		if err := os.WriteFile(file, []byte(payload), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		traj, err := ReadTrajectory(file)
		assert.Error(t, err)
		assert.Nil(t, traj)
	})

	t.Run("single point survives", func(t *testing.T) {
		file := tempDir + "/point.json"
		payload := `{"FileId":"randwalk-trajectory","start":7,"steps":0,"times":[0],"positions":[7]}`
		if err := os.WriteFile(file, []byte(payload), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		traj, err := ReadTrajectory(file)
		assert.NoError(t, err)
		assert.Equal(t, 0, traj.NumSteps())
		assert.Equal(t, int64(7), traj.Start())
	})
}
