package walk

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_AppendDerivesTrialAndNorms(t *testing.T) {
	table := NewTable(0.5, 10, 0, 2)
	table.Append(7, 4)
	table.Append(10, 0)
	rows := table.Rows()
	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, Row{Trial: 0, Tau: 7, Gamma: 4, TauNorm: 0.7, GammaNorm: 0.4}, rows[0])
	assert.Equal(t, Row{Trial: 1, Tau: 10, Gamma: 0, TauNorm: 1.0, GammaNorm: 0.0}, rows[1])
}

func TestTable_Samples(t *testing.T) {
	table := NewTable(0.5, 4, 0, 3)
	table.Append(0, 4)
	table.Append(2, 2)
	table.Append(4, 0)
	assert.Equal(t, []float64{0.0, 0.5, 1.0}, table.TauSamples())
	assert.Equal(t, []float64{1.0, 0.5, 0.0}, table.GammaSamples())
}

func TestTable_SummaryMoments(t *testing.T) {
	table := NewTable(0.5, 4, 0, 3)
	table.Append(0, 0)
	table.Append(2, 2)
	table.Append(4, 4)
	s := table.Summary()
	assert.Equal(t, uint64(3), s.Tau.GetCount())
	assert.Equal(t, 0.0, s.Tau.GetMin())
	assert.Equal(t, 4.0, s.Tau.GetMax())
	assert.Equal(t, 2.0, s.Tau.GetMean())
	assert.Equal(t, 4.0, s.Tau.GetVariance())
	assert.Equal(t, 0.5, s.TauNorm.GetMean())
	assert.Equal(t, 2.0, s.Gamma.GetMean())
	assert.Equal(t, 0.5, s.GammaNorm.GetMean())
}

func TestStudyJSONMarshalSetsFileID(t *testing.T) {
	study := StudyJSON{}
	bytes, err := json.Marshal(study)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var decoded StudyJSON
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if decoded.FileId != studyFileID {
		t.Fatalf("expected FileId %q, got %q", studyFileID, decoded.FileId)
	}
}

func TestStudyJSONUnmarshalRejectsInvalidFileID(t *testing.T) {
	data := []byte(`{"FileId":"invalid"}`)
	var study StudyJSON
	if err := json.Unmarshal(data, &study); err == nil {
		t.Fatalf("expected error for invalid FileId")
	}
}

func TestStudyJSONUnmarshalRejectsMissingFileID(t *testing.T) {
	data := []byte(`{"steps":5}`)
	var study StudyJSON
	if err := json.Unmarshal(data, &study); err == nil {
		t.Fatalf("expected error for missing FileId")
	}
}

func TestTable_WriteReadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	table := NewTable(0.25, 8, -1, 4)
	table.Append(3, 6)
	table.Append(8, 0)
	table.Append(0, 8)

	file := tempDir + "/study.json"
	err := table.WriteJSON(file)
	assert.NoError(t, err)

	got, err := ReadTable(file)
	assert.NoError(t, err)
	assert.Equal(t, table.Probability(), got.Probability())
	assert.Equal(t, table.Steps(), got.Steps())
	assert.Equal(t, table.Start(), got.Start())
	assert.Equal(t, table.Rows(), got.Rows())

	// error path: write to a directory
	err = table.WriteJSON(tempDir)
	assert.Error(t, err)
}

func TestReadTable_Errors(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("no exist", func(t *testing.T) {
		table, err := ReadTable(tempDir + "/1234.json")
		assert.Error(t, err)
		assert.Nil(t, table)
	})

	t.Run("no json", func(t *testing.T) {
		file := tempDir + "/garbage.json"
		if err := os.WriteFile(file, []byte("not json"), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		table, err := ReadTable(file)
		assert.Error(t, err)
		assert.Nil(t, table)
	})

	t.Run("wrong FileId", func(t *testing.T) {
		file := tempDir + "/wrong.json"
		if err := os.WriteFile(file, []byte(`{"FileId":"stats"}`), 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		table, err := ReadTable(file)
		assert.Error(t, err)
		assert.Nil(t, table)
	})

	t.Run("invalid steps", func(t *testing.T) {
		marshal, err := json.Marshal(StudyJSON{Steps: 0})
		if err != nil {
			t.Fatalf("cannot marshal study; %v", err)
		}
		file := tempDir + "/zerosteps.json"
		if err := os.WriteFile(file, marshal, 0644); err != nil {
			t.Fatalf("cannot write file; %v", err)
		}
		table, err := ReadTable(file)
		assert.Error(t, err)
		assert.Nil(t, table)
	})

	t.Run("read error on directory", func(t *testing.T) {
		table, err := ReadTable(tempDir)
		assert.Error(t, err)
		assert.Nil(t, table)
	})
}
