package randwalk

import (
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/aida-randwalk/utils"
	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/0xsoniclabs/aida-randwalk/walk/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestCmd_RunStudyCommand(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "study.json")
	rowsFile := filepath.Join(tmpDir, "study.dat")
	app := cli.NewApp()
	app.Commands = []*cli.Command{&StudyCommand}
	args := utils.NewArgs("test").
		Arg(StudyCommand.Name).
		Flag(utils.TrialsFlag.Name, 200).
		Flag(studyStepsFlag.Name, 50).
		Flag(utils.RandomSeedFlag.Name, 999).
		Flag(utils.OutputFlag.Name, outputFile).
		Flag(utils.RowsFileFlag.Name, rowsFile).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.NoError(t, err)
	study, err := walk.ReadTable(outputFile)
	require.NoError(t, err)
	assert.Equal(t, 200, study.NumRows())
	assert.Equal(t, 50, study.Steps())
	rows, err := recorder.ReadStudy(rowsFile)
	require.NoError(t, err)
	assert.Equal(t, study.Rows(), rows.Rows())
}

func TestCmd_RunStudyCommandParallel(t *testing.T) {
	// given
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "study.json")
	app := cli.NewApp()
	app.Commands = []*cli.Command{&StudyCommand}
	args := utils.NewArgs("test").
		Arg(StudyCommand.Name).
		Flag(utils.TrialsFlag.Name, 100).
		Flag(studyStepsFlag.Name, 20).
		Flag(utils.WorkersFlag.Name, 4).
		Flag(utils.NoSummaryFlag.Name, true).
		Flag(utils.OutputFlag.Name, outputFile).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.NoError(t, err)
	study, err := walk.ReadTable(outputFile)
	require.NoError(t, err)
	assert.Equal(t, 100, study.NumRows())
	assert.Equal(t, 20, study.Steps())
}

func TestCmd_RunStudyCommandRejectsWrongTrials(t *testing.T) {
	// given
	app := cli.NewApp()
	app.Commands = []*cli.Command{&StudyCommand}
	args := utils.NewArgs("test").
		Arg(StudyCommand.Name).
		Flag(utils.TrialsFlag.Name, 0).
		Build()

	// when
	err := app.Run(args)

	// then
	assert.Error(t, err)
}
