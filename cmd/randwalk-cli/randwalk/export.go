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

package randwalk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/aida-randwalk/logger"
	"github.com/0xsoniclabs/aida-randwalk/utils"
	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"
)

// ExportCommand data structure for the export app.
var ExportCommand = cli.Command{
	Action:    exportAction,
	Name:      "export",
	Usage:     "export the rows of a study to a CSV file or a sqlite3 database",
	ArgsUsage: "<study.json>",
	Flags: []cli.Flag{
		&utils.CsvFileFlag,
		&utils.Sqlite3Flag,
		&logger.LogLevelFlag,
	},
	Description: `
The export command requires one argument:
<study.json>

<study.json> is the study file produced by the study command. The rows of
the study are appended to a CSV file and inserted into a sqlite3 database
for further analysis with external tools.`,
}

const exportCreateStmt = `
CREATE TABLE IF NOT EXISTS study_rows (
	trial      INTEGER NOT NULL,
	tau        INTEGER NOT NULL,
	gamma      INTEGER NOT NULL,
	tau_norm   REAL    NOT NULL,
	gamma_norm REAL    NOT NULL
);
`

const exportInsertStmt = `
INSERT INTO study_rows (trial, tau, gamma, tau_norm, gamma_norm)
VALUES (?, ?, ?, ?, ?);
`

// exportAction writes the rows of a study to the chosen sinks.
func exportAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.StudyFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "RandWalkExport")
	if cfg.CsvFile == "" && cfg.Sqlite3 == "" {
		return fmt.Errorf("no export target; set --%v or --%v", utils.CsvFileFlag.Name, utils.Sqlite3Flag.Name)
	}

	log.Infof("Read study file %v", cfg.ArgPath)
	study, err := walk.ReadTable(cfg.ArgPath)
	if err != nil {
		return err
	}

	printers := utils.NewPrinters()
	defer printers.Close()
	printers.AddPrinterToFile(cfg.CsvFile, func() string { return exportCSV(study) })
	printers.AddPrinterToSqlite3(cfg.Sqlite3, exportCreateStmt, exportInsertStmt, func() [][]any { return exportValues(study) })
	if err := printers.Print(); err != nil {
		return err
	}

	if cfg.CsvFile != "" {
		log.Noticef("Appended %v rows to %v", study.NumRows(), cfg.CsvFile)
	}
	if cfg.Sqlite3 != "" {
		if err := checkSqlite3Export(cfg.Sqlite3, study); err != nil {
			return err
		}
		log.Noticef("Inserted %v rows into %v", study.NumRows(), cfg.Sqlite3)
	}
	return nil
}

// exportCSV renders the rows of a study as CSV with a header line.
func exportCSV(study *walk.Table) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	// write on a strings.Builder cannot fail
	_ = w.Write([]string{"trial", "tau", "gamma", "tau_norm", "gamma_norm"})
	for _, row := range study.Rows() {
		_ = w.Write([]string{
			strconv.Itoa(row.Trial),
			strconv.Itoa(row.Tau),
			strconv.Itoa(row.Gamma),
			strconv.FormatFloat(row.TauNorm, 'g', -1, 64),
			strconv.FormatFloat(row.GammaNorm, 'g', -1, 64),
		})
	}
	w.Flush()
	return sb.String()
}

// exportValues converts the rows of a study to insert-statement values.
func exportValues(study *walk.Table) [][]any {
	values := [][]any{}
	for _, row := range study.Rows() {
		values = append(values, []any{row.Trial, row.Tau, row.Gamma, row.TauNorm, row.GammaNorm})
	}
	return values
}

// exportedRow mirrors one row of the study_rows table.
type exportedRow struct {
	Trial     int     `db:"trial"`
	Tau       int     `db:"tau"`
	Gamma     int     `db:"gamma"`
	TauNorm   float64 `db:"tau_norm"`
	GammaNorm float64 `db:"gamma_norm"`
}

// checkSqlite3Export reads the inserted rows back and compares them with
// the study. The table keeps rows of earlier exports, so only the last
// batch is compared.
func checkSqlite3Export(conn string, study *walk.Table) (err error) {
	db, err := sqlx.Connect("sqlite3", conn)
	if err != nil {
		return fmt.Errorf("cannot open sqlite3 database %s; %v", conn, err)
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()

	rows := []exportedRow{}
	if err := db.Select(&rows, "SELECT trial, tau, gamma, tau_norm, gamma_norm FROM study_rows ORDER BY rowid"); err != nil {
		return fmt.Errorf("cannot read exported rows back; %v", err)
	}
	if len(rows) < study.NumRows() {
		return fmt.Errorf("export lost rows; have %v, want %v", len(rows), study.NumRows())
	}
	exported := rows[len(rows)-study.NumRows():]
	for i, row := range study.Rows() {
		want := exportedRow{row.Trial, row.Tau, row.Gamma, row.TauNorm, row.GammaNorm}
		if exported[i] != want {
			return fmt.Errorf("exported row %v differs; have %+v, want %+v", i, exported[i], want)
		}
	}
	return nil
}
