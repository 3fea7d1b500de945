// Copyright 2024 Fantom Foundation
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

import "github.com/urfave/cli/v2"

var (
	ProbabilityFlag = cli.Float64Flag{
		Name:    "probability",
		Aliases: []string{"p"},
		Usage:   "probability of an up-step of the walk",
		Value:   0.5,
	}
	StepsFlag = cli.IntFlag{
		Name:    "steps",
		Aliases: []string{"n"},
		Usage:   "number of steps of a single walk",
		Value:   100,
	}
	TrialsFlag = cli.IntFlag{
		Name:    "trials",
		Aliases: []string{"m"},
		Usage:   "number of independent walks of a study",
		Value:   10_000,
	}
	StartFlag = cli.Int64Flag{
		Name:  "start",
		Usage: "start position of the walk",
		Value: 0,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "Set random seed",
		Value: -1,
	}
	WorkersFlag = cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "Number of worker threads that execute in parallel",
		Value:   1,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}
	CsvFileFlag = cli.PathFlag{
		Name:  "csv",
		Usage: "write the study table to the given CSV file",
	}
	Sqlite3Flag = cli.PathFlag{
		Name:  "sqlite3",
		Usage: "write the study table into the given sqlite3 database",
	}
	RowsFileFlag = cli.PathFlag{
		Name:  "rows-file",
		Usage: "write the study table as a gzip-compressed binary row file",
	}
	ChartFileFlag = cli.PathFlag{
		Name:  "chart",
		Usage: "render the trajectory chart into the given HTML file",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "number of histogram bins of the visualizer",
		Value: 50,
	}
	CpuProfileFlag = cli.PathFlag{
		Name:  "cpu-profile",
		Usage: "enables CPU profiling",
	}
	MemoryProfileFlag = cli.PathFlag{
		Name:  "memory-profile",
		Usage: "enables memory allocation profiling",
	}
	NoSummaryFlag = cli.BoolFlag{
		Name:  "no-summary",
		Usage: "disable printing of the summary table on the console",
	}
)
