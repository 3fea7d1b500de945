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

package main

import (
	"log"
	"os"

	"github.com/0xsoniclabs/aida-randwalk/cmd/randwalk-cli/randwalk"
	"github.com/urfave/cli/v2"
)

// RandWalkApp data structure
var RandWalkApp = cli.App{
	Name:      "Aida Random Walk",
	HelpName:  "randwalk-cli",
	Usage:     "simulate simple random walks and study their arcsine-law statistics",
	Copyright: "(c) 2022 Fantom Foundation",
	Commands: []*cli.Command{
		&randwalk.SimulateCommand,
		&randwalk.StudyCommand,
		&randwalk.VisualizeCommand,
		&randwalk.ExportCommand,
	},
}

// main implements random-walk simulation and analysis functions
func main() {
	if err := RandWalkApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
