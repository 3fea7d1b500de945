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
	"github.com/0xsoniclabs/aida-randwalk/logger"
	"github.com/0xsoniclabs/aida-randwalk/utils"
	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/0xsoniclabs/aida-randwalk/walk/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "produces a graphical view of the statistics of a study",
	ArgsUsage: "<study.json>",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&utils.BinsFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument:
<study.json>

<study.json> is the study file produced by the study command. The command
serves charts of the observed distributions and their arcsine limit on a
local web server.`,
}

// visualizeAction serves the charts of a study on a local web server.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.StudyFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "RandWalkVisualize")

	log.Infof("Read study file %v", cfg.ArgPath)
	study, err := walk.ReadTable(cfg.ArgPath)
	if err != nil {
		return err
	}

	port := ctx.String(utils.PortFlag.Name)
	if port == "" {
		port = "8080"
	}
	log.Noticef("Open web browser on http://localhost:" + port)
	log.Notice("Cancel visualize with ^C")
	return visualizer.FireUpWeb(study, cfg.Bins, port)
}
