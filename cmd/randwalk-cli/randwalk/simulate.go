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
	"math/rand"

	"github.com/0xsoniclabs/aida-randwalk/logger"
	"github.com/0xsoniclabs/aida-randwalk/utils"
	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/0xsoniclabs/aida-randwalk/walk/visualizer"
	"github.com/urfave/cli/v2"
)

// SimulateCommand data structure for the simulate app.
var SimulateCommand = cli.Command{
	Action:    simulateAction,
	Name:      "simulate",
	Usage:     "simulate a single random walk",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&utils.ProbabilityFlag,
		&utils.StepsFlag,
		&utils.StartFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
		&utils.ChartFileFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The simulate command draws a single random walk and reports the step index
of its last maximum and of its last return to the start position. The
trajectory can be written to a JSON file and rendered as an HTML line chart.`,
}

// simulateAction draws one walk and reports its statistics.
func simulateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "RandWalkSimulate")

	log.Infof("Simulate a walk of %v steps", cfg.Steps)
	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	trajectory, err := walk.Generate(rg, cfg.Probability, cfg.Steps, cfg.Start)
	if err != nil {
		return err
	}

	tau := walk.Tau(trajectory)
	gamma := walk.Gamma(trajectory)
	log.Noticef("Last maximum %v after step %v of %v", trajectory.Position(tau), tau, cfg.Steps)
	log.Noticef("Last return to the start position after step %v of %v", gamma, cfg.Steps)

	if cfg.Output != "" {
		log.Noticef("Write trajectory file %v", cfg.Output)
		if err := trajectory.WriteJSON(cfg.Output); err != nil {
			return err
		}
	}
	if cfg.ChartFile != "" {
		log.Noticef("Render trajectory chart %v", cfg.ChartFile)
		if err := visualizer.RenderTrajectoryChart(trajectory, cfg.ChartFile); err != nil {
			return err
		}
	}
	return nil
}
