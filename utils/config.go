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

import (
	"fmt"
	"math/rand"

	"github.com/0xsoniclabs/aida-randwalk/logger"
	"github.com/urfave/cli/v2"
)

// ArgumentMode determines the arguments of a command.
type ArgumentMode int

// An enumeration of the modes how command-line arguments are read.
const (
	NoArgs       ArgumentMode = iota // command has no arguments
	StudyFileArg                     // command requires a study file as argument
)

// Config contains all the parameters of a run. The zero value is not a
// usable configuration; a Config is created from command-line flags via
// NewConfig, which validates all parameters eagerly.
type Config struct {
	AppName     string
	CommandName string

	ArgPath string // positional file argument of the command

	Bins          int     // number of histogram bins of the visualizer
	CPUProfile    string  // pprof cpu profile output file
	ChartFile     string  // standalone HTML chart output file
	CsvFile       string  // CSV export target
	LogLevel      string  // level of the logging of the app
	MemoryProfile string  // pprof memory profile output file
	NoSummary     bool    // disable the console summary table
	Output        string  // output file of the command
	Probability   float64 // probability of an up-step
	RandomSeed    int64   // set random seed for stochastic testing
	RowsFile      string  // binary row file export target
	Sqlite3       string  // sqlite3 export target
	Start         int64   // start position of the walk
	Steps         int     // number of steps of a single walk
	Trials        int     // number of walks of a study
	Workers       int     // number of worker threads
}

// configContext carries data needed to create a new config.
type configContext struct {
	cfg *Config       // configuration being constructed
	log logger.Logger // logger for printing logging messages
	ctx *cli.Context  // command line context
}

func NewConfigContext(cfg *Config, ctx *cli.Context) *configContext {
	return &configContext{
		cfg: cfg,
		log: logger.NewLogger(cfg.LogLevel, "Config"),
		ctx: ctx,
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	// create config with user flag values, if not set default values are used
	cfg := createConfigFromFlags(ctx)

	// create config context for sharing common arguments
	cc := NewConfigContext(cfg, ctx)

	// read the command line arguments
	if err := cc.updateConfigArguments(ctx.Args().Slice(), mode); err != nil {
		return nil, err
	}

	// set missing config values
	if err := cc.adjustMissingConfigValues(); err != nil {
		return nil, err
	}

	// check parameter ranges
	if err := cc.validateParameters(); err != nil {
		return nil, err
	}

	// report config
	cc.reportNewConfig()

	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones.
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Bins:          getFlagValue(ctx, BinsFlag).(int),
		CPUProfile:    getFlagValue(ctx, CpuProfileFlag).(string),
		ChartFile:     getFlagValue(ctx, ChartFileFlag).(string),
		CsvFile:       getFlagValue(ctx, CsvFileFlag).(string),
		LogLevel:      getFlagValue(ctx, logger.LogLevelFlag).(string),
		MemoryProfile: getFlagValue(ctx, MemoryProfileFlag).(string),
		NoSummary:     getFlagValue(ctx, NoSummaryFlag).(bool),
		Output:        getFlagValue(ctx, OutputFlag).(string),
		Probability:   getFlagValue(ctx, ProbabilityFlag).(float64),
		RandomSeed:    getFlagValue(ctx, RandomSeedFlag).(int64),
		RowsFile:      getFlagValue(ctx, RowsFileFlag).(string),
		Sqlite3:       getFlagValue(ctx, Sqlite3Flag).(string),
		Start:         getFlagValue(ctx, StartFlag).(int64),
		Steps:         getFlagValue(ctx, StepsFlag).(int),
		Trials:        getFlagValue(ctx, TrialsFlag).(int),
		Workers:       getFlagValue(ctx, WorkersFlag).(int),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag was set, otherwise its
// default value. Commands register only the flags they use but share one
// Config; a flag absent from the command keeps its declared default instead
// of the zero value the context would report.
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	switch f := flag.(type) {
	case cli.IntFlag:
		if ctx.Value(f.Name) == nil {
			return f.Value
		}
		return ctx.Int(f.Name)
	case cli.Int64Flag:
		if ctx.Value(f.Name) == nil {
			return f.Value
		}
		return ctx.Int64(f.Name)
	case cli.Float64Flag:
		if ctx.Value(f.Name) == nil {
			return f.Value
		}
		return ctx.Float64(f.Name)
	case cli.StringFlag:
		if ctx.Value(f.Name) == nil {
			return f.Value
		}
		return ctx.String(f.Name)
	case cli.PathFlag:
		if ctx.Value(f.Name) == nil {
			return f.Value
		}
		return ctx.Path(f.Name)
	case cli.BoolFlag:
		if ctx.Value(f.Name) == nil {
			return f.Value
		}
		return ctx.Bool(f.Name)
	}
	return nil
}

// updateConfigArguments reads the positional arguments of the command
// depending on the argument mode.
func (cc *configContext) updateConfigArguments(args []string, mode ArgumentMode) error {
	switch mode {
	case NoArgs:
		return nil
	case StudyFileArg:
		if len(args) != 1 {
			return fmt.Errorf("command requires a study file as argument")
		}
		cc.cfg.ArgPath = args[0]
		return nil
	default:
		return fmt.Errorf("unknown argument mode")
	}
}

// adjustMissingConfigValues fills the missing values in the config.
func (cc *configContext) adjustMissingConfigValues() error {
	// set random seed for stochastic runs if not set manually
	if cc.cfg.RandomSeed < 0 {
		cc.cfg.RandomSeed = int64(rand.Uint32())
	}

	if cc.cfg.Workers < 1 {
		cc.log.Warningf("Invalid number of workers (%v); using one worker", cc.cfg.Workers)
		cc.cfg.Workers = 1
	}

	return nil
}

// validateParameters checks the ranges of the walk parameters. Invalid
// parameters are reported when the config is constructed rather than
// when a simulation is already running.
func (cc *configContext) validateParameters() error {
	if cc.cfg.Probability <= 0.0 || cc.cfg.Probability >= 1.0 {
		return fmt.Errorf("step probability (%v) must be in the open interval (0,1)", cc.cfg.Probability)
	}
	if cc.cfg.Steps <= 0 {
		return fmt.Errorf("number of steps (%v) must be greater than zero", cc.cfg.Steps)
	}
	if cc.cfg.Trials <= 0 {
		return fmt.Errorf("number of trials (%v) must be greater than zero", cc.cfg.Trials)
	}
	if cc.cfg.Bins < 2 {
		return fmt.Errorf("number of histogram bins (%v) must be at least two", cc.cfg.Bins)
	}
	return nil
}

// reportNewConfig logs out the state of config in current run. Commands
// driven by a study file take their walk parameters from that file, so only
// the file is reported for them.
func (cc *configContext) reportNewConfig() {
	if cc.cfg.ArgPath != "" {
		cc.log.Noticef("Study file: %v", cc.cfg.ArgPath)
	} else {
		cc.log.Noticef("Run config: probability %v, steps %v, trials %v, start position %v", cc.cfg.Probability, cc.cfg.Steps, cc.cfg.Trials, cc.cfg.Start)
		cc.log.Noticef("Random seed: %v; workers: %v", cc.cfg.RandomSeed, cc.cfg.Workers)
	}
	if cc.cfg.CPUProfile != "" {
		cc.log.Warningf("Profiling enabled, reducing Performance")
	}
}
