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
	"fmt"
	"math/rand"
	"time"

	"github.com/0xsoniclabs/aida-randwalk/logger"
	"github.com/0xsoniclabs/aida-randwalk/utils"
	"github.com/0xsoniclabs/aida-randwalk/utils/analytics"
	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/0xsoniclabs/aida-randwalk/walk/recorder"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/arcsine"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/gof"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// studyStepsFlag mirrors StepsFlag with a longer default; a study needs
// longer walks than a single plotted trajectory to approach the arcsine
// limit.
var studyStepsFlag = cli.IntFlag{
	Name:    "steps",
	Aliases: []string{"n"},
	Usage:   "number of steps of each walk of the study",
	Value:   walk.StudySteps,
}

// StudyCommand data structure for the study app.
var StudyCommand = cli.Command{
	Action:    studyAction,
	Name:      "study",
	Usage:     "run a Monte Carlo study of last-maximum and last-return statistics",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&utils.CpuProfileFlag,
		&utils.MemoryProfileFlag,
		&utils.TrialsFlag,
		&studyStepsFlag,
		&utils.ProbabilityFlag,
		&utils.StartFlag,
		&utils.RandomSeedFlag,
		&utils.WorkersFlag,
		&utils.OutputFlag,
		&utils.RowsFileFlag,
		&utils.BinsFlag,
		&utils.NoSummaryFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The study command draws many independent walks, records for each the step
index of the last maximum and of the last return to the start position, and
summarises the moments of both statistics. The normalised statistics are
checked against the arcsine distribution with a Kolmogorov-Smirnov and a
chi-squared test. The full study can be written to a JSON file for the
visualize and export commands and to a compressed binary rows file.`,
}

// studyAction runs the Monte Carlo study and reports its outcome.
func studyAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "RandWalkStudy")
	if err := utils.StartCPUProfile(cfg); err != nil {
		return err
	}
	defer utils.StopCPUProfile(cfg)

	log.Infof("Run a study of %v walks with %v steps each", cfg.Trials, cfg.Steps)
	start := time.Now()
	var study *walk.Table
	if cfg.Workers > 1 {
		study, err = walk.RunStudyParallel(cfg.RandomSeed, cfg.Workers, cfg.Trials, cfg.Steps, cfg.Probability, cfg.Start, log)
	} else {
		rg := rand.New(rand.NewSource(cfg.RandomSeed))
		study, err = walk.RunStudy(rg, cfg.Trials, cfg.Steps, cfg.Probability, cfg.Start, log)
	}
	if err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Total elapsed time: %vh %vm %vs; processed %v walks", hours, minutes, seconds, study.NumRows())

	report := ""
	if !cfg.NoSummary {
		if report, err = studyReport(study, cfg.Bins); err != nil {
			return err
		}
	}
	printers := utils.NewPrinters()
	defer printers.Close()
	printers.AddPrinterToConsole(cfg.NoSummary, func() string { return report })
	if err := printers.Print(); err != nil {
		return err
	}

	if cfg.Output != "" {
		log.Noticef("Write study file %v", cfg.Output)
		if err := study.WriteJSON(cfg.Output); err != nil {
			return err
		}
	}
	if cfg.RowsFile != "" {
		log.Noticef("Write rows file %v", cfg.RowsFile)
		if err := recorder.WriteStudy(cfg.RowsFile, study); err != nil {
			return err
		}
	}
	if err := utils.StartMemoryProfile(cfg); err != nil {
		return err
	}
	return nil
}

// studyReport renders the moments of the study and the goodness of fit
// of the normalised statistics against the arcsine distribution.
func studyReport(study *walk.Table, bins int) (string, error) {
	p := message.NewPrinter(language.English)
	summary := study.Summary()

	moments := table.NewWriter()
	moments.SetTitle(p.Sprintf("Study of %d walks with %d steps each", study.NumRows(), study.Steps()))
	moments.AppendHeader(table.Row{"statistic", "min", "max", "mean", "std dev", "skewness", "kurtosis"})
	for _, row := range []struct {
		name  string
		stats *analytics.IncrementalStats
	}{
		{"last maximum", summary.Tau},
		{"last return", summary.Gamma},
		{"last maximum / n", summary.TauNorm},
		{"last return / n", summary.GammaNorm},
	} {
		moments.AppendRow(table.Row{
			row.name,
			fmt.Sprintf("%.4g", row.stats.GetMin()),
			fmt.Sprintf("%.4g", row.stats.GetMax()),
			fmt.Sprintf("%.4g", row.stats.GetMean()),
			fmt.Sprintf("%.4g", row.stats.GetStandardDeviation()),
			fmt.Sprintf("%.4g", row.stats.GetSkewness()),
			fmt.Sprintf("%.4g", row.stats.GetKurtosis()),
		})
	}

	fit := table.NewWriter()
	fit.SetTitle(p.Sprintf("Goodness of fit against the arcsine distribution (%d bins)", bins))
	fit.AppendHeader(table.Row{"statistic", "ks distance", "p-value", "chi-squared", "p-value"})
	for _, row := range []struct {
		name    string
		samples []float64
	}{
		{"last maximum / n", study.TauSamples()},
		{"last return / n", study.GammaSamples()},
	} {
		ks, err := gof.KolmogorovSmirnov(row.samples, arcsine.CDF)
		if err != nil {
			return "", err
		}
		chi, err := gof.ChiSquared(row.samples, arcsine.CDF, bins)
		if err != nil {
			return "", err
		}
		fit.AppendRow(table.Row{
			row.name,
			fmt.Sprintf("%.4f", ks.Statistic),
			fmt.Sprintf("%.3g", ks.PValue),
			fmt.Sprintf("%.4g", chi.Statistic),
			fmt.Sprintf("%.3g", chi.PValue),
		})
	}

	return moments.Render() + "\n" + fit.Render(), nil
}
