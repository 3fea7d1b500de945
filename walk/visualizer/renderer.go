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

package visualizer

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/arcsine"
	"github.com/0xsoniclabs/aida-randwalk/walk/statistics/histogram"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTML references for the rendered pages.
const distributionRef = "distribution-stats"
const densityRef = "density-stats"
const histogramRef = "histogram-stats"
const jointRef = "joint-stats"
const momentRef = "moment-stats"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Aida: Random Walk Study</title>
    <link rel="stylesheet" href="style.css">
    <script src="script.js"></script>
  </head>
  <body>
    <h1>Aida: Random Walk Study</h1>
    <ul>
    <li> <h3> <a href="/` + distributionRef + `"> Arcsine Distribution Check </a> </h3> </li>
    <li> <h3> <a href="/` + densityRef + `"> Density Estimates </a> </h3> </li>
    <li> <h3> <a href="/` + histogramRef + `"> Histogram Statistics </a> </h3> </li>
    <li> <h3> <a href="/` + jointRef + `"> Joint Statistics </a> </h3> </li>
    <li> <h3> <a href="/` + momentRef + `"> Moment Statistics </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertCurveData converts curve points to chart points.
func convertCurveData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newCurveChart creates a line chart for distribution curves.
func newCurveChart(title string, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// arcsinePDFCurve samples the arcsine density away from its poles.
func arcsinePDFCurve(points int) [][2]float64 {
	curve := make([][2]float64, points)
	for j := 0; j < points; j++ {
		x := (float64(j) + 0.5) / float64(points)
		curve[j] = [2]float64{x, arcsine.PDF(x)}
	}
	return curve
}

// arcsineBinDensities returns the arcsine density averaged over equi-width
// bins for comparison with observed histograms.
func arcsineBinDensities(bins int) []float64 {
	densities := make([]float64, bins)
	for i := 0; i < bins; i++ {
		lo := float64(i) / float64(bins)
		hi := float64(i+1) / float64(bins)
		densities[i] = (arcsine.CDF(hi) - arcsine.CDF(lo)) * float64(bins)
	}
	return densities
}

// renderDistribution renders the empirical distributions of the two walk
// statistics next to the arcsine CDF.
func renderDistribution(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	subtitle := fmt.Sprintf("%v walks of %v steps", view.study.NumRows(), view.study.Steps())
	chart := newCurveChart("Arcsine Distribution Check", subtitle)
	chart.AddSeries("Last Maximum", convertCurveData(view.tauECDF)).
		AddSeries("Last Return", convertCurveData(view.gammaECDF)).
		AddSeries("Arcsine CDF", convertCurveData(arcsine.ToECDF(walk.NumECDFPoints)))
	_ = chart.Render(w)
}

// renderDensity renders the kernel density estimates next to the arcsine
// density.
func renderDensity(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := newCurveChart("Density Estimates", "Gaussian kernel vs. arcsine density")
	chart.AddSeries("Last Maximum", convertCurveData(view.tauDensity)).
		AddSeries("Last Return", convertCurveData(view.gammaDensity)).
		AddSeries("Arcsine PDF", convertCurveData(arcsinePDFCurve(densityPoints)))
	_ = chart.Render(w)
}

// convertDensityData produces the data series of a histogram.
func convertDensityData(data []float64) []opts.BarData {
	items := []opts.BarData{}
	for i := 0; i < len(data); i++ {
		items = append(items, opts.BarData{Value: data[i]})
	}
	return items
}

// convertBinLabels produces the bin-center labels of a histogram.
func convertBinLabels(h *histogram.Histogram) []string {
	items := []string{}
	for _, center := range h.Centers() {
		items = append(items, fmt.Sprintf("%.3f", center))
	}
	return items
}

// renderHistogram renders the binned densities of the two walk statistics
// next to the arcsine density.
func renderHistogram(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Histogram Statistics",
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: "Histogram Statistics",
		}))
	bar.SetXAxis(convertBinLabels(view.tauHist)).
		AddSeries("Last Maximum", convertDensityData(view.tauHist.Densities())).
		AddSeries("Last Return", convertDensityData(view.gammaHist.Densities())).
		AddSeries("Arcsine", convertDensityData(arcsineBinDensities(view.tauHist.Bins())))
	_ = bar.Render(w)
}

// convertJointData produces one scatter point per walk.
func convertJointData(rows []walk.Row) []opts.ScatterData {
	items := []opts.ScatterData{}
	for _, row := range rows {
		items = append(items, opts.ScatterData{Value: [2]float64{row.TauNorm, row.GammaNorm}, SymbolSize: 5})
	}
	return items
}

// renderJoint renders the joint outcomes of the two walk statistics.
func renderJoint(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Joint Statistics",
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Joint Statistics",
			Subtitle: "Last maximum against last return per walk",
		}))
	scatter.AddSeries("Walks", convertJointData(view.study.Rows()))
	_ = scatter.Render(w)
}

// renderMoment renders the observed moments next to the arcsine moments.
func renderMoment(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Moment Statistics",
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: "Moment Statistics",
		}))
	summary := view.summary
	bar.SetXAxis([]string{"Mean", "Variance"}).
		AddSeries("Last Maximum", convertDensityData([]float64{summary.TauNorm.GetMean(), summary.TauNorm.GetVariance()})).
		AddSeries("Last Return", convertDensityData([]float64{summary.GammaNorm.GetMean(), summary.GammaNorm.GetVariance()})).
		AddSeries("Arcsine", convertDensityData([]float64{arcsine.Mean, arcsine.Variance}))
	_ = bar.Render(w)
}

// newTrajectoryChart plots the positions of a single walk over its steps.
func newTrajectoryChart(trajectory *walk.Trajectory) *charts.Line {
	subtitle := fmt.Sprintf("%v steps starting at %v", trajectory.NumSteps(), trajectory.Start())
	chart := newCurveChart("Random Walk Trajectory", subtitle)
	items := []opts.LineData{}
	for i, position := range trajectory.Positions() {
		items = append(items, opts.LineData{Value: [2]float64{float64(i), float64(position)}})
	}
	chart.AddSeries("Position", items)
	return chart
}

// RenderTrajectoryChart writes the trajectory chart as a standalone HTML
// file.
func RenderTrajectoryChart(trajectory *walk.Trajectory, filename string) (err error) {
	if trajectory == nil {
		return fmt.Errorf("visualizer: trajectory is nil")
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		err = errors.Join(err, f.Close())
	}(f)
	return newTrajectoryChart(trajectory).Render(f)
}

// FireUpWeb derives the view model of the study and visualizes it with a
// local web-server.
func FireUpWeb(study *walk.Table, bins int, addr string) error {
	if err := setViewState(study, bins); err != nil {
		return err
	}

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+distributionRef, renderDistribution)
	http.HandleFunc("/"+densityRef, renderDensity)
	http.HandleFunc("/"+histogramRef, renderHistogram)
	http.HandleFunc("/"+jointRef, renderJoint)
	http.HandleFunc("/"+momentRef, renderMoment)
	return http.ListenAndServe(":"+addr, nil)
}
