// Package plot renders a final population's objective space as an HTML
// scatter chart, adapted from the teacher's util.PlotResults
// (pkg/multiobjective/util/plot.go). It is optional and non-core: nothing
// under the module root imports it.
package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	moea "github.com/andresliszt/moo-go"
)

// Scatter renders best's objective space against trueFront as a two-series
// scatter chart. It only supports two objectives; a population with a
// different objective count is an error, where the teacher's original
// assumed two objectives implicitly via fixed axis labels.
func Scatter(best *moea.Population, trueFront [][]float64, title string, w io.Writer) error {
	if best.NumObjectives() != 2 {
		return fmt.Errorf("plot: scatter rendering requires exactly 2 objectives, got %d", best.NumObjectives())
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{Name: "f1(x)", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "f2(x)", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
	)

	trueSeries := make([]opts.ScatterData, len(trueFront))
	for i, p := range trueFront {
		trueSeries[i] = opts.ScatterData{Value: p, Symbol: "circle", SymbolSize: 10}
	}
	foundSeries := make([]opts.ScatterData, best.Len())
	for i := 0; i < best.Len(); i++ {
		foundSeries[i] = opts.ScatterData{Value: best.Fitness[i], Symbol: "triangle", SymbolSize: 10}
	}

	scatter.AddSeries("True Pareto front", trueSeries).
		AddSeries("Obtained front", foundSeries).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter.Render(w)
}
