// Package plot renders matrices and vectors as echarts html pages.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

func labels(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = strconv.Itoa(i)
	}
	return res
}

// HeatMap generates an echart heatmap of m with columns along the x axis and rows along the
// y axis. The color scale spans the smallest and largest element.
func HeatMap(title string, m mat.Matrix) *charts.HeatMap {
	rows, cols := m.Dims()

	lo, hi := math.Inf(1), math.Inf(-1)
	data := make([]opts.HeatMapData, 0, rows*cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			val := m.At(r, c)
			lo = min(lo, val)
			hi = max(hi, val)
			data = append(data, opts.HeatMapData{Value: [3]interface{}{c, r, val}})
		}
	}
	if len(data) == 0 {
		lo, hi = 0, 0
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Type: "category",
				Data: labels(cols),
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Type: "category",
				Data: labels(rows),
			},
		),
		charts.WithVisualMapOpts(
			opts.VisualMap{
				Min: float32(lo),
				Max: float32(hi),
				InRange: &opts.VisualMapInRange{
					Color: []string{"#313695", "#ffffbf", "#a50026"},
				},
			},
		),
	)
	hm.SetXAxis(labels(cols)).AddSeries(title, data)
	return hm
}

// Lines generates an echart multi-line chart of y indexed by position. NaN values are skipped.
func Lines(title string, seriesName []string, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	n := 0
	for _, series := range y {
		n = max(n, len(series))
	}

	line = line.SetXAxis(labels(n))
	for i, series := range y {
		lineData := make([]opts.LineData, 0, len(series))
		for _, val := range series {
			if math.IsNaN(val) {
				lineData = append(lineData, opts.LineData{Value: "-"})
				continue
			}
			lineData = append(lineData, opts.LineData{Value: val})
		}
		name := strconv.Itoa(i)
		if i < len(seriesName) {
			name = seriesName[i]
		}
		line = line.AddSeries(name, lineData)
	}
	return line
}

// Render writes every chart to w as a single html page.
func Render(w io.Writer, c ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(c...)
	return page.Render(w)
}

// RenderFile writes every chart to the html file at path.
func RenderFile(path string, c ...components.Charter) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	defer file.Close()

	if err := Render(file, c...); err != nil {
		return fmt.Errorf("unable to render plot, %w", err)
	}
	return nil
}
