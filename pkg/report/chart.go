package report

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
)

// BandPoint is the band reading right after the close of the brick at Index.
type BandPoint struct {
	Index  int     `json:"index"`
	Close  float64 `json:"close"`
	Middle float64 `json:"middle"`
	Upper  float64 `json:"upper"`
	Lower  float64 `json:"lower"`
}

type Canvas struct {
	chart.Chart
}

func NewCanvas(title string) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: chart.IntValueFormatter,
			},
			YAxis: chart.YAxis{
				ValueFormatter: func(v interface{}) string {
					if vf, isFloat := v.(float64); isFloat {
						return fmt.Sprintf("%.4f", vf)
					}
					return ""
				},
			},
		},
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

func (canvas *Canvas) PlotRaw(tag string, x, y []float64) {
	if len(y) == 0 {
		return
	}

	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name:    tag,
		XValues: x,
		YValues: y,
	})
}

// DrawBands plots the brick closes with the band readings.
func (r *SessionReport) DrawBands() (*Canvas, error) {
	if len(r.BandPoints) < 2 {
		return nil, errors.Errorf("%s: not enough band points to draw, %d given", r.Symbol, len(r.BandPoints))
	}

	var x, closes, middle, upper, lower []float64
	for _, p := range r.BandPoints {
		x = append(x, float64(p.Index))
		closes = append(closes, p.Close)
		middle = append(middle, p.Middle)
		upper = append(upper, p.Upper)
		lower = append(lower, p.Lower)
	}

	canvas := NewCanvas(fmt.Sprintf("%s %s", r.Symbol, r.Band.Name))
	canvas.PlotRaw("close", x, closes)
	canvas.PlotRaw("middle", x, middle)
	canvas.PlotRaw("upper", x, upper)
	canvas.PlotRaw("lower", x, lower)
	return canvas, nil
}

func (r *SessionReport) RenderBands(w io.Writer) error {
	canvas, err := r.DrawBands()
	if err != nil {
		return err
	}

	if err := canvas.Render(chart.PNG, w); err != nil {
		return errors.Wrapf(err, "cannot render %s bands", r.Symbol)
	}
	return nil
}

func (r *SessionReport) WriteBandChart(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := r.RenderBands(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
