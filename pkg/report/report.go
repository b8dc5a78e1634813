package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/quantkit/bricks/pkg/fixedpoint"
	"github.com/quantkit/bricks/pkg/style"
	"github.com/quantkit/bricks/pkg/types"
)

// BandSnapshot is the state of a Bollinger band at the end of a replay.
type BandSnapshot struct {
	Name      string  `json:"name"`
	Ready     bool    `json:"ready"`
	Middle    float64 `json:"middle"`
	Upper     float64 `json:"upper"`
	Lower     float64 `json:"lower"`
	StdDev    float64 `json:"stdDev"`
	BandWidth float64 `json:"bandWidth"`
}

// SessionReport collects the result of replaying the ticks of one symbol.
type SessionReport struct {
	ID        string           `json:"id"`
	Symbol    string           `json:"symbol"`
	BrickSize fixedpoint.Value `json:"brickSize"`
	Ticks     int              `json:"ticks"`

	StartTime  time.Time        `json:"startTime"`
	EndTime    time.Time        `json:"endTime"`
	FirstPrice fixedpoint.Value `json:"firstPrice"`
	LastPrice  fixedpoint.Value `json:"lastPrice"`

	Bricks  []types.RenkoBar `json:"bricks,omitempty"`
	OpenBar *types.RenkoBar  `json:"openBar,omitempty"`
	Band    BandSnapshot     `json:"band"`

	// BandPoints are the ready band readings, one per closed brick
	BandPoints []BandPoint `json:"bandPoints,omitempty"`

	Summary BrickSummary `json:"summary"`
}

func NewSessionReport(symbol string, brickSize fixedpoint.Value) *SessionReport {
	return &SessionReport{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		BrickSize: brickSize,
	}
}

// AddTick records the price range of the replay.
func (r *SessionReport) AddTick(tick types.Tick) {
	if r.Ticks == 0 {
		r.StartTime = tick.Time
		r.FirstPrice = tick.Price
	}

	r.Ticks++
	r.EndTime = tick.Time
	r.LastPrice = tick.Price
}

func (r *SessionReport) AddBrick(bar types.RenkoBar) {
	r.Bricks = append(r.Bricks, bar)
}

// AddBandPoint records the band reading after the latest closed brick.
func (r *SessionReport) AddBandPoint(middle, upper, lower float64) {
	if len(r.Bricks) == 0 {
		return
	}

	last := r.Bricks[len(r.Bricks)-1]
	r.BandPoints = append(r.BandPoints, BandPoint{
		Index:  len(r.Bricks) - 1,
		Close:  last.Close.Float64(),
		Middle: middle,
		Upper:  upper,
		Lower:  lower,
	})
}

// Finish computes the summary. It should be called once all ticks are replayed.
func (r *SessionReport) Finish(openBar *types.RenkoBar, band BandSnapshot) error {
	r.OpenBar = openBar
	r.Band = band

	summary, err := Summarize(r.Bricks)
	if err != nil {
		return err
	}

	r.Summary = summary
	return nil
}

// BrickTable renders the last maxRows closed bricks, all of them when maxRows <= 0.
func (r *SessionReport) BrickTable(tableStyle *table.Style, maxRows int) table.Writer {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("%s RENKO BRICKS (brick size %s)", r.Symbol, r.BrickSize.String()))
	t.AppendHeader(table.Row{"#", "Start", "End", "Direction", "Open", "Close", "High", "Low", "Volume"})

	bricks := r.Bricks
	offset := 0
	if maxRows > 0 && len(bricks) > maxRows {
		offset = len(bricks) - maxRows
		bricks = bricks[offset:]
	}

	for i, bar := range bricks {
		t.AppendRow(table.Row{
			offset + i + 1,
			bar.Start.Format(time.DateTime),
			bar.End.Format(time.DateTime),
			style.DirectionString(bar.Direction()),
			bar.Open.String(),
			bar.Close.String(),
			bar.High.String(),
			bar.Low.String(),
			strconv.FormatUint(bar.Volume, 10),
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", "", "", "", "TOTAL", strconv.FormatUint(r.Summary.Volume, 10)})
	if tableStyle != nil {
		t.SetStyle(*tableStyle)
	}
	return t
}

// Print writes the brick table followed by the summary and the band readings.
func (r *SessionReport) Print(w io.Writer, tableStyle *table.Style, maxRows int) {
	_, _ = fmt.Fprintln(w, r.BrickTable(tableStyle, maxRows).Render())

	s := r.Summary
	_, _ = fmt.Fprintf(w, "%s TICKS: %d (%s ~ %s)\n", r.Symbol, r.Ticks, r.StartTime.Format(time.RFC3339), r.EndTime.Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "PRICE: %s -> %s\n", r.FirstPrice.String(), r.LastPrice.String())
	_, _ = fmt.Fprintf(w, "BRICKS: %d (up %d, down %d)\n", s.Count, s.Up, s.Down)
	if s.Count > 0 {
		_, _ = fmt.Fprintf(w, "BRICK DURATION: mean %s, median %s, p90 %s, max %s\n",
			s.MeanDuration, s.MedianDuration, s.P90Duration, s.MaxDuration)
		_, _ = fmt.Fprintf(w, "BRICK CLOSE: lowest %s, highest %s, average %s\n",
			s.LowestClose.String(), s.HighestClose.String(), s.AverageClose.String())
	}

	if r.OpenBar != nil {
		_, _ = fmt.Fprintf(w, "OPEN BRICK: %s\n", r.OpenBar.String())
	}

	band := r.Band
	if !band.Ready {
		_, _ = fmt.Fprintln(w, color.YellowString("%s: not ready", band.Name))
		return
	}

	_, _ = fmt.Fprintf(w, "%s: middle %.4f, upper %.4f, lower %.4f, stddev %.4f, bandwidth %.4f\n",
		band.Name, band.Middle, band.Upper, band.Lower, band.StdDev, band.BandWidth)
}

func (r *SessionReport) WriteJSON(filename string) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, out, 0644)
}
