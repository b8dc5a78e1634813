package report

import (
	"time"

	"github.com/montanaflynn/stats"

	"github.com/quantkit/bricks/pkg/fixedpoint"
	"github.com/quantkit/bricks/pkg/types"
)

// BrickSummary describes how long the closed bricks took to form.
type BrickSummary struct {
	Count int `json:"count"`
	Up    int `json:"up"`
	Down  int `json:"down"`

	MeanDuration   time.Duration `json:"meanDuration"`
	MedianDuration time.Duration `json:"medianDuration"`
	P90Duration    time.Duration `json:"p90Duration"`
	MaxDuration    time.Duration `json:"maxDuration"`

	// Volume is the total volume of the closed bricks
	Volume uint64 `json:"volume"`

	HighestClose fixedpoint.Value `json:"highestClose"`
	LowestClose  fixedpoint.Value `json:"lowestClose"`
	AverageClose fixedpoint.Value `json:"averageClose"`
}

// Summarize computes the brick duration statistics. An empty input gives a zero summary.
func Summarize(bricks []types.RenkoBar) (summary BrickSummary, err error) {
	summary.Count = len(bricks)
	if len(bricks) == 0 {
		return summary, nil
	}

	closes := make(fixedpoint.Slice, 0, len(bricks))
	durations := make(stats.Float64Data, 0, len(bricks))
	for _, brick := range bricks {
		switch brick.Direction() {
		case types.BrickDirectionUp:
			summary.Up++
		case types.BrickDirectionDown:
			summary.Down++
		}

		summary.Volume += brick.Volume
		closes = append(closes, brick.Close)
		durations = append(durations, brick.Duration().Seconds())
	}

	summary.HighestClose = closes.Max()
	summary.LowestClose = closes.Min()
	summary.AverageClose = fixedpoint.Avg(closes)

	mean, err := durations.Mean()
	if err != nil {
		return summary, err
	}

	median, err := durations.Median()
	if err != nil {
		return summary, err
	}

	p90, err := durations.Percentile(90)
	if err != nil {
		return summary, err
	}

	max, err := durations.Max()
	if err != nil {
		return summary, err
	}

	summary.MeanDuration = seconds(mean)
	summary.MedianDuration = seconds(median)
	summary.P90Duration = seconds(p90)
	summary.MaxDuration = seconds(max)
	return summary, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Millisecond)
}
