package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/bricks/pkg/fixedpoint"
	"github.com/quantkit/bricks/pkg/style"
	"github.com/quantkit/bricks/pkg/types"
)

var startTime = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func closedBrick(t *testing.T, start time.Time, open, close int64, duration time.Duration, volume uint64) types.RenkoBar {
	bar, err := types.NewRenkoBar("BTCUSDT", start, fixedpoint.NewFromInt(10), fixedpoint.NewFromInt(open), 0)
	require.NoError(t, err)
	require.True(t, bar.Update(start.Add(duration), fixedpoint.NewFromInt(close), volume))
	return *bar
}

func testBricks(t *testing.T) []types.RenkoBar {
	return []types.RenkoBar{
		closedBrick(t, startTime, 100, 110, time.Minute, 1),
		closedBrick(t, startTime.Add(time.Minute), 110, 120, 2*time.Minute, 2),
		closedBrick(t, startTime.Add(3*time.Minute), 120, 110, 3*time.Minute, 3),
	}
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(testBricks(t))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 2, summary.Up)
	assert.Equal(t, 1, summary.Down)
	assert.Equal(t, uint64(6), summary.Volume)
	assert.Equal(t, 2*time.Minute, summary.MeanDuration)
	assert.Equal(t, 2*time.Minute, summary.MedianDuration)
	assert.Equal(t, 3*time.Minute, summary.MaxDuration)
	assert.Equal(t, "120", summary.HighestClose.String())
	assert.Equal(t, "110", summary.LowestClose.String())
	assert.Equal(t, "113.33333333", summary.AverageClose.String())
}

func TestSummarize_Empty(t *testing.T) {
	summary, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, BrickSummary{}, summary)
}

func TestSessionReport(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	r := NewSessionReport("BTCUSDT", fixedpoint.NewFromInt(10))
	r.AddTick(types.Tick{Time: startTime, Price: fixedpoint.NewFromInt(100)})
	r.AddTick(types.Tick{Time: startTime.Add(6 * time.Minute), Price: fixedpoint.NewFromInt(112)})
	for _, bar := range testBricks(t) {
		r.AddBrick(bar)
	}

	require.NoError(t, r.Finish(nil, BandSnapshot{Name: "BOLL(20,2)"}))
	assert.Equal(t, 2, r.Ticks)
	assert.Equal(t, "100", r.FirstPrice.String())
	assert.Equal(t, "112", r.LastPrice.String())

	var buf bytes.Buffer
	r.Print(&buf, style.NewPlainTableStyle(), 2)

	out := buf.String()
	assert.Contains(t, out, "BTCUSDT RENKO BRICKS")
	assert.Contains(t, out, "▼ DOWN")
	assert.Contains(t, out, "BRICKS: 3 (up 2, down 1)")
	assert.Contains(t, out, "BOLL(20,2): not ready")

	// only the last two bricks are listed
	assert.Equal(t, 2, r.BrickTable(nil, 2).Length())
	assert.Equal(t, 3, r.BrickTable(nil, 0).Length())

	filename := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, r.WriteJSON(filename))
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"symbol": "BTCUSDT"`)
}
