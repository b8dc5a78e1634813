package tsv

import (
	"strconv"
	"time"

	"github.com/quantkit/bricks/pkg/types"
)

// BrickRow is a closed brick with the band values computed after its close.
type BrickRow struct {
	Bar types.RenkoBar

	BandReady bool
	Middle    float64
	Upper     float64
	Lower     float64
}

func (r BrickRow) TsvHeader() []string {
	return []string{
		"symbol", "start", "end", "direction",
		"open", "high", "low", "close", "volume",
		"ready", "middle", "upper", "lower",
	}
}

func (r BrickRow) TsvValues() []string {
	bar := r.Bar
	values := []string{
		bar.Symbol,
		bar.Start.UTC().Format(time.RFC3339),
		bar.End.UTC().Format(time.RFC3339),
		bar.Direction().String(),
		bar.Open.String(),
		bar.High.String(),
		bar.Low.String(),
		bar.Close.String(),
		strconv.FormatUint(bar.Volume, 10),
		strconv.FormatBool(r.BandReady),
	}

	if !r.BandReady {
		return append(values, "", "", "")
	}

	return append(values, formatFloat(r.Middle), formatFloat(r.Upper), formatFloat(r.Lower))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
