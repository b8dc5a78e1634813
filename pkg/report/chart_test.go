package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/bricks/pkg/fixedpoint"
)

func TestSessionReport_DrawBands(t *testing.T) {
	r := NewSessionReport("BTCUSDT", fixedpoint.NewFromInt(10))
	assert.NotEmpty(t, r.ID)

	r.AddBandPoint(1, 2, 0)
	assert.Empty(t, r.BandPoints, "no brick to attach the band point to")

	_, err := r.DrawBands()
	assert.Error(t, err)

	for i, bar := range testBricks(t) {
		r.AddBrick(bar)
		mid := 110.0 + float64(i)
		r.AddBandPoint(mid, mid+5, mid-5)
	}
	require.Len(t, r.BandPoints, 3)
	assert.Equal(t, 2, r.BandPoints[2].Index)
	assert.Equal(t, 110.0, r.BandPoints[2].Close)

	canvas, err := r.DrawBands()
	require.NoError(t, err)
	assert.Len(t, canvas.Series, 4)

	var buf bytes.Buffer
	require.NoError(t, r.RenderBands(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}
