package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveWMA(values []float64, window int) float64 {
	if len(values) > window {
		values = values[len(values)-window:]
	}

	var numerator, denominator float64
	for i, v := range values {
		numerator += float64(i+1) * v
		denominator += float64(i + 1)
	}
	return numerator / denominator
}

func Test_WMA(t *testing.T) {
	wma, err := NewWMA("", 5)
	require.NoError(t, err)

	values := wave(200)
	for i, v := range values {
		got := wma.Update(NewSample(testStartTime, v))
		assert.InDelta(t, naiveWMA(values[:i+1], 5), got, 1e-9, "sample %d", i)
		assert.Equal(t, i+1 >= 5, wma.IsReady())
	}
}

func Test_WMA_HandComputed(t *testing.T) {
	wma, err := NewWMA("", 3)
	require.NoError(t, err)

	feed(wma, 1, 2, 3)
	// (1*1 + 2*2 + 3*3) / 6
	assert.InDelta(t, 14.0/6.0, wma.Last(), 1e-12)

	feed(wma, 4)
	// (2*1 + 3*2 + 4*3) / 6
	assert.InDelta(t, 20.0/6.0, wma.Last(), 1e-12)
}
