package renko

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/bricks/pkg/types"
)

func TestBrickStream(t *testing.T) {
	agg, err := NewAggregator("STREAMTEST", Number("5"))
	require.NoError(t, err)

	stream := &BrickStream{}
	driver := NewDriver(agg)
	driver.SetBrickEmitter(stream)

	var updates int
	var closed []types.RenkoBar
	stream.OnBrick(func(bar types.RenkoBar) { updates++ })
	stream.OnBrickClosed(func(bar types.RenkoBar) { closed = append(closed, bar) })

	for i, price := range []string{"50", "52", "55", "51", "50"} {
		driver.AddTick(types.Tick{Time: startTime.Add(time.Duration(i) * time.Minute), Price: Number(price)})
	}

	assert.Equal(t, 5, updates)
	require.Len(t, closed, 2)
	assert.Equal(t, "55", closed[0].Close.String())
	assert.Equal(t, "50", closed[1].Close.String())
	assert.True(t, closed[1].Closed)
}
