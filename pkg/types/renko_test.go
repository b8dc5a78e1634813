package types

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/bricks/pkg/fixedpoint"
)

func number(s string) fixedpoint.Value {
	return fixedpoint.MustNewFromString(s)
}

func newTestBar(t *testing.T) *RenkoBar {
	bar, err := NewRenkoBar("BTCUSDT", time.Time{}, number("10"), number("100"), 0)
	require.NoError(t, err)
	return bar
}

func TestNewRenkoBar(t *testing.T) {
	t.Run("non-positive brick size", func(t *testing.T) {
		for _, size := range []string{"0", "-1"} {
			bar, err := NewRenkoBar("BTCUSDT", time.Now(), number(size), number("100"), 0)
			assert.Nil(t, bar)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "brick size %s", size)
		}
	})

	t.Run("initial state", func(t *testing.T) {
		start := time.Date(2023, 10, 1, 1, 35, 0, 0, time.UTC)
		bar, err := NewRenkoBar("BTCUSDT", start, number("10"), number("100"), 7)
		require.NoError(t, err)
		assert.Equal(t, "100", bar.Open.String())
		assert.Equal(t, "100", bar.Close.String())
		assert.Equal(t, "100", bar.High.String())
		assert.Equal(t, "100", bar.Low.String())
		assert.Equal(t, uint64(7), bar.Volume)
		assert.Equal(t, start, bar.Start)
		assert.Equal(t, start, bar.End)
		assert.False(t, bar.Closed)
		assert.Equal(t, BrickDirectionFlat, bar.Direction())
	})
}

func TestRenkoBar_Update(t *testing.T) {
	now := time.Date(2023, 10, 1, 1, 35, 0, 0, time.UTC)

	tests := []struct {
		name      string
		price     string
		closed    bool
		close     string
		direction BrickDirection
	}{
		{name: "just below upper boundary", price: "109.99", closed: false, close: "109.99", direction: BrickDirectionUp},
		{name: "upper boundary", price: "110", closed: true, close: "110", direction: BrickDirectionUp},
		{name: "gap above", price: "137.5", closed: true, close: "110", direction: BrickDirectionUp},
		{name: "just above lower boundary", price: "90.01", closed: false, close: "90.01", direction: BrickDirectionDown},
		{name: "lower boundary", price: "90", closed: true, close: "90", direction: BrickDirectionDown},
		{name: "gap below", price: "55", closed: true, close: "90", direction: BrickDirectionDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := newTestBar(t)
			closed := bar.Update(now, number(tt.price), 1)
			assert.Equal(t, tt.closed, closed)
			assert.Equal(t, tt.closed, bar.Closed)
			assert.Equal(t, tt.close, bar.Close.String())
			assert.Equal(t, tt.direction, bar.Direction())
		})
	}
}

func TestRenkoBar_UpdateSetsTimes(t *testing.T) {
	bar := newTestBar(t)
	t1 := time.Date(2023, 10, 1, 1, 35, 0, 0, time.UTC)
	t2 := t1.Add(5 * time.Second)

	bar.Update(t1, number("101"), 0)
	assert.Equal(t, t1, bar.Start)
	assert.Equal(t, t1, bar.End)

	bar.Update(t2, number("102"), 0)
	assert.Equal(t, t1, bar.Start)
	assert.Equal(t, t2, bar.End)
	assert.Equal(t, 5*time.Second, bar.Duration())
}

func TestRenkoBar_ClosedIsImmutable(t *testing.T) {
	bar := newTestBar(t)
	t1 := time.Date(2023, 10, 1, 1, 35, 0, 0, time.UTC)

	require.True(t, bar.Update(t1, number("111"), 3))
	before := bar.Snapshot()

	assert.True(t, bar.Update(t1.Add(time.Minute), number("50"), 100))
	assert.True(t, bar.Update(t1.Add(2*time.Minute), number("105"), 1))

	assert.Equal(t, before.Open.String(), bar.Open.String())
	assert.Equal(t, before.Close.String(), bar.Close.String())
	assert.Equal(t, before.High.String(), bar.High.String())
	assert.Equal(t, before.Low.String(), bar.Low.String())
	assert.Equal(t, before.Volume, bar.Volume)
	assert.Equal(t, before.End, bar.End)
}

func TestRenkoBar_VolumeAccumulation(t *testing.T) {
	bar := newTestBar(t)
	now := time.Now()
	for i, v := range []uint64{5, 0, 3} {
		bar.Update(now.Add(time.Duration(i)*time.Second), number([]string{"104", "97", "101"}[i]), v)
	}
	assert.Equal(t, uint64(8), bar.Volume)
	assert.False(t, bar.Closed)
}

func TestRenkoBar_Envelope(t *testing.T) {
	bar := newTestBar(t)
	lowClose := bar.Open.Sub(bar.BrickSize)
	highClose := bar.Open.Add(bar.BrickSize)

	now := time.Now()
	prices := []string{"101.5", "95", "108", "92.25", "109.99", "90.01", "100", "121"}
	for i, p := range prices {
		bar.Update(now.Add(time.Duration(i)*time.Second), number(p), 1)

		assert.True(t, bar.Low.Compare(bar.Close) <= 0, "low <= close after %s", p)
		assert.True(t, bar.Close.Compare(bar.High) <= 0, "close <= high after %s", p)
		assert.True(t, lowClose.Compare(bar.Low) <= 0, "low within envelope after %s", p)
		assert.True(t, bar.High.Compare(highClose) <= 0, "high within envelope after %s", p)
	}

	assert.True(t, bar.Closed)
	assert.Equal(t, "110", bar.High.String())
	assert.Equal(t, "90.01", bar.Low.String())
}

func TestRenkoBar_NotSupported(t *testing.T) {
	bar := newTestBar(t)
	config := SubscriptionConfig{Symbol: "BTCUSDT"}

	data, err := bar.Reader(config, "2023-10-01,100,1", time.Now())
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, ErrNotSupported))

	source, err := bar.GetSource(config, time.Now())
	assert.Empty(t, source)
	assert.True(t, errors.Is(err, ErrNotSupported))
}
