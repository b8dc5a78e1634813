package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Combinator(t *testing.T) {
	tests := []struct {
		name    string
		compose func(left, right Node) *Combinator
		want    float64
	}{
		{name: "plus", compose: Plus, want: 12},
		{name: "minus", compose: Minus, want: 8},
		{name: "times", compose: Times, want: 20},
		{name: "over", compose: Over, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.compose(NewIdentity("price"), NewConstant(2))
			assert.False(t, c.IsReady())

			got := c.Update(NewSample(testStartTime, 10))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, c.Last())
			assert.True(t, c.IsReady())
		})
	}
}

func Test_Combinator_Name(t *testing.T) {
	sma, err := NewSMA("", 3)
	require.NoError(t, err)

	c := Minus(sma, NewConstant(1.5))
	assert.Equal(t, "(SMA(3)-1.5)", c.Name())
	assert.Equal(t, OperatorMinus, c.Operator())
}

func Test_Combinator_ReadyWhenBothOperandsReady(t *testing.T) {
	fast, err := NewSMA("", 2)
	require.NoError(t, err)
	slow, err := NewSMA("", 4)
	require.NoError(t, err)

	diff := Minus(fast, slow)
	for i, v := range []float64{1, 2, 3, 4, 5, 6} {
		diff.Update(NewSample(testStartTime, v))
		assert.Equal(t, i+1 >= 4, diff.IsReady(), "sample %d", i)
	}

	// fast = (5+6)/2, slow = (3+4+5+6)/4
	assert.InDelta(t, 1.0, diff.Last(), 1e-12)
	assert.Equal(t, 6, fast.Samples())
	assert.Equal(t, 6, slow.Samples())
}

func Test_Combinator_OverZeroKeepsPreviousValue(t *testing.T) {
	divisor := NewIdentity("divisor")
	ratio := Over(NewConstant(10), divisor)

	assert.Equal(t, 5.0, ratio.Update(NewSample(testStartTime, 2)))
	assert.Equal(t, 5.0, ratio.Update(NewSample(testStartTime, 0)))
	assert.Equal(t, 2.5, ratio.Update(NewSample(testStartTime, 4)))
}

func Test_View(t *testing.T) {
	sma, err := NewSMA("", 2)
	require.NoError(t, err)

	view := View(sma)
	assert.Equal(t, sma.Name(), view.Name())

	feed(sma, 4, 6)
	assert.Equal(t, 5.0, view.Update(NewSample(testStartTime, 1000)))
	assert.Equal(t, 2, sma.Samples())
	assert.Equal(t, 2, view.Samples())
	assert.True(t, view.IsReady())

	view.Reset()
	assert.True(t, sma.IsReady())
}

func Test_View_SharedOperandIsFedOnce(t *testing.T) {
	middle, err := NewSMA("", 3)
	require.NoError(t, err)

	upper := Plus(View(middle), NewConstant(1))
	lower := Minus(View(middle), NewConstant(1))

	for _, v := range []float64{3, 6, 9} {
		s := NewSample(testStartTime, v)
		middle.Update(s)
		upper.Update(s)
		lower.Update(s)
	}

	assert.Equal(t, 3, middle.Samples())
	assert.InDelta(t, 7.0, upper.Last(), 1e-12)
	assert.InDelta(t, 5.0, lower.Last(), 1e-12)
}

func Test_Constant(t *testing.T) {
	c := NewConstant(3.5)
	assert.True(t, c.IsReady())
	assert.Equal(t, 3.5, c.Last())
	assert.Equal(t, "3.5", c.Name())

	assert.Equal(t, 3.5, c.Update(NewSample(testStartTime, 100)))

	c.Reset()
	assert.True(t, c.IsReady())
	assert.Equal(t, 3.5, c.Last())
}

func Test_Identity(t *testing.T) {
	id := NewIdentity("close")
	assert.False(t, id.IsReady())
	assert.Equal(t, 0.0, id.Last())

	var updates []float64
	id.OnUpdate(func(v float64) {
		updates = append(updates, v)
	})

	feed(id, 1.25, 7)
	assert.True(t, id.IsReady())
	assert.Equal(t, 7.0, id.Last())
	assert.Equal(t, 1.25, id.Index(1))
	assert.Equal(t, []float64{1.25, 7}, updates)
}
