package indicator

import (
	"fmt"

	"github.com/quantkit/bricks/pkg/types"
)

// WMA is the linearly weighted moving average, the newest sample weighs Window and the
// oldest weighs 1.
//
// When the window is full, pushing x and evicting the oldest value updates the
// weighted numerator as
//
//	numerator' = numerator + Window*x - sum
//	sum'       = sum + x - oldest
//
// so each update is O(1).
type WMA struct {
	Float64Series

	Window int

	rawValues *types.Queue
	numerator float64
	sum       float64
	evictions int
}

func NewWMA(name string, window int) (*WMA, error) {
	if name == "" {
		name = fmt.Sprintf("WMA(%d)", window)
	}

	if err := validateWindow(name, window); err != nil {
		return nil, err
	}

	return &WMA{
		Float64Series: NewFloat64Series(name),
		Window:        window,
		rawValues:     types.NewQueue(window),
	}, nil
}

func (inc *WMA) Update(sample Sample) float64 {
	v := inc.Calculate(sample.Value)
	inc.samples++
	inc.ready = inc.samples >= inc.Window
	inc.PushAndEmit(v)
	return v
}

func (inc *WMA) Calculate(x float64) float64 {
	old, evicted := inc.rawValues.Push(x)
	n := inc.rawValues.Len()

	if evicted {
		inc.evictions++
		if inc.evictions >= inc.Window {
			inc.evictions = 0
			inc.resync()
		} else {
			inc.numerator += float64(n)*x - inc.sum
			inc.sum += x - old
		}
	} else {
		inc.numerator += float64(n) * x
		inc.sum += x
	}

	denominator := float64(n*(n+1)) / 2.0
	return inc.numerator / denominator
}

func (inc *WMA) resync() {
	inc.numerator = 0
	inc.sum = 0
	for i, v := range inc.rawValues.Values() {
		inc.numerator += float64(i+1) * v
		inc.sum += v
	}
}

func (inc *WMA) Reset() {
	inc.reset()
	inc.rawValues.Reset()
	inc.numerator = 0
	inc.sum = 0
	inc.evictions = 0
}

var _ Node = (*WMA)(nil)
