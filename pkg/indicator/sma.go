package indicator

import (
	"fmt"

	"github.com/quantkit/bricks/pkg/types"
)

// SMA is the simple moving average over the last Window samples.
// The sum is maintained incrementally and re-summed from the buffer once per window to
// keep the floating point error from accumulating.
// Before it is ready the value is the average of the samples seen so far.
type SMA struct {
	Float64Series

	Window int

	rawValues *types.Queue
	sum       float64
	evictions int
}

func NewSMA(name string, window int) (*SMA, error) {
	if name == "" {
		name = fmt.Sprintf("SMA(%d)", window)
	}

	if err := validateWindow(name, window); err != nil {
		return nil, err
	}

	return &SMA{
		Float64Series: NewFloat64Series(name),
		Window:        window,
		rawValues:     types.NewQueue(window),
	}, nil
}

func (inc *SMA) Update(sample Sample) float64 {
	v := inc.Calculate(sample.Value)
	inc.samples++
	inc.ready = inc.samples >= inc.Window
	inc.PushAndEmit(v)
	return v
}

func (inc *SMA) Calculate(x float64) float64 {
	old, evicted := inc.rawValues.Push(x)
	if evicted {
		inc.evictions++
		if inc.evictions >= inc.Window {
			inc.evictions = 0
			inc.sum = inc.rawValues.Values().Sum()
		} else {
			inc.sum += x - old
		}
	} else {
		inc.sum += x
	}

	return inc.sum / float64(inc.rawValues.Len())
}

func (inc *SMA) Reset() {
	inc.reset()
	inc.rawValues.Reset()
	inc.sum = 0
	inc.evictions = 0
}

var _ Node = (*SMA)(nil)
