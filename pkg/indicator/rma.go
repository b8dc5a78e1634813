package indicator

import "fmt"

// RMA is Wilder's running moving average, an exponential average with the
// multiplier 1 / Window.
// Refer: https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/overlap/rma.py#L5
type RMA struct {
	Float64Series

	Window int
}

func NewRMA(name string, window int) (*RMA, error) {
	if name == "" {
		name = fmt.Sprintf("RMA(%d)", window)
	}

	if err := validateWindow(name, window); err != nil {
		return nil, err
	}

	return &RMA{
		Float64Series: NewFloat64Series(name),
		Window:        window,
	}, nil
}

func (inc *RMA) Update(sample Sample) float64 {
	v := inc.Calculate(sample.Value)
	inc.samples++
	inc.ready = inc.samples >= inc.Window
	inc.PushAndEmit(v)
	return v
}

func (inc *RMA) Calculate(x float64) float64 {
	if inc.samples == 0 {
		return x
	}

	lambda := 1 / float64(inc.Window)
	return inc.current*(1-lambda) + x*lambda
}

func (inc *RMA) Reset() {
	inc.reset()
}

var _ Node = (*RMA)(nil)
