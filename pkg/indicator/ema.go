package indicator

import "fmt"

// EMA is the exponential moving average with the multiplier 2 / (Window + 1).
// The first sample seeds the average.
type EMA struct {
	Float64Series

	Window int

	multiplier float64
}

func NewEMA(name string, window int) (*EMA, error) {
	if name == "" {
		name = fmt.Sprintf("EMA(%d)", window)
	}

	if err := validateWindow(name, window); err != nil {
		return nil, err
	}

	return &EMA{
		Float64Series: NewFloat64Series(name),
		Window:        window,
		multiplier:    2.0 / float64(1+window),
	}, nil
}

func (inc *EMA) Update(sample Sample) float64 {
	v := inc.Calculate(sample.Value)
	inc.samples++
	inc.ready = inc.samples >= inc.Window
	inc.PushAndEmit(v)
	return v
}

func (inc *EMA) Calculate(x float64) float64 {
	if inc.samples == 0 {
		return x
	}

	m := inc.multiplier
	return (1.0-m)*inc.current + m*x
}

func (inc *EMA) Reset() {
	inc.reset()
}

var _ Node = (*EMA)(nil)
