package indicator

import "strconv"

// Constant ignores its input and always reports the same value.
type Constant struct {
	Float64Series
	value float64
}

func NewConstant(v float64) *Constant {
	return NewNamedConstant(strconv.FormatFloat(v, 'g', -1, 64), v)
}

func NewNamedConstant(name string, v float64) *Constant {
	c := &Constant{
		Float64Series: NewFloat64Series(name),
		value:         v,
	}
	c.current = v
	c.ready = true
	return c
}

func (c *Constant) Update(sample Sample) float64 {
	c.samples++
	c.PushAndEmit(c.value)
	return c.value
}

func (c *Constant) Reset() {
	c.reset()
	c.current = c.value
	c.ready = true
}

var _ Node = (*Constant)(nil)
