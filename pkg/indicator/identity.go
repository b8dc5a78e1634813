package indicator

// Identity is the value node of the graph: its value is the latest sample, unmodified.
type Identity struct {
	Float64Series
}

func NewIdentity(name string) *Identity {
	return &Identity{Float64Series: NewFloat64Series(name)}
}

func (inc *Identity) Update(sample Sample) float64 {
	inc.samples++
	inc.ready = true
	inc.PushAndEmit(sample.Value)
	return sample.Value
}

func (inc *Identity) Reset() {
	inc.reset()
}

var _ Node = (*Identity)(nil)
