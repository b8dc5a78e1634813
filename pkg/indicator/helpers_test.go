package indicator

import (
	"time"
)

var testStartTime = time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

func feed(node Node, values ...float64) {
	for i, v := range values {
		node.Update(NewSample(testStartTime.Add(time.Duration(i)*time.Minute), v))
	}
}

// wave returns a deterministic sequence that is not monotonic.
func wave(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 100.0 + float64((i*7)%13) - float64((i*3)%5)*1.5
	}
	return values
}
