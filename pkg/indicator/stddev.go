package indicator

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/quantkit/bricks/pkg/types"
)

type StdDevType int

const (
	// StdDevTypePopulation divides the squared deviations by N
	StdDevTypePopulation StdDevType = iota
	// StdDevTypeSample divides the squared deviations by N-1
	StdDevTypeSample
)

func (t StdDevType) String() string {
	switch t {
	case StdDevTypePopulation:
		return "population"
	case StdDevTypeSample:
		return "sample"
	}
	return fmt.Sprintf("StdDevType(%d)", int(t))
}

func ParseStdDevType(s string) (StdDevType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "population", "pop":
		return StdDevTypePopulation, nil
	case "sample":
		return StdDevTypeSample, nil
	}
	return 0, types.InvalidConfigurationError("unknown standard deviation type %q", s)
}

func (t StdDevType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *StdDevType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := ParseStdDevType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *StdDevType) UnmarshalYAML(unmarshal func(a interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	v, err := ParseStdDevType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// StdDev is the standard deviation of the last Window samples.
//
// The mean and the sum of squared deviations (m2) are maintained with Welford's
// recurrence, extended to remove the evicted sample:
//
//	add x:    n++; d = x - mean; mean += d/n; m2 += d*(x - mean)
//	remove y: n--; d = y - mean; mean -= d/n; m2 -= d*(y - mean)
//
// Once per window the accumulators are recomputed from the buffered samples.
type StdDev struct {
	Float64Series

	Window int
	Type   StdDevType

	rawValues *types.Queue
	mean      float64
	m2        float64
	evictions int
}

func NewStdDev(name string, window int, stdDevType StdDevType) (*StdDev, error) {
	if name == "" {
		name = fmt.Sprintf("STDDEV(%d)", window)
	}

	if err := validateWindow(name, window); err != nil {
		return nil, err
	}

	if stdDevType != StdDevTypePopulation && stdDevType != StdDevTypeSample {
		return nil, types.InvalidConfigurationError("%s: unknown standard deviation type %d", name, stdDevType)
	}

	return &StdDev{
		Float64Series: NewFloat64Series(name),
		Window:        window,
		Type:          stdDevType,
		rawValues:     types.NewQueue(window),
	}, nil
}

func (inc *StdDev) Update(sample Sample) float64 {
	v := inc.Calculate(sample.Value)
	inc.samples++
	inc.ready = inc.samples >= inc.Window
	inc.PushAndEmit(v)
	return v
}

func (inc *StdDev) Calculate(x float64) float64 {
	old, evicted := inc.rawValues.Push(x)
	if evicted {
		inc.evictions++
		if inc.evictions >= inc.Window {
			inc.evictions = 0
			inc.resync()
			return inc.value()
		}

		inc.remove(old, inc.rawValues.Len())
	}

	n := float64(inc.rawValues.Len())
	d := x - inc.mean
	inc.mean += d / n
	inc.m2 += d * (x - inc.mean)
	if inc.m2 < 0 {
		inc.m2 = 0
	}

	return inc.value()
}

// remove takes y out of the accumulators, which hold n samples before the removal.
func (inc *StdDev) remove(y float64, n int) {
	if n <= 1 {
		inc.mean = 0
		inc.m2 = 0
		return
	}

	remaining := float64(n - 1)
	d := y - inc.mean
	inc.mean -= d / remaining
	inc.m2 -= d * (y - inc.mean)
}

func (inc *StdDev) resync() {
	values := inc.rawValues.Values()
	if len(values) < 2 {
		inc.mean = values.Mean()
		inc.m2 = 0
		return
	}

	mean, variance := stat.MeanVariance(values, nil)
	m2 := variance * float64(len(values)-1)
	if drift := math.Abs(m2 - inc.m2); drift > 1e-6 {
		log.Debugf("%s: resynced squared deviation sum, drift %g", inc.name, drift)
	}

	inc.mean = mean
	inc.m2 = m2
}

func (inc *StdDev) value() float64 {
	n := inc.rawValues.Len()
	switch inc.Type {
	case StdDevTypeSample:
		if n < 2 {
			return 0
		}
		return math.Sqrt(inc.m2 / float64(n-1))
	default:
		if n < 1 {
			return 0
		}
		return math.Sqrt(inc.m2 / float64(n))
	}
}

func (inc *StdDev) Reset() {
	inc.reset()
	inc.rawValues.Reset()
	inc.mean = 0
	inc.m2 = 0
	inc.evictions = 0
}

// CalculateStdDev computes the standard deviation of values in one pass over the slice.
func CalculateStdDev(values []float64, stdDevType StdDevType) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("can not calculate standard deviation of an empty slice")
	}

	if len(values) == 1 {
		return 0, nil
	}

	_, variance := stat.MeanVariance(values, nil)
	if stdDevType == StdDevTypePopulation {
		variance = variance * float64(len(values)-1) / float64(len(values))
	}
	return math.Sqrt(variance), nil
}

var _ Node = (*StdDev)(nil)
