package indicator

import (
	"github.com/quantkit/bricks/pkg/types"
)

const MaxNumOfValues = 5_000
const MaxNumOfValuesTruncateSize = 2_500

// Float64Series carries the state every node has in common: the value history, the
// cached readiness flag, the sample counter and the update callbacks.
type Float64Series struct {
	Float64Updater

	Values types.Float64Slice

	name    string
	current float64
	samples int
	ready   bool
}

func NewFloat64Series(name string) Float64Series {
	return Float64Series{name: name}
}

func (s *Float64Series) Name() string  { return s.name }
func (s *Float64Series) Last() float64 { return s.current }
func (s *Float64Series) Samples() int  { return s.samples }
func (s *Float64Series) IsReady() bool { return s.ready }

// Index returns the i-th previous value, 0 is the latest one.
func (s *Float64Series) Index(i int) float64 {
	return s.Values.Index(i)
}

// PushAndEmit records v as the current value and notifies the listeners.
func (s *Float64Series) PushAndEmit(v float64) {
	s.current = v
	s.Values.Push(v)
	if len(s.Values) > MaxNumOfValues {
		s.Values = s.Values.Truncate(MaxNumOfValuesTruncateSize)
	}

	s.EmitUpdate(v)
}

func (s *Float64Series) reset() {
	s.Values = nil
	s.current = 0
	s.samples = 0
	s.ready = false
}
