package indicator

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/quantkit/bricks/pkg/types"
)

// Sample is a single timestamped input of the indicator graph.
type Sample struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

var _ types.BaseData = Sample{}

func NewSample(t time.Time, v float64) Sample {
	return Sample{Time: t, Value: v}
}

func (s Sample) String() string {
	return fmt.Sprintf("%s %f", s.Time.Format(time.RFC3339), s.Value)
}

func (s Sample) Reader(config types.SubscriptionConfig, line string, date time.Time) (types.BaseData, error) {
	return nil, errors.Wrap(types.ErrNotSupported, "indicator sample can not be parsed from a data line")
}

func (s Sample) GetSource(config types.SubscriptionConfig, date time.Time) (string, error) {
	return "", errors.Wrap(types.ErrNotSupported, "indicator sample has no data source")
}
