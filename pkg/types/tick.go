package types

import (
	"fmt"
	"time"

	"github.com/quantkit/bricks/pkg/fixedpoint"
)

// Tick is a single (time, price, volume) observation.
type Tick struct {
	Symbol string           `json:"symbol,omitempty"`
	Time   time.Time        `json:"time"`
	Price  fixedpoint.Value `json:"price"`
	Volume uint64           `json:"volume"`
}

func (t Tick) String() string {
	return fmt.Sprintf("%s %s price=%s volume=%d", t.Time.Format(time.RFC3339Nano), t.Symbol, t.Price.String(), t.Volume)
}
