package types

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/quantkit/bricks/pkg/fixedpoint"
)

type BrickDirection int

const (
	BrickDirectionFlat BrickDirection = 0
	BrickDirectionUp   BrickDirection = 1
	BrickDirectionDown BrickDirection = -1
)

func (d BrickDirection) String() string {
	switch d {
	case BrickDirectionUp:
		return "UP"
	case BrickDirectionDown:
		return "DOWN"
	}
	return "FLAT"
}

// RenkoBar is a bar sectioned by the movement of price instead of time.
// The bar closes once the price reaches Open +/- BrickSize, and the close is clamped
// into that envelope. A closed bar is never mutated again.
type RenkoBar struct {
	Symbol string `json:"symbol"`

	BrickSize fixedpoint.Value `json:"brickSize"`
	Open      fixedpoint.Value `json:"open"`
	Close     fixedpoint.Value `json:"close"`
	High      fixedpoint.Value `json:"high"`
	Low       fixedpoint.Value `json:"low"`

	Volume uint64 `json:"volume"`

	// Start is the time of the first update, End the time of the latest one.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Closed bool `json:"closed"`
}

var _ BaseData = (*RenkoBar)(nil)

// NewRenkoBar creates an open bar. start may be zero, in which case the first update
// sets it.
func NewRenkoBar(symbol string, start time.Time, brickSize, open fixedpoint.Value, volume uint64) (*RenkoBar, error) {
	if brickSize.Sign() <= 0 {
		return nil, InvalidConfigurationError("brick size must be positive, %s given", brickSize.String())
	}

	return &RenkoBar{
		Symbol:    symbol,
		BrickSize: brickSize,
		Open:      open,
		Close:     open,
		High:      open,
		Low:       open,
		Volume:    volume,
		Start:     start,
		End:       start,
	}, nil
}

// Update applies one observation to the bar and returns whether the bar is closed.
// Updating a closed bar is a no-op. A price beyond the envelope closes the bar once,
// at the boundary; the excess is left for the owner to feed into the next bar.
func (b *RenkoBar) Update(t time.Time, price fixedpoint.Value, volumeSinceLastUpdate uint64) bool {
	if b.Closed {
		return true
	}

	if b.Start.IsZero() {
		b.Start = t
	}
	b.End = t

	lowClose := b.Open.Sub(b.BrickSize)
	highClose := b.Open.Add(b.BrickSize)

	b.Close = price.Clamp(lowClose, highClose)
	b.Volume += volumeSinceLastUpdate

	if price.Compare(lowClose) <= 0 || price.Compare(highClose) >= 0 {
		b.Closed = true
	}

	b.High = fixedpoint.Max(b.High, b.Close)
	b.Low = fixedpoint.Min(b.Low, b.Close)
	return b.Closed
}

// Direction reports whether the bar moved up or down from its open.
func (b *RenkoBar) Direction() BrickDirection {
	switch b.Close.Compare(b.Open) {
	case 1:
		return BrickDirectionUp
	case -1:
		return BrickDirectionDown
	}
	return BrickDirectionFlat
}

// Duration is the time between the first and the latest update.
func (b *RenkoBar) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Snapshot returns a copy that is safe to hand out to listeners.
func (b *RenkoBar) Snapshot() RenkoBar {
	return *b
}

func (b *RenkoBar) String() string {
	return fmt.Sprintf("RenkoBar %s %s brick=%s O:%s H:%s L:%s C:%s V:%d closed=%v",
		b.Symbol,
		b.Start.Format(time.RFC3339),
		b.BrickSize.String(),
		b.Open.String(), b.High.String(), b.Low.String(), b.Close.String(),
		b.Volume,
		b.Closed)
}

func (b *RenkoBar) Reader(config SubscriptionConfig, line string, date time.Time) (BaseData, error) {
	return nil, errors.Wrapf(ErrNotSupported, "renko bar %s can not be read from a data line", config.Symbol)
}

func (b *RenkoBar) GetSource(config SubscriptionConfig, date time.Time) (string, error) {
	return "", errors.Wrapf(ErrNotSupported, "renko bar %s has no data source", config.Symbol)
}
