package renko

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/quantkit/bricks/pkg/fixedpoint"
	"github.com/quantkit/bricks/pkg/types"
)

const MaxNumOfBricks = 5_000
const MaxNumOfBricksTruncateSize = 2_500

var ErrNoBrick = errors.New("no brick to continue from")

// Aggregator owns the current renko bar of one symbol and the replacement of the bar
// once it closes. Replacing the bar is never a side effect of Update: the owner calls
// Start or Next explicitly.
type Aggregator struct {
	symbol    string
	brickSize fixedpoint.Value

	current *types.RenkoBar
	history []types.RenkoBar
}

func NewAggregator(symbol string, brickSize fixedpoint.Value) (*Aggregator, error) {
	if brickSize.Sign() <= 0 {
		return nil, types.InvalidConfigurationError("%s: brick size must be positive, %s given", symbol, brickSize.String())
	}

	return &Aggregator{
		symbol:    symbol,
		brickSize: brickSize,
	}, nil
}

func (a *Aggregator) Symbol() string { return a.symbol }

func (a *Aggregator) BrickSize() fixedpoint.Value { return a.brickSize }

// Start installs a new open bar. A closed current bar is moved into the history; an
// open one is discarded.
func (a *Aggregator) Start(t time.Time, open fixedpoint.Value) *types.RenkoBar {
	a.archive()

	bar, err := types.NewRenkoBar(a.symbol, t, a.brickSize, open, 0)
	if err != nil {
		// the brick size was validated by NewAggregator
		panic(err)
	}

	a.current = bar
	return bar
}

// Next starts a new bar that opens at the close of the current one.
func (a *Aggregator) Next(t time.Time) (*types.RenkoBar, error) {
	if a.current == nil {
		return nil, ErrNoBrick
	}

	return a.Start(t, a.current.Close), nil
}

// Update feeds one observation into the current bar and returns whether it is closed.
// The first observation seeds the open price of the first bar. Once closed, the bar
// ignores further updates until the owner starts the next one.
func (a *Aggregator) Update(t time.Time, price fixedpoint.Value, volume uint64) bool {
	if a.current == nil {
		a.Start(t, price)
	}

	return a.current.Update(t, price, volume)
}

// Current returns a copy of the current bar.
func (a *Aggregator) Current() (types.RenkoBar, bool) {
	if a.current == nil {
		return types.RenkoBar{}, false
	}
	return a.current.Snapshot(), true
}

// History returns the closed bars, oldest first.
func (a *Aggregator) History() []types.RenkoBar {
	bars := make([]types.RenkoBar, len(a.history))
	copy(bars, a.history)
	return bars
}

func (a *Aggregator) archive() {
	if a.current == nil {
		return
	}

	if !a.current.Closed {
		log.Debugf("%s: discarding open renko bar %s", a.symbol, a.current.String())
		return
	}

	a.history = append(a.history, a.current.Snapshot())
	if len(a.history) > MaxNumOfBricks {
		a.history = a.history[len(a.history)-MaxNumOfBricksTruncateSize:]
	}
}
