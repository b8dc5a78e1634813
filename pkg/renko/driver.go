package renko

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/quantkit/bricks/pkg/metrics"
	"github.com/quantkit/bricks/pkg/types"
)

const DefaultMaxRefeed = 1_000

type BrickEmitter interface {
	EmitBrick(bar types.RenkoBar)
	EmitBrickClosed(bar types.RenkoBar)
}

// Driver feeds ticks into an Aggregator and starts the next bar whenever the current
// one closes.
//
// By default a tick closes at most one brick, even when its price jumps over several
// brick widths. With Refeed enabled, the driver feeds the same price again into each
// new bar until it no longer closes, emitting one closed brick per brick width.
type Driver struct {
	Refeed    bool
	MaxRefeed int

	mu         sync.Mutex
	aggregator *Aggregator
	emitter    BrickEmitter
	logger     log.FieldLogger
}

func NewDriver(aggregator *Aggregator) *Driver {
	return &Driver{
		MaxRefeed:  DefaultMaxRefeed,
		aggregator: aggregator,
		logger:     log.WithField("symbol", aggregator.Symbol()),
	}
}

func (d *Driver) SetBrickEmitter(emitter BrickEmitter) {
	d.emitter = emitter
}

func (d *Driver) Aggregator() *Aggregator {
	return d.aggregator
}

// AddTick processes one tick. Ticks are expected in time order.
func (d *Driver) AddTick(tick types.Tick) {
	d.mu.Lock()
	defer d.mu.Unlock()

	symbol := d.aggregator.Symbol()
	metrics.RenkoTicksMetrics.WithLabelValues(symbol).Inc()

	if !d.aggregator.Update(tick.Time, tick.Price, tick.Volume) {
		d.emitOpen()
		return
	}

	d.closeAndContinue(tick)

	if d.Refeed {
		maxRefeed := d.MaxRefeed
		if maxRefeed <= 0 {
			maxRefeed = DefaultMaxRefeed
		}

		refeeds := 0
		for d.aggregator.Update(tick.Time, tick.Price, 0) {
			d.closeAndContinue(tick)
			metrics.RenkoRefeedMetrics.WithLabelValues(symbol).Inc()

			refeeds++
			if refeeds >= maxRefeed {
				d.logger.Warnf("price %s jumped over more than %d bricks, dropping the rest of the gap", tick.Price.String(), maxRefeed)
				break
			}
		}
	}

	d.emitOpen()
}

func (d *Driver) closeAndContinue(tick types.Tick) {
	closed, _ := d.aggregator.Current()
	metrics.RenkoBricksClosedMetrics.WithLabelValues(closed.Symbol, closed.Direction().String()).Inc()
	d.logger.Debugf("brick closed: %s", closed.String())

	if d.emitter != nil {
		d.emitter.EmitBrickClosed(closed)
	}

	next, err := d.aggregator.Next(tick.Time)
	if err != nil {
		d.logger.WithError(err).Error("can not start the next brick")
		return
	}

	metrics.RenkoOpenBrickPriceMetrics.WithLabelValues(next.Symbol).Set(next.Open.Float64())
}

func (d *Driver) emitOpen() {
	if d.emitter == nil {
		return
	}

	if bar, ok := d.aggregator.Current(); ok {
		d.emitter.EmitBrick(bar)
	}
}

// Run consumes ticks until the channel is closed or the context is cancelled.
func (d *Driver) Run(ctx context.Context, ticks <-chan types.Tick) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case tick, ok := <-ticks:
			if !ok {
				return nil
			}
			d.AddTick(tick)
		}
	}
}

// Peek returns the current bar, useful for replays that end in the middle of a brick.
func (d *Driver) Peek() (types.RenkoBar, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.aggregator.Current()
}
