package replay

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/quantkit/bricks/pkg/config"
	"github.com/quantkit/bricks/pkg/data/tsv"
	"github.com/quantkit/bricks/pkg/indicator"
	"github.com/quantkit/bricks/pkg/metrics"
	"github.com/quantkit/bricks/pkg/renko"
	"github.com/quantkit/bricks/pkg/report"
	"github.com/quantkit/bricks/pkg/types"
)

// Session replays the ticks of one symbol: the ticks are bricked by a renko driver
// and the close of every closed brick is fed into the Bollinger bands.
//
//go:generate callbackgen -type Session
type Session struct {
	Config config.Session

	Driver *renko.Driver
	Stream *renko.BrickStream
	Boll   *indicator.BOLL
	Report *report.SessionReport

	writer   *tsv.Writer
	writeErr error

	tickCallbacks []func(tick types.Tick)

	logger log.FieldLogger
}

func NewSession(conf config.Session) (*Session, error) {
	aggregator, err := renko.NewAggregator(conf.Symbol, conf.BrickSize)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("BOLL(%d,%s)", conf.Boll.Window, strconv.FormatFloat(conf.Boll.K, 'g', -1, 64))
	boll, err := indicator.NewNamedBOLL(name, conf.Boll.Window, conf.Boll.K, conf.Boll.MovingAverageType, conf.Boll.StdDevType)
	if err != nil {
		return nil, err
	}

	driver := renko.NewDriver(aggregator)
	driver.Refeed = conf.Refeed
	if conf.MaxRefeed > 0 {
		driver.MaxRefeed = conf.MaxRefeed
	}

	s := &Session{
		Config: conf,
		Driver: driver,
		Stream: &renko.BrickStream{},
		Boll:   boll,
		Report: report.NewSessionReport(conf.Symbol, conf.BrickSize),
		logger: log.WithField("session", conf.Symbol),
	}

	driver.SetBrickEmitter(s.Stream)
	s.Stream.OnBrickClosed(s.handleBrickClosed)
	boll.OnBandUpdate(func(mid, upBand, downBand float64) {
		metrics.UpdateBollingerMetrics(conf.Symbol, boll.Name(), boll.IsReady(), mid, upBand, downBand)
	})

	return s, nil
}

// SetWriter enables the TSV output of the closed bricks.
func (s *Session) SetWriter(w *tsv.Writer) {
	s.writer = w
}

func (s *Session) handleBrickClosed(bar types.RenkoBar) {
	s.Boll.Update(indicator.Sample{Time: bar.End, Value: bar.Close.Float64()})
	s.Report.AddBrick(bar)
	if s.Boll.IsReady() {
		s.Report.AddBandPoint(s.Boll.LastMiddle(), s.Boll.LastUpBand(), s.Boll.LastDownBand())
	}

	s.logger.Debugf("%s %s middle=%f", bar.String(), s.Boll.Name(), s.Boll.LastMiddle())

	if s.writer == nil || s.writeErr != nil {
		return
	}

	row := tsv.BrickRow{Bar: bar, BandReady: s.Boll.IsReady()}
	if row.BandReady {
		row.Middle = s.Boll.LastMiddle()
		row.Upper = s.Boll.LastUpBand()
		row.Lower = s.Boll.LastDownBand()
	}

	if err := s.writer.WriteRow(row); err != nil {
		s.logger.WithError(err).Error("can not write the brick row")
		s.writeErr = err
	}
}

func (s *Session) AddTick(tick types.Tick) {
	s.Report.AddTick(tick)
	s.Driver.AddTick(tick)
	s.EmitTick(tick)
}

// Run replays the ticks until the channel is closed or the context is cancelled,
// then finishes the report.
func (s *Session) Run(ctx context.Context, ticks <-chan types.Tick) error {
	s.logger.Infof("replaying with brick size %s, %s", s.Config.BrickSize.String(), s.Boll.Name())

	for {
		select {
		case <-ctx.Done():
			if err := s.Finish(); err != nil {
				s.logger.WithError(err).Error("can not finish the report")
			}
			return ctx.Err()

		case tick, ok := <-ticks:
			if !ok {
				return s.Finish()
			}

			if tick.Symbol != "" && tick.Symbol != s.Config.Symbol {
				continue
			}
			s.AddTick(tick)
		}
	}
}

// Finish snapshots the open brick and the bands into the report and flushes the
// TSV output.
func (s *Session) Finish() error {
	var openBar *types.RenkoBar
	if bar, ok := s.Driver.Peek(); ok && !bar.Closed {
		openBar = &bar
	}

	band := report.BandSnapshot{
		Name:  s.Boll.Name(),
		Ready: s.Boll.IsReady(),
	}
	if band.Ready {
		band.Middle = s.Boll.LastMiddle()
		band.Upper = s.Boll.LastUpBand()
		band.Lower = s.Boll.LastDownBand()
		band.StdDev = s.Boll.LastStdDev()
		band.BandWidth = s.Boll.BandWidth()
	}

	if err := s.Report.Finish(openBar, band); err != nil {
		return err
	}

	if s.writer != nil {
		s.writer.Flush()
		if err := s.writer.Error(); err != nil {
			return err
		}
	}

	s.logger.Infof("replayed %d ticks into %d bricks", s.Report.Ticks, s.Report.Summary.Count)
	return s.writeErr
}
