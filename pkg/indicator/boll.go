package indicator

import (
	"fmt"
	"strconv"
)

/*
boll implements the bollinger indicator:

The Basics of Bollinger Bands
- https://www.investopedia.com/articles/technical/102201.asp

Bollinger Bands
- https://www.investopedia.com/terms/b/bollingerbands.asp

the data flow:

	sample -> StdDev
	       -> Middle (moving average)
	       -> Upper = View(Middle) + View(StdDev) * k
	       -> Lower = View(Middle) - View(StdDev) * k
*/

//go:generate callbackgen -type BOLL
type BOLL struct {
	// the series of the raw samples, BOLL passes its input through
	Float64Series

	Window            int
	K                 float64
	MovingAverageType MovingAverageType

	StdDev *StdDev
	Middle Node
	Upper  *Combinator
	Lower  *Combinator

	bandUpdateCallbacks []func(mid, upBand, downBand float64)
}

// NewBOLL creates the bands from a population standard deviation and the given
// moving average type.
func NewBOLL(window int, k float64, maType MovingAverageType) (*BOLL, error) {
	name := fmt.Sprintf("BOLL(%d,%s)", window, strconv.FormatFloat(k, 'g', -1, 64))
	return NewNamedBOLL(name, window, k, maType, StdDevTypePopulation)
}

func NewNamedBOLL(name string, window int, k float64, maType MovingAverageType, stdDevType StdDevType) (*BOLL, error) {
	stdDev, err := NewStdDev(name+"_StandardDeviation", window, stdDevType)
	if err != nil {
		return nil, err
	}

	middle, err := maType.AsIndicator(name+"_MiddleBand", window)
	if err != nil {
		return nil, err
	}

	s := &BOLL{
		Float64Series:     NewFloat64Series(name),
		Window:            window,
		K:                 k,
		MovingAverageType: maType,
		StdDev:            stdDev,
		Middle:            middle,
		Lower:             NewCombinator(name+"_LowerBand", View(middle), Times(View(stdDev), NewConstant(k)), OperatorMinus),
		Upper:             NewCombinator(name+"_UpperBand", View(middle), Times(View(stdDev), NewConstant(k)), OperatorPlus),
	}
	return s, nil
}

// Update forwards the sample to the owned nodes, dependencies first, and returns the
// sample value unchanged.
func (s *BOLL) Update(sample Sample) float64 {
	s.StdDev.Update(sample)
	s.Middle.Update(sample)
	s.Upper.Update(sample)
	s.Lower.Update(sample)

	s.samples++
	s.ready = s.Middle.IsReady() && s.Upper.IsReady() && s.Lower.IsReady()
	s.PushAndEmit(sample.Value)
	s.EmitBandUpdate(s.Middle.Last(), s.Upper.Last(), s.Lower.Last())
	return sample.Value
}

func (s *BOLL) LastMiddle() float64   { return s.Middle.Last() }
func (s *BOLL) LastUpBand() float64   { return s.Upper.Last() }
func (s *BOLL) LastDownBand() float64 { return s.Lower.Last() }
func (s *BOLL) LastStdDev() float64   { return s.StdDev.Last() }

// BandWidth returns (upper - lower) / middle.
func (s *BOLL) BandWidth() float64 {
	mid := s.Middle.Last()
	if mid == 0 {
		return 0
	}
	return (s.Upper.Last() - s.Lower.Last()) / mid
}

// PercentB locates price relative to the bands, 0 is the lower band and 1 the upper.
func (s *BOLL) PercentB(price float64) float64 {
	width := s.Upper.Last() - s.Lower.Last()
	if width == 0 {
		return 0
	}
	return (price - s.Lower.Last()) / width
}

func (s *BOLL) Reset() {
	s.reset()
	s.StdDev.Reset()
	s.Middle.Reset()
	s.Upper.Reset()
	s.Lower.Reset()
}

var _ Node = (*BOLL)(nil)
