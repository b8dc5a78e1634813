package indicator

import (
	"fmt"
)

type BinaryOperator int

const (
	OperatorPlus BinaryOperator = iota
	OperatorMinus
	OperatorTimes
	OperatorOver
)

func (op BinaryOperator) String() string {
	switch op {
	case OperatorPlus:
		return "+"
	case OperatorMinus:
		return "-"
	case OperatorTimes:
		return "*"
	case OperatorOver:
		return "/"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Combinator is a node whose value is an arithmetic function of two upstream nodes.
//
// On each update the sample is forwarded to the left operand, then to the right one,
// and only then is the value recomputed, so both operands always reflect the same
// sample.
type Combinator struct {
	Float64Series

	Left, Right Node

	op BinaryOperator
}

func NewCombinator(name string, left, right Node, op BinaryOperator) *Combinator {
	if name == "" {
		name = fmt.Sprintf("(%s%s%s)", left.Name(), op.String(), right.Name())
	}

	return &Combinator{
		Float64Series: NewFloat64Series(name),
		Left:          left,
		Right:         right,
		op:            op,
	}
}

func Plus(left, right Node) *Combinator  { return NewCombinator("", left, right, OperatorPlus) }
func Minus(left, right Node) *Combinator { return NewCombinator("", left, right, OperatorMinus) }
func Times(left, right Node) *Combinator { return NewCombinator("", left, right, OperatorTimes) }
func Over(left, right Node) *Combinator  { return NewCombinator("", left, right, OperatorOver) }

func (inc *Combinator) Operator() BinaryOperator {
	return inc.op
}

func (inc *Combinator) Update(sample Sample) float64 {
	inc.Left.Update(sample)
	inc.Right.Update(sample)
	inc.samples++

	v := inc.Calculate(inc.Left.Last(), inc.Right.Last())
	inc.ready = inc.Left.IsReady() && inc.Right.IsReady()
	inc.PushAndEmit(v)
	return v
}

// Calculate applies the operator. Dividing by zero keeps the previous value.
func (inc *Combinator) Calculate(a, b float64) float64 {
	switch inc.op {
	case OperatorPlus:
		return a + b
	case OperatorMinus:
		return a - b
	case OperatorTimes:
		return a * b
	case OperatorOver:
		if b == 0 {
			return inc.current
		}
		return a / b
	}
	return inc.current
}

// Reset clears this node and the operands it owns. Views ignore the reset.
func (inc *Combinator) Reset() {
	inc.reset()
	inc.Left.Reset()
	inc.Right.Reset()
}

var _ Node = (*Combinator)(nil)
