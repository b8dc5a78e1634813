package fixedpoint

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const DefaultPrecision = 8

// Value is an exact decimal number. Prices and brick sizes are compared on brick
// boundaries, so they must never go through float64.
type Value struct {
	d decimal.Decimal
}

var (
	Zero = Value{d: decimal.Zero}
	One  = Value{d: decimal.New(1, 0)}
)

func NewFromInt(i int64) Value {
	return Value{d: decimal.NewFromInt(i)}
}

func NewFromFloat(f float64) Value {
	return Value{d: decimal.NewFromFloat(f)}
}

func NewFromString(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, errors.Wrapf(err, "invalid decimal string %q", s)
	}
	return Value{d: d}, nil
}

func MustNewFromString(s string) Value {
	v, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Value) Add(v2 Value) Value { return Value{d: v.d.Add(v2.d)} }
func (v Value) Sub(v2 Value) Value { return Value{d: v.d.Sub(v2.d)} }
func (v Value) Mul(v2 Value) Value { return Value{d: v.d.Mul(v2.d)} }

// Div divides with DefaultPrecision digits, dividing by zero returns Zero.
func (v Value) Div(v2 Value) Value {
	if v2.IsZero() {
		return Zero
	}
	return Value{d: v.d.DivRound(v2.d, DefaultPrecision)}
}

func (v Value) Neg() Value { return Value{d: v.d.Neg()} }
func (v Value) Abs() Value { return Value{d: v.d.Abs()} }

func (v Value) Sign() int            { return v.d.Sign() }
func (v Value) IsZero() bool         { return v.d.IsZero() }
func (v Value) Compare(v2 Value) int { return v.d.Cmp(v2.d) }
func (v Value) Eq(v2 Value) bool     { return v.d.Equal(v2.d) }

func (v Value) Float64() float64 {
	f, _ := v.d.Float64()
	return f
}

func (v Value) String() string {
	return v.d.String()
}

// FormatString formats the value with a fixed number of decimal places.
func (v Value) FormatString(prec int) string {
	return v.d.StringFixed(int32(prec))
}

// Clamp limits v to the closed interval [lo, hi].
func (v Value) Clamp(lo, hi Value) Value {
	return Min(hi, Max(lo, v))
}

func Min(a, b Value) Value {
	if a.Compare(b) < 0 {
		return a
	}
	return b
}

func Max(a, b Value) Value {
	if a.Compare(b) > 0 {
		return a
	}
	return b
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		nv, err := NewFromString(s)
		if err != nil {
			return err
		}
		*v = nv
		return nil
	}

	var f json.Number
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Wrapf(err, "can not unmarshal %s into fixedpoint.Value", data)
	}

	nv, err := NewFromString(f.String())
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

func (v *Value) UnmarshalYAML(unmarshal func(a interface{}) error) (err error) {
	var s string
	if err = unmarshal(&s); err != nil {
		return err
	}

	nv, err := NewFromString(s)
	if err != nil {
		return err
	}

	*v = nv
	return nil
}

// UnmarshalText lets the value be decoded from csv cells and env vars.
func (v *Value) UnmarshalText(text []byte) error {
	nv, err := NewFromString(string(text))
	if err != nil {
		return err
	}
	*v = nv
	return nil
}
