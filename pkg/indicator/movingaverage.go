package indicator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quantkit/bricks/pkg/types"
)

type MovingAverageType int

const (
	MovingAverageTypeSimple MovingAverageType = iota
	MovingAverageTypeExponential
	MovingAverageTypeWeighted
	MovingAverageTypeWilders
)

var movingAverageTypeNames = map[MovingAverageType]string{
	MovingAverageTypeSimple:      "simple",
	MovingAverageTypeExponential: "exponential",
	MovingAverageTypeWeighted:    "weighted",
	MovingAverageTypeWilders:     "wilders",
}

var movingAverageTypeAliases = map[string]MovingAverageType{
	"simple":      MovingAverageTypeSimple,
	"sma":         MovingAverageTypeSimple,
	"exponential": MovingAverageTypeExponential,
	"ema":         MovingAverageTypeExponential,
	"weighted":    MovingAverageTypeWeighted,
	"wma":         MovingAverageTypeWeighted,
	"wilders":     MovingAverageTypeWilders,
	"rma":         MovingAverageTypeWilders,
	"smma":        MovingAverageTypeWilders,
}

func (t MovingAverageType) String() string {
	if name, ok := movingAverageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MovingAverageType(%d)", int(t))
}

func (t MovingAverageType) Valid() bool {
	_, ok := movingAverageTypeNames[t]
	return ok
}

func ParseMovingAverageType(s string) (MovingAverageType, error) {
	if t, ok := movingAverageTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return 0, types.InvalidConfigurationError("unknown moving average type %q", s)
}

func (t MovingAverageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *MovingAverageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := ParseMovingAverageType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t *MovingAverageType) UnmarshalYAML(unmarshal func(a interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	v, err := ParseMovingAverageType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// AsIndicator creates the moving average node of this type.
func (t MovingAverageType) AsIndicator(name string, window int) (Node, error) {
	switch t {
	case MovingAverageTypeSimple:
		return NewSMA(name, window)
	case MovingAverageTypeExponential:
		return NewEMA(name, window)
	case MovingAverageTypeWeighted:
		return NewWMA(name, window)
	case MovingAverageTypeWilders:
		return NewRMA(name, window)
	}

	return nil, types.InvalidConfigurationError("unknown moving average type %d", int(t))
}
