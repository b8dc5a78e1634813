package csvsource

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/quantkit/bricks/pkg/fixedpoint"
	"github.com/quantkit/bricks/pkg/types"
)

var (
	// ErrNotEnoughColumns is returned when a row misses one of the time, price or volume columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the time is neither a unix timestamp nor RFC3339.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the price is not a positive decimal.
	ErrInvalidPriceFormat = errors.New("price must be a positive decimal")

	// ErrInvalidVolumeFormat is returned when the volume is not an unsigned integer.
	ErrInvalidVolumeFormat = errors.New("volume must be an unsigned integer")
)

// unix timestamps above this are taken as milliseconds
const millisecondThreshold = 1e11

// CsvTick is one row of a tick file with the header `time,price,volume`.
// An optional `symbol` column overrides the symbol given to the reader.
type CsvTick struct {
	Time   string `csv:"time"`
	Price  string `csv:"price"`
	Volume string `csv:"volume"`
	Symbol string `csv:"symbol,omitempty"`
}

// Tick converts the row into a types.Tick.
func (c *CsvTick) Tick(symbol string) (types.Tick, error) {
	if c.Time == "" || c.Price == "" {
		return types.Tick{}, ErrNotEnoughColumns
	}

	t, err := ParseTime(c.Time)
	if err != nil {
		return types.Tick{}, err
	}

	price, err := fixedpoint.NewFromString(strings.TrimSpace(c.Price))
	if err != nil || price.Sign() <= 0 {
		return types.Tick{}, ErrInvalidPriceFormat
	}

	var volume uint64
	if v := strings.TrimSpace(c.Volume); v != "" {
		volume, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return types.Tick{}, ErrInvalidVolumeFormat
		}
	}

	if c.Symbol != "" {
		symbol = c.Symbol
	}

	return types.Tick{
		Symbol: symbol,
		Time:   t,
		Price:  price,
		Volume: volume,
	}, nil
}

// ParseTime accepts unix seconds, unix milliseconds or an RFC3339 time string.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ts > millisecondThreshold {
			return time.UnixMilli(ts).UTC(), nil
		}
		return time.Unix(ts, 0).UTC(), nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}
	return t, nil
}
