package types

import "time"

// SubscriptionConfig describes where a stream of market data would come from.
// Resolving it is the job of a data source, not of the data types in this package.
type SubscriptionConfig struct {
	Symbol   string
	Exchange string
	Interval time.Duration
}

// BaseData is implemented by the market data records. Records that are only ever
// produced in memory refuse both methods with ErrNotSupported.
type BaseData interface {
	// Reader parses one line of a data file into a record.
	Reader(config SubscriptionConfig, line string, date time.Time) (BaseData, error)

	// GetSource returns the location of the data file for the given date.
	GetSource(config SubscriptionConfig, date time.Time) (string, error)
}
