package types

import "github.com/pkg/errors"

// ErrNotSupported is returned when a data-model object is asked to resolve or parse
// its own data source. Bars and indicator points are built in memory only.
var ErrNotSupported = errors.New("operation not supported")

// ErrInvalidConfiguration is returned by constructors given parameters they can not
// work with, such as a non-positive brick size or window.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidConfigurationError wraps ErrInvalidConfiguration with a formatted reason.
func InvalidConfigurationError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}
