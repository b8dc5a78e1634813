package envvar

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quantkit/bricks/pkg/fixedpoint"
)

// lookup returns the parsed value of the environment variable n. A variable that is
// unset or fails to parse yields the default and false.
func lookup[T any](n string, typeName string, parse func(string) (T, error), args []T) (T, bool) {
	var defaultValue T
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	v, err := parse(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as %s, incorrect format", n, str, typeName)
		return defaultValue, false
	}

	return v, true
}

func String(n string, args ...string) (string, bool) {
	return lookup(n, "string", func(s string) (string, error) { return s, nil }, args)
}

func Duration(n string, args ...time.Duration) (time.Duration, bool) {
	return lookup(n, "time.Duration", time.ParseDuration, args)
}

func Int(n string, args ...int) (int, bool) {
	return lookup(n, "int", strconv.Atoi, args)
}

func Float64(n string, args ...float64) (float64, bool) {
	return lookup(n, "float64", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, "bool", strconv.ParseBool, args)
}

// Value parses a decimal such as a brick size.
func Value(n string, args ...fixedpoint.Value) (fixedpoint.Value, bool) {
	return lookup(n, "decimal", fixedpoint.NewFromString, args)
}

func SetBool(n string, v *bool) bool {
	b, ok := Bool(n)
	if ok {
		*v = b
	}

	return ok
}

func SetInt(n string, v *int) bool {
	i, ok := Int(n)
	if ok {
		*v = i
	}

	return ok
}
