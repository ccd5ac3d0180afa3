package envvar

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// lookup reads the environment variable n and parses it with parse. The
// first element of args, if any, is returned when n is unset or malformed.
func lookup[T any](n string, kind string, parse func(string) (T, error), args []T) (T, bool) {
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
		logrus.WithError(err).Errorf("can not parse env var %s=%q as %s, incorrect format", n, str, kind)
		return defaultValue, false
	}

	return v, true
}

func String(n string, args ...string) (string, bool) {
	return lookup(n, "string", func(s string) (string, error) { return s, nil }, args)
}

// Duration accepts time.ParseDuration formats, e.g. "30s" or "1m30s".
func Duration(n string, args ...time.Duration) (time.Duration, bool) {
	return lookup(n, "time.Duration", time.ParseDuration, args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, "bool", strconv.ParseBool, args)
}
