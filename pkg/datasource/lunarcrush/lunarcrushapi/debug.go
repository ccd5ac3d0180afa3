package lunarcrushapi

import (
	"github.com/sirupsen/logrus"

	"github.com/SnakeO/LunarCrushAPIv4/pkg/envvar"
)

var log = logrus.WithField("datasource", "lunarcrush")

type LogFunction func(msg string, args ...interface{})

var debugf LogFunction

func getDebugFunction() LogFunction {
	if v, ok := envvar.Bool("DEBUG_LUNARCRUSH"); ok && v {
		return log.Infof
	}

	return func(msg string, args ...interface{}) {}
}

func init() {
	debugf = getDebugFunction()
}
