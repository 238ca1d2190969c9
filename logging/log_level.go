package logging

import (
	"fmt"
	"strings"
)

type level int

const (
	levelDebug = level(10)
	levelInfo  = level(20)
	levelWarn  = level(30)
	levelError = level(40)
	levelNever = level(50)
)

func levelStringToLevel(str string) level {
	switch strings.ToUpper(str) {
	case "NEVER":
		return levelNever
	case "DEBUG":
		return levelDebug
	case "INFO":
		return levelInfo
	case "WARN":
		return levelWarn
	case "ERROR":
		return levelError
	default:
		initError(fmt.Sprintf("Invalid log level %v.", str))
		return levelWarn
	}
}

func levelToString(lvl level) string {
	switch lvl {
	case levelDebug:
		return "DEBUG"
	case levelInfo:
		return "INFO"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
