// Package logging provides leveled, structured logging with text, JSON
// and human-readable output formats.
package logging

import (
	"fmt"
	"io"
	"os"
)

// New constructs a Logger that writes to filepath at the given minimum
// level. An empty filepath means stderr. Level is one of NEVER, DEBUG,
// INFO, WARN or ERROR; format is one of "text", "json" or "human".
func New(levelStr, filepath, formatStr string) Logger {
	var out io.Writer = os.Stderr
	if len(filepath) > 0 {
		file, err := os.OpenFile(filepath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			initError(fmt.Sprintf("Unable to open file for logging: %v.", err))
		} else {
			out = file
		}
	}
	return NewWriterLogger(out, levelStr, formatStr)
}

// NewWriterLogger constructs a Logger that writes to out. Useful for
// tests and for callers that manage their own destinations.
func NewWriterLogger(out io.Writer, levelStr, formatStr string) Logger {
	lvl := levelStringToLevel(levelStr)
	if lvl == levelNever {
		return Null
	}
	return newLogger(out, lvl, formatToEnum(formatStr))
}
