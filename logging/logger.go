package logging

import (
	"fmt"
	"io"
	golog "log"
	"os"
)

type Logger interface {
	Debugf(message string, fields Fields)
	Infof(message string, fields Fields)
	Warnf(message string, fields Fields)
	Errorf(message string, fields Fields)

	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string)

	IsDebug() bool
	IsInfo() bool
	IsWarn() bool
	IsError() bool

	Named(name string) Logger
}

type logger struct {
	name     string
	out      *golog.Logger
	minLevel level
	format   format
}

func newLogger(out io.Writer, minLevel level, format format) *logger {
	return &logger{
		out:      golog.New(out, "", 0),
		minLevel: minLevel,
		format:   format,
	}
}

func (l *logger) Named(name string) Logger {
	return &logger{
		name:     name,
		out:      l.out,
		minLevel: l.minLevel,
		format:   l.format,
	}
}

func (l *logger) Debug(message string) {
	l.Debugf(message, Fields{})
}

func (l *logger) Info(message string) {
	l.Infof(message, Fields{})
}

func (l *logger) Warn(message string) {
	l.Warnf(message, Fields{})
}

func (l *logger) Error(message string) {
	l.Errorf(message, Fields{})
}

func (l *logger) Debugf(message string, fields Fields) {
	l.log(levelDebug, message, fields)
}

func (l *logger) Infof(message string, fields Fields) {
	l.log(levelInfo, message, fields)
}

func (l *logger) Warnf(message string, fields Fields) {
	l.log(levelWarn, message, fields)
}

func (l *logger) Errorf(message string, fields Fields) {
	l.log(levelError, message, fields)
}

func (l *logger) IsDebug() bool {
	return levelDebug >= l.minLevel
}

func (l *logger) IsInfo() bool {
	return levelInfo >= l.minLevel
}

func (l *logger) IsWarn() bool {
	return levelWarn >= l.minLevel
}

func (l *logger) IsError() bool {
	return levelError >= l.minLevel
}

func (l *logger) log(lvl level, message string, fields Fields) {
	if lvl < l.minLevel {
		return
	}

	switch l.format {
	case formatJSON:
		l.out.Print(jsonFormatter(lvl, l.name, message, fields))
	case formatHuman:
		l.out.Print(humanFormatter(lvl, l.name, message, fields))
	default:
		l.out.Print(textFormatter(lvl, l.name, message, fields))
	}
}

func initError(message string) {
	fmt.Fprintf(os.Stderr, "error initializing logging: %s\n", message)
}
