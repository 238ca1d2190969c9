package timescope

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/mixpanel/timescope/logging"
)

type loggedLine struct {
	level   string
	message string
	fields  logging.Fields
}

type recordingLogger struct {
	mutex sync.Mutex
	lines []loggedLine
}

func (l *recordingLogger) record(level, message string, fields logging.Fields) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.lines = append(l.lines, loggedLine{level, message, fields})
}

func (l *recordingLogger) Debugf(message string, fields logging.Fields) { l.record("DEBUG", message, fields) }
func (l *recordingLogger) Infof(message string, fields logging.Fields)  { l.record("INFO", message, fields) }
func (l *recordingLogger) Warnf(message string, fields logging.Fields)  { l.record("WARN", message, fields) }
func (l *recordingLogger) Errorf(message string, fields logging.Fields) { l.record("ERROR", message, fields) }

func (l *recordingLogger) Debug(message string) { l.Debugf(message, nil) }
func (l *recordingLogger) Info(message string)  { l.Infof(message, nil) }
func (l *recordingLogger) Warn(message string)  { l.Warnf(message, nil) }
func (l *recordingLogger) Error(message string) { l.Errorf(message, nil) }

func (l *recordingLogger) IsDebug() bool { return true }
func (l *recordingLogger) IsInfo() bool  { return true }
func (l *recordingLogger) IsWarn() bool  { return true }
func (l *recordingLogger) IsError() bool { return true }

func (l *recordingLogger) Named(name string) logging.Logger { return l }

func newTestConsole() (*consoleFacility, *recordingLogger, clockwork.FakeClock) {
	logger := &recordingLogger{}
	clock := clockwork.NewFakeClock()
	console := NewConsoleFacility(logger).(*consoleFacility)
	console.clock = clock
	return console, logger, clock
}

func TestConsoleLogsElapsed(t *testing.T) {
	console, logger, clock := newTestConsole()

	console.Begin("render")
	clock.Advance(250 * time.Millisecond)
	console.End("render")

	assert.Equal(t, []loggedLine{
		{"DEBUG", "render: begin", nil},
		{"INFO", "render: took 250ms", logging.Fields{
			"label":      "render",
			"elapsed_us": int64(250000),
		}},
	}, logger.lines)
}

func TestConsoleMatchesMostRecentBegin(t *testing.T) {
	console, logger, clock := newTestConsole()

	console.Begin("render")
	clock.Advance(100 * time.Millisecond)
	console.Begin("render")
	clock.Advance(50 * time.Millisecond)
	console.End("render")
	console.End("render")

	var elapsed []interface{}
	for _, line := range logger.lines {
		if line.level == "INFO" {
			elapsed = append(elapsed, line.fields["elapsed_us"])
		}
	}
	assert.Equal(t, []interface{}{int64(50000), int64(150000)}, elapsed)
}

func TestConsoleUnmatchedEndWarns(t *testing.T) {
	console, logger, _ := newTestConsole()

	console.End("render")

	assert.Equal(t, []loggedLine{
		{"WARN", "no active measurement", logging.Fields{"label": "render"}},
	}, logger.lines)
}

func TestConsoleWithTimer(t *testing.T) {
	console, logger, clock := newTestConsole()

	timer := NewTimer(console, "render")
	clock.Advance(time.Millisecond)
	timer.End()
	timer.End()

	infos := 0
	for _, line := range logger.lines {
		if line.level == "INFO" {
			infos++
		}
	}
	assert.Equal(t, 1, infos)
}
