package metrics

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Stopwatch is used for measuring time spent in an operation.
type Stopwatch interface {
	Stop()
}

type stopwatch struct {
	name      string
	startTime time.Time
	clock     clockwork.Clock
	receiver  Receiver
}

func (stopwatch *stopwatch) Stop() {
	latencyMicros := stopwatch.clock.Since(stopwatch.startTime) / time.Microsecond
	stopwatch.receiver.AddStat(stopwatch.name+"_us", float64(latencyMicros))
}
