package metrics

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// TimerFacility turns begin/end measurement pairs into latency stats on
// a Receiver: each completed pair for label emits a "<label>_us" stat.
// An End matches the most recent unmatched Begin with the same label;
// an End with no match is dropped.
type TimerFacility struct {
	receiver Receiver
	clock    clockwork.Clock

	// guards 'active'
	mutex  sync.Mutex
	active map[string][]time.Time
}

func NewTimerFacility(receiver Receiver) *TimerFacility {
	return &TimerFacility{
		receiver: receiver,
		clock:    clockwork.NewRealClock(),
		active:   make(map[string][]time.Time),
	}
}

func (f *TimerFacility) Begin(label string) {
	now := f.clock.Now()

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.active[label] = append(f.active[label], now)
}

func (f *TimerFacility) End(label string) {
	now := f.clock.Now()

	f.mutex.Lock()
	starts := f.active[label]
	if len(starts) == 0 {
		f.mutex.Unlock()
		f.receiver.Incr("unmatched_end")
		return
	}
	start := starts[len(starts)-1]
	if len(starts) == 1 {
		delete(f.active, label)
	} else {
		f.active[label] = starts[:len(starts)-1]
	}
	f.mutex.Unlock()

	latencyMicros := now.Sub(start) / time.Microsecond
	f.receiver.AddStat(label+"_us", float64(latencyMicros))
}
