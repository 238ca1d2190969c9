package timescope

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mixpanel/timescope/logging"
)

// consoleFacility logs elapsed time per measurement, in the style of a
// browser console's time/timeEnd pair. An End matches the most recent
// unmatched Begin with the same label, so duplicate labels nest.
type consoleFacility struct {
	logger logging.Logger
	clock  clockwork.Clock

	// guards 'active'
	mutex  sync.Mutex
	active map[string][]time.Time
}

// NewConsoleFacility returns a Facility that logs "<label>: took <d>"
// through logger when each measurement ends. An End with no active
// Begin for its label is logged as a warning.
func NewConsoleFacility(logger logging.Logger) Facility {
	return &consoleFacility{
		logger: logger.Named("timescope"),
		clock:  clockwork.NewRealClock(),
		active: make(map[string][]time.Time),
	}
}

func (c *consoleFacility) Begin(label string) {
	now := c.clock.Now()

	c.mutex.Lock()
	c.active[label] = append(c.active[label], now)
	c.mutex.Unlock()

	if c.logger.IsDebug() {
		c.logger.Debugf(label+": begin", nil)
	}
}

func (c *consoleFacility) End(label string) {
	now := c.clock.Now()

	c.mutex.Lock()
	starts := c.active[label]
	if len(starts) == 0 {
		c.mutex.Unlock()
		c.logger.Warnf("no active measurement", logging.Fields{"label": label})
		return
	}
	start := starts[len(starts)-1]
	if len(starts) == 1 {
		delete(c.active, label)
	} else {
		c.active[label] = starts[:len(starts)-1]
	}
	c.mutex.Unlock()

	elapsed := now.Sub(start)
	c.logger.Infof(fmt.Sprintf("%s: took %v", label, elapsed), logging.Fields{
		"label":      label,
		"elapsed_us": int64(elapsed / time.Microsecond),
	})
}
