package timescope

import "sync"

// Facility is the measurement backend a Timer reports to. Begin and End
// are fire-and-forget; a facility that can fail internally (a sink
// write, say) deals with that itself rather than surfacing it here.
// Pairing of Begin and End calls that share a label is the facility's
// responsibility; the facilities in this repo match an End against the
// most recent unmatched Begin for that label.
type Facility interface {
	Begin(label string)
	End(label string)
}

type nullFacility struct{}

func (nullFacility) Begin(label string) {}

func (nullFacility) End(label string) {}

// Null discards all measurements.
var Null Facility = nullFacility{}

// Call is one recorded Begin or End invocation on a MockFacility.
type Call struct {
	Op    string // "begin" or "end"
	Label string
}

// MockFacility records every call in order. Safe for concurrent use.
type MockFacility struct {
	mutex sync.Mutex
	calls []Call
}

func NewMockFacility() *MockFacility {
	return &MockFacility{}
}

func (m *MockFacility) Begin(label string) {
	m.record("begin", label)
}

func (m *MockFacility) End(label string) {
	m.record("end", label)
}

func (m *MockFacility) record(op, label string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.calls = append(m.calls, Call{Op: op, Label: label})
}

// Calls returns a copy of every recorded call, in invocation order.
func (m *MockFacility) Calls() []Call {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	calls := make([]Call, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// CallsFor returns the recorded calls whose label matches, in order.
func (m *MockFacility) CallsFor(label string) []Call {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	var calls []Call
	for _, call := range m.calls {
		if call.Label == label {
			calls = append(calls, call)
		}
	}
	return calls
}

type multiFacility struct {
	facilities []Facility
}

// Multi fans each Begin and End out to every facility, in the order
// given. With no arguments it behaves like Null.
func Multi(facilities ...Facility) Facility {
	if len(facilities) == 1 {
		return facilities[0]
	}
	return &multiFacility{facilities: facilities}
}

func (m *multiFacility) Begin(label string) {
	for _, f := range m.facilities {
		f.Begin(label)
	}
}

func (m *multiFacility) End(label string) {
	for _, f := range m.facilities {
		f.End(label)
	}
}
