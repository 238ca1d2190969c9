package timescope

// Timer is a single labeled time measurement. Constructing one signals
// Begin to the facility; End signals the matching end. The measurement
// ends when End is called, typically via defer:
//
//	timer := timescope.NewTimer(facility, "render")
//	defer timer.End()
//
// A Timer has one owner and is not safe for concurrent use. End fires
// at most once no matter how many times it is called.
type Timer struct {
	label    string
	facility Facility
	ended    bool
}

// NewTimer begins a measurement named label on facility and returns the
// handle that ends it.
func NewTimer(facility Facility, label string) *Timer {
	facility.Begin(label)
	return &Timer{
		label:    label,
		facility: facility,
	}
}

// Label returns the measurement name this timer was started with.
func (t *Timer) Label() string {
	return t.label
}

// End signals the end of the measurement. Calls after the first are
// no-ops.
func (t *Timer) End() {
	if t.ended {
		return
	}
	t.ended = true
	t.facility.End(t.label)
}

// Scope measures body under label and returns whatever body returns.
// The end-signal fires on every exit path, including a panic unwinding
// out of body; the panic itself propagates unchanged.
//
//	value := timescope.Scope(facility, "render", func() int {
//		return render()
//	})
func Scope[T any](facility Facility, label string, body func() T) T {
	timer := NewTimer(facility, label)
	defer timer.End()
	return body()
}

// ScopeErr is Scope for bodies that can fail. The error passes through
// untouched; the end-signal fires either way.
func ScopeErr[T any](facility Facility, label string, body func() (T, error)) (T, error) {
	timer := NewTimer(facility, label)
	defer timer.End()
	return body()
}

// ScopeFunc is Scope for bodies with nothing to return.
func ScopeFunc(facility Facility, label string, body func()) {
	timer := NewTimer(facility, label)
	defer timer.End()
	body()
}
