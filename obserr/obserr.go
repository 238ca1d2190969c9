// Package obserr provides an error type that carries key/value
// annotations, making it cheap to attach context to a failure as it
// travels up the stack.
package obserr

import (
	"errors"
	"fmt"
	"sync"
)

// Error is a drop-in replacement for Go's native error type that holds
// annotated key/value data. Error is safe to use concurrently.
type Error struct {
	orig error

	mu   sync.RWMutex
	err  error
	vals map[string]interface{}
}

func New(e interface{}) *Error {
	var err error

	switch o := e.(type) {
	case string:
		err = errors.New(o)
	case *Error:
		return o.deepCopy()
	case error:
		err = o
	default:
		err = fmt.Errorf("%v", o)
	}

	return &Error{
		orig: err,
		err:  err,
		vals: make(map[string]interface{}),
	}
}

func (e *Error) deepCopy() *Error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return &Error{
		orig: e.orig,
		err:  e.err,
		vals: e.Vals(),
	}
}

func (e *Error) Error() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.err.Error()
}

func (e *Error) Get(k string) interface{} {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.vals[k]
}

// Set stores alternating key/value pairs on the error and returns it.
func (e *Error) Set(kvs ...interface{}) *Error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := 0; i < len(kvs); i += 2 {
		e.vals[kvs[i].(string)] = kvs[i+1]
	}
	return e
}

func (e *Error) Vals() map[string]interface{} {
	e.mu.RLock()
	defer e.mu.RUnlock()

	vals := make(map[string]interface{}, len(e.vals))
	for k, v := range e.vals {
		vals[k] = v
	}
	return vals
}

// Annotate prefixes the error message with ann, keeping the original
// error reachable through Original.
func (e *Error) Annotate(ann interface{}) *Error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var a string

	switch o := ann.(type) {
	case string:
		a = o
	case *Error:
		a = o.Error()
	case error:
		a = o.Error()
	default:
		a = fmt.Sprintf("%v", o)
	}

	e.err = fmt.Errorf("%s: %s", a, e.err)
	return e
}

func Annotate(e error, an interface{}) *Error {
	return New(e).Annotate(an)
}

func Original(e error) error {
	if oe, ok := e.(*Error); ok {
		// orig read is safe because the field never changes after construction
		return oe.orig
	}
	return e
}
