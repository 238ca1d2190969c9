// Package tracing reports begin/end measurement pairs as spans on an
// opentracing Tracer.
package tracing

import (
	"sync"

	opentracing "github.com/opentracing/opentracing-go"
)

// SpanFacility opens a span named by the label on Begin and finishes it
// on End. An End matches the most recent unfinished span with the same
// label; an End with no match is a no-op. Works with any
// opentracing.Tracer.
type SpanFacility struct {
	tracer opentracing.Tracer

	// guards 'active'
	mutex  sync.Mutex
	active map[string][]opentracing.Span
}

func NewSpanFacility(tracer opentracing.Tracer) *SpanFacility {
	return &SpanFacility{
		tracer: tracer,
		active: make(map[string][]opentracing.Span),
	}
}

func (f *SpanFacility) Begin(label string) {
	span := f.tracer.StartSpan(label)

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.active[label] = append(f.active[label], span)
}

func (f *SpanFacility) End(label string) {
	f.mutex.Lock()
	spans := f.active[label]
	if len(spans) == 0 {
		f.mutex.Unlock()
		return
	}
	span := spans[len(spans)-1]
	if len(spans) == 1 {
		delete(f.active, label)
	} else {
		f.active[label] = spans[:len(spans)-1]
	}
	f.mutex.Unlock()

	span.Finish()
}
