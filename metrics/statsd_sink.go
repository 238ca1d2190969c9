package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/mixpanel/timescope/obserr"
)

var batchSizeBytes = 4096

type statsdSink struct {
	metrics       chan *bytes.Buffer
	wg            *sync.WaitGroup
	conn          net.Conn
	flushInterval time.Duration
}

func NewStatsdSink(addr string) (Sink, error) {
	if addr == "" {
		return &nullSink{}, nil
	}
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, obserr.Annotate(err, "statsd dial").Set("endpoint", addr)
	}

	wg := &sync.WaitGroup{}
	sink := &statsdSink{
		metrics:       make(chan *bytes.Buffer, 128),
		wg:            wg,
		conn:          conn,
		flushInterval: 5 * time.Second,
	}

	wg.Add(1)
	go sink.flusher()

	return sink, nil
}

func (sink *statsdSink) Handle(metric string, tags Tags, value float64, metricType metricType) (err error) {
	buf := sharedBufferPool.get()
	defer func() {
		if err != nil {
			sharedBufferPool.put(buf)
		}
	}()

	if len(metric) == 0 {
		return errors.New("cannot handle empty metric")
	}

	// metric:value|type|#tag1:value1,tag2:value2
	// WriteString never returns an error, so those are ignored here
	_, _ = buf.WriteString(metric)
	_, _ = buf.WriteString(":")
	if _, err := fmt.Fprintf(buf, "%g", value); err != nil {
		return err
	}
	_, _ = buf.WriteString("|")
	_, _ = buf.WriteString(string(metricType))

	if len(tags) > 0 {
		_, _ = buf.WriteString("|#")
		numTags := len(tags)
		for k, v := range tags {
			_, _ = buf.WriteString(k)
			_, _ = buf.WriteString(":")
			_, _ = buf.WriteString(v)
			numTags -= 1
			if numTags > 0 {
				_, _ = buf.WriteString(",")
			}
		}
	}

	sink.metrics <- buf
	return nil
}

func (sink *statsdSink) Flush() error {
	sink.metrics <- nil
	return nil
}

func (sink *statsdSink) flusher() {
	nextFlush := time.After(sink.flushInterval)
	defer sink.wg.Done()

	buffer := &bytes.Buffer{}
	flushBuffer := func() {
		if buffer.Len() > 0 {
			if _, err := sink.conn.Write(buffer.Bytes()); err != nil {
				log.Printf("error while writing to statsd: %v", err)
			}
			buffer.Reset()
		}
	}

	for {
		select {
		case stat, ok := <-sink.metrics:
			if !ok {
				// channel is closed
				flushBuffer()
				return
			}

			if stat == nil {
				flushBuffer()
			} else {
				_, _ = stat.WriteTo(buffer)
				sharedBufferPool.put(stat)
				_, _ = buffer.WriteString("\n")

				if buffer.Len() > batchSizeBytes {
					flushBuffer()
				}
			}
		case <-nextFlush:
			flushBuffer()
			nextFlush = time.After(sink.flushInterval)
		}
	}
}

func (sink *statsdSink) Close() {
	close(sink.metrics)
	sink.wg.Wait()
}
