package metrics

import (
	"bytes"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	batchSizeBytes = 1
}

func TestStatsdSink(t *testing.T) {
	endpoint := newUdpEndpoint()
	sink := newStatsdSink(t, endpoint.address)
	endpoint.wg.Add(1)
	go newStatsdServer(endpoint)

	sink.Handle("test.metric", nil, 1, metricTypeCounter)
	assert.Nil(t, sink.Flush())

	endpoint.wg.Wait()
	out := strings.TrimSpace(endpoint.buf.String())
	assert.Equal(t, "test.metric:1|ct", out)
}

func TestStatsdSinkTags(t *testing.T) {
	endpoint := newUdpEndpoint()
	sink := newStatsdSink(t, endpoint.address)
	endpoint.wg.Add(1)
	go newStatsdServer(endpoint)

	sink.Handle("test.metric", Tags{"aKey": "aValue"}, 2.5, metricTypeStat)
	assert.Nil(t, sink.Flush())

	endpoint.wg.Wait()
	out := strings.TrimSpace(endpoint.buf.String())
	assert.Equal(t, "test.metric:2.5|h|#aKey:aValue", out)
}

func TestStatsdSinkEmptyMetric(t *testing.T) {
	endpoint := newUdpEndpoint()
	sink := newStatsdSink(t, endpoint.address)

	assert.Error(t, sink.Handle("", nil, 1, metricTypeCounter))
}

func TestStatsdSinkEmptyAddress(t *testing.T) {
	sink, err := NewStatsdSink("")
	require.NoError(t, err)
	assert.Equal(t, NullSink, sink)
}

type udpEndpoint struct {
	address  string
	listener *net.UDPConn
	buf      *bytes.Buffer
	wg       *sync.WaitGroup
}

func newUdpEndpoint() *udpEndpoint {
	addr, err := net.ResolveUDPAddr("udp", "127.0.0.1:0")
	if err != nil {
		panic(err)
	}
	listener, err := net.ListenUDP("udp", addr)
	if err != nil {
		panic(err)
	}

	return &udpEndpoint{
		address:  listener.LocalAddr().String(),
		listener: listener,
		buf:      &bytes.Buffer{},
		wg:       &sync.WaitGroup{},
	}
}

func newStatsdSink(t *testing.T, address string) Sink {
	t.Helper()
	sink, err := NewStatsdSink(address)
	require.NoError(t, err)
	return sink
}

func newStatsdServer(endpoint *udpEndpoint) {
	defer endpoint.wg.Done()
	b := make([]byte, 2048)
	n, _, err := endpoint.listener.ReadFromUDP(b)
	if err != nil {
		panic(err)
	}
	endpoint.buf.Write(b[:n])
}
