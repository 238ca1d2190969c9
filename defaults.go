package timescope

import (
	flags "github.com/jessevdk/go-flags"

	"github.com/mixpanel/timescope/logging"
	"github.com/mixpanel/timescope/metrics"
)

type Options struct {
	LogLevel        string `long:"log.level" default:"INFO" description:"One of NEVER, DEBUG, INFO, WARN, ERROR"`
	LogPath         string `long:"log.path" description:"File path to log. Uses stderr if not set"`
	LogFormat       string `long:"log.format" description:"Format of log output" default:"text" choice:"text" choice:"json" choice:"human"`
	MetricsEndpoint string `long:"metrics-endpoint" description:"Address (host:port) to send measurement stats"`
	MetricsPrefix   string `long:"metrics-prefix" description:"Prefix applied to every measurement stat"`
}

func NewOptions(parser *flags.Parser) *Options {
	options := &Options{}
	group, err := parser.AddGroup("Timescope", "", options)
	if err != nil {
		panic(err)
	}
	group.Namespace = "timescope"
	return options
}

type Closer func()

// Init assembles the standard facility stack from the parsed options:
// console logging always, statsd-backed latency stats when an endpoint
// is configured. The returned Closer flushes and shuts down the sink.
func (opts *Options) Init() (Facility, Closer) {
	logger := logging.New(opts.LogLevel, opts.LogPath, opts.LogFormat)
	console := NewConsoleFacility(logger)

	if opts.MetricsEndpoint == "" {
		return console, func() {}
	}

	sink, err := metrics.NewStatsdSink(opts.MetricsEndpoint)
	if err != nil {
		logger.Errorf("unable to initialize statsd metrics", logging.Fields{}.WithError(err))
		return console, func() {}
	}

	receiver := metrics.NewReceiver(sink)
	if opts.MetricsPrefix != "" {
		receiver = receiver.ScopePrefix(opts.MetricsPrefix)
	}

	closer := func() {
		sink.Close()
	}
	return Multi(console, metrics.NewTimerFacility(receiver)), closer
}
