package main

import (
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/mixpanel/timescope"
)

type options struct {
	Interval time.Duration `long:"interval" default:"1s" description:"Delay between spam rounds"`
}

func main() {
	opts := &options{}
	parser := flags.NewParser(opts, flags.Default)
	tsOpts := timescope.NewOptions(parser)

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	facility, closer := tsOpts.Init()
	defer closer()

	tick := time.After(0)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sig:
			return
		case <-tick:
			spam(facility)
			tick = time.After(opts.Interval)
		}
	}
}

func spam(facility timescope.Facility) {
	timescope.ScopeFunc(facility, "spam_round", func() {
		timer := timescope.NewTimer(facility, "inner_work")
		time.Sleep(time.Duration(rand.Intn(50)) * time.Millisecond)
		timer.End()

		timescope.ScopeFunc(facility, "inner_work", func() {
			time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
		})
	})
}
