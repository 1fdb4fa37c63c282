package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"

	"github.com/stratofleet/aclsync/membership"
	"github.com/stratofleet/aclsync/trigger"
)

// watch re-runs the trigger on every membership-change signal until ctx is
// cancelled. Failed runs are only logged: the fingerprint did not advance,
// so the next signal re-attempts the same change.
func watch(ctx context.Context, tr *trigger.Trigger, source membership.Source, logger kitlog.Logger) {
	// Initial sync covers the first-run case, before any change signal.
	if _, err := tr.Sync(ctx, source.Snapshot()); err != nil {
		level.Error(logger).Log("msg", "sync failed", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-source.Changes():
		}

		if _, err := tr.Sync(ctx, source.Snapshot()); err != nil {
			level.Error(logger).Log("msg", "sync failed", "err", err)
		}
	}
}

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	logger, closeLogger := setupLogger()

	source, closeSource, err := setupSource(logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to set up membership source", "err", err)
		os.Exit(1)
	}

	tr, err := setupTrigger(logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to set up trigger", "err", err)
		os.Exit(1)
	}

	shutdownOrder := []shutdownFunc{
		closeSource,
		closeLogger,
	}

	shutdown := func(code int) {
		for _, f := range shutdownOrder {
			if err := f(context.Background()); err != nil {
				level.Error(logger).Log("msg", "failed to shutdown component", "err", err)
			}
		}

		os.Exit(code)
	}

	if !opts.Watch {
		if _, err := tr.Sync(context.Background(), source.Snapshot()); err != nil {
			level.Error(logger).Log("msg", "sync failed", "err", err)
			shutdown(1)
		}

		shutdown(0)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go watch(ctx, tr, source, logger)

	<-interrupt
	cancel()
	level.Info(logger).Log("msg", "received interrupt signal, shutting down")

	shutdown(0)
}
