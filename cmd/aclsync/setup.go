package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/stratofleet/aclsync/exec"
	"github.com/stratofleet/aclsync/membership"
	"github.com/stratofleet/aclsync/membership/gossip"
	"github.com/stratofleet/aclsync/trigger"
)

type shutdownFunc func(ctx context.Context) error

var noopShutdown = func(ctx context.Context) error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, noopShutdown
}

// setupSource picks the membership source: a static inventory when one is
// given, the gossip ring otherwise.
func setupSource(logger kitlog.Logger) (membership.Source, shutdownFunc, error) {
	if opts.Members != "" {
		members, err := parseMembers(opts.Members)
		if err != nil {
			return nil, nil, err
		}

		return membership.NewStaticSource(members...), noopShutdown, nil
	}

	conf := gossip.DefaultConfig()
	conf.NodeName = opts.Gossip.NodeName
	conf.BindAddr = opts.Gossip.BindAddr
	conf.BindPort = opts.Gossip.BindPort
	conf.AdvertiseAddr = opts.Gossip.AdvertiseAddr
	conf.JoinAddrs = parseAddrs(opts.Gossip.JoinAddrs)
	conf.Logger = logger

	source, err := gossip.Join(conf)
	if err != nil {
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		level.Info(logger).Log("msg", "leaving gossip ring")

		if err := source.Leave(); err != nil {
			return fmt.Errorf("failed to leave gossip ring: %w", err)
		}

		return nil
	}

	return source, shutdown, nil
}

func setupTrigger(logger kitlog.Logger) (*trigger.Trigger, error) {
	runnerConf := exec.DefaultConfig()
	runnerConf.User = opts.SSH.User
	runnerConf.Port = opts.SSH.Port
	runnerConf.KeyFile = opts.SSH.KeyFile
	runnerConf.Command = opts.Action.Command
	runnerConf.Logger = logger

	runner, err := exec.NewSSHRunner(runnerConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create ssh runner: %w", err)
	}

	conf := trigger.DefaultConfig()
	conf.Runner = runner
	conf.Store = trigger.NewFileStore(opts.State.File)
	conf.ActionTimeout = time.Millisecond * time.Duration(opts.Action.Timeout)
	conf.Logger = logger

	return trigger.New(conf), nil
}

// parseMembers parses a static inventory of the form "id=addr,id2=addr2".
// The address part may be empty for a member that has not been assigned
// one yet.
func parseMembers(s string) ([]membership.Member, error) {
	var members []membership.Member

	for _, pair := range parseAddrs(s) {
		id, addr, found := strings.Cut(pair, "=")
		if !found || id == "" {
			return nil, fmt.Errorf("malformed member %q, want id=addr", pair)
		}

		members = append(members, membership.Member{
			ID:     membership.NodeID(id),
			Addr:   addr,
			Status: membership.StatusHealthy,
		})
	}

	return members, nil
}
