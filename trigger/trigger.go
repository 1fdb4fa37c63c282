package trigger

import (
	"context"
	"fmt"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/stratofleet/aclsync/membership"
)

// Trigger decides, once per membership-change event, whether the external
// whitelist-update action must run, and runs it at most once against a
// deterministically chosen member. The stored fingerprint only advances on
// confirmed success, so a failed run is naturally re-attempted on the next
// evaluation.
type Trigger struct {
	runner        Runner
	store         FingerprintStore
	logger        kitlog.Logger
	actionTimeout time.Duration
}

func New(conf Config) *Trigger {
	if conf.Runner == nil {
		panic("trigger: config must provide a Runner")
	}

	store := conf.Store
	if store == nil {
		store = NewMemStore()
	}

	logger := conf.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	return &Trigger{
		runner:        conf.Runner,
		store:         store,
		logger:        logger,
		actionTimeout: conf.ActionTimeout,
	}
}

// Evaluate computes the fingerprint of the snapshot and compares it against
// the stored one. A run decision is returned on the first-ever evaluation
// and whenever the identifier set has changed; otherwise the decision is to
// skip. Evaluate never invokes the action and never advances the stored
// fingerprint.
func (t *Trigger) Evaluate(snap membership.Snapshot) (Decision, error) {
	if snap.Empty() {
		return Decision{}, ErrNoTarget
	}

	fp := membership.FingerprintOf(snap)

	last, err := t.store.Load()
	if err != nil {
		return Decision{}, fmt.Errorf("load fingerprint: %w", err)
	}

	if !last.Absent() && last == fp {
		return Decision{Fingerprint: fp}, nil
	}

	target, err := SelectTarget(snap)
	if err != nil {
		return Decision{}, err
	}

	return Decision{Run: true, Target: target, Fingerprint: fp}, nil
}

// Sync performs one full evaluate-then-act cycle: on a run decision the
// action is invoked against the selected target under the configured
// timeout, and the new fingerprint is stored once the action confirms
// success. The decision is returned alongside the error so that a failed
// run still reports which fingerprint and target were attempted.
func (t *Trigger) Sync(ctx context.Context, snap membership.Snapshot) (Decision, error) {
	decision, err := t.Evaluate(snap)
	if err != nil {
		return Decision{}, err
	}

	if !decision.Run {
		level.Debug(t.logger).Log(
			"msg", "membership unchanged, skipping",
			"fingerprint", decision.Fingerprint,
		)

		return decision, nil
	}

	runCtx := ctx
	if t.actionTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, t.actionTimeout)

		defer cancel()
	}

	if err := t.runner.Run(runCtx, decision.Target); err != nil {
		level.Error(t.logger).Log(
			"msg", "whitelist update failed",
			"target", decision.Target,
			"fingerprint", decision.Fingerprint,
			"err", err,
		)

		return decision, fmt.Errorf("run whitelist update on %s: %w", decision.Target, err)
	}

	if err := t.store.Save(decision.Fingerprint); err != nil {
		return decision, fmt.Errorf("save fingerprint: %w", err)
	}

	level.Info(t.logger).Log(
		"msg", "whitelist updated",
		"target", decision.Target,
		"fingerprint", decision.Fingerprint,
		"members", snap.Len(),
	)

	return decision, nil
}

// SelectTarget picks the member that hosts the whitelist-update action: the
// first reachable member in ID sort order. The action is cluster-global and
// idempotent, so any reachable member would do; sorting makes the choice
// reproducible for a given membership set.
func SelectTarget(snap membership.Snapshot) (string, error) {
	for _, id := range snap.IDs() {
		if m, ok := snap.Member(id); ok && m.IsReachable() {
			return m.Addr, nil
		}
	}

	return "", ErrNoReachableTarget
}
