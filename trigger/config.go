package trigger

import (
	"time"

	kitlog "github.com/go-kit/log"
)

type Config struct {
	// Runner invokes the external whitelist-update action. Required.
	Runner Runner
	// Store persists the last-applied fingerprint. Defaults to an
	// in-memory store.
	Store FingerprintStore
	// Logger for decision and failure logging.
	Logger kitlog.Logger
	// ActionTimeout bounds a single action invocation.
	ActionTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Logger:        kitlog.NewNopLogger(),
		ActionTimeout: 60 * time.Second,
	}
}
