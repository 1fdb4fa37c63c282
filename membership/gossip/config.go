package gossip

import (
	"time"

	kitlog "github.com/go-kit/log"
)

type Config struct {
	// NodeName is the identifier this process announces to the ring. For
	// observer processes it only needs to be unique; worker nodes announce
	// their instance ID here.
	NodeName string
	// BindAddr and BindPort are where the gossip listener binds. A zero
	// port picks a free one.
	BindAddr string
	BindPort int
	// AdvertiseAddr is the address announced to other ring members, when
	// it differs from the bind address.
	AdvertiseAddr string
	// JoinAddrs are gossip addresses of ring members to join through.
	JoinAddrs []string
	// LeaveTimeout bounds the leave broadcast during shutdown.
	LeaveTimeout time.Duration
	// Observer marks this process as a non-member observer: it joins the
	// ring to see the membership but is excluded from snapshots, so that
	// the trigger process itself never counts as a cluster member.
	Observer bool

	Logger kitlog.Logger
}

func DefaultConfig() Config {
	return Config{
		BindAddr:     "0.0.0.0",
		LeaveTimeout: 5 * time.Second,
		Observer:     true,
		Logger:       kitlog.NewNopLogger(),
	}
}
