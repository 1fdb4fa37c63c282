package gossip

import (
	"fmt"
	"io"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/memberlist"

	"github.com/stratofleet/aclsync/membership"
)

// Source observes cluster membership through the gossip ring the provisioned
// nodes participate in. Node names on the ring are instance IDs, advertised
// addresses are the member addresses. It implements membership.Source.
type Source struct {
	ml           *memberlist.Memberlist
	selfName     string
	observer     bool
	leaveTimeout time.Duration
	logger       kitlog.Logger
	changes      chan struct{}
}

// Join creates the gossip listener and joins the ring through the configured
// addresses. An empty JoinAddrs list starts a fresh ring, which is only
// useful for the very first node.
func Join(conf Config) (*Source, error) {
	src := &Source{
		selfName: conf.NodeName,
		observer: conf.Observer,
		logger:   conf.Logger,
		changes:  make(chan struct{}, 1),
	}

	if src.logger == nil {
		src.logger = kitlog.NewNopLogger()
	}

	mlConf := memberlist.DefaultLANConfig()
	mlConf.Name = conf.NodeName
	mlConf.Events = &eventDelegate{src: src}
	mlConf.LogOutput = io.Discard

	if conf.BindAddr != "" {
		mlConf.BindAddr = conf.BindAddr
	}

	// With a zero port memberlist picks a free one and fixes up the
	// advertise port itself.
	mlConf.BindPort = conf.BindPort
	mlConf.AdvertisePort = conf.BindPort

	if conf.AdvertiseAddr != "" {
		mlConf.AdvertiseAddr = conf.AdvertiseAddr
	}

	ml, err := memberlist.Create(mlConf)
	if err != nil {
		return nil, fmt.Errorf("create gossip listener: %w", err)
	}

	if len(conf.JoinAddrs) > 0 {
		if _, err := ml.Join(conf.JoinAddrs); err != nil {
			_ = ml.Shutdown()
			return nil, fmt.Errorf("join gossip ring: %w", err)
		}
	}

	src.ml = ml
	src.leaveTimeout = conf.LeaveTimeout

	level.Info(src.logger).Log(
		"msg", "joined gossip ring",
		"name", conf.NodeName,
		"members", ml.NumMembers(),
	)

	return src, nil
}

// Snapshot returns the current ring membership. When the source runs as an
// observer, its own node is excluded.
func (s *Source) Snapshot() membership.Snapshot {
	nodes := s.ml.Members()
	members := make([]membership.Member, 0, len(nodes))

	for _, n := range nodes {
		if s.observer && n.Name == s.selfName {
			continue
		}

		members = append(members, membership.Member{
			ID:     membership.NodeID(n.Name),
			Addr:   n.Addr.String(),
			Status: membership.StatusHealthy,
		})
	}

	return membership.NewSnapshot(members...)
}

// Changes returns the coalesced change-signal channel: one pending signal
// may cover any number of joins, leaves, and updates.
func (s *Source) Changes() <-chan struct{} {
	return s.changes
}

// Leave announces departure from the ring and shuts the listener down.
func (s *Source) Leave() error {
	if err := s.ml.Leave(s.leaveTimeout); err != nil {
		return fmt.Errorf("leave gossip ring: %w", err)
	}

	return s.ml.Shutdown()
}

func (s *Source) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

type eventDelegate struct {
	src *Source
}

func (d *eventDelegate) NotifyJoin(n *memberlist.Node) {
	level.Debug(d.src.logger).Log("msg", "member joined", "name", n.Name, "addr", n.Addr)
	d.src.notify()
}

func (d *eventDelegate) NotifyLeave(n *memberlist.Node) {
	level.Debug(d.src.logger).Log("msg", "member left", "name", n.Name, "addr", n.Addr)
	d.src.notify()
}

func (d *eventDelegate) NotifyUpdate(n *memberlist.Node) {
	level.Debug(d.src.logger).Log("msg", "member updated", "name", n.Name, "addr", n.Addr)
	d.src.notify()
}
