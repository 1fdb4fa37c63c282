package membership

// NodeID is an opaque identifier of a provisioned node instance, unique for
// the lifetime of the instance. A replaced node gets a new ID even when it
// reuses the old node's address.
type NodeID string

func (id NodeID) String() string {
	return string(id)
}

type Member struct {
	// ID is the unique identifier of the node instance.
	ID NodeID
	// Addr is the network-reachable address of the node. Empty until the
	// provisioning system has assigned one.
	Addr string
	// Status is the liveness of the node as reported by the membership
	// source. It never affects the membership fingerprint.
	Status Status
}

// HasAddr returns true once the provisioning system has assigned the member
// an address.
func (m *Member) HasAddr() bool {
	return m.Addr != ""
}

// IsReachable returns true if the member can be used as a connection target.
func (m *Member) IsReachable() bool {
	return m.HasAddr() && m.Status != StatusFaulty
}
