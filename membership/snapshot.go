package membership

import (
	"github.com/stratofleet/aclsync/internal/generic"
)

// Snapshot is a point-in-time view of cluster membership, as reported by the
// provisioning side. Snapshots are immutable once created, and the order in
// which members were discovered is never observable through them.
type Snapshot struct {
	members map[NodeID]Member
}

// NewSnapshot creates a snapshot from the given members. Duplicate IDs are
// collapsed, keeping the first occurrence.
func NewSnapshot(members ...Member) Snapshot {
	byID := make(map[NodeID]Member, len(members))

	for _, m := range members {
		if _, ok := byID[m.ID]; !ok {
			byID[m.ID] = m
		}
	}

	return Snapshot{members: byID}
}

// Members returns the members of the snapshot in unspecified order.
func (s Snapshot) Members() []Member {
	return generic.MapValues(s.members)
}

// IDs returns the identifiers of all members, sorted.
func (s Snapshot) IDs() []NodeID {
	ids := generic.MapKeys(s.members)
	generic.SortSlice(ids, false)

	return ids
}

// Member returns the member with the given ID, if present.
func (s Snapshot) Member(id NodeID) (Member, bool) {
	m, ok := s.members[id]
	return m, ok
}

func (s Snapshot) Len() int {
	return len(s.members)
}

func (s Snapshot) Empty() bool {
	return len(s.members) == 0
}
