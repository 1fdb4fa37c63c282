package membership

// Source provides point-in-time views of cluster membership. The provisioning
// side owns the member records; a source only observes them.
type Source interface {
	// Snapshot returns the current view of the membership.
	Snapshot() Snapshot

	// Changes returns a channel that receives a signal whenever membership
	// may have changed and the trigger should re-evaluate. Signals are
	// coalesced: one pending signal may cover several changes. A nil
	// channel means the source never signals.
	Changes() <-chan struct{}
}

// StaticSource is a Source with a fixed member list, fed from a provisioning
// inventory known up front. It never signals changes.
type StaticSource struct {
	snap Snapshot
}

func NewStaticSource(members ...Member) *StaticSource {
	return &StaticSource{snap: NewSnapshot(members...)}
}

func (s *StaticSource) Snapshot() Snapshot {
	return s.snap
}

func (s *StaticSource) Changes() <-chan struct{} {
	return nil
}
