package membership_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stratofleet/aclsync/membership"
)

func TestSnapshot_DeduplicatesByID(t *testing.T) {
	snap := membership.NewSnapshot(
		membership.Member{ID: "i-001", Addr: "10.0.0.1"},
		membership.Member{ID: "i-001", Addr: "10.0.0.2"},
	)

	require.Equal(t, 1, snap.Len())

	m, ok := snap.Member("i-001")
	require.True(t, ok)
	require.Equal(t, "10.0.0.1", m.Addr)
}

func TestSnapshot_IDsSorted(t *testing.T) {
	snap := membership.NewSnapshot(
		membership.Member{ID: "i-003"},
		membership.Member{ID: "i-001"},
		membership.Member{ID: "i-002"},
	)

	want := []membership.NodeID{"i-001", "i-002", "i-003"}
	require.Equal(t, want, snap.IDs())
}

func TestSnapshot_Empty(t *testing.T) {
	require.True(t, membership.NewSnapshot().Empty())
	require.False(t, membership.NewSnapshot(membership.Member{ID: "i-001"}).Empty())
}

func TestStaticSource(t *testing.T) {
	source := membership.NewStaticSource(
		membership.Member{ID: "i-001", Addr: "10.0.0.1"},
	)

	snap := source.Snapshot()
	require.Equal(t, 1, snap.Len())

	select {
	case <-source.Changes():
		t.Fatal("static source must never signal changes")
	default:
	}
}
