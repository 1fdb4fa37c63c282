package membership_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stratofleet/aclsync/membership"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := membership.NewSnapshot(
		membership.Member{ID: "i-001", Addr: "10.0.0.1"},
		membership.Member{ID: "i-002", Addr: "10.0.0.2"},
		membership.Member{ID: "i-003", Addr: "10.0.0.3"},
	)

	b := membership.NewSnapshot(
		membership.Member{ID: "i-003", Addr: "10.0.0.3"},
		membership.Member{ID: "i-001", Addr: "10.0.0.1"},
		membership.Member{ID: "i-002", Addr: "10.0.0.2"},
	)

	require.Equal(t, membership.FingerprintOf(a), membership.FingerprintOf(b))
}

func TestFingerprint_DiffersOnSetChange(t *testing.T) {
	base := membership.NewSnapshot(
		membership.Member{ID: "i-001"},
		membership.Member{ID: "i-002"},
		membership.Member{ID: "i-003"},
	)

	replaced := membership.NewSnapshot(
		membership.Member{ID: "i-001"},
		membership.Member{ID: "i-002"},
		membership.Member{ID: "i-004"},
	)

	grown := membership.NewSnapshot(
		membership.Member{ID: "i-001"},
		membership.Member{ID: "i-002"},
		membership.Member{ID: "i-003"},
		membership.Member{ID: "i-004"},
	)

	shrunk := membership.NewSnapshot(
		membership.Member{ID: "i-001"},
		membership.Member{ID: "i-002"},
	)

	fp := membership.FingerprintOf(base)
	require.NotEqual(t, fp, membership.FingerprintOf(replaced))
	require.NotEqual(t, fp, membership.FingerprintOf(grown))
	require.NotEqual(t, fp, membership.FingerprintOf(shrunk))
}

func TestFingerprint_IgnoresAddrAndStatus(t *testing.T) {
	a := membership.NewSnapshot(
		membership.Member{ID: "i-001", Addr: "10.0.0.1", Status: membership.StatusHealthy},
		membership.Member{ID: "i-002", Status: membership.StatusFaulty},
	)

	b := membership.NewSnapshot(
		membership.Member{ID: "i-001", Addr: "10.0.0.99", Status: membership.StatusFaulty},
		membership.Member{ID: "i-002", Addr: "10.0.0.2", Status: membership.StatusHealthy},
	)

	require.Equal(t, membership.FingerprintOf(a), membership.FingerprintOf(b))
}

func TestFingerprint_Absent(t *testing.T) {
	var fp membership.Fingerprint
	require.True(t, fp.Absent())
	require.False(t, membership.FingerprintOf(membership.NewSnapshot()).Absent())
}
