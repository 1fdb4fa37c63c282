package trigger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stratofleet/aclsync/membership"
	"github.com/stratofleet/aclsync/trigger"
)

func TestFileStore_AbsentFile(t *testing.T) {
	store := trigger.NewFileStore(filepath.Join(t.TempDir(), "fingerprint"))

	fp, err := store.Load()
	require.NoError(t, err)
	require.True(t, fp.Absent())
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprint")
	store := trigger.NewFileStore(path)

	want := membership.FingerprintOf(membership.NewSnapshot(
		membership.Member{ID: "i-001"},
	))

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFileStore_SaveReplaces(t *testing.T) {
	dir := t.TempDir()
	store := trigger.NewFileStore(filepath.Join(dir, "fingerprint"))

	first := membership.FingerprintOf(membership.NewSnapshot(membership.Member{ID: "i-001"}))
	second := membership.FingerprintOf(membership.NewSnapshot(membership.Member{ID: "i-002"}))

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, second, got)

	// The temp files used for atomic replacement must not accumulate.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileStore_CreatesStateDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "fingerprint")
	store := trigger.NewFileStore(path)

	fp := membership.FingerprintOf(membership.NewSnapshot(membership.Member{ID: "i-001"}))
	require.NoError(t, store.Save(fp))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, fp, got)
}
