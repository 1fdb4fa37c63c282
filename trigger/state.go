package trigger

import (
	"sync"

	"github.com/stratofleet/aclsync/membership"
)

// FingerprintStore persists the fingerprint of the last membership set for
// which the whitelist-update action completed successfully.
type FingerprintStore interface {
	// Load returns the stored fingerprint, or the absent fingerprint if
	// nothing has been stored yet.
	Load() (membership.Fingerprint, error)

	// Save replaces the stored fingerprint.
	Save(fp membership.Fingerprint) error
}

// MemStore is an in-memory FingerprintStore. It does not survive restarts
// and exists for tests and short-lived embeddings.
type MemStore struct {
	mut sync.Mutex
	fp  membership.Fingerprint
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load() (membership.Fingerprint, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.fp, nil
}

func (s *MemStore) Save(fp membership.Fingerprint) error {
	s.mut.Lock()
	defer s.mut.Unlock()
	s.fp = fp

	return nil
}
