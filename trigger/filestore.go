package trigger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stratofleet/aclsync/membership"
)

// FileStore keeps the last-applied fingerprint in a single small file.
// Writes go to a temporary file in the same directory which is then renamed
// over the record, so a crash mid-write never leaves a corrupted or
// half-advanced fingerprint behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (membership.Fingerprint, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", fmt.Errorf("read fingerprint file: %w", err)
	}

	return membership.Fingerprint(strings.TrimSpace(string(data))), nil
}

func (s *FileStore) Save(fp membership.Fingerprint) error {
	dir := filepath.Dir(s.path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer func() {
		// No-op unless an earlier step failed and left the file behind.
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(fp.String() + "\n"); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write fingerprint: %w", err)
	}

	// The record must be durable before it becomes visible, otherwise a
	// crash could lose a successful run and skip the next re-evaluation.
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync fingerprint: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace fingerprint file: %w", err)
	}

	return nil
}
