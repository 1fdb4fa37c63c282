package membership

import (
	"fmt"

	"github.com/twmb/murmur3"
)

// Fingerprint is a deterministic summary of the set of member identifiers in
// a snapshot, used for change detection. The zero value means no fingerprint
// has been recorded yet.
type Fingerprint string

// Absent returns true for the zero fingerprint, i.e. before the first
// successful run.
func (f Fingerprint) Absent() bool {
	return f == ""
}

func (f Fingerprint) String() string {
	return string(f)
}

// FingerprintOf derives the fingerprint of a snapshot. Only member IDs
// contribute: two snapshots with the same identifier set produce the same
// fingerprint no matter the discovery order, address assignments, or
// statuses. IDs are hashed in sorted order with a separator byte, so that
// no two distinct sets can produce the same input stream.
func FingerprintOf(snap Snapshot) Fingerprint {
	hasher := murmur3.New128()

	for _, id := range snap.IDs() {
		hasher.Write([]byte(id))
		hasher.Write([]byte{0})
	}

	h1, h2 := hasher.Sum128()

	return Fingerprint(fmt.Sprintf("%016x%016x", h1, h2))
}
