package trigger

import (
	"github.com/stratofleet/aclsync/membership"
)

// Decision is the outcome of a single evaluation cycle.
type Decision struct {
	// Run reports whether the whitelist-update action must be invoked.
	Run bool
	// Target is the address of the member selected to host the action.
	// Empty when Run is false.
	Target string
	// Fingerprint of the evaluated membership set. On a run decision this
	// becomes the stored fingerprint once the action succeeds.
	Fingerprint membership.Fingerprint
}
