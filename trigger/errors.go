package trigger

import "errors"

var (
	// ErrNoTarget is returned when the membership snapshot is empty and
	// there is no member to connect to.
	ErrNoTarget = errors.New("membership is empty, no target available")

	// ErrNoReachableTarget is returned when no member of the snapshot has
	// an assigned address.
	ErrNoReachableTarget = errors.New("no member has an assigned address")
)
