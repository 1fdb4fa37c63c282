package trigger

import "context"

// Runner invokes the external whitelist-update action on the given target
// address. The action itself is opaque: it is expected to read the full
// current membership through its own channels and bring the external
// whitelist in line with it. A nil error means the action confirmed success.
type Runner interface {
	Run(ctx context.Context, target string) error
}
