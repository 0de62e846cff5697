package ports

import "context"

// LoginThrottle limits failed login attempts per login identifier. The auth
// handler consults it before verifying credentials and records failures
// after; implementations fail open so authentication never depends on the
// throttle backend being reachable.
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
