package profile

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is returned when the backing store cannot be reached.
var ErrStoreUnavailable = errors.New("profile store unavailable")

// ErrProfileCorrupt is returned when a stored profile blob cannot be decoded.
var ErrProfileCorrupt = errors.New("profile record corrupt")

// Store is the injected persistence boundary for behavioral profiles.
//
// Implementations must serialize Update callbacks per user id: two Update
// calls for the same user never run concurrently, while calls for different
// users never contend on a shared lock beyond the short structural lock that
// guards creation of a new per-user entry.
type Store interface {
	// Update runs fn under the user's exclusive critical section. The profile
	// is created on first touch; mutations made by fn are persisted when fn
	// returns nil. Backends with an explicit write step skip it when fn fails.
	Update(ctx context.Context, userID string, fn func(p *Profile) error) error

	// View runs fn under the user's shared critical section with read-only
	// access. fn receives nil when the user has no profile yet; it must not
	// retain or mutate the profile.
	View(ctx context.Context, userID string, fn func(p *Profile) error) error
}
