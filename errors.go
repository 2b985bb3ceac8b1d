package goTrust

import "errors"

var (
	// ErrInvalidUserID is an exported constant or variable used by the trust engine.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrEngineNotReady is an exported constant or variable used by the trust engine.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrProfileUnavailable is an exported constant or variable used by the trust engine.
	ErrProfileUnavailable = errors.New("profile store unavailable")
	// ErrProfileCorrupt is an exported constant or variable used by the trust engine.
	ErrProfileCorrupt = errors.New("profile record corrupt")
)
